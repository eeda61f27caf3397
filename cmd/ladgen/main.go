package main

import (
	"fmt"
	"os"

	"github.com/teranos/lad/cmd/ladgen/cmd"
	"github.com/teranos/lad/errors"
	"github.com/teranos/lad/logger"
)

func main() {
	err := cmd.Execute()
	logger.Cleanup()
	if err == nil {
		return
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	for _, hint := range errors.GetAllHints(err) {
		fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
	}

	if errors.IsOutOfDateError(err) {
		os.Exit(1)
	}
	os.Exit(2)
}
