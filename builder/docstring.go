package builder

import (
	"regexp"
	"strings"
)

// DocPair is a documented name pulled out of a docstring.
type DocPair struct {
	Name string
	Text string
}

// docBullet matches "* `name`: text" and "* `name` - text".
var docBullet = regexp.MustCompile("^\\s*\\*\\s*`([^`]+)`\\s*[:\\-]\\s*(.*)$")

// SplitDocstring separates the argument and return documentation of a
// docstring from its main text.
//
// Extraction starts at a line reading "Arguments" (case-insensitive, with
// optional leading '#' and trailing ':'). Bullets below it document
// arguments up to an optional "Returns" (or "Return") line; bullets below
// that document the return value. When Returns comes first, the arguments
// run from their heading to the end and the return section sits between
// the two headings. Without an Arguments line the docstring is returned
// unchanged.
func SplitDocstring(doc string) (string, []DocPair, *DocPair) {
	lines := splitLines(doc)

	argsAt := findHeading(lines, "arguments")
	if argsAt < 0 {
		return doc, nil, nil
	}
	returnsAt := findHeading(lines, "returns", "return")

	argsFrom, argsTo := argsAt+1, len(lines)
	retFrom, retTo := 0, 0
	if returnsAt > argsAt {
		argsTo = returnsAt
		retFrom, retTo = returnsAt+1, len(lines)
	} else if returnsAt >= 0 {
		retFrom, retTo = returnsAt+1, argsAt
	}

	dropped := make([]bool, len(lines))
	dropped[argsAt] = true
	if returnsAt >= 0 {
		dropped[returnsAt] = true
		lo, hi := min(argsAt, returnsAt), max(argsAt, returnsAt)
		for i := lo + 1; i < hi; i++ {
			if strings.TrimSpace(lines[i]) == "" {
				dropped[i] = true
			}
		}
	}

	var args []DocPair
	for i := argsFrom; i < argsTo; i++ {
		if pair, ok := parseDocBullet(lines[i]); ok {
			args = append(args, pair)
			dropped[i] = true
		}
	}

	var ret *DocPair
	for i := retFrom; i < retTo; i++ {
		if pair, ok := parseDocBullet(lines[i]); ok {
			if ret == nil {
				ret = &pair
			}
			dropped[i] = true
		}
	}

	kept := make([]string, 0, len(lines))
	for i, line := range lines {
		if !dropped[i] {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n"), args, ret
}

// splitLines splits on '\n', drops a trailing '\r' from each line and does
// not produce an empty last line for a trailing newline.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func findHeading(lines []string, names ...string) int {
	for i, line := range lines {
		h := normalizeHeading(line)
		for _, name := range names {
			if h == name {
				return i
			}
		}
	}
	return -1
}

func normalizeHeading(line string) string {
	h := strings.TrimSpace(line)
	h = strings.TrimLeft(h, "#")
	h = strings.TrimSpace(h)
	h = strings.TrimRight(h, ":")
	return strings.TrimSpace(strings.ToLower(h))
}

func parseDocBullet(line string) (DocPair, bool) {
	m := docBullet.FindStringSubmatch(line)
	if m == nil {
		return DocPair{}, false
	}
	return DocPair{Name: strings.TrimSpace(m[1]), Text: strings.TrimSpace(m[2])}, true
}
