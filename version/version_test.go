package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShortTruncatesCommit(t *testing.T) {
	assert.Equal(t, "abcdef1", Info{CommitHash: "abcdef1234567"}.Short())
	assert.Equal(t, "dev", Info{CommitHash: "dev"}.Short())
}

func TestString(t *testing.T) {
	tests := []struct {
		info Info
		want string
	}{
		{Info{Version: "0.3.0", LADVersion: "1.0.0", CommitHash: "dev", BuildTime: "unknown"}, "ladgen 0.3.0 (dev), writes LAD 1.0.0"},
		{Info{Version: "0.3.0", LADVersion: "1.0.0", CommitHash: "abcdef1234567", BuildTime: "2026-10-01"}, "ladgen 0.3.0 (abcdef1), writes LAD 1.0.0, built 2026-10-01"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.info.String())
	}
}

func TestGetReportsLADVersion(t *testing.T) {
	assert.Equal(t, LADVersion, Get().LADVersion)
}
