package version

import (
	"strings"
	"testing"
)

func TestStringOmitsUnknownMetadata(t *testing.T) {
	got := String()

	if !strings.HasPrefix(got, "koyo version dev") {
		t.Errorf("String() = %q, want prefix %q", got, "koyo version dev")
	}
	if strings.Contains(got, "unknown") {
		t.Errorf("String() = %q, should omit metadata that was not injected", got)
	}
}

func TestStringIncludesInjectedMetadata(t *testing.T) {
	origCommit, origDate := Commit, Date
	Commit = "0123456789abcdef"
	Date = "2026-08-30T00:00:00Z"
	defer func() {
		Commit, Date = origCommit, origDate
	}()

	got := String()
	if !strings.Contains(got, "commit 01234567") {
		t.Errorf("String() = %q, want abbreviated commit %q", got, "01234567")
	}
	if !strings.Contains(got, "built 2026-08-30T00:00:00Z") {
		t.Errorf("String() = %q, want build date", got)
	}
}

func TestShortCommit(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0123456789abcdef", "01234567"},
		{"abc123", "abc123"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := shortCommit(tt.in); got != tt.want {
			t.Errorf("shortCommit(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
