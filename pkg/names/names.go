// Package names holds the input limits and the normalization applied to every
// raw line before it becomes a name, both at load time and at the prompt.
package names

import (
	"errors"
	"strings"
)

const (
	// MaxInput is the size of a raw input line in bytes, terminator included.
	MaxInput = 21
	// MaxLength is the longest name kept, in bytes.
	MaxLength = MaxInput - 1
)

var (
	ErrEmpty      = errors.New("name is empty")
	ErrTooLong    = errors.New("name exceeds maximum length")
	ErrTerminator = errors.New("name contains a line terminator")
)

// Normalize strips a single trailing line terminator ("\n" or "\r\n").
// A line without one is returned as is.
func Normalize(raw string) string {
	if s, ok := strings.CutSuffix(raw, "\n"); ok {
		return strings.TrimSuffix(s, "\r")
	}
	return raw
}

// Truncate caps s at MaxLength bytes.
func Truncate(s string) string {
	if len(s) > MaxLength {
		return s[:MaxLength]
	}
	return s
}

// Clean is the line-reading boundary. The terminator does not count toward
// MaxLength, so a full-length line keeps all of its significant bytes.
func Clean(raw string) string {
	return Truncate(Normalize(raw))
}

// Validate reports whether name can be stored.
func Validate(name string) error {
	switch {
	case name == "":
		return ErrEmpty
	case len(name) > MaxLength:
		return ErrTooLong
	case strings.ContainsAny(name, "\n"):
		return ErrTerminator
	}
	return nil
}

// IsSentinel reports whether line ends an interactive session.
func IsSentinel(line string) bool {
	return len(line) > 0 && line[0] == '.'
}
