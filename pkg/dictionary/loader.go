// Package dictionary reads the names file, one name per line, and hands each
// cleaned name to a Sink.
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bastiangx/namecmp/pkg/names"
	"github.com/charmbracelet/log"
)

// Sink receives names in file order.
type Sink interface {
	Add(name string) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(name string) error

func (f SinkFunc) Add(name string) error {
	return f(name)
}

// OpenError means the names file could not be opened. Nothing was loaded.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("can't read file %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// LoadStats summarizes one load.
type LoadStats struct {
	Lines     int
	Loaded    int
	Skipped   int
	Truncated int
	Failed    int
}

// Loader reads a names file.
type Loader struct {
	path string
}

// NewLoader creates a loader for the file at path.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Path returns the file the loader reads.
func (l *Loader) Path() string {
	return l.path
}

// Load opens the file and feeds every name to sink. A failure to close the
// file afterwards is logged and otherwise ignored.
func (l *Loader) Load(sink Sink) (LoadStats, error) {
	if err := ValidateNamesFile(l.path); err != nil {
		return LoadStats{}, &OpenError{Path: l.path, Err: err}
	}
	file, err := os.Open(l.path)
	if err != nil {
		return LoadStats{}, &OpenError{Path: l.path, Err: err}
	}

	stats, err := LoadFrom(file, sink)

	if cerr := file.Close(); cerr != nil {
		log.Warnf("error closing %s: %v", l.path, cerr)
	}
	if err != nil {
		return stats, fmt.Errorf("failed to read %s: %w", l.path, err)
	}
	log.Debugf("Loaded %d names from %s (%d lines, %d skipped, %d failed)",
		stats.Loaded, l.path, stats.Lines, stats.Skipped, stats.Failed)
	return stats, nil
}

// LoadFrom reads names from r until EOF. Empty lines are skipped, long lines
// are cut to names.MaxLength bytes, and names the sink rejects are counted and
// logged without stopping the load.
func LoadFrom(r io.Reader, sink Sink) (LoadStats, error) {
	var stats LoadStats
	reader := bufio.NewReader(r)

	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return stats, err
		}
		if line == "" && err != nil {
			return stats, nil
		}
		stats.Lines++

		raw := names.Normalize(line)
		name := names.Truncate(raw)
		if len(name) < len(raw) {
			stats.Truncated++
			log.Debugf("Line %d truncated to %d bytes", stats.Lines, names.MaxLength)
		}
		if name == "" {
			stats.Skipped++
			log.Debugf("Line %d is empty, skipping", stats.Lines)
		} else if addErr := sink.Add(name); addErr != nil {
			stats.Failed++
			log.Errorf("Error! Could not store %q: %v", name, addErr)
		} else {
			stats.Loaded++
		}

		if err != nil {
			return stats, nil
		}
	}
}
