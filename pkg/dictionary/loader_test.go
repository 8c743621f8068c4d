package dictionary

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	names  []string
	reject map[string]bool
}

func (r *recorder) Add(name string) error {
	if r.reject[name] {
		return errors.New("rejected")
	}
	r.names = append(r.names, name)
	return nil
}

func writeNames(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "names.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFrom(t *testing.T) {
	testCases := []struct {
		input       string
		expected    []string
		stats       LoadStats
		description string
	}{
		{"bob\namy\nzoe\n", []string{"bob", "amy", "zoe"}, LoadStats{Lines: 3, Loaded: 3}, "Plain lines"},
		{"bob\namy", []string{"bob", "amy"}, LoadStats{Lines: 2, Loaded: 2}, "No final newline"},
		{"bob\r\namy\r\n", []string{"bob", "amy"}, LoadStats{Lines: 2, Loaded: 2}, "CRLF lines"},
		{"bob\n\namy\n", []string{"bob", "amy"}, LoadStats{Lines: 3, Loaded: 2, Skipped: 1}, "Empty line skipped"},
		{"", nil, LoadStats{}, "Empty input"},
		{
			strings.Repeat("x", 25) + "\n",
			[]string{strings.Repeat("x", 20)},
			LoadStats{Lines: 1, Loaded: 1, Truncated: 1},
			"Long line truncated",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			rec := &recorder{}
			stats, err := LoadFrom(strings.NewReader(tc.input), rec)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, rec.names)
			assert.Equal(t, tc.stats, stats)
		})
	}
}

func TestLoadFromSinkFailure(t *testing.T) {
	rec := &recorder{reject: map[string]bool{"amy": true}}
	stats, err := LoadFrom(strings.NewReader("bob\namy\nzoe\n"), rec)
	require.NoError(t, err)
	assert.Equal(t, []string{"bob", "zoe"}, rec.names)
	assert.Equal(t, 1, stats.Failed)
	assert.Equal(t, 2, stats.Loaded)
}

func TestLoaderLoad(t *testing.T) {
	path := writeNames(t, "bob\namy\n")
	var got []string
	stats, err := NewLoader(path).Load(SinkFunc(func(name string) error {
		got = append(got, name)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"bob", "amy"}, got)
	assert.Equal(t, 2, stats.Loaded)
}

func TestLoaderMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")
	_, err := NewLoader(path).Load(&recorder{})

	var openErr *OpenError
	require.ErrorAs(t, err, &openErr)
	assert.Equal(t, path, openErr.Path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidateNamesFile(t *testing.T) {
	assert.NoError(t, ValidateNamesFile(writeNames(t, "amy\n")))
	assert.NoError(t, ValidateNamesFile(writeNames(t, "")))
	assert.Error(t, ValidateNamesFile(t.TempDir()))
	assert.Error(t, ValidateNamesFile(filepath.Join(t.TempDir(), "nope")))
}
