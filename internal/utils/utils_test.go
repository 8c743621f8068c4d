package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableValues(t *testing.T) {
	data := map[string]any{
		"n":   int64(7),
		"b":   true,
		"s":   "json",
		"bad": 1.5,
		"sec": map[string]any{"k": "v"},
	}

	n, ok := Int(data, "n")
	assert.True(t, ok)
	assert.Equal(t, 7, n)

	_, ok = Int(data, "bad")
	assert.False(t, ok)

	b, ok := Value[bool](data, "b")
	assert.True(t, ok)
	assert.True(t, b)

	s, ok := Value[string](data, "s")
	assert.True(t, ok)
	assert.Equal(t, "json", s)

	_, ok = Value[string](data, "missing")
	assert.False(t, ok)

	sec, ok := Table(data, "sec")
	require.True(t, ok)
	assert.Equal(t, "v", sec["k"])

	_, ok = Table(data, "s")
	assert.False(t, ok)
}

func TestResolveNamesFile(t *testing.T) {
	workDir, configDir := t.TempDir(), t.TempDir()
	pr := &PathResolver{workDir: workDir, configDir: configDir}

	require.NoError(t, os.WriteFile(filepath.Join(configDir, "names.txt"), []byte("amy\n"), 0644))
	assert.Equal(t, filepath.Join(configDir, "names.txt"), pr.ResolveNamesFile("names.txt"))

	require.NoError(t, os.WriteFile(filepath.Join(workDir, "names.txt"), []byte("amy\n"), 0644))
	assert.Equal(t, filepath.Join(workDir, "names.txt"), pr.ResolveNamesFile("names.txt"), "working dir wins")

	assert.Equal(t, filepath.Join(workDir, "other.txt"), pr.ResolveNamesFile("other.txt"), "falls back to working dir")

	abs := filepath.Join(configDir, "abs.txt")
	assert.Equal(t, []string{abs}, pr.Candidates(abs))
}

func TestWriteAndDecodeTOML(t *testing.T) {
	type section struct {
		Name string `toml:"name"`
	}
	type doc struct {
		Sec section `toml:"sec"`
	}
	path := filepath.Join(t.TempDir(), "nested", "x.toml")
	require.NoError(t, WriteTOMLFile(path, doc{Sec: section{Name: "amy"}}))
	assert.True(t, IsFile(path))
	assert.False(t, IsFile(filepath.Dir(path)), "directories are not files")

	var got doc
	require.NoError(t, DecodeTOMLFile(path, &got))
	assert.Equal(t, "amy", got.Sec.Name)

	raw, err := ReadTOMLTable(path)
	require.NoError(t, err)
	sec, ok := Table(raw, "sec")
	require.True(t, ok)
	assert.Equal(t, "amy", sec["name"])
}

func TestDecodeTOMLFileBadInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[sec\nname = "), 0644))

	var got map[string]any
	assert.Error(t, DecodeTOMLFile(path, &got))
	_, err := ReadTOMLTable(path)
	assert.Error(t, err)
}

func TestDisplayPath(t *testing.T) {
	assert.True(t, filepath.IsAbs(DisplayPath("names.txt")))
	assert.Equal(t, "/etc/names.txt", DisplayPath("/etc/names.txt"))
}
