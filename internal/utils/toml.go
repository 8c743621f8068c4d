package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// DecodeTOMLFile decodes path into v. Keys v has no field for are logged and
// otherwise ignored.
func DecodeTOMLFile(path string, v any) error {
	meta, err := toml.DecodeFile(path, v)
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	if keys := meta.Undecoded(); len(keys) > 0 {
		log.Debugf("Ignoring unknown keys in %s: %v", path, keys)
	}
	return nil
}

// ReadTOMLTable decodes path into a plain table, for files whose values do
// not all fit the target struct.
func ReadTOMLTable(path string) (map[string]any, error) {
	table := make(map[string]any)
	if _, err := toml.DecodeFile(path, &table); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return table, nil
}

// WriteTOMLFile encodes v into path, creating missing parent directories.
func WriteTOMLFile(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(file).Encode(v); err != nil {
		file.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return file.Close()
}

// Value returns table[key] when it holds a T.
func Value[T any](table map[string]any, key string) (T, bool) {
	v, ok := table[key].(T)
	return v, ok
}

// Table returns the sub-table stored under key.
func Table(table map[string]any, key string) (map[string]any, bool) {
	return Value[map[string]any](table, key)
}

// Int returns an integer value. TOML integers decode as int64.
func Int(table map[string]any, key string) (int, bool) {
	v, ok := Value[int64](table, key)
	return int(v), ok
}
