// Package testsupport holds helpers shared by package tests.
package testsupport

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadFixture reads a fixture file verbatim.
func LoadFixture(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// LoadJSON decodes the JSON fixture at path into v.
func LoadJSON(path string, v any) error {
	data, err := LoadFixture(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("testsupport: decode %s: %w", path, err)
	}
	return nil
}
