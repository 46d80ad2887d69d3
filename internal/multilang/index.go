// Package multilang verifies that every configured language is wired into
// the matrix consistently: matrix_index.json entries, vocabulary CSV column
// contracts, and the audio folder layout.
package multilang

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// IndexEntry is one matrix in matrix_index.json, as consumed by the web
// frontend. A language has one entry per level plus a merged all-levels entry.
type IndexEntry struct {
	ID           string `json:"id"`
	Name         string `json:"name,omitempty"`
	File         string `json:"file,omitempty"`
	Language     string `json:"language,omitempty"`
	LanguagePath string `json:"languagePath,omitempty"`
	Type         string `json:"type,omitempty"`
}

// indexSchema is the structural contract for matrix_index.json. Semantic
// checks (expected ids, file paths per language) happen after schema
// validation.
const indexSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["id", "language"],
		"properties": {
			"id": {"type": "string", "minLength": 1},
			"name": {"type": "string"},
			"file": {"type": "string"},
			"language": {"type": "string", "minLength": 1},
			"languagePath": {"type": "string"},
			"type": {"type": "string"}
		}
	}
}`

// LoadIndex reads and schema-validates matrix_index.json.
func LoadIndex(path string) ([]IndexEntry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read matrix index: %w", err)
	}

	if err := validateIndexDocument(raw); err != nil {
		return nil, fmt.Errorf("matrix index %s: %w", path, err)
	}

	var entries []IndexEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode matrix index %s: %w", path, err)
	}
	return entries, nil
}

func validateIndexDocument(raw []byte) error {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("matrix_index.schema.json", bytes.NewReader([]byte(indexSchema))); err != nil {
		return fmt.Errorf("failed to load index schema: %w", err)
	}
	schema, err := compiler.Compile("matrix_index.schema.json")
	if err != nil {
		return fmt.Errorf("failed to compile index schema: %w", err)
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("does not match schema: %w", err)
	}
	return nil
}

// findEntry returns the first entry with the given id.
func findEntry(entries []IndexEntry, id string) (IndexEntry, bool) {
	for _, e := range entries {
		if e.ID == id {
			return e, true
		}
	}
	return IndexEntry{}, false
}
