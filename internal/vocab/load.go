package vocab

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// LoadLevel reads one level's vocabulary CSV. The level tag is attached to
// every entry.
func LoadLevel(path, level string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vocabulary file: %w", err)
	}
	defer f.Close()

	entries, err := parseLevel(f, level)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return entries, nil
}

// LoadLevels reads every level's vocabulary CSV from the language directory.
// All files are required: derivation has no partial-success mode, so a missing
// level aborts the load.
func LoadLevels(paths map[string]string, levelOrder []string) (map[string][]Entry, error) {
	byLevel := make(map[string][]Entry, len(levelOrder))
	for _, level := range levelOrder {
		path, ok := paths[level]
		if !ok {
			return nil, fmt.Errorf("no vocabulary path configured for level %q", level)
		}
		entries, err := LoadLevel(path, level)
		if err != nil {
			return nil, err
		}
		byLevel[level] = entries
	}
	return byLevel, nil
}

// parseLevel reads vocabulary rows from the given reader. The first row is
// the header; columns are matched by name so column order does not matter.
func parseLevel(r io.Reader, level string) ([]Entry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // allow variable column count

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols := columnIndex(header)

	var entries []Entry
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		if len(record) == 0 {
			continue
		}

		entries = append(entries, Entry{
			Level:    level,
			Category: cols.get(record, "Category"),
			Word:     cols.get(record, "Word"),
			Pinyin:   cols.get(record, "Pinyin"),
			English:  cols.get(record, "English"),
			Radicals: ParseComponents(cols.get(record, "Radicals")),
		})
	}

	return entries, nil
}

// columns maps header names to field positions.
type columns map[string]int

func columnIndex(header []string) columns {
	cols := make(columns, len(header))
	for i, name := range header {
		if _, ok := cols[name]; !ok {
			cols[name] = i
		}
	}
	return cols
}

// get returns the named field of a record, or "" when the column is absent
// or the record is short.
func (c columns) get(record []string, name string) string {
	i, ok := c[name]
	if !ok || i >= len(record) {
		return ""
	}
	return record[i]
}
