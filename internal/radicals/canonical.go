package radicals

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// LoadCanonicalTable reads the official Kangxi reference table into a map
// keyed by glyph. The source table is known to contain a duplicate row
// (斗 appears twice with different stroke counts); the first occurrence wins
// and later duplicates are dropped silently.
func LoadCanonicalTable(path string) (map[string]Canonical, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open canonical table: %w", err)
	}
	defer f.Close()

	table, err := parseCanonical(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return table, nil
}

func parseCanonical(r io.Reader) (map[string]Canonical, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return map[string]Canonical{}, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols := columnIndex(header)

	table := make(map[string]Canonical)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		glyph := cols.get(record, "Radical")
		if glyph == "" {
			continue
		}
		if _, ok := table[glyph]; ok {
			continue // tolerated duplicate, first occurrence wins
		}

		table[glyph] = Canonical{
			Radical:     glyph,
			Pinyin:      cols.get(record, "Pinyin"),
			Description: cols.get(record, "Description"),
			Meaning:     cols.get(record, "Meaning"),
		}
	}

	return table, nil
}

// CanonicalGlyphs reads just the glyph column of the reference table, one
// element per row, duplicates included. Used by verification to inspect the
// raw table without the first-wins dedupe.
func CanonicalGlyphs(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open canonical table: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := columnIndex(header)

	var glyphs []string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		if glyph := cols.get(record, "Radical"); glyph != "" {
			glyphs = append(glyphs, glyph)
		}
	}
	return glyphs, nil
}

// columns maps header names to positions, first occurrence wins.
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

func (c columns) get(record []string, name string) string {
	i, ok := c[name]
	if !ok || i >= len(record) {
		return ""
	}
	return record[i]
}
