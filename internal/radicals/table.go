package radicals

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// derivedHeader is the column contract of the generated radicals.csv.
var derivedHeader = []string{
	"Radical", "Pinyin", "Description", "Meaning", "Set",
	"Traditional", "Levels", "UsageCount", "MainRadical",
}

// WriteDerived writes the derived radical table, fully replacing any prior
// file. This engine is the sole writer of radicals.csv.
func WriteDerived(path string, entries []DerivedEntry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create derived table: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(derivedHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, e := range entries {
		record := []string{
			e.Radical,
			e.Pinyin,
			e.Description,
			e.Meaning,
			string(e.Set),
			e.Traditional,
			strings.Join(e.Levels, ","),
			strconv.Itoa(e.UsageCount),
			e.MainRadical,
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write row for %s: %w", e.Radical, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush derived table: %w", err)
	}
	return nil
}

// LoadDerived reads a previously generated radicals.csv back into memory,
// for validation and verification runs.
func LoadDerived(path string) ([]DerivedEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open derived table: %w", err)
	}
	defer f.Close()

	entries, err := parseDerived(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return entries, nil
}

func parseDerived(r io.Reader) ([]DerivedEntry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols := columnIndex(header)

	var entries []DerivedEntry
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

		count, _ := strconv.Atoi(cols.get(record, "UsageCount"))

		var levels []string
		if raw := cols.get(record, "Levels"); raw != "" {
			levels = strings.Split(raw, ",")
		}

		entries = append(entries, DerivedEntry{
			Radical:     glyph,
			Pinyin:      cols.get(record, "Pinyin"),
			Description: cols.get(record, "Description"),
			Meaning:     cols.get(record, "Meaning"),
			Set:         Origin(cols.get(record, "Set")),
			Traditional: cols.get(record, "Traditional"),
			Levels:      levels,
			UsageCount:  count,
			MainRadical: cols.get(record, "MainRadical"),
		})
	}

	return entries, nil
}

// MissingReadings returns derived entries whose reading is still empty,
// in table order. These need manual data work in the vocabulary CSVs.
func MissingReadings(entries []DerivedEntry) []DerivedEntry {
	var missing []DerivedEntry
	for _, e := range entries {
		if strings.TrimSpace(e.Pinyin) == "" {
			missing = append(missing, e)
		}
	}
	return missing
}

// Summary breaks down a derived table by origin classification.
type Summary struct {
	Total      int `json:"total" yaml:"total"`
	Kangxi     int `json:"kangxi_214" yaml:"kangxi_214"`
	Variants   int `json:"variants" yaml:"variants"`
	Components int `json:"components" yaml:"components"`
}

// Summarize computes origin counts for a derived table.
func Summarize(entries []DerivedEntry) Summary {
	s := Summary{Total: len(entries)}
	for _, e := range entries {
		switch e.Set {
		case OriginKangxi:
			s.Kangxi++
		case OriginVariant:
			s.Variants++
		case OriginComponent:
			s.Components++
		}
	}
	return s
}
