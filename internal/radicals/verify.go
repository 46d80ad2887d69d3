package radicals

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/janulus/matrixtool/internal/vocab"
)

// expectedCanonicalRows is the size of the official Kangxi table. The known
// duplicate row means unique glyphs may legitimately be one fewer.
const expectedCanonicalRows = 214

// VerifyReport is the result of structural verification of the radical
// system: reference table intact, derived table well-formed, and vocabulary
// aligned with the derived table.
type VerifyReport struct {
	ID                 string         `json:"id" yaml:"id"`
	CanonicalRows      int            `json:"canonical_rows" yaml:"canonical_rows"`
	CanonicalUnique    int            `json:"canonical_unique" yaml:"canonical_unique"`
	DuplicateCanonical []string       `json:"duplicate_canonical,omitempty" yaml:"duplicate_canonical,omitempty"`
	Derived            Summary        `json:"derived" yaml:"derived"`
	LevelCounts        map[string]int `json:"level_counts" yaml:"level_counts"`
	Errors             []string       `json:"errors,omitempty" yaml:"errors,omitempty"`
	Warnings           []string       `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Passed             bool           `json:"passed" yaml:"passed"`
}

// Verify checks that the canonical reference table is intact, the derived
// table is well-formed, and every vocabulary decomposition resolves to a
// derived entry tagged with the right level. Load failures are fatal;
// everything else accumulates into the report.
func Verify(canonicalPath, derivedPath string, byLevel map[string][]vocab.Entry, levelOrder []string) (*VerifyReport, error) {
	report := &VerifyReport{
		ID:          uuid.New().String(),
		LevelCounts: make(map[string]int),
	}

	glyphs, err := CanonicalGlyphs(canonicalPath)
	if err != nil {
		return nil, err
	}

	report.CanonicalRows = len(glyphs)
	seen := make(map[string]int, len(glyphs))
	for _, g := range glyphs {
		seen[g]++
	}
	report.CanonicalUnique = len(seen)
	for g, n := range seen {
		if n > 1 {
			report.DuplicateCanonical = append(report.DuplicateCanonical, g)
		}
	}
	sort.Strings(report.DuplicateCanonical)

	if report.CanonicalRows != expectedCanonicalRows {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("canonical table has %d rows (expected %d)", report.CanonicalRows, expectedCanonicalRows))
	}
	// The tolerated duplicate means 213 unique glyphs is still intact.
	if report.CanonicalUnique < expectedCanonicalRows-1 {
		report.Errors = append(report.Errors,
			fmt.Sprintf("canonical table has only %d unique glyphs", report.CanonicalUnique))
	}

	derived, err := LoadDerived(derivedPath)
	if err != nil {
		return nil, err
	}
	report.Derived = Summarize(derived)

	for _, e := range derived {
		for _, level := range e.Levels {
			report.LevelCounts[level]++
		}
	}

	validation := Validate(derived, byLevel, levelOrder)
	for _, f := range validation.Missing {
		report.Errors = append(report.Errors,
			fmt.Sprintf("%s: radical %q not in derived table", f.Level, f.Radical))
	}
	for _, f := range validation.WrongLevel {
		report.Errors = append(report.Errors,
			fmt.Sprintf("%s: radical %q does not list this level", f.Level, f.Radical))
	}

	report.Passed = len(report.Errors) == 0
	return report, nil
}
