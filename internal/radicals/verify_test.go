package radicals

import (
	"fmt"
	"strings"
	"testing"

	"github.com/janulus/matrixtool/internal/vocab"
)

// fullCanonicalCSV builds a 214-row reference fixture with one duplicated
// glyph, mirroring the shape of the real table.
func fullCanonicalCSV() string {
	var b strings.Builder
	b.WriteString("Radical,Pinyin,Description,Meaning\n")
	for i := 0; i < 213; i++ {
		fmt.Fprintf(&b, "%c,yī,stroke,one\n", rune(0x4E00+i))
	}
	fmt.Fprintf(&b, "%c,yī,stroke,one\n", rune(0x4E00)) // duplicate row
	return b.String()
}

func TestVerify_Passes(t *testing.T) {
	canonicalPath := writeTempFile(t, "radicals_214.csv", fullCanonicalCSV())

	derived := []DerivedEntry{
		{Radical: "气", Pinyin: "qì", Set: OriginKangxi, Traditional: "气", Levels: []string{"basic"}, UsageCount: 1},
		{Radical: "水", Pinyin: "shuǐ", Set: OriginKangxi, Traditional: "水", Levels: []string{"basic", "intermediate"}, UsageCount: 2},
	}
	derivedPath := writeTempFile(t, "radicals.csv", "")
	if err := WriteDerived(derivedPath, derived); err != nil {
		t.Fatalf("write derived: %v", err)
	}

	byLevel := map[string][]vocab.Entry{
		"basic": {
			{Level: "basic", Word: "汽", Radicals: []string{"气", "水"}},
		},
		"intermediate": {
			{Level: "intermediate", Word: "冰", Radicals: []string{"水"}},
		},
	}

	report, err := Verify(canonicalPath, derivedPath, byLevel, []string{"basic", "intermediate"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !report.Passed {
		t.Errorf("expected pass, got errors: %v", report.Errors)
	}
	if report.ID == "" {
		t.Error("expected a report ID")
	}
	if report.CanonicalRows != 214 {
		t.Errorf("expected 214 canonical rows, got %d", report.CanonicalRows)
	}
	if report.CanonicalUnique != 213 {
		t.Errorf("expected 213 unique glyphs, got %d", report.CanonicalUnique)
	}
	if len(report.DuplicateCanonical) != 1 {
		t.Errorf("expected one duplicate glyph, got %v", report.DuplicateCanonical)
	}
	if len(report.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", report.Warnings)
	}
	if report.Derived.Total != 2 || report.Derived.Kangxi != 2 {
		t.Errorf("unexpected derived summary: %+v", report.Derived)
	}
	if report.LevelCounts["basic"] != 2 || report.LevelCounts["intermediate"] != 1 {
		t.Errorf("unexpected level counts: %v", report.LevelCounts)
	}
}

func TestVerify_TruncatedCanonicalTable(t *testing.T) {
	canonicalCSV := `Radical,Pinyin,Description,Meaning
一,yī,stroke,one
水,shuǐ,water,water
`
	canonicalPath := writeTempFile(t, "radicals_214.csv", canonicalCSV)

	derivedPath := writeTempFile(t, "radicals.csv", "")
	if err := WriteDerived(derivedPath, nil); err != nil {
		t.Fatalf("write derived: %v", err)
	}

	report, err := Verify(canonicalPath, derivedPath, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Passed {
		t.Error("expected failure for truncated reference table")
	}
	if len(report.Warnings) != 1 {
		t.Errorf("expected a row-count warning, got %v", report.Warnings)
	}
	if len(report.Errors) != 1 || !strings.Contains(report.Errors[0], "unique glyphs") {
		t.Errorf("expected a unique-glyph error, got %v", report.Errors)
	}
}

func TestVerify_ReportsAlignmentErrors(t *testing.T) {
	canonicalPath := writeTempFile(t, "radicals_214.csv", fullCanonicalCSV())

	derived := []DerivedEntry{
		{Radical: "水", Pinyin: "shuǐ", Set: OriginKangxi, Levels: []string{"basic"}},
	}
	derivedPath := writeTempFile(t, "radicals.csv", "")
	if err := WriteDerived(derivedPath, derived); err != nil {
		t.Fatalf("write derived: %v", err)
	}

	byLevel := map[string][]vocab.Entry{
		"basic": {
			{Level: "basic", Word: "好", Radicals: []string{"女", "子"}},
		},
		"intermediate": {
			{Level: "intermediate", Word: "冰", Radicals: []string{"水"}},
		},
	}

	report, err := Verify(canonicalPath, derivedPath, byLevel, []string{"basic", "intermediate"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Passed {
		t.Error("expected failure for misaligned vocabulary")
	}
	var missing, wrongLevel int
	for _, e := range report.Errors {
		if strings.Contains(e, "not in derived table") {
			missing++
		}
		if strings.Contains(e, "does not list this level") {
			wrongLevel++
		}
	}
	if missing != 2 {
		t.Errorf("expected 2 missing-radical errors, got %d: %v", missing, report.Errors)
	}
	if wrongLevel != 1 {
		t.Errorf("expected 1 wrong-level error, got %d: %v", wrongLevel, report.Errors)
	}
}

func TestVerify_MissingFilesFail(t *testing.T) {
	if _, err := Verify("nope/radicals_214.csv", "nope/radicals.csv", nil, nil); err == nil {
		t.Fatal("expected error for missing canonical table")
	}

	canonicalPath := writeTempFile(t, "radicals_214.csv", fullCanonicalCSV())
	if _, err := Verify(canonicalPath, "nope/radicals.csv", nil, nil); err == nil {
		t.Fatal("expected error for missing derived table")
	}
}
