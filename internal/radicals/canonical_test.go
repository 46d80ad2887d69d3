package radicals

import (
	"strings"
	"testing"
)

func TestParseCanonical_FirstWinsOnDuplicates(t *testing.T) {
	// 斗 appears twice in the official table with different readings.
	csvData := `Radical,Pinyin,Description,Meaning
斗,dǒu,dipper radical,dipper
水,shuǐ,water radical,water
斗,dòu,fight radical,fight
`
	table, err := parseCanonical(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(table) != 2 {
		t.Fatalf("expected 2 unique glyphs, got %d", len(table))
	}
	if table["斗"].Pinyin != "dǒu" {
		t.Errorf("expected first occurrence to win, got reading %s", table["斗"].Pinyin)
	}
}

func TestParseCanonical_EmptyFile(t *testing.T) {
	table, err := parseCanonical(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(table) != 0 {
		t.Errorf("expected empty table, got %d entries", len(table))
	}
}

func TestLoadCanonicalTable_MissingFileFails(t *testing.T) {
	_, err := LoadCanonicalTable("/definitely/not/here/radicals_214.csv")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestCanonicalGlyphs_KeepsDuplicates(t *testing.T) {
	csvData := `Radical,Pinyin
斗,dǒu
斗,dòu
水,shuǐ
`
	path := writeTempFile(t, "radicals_214.csv", csvData)

	glyphs, err := CanonicalGlyphs(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(glyphs) != 3 {
		t.Errorf("expected 3 raw rows, got %d", len(glyphs))
	}
}
