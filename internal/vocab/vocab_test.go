package vocab

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestParseComponents(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"simple", "氵+气+车", []string{"氵", "气", "车"}},
		{"whitespace tolerated", " 氵 + 气 +车 ", []string{"氵", "气", "车"}},
		{"empty components dropped", "氵++车", []string{"氵", "车"}},
		{"single glyph", "水", []string{"水"}},
		{"empty string", "", nil},
		{"only separators", "+ + +", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseComponents(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	csvData := `Category,Word,Pinyin,English,Radicals
transport,汽车,qìchē,car,氵+气+车
nature,水,shuǐ,water,水
`
	entries, err := parseLevel(strings.NewReader(csvData), "basic")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	first := entries[0]
	if first.Level != "basic" {
		t.Errorf("expected level basic, got %s", first.Level)
	}
	if first.Word != "汽车" {
		t.Errorf("expected word 汽车, got %s", first.Word)
	}
	if !reflect.DeepEqual(first.Radicals, []string{"氵", "气", "车"}) {
		t.Errorf("unexpected components: %v", first.Radicals)
	}
}

func TestParseLevel_ColumnOrderIndependent(t *testing.T) {
	csvData := `Word,Radicals,Category,English,Pinyin
好,女+子,common,good,hǎo
`
	entries, err := parseLevel(strings.NewReader(csvData), "basic")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Pinyin != "hǎo" {
		t.Errorf("expected pinyin hǎo, got %s", entries[0].Pinyin)
	}
	if !reflect.DeepEqual(entries[0].Radicals, []string{"女", "子"}) {
		t.Errorf("unexpected components: %v", entries[0].Radicals)
	}
}

func TestParseLevel_MissingColumns(t *testing.T) {
	csvData := `Word,English
你好,hello
`
	entries, err := parseLevel(strings.NewReader(csvData), "basic")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Pinyin != "" {
		t.Errorf("expected empty pinyin, got %s", entries[0].Pinyin)
	}
	if entries[0].Radicals != nil {
		t.Errorf("expected nil components, got %v", entries[0].Radicals)
	}
}

func TestParseLevel_EmptyFile(t *testing.T) {
	entries, err := parseLevel(strings.NewReader(""), "basic")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entries != nil {
		t.Errorf("expected nil entries, got %v", entries)
	}
}

func TestLoadLevels_MissingFileFails(t *testing.T) {
	tmpDir := t.TempDir()
	basic := filepath.Join(tmpDir, "basic.csv")
	if err := os.WriteFile(basic, []byte("Word,Radicals\n水,水\n"), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	paths := map[string]string{
		"basic":        basic,
		"intermediate": filepath.Join(tmpDir, "intermediate.csv"), // absent
	}

	_, err := LoadLevels(paths, []string{"basic", "intermediate"})
	if err == nil {
		t.Fatal("expected error for missing level file")
	}
}

func TestBuildLookup_FirstWins(t *testing.T) {
	byLevel := map[string][]Entry{
		"basic": {
			{Word: "水", Pinyin: "shuǐ", English: "water"},
		},
		"advanced": {
			{Word: "水", Pinyin: "shui-alt", English: "water (alt)"},
			{Word: "火", Pinyin: "huǒ", English: "fire"},
		},
	}

	lookup := BuildLookup(byLevel, []string{"basic", "intermediate", "advanced"})

	if len(lookup) != 2 {
		t.Fatalf("expected 2 words, got %d", len(lookup))
	}
	if lookup["水"].Pinyin != "shuǐ" {
		t.Errorf("expected basic-level reading to win, got %s", lookup["水"].Pinyin)
	}
	if lookup["火"].English != "fire" {
		t.Errorf("expected fire, got %s", lookup["火"].English)
	}
}

func TestMergeLevels(t *testing.T) {
	byLevel := map[string][]Entry{
		"basic": {
			{Level: "basic", Category: "b-cat", Word: "水"},
			{Level: "basic", Category: "a-cat", Word: "火"},
		},
		"advanced": {
			{Level: "advanced", Category: "a-cat", Word: "电"},
		},
	}

	merged := MergeLevels(byLevel, []string{"basic", "intermediate", "advanced"})

	if len(merged) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(merged))
	}
	// basic before advanced, category ascending within level
	if merged[0].Word != "火" || merged[1].Word != "水" || merged[2].Word != "电" {
		t.Errorf("unexpected order: %s %s %s", merged[0].Word, merged[1].Word, merged[2].Word)
	}
}

func TestWriteMerged_RoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "all_levels.csv")

	entries := []Entry{
		{Level: "basic", Category: "transport", Word: "汽车", Pinyin: "qìchē", English: "car", Radicals: []string{"氵", "气", "车"}},
	}

	if err := WriteMerged(path, entries); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read merged file: %v", err)
	}

	content := string(data)
	if !strings.Contains(content, "Level,Category,Word,Pinyin,English,Radicals") {
		t.Error("missing header row")
	}
	if !strings.Contains(content, "氵+气+车") {
		t.Error("decomposition not rejoined with separator")
	}
}

func TestStats(t *testing.T) {
	byLevel := map[string][]Entry{
		"basic": {
			{Word: "汽车"},
			{Word: "水"},
		},
	}
	radicalSet := map[string]bool{"水": true, "车": true}

	stats := Stats(byLevel, []string{"basic"}, radicalSet)

	if len(stats) != 1 {
		t.Fatalf("expected 1 level, got %d", len(stats))
	}
	s := stats[0]
	if s.Words != 2 {
		t.Errorf("expected 2 words, got %d", s.Words)
	}
	if s.UniqueCharacters != 3 {
		t.Errorf("expected 3 unique characters, got %d", s.UniqueCharacters)
	}
	if !reflect.DeepEqual(s.RadicalCharacters, []string{"水", "车"}) {
		t.Errorf("unexpected radical characters: %v", s.RadicalCharacters)
	}
}
