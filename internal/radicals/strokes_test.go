package radicals

import (
	"bytes"
	"strings"
	"testing"
)

func TestStrokeCount(t *testing.T) {
	tests := []struct {
		glyph    string
		expected int
		ok       bool
	}{
		{"一", 1, true},
		{"水", 4, true},
		{"龠", 17, true},
		{"马", 10, true}, // traditional count
		{"氵", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.glyph, func(t *testing.T) {
			n, ok := StrokeCount(tt.glyph)
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got %v", tt.ok, ok)
			}
			if ok && n != tt.expected {
				t.Errorf("expected %d strokes, got %d", tt.expected, n)
			}
		})
	}
}

func TestAddStrokeColumn(t *testing.T) {
	csvData := `Radical,Pinyin
水,shuǐ
氵,shuǐ
`
	path := writeTempFile(t, "radicals.csv", csvData)

	if err := AddStrokeColumn(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	content := string(readFile(t, path))
	lines := strings.Split(strings.TrimSpace(content), "\n")
	if lines[0] != "Radical,Pinyin,StrokeCount" {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if !strings.HasSuffix(lines[1], ",4") {
		t.Errorf("expected 4 strokes for 水: %s", lines[1])
	}
	if !strings.HasSuffix(lines[2], ",unknown") {
		t.Errorf("expected unknown for 氵: %s", lines[2])
	}
}

func TestAddStrokeColumn_Rerun(t *testing.T) {
	csvData := `Radical,Pinyin
水,shuǐ
`
	path := writeTempFile(t, "radicals.csv", csvData)

	if err := AddStrokeColumn(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first := readFile(t, path)

	if err := AddStrokeColumn(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second := readFile(t, path)

	// Re-running refreshes the column in place instead of appending another.
	if !bytes.Equal(first, second) {
		t.Errorf("second run changed the file:\n%s\nvs\n%s", first, second)
	}
}

func TestAddStrokeColumn_EmptyFileFails(t *testing.T) {
	path := writeTempFile(t, "radicals.csv", "")
	if err := AddStrokeColumn(path); err == nil {
		t.Fatal("expected error for empty file")
	}
}
