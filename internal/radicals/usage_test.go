package radicals

import (
	"reflect"
	"testing"

	"github.com/janulus/matrixtool/internal/vocab"
)

func TestExtractUsage(t *testing.T) {
	byLevel := map[string][]vocab.Entry{
		"basic": {
			{Level: "basic", Word: "汽", Pinyin: "qì", English: "steam", Radicals: []string{"氵", "气"}},
			{Level: "basic", Word: "河", Pinyin: "hé", English: "river", Radicals: []string{"氵", "可"}},
		},
		"intermediate": {
			{Level: "intermediate", Word: "海", Pinyin: "hǎi", English: "sea", Radicals: []string{"氵", "每"}},
		},
	}

	usage, lookup := ExtractUsage(byLevel, []string{"basic", "intermediate"})

	water, ok := usage["氵"]
	if !ok {
		t.Fatal("expected usage for 氵")
	}
	if water.Count != 3 {
		t.Errorf("expected count 3 for 氵, got %d", water.Count)
	}
	if !water.Levels["basic"] || !water.Levels["intermediate"] {
		t.Errorf("unexpected levels for 氵: %v", water.Levels)
	}
	if !reflect.DeepEqual(water.Words, []string{"汽", "河", "海"}) {
		t.Errorf("unexpected example words for 氵: %v", water.Words)
	}

	if info, ok := lookup["海"]; !ok || info.Pinyin != "hǎi" {
		t.Errorf("expected lookup entry for 海, got %+v (ok=%v)", info, ok)
	}
}

func TestExtractUsage_ExampleWordsCapped(t *testing.T) {
	words := []string{"休", "们", "你", "他", "信", "位", "住"}
	entries := make([]vocab.Entry, len(words))
	for i, w := range words {
		entries[i] = vocab.Entry{Level: "basic", Word: w, Radicals: []string{"亻"}}
	}
	byLevel := map[string][]vocab.Entry{"basic": entries}

	usage, _ := ExtractUsage(byLevel, []string{"basic"})

	u := usage["亻"]
	if u.Count != len(words) {
		t.Errorf("expected count %d, got %d", len(words), u.Count)
	}
	if len(u.Words) != maxExampleWords {
		t.Errorf("expected %d example words, got %d", maxExampleWords, len(u.Words))
	}
}
