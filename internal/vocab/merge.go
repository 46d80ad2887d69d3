package vocab

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strings"
)

// MergeLevels flattens per-level entries into one slice sorted by level order,
// then category, then word.
func MergeLevels(byLevel map[string][]Entry, levelOrder []string) []Entry {
	rank := make(map[string]int, len(levelOrder))
	for i, level := range levelOrder {
		rank[level] = i
	}

	var merged []Entry
	for _, level := range levelOrder {
		merged = append(merged, byLevel[level]...)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		a, b := merged[i], merged[j]
		if rank[a.Level] != rank[b.Level] {
			return rank[a.Level] < rank[b.Level]
		}
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		return a.Word < b.Word
	})

	return merged
}

// WriteMerged writes the merged all-levels vocabulary CSV. The file is fully
// regenerated on every run.
func WriteMerged(path string, entries []Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create merged file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"Level", "Category", "Word", "Pinyin", "English", "Radicals"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, e := range entries {
		record := []string{
			e.Level,
			e.Category,
			e.Word,
			e.Pinyin,
			e.English,
			strings.Join(e.Radicals, ComponentSeparator),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write row for %s: %w", e.Word, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush merged file: %w", err)
	}
	return nil
}
