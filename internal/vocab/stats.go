package vocab

import "sort"

// LevelStats summarizes one level's vocabulary.
type LevelStats struct {
	Level             string   `json:"level" yaml:"level"`
	Words             int      `json:"words" yaml:"words"`
	UniqueCharacters  int      `json:"unique_characters" yaml:"unique_characters"`
	RadicalCharacters []string `json:"radical_characters" yaml:"radical_characters"`
}

// Stats computes per-level word counts, distinct characters, and which of
// those characters are themselves entries in the radical set.
func Stats(byLevel map[string][]Entry, levelOrder []string, radicalSet map[string]bool) []LevelStats {
	stats := make([]LevelStats, 0, len(levelOrder))

	for _, level := range levelOrder {
		words := make(map[string]bool)
		chars := make(map[rune]bool)

		for _, e := range byLevel[level] {
			if e.Word == "" {
				continue
			}
			words[e.Word] = true
			for _, c := range e.Word {
				chars[c] = true
			}
		}

		var radicalChars []string
		for c := range chars {
			if radicalSet[string(c)] {
				radicalChars = append(radicalChars, string(c))
			}
		}
		sort.Strings(radicalChars)

		stats = append(stats, LevelStats{
			Level:             level,
			Words:             len(words),
			UniqueCharacters:  len(chars),
			RadicalCharacters: radicalChars,
		})
	}

	return stats
}
