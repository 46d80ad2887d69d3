package radicals

import (
	"github.com/janulus/matrixtool/internal/vocab"
)

// ExtractUsage walks every vocabulary entry's decomposition and builds a
// usage record per distinct glyph: occurrence count, the set of levels using
// it, and up to five example words. It also returns the word→(reading, gloss)
// lookup used later as a fallback metadata source.
func ExtractUsage(byLevel map[string][]vocab.Entry, levelOrder []string) (map[string]*Usage, vocab.Lookup) {
	usage := make(map[string]*Usage)

	for _, level := range levelOrder {
		for _, entry := range byLevel[level] {
			for _, glyph := range entry.Radicals {
				u, ok := usage[glyph]
				if !ok {
					u = &Usage{Levels: make(map[string]bool)}
					usage[glyph] = u
				}
				u.Count++
				u.Levels[level] = true
				if len(u.Words) < maxExampleWords {
					u.Words = append(u.Words, entry.Word)
				}
			}
		}
	}

	return usage, vocab.BuildLookup(byLevel, levelOrder)
}
