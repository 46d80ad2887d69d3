// Package vocab loads per-level vocabulary CSVs and provides the parsed
// decomposition of each word into component glyphs.
package vocab

import "strings"

// ComponentSeparator joins component glyphs in the Radicals CSV column.
const ComponentSeparator = "+"

// Entry is one vocabulary word from a level CSV.
type Entry struct {
	Level    string
	Category string
	Word     string
	Pinyin   string
	English  string
	// Radicals is the word's declared decomposition into component glyphs,
	// parsed once at load time.
	Radicals []string
}

// WordInfo is the reading/gloss pair for a surface word.
type WordInfo struct {
	Pinyin  string
	English string
}

// Lookup maps surface words to their reading and gloss. Used as a fallback
// metadata source for single-character words that also appear as components.
type Lookup map[string]WordInfo

// ParseComponents splits a `+`-joined decomposition string into glyphs.
// Whitespace around each glyph is trimmed; empty components are discarded.
func ParseComponents(s string) []string {
	if s == "" {
		return nil
	}
	var components []string
	for _, part := range strings.Split(s, ComponentSeparator) {
		part = strings.TrimSpace(part)
		if part != "" {
			components = append(components, part)
		}
	}
	return components
}

// BuildLookup builds a word→(reading, gloss) lookup from entries across all
// levels. Levels are visited in the given order and the first occurrence of a
// word wins, so the result is deterministic.
func BuildLookup(byLevel map[string][]Entry, levelOrder []string) Lookup {
	lookup := make(Lookup)
	for _, level := range levelOrder {
		for _, e := range byLevel[level] {
			if e.Word == "" {
				continue
			}
			if _, ok := lookup[e.Word]; !ok {
				lookup[e.Word] = WordInfo{Pinyin: e.Pinyin, English: e.English}
			}
		}
	}
	return lookup
}
