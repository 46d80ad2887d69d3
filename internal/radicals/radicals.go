// Package radicals implements the vocabulary-to-radical reconciliation
// engine: it derives the radicals.csv reference table from the glyphs
// actually used in vocabulary decompositions, classifies each glyph against
// the official Kangxi table, and cross-checks the result for completeness.
//
// The official radicals_214.csv is treated as a read-only oracle by the
// build; only the derived table is regenerated, in full, each run.
package radicals

import "sort"

// Origin classifies where a derived entry's metadata came from.
type Origin string

const (
	// OriginKangxi marks glyphs found in the official 214 Kangxi table.
	OriginKangxi Origin = "kangxi_214"
	// OriginVariant marks positional variant forms of a Kangxi radical.
	OriginVariant Origin = "variant"
	// OriginComponent marks recurring components that are neither Kangxi
	// radicals nor recognized variants.
	OriginComponent Origin = "component"
)

// originRank orders origins for the derived table sort.
var originRank = map[Origin]int{
	OriginKangxi:    0,
	OriginVariant:   1,
	OriginComponent: 2,
}

// Canonical is one row of the official Kangxi reference table.
type Canonical struct {
	Radical     string
	Pinyin      string
	Description string
	Meaning     string
}

// TraditionalForm annotates a simplified radical with its traditional glyph.
type TraditionalForm struct {
	Glyph string
	Note  string
}

// ComponentInfo is the reading/gloss pair for a common non-radical component.
type ComponentInfo struct {
	Pinyin  string
	Meaning string
}

// maxExampleWords bounds how many example words a usage record keeps.
const maxExampleWords = 5

// Usage tracks how one glyph is used across all vocabulary decompositions.
type Usage struct {
	Count  int
	Levels map[string]bool
	Words  []string
}

// sortedLevels returns the level set as a sorted slice.
func (u *Usage) sortedLevels() []string {
	levels := make([]string, 0, len(u.Levels))
	for level := range u.Levels {
		levels = append(levels, level)
	}
	sort.Strings(levels)
	return levels
}

// DerivedEntry is one row of the generated radicals.csv.
type DerivedEntry struct {
	Radical     string
	Pinyin      string
	Description string
	Meaning     string
	Set         Origin
	Traditional string
	Levels      []string // sorted, deduplicated
	UsageCount  int
	MainRadical string // set only for variants
}
