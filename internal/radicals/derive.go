package radicals

import (
	"fmt"
	"sort"

	"github.com/janulus/matrixtool/internal/vocab"
)

// Classify resolves one glyph's metadata. Precedence, first match wins:
// official Kangxi radical, then variant form, then component. Component
// metadata is looked up in the vocabulary itself before the common-component
// table, falling back to generic placeholders.
func Classify(glyph string, canonical map[string]Canonical, u *Usage, lookup vocab.Lookup) DerivedEntry {
	entry := DerivedEntry{
		Radical:    glyph,
		Levels:     u.sortedLevels(),
		UsageCount: u.Count,
	}

	if c, ok := canonical[glyph]; ok {
		entry.Set = OriginKangxi
		entry.Pinyin = c.Pinyin
		entry.Description = c.Description
		entry.Meaning = c.Meaning
		if tf, ok := Traditional(glyph); ok {
			entry.Traditional = tf.Glyph
		} else {
			entry.Traditional = glyph
		}
		return entry
	}

	if main, ok := VariantTarget(glyph); ok {
		entry.Set = OriginVariant
		entry.MainRadical = main
		entry.Traditional = glyph // variants are already simplified forms
		if base, ok := canonical[main]; ok {
			entry.Pinyin = base.Pinyin
			entry.Description = base.Description + " (variant form)"
			entry.Meaning = base.Meaning + " (component form)"
		} else {
			entry.Description = fmt.Sprintf("variant of %s", main)
			entry.Meaning = "component form"
		}
		return entry
	}

	entry.Set = OriginComponent
	entry.Traditional = glyph
	if info, ok := lookup[glyph]; ok {
		entry.Pinyin = info.Pinyin
		entry.Meaning = info.English
		entry.Description = "character component (also a word)"
	} else if info, ok := CommonComponent(glyph); ok {
		entry.Pinyin = info.Pinyin
		entry.Meaning = info.Meaning
		entry.Description = "common character component"
	} else {
		entry.Description = "word component"
		entry.Meaning = "character component (not official radical)"
	}
	return entry
}

// Build runs the full reconciliation: load the canonical table, extract
// usage from vocabulary, classify, and sort. Load failures are fatal; no
// partial table is produced.
func Build(canonicalPath string, byLevel map[string][]vocab.Entry, levelOrder []string) ([]DerivedEntry, error) {
	canonical, err := LoadCanonicalTable(canonicalPath)
	if err != nil {
		return nil, err
	}
	usage, lookup := ExtractUsage(byLevel, levelOrder)
	return BuildDerivedTable(canonical, usage, lookup), nil
}

// BuildDerivedTable classifies every glyph in the usage map and sorts the
// result: Kangxi entries first, then variants, then components, glyphs in
// codepoint order within each group. Exactly one entry per distinct glyph.
func BuildDerivedTable(canonical map[string]Canonical, usage map[string]*Usage, lookup vocab.Lookup) []DerivedEntry {
	entries := make([]DerivedEntry, 0, len(usage))
	for glyph, u := range usage {
		entries = append(entries, Classify(glyph, canonical, u, lookup))
	}

	sort.Slice(entries, func(i, j int) bool {
		if originRank[entries[i].Set] != originRank[entries[j].Set] {
			return originRank[entries[i].Set] < originRank[entries[j].Set]
		}
		return entries[i].Radical < entries[j].Radical
	})

	return entries
}
