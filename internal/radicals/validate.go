package radicals

import (
	"sort"

	"github.com/google/uuid"

	"github.com/janulus/matrixtool/internal/vocab"
)

// maxFindingWords bounds how many offending words a finding lists.
const maxFindingWords = 3

// maxComposableSamples bounds how many composable words the report lists.
const maxComposableSamples = 10

// Finding reports one glyph that failed a cross-check.
type Finding struct {
	Radical string   `json:"radical" yaml:"radical"`
	Level   string   `json:"level" yaml:"level"`
	Words   []string `json:"words,omitempty" yaml:"words,omitempty"`
}

// DuplicateWord reports a surface word that appears in more than one level.
// Informational only.
type DuplicateWord struct {
	Word   string   `json:"word" yaml:"word"`
	Levels []string `json:"levels" yaml:"levels"`
}

// ComposableWord is a word with 2+ components, all resolvable in the derived
// table. A precondition for the matrix composition feature.
type ComposableWord struct {
	Word     string   `json:"word" yaml:"word"`
	Pinyin   string   `json:"pinyin" yaml:"pinyin"`
	Radicals []string `json:"radicals" yaml:"radicals"`
}

// Report is the result of cross-checking vocabulary against the derived
// radical table. Missing and WrongLevel findings fail the run; everything
// else is informational.
type Report struct {
	ID                string           `json:"id" yaml:"id"`
	Missing           []Finding        `json:"missing,omitempty" yaml:"missing,omitempty"`
	WrongLevel        []Finding        `json:"wrong_level,omitempty" yaml:"wrong_level,omitempty"`
	CompositionCounts map[int]int      `json:"composition_counts" yaml:"composition_counts"`
	ComposableCount   int              `json:"composable_count" yaml:"composable_count"`
	ComposableSamples []ComposableWord `json:"composable_samples,omitempty" yaml:"composable_samples,omitempty"`
	DuplicateWords    []DuplicateWord  `json:"duplicate_words,omitempty" yaml:"duplicate_words,omitempty"`
	Passed            bool             `json:"passed" yaml:"passed"`
}

// findingKey identifies a finding: missing findings are keyed by glyph alone,
// wrong-level findings by glyph and level.
type findingKey struct {
	glyph string
	level string
}

// Validate cross-checks every vocabulary decomposition against the derived
// table. It never stops early on a bad record: all findings from a full pass
// are accumulated so one run yields the complete picture.
func Validate(derived []DerivedEntry, byLevel map[string][]vocab.Entry, levelOrder []string) *Report {
	report := &Report{
		ID:                uuid.New().String(),
		CompositionCounts: make(map[int]int),
	}

	byGlyph := make(map[string]DerivedEntry, len(derived))
	for _, e := range derived {
		byGlyph[e.Radical] = e
	}

	missing := make(map[findingKey]*Finding)
	wrongLevel := make(map[findingKey]*Finding)
	wordLevels := make(map[string][]string)
	var wordOrder []string

	for _, level := range levelOrder {
		for _, entry := range byLevel[level] {
			if entry.Word != "" {
				if _, seen := wordLevels[entry.Word]; !seen {
					wordOrder = append(wordOrder, entry.Word)
				}
				wordLevels[entry.Word] = append(wordLevels[entry.Word], level)
			}

			report.CompositionCounts[len(entry.Radicals)]++

			allResolved := true
			for _, glyph := range entry.Radicals {
				d, ok := byGlyph[glyph]
				if !ok {
					allResolved = false
					addFinding(missing, findingKey{glyph: glyph}, glyph, level, entry.Word)
					continue
				}
				if !containsLevel(d.Levels, level) {
					addFinding(wrongLevel, findingKey{glyph: glyph, level: level}, glyph, level, entry.Word)
				}
			}

			if len(entry.Radicals) >= 2 && allResolved {
				report.ComposableCount++
				if len(report.ComposableSamples) < maxComposableSamples {
					report.ComposableSamples = append(report.ComposableSamples, ComposableWord{
						Word:     entry.Word,
						Pinyin:   entry.Pinyin,
						Radicals: entry.Radicals,
					})
				}
			}
		}
	}

	report.Missing = sortedFindings(missing)
	report.WrongLevel = sortedFindings(wrongLevel)

	for _, word := range wordOrder {
		levels := wordLevels[word]
		if len(levels) > 1 {
			report.DuplicateWords = append(report.DuplicateWords, DuplicateWord{
				Word:   word,
				Levels: levels,
			})
		}
	}

	report.Passed = len(report.Missing) == 0 && len(report.WrongLevel) == 0
	return report
}

func addFinding(findings map[findingKey]*Finding, key findingKey, glyph, level, word string) {
	f, ok := findings[key]
	if !ok {
		f = &Finding{Radical: glyph, Level: level}
		findings[key] = f
	}
	if len(f.Words) < maxFindingWords {
		f.Words = append(f.Words, word)
	}
}

func sortedFindings(findings map[findingKey]*Finding) []Finding {
	if len(findings) == 0 {
		return nil
	}

	out := make([]Finding, 0, len(findings))
	for _, f := range findings {
		out = append(out, *f)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Radical != out[j].Radical {
			return out[i].Radical < out[j].Radical
		}
		return out[i].Level < out[j].Level
	})
	return out
}

func containsLevel(levels []string, level string) bool {
	for _, l := range levels {
		if l == level {
			return true
		}
	}
	return false
}
