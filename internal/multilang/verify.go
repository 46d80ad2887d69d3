package multilang

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/google/uuid"

	"github.com/janulus/matrixtool/internal/config"
	"github.com/janulus/matrixtool/internal/layout"
)

// goodCoverage is the audio coverage percentage treated as complete.
const goodCoverage = 95.0

// LevelCoverage reports vocabulary size and audio coverage for one level.
type LevelCoverage struct {
	Level      string  `json:"level" yaml:"level"`
	Words      int     `json:"words" yaml:"words"`
	AudioFiles int     `json:"audio_files" yaml:"audio_files"`
	Coverage   float64 `json:"coverage_pct" yaml:"coverage_pct"`
}

// LanguageReport is the per-language slice of a verification run.
type LanguageReport struct {
	Language string          `json:"language" yaml:"language"`
	Code     string          `json:"code" yaml:"code"`
	Levels   []LevelCoverage `json:"levels" yaml:"levels"`
}

// Report is the result of a multi-language integration check.
type Report struct {
	ID        string           `json:"id" yaml:"id"`
	Languages []LanguageReport `json:"languages" yaml:"languages"`
	Errors    []string         `json:"errors,omitempty" yaml:"errors,omitempty"`
	Warnings  []string         `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Passed    bool             `json:"passed" yaml:"passed"`
}

// Verify checks every configured language against the data directory: index
// entries present and consistent, vocabulary CSVs carrying their required
// columns, and audio folders laid out per level. A missing or malformed
// matrix_index.json is fatal; everything else accumulates into the report.
func Verify(dir *layout.Dir, cfg *config.Config) (*Report, error) {
	entries, err := LoadIndex(dir.IndexPath())
	if err != nil {
		return nil, err
	}

	report := &Report{ID: uuid.New().String()}

	names := make([]string, 0, len(cfg.Languages))
	for name := range cfg.Languages {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		lang := cfg.Languages[name]
		report.checkIndex(entries, name, lang)

		lr := LanguageReport{Language: name, Code: lang.Code}
		counts := report.checkVocabulary(dir, name, lang)
		report.checkAudio(dir, name, lang, counts, &lr)
		report.Languages = append(report.Languages, lr)
	}

	report.Passed = len(report.Errors) == 0
	return report, nil
}

// checkIndex verifies the merged entry and one entry per level for a language.
func (r *Report) checkIndex(entries []IndexEntry, name string, lang config.LanguageCfg) {
	mergedID := name + "_all_levels"
	if merged, ok := findEntry(entries, mergedID); !ok {
		r.Errors = append(r.Errors, fmt.Sprintf("missing merged index entry %q", mergedID))
	} else {
		if merged.Language != lang.Code {
			r.Errors = append(r.Errors,
				fmt.Sprintf("%s: wrong language code (expected %s, got %s)", mergedID, lang.Code, merged.Language))
		}
		if merged.Type != "merged" {
			r.Errors = append(r.Errors, fmt.Sprintf("%s: type should be \"merged\"", mergedID))
		}
	}

	for _, level := range lang.Levels {
		levelID := name + "_" + level
		entry, ok := findEntry(entries, levelID)
		if !ok {
			r.Errors = append(r.Errors, fmt.Sprintf("missing index entry %q", levelID))
			continue
		}
		expectedFile := path.Join("languages", name, level+".csv")
		if entry.File != expectedFile {
			r.Errors = append(r.Errors,
				fmt.Sprintf("%s: wrong file path (expected %s, got %s)", levelID, expectedFile, entry.File))
		}
		if entry.LanguagePath != name {
			r.Errors = append(r.Errors,
				fmt.Sprintf("%s: wrong languagePath (expected %s, got %s)", levelID, name, entry.LanguagePath))
		}
	}
}

// checkVocabulary verifies CSV existence and required columns, returning word
// counts per level for the coverage computation.
func (r *Report) checkVocabulary(dir *layout.Dir, name string, lang config.LanguageCfg) map[string]int {
	counts := make(map[string]int, len(lang.Levels))

	if _, err := os.Stat(dir.LanguagePath(name)); err != nil {
		r.Errors = append(r.Errors, fmt.Sprintf("missing language directory %s", dir.LanguagePath(name)))
		return counts
	}

	for _, level := range lang.Levels {
		path := dir.VocabularyPath(name, level)
		words, missing, err := inspectCSV(path, lang.CSVColumns)
		if err != nil {
			r.Errors = append(r.Errors, fmt.Sprintf("%s/%s: %v", name, level, err))
			continue
		}
		for _, col := range missing {
			r.Errors = append(r.Errors, fmt.Sprintf("%s/%s.csv: missing column %q", name, level, col))
		}
		counts[level] = words
	}

	return counts
}

// checkAudio verifies the audio folder layout and fills in coverage per level.
func (r *Report) checkAudio(dir *layout.Dir, name string, lang config.LanguageCfg, counts map[string]int, lr *LanguageReport) {
	audioRoot := dir.AudioDir(lang.AudioFolder)
	if _, err := os.Stat(audioRoot); err != nil {
		r.Errors = append(r.Errors, fmt.Sprintf("missing audio folder %s", audioRoot))
	}

	for _, level := range lang.Levels {
		levelDir := dir.AudioLevelDir(lang.AudioFolder, level)
		clips, statErr := countClips(levelDir)
		if statErr != nil {
			r.Errors = append(r.Errors, fmt.Sprintf("missing audio level folder %s", levelDir))
		}

		cov := LevelCoverage{Level: level, Words: counts[level], AudioFiles: clips}
		if cov.Words > 0 {
			cov.Coverage = float64(cov.AudioFiles) / float64(cov.Words) * 100
			if cov.Coverage < goodCoverage {
				r.Warnings = append(r.Warnings,
					fmt.Sprintf("%s/%s: audio coverage %.1f%% (%d/%d)", name, level, cov.Coverage, cov.AudioFiles, cov.Words))
			}
		}
		lr.Levels = append(lr.Levels, cov)
	}
}

// inspectCSV counts the data rows of a vocabulary CSV and reports which of
// the required columns its header is missing.
func inspectCSV(path string, required []string) (int, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, nil, fmt.Errorf("missing CSV: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return 0, nil, nil
	}
	if err != nil {
		return 0, nil, fmt.Errorf("read header: %w", err)
	}

	have := make(map[string]bool, len(header))
	for _, name := range header {
		have[name] = true
	}
	var missing []string
	for _, name := range required {
		if !have[name] {
			missing = append(missing, name)
		}
	}

	words := 0
	for {
		if _, err := reader.Read(); err == io.EOF {
			break
		} else if err != nil {
			return 0, nil, fmt.Errorf("read row: %w", err)
		}
		words++
	}

	return words, missing, nil
}

func countClips(dir string) (int, error) {
	if _, err := os.Stat(dir); err != nil {
		return 0, err
	}
	clips, err := filepath.Glob(filepath.Join(dir, "*.mp3"))
	if err != nil {
		return 0, err
	}
	return len(clips), nil
}
