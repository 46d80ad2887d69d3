// Package audio manages the word clip library under assets/audio: coverage
// scans against the vocabulary, organizing loose clips into level folders,
// and synthesizing missing clips over the OpenAI TTS API.
package audio

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/janulus/matrixtool/internal/layout"
	"github.com/janulus/matrixtool/internal/vocab"
)

// ClipExt is the audio format of word clips.
const ClipExt = ".mp3"

// ClipName returns the clip filename for a word. Spaces and path separators
// are not safe in filenames and become underscores.
func ClipName(word string) string {
	safe := strings.NewReplacer(" ", "_", "/", "_").Replace(word)
	return safe + ClipExt
}

// LevelCoverage reports clip coverage for one level.
type LevelCoverage struct {
	Level    string   `json:"level" yaml:"level"`
	Words    int      `json:"words" yaml:"words"`
	Clips    int      `json:"clips" yaml:"clips"`
	Coverage float64  `json:"coverage_pct" yaml:"coverage_pct"`
	Missing  []string `json:"missing,omitempty" yaml:"missing,omitempty"`
}

// CoverageReport is the result of an audio coverage scan for one language.
type CoverageReport struct {
	ID           string          `json:"id" yaml:"id"`
	Language     string          `json:"language" yaml:"language"`
	AudioFolder  string          `json:"audio_folder" yaml:"audio_folder"`
	Levels       []LevelCoverage `json:"levels" yaml:"levels"`
	TotalMissing int             `json:"total_missing" yaml:"total_missing"`
}

// Coverage scans each level's audio folder against the vocabulary and lists
// the words that still have no clip, in vocabulary order.
func Coverage(dir *layout.Dir, language, audioFolder string, byLevel map[string][]vocab.Entry, levelOrder []string) *CoverageReport {
	report := &CoverageReport{
		ID:          uuid.New().String(),
		Language:    language,
		AudioFolder: audioFolder,
	}

	for _, level := range levelOrder {
		entries := byLevel[level]
		cov := LevelCoverage{Level: level, Words: len(entries)}

		levelDir := dir.AudioLevelDir(audioFolder, level)
		for _, e := range entries {
			if clipExists(filepath.Join(levelDir, ClipName(e.Word))) {
				cov.Clips++
			} else {
				cov.Missing = append(cov.Missing, e.Word)
			}
		}
		if cov.Words > 0 {
			cov.Coverage = float64(cov.Clips) / float64(cov.Words) * 100
		}

		report.TotalMissing += len(cov.Missing)
		report.Levels = append(report.Levels, cov)
	}

	return report
}

func clipExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
