// Package layout describes the on-disk structure of a Janulus matrix data
// directory. All tools resolve vocabulary CSVs, radical tables, the matrix
// index, and audio folders through a single Dir so path conventions live in
// one place.
package layout

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DefaultDirName is the default name of the web app data root.
	DefaultDirName = "web_v3"

	// DataDirName is the subdirectory holding CSV data and the matrix index.
	DataDirName = "data"

	// AssetsDirName is the subdirectory holding static assets (audio).
	AssetsDirName = "assets"

	// IndexFileName is the matrix index consumed by the web frontend.
	IndexFileName = "matrix_index.json"

	// CanonicalFileName is the official Kangxi reference table.
	CanonicalFileName = "radicals_214.csv"

	// DerivedFileName is the vocabulary-derived radical table.
	DerivedFileName = "radicals.csv"
)

// Dir represents the root of a matrix data directory.
type Dir struct {
	path string
}

// New creates a Dir rooted at path. If path is empty, the default
// (./web_v3 relative to the working directory) is used.
func New(path string) (*Dir, error) {
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		path = filepath.Join(wd, DefaultDirName)
	}

	return &Dir{path: path}, nil
}

// Path returns the root path of the data directory.
func (d *Dir) Path() string {
	return d.path
}

// DataPath returns the path to the data directory.
func (d *Dir) DataPath() string {
	return filepath.Join(d.path, DataDirName)
}

// IndexPath returns the path to matrix_index.json.
func (d *Dir) IndexPath() string {
	return filepath.Join(d.DataPath(), IndexFileName)
}

// LanguagePath returns the data directory for a language, e.g. "chinese".
func (d *Dir) LanguagePath(language string) string {
	return filepath.Join(d.DataPath(), "languages", language)
}

// VocabularyPath returns the vocabulary CSV for a language and level.
func (d *Dir) VocabularyPath(language, level string) string {
	return filepath.Join(d.LanguagePath(language), level+".csv")
}

// MergedVocabularyPath returns the all-levels vocabulary CSV for a language.
func (d *Dir) MergedVocabularyPath(language string) string {
	return filepath.Join(d.LanguagePath(language), "all_levels.csv")
}

// RadicalsDir returns the radicals directory for a language.
func (d *Dir) RadicalsDir(language string) string {
	return filepath.Join(d.LanguagePath(language), "radicals")
}

// CanonicalPath returns the official Kangxi reference table for a language.
func (d *Dir) CanonicalPath(language string) string {
	return filepath.Join(d.RadicalsDir(language), CanonicalFileName)
}

// DerivedPath returns the vocabulary-derived radical table for a language.
func (d *Dir) DerivedPath(language string) string {
	return filepath.Join(d.RadicalsDir(language), DerivedFileName)
}

// AudioDir returns the audio directory for a language's audio folder name.
// The folder name is the language's audio path style from the index
// (e.g. "chinese", "Japanese"), not necessarily the lowercase language key.
func (d *Dir) AudioDir(audioFolder string) string {
	return filepath.Join(d.path, AssetsDirName, "audio", audioFolder)
}

// AudioLevelDir returns the audio directory for one proficiency level.
func (d *Dir) AudioLevelDir(audioFolder, level string) string {
	return filepath.Join(d.AudioDir(audioFolder), level)
}

// Exists returns true if the data root exists.
func (d *Dir) Exists() bool {
	_, err := os.Stat(d.path)
	return err == nil
}

// EnsureAudioLevelDir creates the audio directory for a level if missing.
func (d *Dir) EnsureAudioLevelDir(audioFolder, level string) error {
	dir := d.AudioLevelDir(audioFolder, level)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create audio directory: %w", err)
	}
	return nil
}
