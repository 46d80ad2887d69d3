package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/janulus/matrixtool/internal/layout"
	"github.com/janulus/matrixtool/internal/vocab"
)

// recordingsSubdir holds raw numbered recordings awaiting renaming.
const recordingsSubdir = "words"

// OrganizeResult reports what an organize pass did.
type OrganizeResult struct {
	Moved     []string `json:"moved,omitempty" yaml:"moved,omitempty"`
	Skipped   []string `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	NotFound  []string `json:"not_found,omitempty" yaml:"not_found,omitempty"`
	Unmatched []string `json:"unmatched,omitempty" yaml:"unmatched,omitempty"`
}

// Organize moves loose clips sitting at the audio folder root into the level
// subfolder of the word they belong to. A clip whose word appears in several
// levels goes to the earliest level. Clips already present at the destination
// are skipped, and root clips matching no vocabulary word are reported but
// left in place.
func Organize(dir *layout.Dir, audioFolder string, byLevel map[string][]vocab.Entry, levelOrder []string) (*OrganizeResult, error) {
	root := dir.AudioDir(audioFolder)
	result := &OrganizeResult{}

	// First level wins for words taught at several levels.
	seen := make(map[string]bool)
	for _, level := range levelOrder {
		if err := dir.EnsureAudioLevelDir(audioFolder, level); err != nil {
			return nil, err
		}

		for _, e := range byLevel[level] {
			if seen[e.Word] {
				continue
			}
			seen[e.Word] = true

			src := filepath.Join(root, ClipName(e.Word))
			if !clipExists(src) {
				result.NotFound = append(result.NotFound, e.Word)
				continue
			}

			dst := filepath.Join(dir.AudioLevelDir(audioFolder, level), ClipName(e.Word))
			if clipExists(dst) {
				result.Skipped = append(result.Skipped, e.Word)
				continue
			}
			if err := os.Rename(src, dst); err != nil {
				return nil, fmt.Errorf("move %s to %s: %w", ClipName(e.Word), level, err)
			}
			result.Moved = append(result.Moved, e.Word)
		}
	}

	// Surface leftovers the vocabulary does not know about.
	leftovers, err := filepath.Glob(filepath.Join(root, "*"+ClipExt))
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}
	for _, clip := range leftovers {
		result.Unmatched = append(result.Unmatched, filepath.Base(clip))
	}

	return result, nil
}

// RenameRecordings renames raw numbered recordings under a level's words/
// subdirectory into word clips. Recordings are matched to vocabulary by
// position: the Nth recording in filename order becomes the clip of the Nth
// word of the level. Destinations that already exist are skipped.
func RenameRecordings(dir *layout.Dir, audioFolder, level string, entries []vocab.Entry) (*OrganizeResult, error) {
	recDir := filepath.Join(dir.AudioLevelDir(audioFolder, level), recordingsSubdir)
	if _, err := os.Stat(recDir); err != nil {
		return &OrganizeResult{}, nil // nothing recorded for this level
	}

	recordings, err := filepath.Glob(filepath.Join(recDir, "*"))
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", recDir, err)
	}
	sort.Strings(recordings)

	result := &OrganizeResult{}
	levelDir := dir.AudioLevelDir(audioFolder, level)

	for i, rec := range recordings {
		if i >= len(entries) {
			result.Unmatched = append(result.Unmatched, filepath.Base(rec))
			continue
		}
		word := entries[i].Word

		dst := filepath.Join(levelDir, ClipName(word))
		if clipExists(dst) {
			result.Skipped = append(result.Skipped, word)
			continue
		}
		if err := os.Rename(rec, dst); err != nil {
			return nil, fmt.Errorf("rename %s to %s: %w", filepath.Base(rec), ClipName(word), err)
		}
		result.Moved = append(result.Moved, word)
	}

	return result, nil
}
