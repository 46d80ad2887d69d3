package layout

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNew(t *testing.T) {
	t.Run("with explicit path", func(t *testing.T) {
		dir, err := New("/tmp/test-matrix")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if dir.Path() != "/tmp/test-matrix" {
			t.Errorf("expected path /tmp/test-matrix, got %s", dir.Path())
		}
	})

	t.Run("with empty path uses default", func(t *testing.T) {
		dir, err := New("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		wd, _ := os.Getwd()
		expected := filepath.Join(wd, DefaultDirName)
		if dir.Path() != expected {
			t.Errorf("expected path %s, got %s", expected, dir.Path())
		}
	})
}

func TestDir_Paths(t *testing.T) {
	dir, _ := New("/tmp/test-matrix")

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"IndexPath", dir.IndexPath(), "/tmp/test-matrix/data/matrix_index.json"},
		{"VocabularyPath", dir.VocabularyPath("chinese", "basic"), "/tmp/test-matrix/data/languages/chinese/basic.csv"},
		{"MergedVocabularyPath", dir.MergedVocabularyPath("chinese"), "/tmp/test-matrix/data/languages/chinese/all_levels.csv"},
		{"CanonicalPath", dir.CanonicalPath("chinese"), "/tmp/test-matrix/data/languages/chinese/radicals/radicals_214.csv"},
		{"DerivedPath", dir.DerivedPath("chinese"), "/tmp/test-matrix/data/languages/chinese/radicals/radicals.csv"},
		{"AudioLevelDir", dir.AudioLevelDir("Japanese", "basic"), "/tmp/test-matrix/assets/audio/Japanese/basic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, tt.got)
			}
		})
	}
}

func TestDir_EnsureAudioLevelDir(t *testing.T) {
	tmpDir := t.TempDir()

	dir, err := New(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := dir.EnsureAudioLevelDir("chinese", "basic"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	info, err := os.Stat(dir.AudioLevelDir("chinese", "basic"))
	if err != nil {
		t.Fatalf("expected directory to exist: %v", err)
	}
	if !info.IsDir() {
		t.Error("expected a directory")
	}
}
