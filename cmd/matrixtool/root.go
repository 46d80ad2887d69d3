package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/janulus/matrixtool/internal/cli"
	"github.com/janulus/matrixtool/internal/config"
	"github.com/janulus/matrixtool/internal/layout"
	"github.com/janulus/matrixtool/internal/vocab"
	"github.com/janulus/matrixtool/version"
)

var (
	cfgFile      string
	dataDir      string
	outputFormat string
	langName     string
)

var rootCmd = &cobra.Command{
	Use:   "matrixtool",
	Short: "Authoring toolkit for Janulus vocabulary matrix data",
	Long: `Matrixtool maintains the data directory behind a Janulus-style
language matrix: vocabulary CSVs per proficiency level, the radical
tables derived from them, the matrix index, and the word audio library.

The toolkit includes:
  - Radical table generation from vocabulary decompositions
  - Structural verification of the radical system
  - Vocabulary merging and statistics
  - Multi-language integration validation
  - Audio coverage, organization, and TTS generation`,
	Version:       version.GitRelease,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.matrixtool/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&dataDir, "data", "", "matrix data directory (default: ./web_v3)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format: yaml or json",
	)
	rootCmd.PersistentFlags().StringVarP(
		&langName, "language", "l", "chinese", "language to operate on",
	)

	// Set output format before any command runs
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		cli.SetOutputFormat(outputFormat)
	}

	rootCmd.AddCommand(versionCmd)
}

// newLogger builds the logger shared by all commands.
func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// loadConfig loads configuration honoring the --config flag.
func loadConfig() (*config.Config, error) {
	cm, err := config.NewManager(cfgFile)
	if err != nil {
		return nil, err
	}
	return cm.Get(), nil
}

// newLayout resolves the data directory from the --data flag or config.
func newLayout(cfg *config.Config) (*layout.Dir, error) {
	path := dataDir
	if path == "" {
		path = cfg.DataDir
	}
	return layout.New(path)
}

// selectedLanguage resolves the --language flag against configuration.
func selectedLanguage(cfg *config.Config) (string, config.LanguageCfg, error) {
	lang, ok := cfg.GetLanguage(langName)
	if !ok {
		return "", config.LanguageCfg{}, fmt.Errorf("language %q is not configured", langName)
	}
	return langName, lang, nil
}

// loadLanguageVocab reads every level CSV for a language. A missing level
// file is an error.
func loadLanguageVocab(dir *layout.Dir, name string, lang config.LanguageCfg) (map[string][]vocab.Entry, error) {
	paths := make(map[string]string, len(lang.Levels))
	for _, level := range lang.Levels {
		paths[level] = dir.VocabularyPath(name, level)
	}
	return vocab.LoadLevels(paths, lang.Levels)
}
