package main

import (
	"github.com/spf13/cobra"

	"github.com/janulus/matrixtool/internal/cli"
	"github.com/janulus/matrixtool/internal/radicals"
	"github.com/janulus/matrixtool/internal/vocab"
)

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Vocabulary CSV commands",
	Long: `Vocabulary commands work on a language's per-level CSV files.

Examples:
  matrixtool vocab merge      # Merge level CSVs into all_levels.csv
  matrixtool vocab stats      # Per-level word and character statistics`,
}

var vocabMergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge level CSVs into a single all-levels file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		dir, err := newLayout(cfg)
		if err != nil {
			return err
		}
		name, lang, err := selectedLanguage(cfg)
		if err != nil {
			return err
		}

		byLevel, err := loadLanguageVocab(dir, name, lang)
		if err != nil {
			return err
		}

		merged := vocab.MergeLevels(byLevel, lang.Levels)
		path := dir.MergedVocabularyPath(name)
		if err := vocab.WriteMerged(path, merged); err != nil {
			return err
		}
		newLogger().Info("wrote merged vocabulary", "path", path, "words", len(merged))
		return nil
	},
}

var vocabStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Per-level word and character statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		dir, err := newLayout(cfg)
		if err != nil {
			return err
		}
		name, lang, err := selectedLanguage(cfg)
		if err != nil {
			return err
		}

		byLevel, err := loadLanguageVocab(dir, name, lang)
		if err != nil {
			return err
		}

		// The derived table is optional here; without it the radical
		// character column stays zero.
		radicalSet := make(map[string]bool)
		if entries, err := radicals.LoadDerived(dir.DerivedPath(name)); err == nil {
			for _, e := range entries {
				radicalSet[e.Radical] = true
			}
		}

		return cli.Output(vocab.Stats(byLevel, lang.Levels, radicalSet))
	},
}

func init() {
	vocabCmd.AddCommand(vocabMergeCmd)
	vocabCmd.AddCommand(vocabStatsCmd)

	rootCmd.AddCommand(vocabCmd)
}
