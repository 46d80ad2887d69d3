package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/janulus/matrixtool/internal/cli"
	"github.com/janulus/matrixtool/internal/radicals"
)

var radicalsCmd = &cobra.Command{
	Use:   "radicals",
	Short: "Radical table commands",
	Long: `Radical commands maintain the derived radical table for a language.

The table is generated from vocabulary decompositions against the official
Kangxi reference table and is fully rewritten on every build.

Examples:
  matrixtool radicals build             # Regenerate radicals.csv from vocabulary
  matrixtool radicals verify            # Check radical system consistency
  matrixtool radicals strokes           # Add stroke counts to radicals.csv
  matrixtool radicals missing           # List radicals without readings`,
}

var radicalsBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Regenerate the derived radical table from vocabulary",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

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

		entries, err := radicals.Build(dir.CanonicalPath(name), byLevel, lang.Levels)
		if err != nil {
			return err
		}

		if err := os.MkdirAll(dir.RadicalsDir(name), 0o755); err != nil {
			return fmt.Errorf("create radicals directory: %w", err)
		}
		if err := radicals.WriteDerived(dir.DerivedPath(name), entries); err != nil {
			return err
		}
		logger.Info("wrote derived radical table",
			"path", dir.DerivedPath(name), "radicals", len(entries))

		report := radicals.Validate(entries, byLevel, lang.Levels)
		return cli.Output(struct {
			Table      string           `json:"table" yaml:"table"`
			Summary    radicals.Summary `json:"summary" yaml:"summary"`
			Validation *radicals.Report `json:"validation" yaml:"validation"`
		}{
			Table:      dir.DerivedPath(name),
			Summary:    radicals.Summarize(entries),
			Validation: report,
		})
	},
}

var radicalsVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify radical system consistency",
	Long: `Verify checks that the Kangxi reference table is intact, the derived
table is well-formed, and every vocabulary decomposition resolves to a
derived entry tagged with the right level. Exits non-zero on failure.`,
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

		report, err := radicals.Verify(dir.CanonicalPath(name), dir.DerivedPath(name), byLevel, lang.Levels)
		if err != nil {
			return err
		}
		if err := cli.Output(report); err != nil {
			return err
		}
		if !report.Passed {
			return fmt.Errorf("radical verification failed with %d error(s)", len(report.Errors))
		}
		return nil
	},
}

var radicalsStrokesCmd = &cobra.Command{
	Use:   "strokes",
	Short: "Add a stroke count column to the radical tables",
	Long: `Strokes rewrites radicals.csv and radicals_214.csv in place with a
StrokeCount column. Tables that already carry the column get their values
refreshed, and a missing table is skipped with a notice.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		dir, err := newLayout(cfg)
		if err != nil {
			return err
		}
		name, _, err := selectedLanguage(cfg)
		if err != nil {
			return err
		}

		for _, path := range []string{dir.DerivedPath(name), dir.CanonicalPath(name)} {
			if _, err := os.Stat(path); err != nil {
				logger.Warn("radical table not found, skipping", "path", path)
				continue
			}
			if err := radicals.AddStrokeColumn(path); err != nil {
				return err
			}
			logger.Info("added stroke counts", "path", path)
		}
		return nil
	},
}

var radicalsMissingCmd = &cobra.Command{
	Use:   "missing",
	Short: "List derived radicals without a reading",
	Long: `Missing rebuilds the derived table in memory from the current
vocabulary and reports every entry whose reading came up empty. The table
on disk is not touched.`,
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
		entries, err := radicals.Build(dir.CanonicalPath(name), byLevel, lang.Levels)
		if err != nil {
			return err
		}

		missing := radicals.MissingReadings(entries)
		return cli.Output(struct {
			Total   int                     `json:"total" yaml:"total"`
			Missing []radicals.DerivedEntry `json:"missing,omitempty" yaml:"missing,omitempty"`
		}{
			Total:   len(missing),
			Missing: missing,
		})
	},
}

func init() {
	radicalsCmd.AddCommand(radicalsBuildCmd)
	radicalsCmd.AddCommand(radicalsVerifyCmd)
	radicalsCmd.AddCommand(radicalsStrokesCmd)
	radicalsCmd.AddCommand(radicalsMissingCmd)

	rootCmd.AddCommand(radicalsCmd)
}
