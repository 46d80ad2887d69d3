package main

import (
	"fmt"
	"log/slog"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/janulus/matrixtool/internal/cli"
	"github.com/janulus/matrixtool/internal/config"
	"github.com/janulus/matrixtool/internal/layout"
	"github.com/janulus/matrixtool/internal/multilang"
	"github.com/janulus/matrixtool/internal/radicals"
)

var validateWatch bool

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Cross-check vocabulary against the derived radical table",
	Long: `Validate checks that every glyph used in vocabulary decompositions
resolves to an entry in radicals.csv tagged with the right level. The
report also carries composition statistics, composable words, and words
duplicated across levels; those are informational and never fail the run.

Examples:
  matrixtool validate              # Vocabulary vs radicals.csv
  matrixtool validate multilang    # Multi-language directory structure`,
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
		derived, err := radicals.LoadDerived(dir.DerivedPath(name))
		if err != nil {
			return err
		}

		report := radicals.Validate(derived, byLevel, lang.Levels)
		if err := cli.Output(report); err != nil {
			return err
		}
		if !report.Passed {
			return fmt.Errorf("validation failed: %d missing, %d wrong-level",
				len(report.Missing), len(report.WrongLevel))
		}
		return nil
	},
}

var validateMultilangCmd = &cobra.Command{
	Use:   "multilang",
	Short: "Validate multi-language integration",
	Long: `Multilang checks every configured language against the data directory:
matrix_index.json entries, vocabulary CSV columns, and the audio folder
layout. Audio coverage is reported but never fails the run.

With --watch, validation re-runs whenever the data directory changes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		dir, err := newLayout(cfg)
		if err != nil {
			return err
		}

		report, err := multilang.Verify(dir, cfg)
		if err != nil {
			return err
		}
		if err := cli.Output(report); err != nil {
			return err
		}

		if validateWatch {
			return watchAndValidate(cmd, dir, cfg)
		}

		if !report.Passed {
			return fmt.Errorf("validation failed with %d error(s)", len(report.Errors))
		}
		return nil
	},
}

// watchAndValidate re-runs multilang validation whenever something under the
// data directory changes, until the command context is cancelled.
func watchAndValidate(cmd *cobra.Command, dir *layout.Dir, cfg *config.Config) error {
	logger := newLogger()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir.DataPath()); err != nil {
		return fmt.Errorf("watch %s: %w", dir.DataPath(), err)
	}
	for name := range cfg.Languages {
		// Watch errors for language subdirectories are non-fatal; the
		// directory may not exist yet.
		if err := watcher.Add(dir.LanguagePath(name)); err != nil {
			logger.Warn("cannot watch language directory", "language", name, "err", err)
		}
	}

	logger.Info("watching data directory", "path", dir.DataPath())

	ctx := cmd.Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "err", err)
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			logger.Info("data changed, re-validating", "file", event.Name)

			report, err := multilang.Verify(dir, cfg)
			if err != nil {
				logger.Error("validation failed", "err", err)
				continue
			}
			if err := cli.Output(report); err != nil {
				return err
			}
			logValidationVerdict(logger, report)
		}
	}
}

func logValidationVerdict(logger *slog.Logger, report *multilang.Report) {
	if report.Passed {
		logger.Info("validation passed", "warnings", len(report.Warnings))
	} else {
		logger.Warn("validation failed", "errors", len(report.Errors))
	}
}

func init() {
	validateMultilangCmd.Flags().BoolVar(&validateWatch, "watch", false, "re-run validation on data changes")

	validateCmd.AddCommand(validateMultilangCmd)
	rootCmd.AddCommand(validateCmd)
}
