package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/janulus/matrixtool/internal/audio"
	"github.com/janulus/matrixtool/internal/cli"
)

var audioLevel string

var audioCmd = &cobra.Command{
	Use:   "audio",
	Short: "Word audio library commands",
	Long: `Audio commands manage the word clip library under assets/audio.

Examples:
  matrixtool audio coverage                  # Report clip coverage per level
  matrixtool audio organize                  # Sort loose clips into level folders
  matrixtool audio generate --level basic    # Synthesize missing clips via TTS`,
}

var audioCoverageCmd = &cobra.Command{
	Use:   "coverage",
	Short: "Report audio clip coverage against the vocabulary",
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

		return cli.Output(audio.Coverage(dir, name, lang.AudioFolder, byLevel, lang.Levels))
	},
}

var audioOrganizeCmd = &cobra.Command{
	Use:   "organize",
	Short: "Move loose clips and raw recordings into their level folders",
	Long: `Organize sorts the audio library into its final layout. Loose clips at
the language's audio root move into the level folder of their word, and
raw numbered recordings under <level>/words/ are renamed to word clips by
position in the level's vocabulary.`,
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

		result, err := audio.Organize(dir, lang.AudioFolder, byLevel, lang.Levels)
		if err != nil {
			return err
		}
		for _, level := range lang.Levels {
			renamed, err := audio.RenameRecordings(dir, lang.AudioFolder, level, byLevel[level])
			if err != nil {
				return err
			}
			result.Moved = append(result.Moved, renamed.Moved...)
			result.Skipped = append(result.Skipped, renamed.Skipped...)
			result.Unmatched = append(result.Unmatched, renamed.Unmatched...)
		}
		newLogger().Info("organized audio clips",
			"moved", len(result.Moved), "skipped", len(result.Skipped), "unmatched", len(result.Unmatched))
		return cli.Output(result)
	},
}

var audioGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Synthesize missing clips with OpenAI TTS",
	Long: `Generate synthesizes a clip for every vocabulary word in a level that
has none yet. Requires tts.enabled in configuration and an API key
(tts.api_key, ${OPENAI_API_KEY} by default).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if !cfg.TTS.Enabled {
			return fmt.Errorf("tts is disabled in configuration")
		}
		apiKey := cfg.ResolveTTSAPIKey()
		if apiKey == "" {
			return fmt.Errorf("no TTS API key configured")
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

		levels := lang.Levels
		if audioLevel != "" {
			levels = []string{audioLevel}
			if _, ok := byLevel[audioLevel]; !ok {
				return fmt.Errorf("level %q is not configured for %s", audioLevel, name)
			}
		}

		client := audio.NewTTSClient(audio.TTSConfig{
			APIKey:     apiKey,
			Model:      cfg.TTS.Model,
			Voice:      cfg.TTS.Voice,
			Speed:      cfg.TTS.Speed,
			MaxRetries: cfg.TTS.MaxRetries,
			RetryDelay: 2 * time.Second,
		})

		results := make(map[string]*audio.GenerateResult, len(levels))
		for _, level := range levels {
			coverage := audio.Coverage(dir, name, lang.AudioFolder, byLevel, []string{level})
			missing := coverage.Levels[0].Missing
			if len(missing) == 0 {
				logger.Info("level fully covered", "level", level)
				continue
			}

			logger.Info("generating clips", "level", level, "missing", len(missing))
			result, err := audio.GenerateMissing(cmd.Context(), client, dir, lang.AudioFolder, level, missing)
			if result != nil {
				results[level] = result
			}
			if err != nil {
				// Context cancellation: report what was produced so far.
				if outErr := cli.Output(results); outErr != nil {
					return outErr
				}
				return err
			}
		}

		return cli.Output(results)
	},
}

func init() {
	audioGenerateCmd.Flags().StringVar(&audioLevel, "level", "", "generate for one level only (default: all levels)")

	audioCmd.AddCommand(audioCoverageCmd)
	audioCmd.AddCommand(audioOrganizeCmd)
	audioCmd.AddCommand(audioGenerateCmd)

	rootCmd.AddCommand(audioCmd)
}
