package config

// Config holds matrixtool configuration.
// Loaded from ./config.yaml or ~/.matrixtool/config.yaml, with
// MATRIXTOOL_* environment variable overrides.
type Config struct {
	// DataDir is the root of the web app data directory (default: ./web_v3).
	DataDir string `mapstructure:"data_dir" yaml:"data_dir"`

	// Languages configures every language the matrix serves.
	Languages map[string]LanguageCfg `mapstructure:"languages" yaml:"languages"`

	// TTS configures audio synthesis for missing word clips.
	TTS TTSCfg `mapstructure:"tts" yaml:"tts"`
}

// LanguageCfg describes one language's levels, CSV contract, and audio layout.
type LanguageCfg struct {
	Code        string   `mapstructure:"code" yaml:"code"`                 // BCP 47 code, e.g. "zh-CN"
	Levels      []string `mapstructure:"levels" yaml:"levels"`             // proficiency levels in order
	CSVColumns  []string `mapstructure:"csv_columns" yaml:"csv_columns"`   // required vocabulary columns
	AudioFolder string   `mapstructure:"audio_folder" yaml:"audio_folder"` // folder name under assets/audio
}

// TTSCfg configures the OpenAI TTS client used by `audio generate`.
type TTSCfg struct {
	Model      string  `mapstructure:"model" yaml:"model"`             // "tts-1-hd" (default), "tts-1", "gpt-4o-mini-tts"
	Voice      string  `mapstructure:"voice" yaml:"voice"`             // "onyx" (default)
	Speed      float64 `mapstructure:"speed" yaml:"speed"`             // 0.25-4.0
	APIKey     string  `mapstructure:"api_key" yaml:"api_key"`         // supports ${ENV_VAR} syntax
	MaxRetries int     `mapstructure:"max_retries" yaml:"max_retries"` // retry attempts per word
	Enabled    bool    `mapstructure:"enabled" yaml:"enabled"`
}

// DefaultLevels is the level progression shared by all languages.
var DefaultLevels = []string{"basic", "intermediate", "advanced"}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		DataDir: "",
		Languages: map[string]LanguageCfg{
			"chinese": {
				Code:        "zh-CN",
				Levels:      DefaultLevels,
				CSVColumns:  []string{"Category", "Word", "Pinyin", "English"},
				AudioFolder: "chinese",
			},
			"japanese": {
				Code:        "ja-JP",
				Levels:      DefaultLevels,
				CSVColumns:  []string{"Category", "Word", "Reading", "Romanization", "English"},
				AudioFolder: "Japanese",
			},
			"korean": {
				Code:        "ko-KR",
				Levels:      DefaultLevels,
				CSVColumns:  []string{"Category", "Word", "Romanization", "English"},
				AudioFolder: "Korean",
			},
		},
		TTS: TTSCfg{
			Model:      "tts-1-hd",
			Voice:      "onyx",
			Speed:      0.9,
			APIKey:     "${OPENAI_API_KEY}",
			MaxRetries: 3,
			Enabled:    true,
		},
	}
}

// GetLanguage returns a language config by name.
func (c *Config) GetLanguage(name string) (LanguageCfg, bool) {
	lang, ok := c.Languages[name]
	return lang, ok
}

// ResolveTTSAPIKey returns the TTS API key with ${ENV_VAR} references expanded.
func (c *Config) ResolveTTSAPIKey() string {
	return ResolveEnvVars(c.TTS.APIKey)
}
