package audio

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/janulus/matrixtool/internal/layout"
)

const (
	ttsDefaultModel = openai.SpeechModelTTS1HD
	ttsDefaultVoice = "onyx"
)

// TTSConfig holds configuration for the OpenAI speech client.
type TTSConfig struct {
	APIKey     string
	Model      string        // "tts-1-hd" (default), "tts-1", "gpt-4o-mini-tts"
	Voice      string        // "onyx" (default)
	Speed      float64       // 0.25-4.0
	MaxRetries int           // Retry attempts per word
	RetryDelay time.Duration // Base delay between attempts
	Timeout    time.Duration // HTTP timeout
	BaseURL    string        // Optional (tests)
	HTTPClient *http.Client  // Optional (tests)
}

// TTSClient synthesizes single-word clips using the official OpenAI SDK.
type TTSClient struct {
	model      string
	voice      string
	speed      float64
	maxRetries int
	retryDelay time.Duration
	client     openai.Client
}

// NewTTSClient creates a speech client with defaults filled in.
func NewTTSClient(cfg TTSConfig) *TTSClient {
	if cfg.Model == "" {
		cfg.Model = ttsDefaultModel
	}
	if cfg.Voice == "" {
		cfg.Voice = ttsDefaultVoice
	}
	if cfg.Speed <= 0 {
		cfg.Speed = 1.0
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.RetryDelay == 0 {
		cfg.RetryDelay = 2 * time.Second
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 120 * time.Second
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithHTTPClient(httpClient),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &TTSClient{
		model:      cfg.Model,
		voice:      cfg.Voice,
		speed:      cfg.Speed,
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
		client:     openai.NewClient(opts...),
	}
}

// Synthesize converts one word to MP3 audio, retrying transient failures.
func (c *TTSClient) Synthesize(ctx context.Context, word string) ([]byte, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil, fmt.Errorf("word is required")
	}

	var audio []byte
	err := retry.Do(
		func() error {
			resp, err := c.client.Audio.Speech.New(ctx, openai.AudioSpeechNewParams{
				Input:          word,
				Model:          openai.SpeechModel(c.model),
				Voice:          openai.AudioSpeechNewParamsVoice(c.voice),
				ResponseFormat: openai.AudioSpeechNewParamsResponseFormatMP3,
				Speed:          openai.Float(c.speed),
			})
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			audio, err = io.ReadAll(resp.Body)
			if err != nil {
				return fmt.Errorf("read audio response: %w", err)
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(uint(c.maxRetries)),
		retry.Delay(c.retryDelay),
	)
	if err != nil {
		return nil, fmt.Errorf("synthesize %q: %w", word, err)
	}
	return audio, nil
}

// GenerateResult reports what a generation pass produced.
type GenerateResult struct {
	Generated []string `json:"generated,omitempty" yaml:"generated,omitempty"`
	Skipped   []string `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	Failed    []string `json:"failed,omitempty" yaml:"failed,omitempty"`
	Errors    []string `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// GenerateMissing synthesizes clips for the given words into a level's audio
// folder. Words that already have a clip are skipped, and per-word synthesis
// failures are recorded without stopping the pass. Context cancellation stops
// the pass and returns the partial result with the context error.
func GenerateMissing(ctx context.Context, client *TTSClient, dir *layout.Dir, audioFolder, level string, words []string) (*GenerateResult, error) {
	if err := dir.EnsureAudioLevelDir(audioFolder, level); err != nil {
		return nil, err
	}

	levelDir := dir.AudioLevelDir(audioFolder, level)
	result := &GenerateResult{}

	for _, word := range words {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		path := filepath.Join(levelDir, ClipName(word))
		if clipExists(path) {
			result.Skipped = append(result.Skipped, word)
			continue
		}

		clip, err := client.Synthesize(ctx, word)
		if err != nil {
			result.Failed = append(result.Failed, word)
			result.Errors = append(result.Errors, err.Error())
			continue
		}

		if err := os.WriteFile(path, clip, 0o644); err != nil {
			return result, fmt.Errorf("write %s: %w", path, err)
		}
		result.Generated = append(result.Generated, word)
	}

	return result, nil
}
