package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type AudioConfig struct {
	SampleRate      int `yaml:"sample_rate"`
	Channels        int `yaml:"channels"`
	FramesPerBuffer int `yaml:"frames_per_buffer"`
	BufferChunks    int `yaml:"buffer_chunks"`
}

type GroqConfig struct {
	APIKey    string `yaml:"api_key"`
	BaseURL   string `yaml:"base_url"`
	Model     string `yaml:"model"`
	TimeoutMS int    `yaml:"timeout_ms"`
}

type DeepgramConfig struct {
	APIKey    string `yaml:"api_key"`
	Endpoint  string `yaml:"endpoint"`
	Model     string `yaml:"model"`
	Language  string `yaml:"language"`
	TimeoutMS int    `yaml:"timeout_ms"`
}

type UIConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type Config struct {
	LogLevel string         `yaml:"log_level"`
	Audio    AudioConfig    `yaml:"audio"`
	Groq     GroqConfig     `yaml:"groq"`
	Deepgram DeepgramConfig `yaml:"deepgram"`
	UI       UIConfig       `yaml:"ui"`
}

func Default() Config {
	return Config{
		LogLevel: "info",
		Audio: AudioConfig{
			SampleRate:      16000,
			Channels:        1,
			FramesPerBuffer: 1024,
			BufferChunks:    64,
		},
		Groq: GroqConfig{
			BaseURL:   "https://api.groq.com/openai/v1",
			Model:     "distil-whisper-large-v3-en",
			TimeoutMS: 30000,
		},
		Deepgram: DeepgramConfig{
			Endpoint:  "https://api.deepgram.com/v1/listen",
			Model:     "nova-3",
			Language:  "en",
			TimeoutMS: 30000,
		},
		UI: UIConfig{
			Width:  800,
			Height: 600,
		},
	}
}

func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return cfg, fmt.Errorf("config file not found: %w", err)
			}
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyEnvOverrides(&cfg)
	if err := validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// SlogLevel maps the configured log level onto slog's levels, defaulting
// to info for anything unrecognized.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func applyEnvOverrides(cfg *Config) {
	overrideString(&cfg.LogLevel, "VOXRACE_LOG_LEVEL")
	overrideInt(&cfg.Audio.SampleRate, "VOXRACE_AUDIO_SAMPLE_RATE")
	overrideInt(&cfg.Audio.Channels, "VOXRACE_AUDIO_CHANNELS")
	overrideInt(&cfg.Audio.FramesPerBuffer, "VOXRACE_AUDIO_FRAMES_PER_BUFFER")
	overrideInt(&cfg.Audio.BufferChunks, "VOXRACE_AUDIO_BUFFER_CHUNKS")
	// the prefixed variables win over the providers' conventional names
	overrideString(&cfg.Groq.APIKey, "GROQ_API_KEY")
	overrideString(&cfg.Groq.APIKey, "VOXRACE_GROQ_API_KEY")
	overrideString(&cfg.Groq.BaseURL, "VOXRACE_GROQ_BASE_URL")
	overrideString(&cfg.Groq.Model, "VOXRACE_GROQ_MODEL")
	overrideInt(&cfg.Groq.TimeoutMS, "VOXRACE_GROQ_TIMEOUT_MS")
	overrideString(&cfg.Deepgram.APIKey, "DEEPGRAM_API_KEY")
	overrideString(&cfg.Deepgram.APIKey, "VOXRACE_DEEPGRAM_API_KEY")
	overrideString(&cfg.Deepgram.Endpoint, "VOXRACE_DEEPGRAM_ENDPOINT")
	overrideString(&cfg.Deepgram.Model, "VOXRACE_DEEPGRAM_MODEL")
	overrideString(&cfg.Deepgram.Language, "VOXRACE_DEEPGRAM_LANGUAGE")
	overrideInt(&cfg.Deepgram.TimeoutMS, "VOXRACE_DEEPGRAM_TIMEOUT_MS")
	overrideInt(&cfg.UI.Width, "VOXRACE_UI_WIDTH")
	overrideInt(&cfg.UI.Height, "VOXRACE_UI_HEIGHT")
}

func overrideString(target *string, envKey string) {
	if value, ok := os.LookupEnv(envKey); ok && strings.TrimSpace(value) != "" {
		*target = value
	}
}

func overrideInt(target *int, envKey string) {
	if value, ok := os.LookupEnv(envKey); ok {
		if parsed, err := strconv.Atoi(value); err == nil {
			*target = parsed
		}
	}
}

func validate(cfg Config) error {
	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "error":
		// ok
	default:
		return errors.New("log_level must be one of debug|info|warn|error")
	}
	if cfg.Audio.SampleRate <= 0 {
		return errors.New("audio.sample_rate must be positive")
	}
	if cfg.Audio.Channels < 1 || cfg.Audio.Channels > 2 {
		return errors.New("audio.channels must be 1 or 2")
	}
	if cfg.Audio.FramesPerBuffer <= 0 {
		return errors.New("audio.frames_per_buffer must be positive")
	}
	if cfg.Audio.BufferChunks <= 0 {
		return errors.New("audio.buffer_chunks must be positive")
	}
	if cfg.Groq.BaseURL == "" {
		return errors.New("groq.base_url must not be empty")
	}
	if cfg.Groq.Model == "" {
		return errors.New("groq.model must not be empty")
	}
	if cfg.Groq.TimeoutMS < 0 {
		return errors.New("groq.timeout_ms must be >= 0")
	}
	if cfg.Deepgram.Endpoint == "" {
		return errors.New("deepgram.endpoint must not be empty")
	}
	if cfg.Deepgram.Model == "" {
		return errors.New("deepgram.model must not be empty")
	}
	if cfg.Deepgram.TimeoutMS < 0 {
		return errors.New("deepgram.timeout_ms must be >= 0")
	}
	if cfg.UI.Width <= 0 || cfg.UI.Height <= 0 {
		return errors.New("ui.width and ui.height must be positive")
	}
	return nil
}
