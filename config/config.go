package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Settings    SettingsConfig    `yaml:"settings"`
	Audio       AudioConfig       `yaml:"audio"`
	Interpreter InterpreterConfig `yaml:"interpreter"`
	OpenAI      OpenAIConfig      `yaml:"openai"`
	Misses      MissesConfig      `yaml:"misses"`
	Pushover    PushoverConfig    `yaml:"pushover"`
	Log         LogConfig         `yaml:"log"`
}

type SettingsConfig struct {
	RecordDuration *int   `yaml:"record_duration"`
	Debug          int    `yaml:"debug"`
	MinValue       *int   `yaml:"min_value"`
	MaxValue       *int   `yaml:"max_value"`
	APIKey         string `yaml:"api_key"`
}

type AudioConfig struct {
	Source   string `yaml:"source"`
	FileDir  string `yaml:"file_dir"`
	DebugDir string `yaml:"debug_dir"`
}

type InterpreterConfig struct {
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url"`
}

type OpenAIConfig struct {
	TranscriptionModel string `yaml:"transcription_model"`
	BaseURL            string `yaml:"base_url"`
	MaxAttempts        int    `yaml:"max_attempts"`
}

type MissesConfig struct {
	Path string `yaml:"path"`
}

type PushoverConfig struct {
	Token   string `yaml:"token"`
	UserKey string `yaml:"user_key"`
	Enabled bool   `yaml:"enabled"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// Load reads the yaml file at path. A missing file yields the defaults, the same
// way an absent settings section does.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Settings.RecordDuration == nil {
		c.Settings.RecordDuration = intPtr(3)
	}
	if c.Settings.MinValue == nil {
		c.Settings.MinValue = intPtr(0)
	}
	if c.Settings.MaxValue == nil {
		c.Settings.MaxValue = intPtr(12)
	}
	if c.Audio.Source == "" {
		c.Audio.Source = "microphone"
	}
	if c.Audio.FileDir == "" {
		c.Audio.FileDir = "./answers"
	}
	if c.Audio.DebugDir == "" {
		c.Audio.DebugDir = "."
	}
	if c.Interpreter.Provider == "" {
		c.Interpreter.Provider = "openai"
	}
	if c.Interpreter.APIKey == "" {
		c.Interpreter.APIKey = c.Settings.APIKey
	}
	if c.OpenAI.TranscriptionModel == "" {
		c.OpenAI.TranscriptionModel = "whisper-1"
	}
	if c.OpenAI.MaxAttempts == 0 {
		c.OpenAI.MaxAttempts = 1
	}
	if c.Misses.Path == "" {
		c.Misses.Path = "incorrect.csv"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

func (c *Config) Validate() error {
	if c.RecordDuration() <= 0 {
		return fmt.Errorf("settings.record_duration must be positive, got %d", c.RecordDuration())
	}
	if c.MinValue() > c.MaxValue() {
		return fmt.Errorf("settings.min_value (%d) is greater than settings.max_value (%d)", c.MinValue(), c.MaxValue())
	}
	if c.OpenAI.MaxAttempts < 1 {
		return fmt.Errorf("openai.max_attempts must be at least 1, got %d", c.OpenAI.MaxAttempts)
	}
	switch c.Audio.Source {
	case "microphone", "file":
	default:
		return fmt.Errorf("unknown audio.source %q", c.Audio.Source)
	}
	switch c.Interpreter.Provider {
	case "openai", "anthropic", "gemini":
	default:
		return fmt.Errorf("unknown interpreter.provider %q", c.Interpreter.Provider)
	}
	return nil
}

func (c *Config) RecordDuration() int { return *c.Settings.RecordDuration }
func (c *Config) MinValue() int       { return *c.Settings.MinValue }
func (c *Config) MaxValue() int       { return *c.Settings.MaxValue }
func (c *Config) Debug() bool         { return c.Settings.Debug != 0 }

func intPtr(v int) *int { return &v }
