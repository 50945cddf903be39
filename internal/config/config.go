// Package config loads the solver's configuration: a yaml file with
// environment-variable overrides, resolved once at startup into a plain
// struct. Collaborators receive the data they need; nothing downstream reads
// the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all solver configuration.
type Config struct {
	LLM     LLMConfig     `yaml:"llm"`
	Image   ImageConfig   `yaml:"image"`
	Browser BrowserConfig `yaml:"browser"`
	Storage StorageConfig `yaml:"storage"`
	Solver  SolverConfig  `yaml:"solver"`
}

// LLMConfig configures the chat-completion transport.
type LLMConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`
	Timeout string `yaml:"timeout"`
}

// ImageConfig configures the image-generation transport.
type ImageConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	Enabled bool   `yaml:"enabled"`
}

// BrowserConfig configures the page automation.
type BrowserConfig struct {
	URL      string `yaml:"url"`
	Headless bool   `yaml:"headless"`
}

// StorageConfig selects and configures the artifact store.
type StorageConfig struct {
	// Backend is "local" or "s3".
	Backend string `yaml:"backend"`
	// OutputDir is the local backend's directory.
	OutputDir string `yaml:"output_dir"`
	// Bucket and Region apply to the s3 backend.
	Bucket string `yaml:"bucket"`
	Region string `yaml:"region"`
}

// SolverConfig configures the turn loop.
type SolverConfig struct {
	GuessRetries int `yaml:"guess_retries"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		LLM: LLMConfig{
			BaseURL: "https://api.openai.com/v1",
			Model:   "gpt-4.1-nano",
			Timeout: "60s",
		},
		Image: ImageConfig{
			Model:   "imagen-3.0-generate-002",
			Enabled: true,
		},
		Browser: BrowserConfig{
			Headless: true,
		},
		Storage: StorageConfig{
			Backend:   "local",
			OutputDir: "output",
			Region:    "ca-central-1",
		},
		Solver: SolverConfig{
			GuessRetries: 3,
		},
	}
}

// Load reads the optional yaml file at path, then applies environment
// overrides. A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(raw, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv maps environment variables onto the config. Env wins over file.
func (c *Config) applyEnv() {
	setString(&c.LLM.APIKey, "OPENAI_API_KEY")
	setString(&c.LLM.BaseURL, "OPENAI_BASE_URL")
	setString(&c.LLM.Model, "OPENAI_MODEL_ID")
	setString(&c.Image.APIKey, "GEMINI_API_KEY")
	setString(&c.Image.Model, "IMAGE_MODEL_ID")
	setString(&c.Browser.URL, "QUORDLE_URL")
	setString(&c.Storage.Backend, "STORAGE_BACKEND")
	setString(&c.Storage.OutputDir, "OUTPUT_FILEPATH")
	setString(&c.Storage.Bucket, "S3_BUCKET")
	setString(&c.Storage.Region, "AWS_REGION")
	setBool(&c.Browser.Headless, "BROWSER_HEADLESS")
	setBool(&c.Image.Enabled, "IMAGE_GENERATION_ENABLED")
	setInt(&c.Solver.GuessRetries, "GUESS_RETRIES")
}

// LLMTimeout parses the configured chat timeout.
func (c Config) LLMTimeout() time.Duration {
	d, err := time.ParseDuration(c.LLM.Timeout)
	if err != nil || d <= 0 {
		return 60 * time.Second
	}
	return d
}

// Validate checks settings that would otherwise fail deep inside a run.
func (c Config) Validate() error {
	if c.LLM.APIKey == "" {
		return fmt.Errorf("config: llm api key required (OPENAI_API_KEY)")
	}
	switch c.Storage.Backend {
	case "local":
		if c.Storage.OutputDir == "" {
			return fmt.Errorf("config: output_dir required for local storage")
		}
	case "s3":
		if c.Storage.Bucket == "" {
			return fmt.Errorf("config: bucket required for s3 storage")
		}
	default:
		return fmt.Errorf("config: unknown storage backend %q", c.Storage.Backend)
	}
	return nil
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setBool(dst *bool, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

func setInt(dst *int, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
