package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP   HTTPConfig   `yaml:"http"`
	LLM    LLMConfig    `yaml:"llm"`
	Meteo  MeteoConfig  `yaml:"meteo"`
	Garden GardenConfig `yaml:"garden"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string        `yaml:"address"`
	ReadTimeout    time.Duration `yaml:"readTimeout"`
	WriteTimeout   time.Duration `yaml:"writeTimeout"`
	AllowedOrigins []string      `yaml:"allowedOrigins"`
}

// LLMConfig contains the completion service settings. APIKey may legitimately
// be empty at startup: endpoints then answer with a configuration error
// instead of the process refusing to boot.
type LLMConfig struct {
	APIKey      string  `yaml:"apiKey"`
	BaseURL     string  `yaml:"baseUrl"`
	TextModel   string  `yaml:"textModel"`
	VisionModel string  `yaml:"visionModel"`
	Temperature float32 `yaml:"temperature"`
}

// MeteoConfig controls the Open-Meteo forecast fetch.
type MeteoConfig struct {
	BaseURL string        `yaml:"baseUrl"`
	Timeout time.Duration `yaml:"timeout"`
}

// GardenConfig controls the potager calendar domain.
type GardenConfig struct {
	SystemPrompt string `yaml:"systemPrompt"`
	MaxListItems int    `yaml:"maxListItems"`
	RawSnippet   int    `yaml:"rawSnippet"`
}

// Load reads configuration from defaults, an optional YAML file and
// environment variables, in that order.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.HTTP.Address = ":" + v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("LLM_TEXT_MODEL"); v != "" {
		cfg.LLM.TextModel = v
	}
	if v := os.Getenv("LLM_VISION_MODEL"); v != "" {
		cfg.LLM.VisionModel = v
	}
	if v := os.Getenv("LLM_TEMPERATURE"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil {
			cfg.LLM.Temperature = float32(parsed)
		}
	}
	if v := os.Getenv("METEO_BASE_URL"); v != "" {
		cfg.Meteo.BaseURL = v
	}
	if v := os.Getenv("METEO_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Meteo.Timeout = parsed
		}
	}
	if v := os.Getenv("GARDEN_SYSTEM_PROMPT"); v != "" {
		cfg.Garden.SystemPrompt = v
	}
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 90 * time.Second,
		},
		LLM: LLMConfig{
			BaseURL:     "https://api.openai.com/v1",
			TextModel:   "gpt-4o-mini",
			VisionModel: "gpt-4.1-mini",
			Temperature: 0.2,
		},
		Meteo: MeteoConfig{
			BaseURL: "https://api.open-meteo.com/v1/forecast",
			Timeout: 8 * time.Second,
		},
		Garden: GardenConfig{
			SystemPrompt: "Tu es un jardinier expert du potager en France. Tu réponds UNIQUEMENT en JSON strict, sans texte autour.",
			MaxListItems: 20,
			RawSnippet:   800,
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.LLM.BaseURL == "" {
		return errors.New("llm.baseUrl cannot be empty")
	}
	if c.LLM.TextModel == "" {
		return errors.New("llm.textModel cannot be empty")
	}
	if c.LLM.VisionModel == "" {
		return errors.New("llm.visionModel cannot be empty")
	}
	if c.Meteo.BaseURL == "" {
		return errors.New("meteo.baseUrl cannot be empty")
	}
	if c.Meteo.Timeout <= 0 {
		return errors.New("meteo.timeout must be positive")
	}
	if c.Garden.SystemPrompt == "" {
		return errors.New("garden.systemPrompt cannot be empty")
	}
	if c.Garden.MaxListItems <= 0 {
		return errors.New("garden.maxListItems must be positive")
	}
	if c.Garden.RawSnippet <= 0 {
		return errors.New("garden.rawSnippet must be positive")
	}
	return nil
}
