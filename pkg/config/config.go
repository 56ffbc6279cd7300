package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var DefaultPath = "config.yaml"

type Config struct {
	Log struct {
		Level    string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
		Telegram struct {
			Token  string `yaml:"token"`
			ChatID string `yaml:"chat_id"`
		} `yaml:"telegram"`
	} `yaml:"log"`

	Sentry struct {
		DSN              string  `yaml:"dsn"`
		Environment      string  `yaml:"environment"`
		TracesSampleRate float64 `yaml:"traces_sample_rate"`
	} `yaml:"sentry"`

	Twitch struct {
		ClientID      string `yaml:"client_id" validate:"required"`
		OAuthToken    string `yaml:"oauth_token" validate:"required"`
		UserAgent     string `yaml:"user_agent" validate:"required"`
		PlayerVersion string `yaml:"player_version" validate:"required"`
		VodsHash      string `yaml:"vods_hash" validate:"required"`
		ClipHash      string `yaml:"clip_hash" validate:"required"`

		// Timeout bounds every HTTP call, zero leaves the client default (none)
		Timeout time.Duration `yaml:"timeout" validate:"gte=0"`

		Endpoints struct {
			Helix string `yaml:"helix" validate:"required,url"`
			GQL   string `yaml:"gql" validate:"required,url"`
			API   string `yaml:"api" validate:"required,url"`
			Usher string `yaml:"usher" validate:"required,url"`
			TMI   string `yaml:"tmi" validate:"required,url"`
		} `yaml:"endpoints"`
	} `yaml:"twitch"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	var result Config
	applyDefaults(&result)
	return &result
}

// Load reads the YAML file at path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	var result Config

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, &result); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	}

	applyDefaults(&result)

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(result); err != nil {
		return nil, fmt.Errorf("failed to validate config: %w", err)
	}

	return &result, nil
}

func applyDefaults(c *Config) {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}

	if c.Sentry.TracesSampleRate == 0 {
		c.Sentry.TracesSampleRate = 1.0
	}
	if c.Sentry.Environment == "" {
		c.Sentry.Environment = "production"
	}

	setDefault(&c.Twitch.ClientID, "kimne78kx3ncx6brgo4mv6wki5h1ko")
	setDefault(&c.Twitch.OAuthToken, "jbun01lt3ul2yufhudh2m4m6ncokg3")
	setDefault(&c.Twitch.UserAgent, "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/81.0.4044.113 Safari/537.36")
	setDefault(&c.Twitch.PlayerVersion, "0.9.8")
	setDefault(&c.Twitch.VodsHash, "c3306aa37d92b24bc81a9b28dc64fca8232d53bc3072cd7038c71c0e704c0f58")
	setDefault(&c.Twitch.ClipHash, "36b89d2507fce29e5ca551df756d27c1cfe079e2609642b4390aa4c35796eb11")

	setDefault(&c.Twitch.Endpoints.Helix, "https://api.twitch.tv/helix")
	setDefault(&c.Twitch.Endpoints.GQL, "https://gql.twitch.tv/gql")
	setDefault(&c.Twitch.Endpoints.API, "https://api.twitch.tv")
	setDefault(&c.Twitch.Endpoints.Usher, "https://usher.ttvnw.net")
	setDefault(&c.Twitch.Endpoints.TMI, "https://tmi.twitch.tv")
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}
