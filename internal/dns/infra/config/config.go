// Package config loads the process environment into a typed struct.
// dog is configured almost entirely by command-line flags; the
// environment only carries the debug switches, read once at startup and
// passed around explicitly from there.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// AppConfig holds configuration values parsed from environment variables.
type AppConfig struct {
	// Debug is the raw DOG_DEBUG value. Any non-empty value enables debug
	// logging to stderr; the exact value "trace" raises the verbosity.
	Debug string `koanf:"debug" validate:"omitempty,printascii"`
}

// DEFAULT_APP_CONFIG defines the default application configuration: no
// debug output.
var DEFAULT_APP_CONFIG = AppConfig{
	Debug: "",
}

// Trace returns true when the debug value asks for trace-level output.
func (c *AppConfig) Trace() bool {
	return c.Debug == "trace"
}

// envLoader loads environment variables with the prefix "DOG_", lowering
// the keys and stripping the prefix. Swappable in tests.
var envLoader = func(k *koanf.Koanf) error {
	return k.Load(env.Provider(".", env.Opt{
		Prefix: "DOG_",
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, "DOG_"))
			return key, strings.TrimSpace(value)
		},
	}), nil)
}

// defaultLoader loads default configuration values into the provided
// Koanf instance using the structs provider.
var defaultLoader = func(k *koanf.Koanf) error {
	return k.Load(structs.Provider(DEFAULT_APP_CONFIG, "koanf"), nil)
}

// Load parses environment variables and returns an AppConfig instance.
// It applies default values and runs validation automatically.
func Load() (*AppConfig, error) {
	k := koanf.New(".")

	if err := defaultLoader(k); err != nil {
		return nil, fmt.Errorf("error loading default config: %w", err)
	}

	if err := envLoader(k); err != nil {
		return nil, fmt.Errorf("error loading env: %w", err)
	}

	var cfg AppConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}
