package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"

	// secretFileSuffix marks a key whose value is a path to read the real
	// value from, e.g. APP_DATABASE_DSN_FILE=/run/secrets/dsn.
	secretFileSuffix = "_file"
)

// secretKeys may be supplied through a <key>_file indirection.
var secretKeys = []string{"database.dsn", "cache.url"}

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
}

// WithConfigDir reads the YAML files from dir instead of ./configs.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) { o.configDir = dir }
}

// Load builds the configuration for profile. Later layers win:
//
//  1. compiled-in defaults
//  2. {configDir}/base.yaml
//  3. {configDir}/{profile}.yaml
//  4. APP_ environment variables
//  5. secret files named by database.dsn_file and cache.url_file
//
// Environment names are matched against known keys so that field-internal
// underscores survive: APP_DATABASE_ACQUIRE_TIMEOUT is
// database.acquire_timeout, not database.acquire.timeout.
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")
	steps := []func(*koanf.Koanf) error{
		loadDefaults,
		loadYAML(filepath.Join(o.configDir, "base.yaml")),
		loadYAML(filepath.Join(o.configDir, profile+".yaml")),
		loadEnv,
		resolveSecretFiles,
	}
	for _, step := range steps {
		if err := step(k); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

// loadDefaults seeds every key so env matching works for keys the YAML
// files omit.
func loadDefaults(k *koanf.Koanf) error {
	for key, value := range defaults() {
		if err := k.Set(key, value); err != nil {
			return fmt.Errorf("setting default %s: %w", key, err)
		}
	}
	return nil
}

func loadYAML(path string) func(*koanf.Koanf) error {
	return func(k *koanf.Koanf) error {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config %s: %w", path, err)
		}
		return nil
	}
}

func loadEnv(k *koanf.Koanf) error {
	known := make(map[string]string, len(k.Keys()))
	for _, key := range k.Keys() {
		known[strings.ReplaceAll(key, ".", "_")] = key
	}

	err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(name, value string) (string, any) {
			name = strings.ToLower(strings.TrimPrefix(name, envPrefix))
			if key, ok := known[name]; ok {
				return key, value
			}
			return strings.ReplaceAll(name, "_", "."), value
		},
	}), nil)
	if err != nil {
		return fmt.Errorf("loading env vars: %w", err)
	}
	return nil
}

// resolveSecretFiles replaces each secret key with the trimmed contents of
// the file its _file sibling names.
func resolveSecretFiles(k *koanf.Koanf) error {
	for _, key := range secretKeys {
		path := k.String(key + secretFileSuffix)
		if path == "" {
			continue
		}
		b, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return fmt.Errorf("reading %s%s: %w", key, secretFileSuffix, err)
		}
		if err := k.Set(key, strings.TrimSpace(string(b))); err != nil {
			return fmt.Errorf("setting %s: %w", key, err)
		}
	}
	return nil
}

func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`):
		return fmt.Errorf("profile must not contain path separators, got %q", profile)
	case strings.Contains(profile, ".."):
		return fmt.Errorf("profile must not contain path traversal, got %q", profile)
	}
	return nil
}
