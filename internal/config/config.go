// Package config loads prosedown.toml and validates it. Configuration is
// always threaded into the converter as explicit options; nothing in the
// core reads process-wide state.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
)

func configFilenames() []string {
	return []string{"prosedown.toml", ".prosedown.toml"}
}

// Load reads and validates the config file at configPath, discovering one
// in the current directory or a parent when configPath is empty.
func Load(configPath string) (*Config, error) {
	resolvedPath, err := resolveConfigPath(configPath)
	if err != nil {
		return nil, err
	}

	return loadFile(resolvedPath)
}

// LoadOrDefault behaves like Load but falls back to the default
// configuration when no config file can be found. An explicit --config
// path that does not exist is still an error.
func LoadOrDefault(configPath string) (*Config, error) {
	if configPath != "" {
		return Load(configPath)
	}

	foundPath, found, err := findConfigUpward()
	if err != nil {
		return nil, err
	}

	if !found {
		return Default(), nil
	}

	return loadFile(foundPath)
}

func loadFile(path string) (*Config, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, oops.Wrapf(err, "resolving absolute config path")
	}

	cfg := &Config{}
	k := koanf.New(".")

	if loadErr := k.Load(file.Provider(absPath), toml.Parser()); loadErr != nil {
		return nil, oops.
			Code("CONFIG_INVALID").
			With("path", absPath).
			Hint("Fix TOML syntax in your config").
			Wrapf(loadErr, "loading config from %q", absPath)
	}

	if unmarshalErr := k.Unmarshal("", cfg); unmarshalErr != nil {
		return nil, oops.
			Code("CONFIG_INVALID").
			With("path", absPath).
			Hint("Fix config structure to match the prosedown schema").
			Wrapf(unmarshalErr, "decoding config from %q", absPath)
	}

	cfg.ConfigDir = filepath.Dir(absPath)
	cfg.ApplyDefaults()

	if valErr := cfg.Validate(); valErr != nil {
		return nil, valErr
	}

	return cfg, nil
}

func resolveConfigPath(configPath string) (string, error) {
	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return "", oops.
					Code("CONFIG_NOT_FOUND").
					With("path", configPath).
					Hint("Create the file or pass a valid --config path").
					Errorf("config file %q does not exist", configPath)
			}

			return "", oops.Wrapf(err, "checking config file %q", configPath)
		}

		return configPath, nil
	}

	foundPath, found, err := findConfigUpward()
	if err != nil {
		return "", err
	}

	if !found {
		return "", oops.
			Code("CONFIG_NOT_FOUND").
			Hint("Run 'prosedown init' to create a config file").
			Errorf("no prosedown.toml or .prosedown.toml found in any parent directory")
	}

	return foundPath, nil
}

func findConfigUpward() (string, bool, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", false, oops.Wrapf(err, "getting working directory")
	}

	for {
		foundPath, found, findErr := findConfigInDirectory(dir)
		if findErr != nil {
			return "", false, findErr
		}

		if found {
			return foundPath, true, nil
		}

		parentDir := filepath.Dir(dir)
		if parentDir == dir {
			return "", false, nil
		}

		dir = parentDir
	}
}

func findConfigInDirectory(dir string) (string, bool, error) {
	for _, name := range configFilenames() {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, oops.Wrapf(err, "checking for config file at %q", path)
		}
	}

	return "", false, nil
}
