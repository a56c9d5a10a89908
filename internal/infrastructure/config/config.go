// Package config handles configuration loading.
package config

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/tesso57/festdays/internal/application/settings"
	"gopkg.in/yaml.v3"
)

// Store holds the loaded application settings.
type Store struct {
	Settings   settings.Settings
	configPath string
}

// DefaultPath returns the config file location used when none is given.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "festdays", "config.yaml"), nil
}

// Load loads the configuration from the specified path or default location.
// A missing file yields the defaults; the file is never written.
func Load(customPath ...string) (*Store, error) {
	var configPath string
	if len(customPath) > 0 && customPath[0] != "" {
		configPath = customPath[0]
	} else {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		configPath = p
	}

	cfg := settings.Settings{}
	options := []kong.Option{
		kong.Vars{"default_feed_url": settings.DefaultFeedURL},
	}

	// Only add configuration loader if file exists
	if _, err := os.Stat(configPath); err == nil {
		options = append(options, kong.Configuration(yamlKongLoader, configPath))
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	parser, err := kong.New(&cfg, options...)
	if err != nil {
		return nil, err
	}
	if _, err := parser.Parse([]string{}); err != nil {
		return nil, err
	}

	cfg.FeedURL = strings.TrimSpace(cfg.FeedURL)
	cfg.Share.Command = strings.TrimSpace(cfg.Share.Command)
	if cfg.Log.File == "" {
		cfg.Log.File = filepath.Join(defaultStateHome(), "festdays", "festdays.log")
	}

	return &Store{Settings: cfg, configPath: configPath}, nil
}

// Path returns the file the settings were resolved from.
func (s *Store) Path() string {
	return s.configPath
}

func defaultStateHome() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return stateHome
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "state")
}

func yamlKongLoader(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil {
		if err == io.EOF {
			return nil, nil // Return nil resolver (no op)
		}
		return nil, err
	}

	var f kong.ResolverFunc = func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		names := []string{flag.Name, strings.ReplaceAll(flag.Name, "-", "_")}
		for _, name := range names {
			if v, ok := values[name]; ok {
				return v, nil
			}
			if v, ok := lookupNested(values, strings.Split(name, ".")); ok {
				return v, nil
			}
		}
		return nil, nil
	}
	return f, nil
}

func lookupNested(values map[string]any, parts []string) (any, bool) {
	if len(parts) < 2 {
		return nil, false
	}
	curr := values
	for i, part := range parts {
		if i == len(parts)-1 {
			v, ok := curr[part]
			return v, ok
		}
		next, ok := curr[part].(map[string]any)
		if !ok {
			return nil, false
		}
		curr = next
	}
	return nil, false
}
