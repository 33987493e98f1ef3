// Package profile stores named practice presets as YAML files in the user's
// config directory.
//
// Resolution order for a profile's values: built-in defaults, then the
// profile's YAML file, then FLASHDRILL_* environment variables, then any
// explicitly-set command-line flags.
package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Profile is one named preset of drill settings.
type Profile struct {
	Name        string  `koanf:"name" validate:"required"`
	MasteryTime float64 `koanf:"mastery_time" validate:"gt=0"`
	MinVal      int     `koanf:"min_val" validate:"gte=0"`
	MaxVal      int     `koanf:"max_val" validate:"gtefield=MinVal"`
	LogFileDir  string  `koanf:"log_file_dir" validate:"required"`
}

var validate = validator.New()

// flagKeys maps command-line flag names to profile config keys. Flags not
// listed here are not part of the profile.
var flagKeys = map[string]string{
	"mastery-time": "mastery_time",
	"min":          "min_val",
	"max":          "max_val",
	"log-dir":      "log_file_dir",
}

// Default returns the built-in profile, matching the values a first run
// offers before anything is saved.
func Default() Profile {
	logDir := "."
	if home, err := os.UserHomeDir(); err == nil {
		logDir = filepath.Join(home, "Desktop")
	}
	return Profile{
		Name:        "Default",
		MasteryTime: 5,
		MinVal:      0,
		MaxVal:      12,
		LogFileDir:  logDir,
	}
}

// Dir resolves the profile directory in priority order:
// 1. FLASHDRILL_CONFIG environment variable
// 2. $XDG_CONFIG_HOME/flashdrill
// 3. ~/.config/flashdrill
func Dir() (string, error) {
	if p := os.Getenv("FLASHDRILL_CONFIG"); p != "" {
		return p, nil
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("profile: resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "flashdrill"), nil
}

// Load resolves the named profile. A missing file is not an error; the
// defaults simply apply. flags may be nil.
func Load(name string, flags *pflag.FlagSet) (Profile, error) {
	p := Default()
	p.Name = name

	dir, err := Dir()
	if err != nil {
		return Profile{}, err
	}

	k := koanf.New(".")
	path := filepath.Join(dir, name+".yml")
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Profile{}, fmt.Errorf("profile: load %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("FLASHDRILL_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "FLASHDRILL_"))
	}), nil); err != nil {
		return Profile{}, fmt.Errorf("profile: load environment: %w", err)
	}

	if flags != nil {
		provider := posflag.ProviderWithValue(flags, ".", k,
			func(key, value string) (string, any) {
				return flagKeys[key], value
			})
		if err := k.Load(provider, nil); err != nil {
			return Profile{}, fmt.Errorf("profile: load flags: %w", err)
		}
	}

	if err := k.Unmarshal("", &p); err != nil {
		return Profile{}, fmt.Errorf("profile: unmarshal %s: %w", name, err)
	}
	p.Name = name

	if err := validate.Struct(p); err != nil {
		return Profile{}, fmt.Errorf("profile: invalid profile %s: %w", name, err)
	}
	return p, nil
}

// Save writes the profile to its YAML file, creating the config dir if
// needed.
func Save(p Profile) error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("profile: invalid profile %s: %w", p.Name, err)
	}
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("profile: create config dir: %w", err)
	}

	data, err := yaml.Parser().Marshal(map[string]any{
		"name":         p.Name,
		"mastery_time": p.MasteryTime,
		"min_val":      p.MinVal,
		"max_val":      p.MaxVal,
		"log_file_dir": p.LogFileDir,
	})
	if err != nil {
		return fmt.Errorf("profile: marshal %s: %w", p.Name, err)
	}
	path := filepath.Join(dir, p.Name+".yml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("profile: write %s: %w", path, err)
	}
	return nil
}

// Delete removes the named profile's file.
func Delete(name string) error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	path := filepath.Join(dir, name+".yml")
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("profile: delete %s: %w", path, err)
	}
	return nil
}

// List returns the names of all saved profiles, in directory order.
func List() ([]string, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("profile: read config dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yml") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".yml"))
	}
	return names, nil
}
