package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/golang/glog"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/arithgame/internal/problemgen"
)

// Environment variables read by Load.
const (
	EnvConfigPath = "ARITHGAME_CONFIG"
	EnvOperator   = "ARITHGAME_OPERATOR"
	EnvLevel      = "ARITHGAME_LEVEL"
	EnvSeed       = "ARITHGAME_SEED"
)

// Config holds the game's startup settings.
type Config struct {
	// Operator is the operator selected when a game starts.
	Operator problemgen.Operator

	// Level is the difficulty band selected when a game starts.
	Level problemgen.Level

	// Seed seeds the question generator. 0 means time-seeded.
	Seed int64

	// Verify runs the invariant checks on every generated question.
	Verify bool

	// Source is the config file that was loaded, empty if none.
	Source string
}

// fileConfig is the on-disk YAML shape.
type fileConfig struct {
	Operator string `yaml:"operator"`
	Level    int    `yaml:"level"`
	Seed     int64  `yaml:"seed"`
	Verify   *bool  `yaml:"verify"`
}

// DefaultConfig returns addition at level 1, time-seeded, with verification.
func DefaultConfig() Config {
	return Config{
		Operator: problemgen.OpAdd,
		Level:    problemgen.DefaultLevel(),
		Verify:   true,
	}
}

// GeneratorConfig returns the problemgen configuration for these settings.
func (c Config) GeneratorConfig() problemgen.Config {
	gc := problemgen.DefaultConfig()
	gc.Verify = c.Verify
	return gc
}

// LoadDotEnv loads KEY=VALUE pairs from path into the process environment.
// Variables that are already set to a non-empty value win; an exported but
// empty variable is treated as unset. A missing file is not an error.
func LoadDotEnv(path string) error {
	vars, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	for k, v := range vars {
		if os.Getenv(k) != "" {
			continue
		}
		if err := os.Setenv(k, v); err != nil {
			return fmt.Errorf("set %s: %w", k, err)
		}
	}
	glog.V(1).Infof("loaded %d variables from %s", len(vars), path)
	return nil
}

// DefaultPath resolves the config file path in priority order:
// 1. ARITHGAME_CONFIG environment variable
// 2. $XDG_CONFIG_HOME/arithgame/config.yaml
// 3. ~/.config/arithgame/config.yaml
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}

	return filepath.Join(configHome, "arithgame", "config.yaml"), nil
}

// Load builds a Config from defaults, the YAML file at path, and the
// environment, in increasing priority. An empty path means DefaultPath, in
// which case a missing file is not an error; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, err
		}
		path = p
		explicit = os.Getenv(EnvConfigPath) != ""
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := cfg.applyFile(data); err != nil {
			return cfg, fmt.Errorf("config %s: %w", path, err)
		}
		cfg.Source = path
		glog.V(1).Infof("loaded config from %s", path)
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		glog.V(2).Infof("no config file at %s, using defaults", path)
	default:
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyFile validates data against the config schema and merges it.
func (c *Config) applyFile(data []byte) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}
	if doc == nil {
		return nil
	}
	if err := validateDocument(doc); err != nil {
		return err
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("decode yaml: %w", err)
	}

	if fc.Operator != "" {
		op, err := problemgen.ParseOperator(fc.Operator)
		if err != nil {
			return err
		}
		c.Operator = op
	}
	if fc.Level != 0 {
		lvl, err := problemgen.LevelByNumber(fc.Level)
		if err != nil {
			return err
		}
		c.Level = lvl
	}
	if fc.Seed != 0 {
		c.Seed = fc.Seed
	}
	if fc.Verify != nil {
		c.Verify = *fc.Verify
	}
	return nil
}

// applyEnv merges ARITHGAME_* variables.
func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvOperator); v != "" {
		op, err := problemgen.ParseOperator(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvOperator, err)
		}
		c.Operator = op
	}
	if v := os.Getenv(EnvLevel); v != "" {
		lvl, err := problemgen.ParseLevel(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvLevel, err)
		}
		c.Level = lvl
	}
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: invalid seed %q: %w", EnvSeed, v, err)
		}
		c.Seed = seed
	}
	return nil
}
