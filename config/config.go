// Package config loads the application settings and pitch list files.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/orayew2002/pitch-card/domain"
)

// Environment overrides.
const (
	EnvAddr = "PITCHCARD_ADDR"
	EnvDB   = "PITCHCARD_DB"
)

type Config struct {
	Server ServerConfig `yaml:"server"`
	Store  StoreConfig  `yaml:"store"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type StoreConfig struct {
	Path string `yaml:"path"`
}

type OutputConfig struct {
	Dir string `yaml:"dir"`
}

type LogConfig struct {
	Debug bool `yaml:"debug"`
}

// Default returns the settings used when no config file is given.
func Default() Config {
	return Config{
		Server: ServerConfig{Addr: ":8080", ShutdownTimeout: 5 * time.Second},
		Store:  StoreConfig{Path: "pitchcard.db"},
		Output: OutputConfig{Dir: "."},
	}
}

// Load reads the YAML file at path on top of the defaults. An empty path
// yields the defaults. Environment overrides are applied last.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, &domain.OpError{
				Op:    "config.load",
				Kind:  domain.KindNotFound,
				Field: path,
				Err:   err,
			}
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, &domain.OpError{
				Op:    "config.load",
				Kind:  domain.KindInvalidInput,
				Field: path,
				Err:   err,
			}
		}
	}

	cfg.applyEnvOverrides()
	cfg.fillDefaults()
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := strings.TrimSpace(os.Getenv(EnvAddr)); v != "" {
		c.Server.Addr = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvDB)); v != "" {
		c.Store.Path = v
	}
}

func (c *Config) fillDefaults() {
	d := Default()
	if strings.TrimSpace(c.Server.Addr) == "" {
		c.Server.Addr = d.Server.Addr
	}
	if c.Server.ShutdownTimeout <= 0 {
		c.Server.ShutdownTimeout = d.Server.ShutdownTimeout
	}
	if strings.TrimSpace(c.Store.Path) == "" {
		c.Store.Path = d.Store.Path
	}
	if strings.TrimSpace(c.Output.Dir) == "" {
		c.Output.Dir = d.Output.Dir
	}
}

// PitchFile is the on-disk shape of a pitch list.
type PitchFile struct {
	Pitches []domain.Pitch `yaml:"pitches" json:"pitches"`
}

// LoadPitches reads a pitch list from a YAML (.yaml, .yml) or JSON file.
func LoadPitches(path string) ([]domain.Pitch, error) {
	const op = "config.load_pitches"

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.OpError{Op: op, Kind: domain.KindNotFound, Field: path, Err: err}
	}

	var file PitchFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &file)
	case ".json":
		err = json.Unmarshal(b, &file)
	default:
		err = errors.New("unsupported extension, want .yaml, .yml or .json")
	}
	if err != nil {
		return nil, &domain.OpError{Op: op, Kind: domain.KindInvalidInput, Field: path, Err: err}
	}

	return file.Pitches, nil
}
