package types

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	configDefaultMaxPath = 4096
	configDefaultMaxName = 1024

	configMaximalLimit = 1 << 20
)

type Config struct {
	Path string `yaml:"-" json:"-"`

	Tree  bool `yaml:"tree" json:"tree"`
	Color bool `yaml:"color" json:"color"`
	Debug bool `yaml:"debug" json:"debug"`

	Limits *LimitsConfig `yaml:"limits" json:"limits"`
}

type LimitsConfig struct {
	MaxPath int `yaml:"maxPath" json:"maxPath"`
	MaxName int `yaml:"maxName" json:"maxName"`
}

func LoadConfig() (*Config, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	if path == "" {
		return newDefaultConfig(path), nil
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return newDefaultConfig(path), nil
		}

		return nil, fmt.Errorf("open config file: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	var cfg Config
	err = decoder.Decode(&cfg)
	// An empty or comment-only file decodes to io.EOF, keep the defaults.
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config yaml file: %w", err)
	}

	err = cfg.validate()
	if err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	cfg.Path = path

	return &cfg, nil
}

func getConfigPath() (string, error) {
	path := os.Getenv("JUDGE_CONFIG_PATH")
	if path != "" {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(homeDir, ".config", "judge")
	ents, err := os.ReadDir(dir)
	if err == nil {
		for _, ent := range ents {
			switch ent.Name() {
			case "config.yaml", "config.yml":
				return filepath.Join(dir, ent.Name()), nil
			}
		}
	}
	return "", nil
}

func newDefaultConfig(path string) *Config {
	c := &Config{Path: path}
	c.Limits = c.newDefaultLimits()
	return c
}

func (c *Config) validate() error {
	if c.Limits == nil {
		c.Limits = c.newDefaultLimits()
		return nil
	}

	var err error
	c.Limits.MaxPath, err = c.validateLimit(c.Limits.MaxPath, configDefaultMaxPath)
	if err != nil {
		return fmt.Errorf("invalid limits.maxPath: %w", err)
	}
	c.Limits.MaxName, err = c.validateLimit(c.Limits.MaxName, configDefaultMaxName)
	if err != nil {
		return fmt.Errorf("invalid limits.maxName: %w", err)
	}

	return nil
}

func (c *Config) newDefaultLimits() *LimitsConfig {
	return &LimitsConfig{
		MaxPath: configDefaultMaxPath,
		MaxName: configDefaultMaxName,
	}
}

func (c *Config) validateLimit(value, defaultValue int) (int, error) {
	if value == 0 {
		return defaultValue, nil
	}
	if value < 0 {
		return 0, fmt.Errorf("limit %d should be positive", value)
	}
	if value > configMaximalLimit {
		return 0, fmt.Errorf("limit %d is too big, it should <= %d", value, configMaximalLimit)
	}
	return value, nil
}
