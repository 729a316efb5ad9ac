// Package config loads service configuration from a YAML file. Environment
// variables applied by the binaries override individual fields.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Model      ModelConfig      `yaml:"model"`
	Vocabulary VocabularyConfig `yaml:"vocabulary"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Checker    CheckerConfig    `yaml:"checker"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type ModelConfig struct {
	URL            string `yaml:"url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	MaskToken      string `yaml:"mask_token"`
}

type VocabularyConfig struct {
	Path string `yaml:"path"`
	Mmap bool   `yaml:"mmap"`
}

type DictionaryConfig struct {
	Backend       string `yaml:"backend"` // "redis", "file" or "" to disable
	RedisAddr     string `yaml:"redis_addr"`
	RedisPassword string `yaml:"redis_password"`
	RedisDB       int    `yaml:"redis_db"`
	FilePath      string `yaml:"file_path"`
}

type CheckerConfig struct {
	TopN    int  `yaml:"top_n"`
	Workers int  `yaml:"workers"`
	Debug   bool `yaml:"debug"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Server:     ServerConfig{Addr: ":8080"},
		Model:      ModelConfig{URL: "http://localhost:8000/fill-mask", TimeoutSeconds: 30, MaskToken: "[MASK]"},
		Vocabulary: VocabularyConfig{Path: "vocab.txt"},
		Dictionary: DictionaryConfig{Backend: "redis", RedisAddr: "localhost:6379"},
		Checker:    CheckerConfig{TopN: 10, Workers: 1},
	}
}

// Load reads a YAML config file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("error reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("error parsing config file: %w", err)
	}
	return cfg, nil
}
