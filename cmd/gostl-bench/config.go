package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes which workloads to run, loaded from a small YAML file.
type Config struct {
	// N is the number of distinct keys each workload drives through its
	// containers.
	N int `yaml:"n"`
	// LogLevel is one of DEBUG/INFO/WARN/ERROR/FATAL (log.LevelFromString).
	LogLevel string `yaml:"log_level"`
	// UseZap selects the zap-backed log.Sink (zaplog.NewDevelopment)
	// instead of the default stdlib-backed sink.
	UseZap bool `yaml:"use_zap"`
}

// defaultConfig is used when no --config file is given.
func defaultConfig() Config {
	return Config{N: 10000, LogLevel: "INFO"}
}

func loadConfig(path string) (Config, error) {
	if path == "" {
		return defaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
