package runner

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls how a batch is solved.
type Config struct {
	// Workers is the number of machines solved concurrently.
	// 0 or 1 means sequential.
	Workers int `yaml:"workers"`
	// Budget caps the search effort per machine, in visited nodes.
	// 0 means no limit.
	Budget uint64 `yaml:"budget"`
	// Verbose enables per-machine statistics logging.
	Verbose bool `yaml:"verbose"`
}

// LoadConfig reads a YAML run configuration.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("could not read config %q: %v", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("could not parse config %q: %v", path, err)
	}
	if cfg.Workers < 0 {
		return Config{}, fmt.Errorf("invalid worker count %d in %q", cfg.Workers, path)
	}
	return cfg, nil
}
