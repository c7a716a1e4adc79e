package codegen

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the codegen.yaml configuration file.
type Config struct {
	// Schema lists the schema files or directories to load.
	Schema []string `yaml:"schema,omitempty"`

	// Generate holds settings for the generate command.
	Generate GenerateConfig `yaml:"generate,omitempty"`

	// TypeScript holds the TypeScript generator options.
	TypeScript TypeScriptOptions `yaml:"typescript,omitempty"`
}

// GenerateConfig holds settings for the generate command.
type GenerateConfig struct {
	// Lang names the target language, e.g. "typescript".
	Lang string `yaml:"lang,omitempty"`

	// Out is the directory generated files are written to.
	Out string `yaml:"out,omitempty"`
}

// DefaultConfigNames are the filenames recognized as configuration files,
// in lookup order.
var DefaultConfigNames = []string{"codegen.yaml", "codegen.yml", ".codegen.yaml", ".codegen.yml"}

// LoadConfig loads the nearest configuration file, searching dir and its
// parents.
func LoadConfig(dir string) (*Config, error) {
	path, err := FindConfig(dir)
	if err != nil {
		return nil, err
	}

	return LoadConfigFile(path)
}

// FindConfig locates the nearest configuration file, checking dir and each
// parent up to the filesystem root.
func FindConfig(dir string) (string, error) {
	cur, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for {
		for _, name := range DefaultConfigNames {
			candidate := filepath.Join(cur, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			break
		}

		cur = parent
	}

	return "", ErrConfigNotFound
}

// LoadConfigFile reads and decodes the configuration at path.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return cfg, nil
}
