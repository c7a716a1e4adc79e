package main

import (
	"path/filepath"

	codegen "github.com/negative0/graphql-code-generator"
)

// loadConfigWithDir loads the nearest codegen.yaml walking up from startDir
// and returns both the config and the directory it was found in.
func loadConfigWithDir(startDir string) (*codegen.Config, string, error) {
	path, err := codegen.FindConfig(startDir)
	if err != nil {
		return nil, startDir, err
	}

	cfg, err := codegen.LoadConfigFile(path)
	if err != nil {
		return nil, startDir, err
	}

	return cfg, filepath.Dir(path), nil
}

// firstNonEmpty returns the first non-empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
