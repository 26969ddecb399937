package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Batch is a YAML file listing URLs to convert in one run.
//
// Example:
//
//	urls:
//	  - https://example.com/blog/my-post
//	  - https://example.com/blog/another-post
type Batch struct {
	URLs []string `yaml:"urls"`
}

// LoadBatch reads a batch file and returns the listed URLs.
func LoadBatch(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var batch Batch
	if err := yaml.Unmarshal(data, &batch); err != nil {
		return nil, fmt.Errorf("parse batch file %s: %w", path, err)
	}

	if len(batch.URLs) == 0 {
		return nil, fmt.Errorf("batch file %s lists no urls", path)
	}

	return batch.URLs, nil
}
