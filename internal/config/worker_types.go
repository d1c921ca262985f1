package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// WorkerTypesFile is the on-disk shape of the worker classification mapping.
type WorkerTypesFile struct {
	DayRate   []string          `yaml:"day_rate"`
	Overrides map[string]string `yaml:"overrides"`
}

// LoadWorkerTypesFile reads a worker classification file. A missing file
// yields an empty mapping.
func LoadWorkerTypesFile(path string) (*WorkerTypesFile, error) {
	out := &WorkerTypesFile{}
	if path == "" {
		return out, nil
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return out, nil
		}
		return nil, fmt.Errorf("open worker types file: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode worker types file %s: %w", path, err)
	}

	return out, nil
}

// WorkerTypeMapping merges the mapping file with WORKER_DAY_RATE_USERNAMES.
// Overrides from the file win over both day-rate lists.
func (c *Config) WorkerTypeMapping(dayRateType string) (map[string]string, error) {
	file, err := LoadWorkerTypesFile(c.Payroll.WorkerTypesFile)
	if err != nil {
		return nil, err
	}

	mapping := make(map[string]string)
	for _, username := range file.DayRate {
		mapping[username] = dayRateType
	}
	for _, username := range c.Payroll.DayRateUsernames {
		mapping[username] = dayRateType
	}
	for username, workerType := range file.Overrides {
		mapping[username] = workerType
	}

	return mapping, nil
}
