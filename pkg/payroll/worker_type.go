package payroll

import (
	"fmt"
	"strings"
)

const (
	WorkerTypeDayRate       = "day-rate"
	WorkerTypeSubContractor = "sub-contractor"
)

// IsValidWorkerType reports whether t is one of the known worker types.
func IsValidWorkerType(t string) bool {
	return t == WorkerTypeDayRate || t == WorkerTypeSubContractor
}

// Classifier maps contractor usernames to worker types. Usernames match
// exactly as stored; unknown usernames are sub-contractors.
type Classifier struct {
	types map[string]string
}

// NewClassifier builds a classifier from a username -> worker type mapping.
// Surrounding whitespace is trimmed from the configured usernames; two
// entries that trim to the same username are rejected.
func NewClassifier(mapping map[string]string) (*Classifier, error) {
	types := make(map[string]string, len(mapping))
	sources := make(map[string]string, len(mapping))
	for username, workerType := range mapping {
		key := strings.TrimSpace(username)
		if key == "" {
			continue
		}
		if !IsValidWorkerType(workerType) {
			return nil, fmt.Errorf("unknown worker type %q for username %q", workerType, username)
		}
		if other, ok := sources[key]; ok {
			return nil, fmt.Errorf("usernames %q and %q both configure %q", other, username, key)
		}
		sources[key] = username
		types[key] = workerType
	}
	return &Classifier{types: types}, nil
}

// Classify returns the worker type for username.
func (c *Classifier) Classify(username string) string {
	if c != nil {
		if t, ok := c.types[username]; ok {
			return t
		}
	}
	return WorkerTypeSubContractor
}

// Size returns the number of configured usernames.
func (c *Classifier) Size() int {
	if c == nil {
		return 0
	}
	return len(c.types)
}
