package static

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// policyFile is the YAML shape of an on-disk policy override. Absent
// fields keep their defaults.
type policyFile struct {
	Fallback          string      `yaml:"fallback"`
	ServiceWorker     string      `yaml:"service_worker"`
	ExcludedPrefixes  []string    `yaml:"excluded_prefixes"`
	CompressibleTypes []string    `yaml:"compressible_types"`
	MinCompressSize   *int        `yaml:"min_compress_size"`
	CacheRules        []CacheRule `yaml:"cache_rules"`
}

// LoadPolicy reads a YAML policy file and merges it over DefaultPolicy.
// Cache rules, when present, replace the default table wholesale so their
// order stays exactly as written.
func LoadPolicy(path string) (Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Policy{}, fmt.Errorf("static: read policy file %s: %w", path, err)
	}

	var file policyFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Policy{}, fmt.Errorf("static: parse policy file %s: %w", path, err)
	}

	policy := DefaultPolicy()

	if file.Fallback != "" {
		policy.Fallback = file.Fallback
	}
	if file.ServiceWorker != "" {
		policy.ServiceWorkerPath = file.ServiceWorker
	}
	if file.ExcludedPrefixes != nil {
		policy.ExcludedPrefixes = file.ExcludedPrefixes
	}
	if file.CompressibleTypes != nil {
		policy.CompressibleTypes = file.CompressibleTypes
	}
	if file.MinCompressSize != nil {
		policy.MinCompressSize = *file.MinCompressSize
	}
	if file.CacheRules != nil {
		policy.CacheRules = file.CacheRules
	}

	return policy, nil
}
