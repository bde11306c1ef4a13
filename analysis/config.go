package analysis

import (
	"fmt"
	"io"
	"os"

	"github.com/hupe1980/searchbench/dataset"
	"gopkg.in/yaml.v3"
)

// DatasetConfig describes one row of the comparison table.
type DatasetConfig struct {
	// File is the fixture name in the store; its base name keys the test cases.
	File        string `yaml:"file"`
	Description string `yaml:"description"`
	// Kind is the element type: int, float or string.
	Kind dataset.Kind `yaml:"kind"`
	// RequiresSort marks datasets that must be sorted (and the sort timed)
	// before binary search. Others are used as loaded.
	RequiresSort bool `yaml:"requires_sort"`
}

// BreakEvenConfig selects the dataset for the break-even analysis.
type BreakEvenConfig struct {
	Dataset     string       `yaml:"dataset"`
	Description string       `yaml:"description"`
	Kind        dataset.Kind `yaml:"kind"`
}

// Config is the fixed benchmark configuration.
type Config struct {
	Datasets []DatasetConfig `yaml:"datasets"`

	// ComparisonBatchSize is the number of present and of absent targets
	// per dataset in the comparison phase.
	ComparisonBatchSize int `yaml:"comparison_batch_size"`

	// BreakEvenBatchSize is the number of present targets timed in the
	// break-even phase. It is deliberately independent of
	// ComparisonBatchSize.
	BreakEvenBatchSize int `yaml:"break_even_batch_size"`

	BreakEven BreakEvenConfig `yaml:"break_even"`

	TestCasesFile string `yaml:"test_cases_file"`
}

// DefaultConfig returns the standard four-dataset table.
func DefaultConfig() Config {
	return Config{
		Datasets: []DatasetConfig{
			{File: "customer_ids.json", Description: "Unsorted Customer IDs (100K)", Kind: dataset.KindInt, RequiresSort: true},
			{File: "product_catalog.json", Description: "Pre-sorted Product Catalog (50K)", Kind: dataset.KindString},
			{File: "config_settings.json", Description: "Small Config Settings (500)", Kind: dataset.KindString, RequiresSort: true},
			{File: "dictionary_words.json", Description: "Dictionary Words (10K)", Kind: dataset.KindString},
		},
		ComparisonBatchSize: 50,
		BreakEvenBatchSize:  10,
		BreakEven: BreakEvenConfig{
			Dataset:     "customer_ids.json",
			Description: "Customer IDs",
			Kind:        dataset.KindInt,
		},
		TestCasesFile: dataset.DefaultTestCasesFile,
	}
}

// Validate checks c for unusable values.
func (c Config) Validate() error {
	if len(c.Datasets) == 0 {
		return &ConfigError{Field: "datasets", Reason: "at least one dataset is required"}
	}
	for i, d := range c.Datasets {
		field := fmt.Sprintf("datasets[%d]", i)
		if d.File == "" {
			return &ConfigError{Field: field + ".file", Reason: "must not be empty"}
		}
		if _, err := dataset.ParseKind(string(d.Kind)); err != nil {
			return &ConfigError{Field: field + ".kind", Reason: err.Error()}
		}
	}
	if c.ComparisonBatchSize <= 0 {
		return &ConfigError{Field: "comparison_batch_size", Reason: "must be positive"}
	}
	if c.BreakEvenBatchSize <= 0 {
		return &ConfigError{Field: "break_even_batch_size", Reason: "must be positive"}
	}
	if c.BreakEven.Dataset == "" {
		return &ConfigError{Field: "break_even.dataset", Reason: "must not be empty"}
	}
	if _, err := dataset.ParseKind(string(c.BreakEven.Kind)); err != nil {
		return &ConfigError{Field: "break_even.kind", Reason: err.Error()}
	}
	if c.TestCasesFile == "" {
		return &ConfigError{Field: "test_cases_file", Reason: "must not be empty"}
	}
	return nil
}

// ParseConfig decodes YAML on top of DefaultConfig and validates the result.
// Fields absent from the document keep their default values; a datasets list
// replaces the default table entirely.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ReadConfig parses a YAML configuration from r.
func ReadConfig(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// LoadConfigFile parses the YAML configuration file at path.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	return ReadConfig(f)
}
