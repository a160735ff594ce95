package model

import (
	"runtime"
	"time"
)

// Config holds the complete shiftledger configuration
type Config struct {
	Ingest      IngestConfig      `yaml:"ingest" mapstructure:"ingest"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
}

// IngestConfig controls document processing
type IngestConfig struct {
	AssumedYear int    `yaml:"assumed_year" mapstructure:"assumed_year"` // 0 means current UTC year
	MasterPath  string `yaml:"master_path" mapstructure:"master_path"`
	OutputPath  string `yaml:"output_path" mapstructure:"output_path"`
}

// CacheConfig controls the extraction result cache
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir       string        `yaml:"dir" mapstructure:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" mapstructure:"disk_ttl"`
}

// ConcurrencyConfig controls batch parallelism
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Verbose    bool   `yaml:"verbose" mapstructure:"verbose"`
	ReportJSON string `yaml:"report_json" mapstructure:"report_json"`
	ReportMD   string `yaml:"report_md" mapstructure:"report_md"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Ingest: IngestConfig{
			AssumedYear: 0,
			OutputPath:  "master_updated.csv",
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       ".shiftledger-cache",
			MemoryTTL: 30 * time.Minute,
			DiskTTL:   7 * 24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers: runtime.NumCPU(),
		},
		Output: OutputConfig{
			Verbose: false,
		},
	}
}

// ResolveAssumedYear returns the configured assumed year, falling back to
// the current UTC year when unset.
func (c *Config) ResolveAssumedYear() int {
	if c.Ingest.AssumedYear > 0 {
		return c.Ingest.AssumedYear
	}
	return time.Now().UTC().Year()
}
