package huffstat

import (
	"runtime"
)

// DefaultCacheSize is the number of results an Analyzer remembers unless
// configured otherwise.
const DefaultCacheSize = 16

// Config holds configuration for an Analyzer.
type Config struct {
	StripMode StripMode // Post-processing of raw tree paths (default StripLeadingZeros)
	Workers   int       // Frequency counting workers (0 or 1 = sequential)
	CacheSize int       // Results to cache (0 = disabled)
	Verify    bool      // Check the assigned codes after each analysis
}

// Option is a functional option for configuring an Analyzer.
type Option func(*Config)

// WithStripMode selects how raw tree paths become codes.
func WithStripMode(mode StripMode) Option {
	return func(c *Config) {
		c.StripMode = mode
	}
}

// WithWorkers counts frequencies with up to n concurrent workers.
// A negative n means one worker per CPU.
func WithWorkers(n int) Option {
	return func(c *Config) {
		if n < 0 {
			n = runtime.NumCPU()
		}
		c.Workers = n
	}
}

// WithCacheSize sets how many results are remembered.  Zero disables the
// cache.
func WithCacheSize(n int) Option {
	return func(c *Config) {
		c.CacheSize = n
	}
}

// WithVerify enables checking every tree after it is built: its raw paths
// must be prefix-free and their lengths must describe a full binary tree.
// The check is independent of the StripMode.
func WithVerify(verify bool) Option {
	return func(c *Config) {
		c.Verify = verify
	}
}

func defaultConfig() Config {
	return Config{
		StripMode: StripLeadingZeros,
		CacheSize: DefaultCacheSize,
	}
}
