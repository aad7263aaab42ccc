package huffstat

import (
	"context"
	"fmt"
	"time"

	"github.com/chronos-tachyon/assert"
)

// Result is the outcome of analyzing one input.
type Result struct {
	Frequencies FrequencyTable
	Encodings   EncodingTable

	// Root is the Huffman tree the encodings were read from, or nil for
	// empty input.
	Root *Node

	Report Report

	// Cached is true if the tables were remembered from an earlier call
	// with the same input.
	Cached bool
}

// Analyzer runs the counting, tree building, code assignment, and statistics
// steps over whole inputs.  An Analyzer is safe for concurrent use.
type Analyzer struct {
	config Config
	cache  *resultCache
}

// NewAnalyzer creates a new Analyzer with the given options.
func NewAnalyzer(opts ...Option) *Analyzer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	assert.Assertf(uint(cfg.StripMode) < uint(len(stripModeNames)), "unknown StripMode %d", uint(cfg.StripMode))
	assert.Assertf(cfg.CacheSize >= 0, "CacheSize %d < 0", cfg.CacheSize)

	cache, err := newResultCache(cfg.CacheSize)
	assert.Assertf(err == nil, "failed to create result cache: %v", err)

	return &Analyzer{config: cfg, cache: cache}
}

// Config returns the configuration of this Analyzer.
func (a *Analyzer) Config() Config {
	return a.config
}

// Analyze computes the Huffman code and statistics for data.  Report.Elapsed
// covers the whole call.
//
// Errors are only returned if ctx is cancelled during a parallel count, or
// if verification is enabled and the tree fails it.
//
func (a *Analyzer) Analyze(ctx context.Context, data []byte) (*Result, error) {
	start := time.Now()

	key := makeCacheKey(data, a.config.StripMode)
	if cached, found := a.cache.Get(key); found {
		result := *cached
		result.Cached = true
		result.Report.Elapsed = time.Since(start)
		return &result, nil
	}

	freq, err := CountFrequenciesParallel(ctx, data, a.config.Workers)
	if err != nil {
		return nil, err
	}

	root := BuildTree(freq)
	enc := AssignCodes(root, a.config.StripMode)

	if a.config.Verify {
		raw := enc
		if a.config.StripMode != KeepRawPath {
			raw = AssignCodes(root, KeepRawPath)
		}
		if err := verifyTable(&raw); err != nil {
			return nil, err
		}
	}

	result := &Result{
		Frequencies: freq,
		Encodings:   enc,
		Root:        root,
		Report:      NewReport(&freq, &enc, uint64(len(data))),
	}
	result.Report.Elapsed = time.Since(start)

	stored := *result
	a.cache.Add(key, &stored)
	return result, nil
}

func verifyTable(raw *EncodingTable) error {
	if err := VerifyPrefixFree(raw); err != nil {
		return fmt.Errorf("failed to verify Huffman tree: %w", err)
	}
	if err := VerifyComplete(raw.Lengths()); err != nil {
		return fmt.Errorf("failed to verify Huffman tree: %w", err)
	}
	return nil
}
