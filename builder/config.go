// File: config.go — internal configuration and deterministic defaults.
//
// Design:
//   - builderConfig is the single source of truth for all builder knobs.
//   - Defaults are deterministic and documented; no globals.
//   - newBuilderConfig applies options in order (later overrides earlier).

package builder

import (
	"math/rand" // RNG for randomized weight generators
	"strconv"   // decimal vertex IDs ("0","1",...)
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic).
	idFn func(int) string
	// RNG for randomized weight draws; nil means "no randomness".
	rng *rand.Rand
	// Weight generator for edges; used only for weighted graphs.
	weightFn func(*rand.Rand) int64

	// Bipartite ID prefixes (left/right). Empty → defaults resolved below.
	leftPrefix  string
	rightPrefix string
}

// Deterministic defaults (named, no magic numbers).
const (
	defaultLeftPrefix  = "L"      // bipartite left side label
	defaultRightPrefix = "R"      // bipartite right side label
	defaultConstWeight = int64(1) // constant edge weight when weighted
)

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order. Empty prefix fields are resolved to defaults
// here to keep downstream code branch-free.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        decimalID,
		rng:         nil,
		weightFn:    func(*rand.Rand) int64 { return defaultConstWeight },
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	// Resolve empty bipartite prefixes to defaults (deterministic fallback).
	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}

// decimalID renders an index as a base-10 string ("0","1","2",...).
// Deterministic and allocation-light; suitable for golden tests.
func decimalID(i int) string {
	return strconv.Itoa(i)
}
