// File: errors.go — sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Implementations attach context via %w wrapping; sentinels themselves
//     carry no parameters.
//   - Constructors never panic at runtime; validation panics are confined
//     to option constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (e.g., n, partition
// size) is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed indicates that a constructor could not complete without
// breaking invariants (nil constructor, nil target graph, core rejection).
var ErrConstructFailed = errors.New("builder: construction failed")
