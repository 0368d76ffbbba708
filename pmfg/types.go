// File: types.go — sentinel errors and internal candidate types for PMFG.

package pmfg

import "errors"

var (
	// ErrGraphNil is returned when Build receives a nil *core.Graph.
	ErrGraphNil = errors.New("pmfg: graph is nil")

	// ErrNotComplete indicates the input graph is not complete: its simple
	// undirected skeleton does not carry N(N−1)/2 edges. Build wraps it with
	// the actual and expected counts.
	ErrNotComplete = errors.New("pmfg: graph is not complete")

	// ErrDisconnected indicates the input graph does not reach every vertex
	// from a single source.
	ErrDisconnected = errors.New("pmfg: graph is disconnected")
)

// candidate is one unordered vertex pair with its distance, enumerated over
// sorted vertex IDs so that u < v lexicographically.
type candidate struct {
	u, v   string
	weight float64
}
