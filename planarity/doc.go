// Package planarity implements the left-right planarity test on core.Graph.
// It decides in linear time whether a graph can be drawn in the plane without
// edge crossings, and exposes the decision as a boolean oracle.
//
// The test runs two depth-first passes over a simple undirected skeleton of
// the input (directed edges lose orientation, self-loops are dropped,
// parallel edges collapse):
//
//  1. Orientation: a DFS forest assigns each edge a direction and computes
//     per-edge lowpoint, second lowpoint and nesting depth.
//  2. Testing: a second DFS in nesting-depth order maintains a stack of
//     conflict pairs (left/right interval chains of back edges) and fails
//     on the first left-right side contradiction.
//
// Key features:
//   - IsPlanar(g): boolean verdict.
//   - Check(g): verdict plus diagnostics (fast-path flag, DFS forest roots).
//   - Fast path: |E| > 3|V|−6 for |V| > 2 rejects without any traversal.
//   - Fresh state per call; the input graph is never mutated, so independent
//     calls may run concurrently.
//
// Complexity:
//
//   - Time:   O(V + E) — two DFS passes plus one adjacency sort per vertex.
//   - Memory: O(V + E) for the skeleton, half-edge records and the stack.
//
// Recursion depth is bounded by the DFS-tree depth (worst case V); very deep
// graphs may need a raised goroutine stack budget.
//
// Errors:
//
//   - ErrGraphNil if g is nil. Non-planarity is a verdict, not an error.
package planarity
