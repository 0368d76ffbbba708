// Package pmfg builds the Planar Maximally Filtered Graph (PMFG) of a
// complete weighted graph: the subgraph kept by greedily admitting edges in
// ascending distance order whenever the partial result stays planar.
//
// What this package offers:
//
//   - Build(g, dist): validate the input (complete, connected, well-formed
//     distance matrix), then run the greedy filter under the planarity
//     oracle until 3·(N−2) edges are kept or candidates run out.
//
// Semantics:
//
//   - Candidate pairs {u,v} are enumerated over sorted vertex IDs and
//     stable-sorted by dist[u][v] ascending, so equal distances keep their
//     lexicographic pair order.
//   - Graphs with N ≤ 4 vertices are always planar; Build returns a clone
//     of the input untouched.
//   - The input graph is never mutated; the result is a fresh simple
//     undirected graph over the same vertex IDs.
//
// Errors: sentinel-wrapped, eager, and descriptive — ErrGraphNil,
// ErrNotComplete (reporting actual vs expected edge count), ErrDisconnected,
// and the matrix package sentinels for a malformed distance matrix.
//
// Complexity: O(E) oracle invocations in the worst case, each O(V + E);
// fine for the correlation-network sizes this construction is used at.
package pmfg
