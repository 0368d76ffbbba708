// Package filteredgraphs decides planarity of graphs and builds planar
// filtered subgraphs of complete weighted graphs.
//
// 🚀 What is filteredgraphs?
//
//	A small, thread-safe library (zero runtime deps) that brings together:
//		• Core primitives: create vertices & edges, mutate safely under locks
//		• Traversal: DFS with hooks, cancellation and forest mode
//		• Planarity: the left-right planarity test (linear-time, DFS-based)
//		• PMFG: Planar Maximally Filtered Graph of a complete weighted graph
//		• Matrix: dense distance matrices + validation helpers
//		• Builder: deterministic topology fixtures (K_n, K_{m,n}, cycles, ...)
//
// ✨ Why choose filteredgraphs?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – sentinel errors, no panics on user input
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – sorted snapshots and stable tie-breaking everywhere
//
// Under the hood, everything is organized under six subpackages:
//
//	builder/   — deterministic graph constructors for fixtures and demos
//	core/      — fundamental Graph, Vertex, Edge types & thread-safe primitives
//	dfs/       — depth-first traversal with hooks and diagnostics
//	matrix/    — dense float64 matrices and distance validation
//	planarity/ — the left-right planarity oracle
//	pmfg/      — greedy maximal planar subgraph of a complete weighted graph
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	K4 (this square plus both diagonals) is planar; K5 is not —
//	planarity.IsPlanar tells you which side of that line your graph is on.
//
// Dive into the package docs for full examples and complexity notes.
//
//	go get github.com/josephcbradley/filteredgraphs
package filteredgraphs
