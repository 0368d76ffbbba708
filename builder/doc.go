// Package builder provides deterministic graph constructors for fixtures,
// examples and tests: complete graphs, complete bipartite graphs, cycles,
// paths, stars and wheels over a core.Graph.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g,
//     resolves cfg, runs constructors in order.
//   - Functional options (BuilderOption) resolve into an immutable
//     builderConfig; no global state.
//   - Determinism: same inputs, options and constructor order produce
//     identical graphs.
//   - Safety: constructors never panic; they return sentinel errors.
//     Option constructors validate and panic on programmer error.
//
// Example:
//
//	g, err := builder.BuildGraph(nil, nil, builder.Complete(5))
//	// g is K5 with vertex IDs "0".."4"
package builder
