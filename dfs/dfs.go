// Package dfs implements depth-first search (single-source and forest) on
// core.Graph, with cancellation and pre-/post-order hooks.
//
// Key features:
//   - DFS(g, startID, opts...): traverse from a root or full forest via
//     WithFullTraversal
//   - Hooks: OnVisit (pre-order) & OnExit (post-order) with error aborts
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(V + E) for traversal, plus hook overhead.
//   - Memory: O(V) for recursion stack and metadata maps.
//
// Errors:
//
//   - ErrGraphNil            if g is nil.
//   - ErrStartVertexNotFound if startID is missing.
//   - context.Canceled       if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs

import (
	"fmt"

	"github.com/josephcbradley/filteredgraphs/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph // underlying graph
	opts  DFSOptions  // traversal options
	res   *DFSResult  // result collector
}

// DFS performs depth-first search on graph g. If opts include
// WithFullTraversal, it covers all disconnected components; otherwise, it
// starts only from startID. Returns DFSResult or error if aborted by context
// or hook.
func DFS(g *core.Graph, startID string, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Single-source mode: verify startID
	if !dopts.FullTraversal && !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	// 4. Initialize result with capacity hint
	vertices := g.Vertices()
	res := &DFSResult{
		Order:   make([]string, 0, len(vertices)),
		Depth:   make(map[string]int, len(vertices)),
		Parent:  make(map[string]string, len(vertices)),
		Visited: make(map[string]bool, len(vertices)),
	}

	walker := &dfsWalker{graph: g, opts: dopts, res: res}

	// 5. Traverse: forest or single tree
	if dopts.FullTraversal {
		for _, v := range vertices {
			if !res.Visited[v] {
				if err := walker.traverse(v, 0); err != nil {
					return res, err
				}
			}
		}
	} else {
		if err := walker.traverse(startID, 0); err != nil {
			return res, err
		}
	}

	return res, nil
}

// traverse visits vertex id at given depth, recursing to neighbors.
// It honors context cancellation and hooks.
func (w *dfsWalker) traverse(id string, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Mark visited and record depth
	w.res.Visited[id] = true
	w.res.Depth[id] = depth

	// 3. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			w.res.Order = nil // abort and clear post-order

			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	// 4. Explore each neighbor in deterministic order
	nids, err := w.graph.NeighborIDs(id)
	if err != nil {
		w.res.Order = nil

		return fmt.Errorf("dfs: NeighborIDs(%q): %w", id, err)
	}
	for _, nid := range nids {
		// Self-loops never open a new branch.
		if nid == id {
			continue
		}
		if !w.res.Visited[nid] {
			w.res.Parent[nid] = id
			if err = w.traverse(nid, depth+1); err != nil {
				return err
			}
		}
	}

	// 5. Post-order hook
	if w.opts.OnExit != nil {
		if err = w.opts.OnExit(id); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnExit hook for %q: %w", id, err)
		}
	}

	// 6. Record finish order
	w.res.Order = append(w.res.Order, id)

	return nil
}
