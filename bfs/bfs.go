// Package bfs provides breadth-first search over an implicit graph.
package bfs

import (
	"context"
	"errors"
)

// queueItem pairs a node with its BFS depth.
type queueItem[N comparable] struct {
	node  N
	depth int
}

// walker encapsulates mutable BFS state.
type walker[N comparable] struct {
	neighbors NeighborFunc[N]
	opts      BFSOptions[N]
	ctx       context.Context
	queue     []queueItem[N]
	visited   map[N]bool
	res       *BFSResult[N]
}

// BFS runs breadth-first search from start, expanding nodes with neighbors
// and applying any number of functional Options.
// Returns ErrNeighborsNil for a nil NeighborFunc, ErrOptionViolation for bad
// options, ctx.Err() on cancellation, or any user-supplied hook error other
// than ErrStop.
func BFS[N comparable](start N, neighbors NeighborFunc[N], opts ...Option[N]) (*BFSResult[N], error) {
	if neighbors == nil {
		return nil, ErrNeighborsNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[N]{
		neighbors: neighbors,
		opts:      o,
		ctx:       o.Ctx,
		visited:   make(map[N]bool),
		res: &BFSResult[N]{
			Depth:  make(map[N]int),
			Parent: make(map[N]N),
		},
	}

	// Seed queue with start node (no parent)
	w.enqueue(start, 0, start, false)
	if err := w.loop(); err != nil && !errors.Is(err, ErrStop) {
		return w.res, err
	}
	return w.res, nil
}

// enqueue marks n visited at depth d, records its parent, calls OnEnqueue,
// and adds it to the queue.
func (w *walker[N]) enqueue(n N, d int, parent N, hasParent bool) {
	w.visited[n] = true
	w.res.Depth[n] = d
	if hasParent {
		w.res.Parent[n] = parent
	}
	w.opts.OnEnqueue(n, d)
	w.queue = append(w.queue, queueItem[N]{node: n, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[N]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		w.res.Order = append(w.res.Order, item.node)
		if err := w.opts.OnVisit(item.node, item.depth); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker[N]) dequeue() queueItem[N] {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.node, item.depth)
	return item
}

// enqueueNeighbors enqueues every unseen, unfiltered neighbour within MaxDepth.
func (w *walker[N]) enqueueNeighbors(item queueItem[N]) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.neighbors(item.node) {
		if w.visited[nbr] || !w.opts.FilterNeighbor(item.node, nbr) {
			continue
		}
		w.enqueue(nbr, nextDepth, item.node, true)
	}
}
