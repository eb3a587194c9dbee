package astar

import (
	"container/heap"
	"fmt"
)

// Search finds the cheapest path from start to goal.
//
// next generates successors on demand; h estimates the remaining cost and
// may be nil (treated as Zero). Returns ErrPathNotFound when goal is
// unreachable (or lies beyond MaxCost), and ctx.Err() if the context is
// cancelled mid-search.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Search[N comparable](start, goal N, next SuccessorFunc[N], h Heuristic[N], opts ...Option) (*Result[N], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if next == nil {
		return nil, ErrNilSuccessors
	}
	if h == nil {
		h = Zero[N]
	}

	r := &runner[N]{
		goal:   goal,
		next:   next,
		h:      h,
		opts:   cfg,
		best:   make(map[N]int64),
		closed: make(map[N]bool),
	}
	if cfg.ReturnPath {
		r.prev = make(map[N]N)
	}
	r.init(start)

	return r.process(start)
}

// runner holds the mutable state for a single search. Nothing in it outlives
// the call, so independent searches never share state.
type runner[N comparable] struct {
	goal   N
	next   SuccessorFunc[N]
	h      Heuristic[N]
	opts   Options
	best   map[N]int64 // lowest tentative cost seen per node
	closed map[N]bool  // finalized nodes
	prev   map[N]N     // predecessor on the best path; nil unless ReturnPath
	pq     frontier[N]
	seq    uint64
}

func (r *runner[N]) init(start N) {
	heap.Init(&r.pq)
	r.best[start] = 0
	r.push(start, 0)
}

func (r *runner[N]) push(n N, g int64) {
	heap.Push(&r.pq, &entry[N]{node: n, g: g, f: g + r.h(n, r.goal), seq: r.seq})
	r.seq++
}

// process pops entries until the goal is finalized or the frontier is empty.
func (r *runner[N]) process(start N) (*Result[N], error) {
	expanded := 0
	for r.pq.Len() > 0 {
		select {
		case <-r.opts.Ctx.Done():
			return nil, r.opts.Ctx.Err()
		default:
		}

		e := heap.Pop(&r.pq).(*entry[N])
		// Stale entry: either already finalized or superseded by a cheaper push.
		if r.closed[e.node] || e.g > r.best[e.node] {
			continue
		}
		if e.g > r.opts.MaxCost {
			continue
		}
		r.closed[e.node] = true
		expanded++

		if e.node == r.goal {
			res := &Result[N]{Cost: e.g, Expanded: expanded}
			if r.prev != nil {
				res.Path = r.path(start)
			}
			return res, nil
		}
		if err := r.relax(e); err != nil {
			return nil, err
		}
	}

	return nil, ErrPathNotFound
}

// relax pushes every successor of e whose tentative cost strictly improves
// on the best one recorded so far.
func (r *runner[N]) relax(e *entry[N]) error {
	for _, s := range r.next(e.node) {
		if s.Cost < 0 {
			return fmt.Errorf("%w: step cost %d", ErrNegativeCost, s.Cost)
		}
		if r.closed[s.Node] {
			continue
		}
		g := e.g + s.Cost
		if old, seen := r.best[s.Node]; seen && g >= old {
			continue
		}
		r.best[s.Node] = g
		if r.prev != nil {
			r.prev[s.Node] = e.node
		}
		r.push(s.Node, g)
	}
	return nil
}

// path walks predecessors back from the goal and reverses the result.
func (r *runner[N]) path(start N) []N {
	out := []N{r.goal}
	for cur := r.goal; cur != start; {
		p, ok := r.prev[cur]
		if !ok {
			break
		}
		out = append(out, p)
		cur = p
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// entry is a frontier item. seq breaks priority ties by insertion order.
type entry[N comparable] struct {
	node N
	g    int64
	f    int64
	seq  uint64
}

// frontier is a min-heap of *entry ordered by (f, seq).
type frontier[N comparable] []*entry[N]

func (pq frontier[N]) Len() int { return len(pq) }

func (pq frontier[N]) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].seq < pq[j].seq
}

func (pq frontier[N]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *frontier[N]) Push(x any) { *pq = append(*pq, x.(*entry[N])) }

func (pq *frontier[N]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}
