// Package astar implements a generic best-first search driver: given a
// Context exposing root/successors/target, it performs A* search with
// h = 0 (degenerating to Dijkstra, per the spec's mandated heuristic)
// and returns the terminal node's cost plus a predecessor map for
// backtracking. It is generic over the identifier representation so the
// same driver serves both the fixed- and variable-K cases.
package astar

import (
	"container/heap"
	"errors"
	"fmt"
)

// ErrUnreachable signals that the open set emptied before the target
// was found, which cannot happen for a well-formed context per the
// spec's termination guarantee (finite DAG, non-negative edge costs).
// Seeing this error means an invariant was violated upstream.
var ErrUnreachable = errors.New("astar: open set exhausted before reaching target")

// Context is the A* problem definition: root construction, successor
// generation, and the target test. Successors reports each outgoing
// edge by calling emit once per successor with the successor's
// identifier and the non-negative cost of the edge that produced it.
type Context[I comparable] interface {
	Root() I
	IsTarget(id I) bool
	Successors(id I, emit func(next I, edgeCost int32)) error
}

// Stats are the search performance counters the CLI reports.
type Stats struct {
	NodesExpanded  int
	NodesGenerated int
	OpenSetPeak    int
}

// Result is the outcome of a successful search.
type Result[I comparable] struct {
	Target      I
	Cost        int32
	Predecessor map[I]I
	Stats       Stats
}

type item[I comparable] struct {
	id   I
	cost int32
	seq  int // stable FIFO tie-break among equal-cost entries
}

type queue[I comparable] []*item[I]

func (q queue[I]) Len() int { return len(q) }
func (q queue[I]) Less(i, j int) bool {
	if q[i].cost != q[j].cost {
		return q[i].cost < q[j].cost
	}
	return q[i].seq < q[j].seq
}
func (q queue[I]) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *queue[I]) Push(x any)   { *q = append(*q, x.(*item[I])) }
func (q *queue[I]) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]
	return it
}

// Search runs best-first search to completion and returns the terminal
// node's cost and the predecessor map needed to backtrack from target
// to root.
func Search[I comparable](ctx Context[I]) (Result[I], error) {
	root := ctx.Root()

	dist := map[I]int32{root: 0}
	pred := make(map[I]I)
	visited := make(map[I]bool)

	pq := &queue[I]{&item[I]{id: root, cost: 0, seq: 0}}
	heap.Init(pq)

	var stats Stats
	stats.OpenSetPeak = 1
	seq := 1

	for pq.Len() > 0 {
		if pq.Len() > stats.OpenSetPeak {
			stats.OpenSetPeak = pq.Len()
		}

		current := heap.Pop(pq).(*item[I])
		if visited[current.id] || current.cost > dist[current.id] {
			continue // stale lazy-decrease-key entry
		}
		visited[current.id] = true
		stats.NodesExpanded++

		if ctx.IsTarget(current.id) {
			return Result[I]{Target: current.id, Cost: current.cost, Predecessor: pred, Stats: stats}, nil
		}

		var successorErr error
		err := ctx.Successors(current.id, func(next I, edgeCost int32) {
			if successorErr != nil {
				return
			}
			if edgeCost < 0 {
				successorErr = fmt.Errorf("astar: edge cost %d is negative", edgeCost)
				return
			}
			newCost := current.cost + edgeCost
			if newCost < current.cost {
				successorErr = fmt.Errorf("astar: cost overflow extending node with cost %d by %d", current.cost, edgeCost)
				return
			}
			stats.NodesGenerated++

			if existing, seen := dist[next]; !seen || newCost < existing {
				dist[next] = newCost
				pred[next] = current.id
				heap.Push(pq, &item[I]{id: next, cost: newCost, seq: seq})
				seq++
			}
		})
		if err != nil {
			return Result[I]{}, err
		}
		if successorErr != nil {
			return Result[I]{}, successorErr
		}
	}

	return Result[I]{}, ErrUnreachable
}
