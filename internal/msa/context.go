// Package msa wires the sequence store, metric, and identifier
// representation into the A* problem definition (the "alignment
// context") and dispatches to the fixed- or variable-K identifier based
// on K, per the dispatcher contract.
package msa

import (
	"github.com/sumofpairs/multialign/internal/identifier"
	"github.com/sumofpairs/multialign/internal/metric"
	"github.com/sumofpairs/multialign/internal/sequence"
)

// context is the A* problem for K-way alignment, generic over the
// identifier representation I. It holds the K sequences by reference
// and owns the metric for the lifetime of one alignment call.
type context[I comparable] struct {
	ops     identifier.Ops[I]
	seqs    []*sequence.Sequence
	metric  metric.Metric
	k       int
	advance []int // reused scratch: indices advanced by the successor being built
	active  []int // reused scratch: indices with input remaining at the current node
}

func newContext[I comparable](ops identifier.Ops[I], seqs []*sequence.Sequence, m metric.Metric) *context[I] {
	return &context[I]{
		ops:     ops,
		seqs:    seqs,
		metric:  m,
		k:       len(seqs),
		advance: make([]int, 0, len(seqs)),
		active:  make([]int, 0, len(seqs)),
	}
}

func (c *context[I]) Root() I { return c.ops.Root(c.k) }

func (c *context[I]) IsTarget(id I) bool {
	for i := 0; i < c.k; i++ {
		if int(c.ops.Offset(id, i)) != c.seqs[i].Len() {
			return false
		}
	}
	return true
}

// Successors iterates every non-empty subset of the sequences that
// still have input remaining at id (the "active" indices), in
// increasing mask order over that active set. An exhausted index
// (offset == len) always contributes a gap regardless of which subset
// is chosen, so two masks differing only in exhausted-index bits would
// produce identical successors; enumerating subsets of the active set
// directly avoids that redundant 2^K blow-up and, since every such
// subset is non-empty by construction, every one is effective — no
// separate degenerate-successor check is needed.
func (c *context[I]) Successors(id I, emit func(next I, edgeCost int32)) error {
	k := c.k

	active := c.active[:0]
	for i := 0; i < k; i++ {
		if int(c.ops.Offset(id, i)) < c.seqs[i].Len() {
			active = append(active, i)
		}
	}
	c.active = active
	n := len(active)
	if n == 0 {
		return nil
	}

	var maxMask uint64
	if n >= 64 {
		maxMask = ^uint64(0)
	} else {
		maxMask = (uint64(1) << uint(n)) - 1
	}

	for g := uint64(1); ; g++ {
		c.advance = c.advance[:0]
		c.metric.Reset()

		bit := 0
		next := 0
		for i := 0; i < k; i++ {
			if next < n && active[next] == i {
				inSet := g&(uint64(1)<<uint(bit)) != 0
				bit++
				next++
				if inSet {
					offset := int(c.ops.Offset(id, i))
					c.metric.CountCharacter(c.seqs[i].At(offset))
					c.advance = append(c.advance, i)
					continue
				}
			}
			c.metric.CountGap()
		}

		cost, err := c.metric.ComputeCostIncrement()
		if err != nil {
			return err
		}
		emit(c.ops.Step(id, c.advance), cost)

		if g == maxMask {
			break
		}
	}
	return nil
}
