// Package cigar backtracks an A* predecessor chain into the CIGAR-like
// alignment string: runs of Match columns collapse into "<n>M"; each
// Mismatch column is printed individually as "[c0c1...c_{K-1}]".
package cigar

import (
	"fmt"
	"strings"

	"github.com/sumofpairs/multialign/internal/identifier"
	"github.com/sumofpairs/multialign/internal/sequence"
)

// InvariantError reports a backtrack step that violates the one-or-zero
// offset-delta-per-sequence invariant — a bug-class error, not a bad
// input.
type InvariantError struct {
	Detail string
}

func (e *InvariantError) Error() string {
	return "cigar: invariant violation: " + e.Detail
}

func (e *InvariantError) IsInvariantError() {}

// Build replays the predecessor chain from target back to the root and
// formats it as the CIGAR-like string, in alignment order (root to
// target). An empty alignment (K sequences all of length 0) yields "".
func Build[I comparable](seqs []*sequence.Sequence, ops identifier.Ops[I], target I, predecessor map[I]I) (string, error) {
	k := len(seqs)

	type edge struct {
		pred, cur I
	}

	var edges []edge
	cur := target
	for {
		pred, ok := predecessor[cur]
		if !ok {
			break
		}
		edges = append(edges, edge{pred: pred, cur: cur})
		cur = pred
	}
	// edges were collected target->root; reverse to root->target.
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}

	var b strings.Builder
	runLen := 0
	flushRun := func() {
		if runLen > 0 {
			fmt.Fprintf(&b, "%dM", runLen)
			runLen = 0
		}
	}

	column := make([]byte, k)
	for _, e := range edges {
		allMatch := true
		var first byte
		for i := 0; i < k; i++ {
			predOffset := ops.Offset(e.pred, i)
			curOffset := ops.Offset(e.cur, i)
			delta := curOffset - predOffset
			if delta == 0 {
				column[i] = '-'
			} else if delta == 1 {
				column[i] = seqs[i].ByteAt(int(predOffset))
			} else {
				return "", &InvariantError{Detail: fmt.Sprintf("sequence %d advanced by %d in one edge", i, delta)}
			}
			if i == 0 {
				first = column[i]
			} else if column[i] != first {
				allMatch = false
			}
		}

		if allMatch {
			runLen++
			continue
		}
		flushRun()
		b.WriteByte('[')
		b.Write(column)
		b.WriteByte(']')
	}
	flushRun()

	return b.String(), nil
}
