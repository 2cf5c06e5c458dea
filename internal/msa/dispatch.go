package msa

import (
	"fmt"

	"github.com/sumofpairs/multialign/internal/astar"
	"github.com/sumofpairs/multialign/internal/cigar"
	"github.com/sumofpairs/multialign/internal/identifier"
	"github.com/sumofpairs/multialign/internal/metric"
	"github.com/sumofpairs/multialign/internal/sequence"
)

// MaxK is the largest sequence count the successor bitmask can address:
// masks range over 1..2^K-1, and 2^64-1 fits exactly in a uint64, so
// K=64 is the last value that does not overflow the mask.
const MaxK = 64

// UnsupportedKError reports a K outside the range this engine can
// search (a configuration error, not a programming error).
type UnsupportedKError struct {
	K int
}

func (e *UnsupportedKError) Error() string {
	return fmt.Sprintf("cannot align %d sequences: K must be <= %d (the successor bitmask would overflow)", e.K, MaxK)
}

func (e *UnsupportedKError) IsConfigurationError() {}

// Result is the outcome of a completed alignment.
type Result struct {
	Cost  int32
	CIGAR string
	Stats astar.Stats
}

// Align computes the minimum-cost alignment of seqs under m. K = len(seqs)
// must be >= 2 (K <= 1 is a caller-contract violation and panics, per
// the dispatcher's own stated contract) and K must not exceed MaxK.
// The identifier representation is chosen by K alone: fixed-K for
// K <= identifier.MaxFixedK, variable-K otherwise; both paths share
// every other line of search and backtracking logic.
func Align(seqs []*sequence.Sequence, m metric.Metric) (*Result, error) {
	k := len(seqs)
	if k <= 1 {
		panic(fmt.Sprintf("msa: Align requires at least 2 sequences, got %d", k))
	}
	if k > MaxK {
		return nil, &UnsupportedKError{K: k}
	}

	if k <= identifier.MaxFixedK {
		return alignWith(identifier.FixedOps(), seqs, m)
	}
	return alignWith(identifier.VariableOps(), seqs, m)
}

func alignWith[I comparable](ops identifier.Ops[I], seqs []*sequence.Sequence, m metric.Metric) (*Result, error) {
	ctx := newContext(ops, seqs, m)

	result, err := astar.Search[I](ctx)
	if err != nil {
		return nil, fmt.Errorf("aligning %d sequences: %w", ctx.k, err)
	}

	str, err := cigar.Build(seqs, ops, result.Target, result.Predecessor)
	if err != nil {
		return nil, fmt.Errorf("building cigar: %w", err)
	}

	return &Result{Cost: result.Cost, CIGAR: str, Stats: result.Stats}, nil
}
