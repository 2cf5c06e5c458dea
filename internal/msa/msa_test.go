package msa

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumofpairs/multialign/internal/alphabet"
	"github.com/sumofpairs/multialign/internal/metric"
	"github.com/sumofpairs/multialign/internal/sequence"
)

func mustSeq(t *testing.T, id, raw string) *sequence.Sequence {
	t.Helper()
	s, err := sequence.New(id, "", alphabet.DNA, raw)
	require.NoError(t, err)
	return s
}

func TestAlignTrivialMatch(t *testing.T) {
	seqs := []*sequence.Sequence{mustSeq(t, "a", "ACGT"), mustSeq(t, "b", "ACGT")}
	m := metric.NewPairwiseMatch(alphabet.DNA.Size(), 2)

	result, err := Align(seqs, m)
	require.NoError(t, err)
	assert.EqualValues(t, 0, result.Cost)
	assert.Equal(t, "4M", result.CIGAR)
}

func TestAlignSingleSubstitution(t *testing.T) {
	seqs := []*sequence.Sequence{mustSeq(t, "a", "ACGT"), mustSeq(t, "b", "ACCT")}
	m := metric.NewPairwiseMatch(alphabet.DNA.Size(), 2)

	result, err := Align(seqs, m)
	require.NoError(t, err)
	assert.EqualValues(t, 1, result.Cost)
	// Mismatch column is seqs[0][2]='G', seqs[1][2]='C'.
	assert.Equal(t, "2M[GC]1M", result.CIGAR)
}

func TestAlignSingleIndel(t *testing.T) {
	seqs := []*sequence.Sequence{mustSeq(t, "a", "ACGT"), mustSeq(t, "b", "AGT")}
	m := metric.NewPairwiseMatch(alphabet.DNA.Size(), 2)

	result, err := Align(seqs, m)
	require.NoError(t, err)
	assert.EqualValues(t, 1, result.Cost)
	assert.Equal(t, "1M[C-]2M", result.CIGAR)
}

func TestAlignThreeAllIdentical(t *testing.T) {
	seqs := []*sequence.Sequence{mustSeq(t, "a", "AA"), mustSeq(t, "b", "AA"), mustSeq(t, "c", "AA")}
	m := metric.NewPairwiseMatch(alphabet.DNA.Size(), 3)

	result, err := Align(seqs, m)
	require.NoError(t, err)
	assert.EqualValues(t, 0, result.Cost)
	assert.Equal(t, "2M", result.CIGAR)
}

func TestAlignThreeOneDiffersByInsertion(t *testing.T) {
	// DNA has no 'X'; use the amino-acid alphabet, which does.
	a := alphabet.IUPACAminoAcid
	seqs := []*sequence.Sequence{
		mustSeq2(t, "a", "AC", a),
		mustSeq2(t, "b", "AC", a),
		mustSeq2(t, "c", "AXC", a),
	}
	m := metric.NewPairwiseMatch(a.Size(), 3)

	result, err := Align(seqs, m)
	require.NoError(t, err)
	assert.EqualValues(t, 2, result.Cost)
}

func mustSeq2(t *testing.T, id, raw string, a *alphabet.Alphabet) *sequence.Sequence {
	t.Helper()
	s, err := sequence.New(id, "", a, raw)
	require.NoError(t, err)
	return s
}

// K=64 selects the variable-K identifier path (K > identifier.MaxFixedK
// == 63). Successor generation only branches over sequences that still
// have input remaining at a given node (see context.go's Successors),
// so this keeps the branching factor at most 3 (2^2-1, not 2^64-1) by making 62 of
// the 64 sequences already-exhausted (length 0) at every reachable
// node: the data model permits |s| == 0, so this is a legitimate input,
// not a workaround.
func TestAlignK64VariableKPath(t *testing.T) {
	seqs := make([]*sequence.Sequence, 64)
	seqs[0] = mustSeq(t, "a", "A")
	seqs[1] = mustSeq(t, "b", "A")
	for i := 2; i < 64; i++ {
		seqs[i] = mustSeq(t, "empty", "")
	}
	m := metric.NewPairwiseMatch(alphabet.DNA.Size(), 64)

	result, err := Align(seqs, m)
	require.NoError(t, err)

	// The cheapest way to reach the target is the single edge that
	// advances both real sequences at once: max_score = 64*63/2 = 2016,
	// score_increment = C(2,2) + C(62,2) = 1 + 1891 = 1892, cost = 124.
	// Advancing them one at a time costs 63 + 63 = 126, so A* must
	// prefer the direct edge.
	assert.EqualValues(t, 124, result.Cost)
	assert.Equal(t, "[AA"+strings.Repeat("-", 62)+"]", result.CIGAR)
}

func TestAlignRejectsKTooLarge(t *testing.T) {
	seqs := make([]*sequence.Sequence, MaxK+1)
	for i := range seqs {
		seqs[i] = mustSeq(t, "s", "A")
	}
	m := metric.NewPairwiseMatch(alphabet.DNA.Size(), MaxK+1)

	_, err := Align(seqs, m)
	require.Error(t, err)
	var kErr *UnsupportedKError
	require.ErrorAs(t, err, &kErr)
}

func TestAlignPanicsOnKTooSmall(t *testing.T) {
	seqs := []*sequence.Sequence{mustSeq(t, "a", "A")}
	m := metric.NewPairwiseMatch(alphabet.DNA.Size(), 1)

	assert.Panics(t, func() { _, _ = Align(seqs, m) })
}

func TestAlignDeterministic(t *testing.T) {
	seqs := []*sequence.Sequence{mustSeq(t, "a", "ACGTACGT"), mustSeq(t, "b", "ACGAACGT")}
	m1 := metric.NewPairwiseMatch(alphabet.DNA.Size(), 2)
	m2 := metric.NewPairwiseMatch(alphabet.DNA.Size(), 2)

	r1, err := Align(seqs, m1)
	require.NoError(t, err)
	r2, err := Align(seqs, m2)
	require.NoError(t, err)

	assert.Equal(t, r1.Cost, r2.Cost)
	assert.Equal(t, r1.CIGAR, r2.CIGAR)
}
