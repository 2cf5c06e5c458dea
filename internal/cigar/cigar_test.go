package cigar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumofpairs/multialign/internal/alphabet"
	"github.com/sumofpairs/multialign/internal/identifier"
	"github.com/sumofpairs/multialign/internal/sequence"
)

func mustSeq(t *testing.T, id, raw string) *sequence.Sequence {
	t.Helper()
	s, err := sequence.New(id, "", alphabet.DNA, raw)
	require.NoError(t, err)
	return s
}

func TestBuildTrivialMatch(t *testing.T) {
	seqs := []*sequence.Sequence{mustSeq(t, "a", "ACGT"), mustSeq(t, "b", "ACGT")}
	ops := identifier.FixedOps()

	root := ops.Root(2)
	predecessor := map[identifier.Fixed]identifier.Fixed{}
	cur := root
	for i := 0; i < 4; i++ {
		next := ops.Step(cur, []int{0, 1})
		predecessor[next] = cur
		cur = next
	}

	cigarStr, err := Build(seqs, ops, cur, predecessor)
	require.NoError(t, err)
	assert.Equal(t, "4M", cigarStr)
}

func TestBuildSingleMismatch(t *testing.T) {
	seqs := []*sequence.Sequence{mustSeq(t, "a", "ACGT"), mustSeq(t, "b", "ACCT")}
	ops := identifier.FixedOps()

	root := ops.Root(2)
	n1 := ops.Step(root, []int{0, 1})
	n2 := ops.Step(n1, []int{0, 1})
	n3 := ops.Step(n2, []int{0, 1})
	n4 := ops.Step(n3, []int{0, 1})
	predecessor := map[identifier.Fixed]identifier.Fixed{
		n1: root, n2: n1, n3: n2, n4: n3,
	}

	cigarStr, err := Build(seqs, ops, n4, predecessor)
	require.NoError(t, err)
	// Mismatch column is seqs[0][2]='G', seqs[1][2]='C', rendered
	// top-to-bottom in input order.
	assert.Equal(t, "2M[GC]1M", cigarStr)
}

func TestBuildEmptyAlignment(t *testing.T) {
	seqs := []*sequence.Sequence{}
	ops := identifier.FixedOps()
	root := ops.Root(2)

	cigarStr, err := Build(seqs, ops, root, map[identifier.Fixed]identifier.Fixed{})
	require.NoError(t, err)
	assert.Equal(t, "", cigarStr)
}

func TestBuildIndel(t *testing.T) {
	seqs := []*sequence.Sequence{mustSeq(t, "a", "ACGT"), mustSeq(t, "b", "AGT")}
	ops := identifier.FixedOps()

	root := ops.Root(2)
	n1 := ops.Step(root, []int{0, 1}) // A/A match
	n2 := ops.Step(n1, []int{0})      // C vs gap
	n3 := ops.Step(n2, []int{0, 1})   // G/G match
	n4 := ops.Step(n3, []int{0, 1})   // T/T match
	predecessor := map[identifier.Fixed]identifier.Fixed{
		n1: root, n2: n1, n3: n2, n4: n3,
	}

	cigarStr, err := Build(seqs, ops, n4, predecessor)
	require.NoError(t, err)
	assert.Equal(t, "1M[C-]2M", cigarStr)
}
