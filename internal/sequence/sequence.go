// Package sequence provides the immutable Sequence type and the
// read-only Store that the aligner loads records into.
package sequence

import (
	"fmt"
	"strings"

	"github.com/sumofpairs/multialign/internal/alphabet"
)

// Sequence is an ordered, finite, immutable sequence of alphabet
// characters, stored as dense indices rather than raw ASCII so the core
// engine never re-decodes a byte on the hot path.
type Sequence struct {
	id          string
	description string
	alphabet    *alphabet.Alphabet
	bases       []uint8
}

// New validates and constructs a Sequence over the given alphabet. raw
// is the FASTA body with any --skip-characters already stripped. An
// empty raw is valid (a length-0 sequence; the data model places no
// lower bound on |s|) and simply produces a Sequence with Len() == 0.
func New(id, description string, a *alphabet.Alphabet, raw string) (*Sequence, error) {
	upper := strings.ToUpper(raw)
	bases := make([]uint8, len(upper))
	for i := 0; i < len(upper); i++ {
		idx, err := a.Decode(upper[i], i)
		if err != nil {
			return nil, fmt.Errorf("sequence %q: %w", id, err)
		}
		bases[i] = idx
	}
	return &Sequence{id: id, description: description, alphabet: a, bases: bases}, nil
}

// ID returns the record identifier (already path-prefixed by the loader
// when multiple input files were given).
func (s *Sequence) ID() string { return s.id }

// Description returns the FASTA header text following the id.
func (s *Sequence) Description() string { return s.description }

// Alphabet returns the alphabet this sequence was decoded against.
func (s *Sequence) Alphabet() *alphabet.Alphabet { return s.alphabet }

// Len returns the sequence's length in characters.
func (s *Sequence) Len() int { return len(s.bases) }

// At returns the dense alphabet index at position i. Out-of-range i is a
// programming error and panics, matching the identifier contract's
// offset() convention.
func (s *Sequence) At(i int) uint8 {
	return s.bases[i]
}

// ByteAt returns the ASCII character at position i.
func (s *Sequence) ByteAt(i int) byte {
	return s.alphabet.ByteOf(s.bases[i])
}

// String renders the sequence back to its ASCII form.
func (s *Sequence) String() string {
	b := make([]byte, len(s.bases))
	for i, idx := range s.bases {
		b[i] = s.alphabet.ByteOf(idx)
	}
	return string(b)
}

// Store holds an ordered, immutable collection of sequences and exposes
// read-only indexed access, as required by the sequence-store contract.
type Store struct {
	records []*Sequence
}

// NewStore builds a Store from already-constructed records.
func NewStore(records []*Sequence) *Store {
	return &Store{records: records}
}

// Len returns the number of records in the store.
func (s *Store) Len() int { return len(s.records) }

// At returns the i-th record.
func (s *Store) At(i int) *Sequence { return s.records[i] }

// All returns the underlying slice. Callers must not mutate it.
func (s *Store) All() []*Sequence { return s.records }
