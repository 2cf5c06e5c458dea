// Package identifier provides the two node-identifier representations
// the dispatcher chooses between: Fixed, a stack-friendly array used
// for K up to MaxFixedK, and Variable, a heap-backed fallback for
// larger K. Both are ordinary comparable Go values so they can be used
// directly as map keys in the A* open/closed sets.
package identifier

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// MaxFixedK is the largest K for which the Fixed representation is
// used. The spec requires this to be at least 63.
const MaxFixedK = 63

// Fixed is a K-tuple of offsets backed by a fixed-size array, so values
// of this type never escape to the heap on their own account.
type Fixed struct {
	offsets [MaxFixedK]uint32
	k       uint8
}

// NewFixedRoot builds the all-zero root identifier for k sequences.
// k must satisfy 2 <= k <= MaxFixedK; violating this is a programming
// error and panics, matching the identifier contract's create_root
// check.
func NewFixedRoot(k int) Fixed {
	if k < 2 || k > MaxFixedK {
		panic(fmt.Sprintf("identifier: NewFixedRoot: k=%d out of range [2, %d]", k, MaxFixedK))
	}
	return Fixed{k: uint8(k)}
}

// Offset returns the i-th offset.
func (f Fixed) Offset(i int) uint32 { return f.offsets[i] }

// K returns the sequence count this identifier was built for.
func (f Fixed) K() int { return int(f.k) }

// String renders "(o0, o1, ..., oK-1)".
func (f Fixed) String() string {
	return formatOffsets(f.K(), f.Offset)
}

// StepFixed returns a copy of id with the offsets at the given indices
// incremented by one. The caller (the alignment context) is responsible
// for restricting indices to the effective, non-exhausted subset.
func StepFixed(id Fixed, indices []int) Fixed {
	next := id
	for _, i := range indices {
		next.offsets[i]++
	}
	return next
}

// Variable is a K-tuple of offsets backed by a packed byte string, used
// as the fallback representation once K exceeds MaxFixedK. Go strings
// are immutable and comparable, so Variable values are valid, hashable
// map keys without a custom Equal/Hash implementation.
type Variable string

// NewVariableRoot builds the all-zero root identifier for k sequences.
// k must be > MaxFixedK; smaller k should use Fixed instead.
func NewVariableRoot(k int) Variable {
	if k <= MaxFixedK {
		panic(fmt.Sprintf("identifier: NewVariableRoot: k=%d should use Fixed", k))
	}
	return Variable(make([]byte, 4*k))
}

// Offset returns the i-th offset.
func (v Variable) Offset(i int) uint32 {
	b := []byte(v)
	return binary.LittleEndian.Uint32(b[4*i : 4*i+4])
}

// K returns the sequence count this identifier was built for.
func (v Variable) K() int { return len(v) / 4 }

// String renders "(o0, o1, ..., oK-1)".
func (v Variable) String() string {
	return formatOffsets(v.K(), v.Offset)
}

// StepVariable returns a copy of id with the offsets at the given
// indices incremented by one.
func StepVariable(id Variable, indices []int) Variable {
	buf := make([]byte, len(id))
	copy(buf, id)
	for _, i := range indices {
		off := binary.LittleEndian.Uint32(buf[4*i : 4*i+4])
		binary.LittleEndian.PutUint32(buf[4*i:4*i+4], off+1)
	}
	return Variable(buf)
}

func formatOffsets(k int, offset func(int) uint32) string {
	var b strings.Builder
	b.WriteByte('(')
	for i := 0; i < k; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d", offset(i))
	}
	b.WriteByte(')')
	return b.String()
}
