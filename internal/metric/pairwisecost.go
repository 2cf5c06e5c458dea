package metric

import "github.com/sumofpairs/multialign/internal/costtable"

// PairwiseCost scores a column using a symmetric cost table T over
// (A+1)x(A+1) entries (the (A+1)-th row/column is the gap). It iterates
// only the non-zero kinds present in the current column, in first-seen
// order, and for each ordered pair (k, k') with k <= k' adds
// c_k*c_k'*T[k][k'] — counting the diagonal pair with multiplicity c_k^2
// rather than c_k*(c_k-1)/2, matching the source convention described in
// the design notes. Table authors compensate by setting T[k][k]=0 for
// identity kinds, enforced at load time by internal/costtable.
type PairwiseCost struct {
	table       *costtable.Table
	counts      []int32
	present     []uint8 // kinds seen this column, insertion order
	presentSeen []bool
}

// NewPairwiseCost builds a cost metric backed by table.
func NewPairwiseCost(table *costtable.Table) *PairwiseCost {
	size := table.Size()
	return &PairwiseCost{
		table:       table,
		counts:      make([]int32, size),
		present:     make([]uint8, 0, size),
		presentSeen: make([]bool, size),
	}
}

func (m *PairwiseCost) Reset() {
	for _, k := range m.present {
		m.counts[k] = 0
		m.presentSeen[k] = false
	}
	m.present = m.present[:0]
}

func (m *PairwiseCost) record(idx uint8) {
	if !m.presentSeen[idx] {
		m.presentSeen[idx] = true
		m.present = append(m.present, idx)
	}
	m.counts[idx]++
}

func (m *PairwiseCost) CountCharacter(idx uint8) {
	m.record(idx)
}

func (m *PairwiseCost) CountGap() {
	m.record(uint8(len(m.counts) - 1))
}

func (m *PairwiseCost) ComputeCostIncrement() (Cost, error) {
	var total int64
	for i := 0; i < len(m.present); i++ {
		k := m.present[i]
		ck := int64(m.counts[k])
		total += ck * ck * int64(m.table.Cost(k, k))
		for j := i + 1; j < len(m.present); j++ {
			kp := m.present[j]
			ckp := int64(m.counts[kp])
			total += ck * ckp * int64(m.table.Cost(k, kp))
		}
	}
	if total < int64(^uint32(0)>>1)*-1 || total > int64(^uint32(0)>>1) {
		return 0, &OverflowError{Operation: "pairwise-cost cost increment"}
	}
	return Cost(total), nil
}
