package metric

// PairwiseMatch scores a column by the number of unordered pairs of
// distinct entries, where two gaps count as equal. Ported from the
// fully-specified pairwise match metric: cost = max_score -
// score_increment, where score_increment sums c*(c-1)/2 over every
// entry kind with count >= 2, and max_score = K*(K-1)/2.
type PairwiseMatch struct {
	k      int
	counts []int32 // size A+1, reused across columns
}

// NewPairwiseMatch builds a match metric for alphabetSize distinct
// characters (excluding gap) and k sequences. k is not range-checked
// here; ComputeCostIncrement returns an OverflowError if a column's cost
// does not fit in Cost.
func NewPairwiseMatch(alphabetSize int, k int) *PairwiseMatch {
	return &PairwiseMatch{
		k:      k,
		counts: make([]int32, alphabetSize+1),
	}
}

func (m *PairwiseMatch) Reset() {
	for i := range m.counts {
		m.counts[i] = 0
	}
}

func (m *PairwiseMatch) CountCharacter(idx uint8) {
	m.counts[idx]++
}

func (m *PairwiseMatch) CountGap() {
	m.counts[len(m.counts)-1]++
}

func (m *PairwiseMatch) ComputeCostIncrement() (Cost, error) {
	var scoreIncrement int64
	for _, c := range m.counts {
		if c >= 2 {
			scoreIncrement += int64(c) * int64(c-1) / 2
		}
	}
	maxScore := int64(m.k) * int64(m.k-1) / 2
	cost := maxScore - scoreIncrement
	if cost < 0 || cost > int64(^uint32(0)>>1) {
		return 0, &OverflowError{Operation: "pairwise-match cost increment"}
	}
	return Cost(cost), nil
}
