package identifier

// Ops bundles the identifier operations the generic A* context needs,
// parameterized over the concrete representation I. This is the
// "collapsed switch": rather than one generic instantiation per K, the
// dispatcher builds exactly one of two Ops values — FixedOps or
// VariableOps — and the rest of the engine is written once, generic
// over I.
type Ops[I comparable] struct {
	Root   func(k int) I
	Offset func(id I, i int) uint32
	K      func(id I) int
	Step   func(id I, indices []int) I
	String func(id I) string
}

// FixedOps returns the Ops table for the Fixed representation.
func FixedOps() Ops[Fixed] {
	return Ops[Fixed]{
		Root:   NewFixedRoot,
		Offset: func(id Fixed, i int) uint32 { return id.Offset(i) },
		K:      func(id Fixed) int { return id.K() },
		Step:   StepFixed,
		String: func(id Fixed) string { return id.String() },
	}
}

// VariableOps returns the Ops table for the Variable representation.
func VariableOps() Ops[Variable] {
	return Ops[Variable]{
		Root:   NewVariableRoot,
		Offset: func(id Variable, i int) uint32 { return id.Offset(i) },
		K:      func(id Variable) int { return id.K() },
		Step:   StepVariable,
		String: func(id Variable) string { return id.String() },
	}
}
