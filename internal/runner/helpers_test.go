package runner

// seqRand replays a fixed sequence of values, wrapping around.
type seqRand struct {
	vals []float64
	i    int
}

func (s *seqRand) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func newTestRun(vals ...float64) *Run {
	if len(vals) == 0 {
		vals = []float64{0.5}
	}
	return New(WithRand(&seqRand{vals: vals}))
}
