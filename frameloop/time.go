package frameloop

// TimeState is the animation clock. T grows by Step on every Advance and is
// never wrapped.
type TimeState struct {
	T    float32
	Step float32
}

// Advance moves the clock forward by one step and returns the new time.
func (s *TimeState) Advance() float32 {
	s.T += s.Step
	return s.T
}
