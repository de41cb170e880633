package session

// Score holds the running correct and incorrect counters. Both only ever
// increase.
type Score struct {
	Correct   int
	Incorrect int
}

// Record adds one answer to the score.
func (s *Score) Record(correct bool) {
	if correct {
		s.Correct++
	} else {
		s.Incorrect++
	}
}

// Total returns the number of scored answers.
func (s Score) Total() int {
	return s.Correct + s.Incorrect
}

// Accuracy returns Correct / Total, or 0 when nothing has been scored.
func (s Score) Accuracy() float64 {
	if s.Total() == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Total())
}
