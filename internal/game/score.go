package game

// ScoreTracker counts obstacles passed this round and keeps the best
// score across restarts within the process run. Nothing is persisted;
// best resets when the process exits.
type ScoreTracker struct {
	current int
	best    int
}

// Pass credits one passed obstacle.
func (s *ScoreTracker) Pass() {
	s.current++
}

// Fold folds the round score into the best score. Called exactly once,
// at the transition into the failure state; quitting mid-round skips it.
func (s *ScoreTracker) Fold() {
	if s.current > s.best {
		s.best = s.current
	}
}

// ResetCurrent clears the round score for a restart.
func (s *ScoreTracker) ResetCurrent() {
	s.current = 0
}

// Current returns the round score.
func (s *ScoreTracker) Current() int {
	return s.current
}

// Best returns the best score this process run.
func (s *ScoreTracker) Best() int {
	return s.best
}

// CurrentDigits returns the decimal digit count of the round score.
// Purely presentational: it shifts the HUD anchor and trims the ceiling.
func (s *ScoreTracker) CurrentDigits() int {
	return digits(s.current)
}

// BestDigits returns the decimal digit count of the best score.
func (s *ScoreTracker) BestDigits() int {
	return digits(s.best)
}

func digits(n int) int {
	d := 1
	for n > 9 {
		n /= 10
		d++
	}
	return d
}
