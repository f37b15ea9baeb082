package game

import "sync"

// ScoreSink receives scoring as it happens.
type ScoreSink interface {
	AddPoints(points int)
	GameOver(final int, won bool)
}

// Scoreboard is the default ScoreSink. It backs the score bar and the
// game-over line, and may be read from the render goroutine.
type Scoreboard struct {
	mu    sync.Mutex
	score int
	over  bool
	won   bool
}

// NewScoreboard creates an empty scoreboard.
func NewScoreboard() *Scoreboard {
	return &Scoreboard{}
}

// AddPoints adds to the running score.
func (s *Scoreboard) AddPoints(points int) {
	s.mu.Lock()
	s.score += points
	s.mu.Unlock()
}

// GameOver records the final result.
func (s *Scoreboard) GameOver(final int, won bool) {
	s.mu.Lock()
	s.score = final
	s.over = true
	s.won = won
	s.mu.Unlock()
}

// Reset clears the score for a new round.
func (s *Scoreboard) Reset() {
	s.mu.Lock()
	s.score = 0
	s.over = false
	s.won = false
	s.mu.Unlock()
}

// Score returns the current score.
func (s *Scoreboard) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score
}

// Result returns whether the round is over and, if so, whether it was won.
func (s *Scoreboard) Result() (over, won bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.over, s.won
}
