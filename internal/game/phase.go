// Package game provides the simulation tick and the terminal game loop.
package game

// Phase represents where a round stands.
type Phase int

const (
	// PhaseReady is before the first round; the start modal is showing.
	PhaseReady Phase = iota
	// PhasePlaying is a round in progress.
	PhasePlaying
	// PhaseWon means every pellet and power-up was eaten.
	PhaseWon
	// PhaseLost means a pursuer caught the player.
	PhaseLost
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Over returns true once the round has ended.
func (p Phase) Over() bool {
	return p == PhaseWon || p == PhaseLost
}
