package game

// Outcome is the result of a single Tick.
type Outcome uint8

const (
	OutcomeMoved Outcome = iota
	OutcomeAte
	OutcomeHitWall
	OutcomeHitSelf
	// OutcomeOver is returned when Tick is called on a finished game.
	OutcomeOver
)

// Fatal reports whether this tick ended the game. It is true exactly once
// per game.
func (o Outcome) Fatal() bool {
	return o == OutcomeHitWall || o == OutcomeHitSelf
}

func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeAte:
		return "ate"
	case OutcomeHitWall:
		return "wall-collision"
	case OutcomeHitSelf:
		return "snake-collision"
	case OutcomeOver:
		return "over"
	default:
		return "unknown"
	}
}
