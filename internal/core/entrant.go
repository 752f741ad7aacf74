package core

// Entrant names one of the two match-level participants, independent of
// the Color it plays in a given game.
type Entrant uint8

const (
	EntrantA Entrant = iota
	EntrantB
)

// EntrantCount is the number of participants in a match.
const EntrantCount = 2

// Entrants lists both participants.
var Entrants = [EntrantCount]Entrant{EntrantA, EntrantB}

// Opposite returns the other participant.
func (e Entrant) Opposite() Entrant {
	if e == EntrantA {
		return EntrantB
	}
	return EntrantA
}

// String returns "A" or "B".
func (e Entrant) String() string {
	switch e {
	case EntrantA:
		return "A"
	case EntrantB:
		return "B"
	default:
		return "?"
	}
}
