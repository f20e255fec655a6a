package board

type State uint8

const (
	// StateUnknown is when game state is unknown.
	StateUnknown State = iota

	// StateRunning is when game is on progress.
	StateRunning

	// StateCheck is when the side to move is in check but has a legal move.
	StateCheck

	// StateCheckmate is when the side to move is in check without a legal move.
	StateCheckmate

	// StateStalemate is when the side to move has no legal move and is not in check.
	StateStalemate
)

func (s State) IsRunning() bool {
	switch s {
	case StateRunning, StateCheck:
		return true
	default:
		return false
	}
}

func (s State) String() string {
	switch s {
	case StateUnknown:
		return "StateUnknown"
	case StateRunning:
		return "StateRunning"
	case StateCheck:
		return "StateCheck"
	case StateCheckmate:
		return "StateCheckmate"
	case StateStalemate:
		return "StateStalemate"
	default:
		return ""
	}
}

// State classifies the position from the side to move's point of view.
func (b *Board) State() State {
	isCheck := b.IsKingChecked(b.turn)
	if len(b.GenerateMoves()) == 0 {
		if isCheck {
			return StateCheckmate
		}
		return StateStalemate
	}
	if isCheck {
		return StateCheck
	}
	return StateRunning
}
