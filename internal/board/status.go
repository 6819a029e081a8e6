package board

// GameStatus describes the state of the game from the side to move's
// perspective. Draw is reserved for future material/repetition rules.
type GameStatus uint8

const (
	StatusActive GameStatus = iota
	StatusCheck
	StatusCheckmate
	StatusStalemate
	StatusDraw
)

// String returns the status name.
func (s GameStatus) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusCheck:
		return "check"
	case StatusCheckmate:
		return "checkmate"
	case StatusStalemate:
		return "stalemate"
	case StatusDraw:
		return "draw"
	default:
		return "unknown"
	}
}

// InCheck reports whether side's king is attacked by the opponent.
func (p *Position) InCheck(side Color) bool {
	return p.IsSquareAttacked(p.kingSquare[side], side.Other())
}

// IsCheckmate reports whether side is in check with no legal move.
func (p *Position) IsCheckmate(side Color) bool {
	return p.InCheck(side) && !p.HasLegalMoves(side)
}

// IsStalemate reports whether side has no legal move while not in check.
func (p *Position) IsStalemate(side Color) bool {
	return !p.InCheck(side) && !p.HasLegalMoves(side)
}

// Status derives the game status for side. Checkmate and stalemate are
// mutually exclusive: both require an empty legal move set, and the check
// flag decides between them.
func (p *Position) Status(side Color) GameStatus {
	inCheck := p.InCheck(side)
	if !p.HasLegalMoves(side) {
		if inCheck {
			return StatusCheckmate
		}
		return StatusStalemate
	}
	if inCheck {
		return StatusCheck
	}
	return StatusActive
}
