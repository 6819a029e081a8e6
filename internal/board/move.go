package board

import "fmt"

// MoveKind classifies a move. A capturing promotion carries KindPromotion
// with a non-NoPiece Captured field.
type MoveKind uint8

const (
	KindNormal MoveKind = iota
	KindCapture
	KindCastle
	KindPromotion
	KindEnPassant
)

// String returns the move kind name.
func (k MoveKind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindCapture:
		return "capture"
	case KindCastle:
		return "castle"
	case KindPromotion:
		return "promotion"
	case KindEnPassant:
		return "en passant"
	default:
		return "unknown"
	}
}

// Move fully describes a state transition and its inverse.
// Immutable once constructed.
type Move struct {
	From      Square
	To        Square
	Piece     PieceType // kind of the moving piece
	Kind      MoveKind
	Captured  Piece     // NoPiece if nothing is captured
	Promotion PieceType // NoPieceType unless Kind is KindPromotion
}

// NoMove is the zero move, used where no move exists.
var NoMove = Move{Captured: NoPiece, Promotion: NoPieceType}

// IsCapture returns true if this move removes an enemy piece.
func (m Move) IsCapture() bool {
	return m.Captured != NoPiece
}

// String returns the long algebraic form of the move (e.g., "e2e4", "e7e8q").
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	s := m.From.String() + m.To.String()
	if m.Kind == KindPromotion {
		promoChars := map[PieceType]byte{Knight: 'n', Bishop: 'b', Rook: 'r', Queen: 'q'}
		s += string(promoChars[m.Promotion])
	}
	return s
}

// ParseMove parses long algebraic notation ("e2e4", "e7e8q") against the
// current legal moves of the side to move. The returned move is fully
// specified (kind, captured piece, promotion target).
func (p *Position) ParseMove(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return NoMove, fmt.Errorf("invalid move string: %q", s)
	}

	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NoMove, err
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NoMove, err
	}

	promo := NoPieceType
	if len(s) == 5 {
		switch s[4] {
		case 'n':
			promo = Knight
		case 'b':
			promo = Bishop
		case 'r':
			promo = Rook
		case 'q':
			promo = Queen
		default:
			return NoMove, fmt.Errorf("invalid promotion piece: %c", s[4])
		}
	}

	m, ok := p.FindMove(from, to, promo)
	if !ok {
		return NoMove, fmt.Errorf("no legal move %q in current position", s)
	}
	return m, nil
}

// FindMove locates the legal move matching origin, destination and
// promotion target. Returns false if no such move is legal.
func (p *Position) FindMove(from, to Square, promo PieceType) (Move, bool) {
	for _, m := range p.LegalMoves(p.SideToMove) {
		if m.From == from && m.To == to && m.Promotion == promo {
			return m, true
		}
	}
	return NoMove, false
}
