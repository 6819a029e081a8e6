package board

import "fmt"

// CastlingRights represents the available castling options.
type CastlingRights uint8

const (
	WhiteKingSideCastle  CastlingRights = 1 << iota // K
	WhiteQueenSideCastle                            // Q
	BlackKingSideCastle                             // k
	BlackQueenSideCastle                            // q
	NoCastling           CastlingRights = 0
	AllCastling          CastlingRights = WhiteKingSideCastle | WhiteQueenSideCastle | BlackKingSideCastle | BlackQueenSideCastle
)

// String returns the FEN castling rights string.
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	s := ""
	if cr&WhiteKingSideCastle != 0 {
		s += "K"
	}
	if cr&WhiteQueenSideCastle != 0 {
		s += "Q"
	}
	if cr&BlackKingSideCastle != 0 {
		s += "k"
	}
	if cr&BlackQueenSideCastle != 0 {
		s += "q"
	}
	return s
}

// CanCastle returns true if the given side can castle in the given direction.
func (cr CastlingRights) CanCastle(c Color, kingSide bool) bool {
	if c == White {
		if kingSide {
			return cr&WhiteKingSideCastle != 0
		}
		return cr&WhiteQueenSideCastle != 0
	}
	if kingSide {
		return cr&BlackKingSideCastle != 0
	}
	return cr&BlackQueenSideCastle != 0
}

// Position represents a complete chess position: a 64-slot mailbox plus
// side to move, castling rights and the en passant target square.
type Position struct {
	squares [64]Piece

	SideToMove     Color
	CastlingRights CastlingRights
	EnPassant      Square // target square for en passant, NoSquare if none

	// King positions (cached for check detection)
	kingSquare [2]Square
}

// NewPosition creates the starting position.
func NewPosition() *Position {
	pos, _ := ParseFEN(StartFEN)
	return pos
}

// Copy creates a deep copy of the position.
func (p *Position) Copy() *Position {
	newPos := *p
	return &newPos
}

// PieceAt returns the piece at the given square, or NoPiece if empty.
func (p *Position) PieceAt(sq Square) Piece {
	if !sq.IsValid() {
		return NoPiece
	}
	return p.squares[sq]
}

// IsEmpty returns true if the square is empty.
func (p *Position) IsEmpty(sq Square) bool {
	return p.PieceAt(sq) == NoPiece
}

// KingSquare returns the square of the given side's king.
func (p *Position) KingSquare(c Color) Square {
	return p.kingSquare[c]
}

// SetPiece places a piece on a square.
// Returns ErrInvalidSquare for out-of-bounds squares.
func (p *Position) SetPiece(piece Piece, sq Square) error {
	if !sq.IsValid() {
		return fmt.Errorf("%w: %d", ErrInvalidSquare, sq)
	}
	p.putPiece(piece, sq)
	return nil
}

// RemovePiece removes and returns the piece on a square.
// Returns ErrInvalidSquare for out-of-bounds squares.
func (p *Position) RemovePiece(sq Square) (Piece, error) {
	if !sq.IsValid() {
		return NoPiece, fmt.Errorf("%w: %d", ErrInvalidSquare, sq)
	}
	piece := p.squares[sq]
	p.squares[sq] = NoPiece
	return piece, nil
}

// putPiece places a piece without bounds checking (hot path).
func (p *Position) putPiece(piece Piece, sq Square) {
	p.squares[sq] = piece
	if piece.Type() == King {
		p.kingSquare[piece.Color()] = sq
	}
}

// Undo stores the position state a move destroys, so that UnmakeMove can
// restore it exactly.
type Undo struct {
	Captured       Piece
	CastlingRights CastlingRights
	EnPassant      Square
}

// ApplyMove applies a move and returns the undo record.
// The move must be well-formed for this position; legality is the caller's
// concern (LegalMoves only emits applicable moves).
func (p *Position) ApplyMove(m Move) Undo {
	undo := Undo{
		Captured:       NoPiece,
		CastlingRights: p.CastlingRights,
		EnPassant:      p.EnPassant,
	}

	piece := p.squares[m.From]
	us := piece.Color()

	p.EnPassant = NoSquare

	// Remove the captured piece. For en passant the passed pawn sits
	// beside the destination, not on it.
	if m.Kind == KindEnPassant {
		capSq := NewSquare(m.To.File(), m.From.Rank())
		undo.Captured = p.squares[capSq]
		p.squares[capSq] = NoPiece
	} else if p.squares[m.To] != NoPiece {
		undo.Captured = p.squares[m.To]
	}

	// Relocate the moving piece; promotions replace the pawn.
	p.squares[m.From] = NoPiece
	if m.Kind == KindPromotion {
		p.putPiece(NewPiece(m.Promotion, us), m.To)
	} else {
		p.putPiece(piece, m.To)
	}

	// Castling additionally relocates the rook.
	if m.Kind == KindCastle {
		rookFrom, rookTo := castleRookSquares(m)
		p.squares[rookTo] = p.squares[rookFrom]
		p.squares[rookFrom] = NoPiece
	}

	// Double pawn push opens an en passant target.
	if piece.Type() == Pawn && absInt(int(m.To)-int(m.From)) == 16 {
		p.EnPassant = Square((int(m.From) + int(m.To)) / 2)
	}

	p.updateCastlingRights(m, piece)
	p.SideToMove = p.SideToMove.Other()

	return undo
}

// UnmakeMove reverses a move applied with ApplyMove. The position is
// bit-for-bit identical to the state before the corresponding apply.
func (p *Position) UnmakeMove(m Move, undo Undo) {
	p.SideToMove = p.SideToMove.Other()
	us := p.SideToMove

	// Put the moving piece back; a promoted piece reverts to a pawn.
	p.squares[m.To] = NoPiece
	p.putPiece(NewPiece(m.Piece, us), m.From)

	// Restore the captured piece.
	if m.Kind == KindEnPassant {
		capSq := NewSquare(m.To.File(), m.From.Rank())
		p.squares[capSq] = undo.Captured
	} else if undo.Captured != NoPiece {
		p.squares[m.To] = undo.Captured
	}

	// Walk the rook back.
	if m.Kind == KindCastle {
		rookFrom, rookTo := castleRookSquares(m)
		p.squares[rookFrom] = p.squares[rookTo]
		p.squares[rookTo] = NoPiece
	}

	p.CastlingRights = undo.CastlingRights
	p.EnPassant = undo.EnPassant
}

// castleRookSquares returns the rook's origin and destination for a
// castling move described by the king's movement.
func castleRookSquares(m Move) (rookFrom, rookTo Square) {
	if m.To > m.From { // kingside
		return m.From + 3, m.From + 1
	}
	return m.From - 4, m.From - 1
}

// updateCastlingRights clears rights invalidated by the move: any king
// move, a rook leaving its corner, or a capture on a corner square.
func (p *Position) updateCastlingRights(m Move, piece Piece) {
	if piece.Type() == King {
		if piece.Color() == White {
			p.CastlingRights &^= WhiteKingSideCastle | WhiteQueenSideCastle
		} else {
			p.CastlingRights &^= BlackKingSideCastle | BlackQueenSideCastle
		}
	}
	for _, sq := range [2]Square{m.From, m.To} {
		switch sq {
		case A1:
			p.CastlingRights &^= WhiteQueenSideCastle
		case H1:
			p.CastlingRights &^= WhiteKingSideCastle
		case A8:
			p.CastlingRights &^= BlackQueenSideCastle
		case H8:
			p.CastlingRights &^= BlackKingSideCastle
		}
	}
}

// String returns a visual representation of the position.
func (p *Position) String() string {
	s := "\n"
	for rank := 7; rank >= 0; rank-- {
		s += fmt.Sprintf("%d  ", rank+1)
		for file := 0; file < 8; file++ {
			sq := NewSquare(file, rank)
			piece := p.PieceAt(sq)
			if piece == NoPiece {
				s += ". "
			} else {
				s += piece.String() + " "
			}
		}
		s += "\n"
	}
	s += "\n   a b c d e f g h\n\n"
	s += fmt.Sprintf("Side to move: %s\n", p.SideToMove)
	s += fmt.Sprintf("Castling: %s\n", p.CastlingRights)
	s += fmt.Sprintf("En passant: %s\n", p.EnPassant)
	return s
}

// clear resets the position to an empty board.
func (p *Position) clear() {
	*p = Position{EnPassant: NoSquare}
	for sq := A1; sq <= H8; sq++ {
		p.squares[sq] = NoPiece
	}
	p.kingSquare[White] = NoSquare
	p.kingSquare[Black] = NoSquare
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
