package board

// Direction vectors and offset tables, in fixed order so move enumeration
// (and therefore search tie-breaking) stays deterministic.
var (
	bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	rookDirs   = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	queenDirs  = [8][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}, {1, 0}, {-1, 0}, {0, 1}, {0, -1}}

	knightOffsets = [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingOffsets   = [8][2]int{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}}
)

// promotionOrder lists promotion targets in generation order.
var promotionOrder = [4]PieceType{Queen, Rook, Bishop, Knight}

// LegalMoves returns every legal move for side. Pseudo-legal candidates
// are applied to the position and rejected if they leave side's own king
// attacked; each candidate is undone before the next is tried.
func (p *Position) LegalMoves(side Color) []Move {
	pseudo := p.PseudoLegalMoves(side)
	legal := pseudo[:0]
	for _, m := range pseudo {
		undo := p.ApplyMove(m)
		if !p.IsSquareAttacked(p.kingSquare[side], side.Other()) {
			legal = append(legal, m)
		}
		p.UnmakeMove(m, undo)
	}
	return legal
}

// HasLegalMoves reports whether side has at least one legal move.
func (p *Position) HasLegalMoves(side Color) bool {
	for _, m := range p.PseudoLegalMoves(side) {
		undo := p.ApplyMove(m)
		attacked := p.IsSquareAttacked(p.kingSquare[side], side.Other())
		p.UnmakeMove(m, undo)
		if !attacked {
			return true
		}
	}
	return false
}

// PseudoLegalMoves generates all moves for side that obey movement
// geometry and blocking, without filtering for king safety. A piece with
// no destinations contributes nothing; the result is never nil for a
// playable position but may be empty.
func (p *Position) PseudoLegalMoves(side Color) []Move {
	moves := make([]Move, 0, 64)
	for sq := A1; sq <= H8; sq++ {
		piece := p.squares[sq]
		if piece == NoPiece || piece.Color() != side {
			continue
		}
		moves = p.pieceMoves(moves, sq, piece)
	}
	return moves
}

// pieceMoves appends the pseudo-legal moves of the piece on sq,
// dispatching over the closed set of piece kinds.
func (p *Position) pieceMoves(moves []Move, sq Square, piece Piece) []Move {
	switch piece.Type() {
	case Pawn:
		return p.pawnMoves(moves, sq, piece.Color())
	case Knight:
		return p.offsetMoves(moves, sq, piece, knightOffsets[:])
	case Bishop:
		return p.slidingMoves(moves, sq, piece, bishopDirs[:])
	case Rook:
		return p.slidingMoves(moves, sq, piece, rookDirs[:])
	case Queen:
		return p.slidingMoves(moves, sq, piece, queenDirs[:])
	case King:
		moves = p.offsetMoves(moves, sq, piece, kingOffsets[:])
		return p.castlingMoves(moves, sq, piece.Color())
	}
	return moves
}

// slidingMoves walks each direction until blocked by the board edge, an
// enemy piece (capture, stop) or a friendly piece (stop).
func (p *Position) slidingMoves(moves []Move, from Square, piece Piece, dirs [][2]int) []Move {
	for _, d := range dirs {
		for to := from.offset(d[0], d[1]); to != NoSquare; to = to.offset(d[0], d[1]) {
			target := p.squares[to]
			if target == NoPiece {
				moves = append(moves, Move{From: from, To: to, Piece: piece.Type(), Kind: KindNormal, Captured: NoPiece, Promotion: NoPieceType})
				continue
			}
			if target.Color() != piece.Color() {
				moves = append(moves, Move{From: from, To: to, Piece: piece.Type(), Kind: KindCapture, Captured: target, Promotion: NoPieceType})
			}
			break
		}
	}
	return moves
}

// offsetMoves generates fixed-offset moves (knight and king steps).
func (p *Position) offsetMoves(moves []Move, from Square, piece Piece, offsets [][2]int) []Move {
	for _, d := range offsets {
		to := from.offset(d[0], d[1])
		if to == NoSquare {
			continue
		}
		target := p.squares[to]
		if target == NoPiece {
			moves = append(moves, Move{From: from, To: to, Piece: piece.Type(), Kind: KindNormal, Captured: NoPiece, Promotion: NoPieceType})
		} else if target.Color() != piece.Color() {
			moves = append(moves, Move{From: from, To: to, Piece: piece.Type(), Kind: KindCapture, Captured: target, Promotion: NoPieceType})
		}
	}
	return moves
}

// pawnMoves generates pushes, captures, en passant and promotions.
func (p *Position) pawnMoves(moves []Move, from Square, us Color) []Move {
	dir := 1
	startRank, promoRank := 1, 7
	if us == Black {
		dir = -1
		startRank, promoRank = 6, 0
	}

	// Single push, and double push from the start rank through two empty
	// squares.
	one := from.offset(0, dir)
	if one != NoSquare && p.squares[one] == NoPiece {
		moves = appendPawnMove(moves, from, one, NoPiece, promoRank)
		if from.Rank() == startRank {
			two := one.offset(0, dir)
			if two != NoSquare && p.squares[two] == NoPiece {
				moves = append(moves, Move{From: from, To: two, Piece: Pawn, Kind: KindNormal, Captured: NoPiece, Promotion: NoPieceType})
			}
		}
	}

	// Diagonal captures, only onto enemy pieces or the en passant target.
	for _, df := range [2]int{-1, 1} {
		to := from.offset(df, dir)
		if to == NoSquare {
			continue
		}
		target := p.squares[to]
		if target != NoPiece && target.Color() != us {
			moves = appendPawnMove(moves, from, to, target, promoRank)
		} else if target == NoPiece && to == p.EnPassant {
			captured := NewPiece(Pawn, us.Other())
			moves = append(moves, Move{From: from, To: to, Piece: Pawn, Kind: KindEnPassant, Captured: captured, Promotion: NoPieceType})
		}
	}

	return moves
}

// appendPawnMove expands a pawn push or capture into promotion moves when
// it reaches the back rank.
func appendPawnMove(moves []Move, from, to Square, captured Piece, promoRank int) []Move {
	if to.Rank() == promoRank {
		for _, promo := range promotionOrder {
			moves = append(moves, Move{From: from, To: to, Piece: Pawn, Kind: KindPromotion, Captured: captured, Promotion: promo})
		}
		return moves
	}
	kind := KindNormal
	if captured != NoPiece {
		kind = KindCapture
	}
	return append(moves, Move{From: from, To: to, Piece: Pawn, Kind: kind, Captured: captured, Promotion: NoPieceType})
}

// castlingMoves generates castling candidates for the king on from.
// Gated by: castling rights intact (king and rook never moved), every
// square between king and rook empty, and no square the king starts on,
// passes through or lands on attacked by the opponent.
func (p *Position) castlingMoves(moves []Move, from Square, us Color) []Move {
	them := us.Other()

	if p.CastlingRights.CanCastle(us, true) &&
		p.squares[from+1] == NoPiece && p.squares[from+2] == NoPiece &&
		!p.IsSquareAttacked(from, them) &&
		!p.IsSquareAttacked(from+1, them) &&
		!p.IsSquareAttacked(from+2, them) {
		moves = append(moves, Move{From: from, To: from + 2, Piece: King, Kind: KindCastle, Captured: NoPiece, Promotion: NoPieceType})
	}

	if p.CastlingRights.CanCastle(us, false) &&
		p.squares[from-1] == NoPiece && p.squares[from-2] == NoPiece && p.squares[from-3] == NoPiece &&
		!p.IsSquareAttacked(from, them) &&
		!p.IsSquareAttacked(from-1, them) &&
		!p.IsSquareAttacked(from-2, them) {
		moves = append(moves, Move{From: from, To: from - 2, Piece: King, Kind: KindCastle, Captured: NoPiece, Promotion: NoPieceType})
	}

	return moves
}
