package board

// IsSquareAttacked reports whether any piece of color by attacks sq.
// The scan runs movement geometry in reverse from sq, so it never
// consults move generation and castling checks cannot recurse.
func (p *Position) IsSquareAttacked(sq Square, by Color) bool {
	if !sq.IsValid() {
		return false
	}

	// Pawn attacks: a pawn of color by on either diagonal behind sq
	// (relative to by's push direction) attacks it.
	dir := 1
	if by == Black {
		dir = -1
	}
	enemyPawn := NewPiece(Pawn, by)
	for _, df := range [2]int{-1, 1} {
		if from := sq.offset(df, -dir); from != NoSquare && p.squares[from] == enemyPawn {
			return true
		}
	}

	// Knight attacks.
	enemyKnight := NewPiece(Knight, by)
	for _, d := range knightOffsets {
		if from := sq.offset(d[0], d[1]); from != NoSquare && p.squares[from] == enemyKnight {
			return true
		}
	}

	// Adjacent enemy king.
	enemyKing := NewPiece(King, by)
	for _, d := range kingOffsets {
		if from := sq.offset(d[0], d[1]); from != NoSquare && p.squares[from] == enemyKing {
			return true
		}
	}

	// Sliding attacks: walk each ray outward until the first piece.
	if p.slidingAttack(sq, by, bishopDirs[:], Bishop) {
		return true
	}
	return p.slidingAttack(sq, by, rookDirs[:], Rook)
}

// slidingAttack walks rays from sq and reports whether the first piece
// hit on any ray is an enemy slider of the given kind or a queen.
func (p *Position) slidingAttack(sq Square, by Color, dirs [][2]int, slider PieceType) bool {
	want := NewPiece(slider, by)
	queen := NewPiece(Queen, by)
	for _, d := range dirs {
		for from := sq.offset(d[0], d[1]); from != NoSquare; from = from.offset(d[0], d[1]) {
			piece := p.squares[from]
			if piece == NoPiece {
				continue
			}
			if piece == want || piece == queen {
				return true
			}
			break
		}
	}
	return false
}
