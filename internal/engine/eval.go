// Package engine implements the adversarial move search and the position
// evaluator used by the computer player.
package engine

import "github.com/trinhtuanphong123/gochess/internal/board"

// Material values in centipawns. The king value is a sentinel large
// enough to dominate every other term.
const (
	PawnValue   = 100
	KnightValue = 320
	BishopValue = 330
	RookValue   = 500
	QueenValue  = 900
	KingValue   = 20000
)

var pieceValues = [6]int{PawnValue, KnightValue, BishopValue, RookValue, QueenValue, KingValue}

// Config holds the non-negative weight of each evaluation term.
// Read-only during a search.
type Config struct {
	Material      float64
	PiecePosition float64
	PawnStructure float64
	CenterControl float64
	KingSafety    float64
	Mobility      float64
}

// DefaultConfig returns the production weights. King safety and mobility
// are wired but weighted zero; their terms are stubs pending real
// heuristics.
func DefaultConfig() Config {
	return Config{
		Material:      1.0,
		PiecePosition: 0.3,
		PawnStructure: 0.2,
		CenterControl: 0.1,
		KingSafety:    0,
		Mobility:      0,
	}
}

// Evaluate scores the position from perspective's point of view: positive
// favors perspective, negative the opponent. Pure function of the
// position, so search results stay deterministic.
func Evaluate(pos *board.Position, perspective board.Color, cfg Config) int {
	score := cfg.Material*float64(materialScore(pos)) +
		cfg.PiecePosition*float64(piecePositionScore(pos)) +
		cfg.PawnStructure*float64(pawnStructureScore(pos)) +
		cfg.CenterControl*float64(centerControlScore(pos)) +
		cfg.KingSafety*float64(kingSafetyScore(pos)) +
		cfg.Mobility*float64(mobilityScore(pos))

	if perspective == board.Black {
		score = -score
	}
	return int(score)
}

// materialScore sums piece values, white positive.
func materialScore(pos *board.Position) int {
	score := 0
	for sq := board.A1; sq <= board.H8; sq++ {
		piece := pos.PieceAt(sq)
		if piece == board.NoPiece {
			continue
		}
		v := pieceValues[piece.Type()]
		if piece.Color() == board.White {
			score += v
		} else {
			score -= v
		}
	}
	return score
}

// piecePositionScore sums piece-square table values, white positive.
func piecePositionScore(pos *board.Position) int {
	score := 0
	for sq := board.A1; sq <= board.H8; sq++ {
		piece := pos.PieceAt(sq)
		if piece == board.NoPiece {
			continue
		}
		v := pstValue(piece.Type(), piece.Color(), sq)
		if piece.Color() == board.White {
			score += v
		} else {
			score -= v
		}
	}
	return score
}

// pawnStructureScore penalizes doubled (-10 each) and isolated (-20 each)
// pawns for both sides, white positive.
func pawnStructureScore(pos *board.Position) int {
	score := 0
	for _, c := range [2]board.Color{board.White, board.Black} {
		var filePawns [8]int
		for sq := board.A1; sq <= board.H8; sq++ {
			if pos.PieceAt(sq) == board.NewPiece(board.Pawn, c) {
				filePawns[sq.File()]++
			}
		}

		doubled, isolated := 0, 0
		for file := 0; file < 8; file++ {
			if filePawns[file] > 1 {
				doubled += filePawns[file] - 1
			}
			if filePawns[file] > 0 {
				neighbors := 0
				if file > 0 {
					neighbors += filePawns[file-1]
				}
				if file < 7 {
					neighbors += filePawns[file+1]
				}
				if neighbors == 0 {
					isolated++
				}
			}
		}

		term := -20*isolated - 10*doubled
		if c == board.White {
			score += term
		} else {
			score -= term
		}
	}
	return score
}

// centerSquares are the four central squares contested in the opening.
var centerSquares = [4]board.Square{board.D4, board.E4, board.D5, board.E5}

// centerControlScore awards 10 per occupied center square, white positive.
func centerControlScore(pos *board.Position) int {
	score := 0
	for _, sq := range centerSquares {
		piece := pos.PieceAt(sq)
		if piece == board.NoPiece {
			continue
		}
		if piece.Color() == board.White {
			score += 10
		} else {
			score -= 10
		}
	}
	return score
}

// kingSafetyScore is a stub behind the standard term interface.
// TODO: score pawn shield and castled position once tuned weights exist.
func kingSafetyScore(pos *board.Position) int {
	return 0
}

// mobilityScore is a stub behind the standard term interface.
func mobilityScore(pos *board.Position) int {
	return 0
}
