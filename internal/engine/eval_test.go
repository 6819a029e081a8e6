package engine

import (
	"testing"

	"github.com/trinhtuanphong123/gochess/internal/board"
)

func TestStartingPositionIsBalanced(t *testing.T) {
	pos := board.NewPosition()
	cfg := DefaultConfig()

	if score := Evaluate(pos, board.White, cfg); score != 0 {
		t.Errorf("starting position for white: want 0, got %d", score)
	}
	if score := Evaluate(pos, board.Black, cfg); score != 0 {
		t.Errorf("starting position for black: want 0, got %d", score)
	}
}

func TestPerspectiveAntisymmetry(t *testing.T) {
	fens := []string{
		"k7/8/8/3q4/4P3/8/8/K7 w - - 0 1",
		"r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
		"4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1",
	}
	cfg := DefaultConfig()

	for _, fen := range fens {
		pos, err := board.ParseFEN(fen)
		if err != nil {
			t.Fatal(err)
		}
		white := Evaluate(pos, board.White, cfg)
		black := Evaluate(pos, board.Black, cfg)
		if white != -black {
			t.Errorf("%s: white %d, black %d; want negations", fen, white, black)
		}
	}
}

func TestMaterialDominates(t *testing.T) {
	// White is a queen up; the score must reflect roughly a queen.
	pos, err := board.ParseFEN("k7/8/8/8/3Q4/8/8/K7 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	score := Evaluate(pos, board.White, DefaultConfig())
	if score < QueenValue-100 || score > QueenValue+100 {
		t.Errorf("queen-up position: want roughly %d, got %d", QueenValue, score)
	}
}

func TestMaterialTerm(t *testing.T) {
	tests := []struct {
		fen  string
		want int
	}{
		{board.StartFEN, 0},
		{"k7/8/8/8/3Q4/8/8/K7 w - - 0 1", QueenValue},
		{"kr6/8/8/8/8/8/8/K7 w - - 0 1", -RookValue},
		{"k7/8/8/8/8/8/8/KN6 w - - 0 1", KnightValue},
	}

	for _, tt := range tests {
		pos, err := board.ParseFEN(tt.fen)
		if err != nil {
			t.Fatal(err)
		}
		if got := materialScore(pos); got != tt.want {
			t.Errorf("%s: material %d, want %d", tt.fen, got, tt.want)
		}
	}
}

func TestCenterControlTerm(t *testing.T) {
	// One white pawn on e4, one black pawn on d5.
	pos, err := board.ParseFEN("4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if got := centerControlScore(pos); got != 0 {
		t.Errorf("balanced center: want 0, got %d", got)
	}

	pos.ApplyMove(mustMove(t, pos, "e4d5"))
	if got := centerControlScore(pos); got != 10 {
		t.Errorf("white-only center: want 10, got %d", got)
	}
}

func TestPawnStructureTerm(t *testing.T) {
	// White: doubled pawns on the e-file (both isolated as a group is
	// connected to nothing) versus black's healthy pair.
	pos, err := board.ParseFEN("4k3/5pp1/8/8/8/4P3/4P3/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	// White: 1 doubled (-10), e-file group isolated (-20). Black: none.
	if got := pawnStructureScore(pos); got != -30 {
		t.Errorf("pawn structure: want -30, got %d", got)
	}
}

func TestEvaluationIsPure(t *testing.T) {
	pos, err := board.ParseFEN("r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4")
	if err != nil {
		t.Fatal(err)
	}
	cfg := DefaultConfig()

	before := pos.FEN()
	first := Evaluate(pos, board.White, cfg)
	for i := 0; i < 5; i++ {
		if got := Evaluate(pos, board.White, cfg); got != first {
			t.Fatalf("evaluation not deterministic: %d then %d", first, got)
		}
	}
	if pos.FEN() != before {
		t.Error("evaluation mutated the position")
	}
}

func mustMove(t *testing.T, pos *board.Position, s string) board.Move {
	t.Helper()
	m, err := pos.ParseMove(s)
	if err != nil {
		t.Fatal(err)
	}
	return m
}
