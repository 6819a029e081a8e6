package board

import "testing"

func TestStartingPositionMoveCount(t *testing.T) {
	pos := NewPosition()

	moves := pos.LegalMoves(White)
	if len(moves) != 20 {
		t.Fatalf("starting position: want 20 legal moves, got %d", len(moves))
	}

	pawnMoves, knightMoves := 0, 0
	for _, m := range moves {
		switch m.Piece {
		case Pawn:
			pawnMoves++
		case Knight:
			knightMoves++
		default:
			t.Errorf("unexpected %s move %s in starting position", m.Piece, m)
		}
	}
	if pawnMoves != 16 {
		t.Errorf("want 16 pawn moves, got %d", pawnMoves)
	}
	if knightMoves != 4 {
		t.Errorf("want 4 knight moves, got %d", knightMoves)
	}
}

func TestKingsideCastling(t *testing.T) {
	// White: Ke1, Rh1, both unmoved, f1/g1 empty and unattacked.
	pos, err := ParseFEN("4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	var castle Move
	found := false
	for _, m := range pos.LegalMoves(White) {
		if m.Kind == KindCastle {
			castle = m
			found = true
		}
	}
	if !found {
		t.Fatal("kingside castle not generated")
	}
	if castle.From != E1 || castle.To != G1 {
		t.Fatalf("want e1g1, got %s", castle)
	}

	undo := pos.ApplyMove(castle)
	if pos.PieceAt(G1) != WhiteKing {
		t.Errorf("king not on g1 after castling: %s", pos.PieceAt(G1))
	}
	if pos.PieceAt(F1) != WhiteRook {
		t.Errorf("rook not on f1 after castling: %s", pos.PieceAt(F1))
	}
	if pos.PieceAt(E1) != NoPiece || pos.PieceAt(H1) != NoPiece {
		t.Error("origin squares not vacated by castling")
	}

	pos.UnmakeMove(castle, undo)
	if pos.PieceAt(E1) != WhiteKing || pos.PieceAt(H1) != WhiteRook {
		t.Error("castling not undone")
	}
}

func TestCastlingGates(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"transit square attacked", "4kr2/8/8/8/8/8/8/4K2R w K - 0 1"},
		{"king attacked", "4k3/8/8/8/8/8/4r3/4K2R w K - 0 1"},
		{"piece in the way", "4k3/8/8/8/8/8/8/4KB1R w K - 0 1"},
		{"rights gone", "4k3/8/8/8/8/8/8/4K2R w - - 0 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := ParseFEN(tt.fen)
			if err != nil {
				t.Fatal(err)
			}
			for _, m := range pos.LegalMoves(White) {
				if m.Kind == KindCastle {
					t.Errorf("castle %s generated despite %s", m, tt.name)
				}
			}
		})
	}
}

func TestEnPassantCapture(t *testing.T) {
	// Black just played d7d5; white pawn on e5 may take en passant.
	pos, err := ParseFEN("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	if err != nil {
		t.Fatal(err)
	}

	var ep Move
	found := false
	for _, m := range pos.LegalMoves(White) {
		if m.Kind == KindEnPassant {
			ep = m
			found = true
		}
	}
	if !found {
		t.Fatal("en passant capture not generated")
	}
	if ep.From != E5 || ep.To != D6 {
		t.Fatalf("want e5d6, got %s", ep)
	}

	undo := pos.ApplyMove(ep)
	if pos.PieceAt(D6) != WhitePawn {
		t.Error("capturing pawn not on d6")
	}
	if pos.PieceAt(D5) != NoPiece {
		t.Error("passed pawn not removed from d5")
	}

	pos.UnmakeMove(ep, undo)
	if pos.PieceAt(D5) != BlackPawn || pos.PieceAt(E5) != WhitePawn {
		t.Error("en passant not undone")
	}
}

func TestPromotionMoves(t *testing.T) {
	pos, err := ParseFEN("4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	var promos []Move
	for _, m := range pos.LegalMoves(White) {
		if m.Kind == KindPromotion {
			promos = append(promos, m)
		}
	}
	if len(promos) != 4 {
		t.Fatalf("want 4 promotion moves, got %d", len(promos))
	}

	queen := promos[0]
	if queen.Promotion != Queen {
		t.Fatalf("queen promotion should be generated first, got %s", queen.Promotion)
	}

	undo := pos.ApplyMove(queen)
	if pos.PieceAt(A8) != WhiteQueen {
		t.Errorf("want queen on a8, got %s", pos.PieceAt(A8))
	}
	pos.UnmakeMove(queen, undo)
	if pos.PieceAt(A7) != WhitePawn || pos.PieceAt(A8) != NoPiece {
		t.Error("promotion not undone")
	}
}

func TestPinnedPieceCannotMove(t *testing.T) {
	// Knight on e2 is pinned against the king by the rook on e3.
	pos, err := ParseFEN("4k3/8/8/8/8/4r3/4N3/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	for _, m := range pos.LegalMoves(White) {
		if m.From == E2 {
			t.Errorf("pinned knight move %s generated", m)
		}
	}
}

// No legal move may leave the mover's own king attacked.
func TestLegalMovesNeverLeaveKingInCheck(t *testing.T) {
	fens := []string{
		StartFEN,
		"r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
		"4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1",
		"4k3/8/8/8/8/4r3/4N3/4K3 w - - 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
	}

	for _, fen := range fens {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatal(err)
		}
		side := pos.SideToMove
		for _, m := range pos.LegalMoves(side) {
			undo := pos.ApplyMove(m)
			if pos.IsSquareAttacked(pos.KingSquare(side), side.Other()) {
				t.Errorf("%s: legal move %s leaves own king attacked", fen, m)
			}
			pos.UnmakeMove(m, undo)
		}
	}
}

func TestEmptyDestinationsYieldEmptySequence(t *testing.T) {
	// The white rook on a1 is completely boxed in by its own pieces.
	pos, err := ParseFEN("4k3/8/8/8/8/8/PP6/RP2K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	for _, m := range pos.LegalMoves(White) {
		if m.From == A1 {
			t.Errorf("boxed-in rook should have no moves, got %s", m)
		}
	}
}
