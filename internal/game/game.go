// Package game manages a single chess session: turn-by-turn move
// application with undo, click-style selection, and the computer
// opponent's move requests.
package game

import (
	"fmt"
	"time"

	"github.com/trinhtuanphong123/gochess/internal/board"
	"github.com/trinhtuanphong123/gochess/internal/engine"
)

// Session owns one game from start to finish. It is not safe for
// concurrent use; one session belongs to one logical game.
type Session struct {
	pos     *board.Position
	history []board.Move
	undos   []board.Undo
	status  board.GameStatus

	// captured[c] lists the piece kinds color c has taken, in order.
	captured [2][]board.PieceType

	// Click selection state.
	selected     board.Square
	selMoves     []board.Move
	hasSelection bool

	eng *engine.Engine
}

// NewSession starts a fresh game from the initial position.
func NewSession(eng *engine.Engine) *Session {
	return newSession(board.NewPosition(), eng)
}

// NewSessionFromFEN starts a game from an arbitrary position.
func NewSessionFromFEN(fen string, eng *engine.Engine) (*Session, error) {
	pos, err := board.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return newSession(pos, eng), nil
}

func newSession(pos *board.Position, eng *engine.Engine) *Session {
	s := &Session{
		pos:      pos,
		selected: board.NoSquare,
		eng:      eng,
	}
	s.status = pos.Status(pos.SideToMove)
	return s
}

// Position returns the live position. Callers must treat it as read-only;
// all mutation goes through Apply and Undo.
func (s *Session) Position() *board.Position {
	return s.pos
}

// Status returns the game status for the side to move.
func (s *Session) Status() board.GameStatus {
	return s.status
}

// IsOver reports whether the game has ended.
func (s *Session) IsOver() bool {
	return s.status == board.StatusCheckmate || s.status == board.StatusStalemate || s.status == board.StatusDraw
}

// History returns the moves played so far, in order.
func (s *Session) History() []board.Move {
	return s.history
}

// Selection is the result of a Select call.
type Selection struct {
	Selected   bool
	LegalMoves []board.Move
}

// Select handles a click on sq. Clicking an own piece starts a selection
// and returns its legal destinations; clicking an empty square or an
// enemy piece clears any current selection without error.
func (s *Session) Select(sq board.Square) (Selection, error) {
	if !sq.IsValid() {
		return Selection{}, fmt.Errorf("%w: %d", ErrInvalidSquare, sq)
	}

	piece := s.pos.PieceAt(sq)
	if piece == board.NoPiece || piece.Color() != s.pos.SideToMove {
		s.clearSelection()
		return Selection{}, nil
	}

	var moves []board.Move
	for _, m := range s.pos.LegalMoves(s.pos.SideToMove) {
		if m.From == sq {
			moves = append(moves, m)
		}
	}

	s.selected = sq
	s.selMoves = moves
	s.hasSelection = true
	return Selection{Selected: true, LegalMoves: moves}, nil
}

// MoveSelected applies the selected piece's move to dest. For promotions,
// promo picks the target kind; NoPieceType defaults to a queen.
func (s *Session) MoveSelected(dest board.Square, promo board.PieceType) (MoveResult, error) {
	if !s.hasSelection {
		return MoveResult{}, ErrNoActiveSelection
	}
	if !dest.IsValid() {
		return MoveResult{}, fmt.Errorf("%w: %d", ErrInvalidSquare, dest)
	}

	if promo == board.NoPieceType {
		promo = board.Queen
	}
	for _, m := range s.selMoves {
		if m.To != dest {
			continue
		}
		if m.Kind == board.KindPromotion && m.Promotion != promo {
			continue
		}
		return s.Apply(m)
	}
	return MoveResult{}, fmt.Errorf("%w: %s to %s", ErrIllegalMove, s.selected, dest)
}

// MoveResult reports the outcome of an applied move. The check flags
// describe the side now to move.
type MoveResult struct {
	Captured    board.Piece // NoPiece if nothing was taken
	IsCheck     bool
	IsCheckmate bool
	IsStalemate bool
}

// Apply plays a fully-specified move. The move must be present in the
// current legal move set, otherwise ErrIllegalMove is returned and the
// session is untouched.
func (s *Session) Apply(m board.Move) (MoveResult, error) {
	mover := s.pos.SideToMove

	found := false
	for _, legal := range s.pos.LegalMoves(mover) {
		if legal == m {
			found = true
			break
		}
	}
	if !found {
		return MoveResult{}, fmt.Errorf("%w: %s", ErrIllegalMove, m)
	}

	undo := s.pos.ApplyMove(m)
	s.history = append(s.history, m)
	s.undos = append(s.undos, undo)
	if undo.Captured != board.NoPiece {
		s.captured[mover] = append(s.captured[mover], undo.Captured.Type())
	}
	s.clearSelection()

	next := s.pos.SideToMove
	s.status = s.pos.Status(next)

	return MoveResult{
		Captured:    undo.Captured,
		IsCheck:     s.status == board.StatusCheck || s.status == board.StatusCheckmate,
		IsCheckmate: s.status == board.StatusCheckmate,
		IsStalemate: s.status == board.StatusStalemate,
	}, nil
}

// Undo reverts the most recent move. Returns false when there is no
// history.
func (s *Session) Undo() bool {
	if len(s.history) == 0 {
		return false
	}

	last := len(s.history) - 1
	m, undo := s.history[last], s.undos[last]
	s.history = s.history[:last]
	s.undos = s.undos[:last]

	s.pos.UnmakeMove(m, undo)
	if undo.Captured != board.NoPiece {
		mover := s.pos.SideToMove
		s.captured[mover] = s.captured[mover][:len(s.captured[mover])-1]
	}
	s.clearSelection()
	s.status = s.pos.Status(s.pos.SideToMove)
	return true
}

// RequestAIMove asks the engine for the side to move's best move within
// the wall-clock budget (zero means the difficulty default). ok is false
// when there are no legal moves. The move is not applied.
func (s *Session) RequestAIMove(budget time.Duration) (board.Move, bool) {
	limits := engine.DifficultySettings[s.eng.Difficulty()]
	if budget > 0 {
		limits.MoveTime = budget
	}
	return s.eng.BestMoveWithLimits(s.pos, limits)
}

// Snapshot is a read-only view of the session for rendering.
type Snapshot struct {
	Placement  [64]board.Piece
	SideToMove board.Color
	InCheck    bool
	Status     board.GameStatus
	Captured   [2][]board.PieceType
	MoveCount  int
}

// Snapshot captures the current board for display.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		SideToMove: s.pos.SideToMove,
		InCheck:    s.pos.InCheck(s.pos.SideToMove),
		Status:     s.status,
		MoveCount:  len(s.history),
	}
	for sq := board.A1; sq <= board.H8; sq++ {
		snap.Placement[sq] = s.pos.PieceAt(sq)
	}
	for _, c := range [2]board.Color{board.White, board.Black} {
		snap.Captured[c] = append([]board.PieceType(nil), s.captured[c]...)
	}
	return snap
}

func (s *Session) clearSelection() {
	s.selected = board.NoSquare
	s.selMoves = nil
	s.hasSelection = false
}
