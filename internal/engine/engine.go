package engine

import (
	"time"

	"github.com/trinhtuanphong123/gochess/internal/board"
)

// SearchInfo reports progress after each completed depth.
type SearchInfo struct {
	Depth    int
	Score    int
	BestMove board.Move
	Nodes    uint64
	Time     time.Duration
}

// SearchLimits specifies constraints on the search.
type SearchLimits struct {
	Depth    int           // maximum depth in plies (0 = 1)
	MoveTime time.Duration // wall-clock budget (0 = no limit)
}

// Difficulty represents the AI difficulty level.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// String returns the difficulty name.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "unknown"
	}
}

// DifficultySettings maps difficulty to search limits.
var DifficultySettings = map[Difficulty]SearchLimits{
	Easy:   {Depth: 2, MoveTime: 500 * time.Millisecond},
	Medium: {Depth: 3, MoveTime: 2 * time.Second},
	Hard:   {Depth: 4, MoveTime: 5 * time.Second},
}

// Engine is the computer player. A single Engine serves one game session
// at a time; it never mutates the position it is handed.
type Engine struct {
	cfg        Config
	difficulty Difficulty

	// OnInfo, if set, is called after each completed depth.
	OnInfo func(SearchInfo)
}

// New creates an engine with default evaluation weights and medium
// difficulty.
func New() *Engine {
	return &Engine{cfg: DefaultConfig(), difficulty: Medium}
}

// NewWithConfig creates an engine with custom evaluation weights.
func NewWithConfig(cfg Config) *Engine {
	return &Engine{cfg: cfg, difficulty: Medium}
}

// SetDifficulty sets the engine difficulty.
func (e *Engine) SetDifficulty(d Difficulty) {
	e.difficulty = d
}

// Difficulty returns the current difficulty.
func (e *Engine) Difficulty() Difficulty {
	return e.difficulty
}

// BestMove finds the best move for the current difficulty.
func (e *Engine) BestMove(pos *board.Position) (board.Move, bool) {
	return e.BestMoveWithLimits(pos, DifficultySettings[e.difficulty])
}

// BestMoveWithLimits searches pos under the given limits. Depths are
// widened iteratively and each depth either completes fully or is
// discarded; the clock is only consulted between root candidates, never
// mid-subtree, so the returned move always comes from a fully explored
// level. ok is false only when there is no legal move (checkmate or
// stalemate for the caller to derive).
func (e *Engine) BestMoveWithLimits(pos *board.Position, limits SearchLimits) (board.Move, bool) {
	root := pos.Copy()

	moves := root.LegalMoves(root.SideToMove)
	if len(moves) == 0 {
		return board.NoMove, false
	}

	start := time.Now()
	var deadline time.Time
	if limits.MoveTime > 0 {
		deadline = start.Add(limits.MoveTime)
	}

	maxDepth := limits.Depth
	if maxDepth < 1 {
		maxDepth = 1
	}

	s := NewSearcher(e.cfg)
	best := moves[0]
	bestScore := -Infinity

	for depth := 1; depth <= maxDepth; depth++ {
		// Depth 1 always completes so expiry can never leave us
		// without a fully evaluated move.
		if depth > 1 && expired(deadline) {
			break
		}

		candidate := moves[0]
		candScore := -Infinity
		alpha, beta := -Infinity, Infinity
		completed := true

		for _, m := range moves {
			if depth > 1 && expired(deadline) {
				completed = false
				break
			}
			undo := root.ApplyMove(m)
			v := -s.negamax(root, depth-1, 1, -beta, -alpha)
			root.UnmakeMove(m, undo)

			if v > candScore {
				candScore = v
				candidate = m
			}
			if v > alpha {
				alpha = v
			}
		}

		if !completed {
			break
		}
		best, bestScore = candidate, candScore

		if e.OnInfo != nil {
			e.OnInfo(SearchInfo{
				Depth:    depth,
				Score:    bestScore,
				BestMove: best,
				Nodes:    s.Nodes(),
				Time:     time.Since(start),
			})
		}

		// A forced mate cannot improve with more depth.
		if bestScore > MateScore-MaxPly || bestScore < -(MateScore-MaxPly) {
			break
		}
	}

	return best, true
}

func expired(deadline time.Time) bool {
	return !deadline.IsZero() && !time.Now().Before(deadline)
}
