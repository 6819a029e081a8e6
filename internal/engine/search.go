package engine

import "github.com/trinhtuanphong123/gochess/internal/board"

// Search score bounds. Mate scores are offset by the ply at which the
// mate is delivered so the search prefers the shortest mate.
const (
	Infinity  = 1 << 20
	MateScore = 100000
	MaxPly    = 64
)

// Searcher performs the recursive alpha-beta search. It explores the tree
// by apply/undo on a single position; the position is identical before
// and after every call.
type Searcher struct {
	cfg   Config
	nodes uint64
}

// NewSearcher creates a searcher with the given evaluation weights.
func NewSearcher(cfg Config) *Searcher {
	return &Searcher{cfg: cfg}
}

// Nodes returns the number of nodes visited since creation.
func (s *Searcher) Nodes() uint64 {
	return s.nodes
}

// Search runs a fixed-depth alpha-beta search from pos and returns the
// best root move with its score. Ties go to the first move in generation
// order. ok is false only when the side to move has no legal moves.
func (s *Searcher) Search(pos *board.Position, depth int) (best board.Move, score int, ok bool) {
	moves := pos.LegalMoves(pos.SideToMove)
	if len(moves) == 0 {
		return board.NoMove, 0, false
	}

	best = moves[0]
	score = -Infinity
	alpha, beta := -Infinity, Infinity

	for _, m := range moves {
		undo := pos.ApplyMove(m)
		v := -s.negamax(pos, depth-1, 1, -beta, -alpha)
		pos.UnmakeMove(m, undo)

		if v > score {
			score = v
			best = m
		}
		if v > alpha {
			alpha = v
		}
	}

	return best, score, true
}

// negamax is minimax in negamax form with alpha-beta pruning: each node
// maximizes the score from its own side's perspective, and a branch is
// pruned once alpha >= beta.
func (s *Searcher) negamax(pos *board.Position, depth, ply, alpha, beta int) int {
	s.nodes++
	side := pos.SideToMove

	if depth <= 0 {
		return Evaluate(pos, side, s.cfg)
	}

	moves := pos.LegalMoves(side)
	if len(moves) == 0 {
		// Checkmate is a maximal loss for the side to move;
		// stalemate is a dead draw.
		if pos.InCheck(side) {
			return -(MateScore - ply)
		}
		return 0
	}

	best := -Infinity
	for _, m := range moves {
		undo := pos.ApplyMove(m)
		v := -s.negamax(pos, depth-1, ply+1, -beta, -alpha)
		pos.UnmakeMove(m, undo)

		if v > best {
			best = v
		}
		if v > alpha {
			alpha = v
		}
		if alpha >= beta {
			break
		}
	}
	return best
}

// minimax is the unpruned reference search. It must return the same score
// as negamax for any position and depth; tests hold the two against each
// other.
func (s *Searcher) minimax(pos *board.Position, depth, ply int) int {
	s.nodes++
	side := pos.SideToMove

	if depth <= 0 {
		return Evaluate(pos, side, s.cfg)
	}

	moves := pos.LegalMoves(side)
	if len(moves) == 0 {
		if pos.InCheck(side) {
			return -(MateScore - ply)
		}
		return 0
	}

	best := -Infinity
	for _, m := range moves {
		undo := pos.ApplyMove(m)
		v := -s.minimax(pos, depth-1, ply+1)
		pos.UnmakeMove(m, undo)
		if v > best {
			best = v
		}
	}
	return best
}
