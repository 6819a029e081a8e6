package game

import "errors"

// All session errors are recoverable: the operation is rejected and the
// session state is left unchanged.
var (
	ErrInvalidSquare     = errors.New("invalid square")
	ErrIllegalMove       = errors.New("illegal move")
	ErrNoActiveSelection = errors.New("no active selection")
)
