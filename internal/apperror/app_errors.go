package apperror

import (
	"errors"
	"fmt"
)

var ErrInvalidMove = errors.New("invalid move")

var (
	ErrCellOccupied = fmt.Errorf("%w: cell is already occupied", ErrInvalidMove)
	ErrInvalidCell  = fmt.Errorf("%w: cell is out of range", ErrInvalidMove)
)

var (
	ErrGameFinished      = errors.New("game is already finished")
	ErrNotYourTurn       = errors.New("it's not your turn")
	ErrGameNotFound      = errors.New("game not found")
	ErrInvalidMark       = errors.New("invalid player mark")
	ErrInvalidRandomness = errors.New("randomness must be within [0, 1]")

	// ErrTerminalNode is returned when a move is requested from a position that has no moves left.
	ErrTerminalNode = errors.New("node is terminal, no moves to select")
	ErrNotEvaluated = errors.New("node has not been evaluated")
)
