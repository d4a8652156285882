package minimax

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

// Engine computes the automated opponent's reply. A fresh tree is built for every call.
type Engine struct {
	logger *slog.Logger
	mark   entity.Cell

	mu       sync.Mutex
	selector *Selector
}

func NewEngine(logger *slog.Logger, mark entity.Cell, selector *Selector) (*Engine, error) {
	if !mark.IsPlayer() {
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, mark.String())
	}

	return &Engine{
		logger:   logger.With("component", "minimax", "mark", mark.String()),
		mark:     mark,
		selector: selector,
	}, nil
}

func (that *Engine) Mark() entity.Cell {
	return that.mark
}

// ComputeOpponentMove returns current with the engine's next move applied.
func (that *Engine) ComputeOpponentMove(current entity.Board) (entity.Board, error) {
	return that.ComputeMove(current, that.mark)
}

// ComputeMove searches for player's reply on board, regardless of the engine's own mark.
func (that *Engine) ComputeMove(board entity.Board, player entity.Cell) (entity.Board, error) {
	if !player.IsPlayer() {
		return board, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, player.String())
	}

	root := BuildTree(board, player)
	if root.IsTerminal() {
		return board, fmt.Errorf("board %s: %w", board, apperror.ErrTerminalNode)
	}

	score := Evaluate(root)

	that.mu.Lock()
	picked, err := that.selector.choose(root)
	that.mu.Unlock()

	if err != nil {
		return board, fmt.Errorf("failed to select move: %w", err)
	}

	that.logger.Debug("move computed",
		"board", board.String(),
		"player", player.String(),
		"nodes", root.Size(),
		"root_score", score,
		"best_score", picked.bestScore,
		"best_moves", picked.bestCount,
		"softened", picked.softened,
		"move", picked.node.Move.String(),
	)

	return picked.node.Board, nil
}
