package service

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

var (
	ErrBotMarkMismatch = errors.New("game bot mark does not match the engine")
	ErrNoMoveComputed  = errors.New("engine returned an unchanged board")
)

type BotService interface {
	Mark() entity.Cell
	MakeTurn(game *entity.Game) error
}

type opponentEngine interface {
	Mark() entity.Cell
	ComputeOpponentMove(current entity.Board) (entity.Board, error)
}

type botService struct {
	engine opponentEngine
}

func NewBotService(engine opponentEngine) BotService {
	return &botService{engine: engine}
}

func (that *botService) Mark() entity.Cell {
	return that.engine.Mark()
}

// MakeTurn lets the engine answer on the game's board and applies the changed cell.
func (that *botService) MakeTurn(game *entity.Game) error {
	if game.BotMark != that.engine.Mark() {
		return fmt.Errorf("%w: game %s, engine %s", ErrBotMarkMismatch, game.BotMark, that.engine.Mark())
	}

	if !game.IsBotTurn() {
		return apperror.ErrNotYourTurn
	}

	next, err := that.engine.ComputeOpponentMove(game.Board)
	if err != nil {
		return fmt.Errorf("failed to compute bot move: %w", err)
	}

	move, ok := game.Board.Diff(next)
	if !ok {
		return ErrNoMoveComputed
	}

	if err = game.MakeTurn(game.BotMark, move); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	game.LastBotMove = &move

	return nil
}
