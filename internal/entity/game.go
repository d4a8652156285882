package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

// Game is a single human-versus-bot session.
type Game struct {
	ID        string `json:"id"`
	Board     Board  `json:"board"`
	Winner    Cell   `json:"winner"`
	Status    string `json:"status"`
	Turn      Cell   `json:"player_turn"`
	FirstTurn Cell   `json:"first_turn"`
	HumanMark Cell   `json:"human_mark"`
	BotMark   Cell   `json:"bot_mark"`
	// LastBotMove is the cell the bot filled on its latest turn.
	LastBotMove *Move `json:"last_bot_move,omitempty"`
}

func NewGame(id string, botMark Cell, botFirst bool) (*Game, error) {
	if !botMark.IsPlayer() {
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, botMark.String())
	}

	firstTurn := botMark.Opponent()
	if botFirst {
		firstTurn = botMark
	}

	return &Game{
		ID:        id,
		Board:     NewBoard(),
		Status:    StatusOngoing,
		Turn:      firstTurn,
		FirstTurn: firstTurn,
		HumanMark: botMark.Opponent(),
		BotMark:   botMark,
	}, nil
}

// DetermineGameResult returns the winner's mark, PlayerTie for a full board, or CellEmpty
// while the game continues.
func (that *Game) DetermineGameResult() Cell {
	if winner, ok := that.Board.Winner(); ok {
		return winner
	}

	// the game will continue until all the squares are full
	if !that.Board.IsFull() {
		return CellEmpty
	}

	return PlayerTie
}

func (that *Game) UpdateGameState() {
	switch winner := that.DetermineGameResult(); winner {
	case PlayerX, PlayerO, PlayerTie:
		that.Winner = winner
		that.Status = StatusFinished
		that.Turn = CellEmpty
	default:
		that.Status = StatusOngoing
	}
}

func (that *Game) MakeTurn(mark Cell, move Move) error {
	if err := that.ConfirmOngoingState(); err != nil {
		return err
	}

	if that.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	board, err := that.Board.Apply(move, mark)
	if err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	that.Board = board
	that.Turn = mark.Opponent()
	that.UpdateGameState()

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsBotTurn() bool {
	return that.IsOngoing() && that.Turn == that.BotMark
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("unknown game status: %q", that.Status)
	}
}

// Reset clears the board for a new round with the same marks and opening player.
func (that *Game) Reset() {
	that.Board = NewBoard()
	that.Winner = CellEmpty
	that.Status = StatusOngoing
	that.Turn = that.FirstTurn
	that.LastBotMove = nil
}
