package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
	"github.com/rocketscienceinc/tictactoe-bot/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-bot/internal/service"
)

var ErrBadInput = errors.New(`expected "row col", e.g. "1 2"`)

const quitCommand = "q"

// Session plays games between a human at the terminal and the bot.
type Session struct {
	logger *slog.Logger
	in     *bufio.Scanner
	out    *termenv.Output
	bot    service.BotService

	game *entity.Game
}

func NewSession(logger *slog.Logger, in io.Reader, out io.Writer, bot service.BotService, botFirst bool) (*Session, error) {
	game, err := entity.NewGame(pkg.GenerateGameID(), bot.Mark(), botFirst)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	return &Session{
		logger: logger.With("component", "cli", "game_id", game.ID),
		in:     bufio.NewScanner(in),
		out:    termenv.NewOutput(out),
		bot:    bot,
		game:   game,
	}, nil
}

// Run plays rounds until the input ends, the player quits or declines a rematch.
func (that *Session) Run(ctx context.Context) error {
	that.printf("You play %s, the bot plays %s. Enter moves as \"row col\", %q quits.\n\n",
		that.game.HumanMark, that.game.BotMark, quitCommand)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if that.game.IsFinished() {
			that.printf("%s\n%s\n", RenderBoard(that.out, that.game.Board, that.game.LastBotMove), that.resultMessage())

			again, ok := that.ask("Play again? [y/N] ")
			if !ok || !strings.EqualFold(again, "y") {
				return nil
			}

			that.game.Reset()
			that.logger.Debug("game reset")
			continue
		}

		if that.game.IsBotTurn() {
			if err := that.bot.MakeTurn(that.game); err != nil {
				return fmt.Errorf("bot turn failed: %w", err)
			}

			that.printf("Bot played %s\n", that.game.LastBotMove)
			continue
		}

		that.printf("%s\n", RenderBoard(that.out, that.game.Board, that.game.LastBotMove))

		line, ok := that.ask("Your move: ")
		if !ok || line == quitCommand {
			return nil
		}

		if err := that.humanTurn(line); err != nil {
			if !errors.Is(err, ErrBadInput) && !errors.Is(err, apperror.ErrInvalidMove) {
				return err
			}

			that.printf("%s\n", that.out.String(err.Error()).Faint())
		}
	}
}

// Game returns the game being played.
func (that *Session) Game() *entity.Game {
	return that.game
}

func (that *Session) humanTurn(line string) error {
	move, err := ParseMove(line)
	if err != nil {
		return err
	}

	if err = that.game.MakeTurn(that.game.HumanMark, move); err != nil {
		return err
	}

	that.game.LastBotMove = nil

	return nil
}

func (that *Session) resultMessage() string {
	switch that.game.Winner {
	case that.game.HumanMark:
		return that.out.String("You win!").Bold().String()
	case that.game.BotMark:
		return that.out.String("You lose.").Bold().String()
	default:
		return that.out.String("It's a tie.").Bold().String()
	}
}

func (that *Session) ask(prompt string) (string, bool) {
	that.printf("%s", prompt)

	if !that.in.Scan() {
		that.printf("\n")
		return "", false
	}

	return strings.TrimSpace(that.in.Text()), true
}

func (that *Session) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}

// ParseMove reads a "row col" pair; a comma may separate the numbers.
func ParseMove(line string) (entity.Move, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(fields) != 2 {
		return entity.Move{}, ErrBadInput
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return entity.Move{}, fmt.Errorf("%w: %v", ErrBadInput, err)
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return entity.Move{}, fmt.Errorf("%w: %v", ErrBadInput, err)
	}

	return entity.Move{Row: row, Col: col}, nil
}
