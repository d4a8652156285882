package minimax

import (
	"io"
	"log/slog"
	"testing"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T, mark entity.Cell, randomness float64, seed uint64) *Engine {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	engine, err := NewEngine(logger, mark, newSelector(t, randomness, seed))
	require.NoError(t, err)

	return engine
}

func TestEngine_ComputeOpponentMove(t *testing.T) {
	t.Run("Applies exactly one move for the engine's mark", func(t *testing.T) {
		// Given: the human (O) opened in a corner
		current := entity.Board{o, e, e, e, e, e, e, e, e}
		engine := newEngine(t, x, DefaultRandomness, 1)

		// When: computing the reply
		next, err := engine.ComputeOpponentMove(current)
		require.NoError(t, err)

		// Then: a single empty cell now holds X
		move, ok := current.Diff(next)
		require.True(t, ok)
		assert.Equal(t, e, current.At(move))
		assert.Equal(t, x, next.At(move))
		assert.Len(t, next.AvailableMoves(), len(current.AvailableMoves())-1)
	})

	t.Run("Blocks with full strength", func(t *testing.T) {
		current := entity.Board{o, o, e, e, x, e, e, e, e}
		engine := newEngine(t, x, 1, 5)

		next, err := engine.ComputeOpponentMove(current)
		require.NoError(t, err)

		move, _ := current.Diff(next)
		assert.Equal(t, entity.Move{Row: 0, Col: 2}, move)
	})

	t.Run("Engine playing O minimizes", func(t *testing.T) {
		// Given: the engine plays O and can win in the middle row
		current := entity.Board{x, x, e, o, o, e, x, e, e}
		engine := newEngine(t, o, 1, 5)

		// When: computing the reply
		next, err := engine.ComputeOpponentMove(current)
		require.NoError(t, err)

		// Then: O wins
		winner, ok := next.Winner()
		require.True(t, ok)
		assert.Equal(t, o, winner)
	})

	t.Run("Finished board is rejected without touching it", func(t *testing.T) {
		current := entity.Board{x, x, x, o, o, e, e, e, e}
		engine := newEngine(t, o, 1, 5)

		next, err := engine.ComputeOpponentMove(current)

		require.ErrorIs(t, err, apperror.ErrTerminalNode)
		assert.Equal(t, current, next)
	})
}

func TestNewEngine(t *testing.T) {
	selector, err := NewSelector(1, nil)
	require.NoError(t, err)

	_, err = NewEngine(slog.Default(), entity.CellEmpty, selector)
	require.ErrorIs(t, err, apperror.ErrInvalidMark)
}

func TestEngine_PerfectPlayAlwaysDraws(t *testing.T) {
	// Two full-strength engines play out every opening; none of the games may be won.
	for _, opening := range entity.NewBoard().AvailableMoves() {
		t.Run("opening "+opening.String(), func(t *testing.T) {
			board, err := entity.NewBoard().Apply(opening, o)
			require.NoError(t, err)

			engines := map[entity.Cell]*Engine{
				x: newEngine(t, x, 1, uint64(opening.Index())),
				o: newEngine(t, o, 1, uint64(opening.Index())+100),
			}

			player := x
			for !board.IsTerminal() {
				board, err = engines[player].ComputeOpponentMove(board)
				require.NoError(t, err)
				player = player.Opponent()
			}

			_, won := board.Winner()
			assert.False(t, won, board.String())
		})
	}
}
