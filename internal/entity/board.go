package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
)

// Cell is the content of a single board square.
type Cell uint8

const (
	CellEmpty Cell = iota
	PlayerX
	PlayerO

	// PlayerTie is only ever stored as a game result, never on the board.
	PlayerTie
)

var cellNames = map[Cell]string{
	CellEmpty: "",
	PlayerX:   "X",
	PlayerO:   "O",
	PlayerTie: "-",
}

const BoardSize = 3

// WinCombos lists rows, then columns, then both diagonals.
var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// IsPlayer reports whether the cell holds one of the two player marks.
func (that Cell) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

func (that Cell) Opponent() Cell {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (that Cell) String() string {
	return cellNames[that]
}

func (that Cell) MarshalText() ([]byte, error) {
	name, ok := cellNames[that]
	if !ok {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidMark, uint8(that))
	}
	return []byte(name), nil
}

func (that *Cell) UnmarshalText(text []byte) error {
	for cell, name := range cellNames {
		if name == string(text) {
			*that = cell
			return nil
		}
	}
	return fmt.Errorf("%w: %q", apperror.ErrInvalidMark, text)
}

// ParseMark converts user input into a player mark.
func ParseMark(raw string) (Cell, error) {
	var mark Cell
	if err := mark.UnmarshalText([]byte(strings.ToUpper(strings.TrimSpace(raw)))); err != nil || !mark.IsPlayer() {
		return CellEmpty, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, raw)
	}
	return mark, nil
}

// Move is a (row, column) coordinate on the board.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func MoveFromIndex(index int) Move {
	return Move{Row: index / BoardSize, Col: index % BoardSize}
}

func (that Move) Index() int {
	return that.Row*BoardSize + that.Col
}

func (that Move) InRange() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

func (that Move) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Col)
}

// Board is a 3x3 grid stored in row-major order. It is a value type: copies never alias.
type Board [BoardSize * BoardSize]Cell

func NewBoard() Board {
	return Board{}
}

func (that Board) At(move Move) Cell {
	return that[move.Index()]
}

// Winner returns the mark occupying a completed line, if any.
func (that Board) Winner() (Cell, bool) {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a != CellEmpty && a == b && b == c {
			return a, true
		}
	}

	return CellEmpty, false
}

// AvailableMoves lists every empty cell in row-major order.
func (that Board) AvailableMoves() []Move {
	moves := make([]Move, 0, len(that))
	for i, cell := range that {
		if cell == CellEmpty {
			moves = append(moves, MoveFromIndex(i))
		}
	}

	return moves
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == CellEmpty {
			return false
		}
	}

	return true
}

// IsTerminal reports whether the game on this board is over.
func (that Board) IsTerminal() bool {
	if _, ok := that.Winner(); ok {
		return true
	}

	return that.IsFull()
}

// Apply returns a copy of the board with mark placed at move. The receiver is left untouched.
func (that Board) Apply(move Move, mark Cell) (Board, error) {
	if !mark.IsPlayer() {
		return that, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, mark.String())
	}

	if !move.InRange() {
		return that, fmt.Errorf("%w: %s", apperror.ErrInvalidCell, move)
	}

	if that.At(move) != CellEmpty {
		return that, fmt.Errorf("%w: %s", apperror.ErrCellOccupied, move)
	}

	next := that
	next[move.Index()] = mark

	return next, nil
}

// Diff returns the first cell that differs between the two boards.
func (that Board) Diff(next Board) (Move, bool) {
	for i := range that {
		if that[i] != next[i] {
			return MoveFromIndex(i), true
		}
	}

	return Move{}, false
}

func (that Board) String() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			cell := that[row*BoardSize+col]
			if cell == CellEmpty {
				sb.WriteByte('.')
				continue
			}
			sb.WriteString(cell.String())
		}
		if row < BoardSize-1 {
			sb.WriteByte('/')
		}
	}

	return sb.String()
}
