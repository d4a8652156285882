package cli

import (
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

const (
	colorX = "#FF5F87"
	colorO = "#5FAFFF"
)

// RenderBoard draws the board as a 3x3 grid with row and column labels. The cell at highlight,
// if any, is rendered bold.
func RenderBoard(out *termenv.Output, board entity.Board, highlight *entity.Move) string {
	var sb strings.Builder

	sb.WriteString("    0   1   2\n")
	for row := 0; row < entity.BoardSize; row++ {
		if row > 0 {
			sb.WriteString("   ---+---+---\n")
		}

		sb.WriteString(strconv.Itoa(row))
		sb.WriteString("  ")

		for col := 0; col < entity.BoardSize; col++ {
			if col > 0 {
				sb.WriteString("|")
			}

			move := entity.Move{Row: row, Col: col}
			sb.WriteString(" ")
			sb.WriteString(renderCell(out, board.At(move), highlight != nil && *highlight == move))
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func renderCell(out *termenv.Output, cell entity.Cell, bold bool) string {
	var style termenv.Style

	switch cell {
	case entity.PlayerX:
		style = out.String(cell.String()).Foreground(out.Color(colorX))
	case entity.PlayerO:
		style = out.String(cell.String()).Foreground(out.Color(colorO))
	default:
		return " "
	}

	if bold {
		style = style.Bold()
	}

	return style.String()
}
