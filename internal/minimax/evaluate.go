package minimax

import (
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
	"github.com/samber/lo"
)

const (
	ScoreXWins = 1
	ScoreOWins = -1
	ScoreDraw  = 0
)

// Evaluate scores node and its whole subtree, storing each result in Node.Score.
func Evaluate(node *Node) int {
	score := staticScore(node.Board)
	if node.IsTerminal() {
		node.Score = &score
		return score
	}

	scores := make([]int, len(node.Children))
	for i, child := range node.Children {
		scores[i] = Evaluate(child)
	}

	score = node.Role().best(scores)
	node.Score = &score

	return score
}

func staticScore(board entity.Board) int {
	winner, _ := board.Winner()

	switch winner {
	case entity.PlayerX:
		return ScoreXWins
	case entity.PlayerO:
		return ScoreOWins
	default:
		return ScoreDraw
	}
}

// best picks the extreme this role prefers.
func (that Role) best(scores []int) int {
	if that == Maximizer {
		return lo.Max(scores)
	}
	return lo.Min(scores)
}
