package minimax

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
	"github.com/samber/lo"
	"lukechampine.com/frand"
)

const DefaultRandomness = 0.8

// Source is the randomness behind move selection. *frand.RNG satisfies it.
type Source interface {
	Float64() float64
	Intn(n int) int
}

type globalSource struct{}

func (globalSource) Float64() float64 { return frand.Float64() }
func (globalSource) Intn(n int) int   { return frand.Intn(n) }

// NewSeededSource returns a deterministic source for reproducible games.
func NewSeededSource(seed uint64) Source {
	key := make([]byte, 32)
	for i := 0; i < 8; i++ {
		key[i] = byte(seed >> (8 * i))
	}
	return frand.NewCustom(key, 1024, 12)
}

// Selector picks the opponent's move among evaluated children of a root.
//
// With probability Randomness the choice is uniform among the best-scoring children;
// otherwise it is uniform among all children, so the bot occasionally blunders.
type Selector struct {
	Randomness float64
	Source     Source
}

func NewSelector(randomness float64, source Source) (*Selector, error) {
	if randomness < 0 || randomness > 1 {
		return nil, fmt.Errorf("%w: got %v", apperror.ErrInvalidRandomness, randomness)
	}

	if source == nil {
		source = globalSource{}
	}

	return &Selector{Randomness: randomness, Source: source}, nil
}

// SelectMove returns the chosen child of an evaluated root.
func (that *Selector) SelectMove(root *Node) (*Node, error) {
	choice, err := that.choose(root)
	if err != nil {
		return nil, err
	}
	return choice.node, nil
}

type choice struct {
	node      *Node
	bestScore int
	bestCount int
	softened  bool
}

func (that *Selector) choose(root *Node) (choice, error) {
	if len(root.Children) == 0 {
		return choice{}, apperror.ErrTerminalNode
	}

	for _, child := range root.Children {
		if child.Score == nil {
			return choice{}, fmt.Errorf("%w: child %s", apperror.ErrNotEvaluated, child.Move)
		}
	}

	scores := lo.Map(root.Children, func(child *Node, _ int) int {
		return *child.Score
	})
	bestScore := root.Role().best(scores)

	bestMoves := lo.Filter(root.Children, func(child *Node, _ int) bool {
		return *child.Score == bestScore
	})

	result := choice{bestScore: bestScore, bestCount: len(bestMoves)}
	if that.Source.Float64() < that.Randomness {
		result.node = bestMoves[that.Source.Intn(len(bestMoves))]
	} else {
		result.node = root.Children[that.Source.Intn(len(root.Children))]
		result.softened = true
	}

	return result, nil
}
