package minimax

import "github.com/rocketscienceinc/tictactoe-bot/internal/entity"

// Role is the side a node optimizes for.
type Role int

const (
	Maximizer Role = iota + 1
	Minimizer
)

// RoleOf maps a mark to its minimax role: X maximizes, O minimizes.
func RoleOf(player entity.Cell) Role {
	if player == entity.PlayerX {
		return Maximizer
	}
	return Minimizer
}

func (that Role) String() string {
	if that == Maximizer {
		return "maximizer"
	}
	return "minimizer"
}

// Node is one position of the game tree. Children are owned exclusively by their parent.
type Node struct {
	Board  entity.Board
	Player entity.Cell
	// Move is the move that produced this node from its parent. Zero for the root.
	Move     entity.Move
	Children []*Node
	// Score stays nil until Evaluate visits the node.
	Score *int
}

// BuildTree expands (board, player) down to every terminal position.
func BuildTree(board entity.Board, player entity.Cell) *Node {
	return buildNode(board, player, entity.Move{})
}

func buildNode(board entity.Board, player entity.Cell, move entity.Move) *Node {
	node := &Node{
		Board:  board,
		Player: player,
		Move:   move,
	}

	if node.IsTerminal() {
		return node
	}

	moves := board.AvailableMoves()
	node.Children = make([]*Node, 0, len(moves))
	for _, next := range moves {
		// moves come from AvailableMoves, so Apply cannot fail here
		childBoard, _ := board.Apply(next, player)
		node.Children = append(node.Children, buildNode(childBoard, player.Opponent(), next))
	}

	return node
}

func (that *Node) IsTerminal() bool {
	return that.Board.IsTerminal()
}

func (that *Node) Role() Role {
	return RoleOf(that.Player)
}

// Size counts the nodes of the subtree rooted at that.
func (that *Node) Size() int {
	size := 1
	for _, child := range that.Children {
		size += child.Size()
	}
	return size
}
