package tictactoe

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-hub/internal/apperror"
)

// NoMove is returned when the board has no free cell.
const NoMove = -1

// Difficulty selects the computer policy.
type Difficulty int

const (
	Easy Difficulty = iota
	Harder
	Expert
)

var difficultyNames = map[Difficulty]string{
	Easy:   "easy",
	Harder: "harder",
	Expert: "expert",
}

func (that Difficulty) String() string {
	if name, ok := difficultyNames[that]; ok {
		return name
	}

	return fmt.Sprintf("difficulty(%d)", int(that))
}

// ParseDifficulty accepts the names returned by String, case-insensitively.
func ParseDifficulty(name string) (Difficulty, error) {
	for d, n := range difficultyNames {
		if strings.EqualFold(n, name) {
			return d, nil
		}
	}

	return Easy, fmt.Errorf("%w: %q", apperror.ErrUnknownDifficulty, name)
}

// Strategy picks a free position for the computer from a board it must not modify.
type Strategy func(board Board, rand Randomizer) int

var strategies = map[Difficulty]Strategy{
	Easy:   RandomMove,
	Harder: HarderMove,
	Expert: ExpertMove,
}

// StrategyFor returns the policy of d.
func StrategyFor(d Difficulty) (Strategy, bool) {
	strategy, ok := strategies[d]
	return strategy, ok
}

// RandomMove picks a uniformly random free cell.
func RandomMove(board Board, rand Randomizer) int {
	free := board.EmptyCells()
	if len(free) == 0 {
		return NoMove
	}

	return free[rand.IntN(len(free))]
}

// HarderMove takes an immediate win, otherwise plays randomly.
func HarderMove(board Board, rand Randomizer) int {
	if move := WinningMove(board); move != NoMove {
		return move
	}

	return RandomMove(board, rand)
}

// ExpertMove takes an immediate win, then blocks the human, otherwise plays randomly.
func ExpertMove(board Board, rand Randomizer) int {
	if move := WinningMove(board); move != NoMove {
		return move
	}

	if move := BlockingMove(board); move != NoMove {
		return move
	}

	return RandomMove(board, rand)
}

// WinningMove returns the lowest free position that completes a computer line.
func WinningMove(board Board) int {
	return firstCompleting(board, Computer, ComputerWins)
}

// BlockingMove returns the lowest free position where the human would complete a line.
func BlockingMove(board Board) int {
	return firstCompleting(board, Human, HumanWins)
}

func firstCompleting(board Board, mark Mark, want Outcome) int {
	for i := range board {
		if board[i] != Empty {
			continue
		}

		probe := board
		probe[i] = mark
		if probe.Evaluate() == want {
			return i
		}
	}

	return NoMove
}
