package tictactoe

import (
	"math/rand/v2"
)

// Randomizer is the source used by the random policy.
type Randomizer interface {
	IntN(n int) int
}

// Engine holds one board and one difficulty. It is not safe for concurrent use.
type Engine struct {
	board      Board
	difficulty Difficulty
	rand       Randomizer
}

type Option func(*Engine)

// WithRandomizer replaces the default random source.
func WithRandomizer(r Randomizer) Option {
	return func(that *Engine) {
		that.rand = r
	}
}

// WithDifficulty sets the initial difficulty.
func WithDifficulty(d Difficulty) Option {
	return func(that *Engine) {
		that.difficulty = d
	}
}

func NewEngine(opts ...Option) *Engine {
	engine := &Engine{
		difficulty: Expert,
		rand:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), //nolint: gosec // game randomness
	}

	for _, opt := range opts {
		opt(engine)
	}

	return engine
}

// Reset empties every cell.
func (that *Engine) Reset() {
	that.board = Board{}
}

// ApplyMove places mark at position. It reports false, leaving the board untouched,
// when the position is out of range, the cell is taken or mark is Empty.
func (that *Engine) ApplyMove(mark Mark, position int) bool {
	if mark == Empty || !inRange(position) || that.board[position] != Empty {
		return false
	}

	that.board[position] = mark

	return true
}

func (that *Engine) Evaluate() Outcome {
	return that.board.Evaluate()
}

// OccupantAt returns the mark at position, Empty when out of range.
func (that *Engine) OccupantAt(position int) Mark {
	if !inRange(position) {
		return Empty
	}

	return that.board[position]
}

// Board returns a copy of the current board.
func (that *Engine) Board() Board {
	return that.board
}

func (that *Engine) Difficulty() Difficulty {
	return that.difficulty
}

func (that *Engine) SetDifficulty(d Difficulty) {
	that.difficulty = d
}

// SelectComputerMove chooses a free position under d without touching the board.
// It returns NoMove on a full board.
func (that *Engine) SelectComputerMove(d Difficulty) int {
	strategy, ok := strategies[d]
	if !ok {
		strategy = strategies[Easy]
	}

	return strategy(that.board, that.rand)
}
