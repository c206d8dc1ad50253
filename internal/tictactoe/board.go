package tictactoe

// BoardSize is the number of cells on the 3x3 grid.
const BoardSize = 9

// Mark is the occupant of a cell in a local game.
type Mark int

const (
	Empty Mark = iota
	Human
	Computer
)

func (that Mark) String() string {
	switch that {
	case Human:
		return "X"
	case Computer:
		return "O"
	default:
		return " "
	}
}

// Opponent returns the other party, Empty stays Empty.
func (that Mark) Opponent() Mark {
	switch that {
	case Human:
		return Computer
	case Computer:
		return Human
	default:
		return Empty
	}
}

// Outcome is the result of evaluating a board. The numeric values are stable.
type Outcome int

const (
	Continue     Outcome = 0
	Draw         Outcome = 1
	HumanWins    Outcome = 2
	ComputerWins Outcome = 3
)

func (that Outcome) String() string {
	switch that {
	case Continue:
		return "continue"
	case Draw:
		return "draw"
	case HumanWins:
		return "human-win"
	case ComputerWins:
		return "computer-win"
	default:
		return "unknown"
	}
}

// IsFinished reports whether the outcome ends the game.
func (that Outcome) IsFinished() bool {
	return that != Continue
}

// WinCombos lists the eight winning lines: rows top-to-bottom, columns left-to-right, then diagonals.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// CompletedLine returns the mark that fills the first complete line in WinCombos order.
// The rule is shared by local boards and online match documents.
func CompletedLine[T comparable](cells [BoardSize]T, empty T) (T, bool) {
	for _, combo := range WinCombos {
		a, b, c := cells[combo[0]], cells[combo[1]], cells[combo[2]]
		if a != empty && a == b && b == c {
			return a, true
		}
	}

	return empty, false
}

// IsFull reports whether no cell holds the empty value.
func IsFull[T comparable](cells [BoardSize]T, empty T) bool {
	for _, cell := range cells {
		if cell == empty {
			return false
		}
	}

	return true
}

// Board is a local game board.
type Board [BoardSize]Mark

// Evaluate computes the outcome without mutating the board. Win checks precede the draw check.
func (that Board) Evaluate() Outcome {
	if winner, ok := CompletedLine(that, Empty); ok {
		if winner == Human {
			return HumanWins
		}
		return ComputerWins
	}

	if IsFull(that, Empty) {
		return Draw
	}

	return Continue
}

// EmptyCells returns the free positions in index order.
func (that Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == Empty {
			cells = append(cells, i)
		}
	}

	return cells
}

// Strings renders the board as nine single-character cells, blank for Empty.
func (that Board) Strings() [BoardSize]string {
	var out [BoardSize]string
	for i, cell := range that {
		out[i] = cell.String()
	}

	return out
}

func inRange(position int) bool {
	return position >= 0 && position < BoardSize
}
