package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-hub/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hub/internal/tictactoe"
)

type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusPlaying  Status = "PLAYING"
	StatusFinished Status = "FINISHED"
)

const (
	SymbolX = "X"
	SymbolO = "O"

	EmptyCell = " "
)

// Match is the shared online game document. Field names are the stored wire names.
type Match struct {
	GameID      string                      `json:"gameId"`
	CreatedBy   string                      `json:"createdBy"`
	Player1     *Player                     `json:"player1"`
	Player2     *Player                     `json:"player2"`
	Board       [tictactoe.BoardSize]string `json:"board"`
	CurrentTurn string                      `json:"currentTurn"`
	Status      Status                      `json:"status"`
	Winner      string                      `json:"winner,omitempty"`
	CreatedAt   int64                       `json:"createdAt"`
}

// NewMatch creates a waiting match owned by creator, who always plays X and moves first.
func NewMatch(id string, creator Player, createdAt int64) *Match {
	creator.Symbol = SymbolX

	match := &Match{
		GameID:      id,
		CreatedBy:   creator.PlayerID,
		Player1:     &creator,
		CurrentTurn: creator.PlayerID,
		Status:      StatusWaiting,
		CreatedAt:   createdAt,
	}

	for i := range match.Board {
		match.Board[i] = EmptyCell
	}

	return match
}

func (that *Match) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Match) IsPlaying() bool {
	return that.Status == StatusPlaying
}

func (that *Match) IsFinished() bool {
	return that.Status == StatusFinished
}

// HasPlayer reports whether playerID is seated in the match.
func (that *Match) HasPlayer(playerID string) bool {
	return that.PlayerByID(playerID) != nil
}

func (that *Match) PlayerByID(playerID string) *Player {
	switch {
	case that.Player1 != nil && that.Player1.PlayerID == playerID:
		return that.Player1
	case that.Player2 != nil && that.Player2.PlayerID == playerID:
		return that.Player2
	default:
		return nil
	}
}

// Opponent returns the other seated player, nil while waiting.
func (that *Match) Opponent(playerID string) *Player {
	switch {
	case that.Player1 != nil && that.Player1.PlayerID == playerID:
		return that.Player2
	case that.Player2 != nil && that.Player2.PlayerID == playerID:
		return that.Player1
	default:
		return nil
	}
}

// Join seats joiner as the second player with symbol O and starts the game.
func (that *Match) Join(joiner Player) error {
	if joiner.PlayerID == "" {
		return apperror.ErrInvalidPlayer
	}

	if that.HasPlayer(joiner.PlayerID) {
		return apperror.ErrAlreadyInGame
	}

	if !that.IsWaiting() {
		return apperror.ErrGameNotWaiting
	}

	if that.Player2 != nil {
		return apperror.ErrGameFull
	}

	joiner.Symbol = SymbolO
	that.Player2 = &joiner
	that.Status = StatusPlaying

	return nil
}

// ConfirmPlaying checks that moves are accepted right now.
func (that *Match) ConfirmPlaying() error {
	switch that.Status {
	case StatusPlaying:
		return nil
	case StatusWaiting:
		return apperror.ErrGameIsNotStarted
	case StatusFinished:
		return apperror.ErrGameFinished
	default:
		return fmt.Errorf("%w: unknown status %q", apperror.ErrGameFinished, that.Status)
	}
}

// MakeTurn applies a move by playerID. All checks run before the board is touched.
func (that *Match) MakeTurn(position int, playerID string) error {
	if err := that.ConfirmPlaying(); err != nil {
		return err
	}

	if that.CurrentTurn != playerID {
		return apperror.ErrNotYourTurn
	}

	if position < 0 || position >= len(that.Board) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, position)
	}

	if that.Board[position] != EmptyCell {
		return apperror.ErrCellOccupied
	}

	player := that.PlayerByID(playerID)
	if player == nil {
		return apperror.ErrNotYourTurn
	}

	that.Board[position] = player.Symbol

	if opponent := that.Opponent(playerID); opponent != nil {
		that.CurrentTurn = opponent.PlayerID
	} else {
		that.CurrentTurn = ""
	}

	that.UpdateGameState()

	return nil
}

// UpdateGameState finishes the match when a line is complete or the board is full.
func (that *Match) UpdateGameState() {
	if winner, ok := tictactoe.CompletedLine(that.Board, EmptyCell); ok {
		that.Winner = winner
		that.Status = StatusFinished
		return
	}

	if tictactoe.IsFull(that.Board, EmptyCell) {
		that.Winner = ""
		that.Status = StatusFinished
	}
}

// Clone returns a deep copy safe to hand to another goroutine.
func (that *Match) Clone() *Match {
	if that == nil {
		return nil
	}

	clone := *that
	if that.Player1 != nil {
		p := *that.Player1
		clone.Player1 = &p
	}
	if that.Player2 != nil {
		p := *that.Player2
		clone.Player2 = &p
	}

	return &clone
}
