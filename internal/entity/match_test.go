package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-hub/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	x = SymbolX
	o = SymbolO
)

func newPlayingMatch(t *testing.T) *Match {
	t.Helper()

	match := NewMatch("g1", Player{PlayerID: "p1", PlayerName: "Ana"}, 1000)
	require.NoError(t, match.Join(Player{PlayerID: "p2", PlayerName: "Luis"}))

	return match
}

func TestNewMatch(t *testing.T) {
	// When: a player creates a match
	match := NewMatch("g1", Player{PlayerID: "p1", PlayerName: "Ana", Symbol: "O"}, 1000)

	// Then: the creator is X, holds the turn and the match waits
	expected := &Match{
		GameID:      "g1",
		CreatedBy:   "p1",
		Player1:     &Player{PlayerID: "p1", PlayerName: "Ana", Symbol: SymbolX},
		Board:       [9]string{" ", " ", " ", " ", " ", " ", " ", " ", " "},
		CurrentTurn: "p1",
		Status:      StatusWaiting,
		CreatedAt:   1000,
	}

	require.Equal(t, expected, match)
}

func TestMatch_Join(t *testing.T) {
	t.Run("Joiner becomes O and the match starts", func(t *testing.T) {
		// Given: a waiting match
		match := NewMatch("g1", Player{PlayerID: "p1", PlayerName: "Ana"}, 1000)

		// When: a second player joins
		err := match.Join(Player{PlayerID: "p2", PlayerName: "Luis"})

		// Then: the joiner is seated as O and the creator keeps the turn
		require.NoError(t, err)
		assert.Equal(t, &Player{PlayerID: "p2", PlayerName: "Luis", Symbol: SymbolO}, match.Player2)
		assert.Equal(t, StatusPlaying, match.Status)
		assert.Equal(t, "p1", match.CurrentTurn)
	})

	t.Run("Playing match rejects joins without mutation", func(t *testing.T) {
		// Given: a match already in progress
		match := newPlayingMatch(t)
		before := match.Clone()

		// When: a third player tries to join
		err := match.Join(Player{PlayerID: "p3", PlayerName: "Eva"})

		// Then: the join fails and nothing changes
		require.ErrorIs(t, err, apperror.ErrGameNotWaiting)
		assert.Equal(t, before, match)
	})

	t.Run("Waiting match with a second player is full", func(t *testing.T) {
		// Given: an inconsistent document still marked waiting
		match := NewMatch("g1", Player{PlayerID: "p1"}, 1000)
		match.Player2 = &Player{PlayerID: "p2", Symbol: SymbolO}
		before := match.Clone()

		// When: another player tries to join
		err := match.Join(Player{PlayerID: "p3"})

		// Then: game-full is reported and nothing changes
		require.ErrorIs(t, err, apperror.ErrGameFull)
		assert.Equal(t, before, match)
	})

	t.Run("Creator cannot join their own match", func(t *testing.T) {
		match := NewMatch("g1", Player{PlayerID: "p1"}, 1000)

		err := match.Join(Player{PlayerID: "p1"})

		assert.ErrorIs(t, err, apperror.ErrAlreadyInGame)
		assert.True(t, match.IsWaiting())
	})

	t.Run("Empty player id is rejected", func(t *testing.T) {
		match := NewMatch("g1", Player{PlayerID: "p1"}, 1000)

		assert.ErrorIs(t, match.Join(Player{}), apperror.ErrInvalidPlayer)
	})
}

func TestMatch_MakeTurn(t *testing.T) {
	t.Run("Successful turn advances to the opponent", func(t *testing.T) {
		// Given: a playing match
		match := newPlayingMatch(t)

		// When: the creator plays the center
		err := match.MakeTurn(4, "p1")

		// Then: X is placed and the turn moves to p2
		require.NoError(t, err)
		assert.Equal(t, x, match.Board[4])
		assert.Equal(t, "p2", match.CurrentTurn)
		assert.Equal(t, StatusPlaying, match.Status)
	})

	t.Run("Non turn-holder is rejected and the board is unchanged", func(t *testing.T) {
		// Given: a playing match where p1 holds the turn
		match := newPlayingMatch(t)
		before := match.Clone()

		// When: p2 tries to move
		err := match.MakeTurn(0, "p2")

		// Then: not-your-turn, no mutation
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, before, match)
	})

	t.Run("Repeating a move after the turn advanced fails", func(t *testing.T) {
		match := newPlayingMatch(t)
		require.NoError(t, match.MakeTurn(0, "p1"))

		err := match.MakeTurn(0, "p1")

		assert.ErrorIs(t, err, apperror.ErrNotYourTurn)
	})

	t.Run("Occupied cell is rejected", func(t *testing.T) {
		match := newPlayingMatch(t)
		require.NoError(t, match.MakeTurn(0, "p1"))
		before := match.Clone()

		err := match.MakeTurn(0, "p2")

		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, before, match)
	})

	t.Run("Invalid cell is rejected", func(t *testing.T) {
		match := newPlayingMatch(t)

		assert.ErrorIs(t, match.MakeTurn(9, "p1"), apperror.ErrInvalidCell)
		assert.ErrorIs(t, match.MakeTurn(-1, "p1"), apperror.ErrInvalidCell)
	})

	t.Run("Waiting match rejects moves", func(t *testing.T) {
		match := NewMatch("g1", Player{PlayerID: "p1"}, 1000)

		assert.ErrorIs(t, match.MakeTurn(0, "p1"), apperror.ErrGameIsNotStarted)
	})

	t.Run("Completing a line finishes with the winner", func(t *testing.T) {
		// Given: X at 0,1 and O at 3,4
		match := newPlayingMatch(t)
		for _, move := range []struct {
			cell   int
			player string
		}{{0, "p1"}, {3, "p2"}, {1, "p1"}, {4, "p2"}} {
			require.NoError(t, match.MakeTurn(move.cell, move.player))
		}

		// When: X completes the top row
		err := match.MakeTurn(2, "p1")

		// Then: finished with winner X
		require.NoError(t, err)
		assert.Equal(t, StatusFinished, match.Status)
		assert.Equal(t, x, match.Winner)
		assert.ErrorIs(t, match.MakeTurn(5, "p2"), apperror.ErrGameFinished)
	})

	t.Run("Filling the last cell without a line is a draw", func(t *testing.T) {
		// Given: X O X / X O O / O X _ with X to move
		match := newPlayingMatch(t)
		match.Board = [9]string{x, o, x, x, o, o, o, x, " "}
		match.CurrentTurn = "p1"

		// When: X fills the last cell
		err := match.MakeTurn(8, "p1")

		// Then: finished without a winner
		require.NoError(t, err)
		assert.Equal(t, StatusFinished, match.Status)
		assert.Empty(t, match.Winner)
	})
}

func TestMatch_Clone(t *testing.T) {
	match := newPlayingMatch(t)

	clone := match.Clone()
	clone.Player1.PlayerName = "changed"
	clone.Board[0] = x

	assert.Equal(t, "Ana", match.Player1.PlayerName)
	assert.Equal(t, EmptyCell, match.Board[0])
	assert.Nil(t, (*Match)(nil).Clone())
}

func TestMatch_Opponent(t *testing.T) {
	match := newPlayingMatch(t)

	assert.Equal(t, "p2", match.Opponent("p1").PlayerID)
	assert.Equal(t, "p1", match.Opponent("p2").PlayerID)
	assert.Nil(t, match.Opponent("stranger"))
}
