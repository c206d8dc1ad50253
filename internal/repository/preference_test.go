package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-hub/testing/suite"
)

func TestPreferenceRepository(t *testing.T) {
	t.Run("Get_Default", func(t *testing.T) {
		ctx, db := suite.NewSQLite(t)
		prefs := NewPreferenceRepository(db.Connection)

		// When: a key that was never written is read
		value, err := prefs.Get(ctx, "local", "humanWins", "0")

		// Then: the default comes back
		require.NoError(t, err)
		assert.Equal(t, "0", value)
	})

	t.Run("Set_Overwrites", func(t *testing.T) {
		ctx, db := suite.NewSQLite(t)
		prefs := NewPreferenceRepository(db.Connection)

		// Given: a key written twice
		require.NoError(t, prefs.Set(ctx, "local", "difficulty", "easy"))
		require.NoError(t, prefs.Set(ctx, "local", "difficulty", "harder"))

		// When: it is read back
		value, err := prefs.Get(ctx, "local", "difficulty", "expert")

		// Then: the last write wins
		require.NoError(t, err)
		assert.Equal(t, "harder", value)
	})

	t.Run("Profiles_Are_Isolated", func(t *testing.T) {
		ctx, db := suite.NewSQLite(t)
		prefs := NewPreferenceRepository(db.Connection)

		require.NoError(t, prefs.Set(ctx, "alice", "ties", "3"))

		value, err := prefs.Get(ctx, "bob", "ties", "0")

		require.NoError(t, err)
		assert.Equal(t, "0", value)
	})
}
