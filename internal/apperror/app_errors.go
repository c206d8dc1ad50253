package apperror

import "errors"

// Error is a rejected-operation signal with a stable reason code.
type Error struct {
	Code    string
	Message string
}

func New(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func (that *Error) Error() string {
	return that.Message
}

var (
	ErrNotYourTurn      = New("not-your-turn", "it's not your turn")
	ErrGameFinished     = New("game-over", "game is already finished")
	ErrGameIsNotStarted = New("game-not-started", "game is not started")
	ErrCellOccupied     = New("position-occupied", "cell is already occupied")
	ErrInvalidCell      = New("invalid-position", "invalid cell index")
	ErrGameFull         = New("game-full", "game already has two players")
	ErrGameNotFound     = New("game-not-found", "game not found")
	ErrGameExists       = New("game-exists", "game already exists")
	ErrGameNotWaiting   = New("game-not-waiting", "game is already in progress or finished")
	ErrAlreadyInGame    = New("already-in-game", "player already takes part in this game")
	ErrInvalidPlayer    = New("invalid-player", "player id is required")

	ErrStoreFailure      = New("store-failure", "store is unavailable")
	ErrConcurrentUpdate  = New("concurrent-update", "game was modified concurrently")
	ErrUnknownDifficulty = New("invalid-difficulty", "unknown difficulty level")
)

// Code returns the reason code of the first *Error in the chain, or "" when there is none.
func Code(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}

	return ""
}
