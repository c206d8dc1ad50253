package entity

// MatchEvent is one snapshot of a watched match. A nil Match with a nil Err means the
// match was removed from the store. Err is terminal: the stream closes after it.
type MatchEvent struct {
	Match *Match
	Err   error
}

// LobbyEvent is one snapshot of the waiting matches, newest first.
type LobbyEvent struct {
	Matches []*Match
	Err     error
}
