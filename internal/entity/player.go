package entity

// Player is a seat in a match. Symbol is assigned by position: the creator is X, the joiner O.
type Player struct {
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
	Symbol     string `json:"symbol"`
}
