package pkg

import (
	"fmt"

	"github.com/google/uuid"
)

// GenerateGameID returns a time-ordered identifier so ids sort roughly by creation.
func GenerateGameID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate game id: %w", err)
	}

	return id.String(), nil
}

// GenerateNewSessionID returns a random player/session identifier.
func GenerateNewSessionID() string {
	return uuid.NewString()
}
