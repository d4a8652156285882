package pkg

import (
	"encoding/hex"

	"lukechampine.com/frand"
)

const gameIDBytes = 8

// GenerateGameID returns a random hex identifier for a game session.
func GenerateGameID() string {
	return hex.EncodeToString(frand.Bytes(gameIDBytes))
}
