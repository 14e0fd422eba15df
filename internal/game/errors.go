// internal/game/errors.go
package game

import "errors"

// Join-path errors are the only failures reported back to the requester;
// every other anomaly is logged and dropped without a reply.
var (
	ErrRoomNotFound   = errors.New("room not found")
	ErrRoomFull       = errors.New("room is full")
	ErrGameInProgress = errors.New("game already in progress")

	// ErrNoCardsAvailable means both the deck and the reshuffleable part
	// of the discard pile are exhausted.
	ErrNoCardsAvailable = errors.New("no cards available to draw")
)

// clientMessage maps an error to the text clients expect on the wire.
func clientMessage(err error) string {
	switch {
	case errors.Is(err, ErrRoomNotFound):
		return "Lobby not found"
	case errors.Is(err, ErrRoomFull):
		return "Lobby is full"
	case errors.Is(err, ErrGameInProgress):
		return "Game already in progress"
	}
	return err.Error()
}
