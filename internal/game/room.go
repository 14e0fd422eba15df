// internal/game/room.go
package game

import (
	"sync"

	"github.com/google/uuid"

	"github.com/unoarena/server/internal/deck"
)

const (
	// MaxPlayers is the room capacity; joins beyond it are rejected.
	MaxPlayers = 4
	// MinPlayers is the smallest roster a game can start with.
	MinPlayers = 2
	// HandSize is the number of cards dealt to each player at game start.
	HandSize = 7
)

// Player is a participant in a room. Conn is a non-owning handle used only
// to address outbound messages; the transport owns the connection itself.
type Player struct {
	ID     string
	Name   string
	IsHost bool
	Hand   []deck.Card
	Conn   uuid.UUID
}

// Room is one isolated game instance. Player order defines turn order.
// Mu guards every mutable field for the duration of a full
// validate-mutate-broadcast sequence; helper methods assume the lock is
// held by the caller.
type Room struct {
	Code string

	Mu            sync.Mutex
	Players       []*Player
	Started       bool
	Deck          deck.Deck
	Discard       deck.Deck
	CurrentCard   *deck.Card
	CurrentPlayer int
	Direction     int
}

// playerIndex returns the index of the player with the given ID, or -1.
// Assumes the room lock is held.
func (r *Room) playerIndex(playerID string) int {
	for i, p := range r.Players {
		if p.ID == playerID {
			return i
		}
	}
	return -1
}

// playerIDByConn returns the ID of the player owning conn, if any.
// Assumes the room lock is held.
func (r *Room) playerIDByConn(conn uuid.UUID) (string, bool) {
	for _, p := range r.Players {
		if p.Conn == conn {
			return p.ID, true
		}
	}
	return "", false
}

// roster snapshots public player info in turn order.
// Assumes the room lock is held.
func (r *Room) roster() []PlayerInfo {
	infos := make([]PlayerInfo, len(r.Players))
	for i, p := range r.Players {
		infos[i] = PlayerInfo{ID: p.ID, Name: p.Name, IsHost: p.IsHost, CardCount: len(p.Hand)}
	}
	return infos
}

// cardTotal counts every card the room can account for: deck, discard,
// and all hands. For a started room it stays constant at deck.Size minus
// any wild cards removed while seeding the first current card.
// Assumes the room lock is held.
func (r *Room) cardTotal() int {
	total := len(r.Deck) + len(r.Discard)
	for _, p := range r.Players {
		total += len(p.Hand)
	}
	return total
}
