// internal/game/registry.go
package game

import (
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"
)

const (
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLength   = 6
)

// Registry is the process-wide mapping from room code to live room. It is
// constructed once at startup and shared by reference; there is no global
// room state anywhere else.
type Registry struct {
	mu    sync.RWMutex
	rooms map[string]*Room
	rng   *rand.Rand

	// newCode generates candidate room codes; overridable in tests.
	newCode func() string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	r := &Registry{
		rooms: make(map[string]*Room),
		rng:   rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	r.newCode = r.randomCode
	return r
}

// randomCode returns a 6-character uppercase alphanumeric room code.
// Assumes the registry lock is held (the rng is not safe for concurrent use).
func (r *Registry) randomCode() string {
	code := make([]byte, codeLength)
	for i := range code {
		code[i] = codeAlphabet[r.rng.IntN(len(codeAlphabet))]
	}
	return string(code)
}

// Create allocates a fresh room with host as its only player. The code is
// re-rolled until it does not collide with a live room.
func (r *Registry) Create(host *Player) *Room {
	r.mu.Lock()
	defer r.mu.Unlock()

	code := r.newCode()
	for _, taken := r.rooms[code]; taken; _, taken = r.rooms[code] {
		code = r.newCode()
	}

	room := &Room{
		Code:      code,
		Players:   []*Player{host},
		Direction: 1,
	}
	r.rooms[code] = room
	return room
}

// Get looks up a room by code.
func (r *Registry) Get(code string) (*Room, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	room, ok := r.rooms[code]
	return room, ok
}

// Delete removes a room from the registry. The room object itself stays
// valid for any caller still holding it.
func (r *Registry) Delete(code string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rooms, code)
}

// Len returns the number of live rooms.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rooms)
}

// FindByConn locates the room and player owning the given connection.
// The registry lock is released before room locks are taken, so the
// answer is a snapshot; callers must re-check membership under the room
// lock before mutating.
func (r *Registry) FindByConn(conn uuid.UUID) (*Room, string, bool) {
	r.mu.RLock()
	rooms := make([]*Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		rooms = append(rooms, room)
	}
	r.mu.RUnlock()

	for _, room := range rooms {
		room.Mu.Lock()
		playerID, ok := room.playerIDByConn(conn)
		room.Mu.Unlock()
		if ok {
			return room, playerID, true
		}
	}
	return nil, "", false
}
