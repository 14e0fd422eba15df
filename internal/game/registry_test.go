// internal/game/registry_test.go
package game

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomCodeFormat(t *testing.T) {
	reg := NewRegistry()
	for i := 0; i < 50; i++ {
		code := reg.randomCode()
		require.Len(t, code, codeLength)
		for _, ch := range code {
			assert.Contains(t, codeAlphabet, string(ch))
		}
	}
}

func TestCreateRetriesOnCodeCollision(t *testing.T) {
	reg := NewRegistry()

	codes := []string{"AAAAAA", "AAAAAA", "BBBBBB"}
	reg.newCode = func() string {
		code := codes[0]
		codes = codes[1:]
		return code
	}

	first := reg.Create(&Player{ID: "p1"})
	assert.Equal(t, "AAAAAA", first.Code)

	// The second create collides once and must re-roll.
	second := reg.Create(&Player{ID: "p2"})
	assert.Equal(t, "BBBBBB", second.Code)
	assert.Equal(t, 2, reg.Len())
}

func TestRegistryGetDelete(t *testing.T) {
	reg := NewRegistry()
	room := reg.Create(&Player{ID: "p1"})

	got, ok := reg.Get(room.Code)
	require.True(t, ok)
	assert.Same(t, room, got)

	reg.Delete(room.Code)
	_, ok = reg.Get(room.Code)
	assert.False(t, ok)
	assert.Equal(t, 0, reg.Len())
}

func TestFindByConn(t *testing.T) {
	reg := NewRegistry()
	conn := uuid.New()
	room := reg.Create(&Player{ID: "p1", Conn: conn})

	found, playerID, ok := reg.FindByConn(conn)
	require.True(t, ok)
	assert.Same(t, room, found)
	assert.Equal(t, "p1", playerID)

	_, _, ok = reg.FindByConn(uuid.New())
	assert.False(t, ok)
}

func TestNewRoomDefaults(t *testing.T) {
	reg := NewRegistry()
	room := reg.Create(&Player{ID: "p1", IsHost: true})

	assert.False(t, room.Started)
	assert.Equal(t, 1, room.Direction)
	assert.Equal(t, strings.ToUpper(room.Code), room.Code)
	require.Len(t, room.Players, 1)
	assert.True(t, room.Players[0].IsHost)
}
