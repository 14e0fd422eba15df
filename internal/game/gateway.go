// internal/game/gateway.go
package game

import "github.com/google/uuid"

// Gateway delivers outbound messages to client connections. The transport
// owns every connection's lifetime; the game core only addresses messages
// by connection ID.
//
// Sends are fire-and-forget: delivery to a closed connection is skipped or
// logged by the implementation, never surfaced as an error to the core.
type Gateway interface {
	// Send serializes msg to JSON and delivers it to conn.
	Send(conn uuid.UUID, msg any)

	// IsOpen reports whether conn is currently open.
	IsOpen(conn uuid.UUID) bool
}
