// internal/game/messages.go
package game

import "github.com/unoarena/server/internal/deck"

// Inbound action types. The envelope's "type" field selects the operation.
const (
	ActionCreateLobby = "create_lobby"
	ActionJoinLobby   = "join_lobby"
	ActionLeaveLobby  = "leave_lobby"
	ActionStartGame   = "start_game"
	ActionPlayCard    = "play_card"
	ActionDrawCard    = "draw_card"
	ActionCallUno     = "call_uno"
)

// Action is the inbound message envelope. Fields irrelevant to a given
// action type are simply absent on the wire.
type Action struct {
	Type       string      `json:"type"`
	RoomCode   string      `json:"roomCode,omitempty"`
	PlayerID   string      `json:"playerId,omitempty"`
	PlayerName string      `json:"playerName,omitempty"`
	Card       *PlayedCard `json:"card,omitempty"`
}

// PlayedCard is a card as submitted by a client. For wild cards the client
// attaches the color it chose; the color takes effect when the card lands
// on the discard pile.
type PlayedCard struct {
	deck.Card
	ChosenColor deck.Color `json:"chosenColor,omitempty"`
}

// Outbound message types.
const (
	MsgLobbyCreated = "lobby_created"
	MsgLobbyJoined  = "lobby_joined"
	MsgError        = "error"
	MsgLobbyUpdate  = "lobby_update"
	MsgGameStarted  = "game_started"
	MsgGameUpdate   = "game_update"
	MsgCardPlayed   = "card_played"
	MsgCardDrawn    = "card_drawn"
	MsgUnoCalled    = "uno_called"
	MsgGameOver     = "game_over"
)

// PlayerInfo is the public view of a player shared with the whole room.
type PlayerInfo struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsHost    bool   `json:"isHost"`
	CardCount int    `json:"cardCount"`
}

// LobbyCreated is the private reply to a successful create_lobby.
type LobbyCreated struct {
	Type     string `json:"type"`
	RoomCode string `json:"roomCode"`
}

// LobbyJoined is the private reply to a successful join_lobby.
type LobbyJoined struct {
	Type     string `json:"type"`
	RoomCode string `json:"roomCode"`
}

// ErrorMessage is the private reply for a rejected join-path request.
type ErrorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// LobbyUpdate broadcasts the current roster to everyone in the room.
type LobbyUpdate struct {
	Type    string       `json:"type"`
	Players []PlayerInfo `json:"players"`
}

// GameStarted is sent privately to each player at game start; Hand holds
// that player's own cards.
type GameStarted struct {
	Type               string       `json:"type"`
	CurrentCard        deck.Card    `json:"currentCard"`
	Hand               []deck.Card  `json:"hand"`
	Players            []PlayerInfo `json:"players"`
	CurrentPlayerIndex int          `json:"currentPlayerIndex"`
	Direction          int          `json:"direction"`
}

// GameUpdate is the public snapshot broadcast after every turn mutation.
type GameUpdate struct {
	Type               string       `json:"type"`
	CurrentCard        deck.Card    `json:"currentCard"`
	CurrentPlayerIndex int          `json:"currentPlayerIndex"`
	Direction          int          `json:"direction"`
	Players            []PlayerInfo `json:"players"`
}

// CardPlayed announces a play to the room.
type CardPlayed struct {
	Type       string    `json:"type"`
	PlayerID   string    `json:"playerId"`
	PlayerName string    `json:"playerName"`
	Card       deck.Card `json:"card"`
}

// CardDrawn is sent privately to the drawing player only.
type CardDrawn struct {
	Type     string    `json:"type"`
	PlayerID string    `json:"playerId"`
	Card     deck.Card `json:"card"`
}

// UnoCalled announces an UNO call to the room.
type UnoCalled struct {
	Type     string `json:"type"`
	PlayerID string `json:"playerId"`
}

// Winner identifies the player who emptied their hand.
type Winner struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// GameOver announces the winner to the room.
type GameOver struct {
	Type   string `json:"type"`
	Winner Winner `json:"winner"`
}
