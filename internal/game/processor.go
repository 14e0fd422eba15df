// internal/game/processor.go
package game

import (
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/unoarena/server/internal/deck"
)

// Processor applies parsed player actions to rooms and emits the resulting
// broadcasts through the Gateway. Each action's full validate-mutate-
// broadcast sequence runs under the target room's lock, so rooms behave
// atomically while remaining independent of each other.
type Processor struct {
	registry *Registry
	gw       Gateway
	log      *logrus.Logger
	strict   bool
	rng      *rand.Rand

	// newDeck builds a freshly shuffled deck; overridable in tests.
	newDeck func() deck.Deck
}

// Options configures a Processor.
type Options struct {
	// StrictRules enables turn and card legality validation on plays and
	// draws. Off by default: existing clients rely on the permissive
	// trust-the-client behavior.
	StrictRules bool
	Logger      *logrus.Logger
}

// NewProcessor creates a Processor over the given registry and gateway.
func NewProcessor(registry *Registry, gw Gateway, opts Options) *Processor {
	logger := opts.Logger
	if logger == nil {
		logger = logrus.New()
	}
	p := &Processor{
		registry: registry,
		gw:       gw,
		log:      logger,
		strict:   opts.StrictRules,
		rng:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	p.newDeck = func() deck.Deck {
		d := deck.New()
		d.Shuffle(p.rng)
		return d
	}
	return p
}

// Handle routes one inbound action. Unknown action types are logged and
// dropped without a reply.
func (p *Processor) Handle(conn uuid.UUID, act Action) {
	switch act.Type {
	case ActionCreateLobby:
		p.createLobby(conn, act)
	case ActionJoinLobby:
		p.joinLobby(conn, act)
	case ActionLeaveLobby:
		p.leaveLobby(act)
	case ActionStartGame:
		p.startGame(act)
	case ActionPlayCard:
		p.playCard(act)
	case ActionDrawCard:
		p.drawCard(act)
	case ActionCallUno:
		p.callUno(act)
	default:
		p.log.WithField("type", act.Type).Warn("dropping unknown action type")
	}
}

// HandleDisconnect removes the player owning conn from whichever room
// holds it, with the same semantics as an explicit leave_lobby.
func (p *Processor) HandleDisconnect(conn uuid.UUID) {
	room, playerID, ok := p.registry.FindByConn(conn)
	if !ok {
		return
	}

	room.Mu.Lock()
	defer room.Mu.Unlock()
	idx := room.playerIndex(playerID)
	if idx == -1 {
		return
	}
	p.log.WithFields(logrus.Fields{"room": room.Code, "player": playerID}).
		Info("player disconnected, leaving room")
	p.removePlayer(room, idx)
}

// send delivers msg to a single connection if it is still open.
func (p *Processor) send(conn uuid.UUID, msg any) {
	if p.gw.IsOpen(conn) {
		p.gw.Send(conn, msg)
	}
}

// sendError reports a rejected request back to the requester only.
func (p *Processor) sendError(conn uuid.UUID, err error) {
	p.send(conn, ErrorMessage{Type: MsgError, Message: clientMessage(err)})
}

// broadcast sends msg to every player in the room whose connection is
// open. A closed connection is skipped, never an error.
// Assumes the room lock is held.
func (p *Processor) broadcast(room *Room, msg any) {
	for _, pl := range room.Players {
		p.send(pl.Conn, msg)
	}
}

// broadcastLobbyUpdate shares the current roster with the whole room.
// Assumes the room lock is held.
func (p *Processor) broadcastLobbyUpdate(room *Room) {
	p.broadcast(room, LobbyUpdate{Type: MsgLobbyUpdate, Players: room.roster()})
}

// broadcastGameUpdate shares the public game snapshot with the whole room.
// Assumes the room lock is held.
func (p *Processor) broadcastGameUpdate(room *Room) {
	var current deck.Card
	if room.CurrentCard != nil {
		current = *room.CurrentCard
	}
	p.broadcast(room, GameUpdate{
		Type:               MsgGameUpdate,
		CurrentCard:        current,
		CurrentPlayerIndex: room.CurrentPlayer,
		Direction:          room.Direction,
		Players:            room.roster(),
	})
}

func (p *Processor) createLobby(conn uuid.UUID, act Action) {
	host := &Player{
		ID:     act.PlayerID,
		Name:   act.PlayerName,
		IsHost: true,
		Hand:   []deck.Card{},
		Conn:   conn,
	}
	room := p.registry.Create(host)

	room.Mu.Lock()
	defer room.Mu.Unlock()
	p.send(conn, LobbyCreated{Type: MsgLobbyCreated, RoomCode: room.Code})
	p.broadcastLobbyUpdate(room)
	p.log.WithFields(logrus.Fields{"room": room.Code, "player": host.ID}).Info("lobby created")
}

func (p *Processor) joinLobby(conn uuid.UUID, act Action) {
	room, ok := p.registry.Get(act.RoomCode)
	if !ok {
		p.sendError(conn, ErrRoomNotFound)
		return
	}

	room.Mu.Lock()
	defer room.Mu.Unlock()
	if len(room.Players) >= MaxPlayers {
		p.sendError(conn, ErrRoomFull)
		return
	}
	if room.Started {
		p.sendError(conn, ErrGameInProgress)
		return
	}

	player := &Player{
		ID:   act.PlayerID,
		Name: act.PlayerName,
		Hand: []deck.Card{},
		Conn: conn,
	}
	room.Players = append(room.Players, player)

	p.send(conn, LobbyJoined{Type: MsgLobbyJoined, RoomCode: room.Code})
	p.broadcastLobbyUpdate(room)
	p.log.WithFields(logrus.Fields{"room": room.Code, "player": player.ID}).Info("player joined lobby")
}

func (p *Processor) leaveLobby(act Action) {
	room, ok := p.registry.Get(act.RoomCode)
	if !ok {
		return
	}

	room.Mu.Lock()
	defer room.Mu.Unlock()
	idx := room.playerIndex(act.PlayerID)
	if idx == -1 {
		return
	}
	p.removePlayer(room, idx)
}

// removePlayer drops the player at idx, promotes the earliest remaining
// player to host if the departing player held it, and deletes the room
// from the registry when it empties.
// Assumes the room lock is held.
func (p *Processor) removePlayer(room *Room, idx int) {
	leaving := room.Players[idx]
	room.Players = append(room.Players[:idx], room.Players[idx+1:]...)

	if len(room.Players) == 0 {
		p.registry.Delete(room.Code)
		p.log.WithField("room", room.Code).Info("room deleted, all players left")
		return
	}
	if leaving.IsHost {
		room.Players[0].IsHost = true
	}
	p.broadcastLobbyUpdate(room)
}

func (p *Processor) startGame(act Action) {
	room, ok := p.registry.Get(act.RoomCode)
	if !ok {
		return
	}

	room.Mu.Lock()
	defer room.Mu.Unlock()
	if len(room.Players) < MinPlayers {
		return
	}

	room.Deck = p.newDeck()
	room.Discard = deck.Deck{}
	room.Started = true
	room.CurrentPlayer = 0
	room.Direction = 1

	// Deal one complete hand at a time, in player order.
	for _, pl := range room.Players {
		pl.Hand = make([]deck.Card, 0, HandSize)
		for i := 0; i < HandSize; i++ {
			card, err := room.Deck.Draw()
			if err != nil {
				p.log.WithField("room", room.Code).Error("deal failed: deck exhausted")
				return
			}
			pl.Hand = append(pl.Hand, card)
		}
	}

	first, ok := seedCurrentCard(&room.Deck)
	if !ok {
		p.log.WithField("room", room.Code).Error("seeding current card failed: deck exhausted")
		return
	}
	room.CurrentCard = &first
	room.Discard = deck.Deck{first}

	roster := room.roster()
	for _, pl := range room.Players {
		p.send(pl.Conn, GameStarted{
			Type:               MsgGameStarted,
			CurrentCard:        first,
			Hand:               pl.Hand,
			Players:            roster,
			CurrentPlayerIndex: room.CurrentPlayer,
			Direction:          room.Direction,
		})
	}
	p.log.WithFields(logrus.Fields{"room": room.Code, "players": len(room.Players)}).Info("game started")
}

// seedCurrentCard draws until a non-wild card turns up. Wild cards passed
// over are removed from play for the rest of the game.
func seedCurrentCard(d *deck.Deck) (deck.Card, bool) {
	for {
		card, err := d.Draw()
		if err != nil {
			return deck.Card{}, false
		}
		if card.Kind != deck.KindWild {
			return card, true
		}
	}
}

func (p *Processor) playCard(act Action) {
	if act.Card == nil {
		return
	}
	room, ok := p.registry.Get(act.RoomCode)
	if !ok {
		return
	}

	room.Mu.Lock()
	defer room.Mu.Unlock()
	idx := room.playerIndex(act.PlayerID)
	if idx == -1 {
		return
	}
	player := room.Players[idx]
	card := act.Card.Card

	if p.strict && !p.legalPlay(room, idx, card) {
		p.log.WithFields(logrus.Fields{"room": room.Code, "player": player.ID}).
			Warn("rejecting illegal play")
		return
	}

	// Remove the card by its pre-play identity, before the wild color
	// overwrite, so a played wild still leaves the hand.
	if hi := indexOfCard(player.Hand, card); hi != -1 {
		player.Hand = append(player.Hand[:hi], player.Hand[hi+1:]...)
	}

	if card.Kind == deck.KindWild && act.Card.ChosenColor != "" {
		card.Color = act.Card.ChosenColor
	}

	room.CurrentCard = &card
	room.Discard = append(room.Discard, card)

	eff := p.applyCardEffect(room, card)

	if len(player.Hand) == 0 {
		p.broadcast(room, GameOver{Type: MsgGameOver, Winner: Winner{ID: player.ID, Name: player.Name}})
		p.log.WithFields(logrus.Fields{"room": room.Code, "winner": player.ID}).Info("game over")
		return
	}

	room.CurrentPlayer = NextIndex(room.CurrentPlayer, room.Direction, len(room.Players))
	if eff.skipNext {
		room.CurrentPlayer = NextIndex(room.CurrentPlayer, room.Direction, len(room.Players))
	}

	p.broadcastGameUpdate(room)
	p.broadcast(room, CardPlayed{
		Type:       MsgCardPlayed,
		PlayerID:   player.ID,
		PlayerName: player.Name,
		Card:       card,
	})
}

// legalPlay reports whether the submitted card is a legal play for the
// player at idx: the game must be running, it must be their turn, the card
// must be in their hand, and it must match the current card by color,
// value, or wildness. Only consulted in strict mode.
// Assumes the room lock is held.
func (p *Processor) legalPlay(room *Room, idx int, card deck.Card) bool {
	if !room.Started || idx != room.CurrentPlayer {
		return false
	}
	if indexOfCard(room.Players[idx].Hand, card) == -1 {
		return false
	}
	if room.CurrentCard == nil {
		return true
	}
	return card.Matches(*room.CurrentCard)
}

// indexOfCard finds a card in the hand by color and value, or -1.
func indexOfCard(hand []deck.Card, card deck.Card) int {
	for i, c := range hand {
		if c.Color == card.Color && c.Value == card.Value {
			return i
		}
	}
	return -1
}

func (p *Processor) drawCard(act Action) {
	room, ok := p.registry.Get(act.RoomCode)
	if !ok {
		return
	}

	room.Mu.Lock()
	defer room.Mu.Unlock()
	idx := room.playerIndex(act.PlayerID)
	if idx == -1 {
		return
	}
	if p.strict && (!room.Started || idx != room.CurrentPlayer) {
		p.log.WithFields(logrus.Fields{"room": room.Code, "player": act.PlayerID}).
			Warn("rejecting out-of-turn draw")
		return
	}
	player := room.Players[idx]

	card, err := p.drawOne(room)
	if err != nil {
		p.log.WithFields(logrus.Fields{"room": room.Code, "player": player.ID}).
			Warn("ignoring draw: no cards available")
		return
	}
	player.Hand = append(player.Hand, card)

	p.send(player.Conn, CardDrawn{Type: MsgCardDrawn, PlayerID: player.ID, Card: card})

	// A plain draw advances exactly one step; no skip applies.
	room.CurrentPlayer = NextIndex(room.CurrentPlayer, room.Direction, len(room.Players))
	p.broadcastGameUpdate(room)
}

func (p *Processor) callUno(act Action) {
	room, ok := p.registry.Get(act.RoomCode)
	if !ok {
		return
	}

	room.Mu.Lock()
	defer room.Mu.Unlock()
	p.broadcast(room, UnoCalled{Type: MsgUnoCalled, PlayerID: act.PlayerID})
}
