// internal/game/turn.go
package game

import (
	"github.com/sirupsen/logrus"

	"github.com/unoarena/server/internal/deck"
)

// NextIndex returns the turn index one step from current in the given
// direction, wrapping at both ends. Pure; direction is +1 or -1.
func NextIndex(current, direction, playerCount int) int {
	next := current + direction
	if next >= playerCount {
		return 0
	}
	if next < 0 {
		return playerCount - 1
	}
	return next
}

// cardEffect is the turn-order consequence of the card just played.
type cardEffect struct {
	skipNext bool
}

// applyCardEffect resolves a special card against the room: Skip skips the
// next player, Reverse flips direction (degenerating to a skip with two
// players), +2/+4 force the next player to draw and lose their turn. The
// +4 effect only fires for a genuine wild card.
// Assumes the room lock is held.
func (p *Processor) applyCardEffect(room *Room, card deck.Card) cardEffect {
	var eff cardEffect
	switch card.Value {
	case deck.ValueSkip:
		eff.skipNext = true
	case deck.ValueReverse:
		room.Direction = -room.Direction
		if len(room.Players) == 2 {
			eff.skipNext = true
		}
	case deck.ValueDrawTwo:
		p.forceDraw(room, 2)
		eff.skipNext = true
	case deck.ValueDrawFour:
		if card.Kind == deck.KindWild {
			p.forceDraw(room, 4)
			eff.skipNext = true
		}
	}
	return eff
}

// forceDraw makes the next player in turn order draw n cards, reshuffling
// the discard pile into the deck as needed. If the room runs out of cards
// entirely the target simply receives fewer.
// Assumes the room lock is held.
func (p *Processor) forceDraw(room *Room, n int) {
	target := room.Players[NextIndex(room.CurrentPlayer, room.Direction, len(room.Players))]
	for i := 0; i < n; i++ {
		card, err := p.drawOne(room)
		if err != nil {
			p.log.WithFields(logrus.Fields{"room": room.Code, "player": target.ID}).
				Warn("forced draw cut short: no cards available")
			return
		}
		target.Hand = append(target.Hand, card)
	}
}

// drawOne pops a card from the deck, reshuffling the discard pile first if
// the deck is empty. Returns ErrNoCardsAvailable when neither pile can
// supply a card.
// Assumes the room lock is held.
func (p *Processor) drawOne(room *Room) (deck.Card, error) {
	if len(room.Deck) == 0 {
		room.Deck, room.Discard = deck.ReshuffleFromDiscard(room.Discard, p.rng)
	}
	card, err := room.Deck.Draw()
	if err != nil {
		return deck.Card{}, ErrNoCardsAvailable
	}
	return card, nil
}
