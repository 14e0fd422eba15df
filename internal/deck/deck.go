// Package deck implements the UNO card model: deck generation, shuffling,
// drawing, and discard-pile reshuffling.
//
// The package is pure game material with no service concerns; all mutable
// room state lives in internal/game.
package deck

import (
	"errors"
	"math/rand/v2"
)

// Size is the number of cards in a full UNO deck.
const Size = 108

// Color is a card color. Wild cards start with ColorWild and take on the
// color chosen by the player at the moment they are played.
type Color string

const (
	ColorRed    Color = "red"
	ColorBlue   Color = "blue"
	ColorGreen  Color = "green"
	ColorYellow Color = "yellow"
	ColorWild   Color = "wild"
)

// Kind classifies a card: plain number, colored action, or wild.
type Kind string

const (
	KindNumber Kind = "number"
	KindAction Kind = "action"
	KindWild   Kind = "wild"
)

// Special card values. Number cards carry their digit ("0".."9").
const (
	ValueSkip     = "Skip"
	ValueReverse  = "Reverse"
	ValueDrawTwo  = "+2"
	ValueWild     = "Wild"
	ValueDrawFour = "+4"
)

// Card is a single UNO card. The JSON field names match the wire protocol.
type Card struct {
	Color Color  `json:"color"`
	Value string `json:"value"`
	Kind  Kind   `json:"type"`
}

// IsWild reports whether the card is one of the eight wild cards.
func (c Card) IsWild() bool { return c.Kind == KindWild }

// Matches reports whether the card is a legal play on top of current:
// same color, same value, or wild.
func (c Card) Matches(current Card) bool {
	return c.Kind == KindWild || c.Color == current.Color || c.Value == current.Value
}

// Deck is an ordered pile of cards with stack semantics: Draw pops from
// the end.
type Deck []Card

// ErrEmpty is returned by Draw when the deck has no cards left. The
// caller is expected to reshuffle the discard pile first.
var ErrEmpty = errors.New("deck: empty")

var colors = [4]Color{ColorRed, ColorBlue, ColorGreen, ColorYellow}

// coloredValues are the per-color values that appear twice in each color.
var coloredValues = [12]string{
	"1", "2", "3", "4", "5", "6", "7", "8", "9",
	ValueSkip, ValueReverse, ValueDrawTwo,
}

func kindOf(value string) Kind {
	switch value {
	case ValueSkip, ValueReverse, ValueDrawTwo:
		return KindAction
	default:
		return KindNumber
	}
}

// New builds the canonical 108-card deck: per color one "0" and two each
// of 1-9, Skip, Reverse and +2 (25 per color), plus four Wild and four +4.
func New() Deck {
	d := make(Deck, 0, Size)
	for _, color := range colors {
		d = append(d, Card{Color: color, Value: "0", Kind: KindNumber})
		for _, value := range coloredValues {
			card := Card{Color: color, Value: value, Kind: kindOf(value)}
			d = append(d, card, card)
		}
	}
	for i := 0; i < 4; i++ {
		d = append(d,
			Card{Color: ColorWild, Value: ValueWild, Kind: KindWild},
			Card{Color: ColorWild, Value: ValueDrawFour, Kind: KindWild},
		)
	}
	return d
}

// Shuffle permutes the deck in place with a Fisher-Yates walk over rng.
func (d Deck) Shuffle(rng *rand.Rand) {
	for i := len(d) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		d[i], d[j] = d[j], d[i]
	}
}

// Draw removes and returns the top (last) card.
func (d *Deck) Draw() (Card, error) {
	if len(*d) == 0 {
		return Card{}, ErrEmpty
	}
	last := len(*d) - 1
	card := (*d)[last]
	*d = (*d)[:last]
	return card, nil
}

// ReshuffleFromDiscard shuffles all but the top discard card into a fresh
// deck. The returned discard pile holds only the former top card, which
// stays in play as the current card.
func ReshuffleFromDiscard(discard Deck, rng *rand.Rand) (Deck, Deck) {
	if len(discard) == 0 {
		return Deck{}, discard
	}
	top := discard[len(discard)-1]
	fresh := make(Deck, len(discard)-1)
	copy(fresh, discard[:len(discard)-1])
	fresh.Shuffle(rng)
	return fresh, Deck{top}
}
