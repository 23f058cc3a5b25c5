package deck

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidCardFormat is returned when a card token cannot be parsed
var ErrInvalidCardFormat = errors.New("invalid card format")

// Suit represents a card suit
type Suit string

// suit constants
const (
	Hearts   Suit = "hearts"
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Spades   Suit = "spades"
)

// Card is an individual playing card
// Cards are ordered and compared by rank only
type Card struct {
	Rank int  `json:"rank"`
	Suit Suit `json:"suit"`
}

// face cards
const (
	Jack    = 11
	Queen   = 12
	King    = 13
	Ace     = 14
	HighAce = Ace
	LowAce  = 1
)

var cardRx = regexp.MustCompile(`^([2-9]|10|[JQKA])([HDSC])\z`)

// ParseCard returns a Card from a token such as "4H", "10S" or "AD"
func ParseCard(s string) (Card, error) {
	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCardFormat, s)
	}

	var rank int
	switch match[1] {
	case "J":
		rank = Jack
	case "Q":
		rank = Queen
	case "K":
		rank = King
	case "A":
		rank = Ace
	default:
		// the regexp guarantees a number
		rank, _ = strconv.Atoi(match[1])
	}

	var suit Suit
	switch match[2] {
	case "H":
		suit = Hearts
	case "D":
		suit = Diamonds
	case "S":
		suit = Spades
	case "C":
		suit = Clubs
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// CardsFromString parses whitespace-separated card tokens
func CardsFromString(s string) (Hand, error) {
	tokens := strings.Fields(s)
	cards := make(Hand, len(tokens))
	for i, token := range tokens {
		card, err := ParseCard(token)
		if err != nil {
			return nil, err
		}

		cards[i] = card
	}

	return cards, nil
}

// String returns the card token, i.e., 10H
func (c Card) String() string {
	var rank string
	switch c.Rank {
	case Jack:
		rank = "J"
	case Queen:
		rank = "Q"
	case King:
		rank = "K"
	case Ace, LowAce:
		rank = "A"
	default:
		rank = strconv.Itoa(c.Rank)
	}

	var suit string
	switch c.Suit {
	case Hearts:
		suit = "H"
	case Diamonds:
		suit = "D"
	case Spades:
		suit = "S"
	case Clubs:
		suit = "C"
	default:
		panic(fmt.Sprintf("unknown suit: %q", c.Suit))
	}

	return rank + suit
}

// Compare returns -1, 0 or 1 depending on how the card's rank compares to the other card
func (c Card) Compare(other Card) int {
	switch {
	case c.Rank < other.Rank:
		return -1
	case c.Rank > other.Rank:
		return 1
	default:
		return 0
	}
}

// Equal returns true if the cards share a rank
// Suits are ignored; use Identical to match a physical card
func (c Card) Equal(other Card) bool {
	return c.Rank == other.Rank
}

// Identical returns true if the cards match in both rank and suit
func (c Card) Identical(other Card) bool {
	return c.Rank == other.Rank && c.Suit == other.Suit
}

// AceLow returns the card with an ace valued as LowAce
// Any other card is returned unchanged
func (c Card) AceLow() Card {
	if c.Rank == Ace {
		c.Rank = LowAce
	}

	return c
}
