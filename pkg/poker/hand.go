package poker

import (
	"fmt"

	"showdown-server/pkg/deck"
)

// HandSize is the number of cards in a hand
const HandSize = 5

// Hand is a classified five-card poker hand
type Hand struct {
	// Source is the text the hand was parsed from. It is never used for comparison.
	Source string
	Cards  deck.Hand

	Classification Classification
}

// ParseHand parses five whitespace-separated card tokens, i.e., "4H 5H 2H 3H AH"
func ParseHand(text string) (*Hand, error) {
	cards, err := deck.CardsFromString(text)
	if err != nil {
		return nil, err
	}

	if len(cards) != HandSize {
		return nil, fmt.Errorf("%w: expected %d cards, got %d in %q", ErrInvalidCardFormat, HandSize, len(cards), text)
	}

	return &Hand{
		Source:         text,
		Cards:          cards,
		Classification: NewHandAnalyzer(cards).GetClassification(),
	}, nil
}

// Category returns the category of the hand
func (h *Hand) Category() Category {
	return h.Classification.Category()
}

// Compare returns -1, 0 or 1 if the hand is weaker, tied or stronger than the other hand
func (h *Hand) Compare(other *Hand) int {
	return Compare(h.Classification, other.Classification)
}

// Equal returns true if neither hand beats the other
func (h *Hand) Equal(other *Hand) bool {
	return h.Compare(other) == 0
}

func (h *Hand) String() string {
	return fmt.Sprintf("%s (%s)", h.Source, h.Category())
}
