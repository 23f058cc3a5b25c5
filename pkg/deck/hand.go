package deck

import (
	"sort"
	"strings"
)

// Hand represents a collection of cards
// A Hand sorts by rank only
type Hand []Card

func (h Hand) Len() int {
	return len(h)
}

func (h Hand) Less(i, j int) bool {
	return h[i].Rank < h[j].Rank
}

func (h Hand) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

// SortedDescending returns a copy of the hand, highest rank first
func (h Hand) SortedDescending() Hand {
	sorted := h.Clone()
	sort.Stable(sort.Reverse(sorted))
	return sorted
}

// Compare compares two hands by rank, highest card first
// Both hands are sorted before comparison. If one hand is a prefix of the other,
// the shorter hand is lower.
func (h Hand) Compare(other Hand) int {
	a := h.SortedDescending()
	b := other.SortedDescending()

	for i := 0; i < len(a) && i < len(b); i++ {
		if cmp := a[i].Compare(b[i]); cmp != 0 {
			return cmp
		}
	}

	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// SameRank returns true if every card shares the rank of the first card
func (h Hand) SameRank() bool {
	for _, card := range h {
		if !card.Equal(h[0]) {
			return false
		}
	}

	return true
}

// SameSuit returns true if every card shares the suit of the first card
func (h Hand) SameSuit() bool {
	for _, card := range h {
		if card.Suit != h[0].Suit {
			return false
		}
	}

	return true
}

// Without returns the cards that are not part of group
// Cards are matched by rank and suit, and each card in group removes at most one card.
func (h Hand) Without(group Hand) Hand {
	used := make([]bool, len(group))
	rest := make(Hand, 0, len(h))

outer:
	for _, card := range h {
		for i, g := range group {
			if !used[i] && card.Identical(g) {
				used[i] = true
				continue outer
			}
		}

		rest = append(rest, card)
	}

	return rest
}

// FirstCard returns the first card in the hand and false if the hand is empty
func (h Hand) FirstCard() (Card, bool) {
	if len(h) == 0 {
		return Card{}, false
	}

	return h[0], true
}

// String returns the card tokens separated by a space
func (h Hand) String() string {
	c := make([]string, len(h))
	for i, card := range h {
		c[i] = card.String()
	}

	return strings.Join(c, " ")
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
