package poker

import "sort"

// Sort sorts the hands from strongest to weakest
// Tied hands keep their relative order.
func Sort(hands []*Hand) {
	sort.SliceStable(hands, func(i, j int) bool {
		return hands[i].Compare(hands[j]) > 0
	})
}

// Best returns every hand tied for the strongest, in the order they were given
func Best(hands []*Hand) []*Hand {
	if len(hands) == 0 {
		return nil
	}

	best := hands[0]
	for _, hand := range hands[1:] {
		if hand.Compare(best) > 0 {
			best = hand
		}
	}

	winners := make([]*Hand, 0, 1)
	for _, hand := range hands {
		if hand.Equal(best) {
			winners = append(winners, hand)
		}
	}

	return winners
}

// ParseHands parses every text into a hand
// The first error stops parsing.
func ParseHands(texts []string) ([]*Hand, error) {
	hands := make([]*Hand, len(texts))
	for i, text := range texts {
		hand, err := ParseHand(text)
		if err != nil {
			return nil, err
		}

		hands[i] = hand
	}

	return hands, nil
}

// WinningHands returns the texts of the hands tied for the win
// The original strings are returned verbatim and in input order. Identical texts
// and different hands of equal value are all kept.
func WinningHands(texts []string) ([]string, error) {
	if len(texts) == 0 {
		return nil, ErrEmptyInput
	}

	hands, err := ParseHands(texts)
	if err != nil {
		return nil, err
	}

	best := Best(hands)
	winners := make([]string, len(best))
	for i, hand := range best {
		winners[i] = hand.Source
	}

	return winners, nil
}
