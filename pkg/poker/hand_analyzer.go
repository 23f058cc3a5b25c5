package poker

import (
	"showdown-server/pkg/deck"
)

// HandAnalyzer can analyze a five-card hand
type HandAnalyzer struct {
	cards deck.Hand

	classification Classification
}

// NewHandAnalyzer will return a new HandAnalyzer instance
func NewHandAnalyzer(cards deck.Hand) *HandAnalyzer {
	h := &HandAnalyzer{
		cards: cards.SortedDescending(),
	}

	h.calculateHand()
	return h
}

// GetClassification returns the category of the hand and its tie-break groups
func (h *HandAnalyzer) GetClassification() Classification {
	return h.classification
}

// GetStraightFlush will return the straight flush, if possible
func (h *HandAnalyzer) GetStraightFlush() (deck.Hand, bool) {
	if !h.cards.SameSuit() {
		return nil, false
	}

	return sequence(h.cards)
}

// GetFourOfAKind will return the four of a kind and the kicker, if possible
func (h *HandAnalyzer) GetFourOfAKind() (deck.Hand, deck.Card, bool) {
	quad, rest, ok := nOfAKind(h.cards, 4)
	if !ok {
		return nil, deck.Card{}, false
	}

	kicker, ok := rest.FirstCard()
	return quad, kicker, ok
}

// GetFullHouse will return the triplet and the pair, if possible
func (h *HandAnalyzer) GetFullHouse() (deck.Hand, deck.Hand, bool) {
	triplet, rest, ok := nOfAKind(h.cards, 3)
	if !ok || len(rest) != 2 || !rest.SameRank() {
		return nil, nil, false
	}

	return triplet, rest, true
}

// GetFlush will return the flush, if possible
func (h *HandAnalyzer) GetFlush() (deck.Hand, bool) {
	if !h.cards.SameSuit() {
		return nil, false
	}

	return h.cards, true
}

// GetStraight will return the straight, if possible
func (h *HandAnalyzer) GetStraight() (deck.Hand, bool) {
	return sequence(h.cards)
}

// GetThreeOfAKind will return the triplet and the kickers, if possible
func (h *HandAnalyzer) GetThreeOfAKind() (deck.Hand, deck.Hand, bool) {
	return nOfAKind(h.cards, 3)
}

// GetTwoPair will return the high pair, the low pair and the kicker, if possible
func (h *HandAnalyzer) GetTwoPair() (deck.Hand, deck.Hand, deck.Card, bool) {
	first, rest, ok := nOfAKind(h.cards, 2)
	if !ok {
		return nil, nil, deck.Card{}, false
	}

	second, rest, ok := nOfAKind(rest, 2)
	if !ok {
		return nil, nil, deck.Card{}, false
	}

	kicker, ok := rest.FirstCard()
	if !ok {
		return nil, nil, deck.Card{}, false
	}

	if first.Compare(second) < 0 {
		first, second = second, first
	}

	return first, second, kicker, true
}

// GetPair will return the pair and the kickers, if possible
func (h *HandAnalyzer) GetPair() (deck.Hand, deck.Hand, bool) {
	return nOfAKind(h.cards, 2)
}

// calculateHand will determine the category
// The order of the checks is required: a better category also satisfies the checks below it.
func (h *HandAnalyzer) calculateHand() {
	if cards, ok := h.GetStraightFlush(); ok {
		h.classification = StraightFlushHand{Cards: cards}
	} else if quad, kicker, ok := h.GetFourOfAKind(); ok {
		h.classification = FourOfAKindHand{Quad: quad, Kicker: kicker}
	} else if triplet, pair, ok := h.GetFullHouse(); ok {
		h.classification = FullHouseHand{Triplet: triplet, Pair: pair}
	} else if cards, ok := h.GetFlush(); ok {
		h.classification = FlushHand{Cards: cards}
	} else if cards, ok := h.GetStraight(); ok {
		h.classification = StraightHand{Cards: cards}
	} else if triplet, kickers, ok := h.GetThreeOfAKind(); ok {
		h.classification = ThreeOfAKindHand{Triplet: triplet, Kickers: kickers}
	} else if high, low, kicker, ok := h.GetTwoPair(); ok {
		h.classification = TwoPairHand{HighPair: high, LowPair: low, Kicker: kicker}
	} else if pair, kickers, ok := h.GetPair(); ok {
		h.classification = OnePairHand{Pair: pair, Kickers: kickers}
	} else {
		h.classification = HighCardHand{Cards: h.cards}
	}
}

// nOfAKind scans every n-card combination for cards that share a rank
// It returns the first group found and the remaining cards.
func nOfAKind(cards deck.Hand, n int) (deck.Hand, deck.Hand, bool) {
	if n <= 0 || n > len(cards) {
		return nil, nil, false
	}

	var group deck.Hand
	combinations(len(cards), n, func(indexes []int) bool {
		candidate := make(deck.Hand, n)
		for i, idx := range indexes {
			candidate[i] = cards[idx]
		}

		if candidate.SameRank() {
			group = candidate
			return false
		}

		return true
	})

	if group == nil {
		return nil, nil, false
	}

	return group, cards.Without(group), true
}

// combinations calls fn with every k-sized set of indexes in [0, n) in lexicographic order
// Iteration stops when fn returns false.
func combinations(n, k int, fn func(indexes []int) bool) {
	indexes := make([]int, k)
	for i := range indexes {
		indexes[i] = i
	}

	for {
		if !fn(indexes) {
			return
		}

		// find the rightmost index that can still move
		i := k - 1
		for i >= 0 && indexes[i] == n-k+i {
			i--
		}

		if i < 0 {
			return
		}

		indexes[i]++
		for j := i + 1; j < k; j++ {
			indexes[j] = indexes[j-1] + 1
		}
	}
}

// sequence returns the cards sorted highest first if their ranks are consecutive
// If they are not, the check runs once more with every ace valued low.
func sequence(cards deck.Hand) (deck.Hand, bool) {
	if run, ok := consecutive(cards); ok {
		return run, true
	}

	hasAce := false
	lowered := make(deck.Hand, len(cards))
	for i, card := range cards {
		if card.Rank == deck.Ace {
			hasAce = true
		}

		lowered[i] = card.AceLow()
	}

	if !hasAce {
		return nil, false
	}

	return consecutive(lowered)
}

// consecutive is true for a single card, and false for no cards
func consecutive(cards deck.Hand) (deck.Hand, bool) {
	if len(cards) == 0 {
		return nil, false
	}

	sorted := cards.SortedDescending()
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].Rank-sorted[i].Rank != 1 {
			return nil, false
		}
	}

	return sorted, true
}
