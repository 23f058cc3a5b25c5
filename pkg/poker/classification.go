package poker

import "showdown-server/pkg/deck"

// Group is a named set of cards used to break ties between hands of the same category
type Group struct {
	Name  string    `json:"name"`
	Cards deck.Hand `json:"cards"`
}

// Classification is a hand category together with the groups that break ties within it
// Groups are returned in the order they are compared.
type Classification interface {
	Category() Category
	Groups() []Group

	// prevents implementations outside of this package
	classification()
}

// StraightFlushHand is five consecutive cards of the same suit
// Cards are ace-low normalized for a five-high straight flush.
type StraightFlushHand struct {
	Cards deck.Hand
}

// FourOfAKindHand is four cards of the same rank and a kicker
type FourOfAKindHand struct {
	Quad   deck.Hand
	Kicker deck.Card
}

// FullHouseHand is three cards of one rank and two cards of another
type FullHouseHand struct {
	Triplet deck.Hand
	Pair    deck.Hand
}

// FlushHand is five cards of the same suit
type FlushHand struct {
	Cards deck.Hand
}

// StraightHand is five consecutive cards
// Cards are ace-low normalized for a five-high straight.
type StraightHand struct {
	Cards deck.Hand
}

// ThreeOfAKindHand is three cards of the same rank and two kickers
type ThreeOfAKindHand struct {
	Triplet deck.Hand
	Kickers deck.Hand
}

// TwoPairHand is two pairs and a kicker
type TwoPairHand struct {
	HighPair deck.Hand
	LowPair  deck.Hand
	Kicker   deck.Card
}

// OnePairHand is a pair and three kickers
type OnePairHand struct {
	Pair    deck.Hand
	Kickers deck.Hand
}

// HighCardHand is any hand that doesn't make a better category
type HighCardHand struct {
	Cards deck.Hand
}

func (StraightFlushHand) Category() Category { return StraightFlush }
func (FourOfAKindHand) Category() Category   { return FourOfAKind }
func (FullHouseHand) Category() Category     { return FullHouse }
func (FlushHand) Category() Category         { return Flush }
func (StraightHand) Category() Category      { return Straight }
func (ThreeOfAKindHand) Category() Category  { return ThreeOfAKind }
func (TwoPairHand) Category() Category       { return TwoPair }
func (OnePairHand) Category() Category       { return OnePair }
func (HighCardHand) Category() Category      { return HighCard }

func (h StraightFlushHand) Groups() []Group {
	return []Group{{Name: "cards", Cards: h.Cards}}
}

func (h FourOfAKindHand) Groups() []Group {
	return []Group{
		{Name: "quad", Cards: h.Quad},
		{Name: "kicker", Cards: deck.Hand{h.Kicker}},
	}
}

func (h FullHouseHand) Groups() []Group {
	return []Group{
		{Name: "triplet", Cards: h.Triplet},
		{Name: "pair", Cards: h.Pair},
	}
}

func (h FlushHand) Groups() []Group {
	return []Group{{Name: "cards", Cards: h.Cards}}
}

func (h StraightHand) Groups() []Group {
	return []Group{{Name: "cards", Cards: h.Cards}}
}

func (h ThreeOfAKindHand) Groups() []Group {
	return []Group{
		{Name: "triplet", Cards: h.Triplet},
		{Name: "kickers", Cards: h.Kickers},
	}
}

func (h TwoPairHand) Groups() []Group {
	return []Group{
		{Name: "highPair", Cards: h.HighPair},
		{Name: "lowPair", Cards: h.LowPair},
		{Name: "kicker", Cards: deck.Hand{h.Kicker}},
	}
}

func (h OnePairHand) Groups() []Group {
	return []Group{
		{Name: "pair", Cards: h.Pair},
		{Name: "kickers", Cards: h.Kickers},
	}
}

func (h HighCardHand) Groups() []Group {
	return []Group{{Name: "cards", Cards: h.Cards}}
}

func (StraightFlushHand) classification() {}
func (FourOfAKindHand) classification()   {}
func (FullHouseHand) classification()     {}
func (FlushHand) classification()         {}
func (StraightHand) classification()      {}
func (ThreeOfAKindHand) classification()  {}
func (TwoPairHand) classification()       {}
func (OnePairHand) classification()       {}
func (HighCardHand) classification()      {}

// Compare orders two classifications
// The category decides first. Within a category, the groups are compared in order,
// each by descending rank. It returns -1, 0 or 1.
func Compare(a, b Classification) int {
	if ca, cb := a.Category(), b.Category(); ca != cb {
		if ca < cb {
			return -1
		}

		return 1
	}

	ga, gb := a.Groups(), b.Groups()
	for i := 0; i < len(ga) && i < len(gb); i++ {
		if cmp := ga[i].Cards.Compare(gb[i].Cards); cmp != 0 {
			return cmp
		}
	}

	return 0
}
