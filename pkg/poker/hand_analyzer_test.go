package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"showdown-server/pkg/deck"
)

func cardsFromString(t *testing.T, s string) deck.Hand {
	t.Helper()

	cards, err := deck.CardsFromString(s)
	if err != nil {
		t.Fatal(err)
	}

	return cards
}

func analyze(t *testing.T, s string) *HandAnalyzer {
	t.Helper()
	return NewHandAnalyzer(cardsFromString(t, s))
}

func TestHandAnalyzer_GetStraightFlush(t *testing.T) {
	cards, ok := analyze(t, "2C 3C 4C 5C 6C").GetStraightFlush()
	assert.True(t, ok)
	assert.Equal(t, "6C 5C 4C 3C 2C", cards.String())

	cards, ok = analyze(t, "10H AH QH KH JH").GetStraightFlush()
	assert.True(t, ok)
	assert.Equal(t, "AH KH QH JH 10H", cards.String())

	cards, ok = analyze(t, "4H 5H 2H 3H AH").GetStraightFlush()
	assert.True(t, ok)
	assert.Equal(t, "5H 4H 3H 2H AH", cards.String())
	assert.Equal(t, deck.LowAce, cards[4].Rank)

	cards, ok = analyze(t, "2C 3C 4C 5C 6D").GetStraightFlush()
	assert.False(t, ok)
	assert.Nil(t, cards)

	_, ok = analyze(t, "2C 3C 4C 5C 8C").GetStraightFlush()
	assert.False(t, ok)
}

func TestHandAnalyzer_GetFourOfAKind(t *testing.T) {
	quad, kicker, ok := analyze(t, "2C 3C 3D 3H 3S").GetFourOfAKind()
	assert.True(t, ok)
	assert.Equal(t, "3C 3D 3H 3S", quad.String())
	assert.Equal(t, deck.Card{Rank: 2, Suit: deck.Clubs}, kicker)

	quad, kicker, ok = analyze(t, "4S 4H AC 4D 4C").GetFourOfAKind()
	assert.True(t, ok)
	assert.Equal(t, 4, quad[0].Rank)
	assert.Equal(t, deck.Ace, kicker.Rank)

	quad, _, ok = analyze(t, "9S 4H 5C 4D 4C").GetFourOfAKind()
	assert.False(t, ok)
	assert.Nil(t, quad)
}

func TestHandAnalyzer_GetFullHouse(t *testing.T) {
	triplet, pair, ok := analyze(t, "4H 4S 9D 4D 9S").GetFullHouse()
	assert.True(t, ok)
	assert.Equal(t, "4H 4S 4D", triplet.String())
	assert.Equal(t, "9D 9S", pair.String())

	triplet, pair, ok = analyze(t, "4H 4S 9D 4D 8S").GetFullHouse()
	assert.False(t, ok)
	assert.Nil(t, triplet)
	assert.Nil(t, pair)

	_, _, ok = analyze(t, "4H 4S 9D 9C 8S").GetFullHouse()
	assert.False(t, ok)
}

func TestHandAnalyzer_GetFlush(t *testing.T) {
	cards, ok := analyze(t, "2C 9C 4C KC 6C").GetFlush()
	assert.True(t, ok)
	assert.Equal(t, "KC 9C 6C 4C 2C", cards.String())

	cards, ok = analyze(t, "2C 3C 4C 5C 6D").GetFlush()
	assert.False(t, ok)
	assert.Nil(t, cards)
}

func TestHandAnalyzer_GetStraight(t *testing.T) {
	cards, ok := analyze(t, "2C 3D 4H 5S 6C").GetStraight()
	assert.True(t, ok)
	assert.Equal(t, "6C 5S 4H 3D 2C", cards.String())

	cards, ok = analyze(t, "2C 3D 4S 5H AS").GetStraight()
	assert.True(t, ok)
	assert.Equal(t, "5H 4S 3D 2C AS", cards.String())
	assert.Equal(t, deck.LowAce, cards[4].Rank)

	cards, ok = analyze(t, "10C JD QS KH AS").GetStraight()
	assert.True(t, ok)
	assert.Equal(t, deck.Ace, cards[0].Rank)

	// no wrapping around the ace
	_, ok = analyze(t, "QC KD AS 2H 3S").GetStraight()
	assert.False(t, ok)

	_, ok = analyze(t, "2C 3D 4S 5H 7S").GetStraight()
	assert.False(t, ok)

	_, ok = analyze(t, "2C 2D 3S 4H 5S").GetStraight()
	assert.False(t, ok)
}

func TestHandAnalyzer_GetThreeOfAKind(t *testing.T) {
	triplet, kickers, ok := analyze(t, "2C 5C 5H 5S 6D").GetThreeOfAKind()
	assert.True(t, ok)
	assert.Equal(t, "5C 5H 5S", triplet.String())
	assert.Equal(t, "6D 2C", kickers.String())

	triplet, kickers, ok = analyze(t, "2C 3C 4H 4S 2D").GetThreeOfAKind()
	assert.False(t, ok)
	assert.Nil(t, triplet)
	assert.Nil(t, kickers)
}

func TestHandAnalyzer_GetTwoPair(t *testing.T) {
	high, low, kicker, ok := analyze(t, "5C 5D 6H 6D 3H").GetTwoPair()
	assert.True(t, ok)
	assert.Equal(t, "6H 6D", high.String())
	assert.Equal(t, "5C 5D", low.String())
	assert.Equal(t, "3H", kicker.String())

	high, low, kicker, ok = analyze(t, "2S AH 2D AD 3H").GetTwoPair()
	assert.True(t, ok)
	assert.Equal(t, deck.Ace, high[0].Rank)
	assert.Equal(t, 2, low[0].Rank)
	assert.Equal(t, 3, kicker.Rank)

	high, low, _, ok = analyze(t, "2C 2D 3H 4H 5D").GetTwoPair()
	assert.False(t, ok)
	assert.Nil(t, high)
	assert.Nil(t, low)
}

func TestHandAnalyzer_GetPair(t *testing.T) {
	pair, kickers, ok := analyze(t, "2C 5C 2H 9H 6D").GetPair()
	assert.True(t, ok)
	assert.Equal(t, "2C 2H", pair.String())
	assert.Equal(t, "9H 6D 5C", kickers.String())

	pair, kickers, ok = analyze(t, "2C 3C 4H 5H 7D").GetPair()
	assert.False(t, ok)
	assert.Nil(t, pair)
	assert.Nil(t, kickers)
}

func TestHandAnalyzer_GetClassification(t *testing.T) {
	tests := []struct {
		hand     string
		category Category
	}{
		{"4H 5H 2H 3H AH", StraightFlush},
		{"10S JS QS KS AS", StraightFlush},
		{"2C 3C 3D 3H 3S", FourOfAKind},
		{"2C 2D 2H 3C 3H", FullHouse},
		{"2C 4C 9C 5C 8C", Flush},
		{"QS KS AS 2S 3S", Flush},
		{"3C 4D 5H 6S 7C", Straight},
		{"AC 2D 3H 4S 5C", Straight},
		{"2C 2D 2H 3C 4H", ThreeOfAKind},
		{"2C 2D 3C 3H 4H", TwoPair},
		{"2C 2D 3C 4C 5H", OnePair},
		{"2C 4C KC 5C 8H", HighCard},
		{"AS KD QC JH 2S", HighCard},
	}

	for _, test := range tests {
		c := analyze(t, test.hand).GetClassification()
		assert.Equal(t, test.category, c.Category(), test.hand)
	}
}

func TestHandAnalyzer_classificationGroups(t *testing.T) {
	c := analyze(t, "AH KH 4C 4S 4D").GetClassification()
	three, ok := c.(ThreeOfAKindHand)
	if assert.True(t, ok) {
		assert.Equal(t, "4C 4S 4D", three.Triplet.String())
		assert.Equal(t, "AH KH", three.Kickers.String())
	}

	c = analyze(t, "8H 8S 8D 8C JD").GetClassification()
	four, ok := c.(FourOfAKindHand)
	if assert.True(t, ok) {
		assert.Equal(t, 4, len(four.Quad))
		assert.Equal(t, "JD", four.Kicker.String())
	}

	c = analyze(t, "AH 2H 3H 4H 5H").GetClassification()
	assert.Equal(t, []Group{{Name: "cards", Cards: cardsFromString(t, "5H 4H 3H 2H AH")}}, normalizeLowAce(c.Groups()))
}

// normalizeLowAce maps ace-low cards back to aces so groups can be compared to parsed cards
func normalizeLowAce(groups []Group) []Group {
	out := make([]Group, len(groups))
	for i, g := range groups {
		cards := g.Cards.Clone()
		for j := range cards {
			if cards[j].Rank == deck.LowAce {
				cards[j].Rank = deck.Ace
			}
		}

		out[i] = Group{Name: g.Name, Cards: cards}
	}

	return out
}

func Test_nOfAKind(t *testing.T) {
	group, rest, ok := nOfAKind(cardsFromString(t, "9D 9S 4H 4S 4D"), 3)
	assert.True(t, ok)
	assert.Equal(t, "4H 4S 4D", group.String())
	assert.Equal(t, "9D 9S", rest.String())

	_, _, ok = nOfAKind(cardsFromString(t, "9D 9S 4H 4S 4D"), 4)
	assert.False(t, ok)

	_, _, ok = nOfAKind(cardsFromString(t, "9D"), 2)
	assert.False(t, ok)

	_, _, ok = nOfAKind(cardsFromString(t, "9D 9S"), 0)
	assert.False(t, ok)
}

func Test_combinations(t *testing.T) {
	var got [][]int
	combinations(4, 2, func(indexes []int) bool {
		got = append(got, append([]int(nil), indexes...))
		return true
	})

	assert.Equal(t, [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}, got)

	count := 0
	combinations(5, 3, func([]int) bool {
		count++
		return count < 4
	})
	assert.Equal(t, 4, count)
}

func Test_sequence(t *testing.T) {
	cards, ok := sequence(cardsFromString(t, "KH"))
	assert.True(t, ok)
	assert.Equal(t, "KH", cards.String())

	_, ok = sequence(deck.Hand{})
	assert.False(t, ok)

	cards, ok = sequence(cardsFromString(t, "AH 2C"))
	assert.True(t, ok)
	assert.Equal(t, 2, cards[0].Rank)
	assert.Equal(t, deck.LowAce, cards[1].Rank)

	cards, ok = sequence(cardsFromString(t, "AH KC"))
	assert.True(t, ok)
	assert.Equal(t, deck.Ace, cards[0].Rank)
}

func BenchmarkNewHandAnalyzer(b *testing.B) {
	cards, _ := deck.CardsFromString("3S 5S 6H 7H JC")
	for i := 0; i < b.N; i++ {
		NewHandAnalyzer(cards).GetClassification()
	}
}
