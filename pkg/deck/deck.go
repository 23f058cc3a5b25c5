package deck

// Standard returns the 52 cards of a standard deck, ordered by suit then rank
// The deck is never shuffled; it is the universe of valid cards.
func Standard() Hand {
	cards := make(Hand, 0, 52)
	for _, suit := range []Suit{Clubs, Diamonds, Hearts, Spades} {
		for rank := 2; rank <= Ace; rank++ {
			cards = append(cards, Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	return cards
}
