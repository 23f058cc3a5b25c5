package poker

import (
	"errors"

	"showdown-server/pkg/deck"
)

// ErrInvalidCardFormat is returned when a card token or a hand cannot be parsed
var ErrInvalidCardFormat = deck.ErrInvalidCardFormat

// ErrEmptyInput is returned when a winner is requested from no hands
var ErrEmptyInput = errors.New("no hands to compare")
