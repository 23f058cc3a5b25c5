package mux

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
	"showdown-server/pkg/poker"
)

// handCache keeps classified hands by their text
// Hands are immutable once parsed, so one value can be shared across requests.
type handCache struct {
	cache *gocache.Cache
}

func newHandCache(ttl, cleanupInterval time.Duration) *handCache {
	return &handCache{
		cache: gocache.New(ttl, cleanupInterval),
	}
}

// parseHand returns the cached hand for text, parsing and caching it on a miss
// Invalid hands are never cached.
func (c *handCache) parseHand(text string) (*poker.Hand, error) {
	if val, found := c.cache.Get(text); found {
		return val.(*poker.Hand), nil
	}

	hand, err := poker.ParseHand(text)
	if err != nil {
		return nil, err
	}

	c.cache.SetDefault(text, hand)
	return hand, nil
}

// parseHands parses every text, stopping at the first error
func (c *handCache) parseHands(texts []string) ([]*poker.Hand, error) {
	hands := make([]*poker.Hand, len(texts))
	for i, text := range texts {
		hand, err := c.parseHand(text)
		if err != nil {
			return nil, err
		}

		hands[i] = hand
	}

	return hands, nil
}

func (c *handCache) len() int {
	return c.cache.ItemCount()
}
