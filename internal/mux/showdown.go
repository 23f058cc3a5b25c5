package mux

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
	"showdown-server/pkg/deck"
	"showdown-server/pkg/poker"
)

type showdownPayload struct {
	Hands []string `json:"hands"`
}

type handResult struct {
	Hand     string `json:"hand"`
	Category string `json:"category"`
	Winner   bool   `json:"winner"`
}

type showdownResponse struct {
	Winners []string     `json:"winners"`
	Hands   []handResult `json:"hands"`
}

type classifyPayload struct {
	Hand string `json:"hand"`
}

type groupResult struct {
	Name  string   `json:"name"`
	Cards []string `json:"cards"`
}

type classifyResponse struct {
	Hand     string        `json:"hand"`
	Category string        `json:"category"`
	Groups   []groupResult `json:"groups"`
}

func (m *Mux) postShowdown() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload showdownPayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		if len(payload.Hands) == 0 {
			writeJSONError(w, http.StatusBadRequest, poker.ErrEmptyInput)
			return
		}

		if m.config.maxHands > 0 && len(payload.Hands) > m.config.maxHands {
			writeJSONError(w, http.StatusBadRequest, fmt.Errorf("cannot compare more than %d hands", m.config.maxHands))
			return
		}

		hands, err := m.cache.parseHands(payload.Hands)
		if err != nil {
			writeHandError(w, err)
			return
		}

		best := poker.Best(hands)
		resp := showdownResponse{
			Winners: make([]string, len(best)),
			Hands:   make([]handResult, len(hands)),
		}

		for i, hand := range best {
			resp.Winners[i] = hand.Source
		}

		for i, hand := range hands {
			resp.Hands[i] = handResult{
				Hand:     hand.Source,
				Category: hand.Category().String(),
				Winner:   hand.Equal(best[0]),
			}
		}

		requestLogger(r).WithFields(logrus.Fields{
			"hands":    len(hands),
			"winners":  len(best),
			"category": best[0].Category().String(),
		}).Debug("showdown")

		writeJSON(w, http.StatusOK, resp)
	}
}

func (m *Mux) postClassify() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload classifyPayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		hand, err := m.cache.parseHand(payload.Hand)
		if err != nil {
			writeHandError(w, err)
			return
		}

		groups := hand.Classification.Groups()
		resp := classifyResponse{
			Hand:     hand.Source,
			Category: hand.Category().String(),
			Groups:   make([]groupResult, len(groups)),
		}

		for i, group := range groups {
			resp.Groups[i] = groupResult{
				Name:  group.Name,
				Cards: cardStrings(group.Cards),
			}
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// writeHandError treats malformed hands as a 400, otherwise as a 500
func writeHandError(w http.ResponseWriter, err error) {
	if errors.Is(err, poker.ErrInvalidCardFormat) {
		writeJSONError(w, http.StatusBadRequest, err)
		return
	}

	writeJSONError(w, http.StatusInternalServerError, err)
}

func cardStrings(cards deck.Hand) []string {
	s := make([]string, len(cards))
	for i, card := range cards {
		s[i] = card.String()
	}

	return s
}
