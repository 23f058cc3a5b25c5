package mux

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	appconfig "showdown-server/internal/config"
)

type ctxKey int

const (
	ctxRequestIDKey ctxKey = iota
)

const requestIDHeader = "X-Request-ID"

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	config  config
	version string
	cache   *handCache
}

type config struct {
	// maxHands is the most hands a single showdown may compare
	maxHands int
}

// NewMux returns a new HTTP mux
func NewMux(version string) *Mux {
	cfg := appconfig.Instance()

	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		config: config{
			maxHands: cfg.MaxHands,
		},
		cache: newHandCache(
			time.Duration(cfg.Cache.TTLSeconds)*time.Second,
			time.Duration(cfg.Cache.CleanupSeconds)*time.Second,
		),
	}

	this.Router.Use(this.requestIDMiddleware)

	{
		r := this.Router
		r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
		r.Methods(http.MethodPost).Path("/showdown").Handler(this.postShowdown())
		r.Methods(http.MethodPost).Path("/classify").Handler(this.postClassify())
	}

	return this
}

// requestIDMiddleware tags every request with an id, reusing the caller's id when it is a valid UUID
func (m *Mux) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.New().String()
		}

		w.Header().Set(requestIDHeader, id)
		newCtx := context.WithValue(r.Context(), ctxRequestIDKey, id)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}

func requestLogger(r *http.Request) *logrus.Entry {
	id, _ := r.Context().Value(ctxRequestIDKey).(string)
	return logrus.WithField("requestID", id)
}
