package api

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

type healthHandler struct {
	responder   Responder
	startupTime time.Time
}

func newHealthHandler(startupTime time.Time) healthHandler {
	logger := log.With().Str("handlerName", "healthHandler").Logger()
	return healthHandler{
		responder:   NewResponder(logger),
		startupTime: startupTime,
	}
}

// status is the liveness probe.
func (h healthHandler) status() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, map[string]any{
			"status":         "ok",
			"message":        "server is running",
			"uptime_seconds": int(time.Since(h.startupTime).Seconds()),
		})
	}
}
