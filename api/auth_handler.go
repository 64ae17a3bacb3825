package api

import (
	"net/http"
	"time"

	"github.com/fundflow/backend/database"
	"github.com/fundflow/backend/errs"
	"github.com/fundflow/backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	db        *database.Factory
	auth      services.AuthService
	users     services.UsersService
}

func newAuthHandler(db *database.Factory, auth services.AuthService) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		db:        db,
		auth:      auth,
		users:     services.NewUsersService(),
	}
}

func (h authHandler) register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, err := decodeJSON[services.RegisterInput](r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		uow, err := h.db.Begin(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		defer uow.Close(errAbandoned)
		user, err := h.auth.Register(r.Context(), uow, in)
		if cerr := uow.Close(err); err == nil {
			err = cerr
		}
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, user)
	}
}

// login verifies credentials, sets the access_token cookie and returns the
// token in the body for header-based clients.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, err := decodeJSON[services.LoginInput](r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		uow, err := h.db.Begin(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		defer uow.Close(errAbandoned)
		token, user, err := h.auth.Login(r.Context(), uow, in)
		if cerr := uow.Close(err); err == nil {
			err = cerr
		}
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     "access_token",
			Value:    token,
			Path:     "/",
			Expires:  time.Now().Add(24 * time.Hour),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		h.responder.WriteJSON(w, map[string]any{
			"access_token": token,
			"user":         user,
		})
	}
}

// me returns the authenticated user's account.
func (h authHandler) me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := ctxUserID(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.NewNoAccessTokenError())
			return
		}

		uow, err := h.db.Begin(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		defer uow.Close(errAbandoned)
		user, err := h.users.Get(r.Context(), uow, userID)
		if cerr := uow.Close(err); err == nil {
			err = cerr
		}
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, user)
	}
}
