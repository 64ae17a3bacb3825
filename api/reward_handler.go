package api

import (
	"net/http"

	"github.com/fundflow/backend/database"
	"github.com/fundflow/backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type rewardHandler struct {
	responder Responder
	logger    zerolog.Logger
	db        *database.Factory
	service   services.RewardsService
}

func newRewardHandler(db *database.Factory) rewardHandler {
	logger := log.With().Str("handlerName", "rewardHandler").Logger()

	return rewardHandler{
		responder: NewResponder(logger),
		logger:    logger,
		db:        db,
		service:   services.NewRewardsService(),
	}
}

func (h rewardHandler) getAllRewards() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offset, limit, err := parsePagination(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		filters := database.Filters{}
		if err := int64Filter(r, filters, "project_id"); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		uow, err := h.db.Begin(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		defer uow.Close(errAbandoned)
		rewards, err := h.service.List(r.Context(), uow, filters, offset, limit)
		if cerr := uow.Close(err); err == nil {
			err = cerr
		}
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, rewards)
	}
}

func (h rewardHandler) getReward() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rewardID, err := parseID(r, "rewardID")
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
		reward, err := h.service.Get(r.Context(), uow, rewardID)
		if cerr := uow.Close(err); err == nil {
			err = cerr
		}
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, reward)
	}
}

func (h rewardHandler) createReward() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, err := decodeJSON[services.CreateRewardInput](r)
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
		reward, err := h.service.Create(r.Context(), uow, in)
		if cerr := uow.Close(err); err == nil {
			err = cerr
		}
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, reward)
	}
}

func (h rewardHandler) updateReward() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rewardID, err := parseID(r, "rewardID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		in, err := decodeJSON[services.UpdateRewardInput](r)
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
		reward, err := h.service.Update(r.Context(), uow, rewardID, in)
		if cerr := uow.Close(err); err == nil {
			err = cerr
		}
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, reward)
	}
}

func (h rewardHandler) deleteReward() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rewardID, err := parseID(r, "rewardID")
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
		err = h.service.Delete(r.Context(), uow, rewardID)
		if cerr := uow.Close(err); err == nil {
			err = cerr
		}
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "reward deleted successfully",
		})
	}
}
