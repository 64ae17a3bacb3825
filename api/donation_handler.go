package api

import (
	"net/http"

	"github.com/fundflow/backend/database"
	"github.com/fundflow/backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type donationHandler struct {
	responder Responder
	logger    zerolog.Logger
	db        *database.Factory
	service   services.DonationsService
}

func newDonationHandler(db *database.Factory) donationHandler {
	logger := log.With().Str("handlerName", "donationHandler").Logger()

	return donationHandler{
		responder: NewResponder(logger),
		logger:    logger,
		db:        db,
		service:   services.NewDonationsService(),
	}
}

// getAllDonations lists donations filtered by user_id and project_id.
func (h donationHandler) getAllDonations() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offset, limit, err := parsePagination(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		filters := database.Filters{}
		if err := int64Filter(r, filters, "user_id"); err != nil {
			h.responder.WriteError(w, err)
			return
		}
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
		donations, err := h.service.List(r.Context(), uow, filters, offset, limit)
		if cerr := uow.Close(err); err == nil {
			err = cerr
		}
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, donations)
	}
}

func (h donationHandler) getDonation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		donationID, err := parseID(r, "donationID")
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
		donation, err := h.service.Get(r.Context(), uow, donationID)
		if cerr := uow.Close(err); err == nil {
			err = cerr
		}
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, donation)
	}
}

func (h donationHandler) createDonation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, err := decodeJSON[services.CreateDonationInput](r)
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
		donation, err := h.service.Create(r.Context(), uow, in)
		if cerr := uow.Close(err); err == nil {
			err = cerr
		}
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, donation)
	}
}

func (h donationHandler) updateDonation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		donationID, err := parseID(r, "donationID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		in, err := decodeJSON[services.UpdateDonationInput](r)
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
		donation, err := h.service.Update(r.Context(), uow, donationID, in)
		if cerr := uow.Close(err); err == nil {
			err = cerr
		}
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, donation)
	}
}

func (h donationHandler) deleteDonation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		donationID, err := parseID(r, "donationID")
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
		err = h.service.Delete(r.Context(), uow, donationID)
		if cerr := uow.Close(err); err == nil {
			err = cerr
		}
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "donation deleted successfully",
		})
	}
}
