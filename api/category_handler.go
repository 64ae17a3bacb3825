package api

import (
	"net/http"

	"github.com/fundflow/backend/database"
	"github.com/fundflow/backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type categoryHandler struct {
	responder Responder
	logger    zerolog.Logger
	db        *database.Factory
	service   services.CategoriesService
}

func newCategoryHandler(db *database.Factory) categoryHandler {
	logger := log.With().Str("handlerName", "categoryHandler").Logger()

	return categoryHandler{
		responder: NewResponder(logger),
		logger:    logger,
		db:        db,
		service:   services.NewCategoriesService(),
	}
}

func (h categoryHandler) getAllCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offset, limit, err := parsePagination(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		filters := database.Filters{}
		stringFilter(r, filters, "name")

		uow, err := h.db.Begin(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		defer uow.Close(errAbandoned)
		categories, err := h.service.List(r.Context(), uow, filters, offset, limit)
		if cerr := uow.Close(err); err == nil {
			err = cerr
		}
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, categories)
	}
}

func (h categoryHandler) getCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, err := parseID(r, "categoryID")
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
		category, err := h.service.Get(r.Context(), uow, categoryID)
		if cerr := uow.Close(err); err == nil {
			err = cerr
		}
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, category)
	}
}

func (h categoryHandler) createCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, err := decodeJSON[services.CreateCategoryInput](r)
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
		category, err := h.service.Create(r.Context(), uow, in)
		if cerr := uow.Close(err); err == nil {
			err = cerr
		}
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, category)
	}
}

func (h categoryHandler) updateCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, err := parseID(r, "categoryID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		in, err := decodeJSON[services.UpdateCategoryInput](r)
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
		category, err := h.service.Update(r.Context(), uow, categoryID, in)
		if cerr := uow.Close(err); err == nil {
			err = cerr
		}
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, category)
	}
}

func (h categoryHandler) deleteCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, err := parseID(r, "categoryID")
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
		err = h.service.Delete(r.Context(), uow, categoryID)
		if cerr := uow.Close(err); err == nil {
			err = cerr
		}
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "category deleted successfully",
		})
	}
}
