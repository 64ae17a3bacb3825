package api

import (
	"net/http"

	"github.com/fundflow/backend/database"
	"github.com/fundflow/backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type roleHandler struct {
	responder Responder
	logger    zerolog.Logger
	db        *database.Factory
	service   services.RolesService
}

func newRoleHandler(db *database.Factory) roleHandler {
	logger := log.With().Str("handlerName", "roleHandler").Logger()

	return roleHandler{
		responder: NewResponder(logger),
		logger:    logger,
		db:        db,
		service:   services.NewRolesService(),
	}
}

func (h roleHandler) getAllRoles() http.HandlerFunc {
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
		roles, err := h.service.List(r.Context(), uow, filters, offset, limit)
		if cerr := uow.Close(err); err == nil {
			err = cerr
		}
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, roles)
	}
}

// getRole returns a role with its users eagerly attached.
func (h roleHandler) getRole() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		roleID, err := parseID(r, "roleID")
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
		role, err := h.service.Get(r.Context(), uow, roleID)
		if cerr := uow.Close(err); err == nil {
			err = cerr
		}
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, role)
	}
}

func (h roleHandler) createRole() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, err := decodeJSON[services.CreateRoleInput](r)
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
		role, err := h.service.Create(r.Context(), uow, in)
		if cerr := uow.Close(err); err == nil {
			err = cerr
		}
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, role)
	}
}

func (h roleHandler) updateRole() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		roleID, err := parseID(r, "roleID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		in, err := decodeJSON[services.UpdateRoleInput](r)
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
		role, err := h.service.Update(r.Context(), uow, roleID, in)
		if cerr := uow.Close(err); err == nil {
			err = cerr
		}
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, role)
	}
}

func (h roleHandler) deleteRole() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		roleID, err := parseID(r, "roleID")
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
		err = h.service.Delete(r.Context(), uow, roleID)
		if cerr := uow.Close(err); err == nil {
			err = cerr
		}
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "role deleted successfully",
		})
	}
}
