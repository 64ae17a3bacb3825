package api

import (
	"encoding/json"
	"net/http"

	"github.com/fundflow/backend/database"
	"github.com/fundflow/backend/errs"
	"github.com/fundflow/backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// decodeJSON decodes a request body into a typed payload.
func decodeJSON[T any](r *http.Request) (T, error) {
	var in T
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		return in, errs.NewInvalidJSONError(err)
	}
	return in, nil
}

type projectHandler struct {
	responder Responder
	logger    zerolog.Logger
	db        *database.Factory
	service   services.ProjectsService
}

func newProjectHandler(db *database.Factory) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder: NewResponder(logger),
		logger:    logger,
		db:        db,
		service:   services.NewProjectsService(),
	}
}

// getAllProjects lists projects with pagination and equality filters on
// creator_id, category_id and is_active.
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offset, limit, err := parsePagination(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		filters := database.Filters{}
		if err := int64Filter(r, filters, "creator_id"); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := int64Filter(r, filters, "category_id"); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := boolFilter(r, filters, "is_active"); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		uow, err := h.db.Begin(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		defer uow.Close(errAbandoned)
		projects, err := h.service.List(r.Context(), uow, filters, offset, limit)
		if cerr := uow.Close(err); err == nil {
			err = cerr
		}
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, projects)
	}
}

func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseID(r, "projectID")
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
		project, err := h.service.Get(r.Context(), uow, projectID)
		if cerr := uow.Close(err); err == nil {
			err = cerr
		}
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, err := decodeJSON[services.CreateProjectInput](r)
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
		project, err := h.service.Create(r.Context(), uow, in)
		if cerr := uow.Close(err); err == nil {
			err = cerr
		}
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, project)
	}
}

func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseID(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		in, err := decodeJSON[services.UpdateProjectInput](r)
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
		project, err := h.service.Update(r.Context(), uow, projectID, in)
		if cerr := uow.Close(err); err == nil {
			err = cerr
		}
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseID(r, "projectID")
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
		err = h.service.Delete(r.Context(), uow, projectID)
		if cerr := uow.Close(err); err == nil {
			err = cerr
		}
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project deleted successfully",
		})
	}
}
