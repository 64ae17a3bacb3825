package api

import (
	"net/http"
	"strconv"

	"github.com/fundflow/backend/database"
	"github.com/fundflow/backend/errs"
	"github.com/go-chi/chi/v5"
)

const (
	defaultLimit = 100
	maxLimit     = 100
)

// parsePagination reads skip/limit query parameters. Violations are client
// errors, never silently clamped.
func parsePagination(r *http.Request) (offset, limit int, err error) {
	offset, limit = 0, defaultLimit

	if raw := r.URL.Query().Get("skip"); raw != "" {
		offset, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, errs.NewInvalidPaginationError("skip must be an integer")
		}
		if offset < 0 {
			return 0, 0, errs.NewInvalidPaginationError("skip must be non-negative")
		}
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, errs.NewInvalidPaginationError("limit must be an integer")
		}
		if limit <= 0 || limit > maxLimit {
			return 0, 0, errs.NewInvalidPaginationError("limit must be between 1 and 100")
		}
	}
	return offset, limit, nil
}

// parseID reads a numeric path parameter.
func parseID(r *http.Request, param string) (int64, error) {
	raw := chi.URLParam(r, param)
	if raw == "" {
		return 0, errs.NewBadRequestError("missing " + param)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.NewBadRequestError("invalid " + param)
	}
	return id, nil
}

// int64Filter adds an equality filter when the query parameter is present.
func int64Filter(r *http.Request, filters database.Filters, name string) error {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return errs.NewInvalidFieldError(name, "must be an integer")
	}
	filters[name] = value
	return nil
}

func stringFilter(r *http.Request, filters database.Filters, name string) {
	if raw := r.URL.Query().Get(name); raw != "" {
		filters[name] = raw
	}
}

func boolFilter(r *http.Request, filters database.Filters, name string) error {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return errs.NewInvalidFieldError(name, "must be a boolean")
	}
	filters[name] = value
	return nil
}
