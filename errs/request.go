package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Request & Input-Validation Errors
var (
	ErrInvalidJSON       = errors.New("invalid JSON")
	ErrInvalidField      = errors.New("invalid field")
	ErrUnknownField      = errors.New("unknown field")
	ErrInvalidPagination = errors.New("invalid pagination parameters")
)

func NewInvalidJSONError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrInvalidJSON,
		Details:    "Invalid JSON format",
		Cause:      cause,
		Field:      "payload",
	}
}

func NewInvalidFieldError(fieldName string, reason string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrInvalidField,
		Details:    fmt.Sprintf("Invalid field %s: %s", fieldName, reason),
		Field:      fieldName,
	}
}

// NewUnknownFieldError reports a filter or update key that is not a declared
// attribute of the entity. Unknown keys are rejected, never silently dropped.
func NewUnknownFieldError(entity, fieldName string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrUnknownField,
		Details:    fmt.Sprintf("%q is not an attribute of %s", fieldName, entity),
		Field:      fieldName,
	}
}

func NewInvalidPaginationError(reason string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrInvalidPagination,
		Details:    reason,
		Field:      "pagination",
	}
}

func IsInvalidJSONError(err error) bool {
	return errors.Is(err, ErrInvalidJSON)
}

func IsUnknownFieldError(err error) bool {
	return errors.Is(err, ErrUnknownField)
}

func IsInvalidPaginationError(err error) bool {
	return errors.Is(err, ErrInvalidPagination)
}
