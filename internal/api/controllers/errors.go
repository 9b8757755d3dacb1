package apicontrollers

import (
	"net/http"

	"github.com/drujensen/agenthub/internal/domain/errs"
)

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch err.(type) {
	case *errs.ValidationError:
		return http.StatusBadRequest
	case *errs.NotFoundError:
		return http.StatusNotFound
	case *errs.BusyError, *errs.DuplicateError:
		return http.StatusConflict
	case *errs.CanceledError:
		return http.StatusRequestTimeout
	default:
		return http.StatusInternalServerError
	}
}
