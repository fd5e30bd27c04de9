package custom_error

import "net/http"

// StatusFor maps the error taxonomy onto HTTP status codes.
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case IsValidation(err):
		return http.StatusBadRequest
	case IsNotFound(err):
		return http.StatusNotFound
	}
	if _, ok := AsInsufficientStock(err); ok {
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
