package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/shelf-api/internal/api/shared"
	"github.com/phrazzld/shelf-api/internal/domain"
	"github.com/phrazzld/shelf-api/internal/validation"
)

// UserIDParam is the chi URL parameter holding a user ID.
const UserIDParam = "userID"

// getPathID extracts a positive integer ID from the URL path parameters.
// Returns domain.ErrInvalidID if the parameter is missing or malformed.
func getPathID(r *http.Request, paramName string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, paramName), 10, 64)
	if err != nil || id < 1 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}

// decodeRequest decodes the JSON body into v and writes a 400 response on failure.
// JSON type mismatches are reported like validation failures.
func decodeRequest(w http.ResponseWriter, r *http.Request, v any) bool {
	err := shared.DecodeJSON(w, r, v)
	if err == nil {
		return true
	}

	var vErr *validation.Error
	if errors.As(validation.FromDecodeError(err), &vErr) {
		shared.RespondWithError(w, r, http.StatusBadRequest, vErr.Error())
		return false
	}
	shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
	return false
}
