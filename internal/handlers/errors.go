package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/diewo77/vendor-tracker/internal/httpx"
	"github.com/diewo77/vendor-tracker/internal/store"
)

// writeStoreError maps the store's typed errors onto status codes. Anything
// untyped is a 500; the caller-visible contract is the error kind plus a
// human-readable message.
func writeStoreError(w http.ResponseWriter, err error) {
	var ve *store.ValidationError
	var nfe *store.NotFoundError
	var ce *store.ConflictError
	switch {
	case errors.As(err, &ve):
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", map[string]string{ve.Field: ve.Reason})
	case errors.As(err, &nfe):
		httpx.JSONError(w, http.StatusNotFound, "not_found", nfe.Error())
	case errors.As(err, &ce):
		httpx.JSONError(w, http.StatusConflict, "conflict", ce.Message)
	default:
		httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
	}
}

// pathID parses a positive numeric path value.
func pathID(r *http.Request, name string) (uint, bool) {
	n, err := strconv.Atoi(r.PathValue(name))
	if err != nil || n <= 0 {
		return 0, false
	}
	return uint(n), true
}
