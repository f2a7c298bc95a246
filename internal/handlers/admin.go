package handlers

import (
	"encoding/json"
	"net/http"

	"gorm.io/gorm"

	"github.com/diewo77/vendor-tracker/internal/httpx"
	"github.com/diewo77/vendor-tracker/internal/models"
	"github.com/diewo77/vendor-tracker/internal/store"
)

// AdminHandler serves the /admin/* routes (marketer directory).
type AdminHandler struct {
	Refs *store.ReferenceStore
}

func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{Refs: store.NewReferenceStore(db)}
}

// AddMarketer: POST /admin/AddMarketer/
func (h *AdminHandler) AddMarketer(w http.ResponseWriter, r *http.Request) {
	var m models.Marketer
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	m.ID = 0
	if err := h.Refs.AddMarketer(&m); err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{"message": "marketer added", "data": m})
}

// Marketers: GET /admin/GetMarketer/
func (h *AdminHandler) Marketers(w http.ResponseWriter, r *http.Request) {
	ms, err := h.Refs.Marketers()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"marketers": ms})
}
