package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/diewo77/vendor-tracker/internal/db"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("db open: %v", err)
	}
	if err := db.AutoMigrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return New(gdb)
}

func TestHealthz(t *testing.T) {
	h := newTestRouter(t)
	r := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	if rid := w.Header().Get("X-Request-ID"); rid == "" {
		t.Fatal("expected request id header")
	}
}

func TestLegacyClientRoutes(t *testing.T) {
	h := newTestRouter(t)

	do := func(method, target, body string) *httptest.ResponseRecorder {
		var r *http.Request
		if body == "" {
			r = httptest.NewRequest(method, target, nil)
		} else {
			r = httptest.NewRequest(method, target, strings.NewReader(body))
			r.Header.Set("Content-Type", "application/json")
		}
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		return w
	}

	if w := do(http.MethodPost, "/client/AddClient/", `{"name":"Acme"}`); w.Code != http.StatusCreated {
		t.Fatalf("AddClient: %d %s", w.Code, w.Body.String())
	}
	if w := do(http.MethodPost, "/vendor/AddVendor/", `{"name":"TechConnect"}`); w.Code != http.StatusCreated {
		t.Fatalf("AddVendor: %d %s", w.Code, w.Body.String())
	}
	if w := do(http.MethodPost, "/client/AttachVendor/1/", `{"vendor_id":1,"role":"Vendor"}`); w.Code != http.StatusCreated {
		t.Fatalf("AttachVendor: %d %s", w.Code, w.Body.String())
	}

	w := do(http.MethodGet, "/client/GetVendorsForClient/1/", "")
	if w.Code != http.StatusOK {
		t.Fatalf("GetVendorsForClient: %d", w.Code)
	}
	var payload struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Count != 1 {
		t.Fatalf("expected 1 link, got %d", payload.Count)
	}

	if w := do(http.MethodDelete, "/client/DetachVendorFromClient/1/1/", ""); w.Code != http.StatusOK {
		t.Fatalf("DetachVendor: %d %s", w.Code, w.Body.String())
	}
	if w := do(http.MethodDelete, "/client/DeleteClient/1/", ""); w.Code != http.StatusOK {
		t.Fatalf("DeleteClient: %d %s", w.Code, w.Body.String())
	}

	// Trailing slashes are part of the route contract.
	if w := do(http.MethodGet, "/client/GetClient", ""); w.Code == http.StatusOK {
		t.Fatal("expected redirect or 404 without trailing slash")
	}
}

func TestVendorUpdateAcceptsPatchAndPut(t *testing.T) {
	h := newTestRouter(t)

	do := func(method, target, body string) *httptest.ResponseRecorder {
		r := httptest.NewRequest(method, target, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		return w
	}

	if w := do(http.MethodPost, "/vendor/AddVendor/", `{"name":"TechConnect"}`); w.Code != http.StatusCreated {
		t.Fatalf("AddVendor: %d", w.Code)
	}
	if w := do(http.MethodPatch, "/vendor/UpdateVendor/1/", `{"status":"inactive"}`); w.Code != http.StatusOK {
		t.Fatalf("PATCH update: %d %s", w.Code, w.Body.String())
	}
	if w := do(http.MethodPut, "/vendor/UpdateVendor/1/", `{"status":"active"}`); w.Code != http.StatusOK {
		t.Fatalf("PUT update: %d %s", w.Code, w.Body.String())
	}
}
