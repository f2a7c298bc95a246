package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/diewo77/vendor-tracker/internal/models"
)

func TestVendorContactLifecycle(t *testing.T) {
	gdb := setupTestDB(t)
	h := NewVendorHandler(gdb)

	if w := postJSON(t, h.Add, "/vendor/AddVendor/", `{"name":"TechConnect"}`); w.Code != http.StatusCreated {
		t.Fatalf("add vendor: %d", w.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/vendor/AddVendorContact/1/", strings.NewReader(`{"full_name":"Jane Roe","email":"jane@techconnect.com","is_primary":true}`))
	req.SetPathValue("id", "1")
	w := httptest.NewRecorder()
	h.AddContact(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("add contact: %d %s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/vendor/GetVendorContacts/1/", nil)
	req.SetPathValue("id", "1")
	w2 := httptest.NewRecorder()
	h.Contacts(w2, req)
	var payload struct {
		Data []models.Contact `json:"data"`
	}
	if err := json.Unmarshal(w2.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(payload.Data) != 1 || payload.Data[0].FullName != "Jane Roe" {
		t.Fatalf("unexpected contacts: %+v", payload.Data)
	}

	req = httptest.NewRequest(http.MethodPatch, "/vendor/UpdateVendorContact/", strings.NewReader(`{"contact_id":1,"phone":"555-0101"}`))
	w3 := httptest.NewRecorder()
	h.UpdateContact(w3, req)
	if w3.Code != http.StatusOK {
		t.Fatalf("update contact: %d %s", w3.Code, w3.Body.String())
	}

	req = httptest.NewRequest(http.MethodDelete, "/vendor/DeleteVendorContact/", strings.NewReader(`{"contact_id":1}`))
	w4 := httptest.NewRecorder()
	h.DeleteContact(w4, req)
	if w4.Code != http.StatusOK {
		t.Fatalf("delete contact: %d", w4.Code)
	}
}

func TestVendorGetByIDDetailIncludesContacts(t *testing.T) {
	gdb := setupTestDB(t)
	h := NewVendorHandler(gdb)

	postJSON(t, h.Add, "/vendor/AddVendor/", `{"name":"TechConnect","status":"active"}`)
	req := httptest.NewRequest(http.MethodPost, "/vendor/AddVendorContact/1/", strings.NewReader(`{"full_name":"Jane Roe"}`))
	req.SetPathValue("id", "1")
	w := httptest.NewRecorder()
	h.AddContact(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("add contact: %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/vendor/GetVendorByID/1/", nil)
	req.SetPathValue("id", "1")
	w2 := httptest.NewRecorder()
	h.GetByID(w2, req)
	if w2.Code != http.StatusOK {
		t.Fatalf("get vendor: %d %s", w2.Code, w2.Body.String())
	}
	var detail struct {
		Name     string           `json:"name"`
		Contacts []models.Contact `json:"contacts"`
	}
	if err := json.Unmarshal(w2.Body.Bytes(), &detail); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if detail.Name != "TechConnect" || len(detail.Contacts) != 1 {
		t.Fatalf("unexpected detail: %+v", detail)
	}
}

func TestVendorAddRejectsBadStatus(t *testing.T) {
	gdb := setupTestDB(t)
	h := NewVendorHandler(gdb)

	w := postJSON(t, h.Add, "/vendor/AddVendor/", `{"name":"TechConnect","status":"dormant"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d: %s", w.Code, w.Body.String())
	}
}
