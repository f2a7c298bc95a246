package handlers

import (
	"encoding/json"
	"net/http"

	"gorm.io/gorm"

	"github.com/diewo77/vendor-tracker/internal/httpx"
	"github.com/diewo77/vendor-tracker/internal/models"
	"github.com/diewo77/vendor-tracker/internal/store"
	"github.com/diewo77/vendor-tracker/internal/views"
)

// VendorHandler serves the /vendor/* routes.
type VendorHandler struct {
	Vendors   *store.VendorStore
	Links     *store.LinkStore
	Addresses *store.AddressStore
}

func NewVendorHandler(db *gorm.DB) *VendorHandler {
	return &VendorHandler{
		Vendors:   store.NewVendorStore(db),
		Links:     store.NewLinkStore(db),
		Addresses: store.NewAddressStore(db),
	}
}

// Add: POST /vendor/AddVendor/
func (h *VendorHandler) Add(w http.ResponseWriter, r *http.Request) {
	var v models.Vendor
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	v.ID = 0
	if err := h.Vendors.Create(&v); err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{"message": "vendor created", "data": v})
}

// List: GET /vendor/GetVendor/
func (h *VendorHandler) List(w http.ResponseWriter, r *http.Request) {
	vendors, err := h.Vendors.List()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"data": vendors})
}

// GetByID: GET /vendor/GetVendorByID/{id}/ returns the full detail payload:
// entity, addresses, contacts and annotated client links.
func (h *VendorHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	v, err := h.Vendors.Get(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	addrs, err := h.Addresses.ForVendor(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	contacts, err := h.Vendors.Contacts(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	links, err := h.Links.LinksForVendor(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, views.NewVendorDetail(*v, addrs, contacts, links))
}

// Update: PATCH /vendor/UpdateVendor/{id}/
func (h *VendorHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	var req struct {
		Name          *string `json:"name"`
		Status        *string `json:"status"`
		Website       *string `json:"website"`
		LinkedIn      *string `json:"linkedin"`
		Notes         *string `json:"notes"`
		StreetAddress *string `json:"street_address"`
		City          *string `json:"city"`
		State         *string `json:"state"`
		Country       *string `json:"country"`
		Zipcode       *string `json:"zipcode"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	v, err := h.Vendors.Update(id, store.VendorUpdate{
		Name:          req.Name,
		Status:        req.Status,
		Website:       req.Website,
		LinkedIn:      req.LinkedIn,
		Notes:         req.Notes,
		StreetAddress: req.StreetAddress,
		City:          req.City,
		State:         req.State,
		Country:       req.Country,
		Zipcode:       req.Zipcode,
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"message": "vendor updated", "data": v})
}

// Delete: DELETE /vendor/DeleteVendor/{id}/
func (h *VendorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	if err := h.Vendors.Delete(id); err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "vendor deleted"})
}

// Stats: GET /vendor/VendorStats/
func (h *VendorHandler) Stats(w http.ResponseWriter, r *http.Request) {
	total, active, inactive, err := h.Vendors.Stats()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	vendors, err := h.Vendors.List()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"summary": map[string]int64{
			"total_vendors":    total,
			"active_vendors":   active,
			"inactive_vendors": inactive,
		},
		"vendors": views.VendorSummaries(vendors),
	})
}

// ClientsForVendor: GET /vendor/GetClientsForVendor/{id}/
func (h *VendorHandler) ClientsForVendor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	links, err := h.Links.LinksForVendor(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	annotated := views.VendorLinks(links)
	httpx.JSON(w, http.StatusOK, map[string]any{"vendor_id": id, "count": len(annotated), "data": annotated})
}

// AddContact: POST /vendor/AddVendorContact/{id}/
func (h *VendorHandler) AddContact(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	var c models.Contact
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	c.ID = 0
	if err := h.Vendors.AddContact(id, &c); err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{"message": "contact added", "data": c})
}

// Contacts: GET /vendor/GetVendorContacts/{id}/
func (h *VendorHandler) Contacts(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	contacts, err := h.Vendors.Contacts(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"data": contacts})
}

// UpdateContact: PATCH /vendor/UpdateVendorContact/ (body-addressed).
func (h *VendorHandler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ContactID   uint    `json:"contact_id"`
		FullName    *string `json:"full_name"`
		Email       *string `json:"email"`
		Designation *string `json:"designation"`
		Phone       *string `json:"phone"`
		IsPrimary   *bool   `json:"is_primary"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	if req.ContactID == 0 {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", map[string]string{"contact_id": "required"})
		return
	}
	c, err := h.Vendors.UpdateContact(req.ContactID, store.ContactUpdate{
		FullName:    req.FullName,
		Email:       req.Email,
		Designation: req.Designation,
		Phone:       req.Phone,
		IsPrimary:   req.IsPrimary,
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"message": "contact updated", "data": c})
}

// DeleteContact: DELETE /vendor/DeleteVendorContact/ (body-addressed).
func (h *VendorHandler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ContactID uint `json:"contact_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ContactID == 0 {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", map[string]string{"contact_id": "required"})
		return
	}
	if err := h.Vendors.DeleteContact(req.ContactID); err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "contact deleted"})
}

// AddAddress: POST /vendor/AddVendorAddress/ (body-addressed).
func (h *VendorHandler) AddAddress(w http.ResponseWriter, r *http.Request) {
	var req addressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	if req.VendorID == 0 {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", map[string]string{"vendor_id": "required"})
		return
	}
	a := models.Address{
		VendorID:      &req.VendorID,
		StreetAddress: req.StreetAddress,
		City:          req.City,
		State:         req.State,
		Country:       req.Country,
		Zipcode:       req.Zipcode,
		IsPrimary:     req.IsPrimary,
	}
	if err := h.Addresses.Create(&a); err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, a)
}

// GetAddresses: POST /vendor/GetVendorAddresses/ (body-addressed).
func (h *VendorHandler) GetAddresses(w http.ResponseWriter, r *http.Request) {
	var req addressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.VendorID == 0 {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", map[string]string{"vendor_id": "required"})
		return
	}
	addrs, err := h.Addresses.ForVendor(req.VendorID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, addrs)
}

// UpdateAddress: PATCH /vendor/UpdateVendorAddress/ (body-addressed).
func (h *VendorHandler) UpdateAddress(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AddrID        uint    `json:"addrid"`
		StreetAddress *string `json:"street_address"`
		City          *string `json:"city"`
		State         *string `json:"state"`
		Country       *string `json:"country"`
		Zipcode       *string `json:"zipcode"`
		IsPrimary     *bool   `json:"is_primary"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	if req.AddrID == 0 {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", map[string]string{"addrid": "required"})
		return
	}
	a, err := h.Addresses.Update(req.AddrID, store.AddressUpdate{
		StreetAddress: req.StreetAddress,
		City:          req.City,
		State:         req.State,
		Country:       req.Country,
		Zipcode:       req.Zipcode,
		IsPrimary:     req.IsPrimary,
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, a)
}

// DeleteAddress: DELETE /vendor/DeleteVendorAddress/ (body-addressed).
func (h *VendorHandler) DeleteAddress(w http.ResponseWriter, r *http.Request) {
	var req addressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.AddrID == 0 {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", map[string]string{"addrid": "required"})
		return
	}
	if err := h.Addresses.Delete(req.AddrID); err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "address deleted"})
}
