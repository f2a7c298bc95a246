package handlers

import (
	"encoding/json"
	"net/http"

	"gorm.io/gorm"

	"github.com/diewo77/vendor-tracker/internal/httpx"
	"github.com/diewo77/vendor-tracker/internal/models"
	"github.com/diewo77/vendor-tracker/internal/search"
	"github.com/diewo77/vendor-tracker/internal/store"
	"github.com/diewo77/vendor-tracker/internal/views"
)

// ClientHandler serves the /client/* routes, keeping the legacy route names
// the existing frontends call.
type ClientHandler struct {
	Clients   *store.ClientStore
	Links     *store.LinkStore
	Addresses *store.AddressStore
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{
		Clients:   store.NewClientStore(db),
		Links:     store.NewLinkStore(db),
		Addresses: store.NewAddressStore(db),
	}
}

type clientRequest struct {
	Name          string `json:"name"`
	DomainID      uint   `json:"domain_id"`
	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	State         string `json:"state"`
	Country       string `json:"country"`
	Zipcode       string `json:"zipcode"`
	ContactName   string `json:"contact_name"`
	ContactEmail  string `json:"contact_email"`
	ContactPhone  string `json:"contact_phone"`
}

// Add: POST /client/AddClient/
func (h *ClientHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req clientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	c := models.Client{
		Name:          req.Name,
		DomainID:      req.DomainID,
		StreetAddress: req.StreetAddress,
		City:          req.City,
		State:         req.State,
		Country:       req.Country,
		Zipcode:       req.Zipcode,
		ContactName:   req.ContactName,
		ContactEmail:  req.ContactEmail,
		ContactPhone:  req.ContactPhone,
	}
	if err := h.Clients.Create(&c); err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, c)
}

// List: GET /client/GetClient/
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.Clients.List()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, clients)
}

// GetByID: GET /client/GetClientByID/{id}/ returns the full detail payload:
// entity, addresses and annotated vendor links.
func (h *ClientHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	c, err := h.Clients.Get(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	addrs, err := h.Addresses.ForClient(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	links, err := h.Links.LinksForClient(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, views.NewClientDetail(*c, addrs, links))
}

// Update: PUT /client/UpdateClient/{id}/
func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	var req struct {
		Name          *string `json:"name"`
		DomainID      *uint   `json:"domain_id"`
		StreetAddress *string `json:"street_address"`
		City          *string `json:"city"`
		State         *string `json:"state"`
		Country       *string `json:"country"`
		Zipcode       *string `json:"zipcode"`
		ContactName   *string `json:"contact_name"`
		ContactEmail  *string `json:"contact_email"`
		ContactPhone  *string `json:"contact_phone"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	c, err := h.Clients.Update(id, store.ClientUpdate{
		Name:          req.Name,
		DomainID:      req.DomainID,
		StreetAddress: req.StreetAddress,
		City:          req.City,
		State:         req.State,
		Country:       req.Country,
		Zipcode:       req.Zipcode,
		ContactName:   req.ContactName,
		ContactEmail:  req.ContactEmail,
		ContactPhone:  req.ContactPhone,
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, c)
}

// Delete: DELETE /client/DeleteClient/{id}/
func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	if err := h.Clients.Delete(id); err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "client deleted"})
}

// Search: POST /client/SearchClient/ accepts either the structured predicate
// {state, city, vendor_name} for compatibility, or {q, filters} free-text
// form routed through the query builder.
func (h *ClientHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Q          string   `json:"q"`
		Filters    []string `json:"filters"`
		State      string   `json:"state"`
		City       string   `json:"city"`
		VendorName string   `json:"vendor_name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}

	var q search.Query
	if req.Q != "" || len(req.Filters) > 0 {
		q = search.Build(req.Q, req.Filters)
	} else {
		pred := search.Predicate{}
		if req.State != "" {
			pred[search.FieldState] = req.State
		}
		if req.City != "" {
			pred[search.FieldCity] = req.City
		}
		if req.VendorName != "" {
			pred[search.FieldVendorName] = req.VendorName
		}
		q = search.Query{Predicate: pred}
	}

	var clients []models.Client
	var err error
	switch {
	case q.IsEmpty():
		clients, err = h.Clients.List()
	case q.Local():
		// Name-only mode: filter the default listing locally.
		clients, err = h.Clients.List()
		if err == nil {
			kept := clients[:0]
			for _, c := range clients {
				if search.MatchName(c.Name, q.NameContains) {
					kept = append(kept, c)
				}
			}
			clients = kept
		}
	default:
		clients, err = h.Clients.Search(q.Predicate)
	}
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"count": len(clients), "results": clients})
}

// Domains: GET /client/domains/
func (h *ClientHandler) Domains(w http.ResponseWriter, r *http.Request) {
	type domain struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}
	out := make([]domain, len(models.Domains))
	for i, d := range models.Domains {
		out[i] = domain{ID: i + 1, Name: d}
	}
	httpx.JSON(w, http.StatusOK, out)
}

// AttachVendor: POST /client/AttachVendor/{clientId}/
func (h *ClientHandler) AttachVendor(w http.ResponseWriter, r *http.Request) {
	clientID, ok := pathID(r, "clientId")
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	var req struct {
		VendorID uint   `json:"vendor_id"`
		Role     string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	if req.VendorID == 0 {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", map[string]string{"vendor_id": "required"})
		return
	}
	link, err := h.Links.Attach(clientID, req.VendorID, req.Role)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, link)
}

// DetachVendor: DELETE /client/DetachVendorFromClient/{clientId}/{vendorId}/
// removes every role link for the pair.
func (h *ClientHandler) DetachVendor(w http.ResponseWriter, r *http.Request) {
	clientID, ok1 := pathID(r, "clientId")
	vendorID, ok2 := pathID(r, "vendorId")
	if !ok1 || !ok2 {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	if err := h.Links.Detach(clientID, vendorID); err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "vendor detached"})
}

// VendorsForClient: GET /client/GetVendorsForClient/{id}/
func (h *ClientHandler) VendorsForClient(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	links, err := h.Links.LinksForClient(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	annotated := views.ClientLinks(links)
	httpx.JSON(w, http.StatusOK, map[string]any{"client_id": id, "count": len(annotated), "data": annotated})
}

// RoleLinks: GET /client/GetRoleLinks/{id}/?role=Prime+Vendor populates the
// prime vendor / implementation partner choices for a submission form.
func (h *ClientHandler) RoleLinks(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	links, err := h.Links.RoleLinks(id, r.URL.Query().Get("role"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	annotated := views.ClientLinks(links)
	httpx.JSON(w, http.StatusOK, map[string]any{"client_id": id, "count": len(annotated), "data": annotated})
}

// Stats: GET /client/ClientStats/
func (h *ClientHandler) Stats(w http.ResponseWriter, r *http.Request) {
	total, withVendors, err := h.Clients.Stats()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]int64{
		"total_clients":           total,
		"clients_with_vendors":    withVendors,
		"clients_without_vendors": total - withVendors,
	})
}

type addressRequest struct {
	ClientID      uint   `json:"client_id"`
	VendorID      uint   `json:"vendor_id"`
	AddrID        uint   `json:"addrid"`
	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	State         string `json:"state"`
	Country       string `json:"country"`
	Zipcode       string `json:"zipcode"`
	AddressType   string `json:"address_type"`
	IsPrimary     bool   `json:"is_primary"`
}

// AddAddress: POST /client/AddClientAddress/ (owner id in body, as the
// legacy API does).
func (h *ClientHandler) AddAddress(w http.ResponseWriter, r *http.Request) {
	var req addressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	if req.ClientID == 0 {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", map[string]string{"client_id": "required"})
		return
	}
	a := models.Address{
		ClientID:      &req.ClientID,
		StreetAddress: req.StreetAddress,
		City:          req.City,
		State:         req.State,
		Country:       req.Country,
		Zipcode:       req.Zipcode,
		AddressType:   req.AddressType,
	}
	if err := h.Addresses.Create(&a); err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, a)
}

// GetAddresses: POST /client/GetClientAddresses/ (body-addressed).
func (h *ClientHandler) GetAddresses(w http.ResponseWriter, r *http.Request) {
	var req addressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ClientID == 0 {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", map[string]string{"client_id": "required"})
		return
	}
	addrs, err := h.Addresses.ForClient(req.ClientID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, addrs)
}

// UpdateAddress: PUT /client/UpdateClientAddress/ (body-addressed).
func (h *ClientHandler) UpdateAddress(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AddrID        uint    `json:"addrid"`
		StreetAddress *string `json:"street_address"`
		City          *string `json:"city"`
		State         *string `json:"state"`
		Country       *string `json:"country"`
		Zipcode       *string `json:"zipcode"`
		AddressType   *string `json:"address_type"`
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
		AddressType:   req.AddressType,
		IsPrimary:     req.IsPrimary,
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, a)
}

// DeleteAddress: DELETE /client/DeleteClientAddress/ (body-addressed).
func (h *ClientHandler) DeleteAddress(w http.ResponseWriter, r *http.Request) {
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
