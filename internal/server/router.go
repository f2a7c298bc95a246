package server

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/diewo77/vendor-tracker/internal/handlers"
	"github.com/diewo77/vendor-tracker/internal/httpx"
	"github.com/diewo77/vendor-tracker/internal/middleware"
)

// New constructs the root http.Handler with all routes and middlewares
// applied. Route names are kept verbatim from the legacy API so existing
// frontends keep working.
func New(db *gorm.DB) http.Handler {
	mux := http.NewServeMux()

	// --- Health endpoints ---
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Exec("SELECT 1").Error; err != nil {
			httpx.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// --- Clients ---
	ch := handlers.NewClientHandler(db)
	mux.HandleFunc("GET /client/domains/{$}", ch.Domains)
	mux.HandleFunc("POST /client/AddClient/{$}", ch.Add)
	mux.HandleFunc("GET /client/GetClient/{$}", ch.List)
	mux.HandleFunc("GET /client/GetClientByID/{id}/{$}", ch.GetByID)
	mux.HandleFunc("PUT /client/UpdateClient/{id}/{$}", ch.Update)
	mux.HandleFunc("DELETE /client/DeleteClient/{id}/{$}", ch.Delete)
	mux.HandleFunc("POST /client/SearchClient/{$}", ch.Search)
	mux.HandleFunc("GET /client/ClientStats/{$}", ch.Stats)
	mux.HandleFunc("POST /client/AttachVendor/{clientId}/{$}", ch.AttachVendor)
	mux.HandleFunc("GET /client/GetVendorsForClient/{id}/{$}", ch.VendorsForClient)
	mux.HandleFunc("GET /client/GetRoleLinks/{id}/{$}", ch.RoleLinks)
	mux.HandleFunc("DELETE /client/DetachVendorFromClient/{clientId}/{vendorId}/{$}", ch.DetachVendor)
	mux.HandleFunc("POST /client/AddClientAddress/{$}", ch.AddAddress)
	mux.HandleFunc("POST /client/GetClientAddresses/{$}", ch.GetAddresses)
	mux.HandleFunc("PUT /client/UpdateClientAddress/{$}", ch.UpdateAddress)
	mux.HandleFunc("DELETE /client/DeleteClientAddress/{$}", ch.DeleteAddress)

	// --- Vendors ---
	vh := handlers.NewVendorHandler(db)
	mux.HandleFunc("POST /vendor/AddVendor/{$}", vh.Add)
	mux.HandleFunc("GET /vendor/GetVendor/{$}", vh.List)
	mux.HandleFunc("GET /vendor/GetVendorByID/{id}/{$}", vh.GetByID)
	mux.HandleFunc("PATCH /vendor/UpdateVendor/{id}/{$}", vh.Update)
	mux.HandleFunc("PUT /vendor/UpdateVendor/{id}/{$}", vh.Update)
	mux.HandleFunc("DELETE /vendor/DeleteVendor/{id}/{$}", vh.Delete)
	mux.HandleFunc("GET /vendor/VendorStats/{$}", vh.Stats)
	mux.HandleFunc("GET /vendor/GetClientsForVendor/{id}/{$}", vh.ClientsForVendor)
	mux.HandleFunc("POST /vendor/AddVendorContact/{id}/{$}", vh.AddContact)
	mux.HandleFunc("GET /vendor/GetVendorContacts/{id}/{$}", vh.Contacts)
	mux.HandleFunc("PATCH /vendor/UpdateVendorContact/{$}", vh.UpdateContact)
	mux.HandleFunc("DELETE /vendor/DeleteVendorContact/{$}", vh.DeleteContact)
	mux.HandleFunc("POST /vendor/AddVendorAddress/{$}", vh.AddAddress)
	mux.HandleFunc("POST /vendor/GetVendorAddresses/{$}", vh.GetAddresses)
	mux.HandleFunc("PATCH /vendor/UpdateVendorAddress/{$}", vh.UpdateAddress)
	mux.HandleFunc("DELETE /vendor/DeleteVendorAddress/{$}", vh.DeleteAddress)

	// --- Sales ---
	sh := handlers.NewSaleHandler(db)
	mux.HandleFunc("POST /sale/AddSkill/{$}", sh.AddSkill)
	mux.HandleFunc("GET /sale/GetSkill/{$}", sh.Skills)
	mux.HandleFunc("POST /sale/AddConsultant/{$}", sh.AddConsultant)
	mux.HandleFunc("GET /sale/GetAllConsultants/{$}", sh.Consultants)
	mux.HandleFunc("POST /sale/AddSubmission/{$}", sh.AddSubmission)
	mux.HandleFunc("PUT /sale/UpdateSubmission/{$}", sh.UpdateSubmission)
	mux.HandleFunc("PUT /sale/UpdateVendorResponse/{$}", sh.UpdateVendorResponse)
	mux.HandleFunc("GET /sale/GetAllSubmissions/{$}", sh.List)
	mux.HandleFunc("GET /sale/GetSubmissionByID/{id}/{$}", sh.GetByID)
	mux.HandleFunc("GET /sale/GetSubmissionByClient/{id}/{$}", sh.ByClient)
	mux.HandleFunc("GET /sale/GetSubmissionByVendor/{id}/{$}", sh.ByVendor)
	mux.HandleFunc("GET /sale/GetSubmissionByConsultant/{id}/{$}", sh.ByConsultant)
	mux.HandleFunc("GET /sale/GetSubmissionByMarketer/{id}/{$}", sh.ByMarketer)
	mux.HandleFunc("GET /sale/GetSubmissionReport/{$}", sh.Report)

	// --- Admin ---
	ah := handlers.NewAdminHandler(db)
	mux.HandleFunc("POST /admin/AddMarketer/{$}", ah.AddMarketer)
	mux.HandleFunc("GET /admin/GetMarketer/{$}", ah.Marketers)

	return middleware.RequestID(middleware.AccessLog(mux))
}
