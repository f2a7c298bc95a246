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

// SaleHandler serves the /sale/* routes: skills, consultants and the
// submission pipeline.
type SaleHandler struct {
	Refs        *store.ReferenceStore
	Submissions *store.SubmissionStore
}

func NewSaleHandler(db *gorm.DB) *SaleHandler {
	return &SaleHandler{
		Refs:        store.NewReferenceStore(db),
		Submissions: store.NewSubmissionStore(db),
	}
}

// AddSkill: POST /sale/AddSkill/
func (h *SaleHandler) AddSkill(w http.ResponseWriter, r *http.Request) {
	var sk models.Skill
	if err := json.NewDecoder(r.Body).Decode(&sk); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	sk.ID = 0
	if err := h.Refs.AddSkill(&sk); err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{"message": "skill added", "data": sk})
}

// Skills: GET /sale/GetSkill/
func (h *SaleHandler) Skills(w http.ResponseWriter, r *http.Request) {
	skills, err := h.Refs.Skills()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"skills": skills})
}

// AddConsultant: POST /sale/AddConsultant/
func (h *SaleHandler) AddConsultant(w http.ResponseWriter, r *http.Request) {
	var c models.Consultant
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	c.ID = 0
	if err := h.Refs.AddConsultant(&c); err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{"message": "consultant added", "data": c})
}

// Consultants: GET /sale/GetAllConsultants/
func (h *SaleHandler) Consultants(w http.ResponseWriter, r *http.Request) {
	cs, err := h.Refs.Consultants()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"consultants": cs})
}

type submissionRequest struct {
	ConsultantID            uint   `json:"consultant_id"`
	SkillID                 uint   `json:"skill_id"`
	ClientID                uint   `json:"client_id"`
	VendorID                uint   `json:"vendor_id"`
	PrimeVendorID           *uint  `json:"prime_vendor_id"`
	ImplementationPartnerID *uint  `json:"implementation_partner_id"`
	MarketerID              uint   `json:"marketer_id"`
	Comments                string `json:"comments"`
	Status                  string `json:"status"`
}

// AddSubmission: POST /sale/AddSubmission/
func (h *SaleHandler) AddSubmission(w http.ResponseWriter, r *http.Request) {
	var req submissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	sub := models.Submission{
		ConsultantID:            req.ConsultantID,
		SkillID:                 req.SkillID,
		ClientID:                req.ClientID,
		VendorID:                req.VendorID,
		PrimeVendorID:           req.PrimeVendorID,
		ImplementationPartnerID: req.ImplementationPartnerID,
		MarketerID:              req.MarketerID,
		Comments:                req.Comments,
		Status:                  req.Status,
	}
	if err := h.Submissions.Create(&sub); err != nil {
		writeStoreError(w, err)
		return
	}
	created, err := h.Submissions.Get(sub.ID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, views.NewSubmissionRow(*created))
}

// UpdateSubmission: PUT /sale/UpdateSubmission/ touches status and comments
// only; everything else on a submission is immutable.
func (h *SaleHandler) UpdateSubmission(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID       uint    `json:"id"`
		Status   *string `json:"status"`
		Comments *string `json:"comments"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	if req.ID == 0 {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", map[string]string{"id": "required"})
		return
	}
	sub, err := h.Submissions.Update(req.ID, req.Status, req.Comments)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, views.NewSubmissionRow(*sub))
}

// UpdateVendorResponse: PUT /sale/UpdateVendorResponse/ is the status-only
// variant the pipeline board uses.
func (h *SaleHandler) UpdateVendorResponse(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID     uint   `json:"id"`
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	if req.ID == 0 || req.Status == "" {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", map[string]string{"id": "required", "status": "required"})
		return
	}
	sub, err := h.Submissions.Update(req.ID, &req.Status, nil)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, views.NewSubmissionRow(*sub))
}

// Submissions: GET /sale/GetAllSubmissions/
func (h *SaleHandler) List(w http.ResponseWriter, r *http.Request) {
	subs, err := h.Submissions.List()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"submissions": views.SubmissionRows(subs)})
}

// GetByID: GET /sale/GetSubmissionByID/{id}/
func (h *SaleHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	sub, err := h.Submissions.Get(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, views.NewSubmissionRow(*sub))
}

// ByClient: GET /sale/GetSubmissionByClient/{id}/
func (h *SaleHandler) ByClient(w http.ResponseWriter, r *http.Request) {
	h.listBy(w, r, h.Submissions.ByClient)
}

// ByVendor: GET /sale/GetSubmissionByVendor/{id}/
func (h *SaleHandler) ByVendor(w http.ResponseWriter, r *http.Request) {
	h.listBy(w, r, h.Submissions.ByVendor)
}

// ByConsultant: GET /sale/GetSubmissionByConsultant/{id}/
func (h *SaleHandler) ByConsultant(w http.ResponseWriter, r *http.Request) {
	h.listBy(w, r, h.Submissions.ByConsultant)
}

// ByMarketer: GET /sale/GetSubmissionByMarketer/{id}/
func (h *SaleHandler) ByMarketer(w http.ResponseWriter, r *http.Request) {
	h.listBy(w, r, h.Submissions.ByMarketer)
}

func (h *SaleHandler) listBy(w http.ResponseWriter, r *http.Request, fetch func(uint) ([]models.Submission, error)) {
	id, ok := pathID(r, "id")
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	subs, err := fetch(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"submissions": views.SubmissionRows(subs)})
}

// Report: GET /sale/GetSubmissionReport/ counts submissions per status.
func (h *SaleHandler) Report(w http.ResponseWriter, r *http.Request) {
	report, err := h.Submissions.Report()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"by_status": report})
}
