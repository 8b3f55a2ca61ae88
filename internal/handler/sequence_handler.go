package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/pkozlov/outreach/internal/service"
)

// CreateSequence handles POST /api/sequences.
func (h *Handler) CreateSequence(w http.ResponseWriter, r *http.Request) {
	var input service.CreateSequenceInput
	if !h.decode(w, r, &input) {
		return
	}

	sequence, err := h.service.Sequence.CreateSequence(companyID(r), r.Header.Get("X-User-ID"), &input)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, sequence)
}

// ListSequences handles GET /api/sequences with optional is_active and
// search filters.
func (h *Handler) ListSequences(w http.ResponseWriter, r *http.Request) {
	var isActive *bool
	if raw := r.URL.Query().Get("is_active"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			h.sendError(w, r, http.StatusBadRequest, errorCodeBadRequest, "is_active must be a boolean")
			return
		}
		isActive = &parsed
	}

	sequences, err := h.service.Sequence.GetSequences(companyID(r), isActive, r.URL.Query().Get("search"))
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"sequences": sequences,
		"total":     len(sequences),
	})
}

// GetSequence handles GET /api/sequences/{id}.
func (h *Handler) GetSequence(w http.ResponseWriter, r *http.Request) {
	sequence, err := h.service.Sequence.GetSequenceByID(companyID(r), chi.URLParam(r, "id"))
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	render.JSON(w, r, sequence)
}

// UpdateSequence handles PUT /api/sequences/{id}.
func (h *Handler) UpdateSequence(w http.ResponseWriter, r *http.Request) {
	var input service.UpdateSequenceInput
	if !h.decode(w, r, &input) {
		return
	}

	sequence, err := h.service.Sequence.UpdateSequence(companyID(r), chi.URLParam(r, "id"), &input)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	render.JSON(w, r, sequence)
}

// DeleteSequence handles DELETE /api/sequences/{id}.
func (h *Handler) DeleteSequence(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Sequence.DeleteSequence(companyID(r), chi.URLParam(r, "id")); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	render.NoContent(w, r)
}

type enrollRequest struct {
	LeadID string `json:"lead_id"`
}

// EnrollLead handles POST /api/sequences/{id}/enroll.
func (h *Handler) EnrollLead(w http.ResponseWriter, r *http.Request) {
	var req enrollRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.LeadID == "" {
		h.sendError(w, r, http.StatusBadRequest, errorCodeBadRequest, "lead_id is required")
		return
	}

	// Sequence must belong to the caller's company before enrolling into it.
	sequenceID := chi.URLParam(r, "id")
	if _, err := h.service.Sequence.GetSequenceByID(companyID(r), sequenceID); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	enrollment, err := h.service.Sequence.EnrollLead(sequenceID, req.LeadID, r.Header.Get("X-User-ID"))
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, enrollment)
}

// UnenrollLead handles POST /api/sequences/{id}/unenroll.
func (h *Handler) UnenrollLead(w http.ResponseWriter, r *http.Request) {
	var req enrollRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.LeadID == "" {
		h.sendError(w, r, http.StatusBadRequest, errorCodeBadRequest, "lead_id is required")
		return
	}

	sequenceID := chi.URLParam(r, "id")
	if _, err := h.service.Sequence.GetSequenceByID(companyID(r), sequenceID); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	if err := h.service.Sequence.UnenrollLead(sequenceID, req.LeadID); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]string{"status": "cancelled"})
}

// ListEnrollments handles GET /api/sequences/{id}/enrollments.
func (h *Handler) ListEnrollments(w http.ResponseWriter, r *http.Request) {
	enrollments, err := h.service.Sequence.ListEnrollments(companyID(r), chi.URLParam(r, "id"))
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"enrollments": enrollments,
		"total":       len(enrollments),
	})
}

type autoEnrollRequest struct {
	LeadID string `json:"lead_id"`
}

// AutoEnroll handles POST /api/sequences/auto-enroll. Called when a lead is
// created or changes state; the lead joins every active sequence whose entry
// conditions it satisfies.
func (h *Handler) AutoEnroll(w http.ResponseWriter, r *http.Request) {
	var req autoEnrollRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.LeadID == "" {
		h.sendError(w, r, http.StatusBadRequest, errorCodeBadRequest, "lead_id is required")
		return
	}

	enrolled, err := h.service.Sequence.AutoEnroll(companyID(r), req.LeadID)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]int{"enrolled": enrolled})
}
