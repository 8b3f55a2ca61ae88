package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/pkozlov/outreach/internal/models"
	"github.com/pkozlov/outreach/internal/service"
)

// CreateBroadcast handles POST /api/broadcasts.
func (h *Handler) CreateBroadcast(w http.ResponseWriter, r *http.Request) {
	var input service.CreateBroadcastInput
	if !h.decode(w, r, &input) {
		return
	}

	broadcast, err := h.service.Broadcast.CreateBroadcast(r.Context(), companyID(r), &input)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, broadcast)
}

// ListBroadcasts handles GET /api/broadcasts with an optional status filter.
func (h *Handler) ListBroadcasts(w http.ResponseWriter, r *http.Request) {
	var status *models.BroadcastStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		s := models.BroadcastStatus(raw)
		status = &s
	}

	broadcasts, err := h.service.Broadcast.GetBroadcasts(companyID(r), status)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"broadcasts": broadcasts,
		"total":      len(broadcasts),
	})
}

// GetBroadcast handles GET /api/broadcasts/{id}.
func (h *Handler) GetBroadcast(w http.ResponseWriter, r *http.Request) {
	detail, err := h.service.Broadcast.GetBroadcastByID(companyID(r), chi.URLParam(r, "id"))
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	render.JSON(w, r, detail)
}

// SendBroadcast handles POST /api/broadcasts/{id}/send. The dispatch runs
// synchronously; the response is the final send report.
func (h *Handler) SendBroadcast(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	// Scope check up front; dispatch itself is keyed by id only.
	if _, err := h.service.Broadcast.GetBroadcastByID(companyID(r), id); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	report, err := h.service.Broadcast.SendBroadcast(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	render.JSON(w, r, report)
}

// CancelBroadcast handles POST /api/broadcasts/{id}/cancel.
func (h *Handler) CancelBroadcast(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Broadcast.CancelBroadcast(companyID(r), chi.URLParam(r, "id")); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]string{"status": string(models.BroadcastStatusCancelled)})
}

// DeleteBroadcast handles DELETE /api/broadcasts/{id}.
func (h *Handler) DeleteBroadcast(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Broadcast.DeleteBroadcast(companyID(r), chi.URLParam(r, "id")); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	render.NoContent(w, r)
}

// GetBroadcastStats handles GET /api/broadcasts/{id}/stats.
func (h *Handler) GetBroadcastStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Broadcast.GetBroadcastStats(companyID(r), chi.URLParam(r, "id"))
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	render.JSON(w, r, stats)
}
