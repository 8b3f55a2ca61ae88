package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"

	"github.com/pkozlov/outreach/internal/models"
	"github.com/pkozlov/outreach/internal/service"
)

// statusCallback is the provider's delivery status notification.
type statusCallback struct {
	MessageID    string `json:"message_id"`
	RecipientID  string `json:"recipient_id,omitempty"`
	Status       string `json:"status"`
	ErrorCode    int    `json:"error_code,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}

var callbackStatuses = map[string]models.RecipientStatus{
	"sent":      models.RecipientStatusSent,
	"delivered": models.RecipientStatusDelivered,
	"read":      models.RecipientStatusRead,
	"failed":    models.RecipientStatusFailed,
}

// ProviderStatusCallback handles POST /webhooks/status. The provider
// retries on non-2xx, so unknown message ids return 200 to stop the retry
// loop.
func (h *Handler) ProviderStatusCallback(w http.ResponseWriter, r *http.Request) {
	var callback statusCallback
	if !h.decode(w, r, &callback) {
		return
	}

	status, ok := callbackStatuses[callback.Status]
	if !ok {
		h.sendError(w, r, http.StatusBadRequest, errorCodeBadRequest, "unknown status value")
		return
	}

	err := h.service.Broadcast.UpdateRecipientStatus(r.Context(), &service.RecipientStatusUpdate{
		RecipientID:       callback.RecipientID,
		ProviderMessageID: callback.MessageID,
		Status:            status,
		ErrorCode:         callback.ErrorCode,
		ErrorMessage:      callback.ErrorMessage,
	})
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		h.handleServiceError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]string{"status": "ok"})
}
