package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/pkozlov/outreach/internal/handler"
	"github.com/pkozlov/outreach/internal/middleware"
	"github.com/pkozlov/outreach/internal/models"
	"github.com/pkozlov/outreach/internal/service"
	servicemocks "github.com/pkozlov/outreach/internal/service/mocks"
)

// broadcastRouter mounts the broadcast routes behind the company scope, the
// same shape the server wires up.
func broadcastRouter(broadcasts *servicemocks.MockBroadcastService) http.Handler {
	h := handler.NewHandler(&service.Service{Broadcast: broadcasts}, zap.NewNop())

	r := chi.NewRouter()
	r.Route("/api/broadcasts", func(r chi.Router) {
		r.Use(middleware.CompanyScope)
		r.Post("/", h.CreateBroadcast)
		r.Get("/{id}", h.GetBroadcast)
		r.Post("/{id}/send", h.SendBroadcast)
		r.Post("/{id}/cancel", h.CancelBroadcast)
	})
	return r
}

func doJSON(t *testing.T, router http.Handler, method, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}

	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.CompanyIDHeader, "company-1")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateBroadcast_NoRecipients(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	broadcasts := servicemocks.NewMockBroadcastService(ctrl)
	broadcasts.EXPECT().CreateBroadcast(gomock.Any(), "company-1", gomock.Any()).
		Return(nil, models.ErrNoRecipients)

	rec := doJSON(t, broadcastRouter(broadcasts), http.MethodPost, "/api/broadcasts", map[string]interface{}{
		"name":           "Spring promo",
		"message_type":   "text",
		"content":        "Hello there",
		"recipient_type": "leads",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "NO_RECIPIENTS")
}

func TestCreateBroadcast_MissingCompanyHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := broadcastRouter(servicemocks.NewMockBroadcastService(ctrl))

	req := httptest.NewRequest(http.MethodPost, "/api/broadcasts", bytes.NewReader([]byte(`{}`)))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), middleware.ErrorCodeMissingCompany)
}

func TestGetBroadcast_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	broadcasts := servicemocks.NewMockBroadcastService(ctrl)
	broadcasts.EXPECT().GetBroadcastByID("company-1", "missing").
		Return(nil, models.ErrNotFound)

	rec := doJSON(t, broadcastRouter(broadcasts), http.MethodGet, "/api/broadcasts/missing", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_FOUND")
}

func TestSendBroadcast_ReturnsReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	broadcasts := servicemocks.NewMockBroadcastService(ctrl)
	broadcasts.EXPECT().GetBroadcastByID("company-1", "b1").
		Return(&service.BroadcastDetail{Broadcast: &models.Broadcast{ID: "b1"}}, nil)
	broadcasts.EXPECT().SendBroadcast(gomock.Any(), "b1").
		Return(&service.SendReport{Sent: 8, Failed: 2, Total: 10}, nil)

	rec := doJSON(t, broadcastRouter(broadcasts), http.MethodPost, "/api/broadcasts/b1/send", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var report service.SendReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, service.SendReport{Sent: 8, Failed: 2, Total: 10}, report)
}

func TestSendBroadcast_AlreadySending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	broadcasts := servicemocks.NewMockBroadcastService(ctrl)
	broadcasts.EXPECT().GetBroadcastByID("company-1", "b1").
		Return(&service.BroadcastDetail{Broadcast: &models.Broadcast{ID: "b1"}}, nil)
	broadcasts.EXPECT().SendBroadcast(gomock.Any(), "b1").
		Return(nil, &models.InvalidStateError{Entity: "broadcast", ID: "b1", Status: "sending", Action: "send"})

	rec := doJSON(t, broadcastRouter(broadcasts), http.MethodPost, "/api/broadcasts/b1/send", nil)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_STATE")
}

func TestCancelBroadcast_OK(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	broadcasts := servicemocks.NewMockBroadcastService(ctrl)
	broadcasts.EXPECT().CancelBroadcast("company-1", "b1").Return(nil)

	rec := doJSON(t, broadcastRouter(broadcasts), http.MethodPost, "/api/broadcasts/b1/cancel", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), string(models.BroadcastStatusCancelled))
}
