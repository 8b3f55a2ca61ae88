// Package handler provides HTTP request handlers for the application.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/pkozlov/outreach/internal/middleware"
	"github.com/pkozlov/outreach/internal/models"
	"github.com/pkozlov/outreach/internal/scheduler"
	"github.com/pkozlov/outreach/internal/service"
)

const (
	errorCodeNotFound                = "NOT_FOUND"
	errorCodeValidation              = "VALIDATION_ERROR"
	errorCodeInvalidState            = "INVALID_STATE"
	errorCodeNoRecipients            = "NO_RECIPIENTS"
	errorCodeAlreadyEnrolled         = "ALREADY_ENROLLED"
	errorCodeBadRequest              = "BAD_REQUEST"
	errorCodeSweepInProgress         = "SWEEP_IN_PROGRESS"
	errorCodeSchedulerAlreadyRunning = "SCHEDULER_ALREADY_RUNNING"
	errorCodeSchedulerNotRunning     = "SCHEDULER_NOT_RUNNING"
)

type Handler struct {
	service *service.Service
	logger  *zap.Logger
}

func NewHandler(service *service.Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

func (h *Handler) sendError(w http.ResponseWriter, r *http.Request, statusCode int, errorCode, message string) {
	render.Status(r, statusCode)
	render.JSON(w, r, ErrorResponse{
		Error:     errorCode,
		Message:   message,
		Timestamp: time.Now(),
	})
}

// handleServiceError maps service layer errors onto HTTP responses. Anything
// unrecognized is a 500 and gets logged with the request id.
func (h *Handler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *models.ValidationError
	var stateErr *models.InvalidStateError

	switch {
	case errors.Is(err, models.ErrNotFound):
		h.sendError(w, r, http.StatusNotFound, errorCodeNotFound, "Resource not found")
	case errors.Is(err, models.ErrNoRecipients):
		h.sendError(w, r, http.StatusUnprocessableEntity, errorCodeNoRecipients, "No recipients matched the audience specification")
	case errors.Is(err, models.ErrAlreadyEnrolled):
		h.sendError(w, r, http.StatusConflict, errorCodeAlreadyEnrolled, "Lead already has an active enrollment in this sequence")
	case errors.Is(err, service.ErrSweepInProgress):
		h.sendError(w, r, http.StatusConflict, errorCodeSweepInProgress, "An enrollment sweep is already running")
	case errors.As(err, &validationErr):
		h.sendError(w, r, http.StatusBadRequest, errorCodeValidation, validationErr.Error())
	case errors.As(err, &stateErr):
		h.sendError(w, r, http.StatusConflict, errorCodeInvalidState, stateErr.Error())
	default:
		h.logger.Error("Request failed",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.String("path", r.URL.Path),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, middleware.ErrorMessageInternal)
	}
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeBadRequest, "Invalid JSON body")
		return false
	}
	return true
}

func companyID(r *http.Request) string {
	return middleware.GetCompanyID(r.Context())
}

// StartScheduler starts the enrollment sweep loop.
func (h *Handler) StartScheduler(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Scheduler.Start(); err != nil {
		if errors.Is(err, scheduler.ErrSchedulerAlreadyRunning) {
			h.sendError(w, r, http.StatusConflict, errorCodeSchedulerAlreadyRunning, "Scheduler is already running")
			return
		}
		h.handleServiceError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]string{
		"status":  "started",
		"message": "Scheduler started successfully",
	})
}

// StopScheduler stops the enrollment sweep loop.
func (h *Handler) StopScheduler(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Scheduler.Stop(); err != nil {
		if errors.Is(err, scheduler.ErrSchedulerNotRunning) {
			h.sendError(w, r, http.StatusConflict, errorCodeSchedulerNotRunning, "Scheduler is not running")
			return
		}
		h.handleServiceError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]string{
		"status":  "stopped",
		"message": "Scheduler stopped successfully",
	})
}

// RunSweep triggers one enrollment sweep immediately.
func (h *Handler) RunSweep(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Scheduler.RunSweepNow(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	render.JSON(w, r, result)
}

// HealthResponse is the health endpoint payload.
type HealthResponse struct {
	Status               service.HealthState `json:"status"`
	Timestamp            time.Time           `json:"timestamp"`
	SchedulerStatus      string              `json:"scheduler_status,omitempty"`
	DatabaseStatus       string              `json:"database_status,omitempty"`
	RedisStatus          string              `json:"redis_status,omitempty"`
	CircuitBreakerStatus string              `json:"circuit_breaker_status,omitempty"`
}

// HealthCheck reports dependency health. Unhealthy maps to 503; degraded
// stays 200 so monitoring can see the state while the service is usable.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := h.service.Health.GetHealth()

	response := HealthResponse{
		Status:               health.Status,
		Timestamp:            time.Now(),
		SchedulerStatus:      health.SchedulerStatus,
		DatabaseStatus:       health.DatabaseStatus,
		RedisStatus:          health.RedisStatus,
		CircuitBreakerStatus: health.CircuitBreakerStatus,
	}

	if health.Status == service.HealthStateUnhealthy {
		render.Status(r, http.StatusServiceUnavailable)
	}

	render.JSON(w, r, response)
}
