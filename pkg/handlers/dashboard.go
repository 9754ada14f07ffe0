package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/alejandorosumah-mansa/dashboard-suppliers/pkg/apperrors"
	"github.com/alejandorosumah-mansa/dashboard-suppliers/pkg/dashboard"
)

// DashboardHandler serves the read-only dashboard views.
type DashboardHandler struct {
	service *dashboard.Service
	logger  *zap.Logger
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(service *dashboard.Service, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{service: service, logger: logger}
}

// RegisterRoutes registers the dashboard routes on the given mux.
func (h *DashboardHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.FullView)
	mux.HandleFunc("GET /producer/{id}", h.Producer)
	mux.HandleFunc("GET /activity/{id}/{date}", h.Activity)
}

// FullView handles GET / requests.
func (h *DashboardHandler) FullView(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.FullView()
	if err != nil {
		h.logger.Error("Failed to build full view", zap.Error(err))
		http.Error(w, "failed to load dashboard data", http.StatusInternalServerError)
		return
	}
	if err := WriteJSON(w, http.StatusOK, view); err != nil {
		h.logger.Error("Failed to encode full view", zap.Error(err))
	}
}

// Producer handles GET /producer/{id} requests.
func (h *DashboardHandler) Producer(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		NotFound(w, "Producer not found")
		return
	}

	view, err := h.service.Producer(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			NotFound(w, "Producer not found")
			return
		}
		h.logger.Error("Failed to load producer", zap.Int("id", id), zap.Error(err))
		http.Error(w, "failed to load dashboard data", http.StatusInternalServerError)
		return
	}
	if err := WriteJSON(w, http.StatusOK, view); err != nil {
		h.logger.Error("Failed to encode producer view", zap.Error(err))
	}
}

// Activity handles GET /activity/{id}/{date} requests.
func (h *DashboardHandler) Activity(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		NotFound(w, "Activity not found")
		return
	}

	view, err := h.service.Activity(id, r.PathValue("date"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrActivityNotFound) {
			NotFound(w, "Activity not found")
			return
		}
		h.logger.Error("Failed to load activity", zap.Int("id", id), zap.Error(err))
		http.Error(w, "failed to load dashboard data", http.StatusInternalServerError)
		return
	}
	if err := WriteJSON(w, http.StatusOK, view); err != nil {
		h.logger.Error("Failed to encode activity view", zap.Error(err))
	}
}
