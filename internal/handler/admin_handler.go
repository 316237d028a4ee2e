package handlers

import (
	"net/http"

	"luxestate/internal/auth"
)

func (h *Handlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.List(r.Context(), auth.UserFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, users, http.StatusOK)
}

func (h *Handlers) Analytics(w http.ResponseWriter, r *http.Request) {
	analytics, err := h.AnalyticsService.Get(r.Context(), auth.UserFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, analytics, http.StatusOK)
}

func (h *Handlers) AnalyticsByType(w http.ResponseWriter, r *http.Request) {
	counts, err := h.AnalyticsService.PropertiesByType(r.Context(), auth.UserFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, counts, http.StatusOK)
}
