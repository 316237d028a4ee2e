package handlers

import (
	"net/http"
)

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

func HomeHandler(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, map[string]string{
		"status":  "ok",
		"service": "luxestate-backend",
	}, http.StatusOK)
}

func (h *Handlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{Status: "healthy", Database: "connected"}
	code := http.StatusOK

	if h.DB == nil {
		resp = HealthResponse{Status: "unhealthy", Database: "not configured"}
		code = http.StatusServiceUnavailable
	} else if err := h.DB.HealthCheck(r.Context()); err != nil {
		resp = HealthResponse{Status: "unhealthy", Database: "unreachable"}
		code = http.StatusServiceUnavailable
	}

	WriteJSON(w, resp, code)
}
