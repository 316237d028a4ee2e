package handlers

import (
	"net/http"

	"luxestate/internal/auth"
	"luxestate/internal/service"
)

type CreateLeadRequest struct {
	PropertyID string `json:"property_id" validate:"required"`
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone"`
	Message    string `json:"message"`
}

func (h *Handlers) CreateLead(w http.ResponseWriter, r *http.Request) {
	var req CreateLeadRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	lead, err := h.LeadService.Create(r.Context(), service.CreateLeadRequest(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, lead, http.StatusCreated)
}

func (h *Handlers) ListLeads(w http.ResponseWriter, r *http.Request) {
	leads, err := h.LeadService.List(r.Context(), auth.UserFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, leads, http.StatusOK)
}
