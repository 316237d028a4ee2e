package handlers

import (
	"net/http"

	"luxestate/internal/auth"
	"luxestate/internal/service"
)

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Name     string `json:"name" validate:"required"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	result, err := h.AuthService.Register(r.Context(), service.RegisterRequest{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     req.Role,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, result, http.StatusOK)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	result, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, result, http.StatusOK)
}

// Me returns the caller resolved by the auth middleware.
func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeServiceError(w, r, auth.ErrMissingToken)
		return
	}

	WriteJSON(w, user, http.StatusOK)
}
