package api

import (
	"encoding/json"
	"net/http"

	apperrors "carrental/internal/errors"
	"carrental/internal/service"
)

type AdminAuthHandler struct {
	Auth *service.AdminAuthService
}

func NewAdminAuthHandler(auth *service.AdminAuthService) *AdminAuthHandler {
	return &AdminAuthHandler{Auth: auth}
}

func (h *AdminAuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperrors.WriteJSON(w, apperrors.NewHTTPError(http.StatusBadRequest, "invalid request body"))
		return
	}
	token, err := h.Auth.Login(req.Email, req.Password)
	if err != nil {
		apperrors.WriteJSON(w, apperrors.NewHTTPError(http.StatusUnauthorized, "invalid credentials"))
		return
	}
	writeJSON(w, http.StatusOK, LoginResponse{Token: token})
}
