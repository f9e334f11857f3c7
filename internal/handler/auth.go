package handler

import (
	"net/http"

	"github.com/ghostcity-rp/companion/internal/auth"
	"github.com/ghostcity-rp/companion/internal/domain"
	"github.com/ghostcity-rp/companion/internal/logger"
)

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Login    string `json:"login" validate:"required,max=64"`
	Password string `json:"password" validate:"required,max=128"`
}

// LoginResponse is the success body of POST /auth/login.
type LoginResponse struct {
	Success bool           `json:"success"`
	Player  *domain.Player `json:"player"`
}

// UnblockRequest is the body of POST /auth/unblock.
type UnblockRequest struct {
	AdminID int    `json:"admin_id" validate:"required,gt=0"`
	IP      string `json:"ip" validate:"required,ip"`
}

// HandleLogin verifies game credentials for the site session.
func HandleLogin(service auth.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Login"); err != nil {
			return
		}

		player, err := service.Login(r.Context(), req.Login, req.Password, ClientIP(r))
		if err != nil {
			logger.FromContext(r.Context()).Warn("Login rejected", "login", req.Login, "error", err)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		respondJSON(w, http.StatusOK, LoginResponse{Success: true, Player: player})
	}
}

// HandleUnblock lifts an IP block. Admin only.
func HandleUnblock(service auth.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UnblockRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Unblock IP"); err != nil {
			return
		}

		if err := service.Unblock(r.Context(), req.AdminID, req.IP); err != nil {
			logger.FromContext(r.Context()).Error("Failed to unblock ip", "error", err)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgIPUnblockedSuccess})
	}
}

// HandleListBlocks returns the guard records. Admin only.
func HandleListBlocks(service auth.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adminID, ok := GetIntQueryParam(r, w, "admin_id")
		if !ok {
			return
		}

		blocks, err := service.ListBlocks(r.Context(), adminID)
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to list ip blocks", "error", err)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		respondJSON(w, http.StatusOK, blocks)
	}
}
