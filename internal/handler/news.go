package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ghostcity-rp/companion/internal/logger"
	"github.com/ghostcity-rp/companion/internal/news"
)

// CreateNewsRequest is the body of POST /news.
type CreateNewsRequest struct {
	AdminID int    `json:"admin_id" validate:"required,gt=0"`
	Title   string `json:"title" validate:"required,max=200"`
	Content string `json:"content" validate:"required"`
}

// HandleGetNews returns the site news feed, newest first.
func HandleGetNews(service news.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := service.List(r.Context())
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to list news", "error", err)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		respondJSON(w, http.StatusOK, entries)
	}
}

// HandleCreateNews publishes a news entry. Admin only.
func HandleCreateNews(service news.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateNewsRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create news"); err != nil {
			return
		}

		entry, err := service.Create(r.Context(), req.AdminID, req.Title, req.Content)
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to create news", "error", err)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		respondJSON(w, http.StatusCreated, entry)
	}
}

// HandleDeleteNews removes a news entry. Admin only.
func HandleDeleteNews(service news.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		newsID, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil || newsID <= 0 {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidNewsID)
			return
		}

		adminID, ok := GetIntQueryParam(r, w, "admin_id")
		if !ok {
			return
		}

		if err := service.Delete(r.Context(), adminID, newsID); err != nil {
			logger.FromContext(r.Context()).Error("Failed to delete news", "error", err)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgNewsDeletedSuccess})
	}
}
