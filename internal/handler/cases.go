package handler

import (
	"errors"
	"net/http"

	"github.com/ghostcity-rp/companion/internal/cases"
	"github.com/ghostcity-rp/companion/internal/domain"
	"github.com/ghostcity-rp/companion/internal/logger"
)

// OpenCaseRequest is the body of POST /cases/open.
type OpenCaseRequest struct {
	CaseID        int    `json:"case_id" validate:"required,gt=0"`
	UserID        int    `json:"user_id" validate:"required,gt=0"`
	PaymentMethod string `json:"payment_method" validate:"payment_method"`
}

// OpenCaseResponse is the success body of POST /cases/open.
type OpenCaseResponse struct {
	Success        bool          `json:"success"`
	WonItem        domain.Item   `json:"won_item"`
	AnimationItems []domain.Item `json:"animation_items"`
	InventorySlot  int           `json:"inventory_slot"`
}

// InventoryFullResponse is the body returned when the reward could not
// be delivered: the debit was rolled back but the client still shows the
// lost item.
type InventoryFullResponse struct {
	Success bool        `json:"success"`
	Error   string      `json:"error"`
	WonItem domain.Item `json:"won_item"`
}

// HandleListCases returns the case catalog with item samples.
func HandleListCases(service cases.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		views, err := service.List(r.Context())
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to list cases", "error", err)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		respondJSON(w, http.StatusOK, views)
	}
}

// HandleOpenCase runs one case open.
func HandleOpenCase(service cases.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req OpenCaseRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Open case"); err != nil {
			return
		}

		result, err := service.Open(r.Context(), req.CaseID, req.UserID, req.PaymentMethod)
		if err != nil {
			if errors.Is(err, domain.ErrInventoryFull) && result != nil {
				respondJSON(w, http.StatusBadRequest, InventoryFullResponse{
					Error:   ErrMsgInventoryFull,
					WonItem: result.WonItem,
				})
				return
			}
			logger.FromContext(r.Context()).Error("Failed to open case", "error", err)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		respondJSON(w, http.StatusOK, OpenCaseResponse{
			Success:        true,
			WonItem:        result.WonItem,
			AnimationItems: result.AnimationItems,
			InventorySlot:  result.InventorySlot,
		})
	}
}
