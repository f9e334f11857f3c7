package handler

import (
	"net/http"

	"github.com/ghostcity-rp/companion/internal/inventory"
	"github.com/ghostcity-rp/companion/internal/logger"
)

// SellItemRequest is the body of POST /inventory/sell.
type SellItemRequest struct {
	UserID int `json:"user_id" validate:"required,gt=0"`
	Slot   int `json:"slot" validate:"required,gte=1,lte=50"`
}

// SellItemResponse is the success body of POST /inventory/sell.
type SellItemResponse struct {
	Success bool                  `json:"success"`
	Result  *inventory.SellResult `json:"result"`
}

// HandleGetInventory returns a player's decoded inventory.
func HandleGetInventory(service inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetIntQueryParam(r, w, "user_id")
		if !ok {
			return
		}

		views, err := service.List(r.Context(), userID)
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to get inventory", "error", err)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		respondJSON(w, http.StatusOK, views)
	}
}

// HandleSellItem resells one inventory slot.
func HandleSellItem(service inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SellItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Sell item"); err != nil {
			return
		}

		result, err := service.Sell(r.Context(), req.UserID, req.Slot)
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to sell item", "error", err)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		respondJSON(w, http.StatusOK, SellItemResponse{Success: true, Result: result})
	}
}
