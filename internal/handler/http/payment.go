package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/resumekit/resumekit/internal/logger"
	"github.com/resumekit/resumekit/internal/service"
	"github.com/resumekit/resumekit/internal/utils"
	"github.com/resumekit/resumekit/models"
)

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	order, err := h.services.PaymentService.CreateOrder(ctx)
	if err != nil {
		log.Err(err).Msg("payment order creation failed")
		writeMessage(w, "Failed to create payment order", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, order, http.StatusOK)
}

func (h *Handler) verifyPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var verification models.PaymentVerification
	if err := json.NewDecoder(r.Body).Decode(&verification); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.PaymentService.VerifyPayment(ctx, verification); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided) || errors.Is(err, service.ErrInvalidSignature):
			log.Err(err).Str("order_id", verification.OrderID).Msg("payment verification rejected")
			utils.WriteJSON(w, models.VerifyResponse{Success: false, Message: "Payment verification failed"}, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during payment verification")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.VerifyResponse{Success: true, Message: "Payment verified successfully"}, http.StatusOK)
}
