package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/resumekit/resumekit/internal/logger"
	"github.com/resumekit/resumekit/internal/service"
	"github.com/resumekit/resumekit/internal/store"
)

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Email       string `json:"email"`
	OTP         string `json:"otp"`
	NewPassword string `json:"newPassword"`
}

func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req forgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.ResetService.RequestReset(ctx, req.Email); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			writeMessage(w, "Email is required", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Err(err).Msg("no account for email")
			writeMessage(w, "User not found", http.StatusNotFound)
			return
		case errors.Is(err, service.ErrDeliveryFailed):
			log.Err(err).Msg("reset code delivery failed")
			writeMessage(w, "Failed to send OTP email", http.StatusInternalServerError)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during reset request")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	writeMessage(w, "OTP sent to your email", http.StatusOK)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req resetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.ResetService.ConfirmReset(ctx, req.Email, req.OTP, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			writeMessage(w, "All fields are required", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrResetCodeMismatch):
			log.Err(err).Msg("invalid or expired reset code")
			writeMessage(w, "Invalid or expired OTP", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during password reset")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	writeMessage(w, "Password reset successful", http.StatusOK)
}
