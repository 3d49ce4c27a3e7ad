package http

import (
	"errors"
	"net/http"

	"github.com/resumekit/resumekit/internal/logger"
	"github.com/resumekit/resumekit/internal/store"
	"github.com/resumekit/resumekit/internal/utils"
)

func (h *Handler) trackDownload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	status, err := h.services.EntitlementService.TrackDownload(ctx, userID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrDownloadLimitReached):
			log.Info().Int64("id", userID).Msg("download limit reached")
			writeMessage(w, "Download limit reached. Upgrade to premium for unlimited downloads.", http.StatusForbidden)
			return
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Err(err).Int64("id", userID).Msg("no account for token subject")
			writeMessage(w, "User not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Int64("id", userID).Msg("unexpected error occurred during download tracking")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, status, http.StatusOK)
}
