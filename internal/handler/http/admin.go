package http

import (
	"net/http"

	"github.com/resumekit/resumekit/internal/logger"
	"github.com/resumekit/resumekit/internal/utils"
)

func (h *Handler) adminUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	users, err := h.services.AdminService.ListUsers(ctx)
	if err != nil {
		log.Err(err).Msg("listing users failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) adminStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	stats, err := h.services.AdminService.Stats(ctx)
	if err != nil {
		log.Err(err).Msg("computing stats failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}
