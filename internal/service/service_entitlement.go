package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/resumekit/resumekit/internal/logger"
	"github.com/resumekit/resumekit/internal/store"
	"github.com/resumekit/resumekit/models"
)

// entitlementService implements EntitlementService: the free-tier download
// cap and its premium bypass.
type entitlementService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewEntitlementService constructs an EntitlementService over the given
// repository.
func NewEntitlementService(userRepository store.UserRepository, logger *logger.Logger) EntitlementService {
	return &entitlementService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// TrackDownload records one resume download for the user and returns the
// updated counter state.
//
// Free accounts get a single download; the check and the increment run in
// one conditional UPDATE so that concurrent requests cannot both pass the
// cap. Premium accounts increment without limit.
//
// Returns store.ErrDownloadLimitReached when a free account is already at
// its cap, and store.ErrNoUserWasFound for unknown user ids.
func (e *entitlementService) TrackDownload(ctx context.Context, userID int64) (models.DownloadStatus, error) {
	log := logger.FromContext(ctx)

	status, err := e.userRepository.IncrementDownloadCount(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrDownloadLimitReached) {
			// The conditional UPDATE matches nothing for both a capped free
			// account and a missing user. Tell them apart for the caller.
			if _, findErr := e.userRepository.FindUserByID(ctx, userID); findErr != nil {
				return models.DownloadStatus{}, findErr
			}
			log.Info().Int64("id", userID).Msg("download limit reached")
			return models.DownloadStatus{}, err
		}
		log.Err(err).Int64("id", userID).Msg("download tracking failed")
		return models.DownloadStatus{}, fmt.Errorf("download tracking failed: %w", err)
	}

	return status, nil
}
