package service

import (
	"context"
	"fmt"

	"github.com/resumekit/resumekit/internal/logger"
	"github.com/resumekit/resumekit/internal/store"
	"github.com/resumekit/resumekit/models"
)

// adminService implements AdminService: read-only reporting over the user
// base.
type adminService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewAdminService constructs an AdminService over the given repository.
func NewAdminService(userRepository store.UserRepository, logger *logger.Logger) AdminService {
	return &adminService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// ListUsers returns every account, newest first. Password hashes and reset
// codes never leave the store layer's JSON surface.
func (a *adminService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := a.userRepository.ListUsers(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing users failed")
		return nil, fmt.Errorf("listing users failed: %w", err)
	}

	return users, nil
}

// Stats returns aggregate counters over the user base: total accounts,
// premium accounts, and the sum of all download counters.
func (a *adminService) Stats(ctx context.Context) (models.AdminStats, error) {
	stats, err := a.userRepository.Stats(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("computing stats failed")
		return models.AdminStats{}, fmt.Errorf("computing stats failed: %w", err)
	}

	return stats, nil
}
