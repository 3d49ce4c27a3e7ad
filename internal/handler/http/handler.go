package http

import (
	"github.com/resumekit/resumekit/internal/config"
	"github.com/resumekit/resumekit/internal/logger"
	"github.com/resumekit/resumekit/internal/service"
)

type Handler struct {
	services *service.Services

	allowedOrigins []string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		allowedOrigins: cfg.AllowedOrigins,
		logger:         logger,
	}
}
