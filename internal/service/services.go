package service

import (
	"github.com/resumekit/resumekit/internal/config"
	"github.com/resumekit/resumekit/internal/gateway"
	"github.com/resumekit/resumekit/internal/logger"
	"github.com/resumekit/resumekit/internal/mailer"
	"github.com/resumekit/resumekit/internal/store"
)

// Services bundles every application service behind one value so the HTTP
// layer takes a single dependency.
type Services struct {
	AuthService
	ResetService
	EntitlementService
	PaymentService
	AdminService
}

// NewServices wires all services to their storage, mail, and payment
// dependencies.
func NewServices(storages *store.Storages, mail mailer.Mailer, gw gateway.Gateway, cfg *config.StructuredConfig, log *logger.Logger) *Services {
	return &Services{
		AuthService:        NewAuthService(storages.UserRepository, cfg.App, log),
		ResetService:       NewResetService(storages.UserRepository, mail, log),
		EntitlementService: NewEntitlementService(storages.UserRepository, log),
		PaymentService:     NewPaymentService(gw, log),
		AdminService:       NewAdminService(storages.UserRepository, log),
	}
}
