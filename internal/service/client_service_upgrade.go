package service

import (
	"context"

	"github.com/resumekit/resumekit/internal/adapter"
	"github.com/resumekit/resumekit/models"
)

type clientUpgradeService struct {
	adapter adapter.ServerAdapter
}

func NewClientUpgradeService(serverAdapter adapter.ServerAdapter) ClientUpgradeService {
	return &clientUpgradeService{adapter: serverAdapter}
}

func (u *clientUpgradeService) CreateOrder(ctx context.Context) (models.PaymentOrder, error) {
	return u.adapter.CreateOrder(ctx)
}

func (u *clientUpgradeService) VerifyPayment(ctx context.Context, verification models.PaymentVerification) error {
	return u.adapter.VerifyPayment(ctx, verification)
}
