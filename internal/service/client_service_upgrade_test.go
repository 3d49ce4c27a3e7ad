package service

import (
	"context"
	"errors"
	"testing"

	"github.com/resumekit/resumekit/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientUpgrade_CreateOrder(t *testing.T) {
	srv := &fakeServerAdapter{order: models.PaymentOrder{ID: "order_1", Amount: 9900, Currency: "INR"}}
	svc := NewClientUpgradeService(srv)

	order, err := svc.CreateOrder(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "order_1", order.ID)

	srvDown := &fakeServerAdapter{createOrderErr: errors.New("502")}
	_, err = NewClientUpgradeService(srvDown).CreateOrder(context.Background())
	assert.Error(t, err)
}

func TestClientUpgrade_VerifyPayment(t *testing.T) {
	svc := NewClientUpgradeService(&fakeServerAdapter{})

	err := svc.VerifyPayment(context.Background(), models.PaymentVerification{
		OrderID: "order_1", PaymentID: "pay_1", Signature: "sig",
	})
	assert.NoError(t, err)

	rejected := NewClientUpgradeService(&fakeServerAdapter{verifyErr: errors.New("400")})
	err = rejected.VerifyPayment(context.Background(), models.PaymentVerification{})
	assert.Error(t, err)
}
