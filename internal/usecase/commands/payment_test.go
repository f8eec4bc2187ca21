//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"locker-reservation/internal/domain/payment"
	"locker-reservation/internal/domain/reservation"
	"locker-reservation/internal/infra"
	"locker-reservation/internal/pkg/errs"
	"locker-reservation/internal/usecase/commands"
	"locker-reservation/internal/usecase/shared"
	commandsmock "locker-reservation/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	webhookSecret = "whsec"
	paymentToken  = "APP_USR-token"
)

func signedNotification(entityID uuid.UUID, paymentID, kind string) commands.PaymentNotification {
	n := commands.PaymentNotification{
		EntityID:  entityID,
		RequestID: "req-1",
		Signature: "ts=1700000000,v1=" + payment.Sign(webhookSecret, payment.Manifest(paymentID, "req-1", "1700000000")),
	}
	n.Body.Type = kind
	n.Body.Data.ID = paymentID
	return n
}

type paymentFixture struct {
	m            *commandMocks
	reservations *commandsmock.MockReservationCommands
	cmds         commands.PaymentCommands
	entity       *shared.EntitySnapshot
}

func newPaymentFixture(t *testing.T) *paymentFixture {
	m := newCommandMocks(t)
	reservations := commandsmock.NewMockReservationCommands(m.ctrl)
	entity := &shared.EntitySnapshot{
		ID:                 uuid.New(),
		HardwareToken:      "hw-token",
		WebhookSecret:      webhookSecret,
		PaymentAccessToken: paymentToken,
	}
	m.reads.EXPECT().EntityByID(gomock.Any(), entity.ID).Return(entity, nil).AnyTimes()

	return &paymentFixture{
		m:            m,
		reservations: reservations,
		cmds:         commands.NewPaymentCommands(m.uow, m.gateway, reservations, m.notifier, m.logger),
		entity:       entity,
	}
}

func TestHandleNotification_Rejected(t *testing.T) {
	t.Run("bad signature does no work", func(t *testing.T) {
		f := newPaymentFixture(t)
		n := signedNotification(f.entity.ID, "123", "payment")
		n.Signature = "ts=1700000000,v1=00ff"

		_, err := f.cmds.HandleNotification(context.Background(), n)

		assert.True(t, errs.Is(err, commands.ErrInvalidSignature))
	})

	t.Run("missing signature header", func(t *testing.T) {
		f := newPaymentFixture(t)
		n := signedNotification(f.entity.ID, "123", "payment")
		n.Signature = ""

		_, err := f.cmds.HandleNotification(context.Background(), n)

		assert.True(t, errs.Is(err, commands.ErrInvalidSignature))
	})

	t.Run("entity without payment credentials", func(t *testing.T) {
		f := newPaymentFixture(t)
		bare := &shared.EntitySnapshot{ID: uuid.New(), HardwareToken: "hw"}
		f.m.reads.EXPECT().EntityByID(gomock.Any(), bare.ID).Return(bare, nil)

		_, err := f.cmds.HandleNotification(context.Background(), signedNotification(bare.ID, "123", "payment"))

		assert.True(t, errs.Is(err, errs.ErrMissingConfiguration))
	})

	t.Run("unknown entity", func(t *testing.T) {
		f := newPaymentFixture(t)
		id := uuid.New()
		f.m.reads.EXPECT().EntityByID(gomock.Any(), id).Return(nil, infra.WrapRepoErr("entity not found", nil, infra.KindNotFound))

		_, err := f.cmds.HandleNotification(context.Background(), signedNotification(id, "123", "payment"))

		assert.ErrorIs(t, err, errs.ErrEntityNotFound)
	})
}

func TestHandleNotification_Outcomes(t *testing.T) {
	t.Run("non payment topic", func(t *testing.T) {
		f := newPaymentFixture(t)

		got, err := f.cmds.HandleNotification(context.Background(), signedNotification(f.entity.ID, "123", "merchant_order"))

		require.NoError(t, err)
		assert.Equal(t, commands.PaymentIgnored, got)
	})

	t.Run("provider lookup failure is acknowledged", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.m.gateway.EXPECT().GetPayment(gomock.Any(), paymentToken, "123").Return(payment.Payment{}, errs.New("timeout"))

		got, err := f.cmds.HandleNotification(context.Background(), signedNotification(f.entity.ID, "123", "payment"))

		require.NoError(t, err)
		assert.Equal(t, commands.PaymentLookupFailed, got)
	})

	t.Run("pending payment", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.m.gateway.EXPECT().GetPayment(gomock.Any(), paymentToken, "123").
			Return(payment.Payment{ID: "123", Status: payment.StatusPending}, nil)

		got, err := f.cmds.HandleNotification(context.Background(), signedNotification(f.entity.ID, "123", "payment"))

		require.NoError(t, err)
		assert.Equal(t, commands.PaymentNotApproved, got)
	})

	t.Run("no transaction could be confirmed", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.m.gateway.EXPECT().GetPayment(gomock.Any(), paymentToken, "123").Return(payment.Payment{
			ID:       "123",
			Status:   payment.StatusApproved,
			Metadata: payment.Metadata{TransactionIDs: []string{"tx-1"}, ReservationNumber: "R-1"},
		}, nil)
		f.reservations.EXPECT().ConfirmBox(gomock.Any(), "tx-1", "R-1").Return("", commands.ErrHardware)

		got, err := f.cmds.HandleNotification(context.Background(), signedNotification(f.entity.ID, "123", "payment"))

		require.NoError(t, err)
		assert.Equal(t, commands.PaymentUnconfirmed, got)
	})
}

func TestHandleNotification_Approved(t *testing.T) {
	f := newPaymentFixture(t)
	couponID := uuid.New()
	start := time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)
	meta := payment.Metadata{
		TransactionIDs:    []string{"tx-1", "tx-2", "tx-3"},
		ReservationNumber: "R-1",
		CouponID:          &couponID,
		ClientEmail:       "customer@example.com",
		Total:             702,
		Start:             start,
		End:               end,
	}
	period, err := reservation.NewPeriod(start, end)
	require.NoError(t, err)

	f.m.gateway.EXPECT().GetPayment(gomock.Any(), paymentToken, "123").
		Return(payment.Payment{ID: "123", Status: payment.StatusApproved, Metadata: meta}, nil)
	f.reservations.EXPECT().ConfirmBox(gomock.Any(), "tx-1", "R-1").Return("D-1", nil)
	f.reservations.EXPECT().ConfirmBox(gomock.Any(), "tx-2", "R-1").Return("", commands.ErrHardware)
	f.reservations.EXPECT().ConfirmBox(gomock.Any(), "tx-3", "R-1").Return("D-3", nil)
	f.m.reservations.EXPECT().MarkPaid(gomock.Any(), []string{"tx-1", "tx-3"}).Return(int64(2), nil)
	f.m.coupons.EXPECT().IncrementUses(gomock.Any(), couponID).Return(nil)
	f.m.notifier.EXPECT().SendConfirmation(gomock.Any(), "customer@example.com", []string{"D-1", "D-3"}, 702.0, period).Return(nil)

	got, err := f.cmds.HandleNotification(context.Background(), signedNotification(f.entity.ID, "123", "payment"))

	require.NoError(t, err)
	assert.Equal(t, commands.PaymentConfirmed, got)
}
