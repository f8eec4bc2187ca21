//go:build unit

package mailer_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"locker-reservation/internal/domain/reservation"
	"locker-reservation/internal/infra/mailer"
	"locker-reservation/internal/pkg/clock"
	"locker-reservation/internal/usecase/shared"
	sharedmock "locker-reservation/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type sentMail struct {
	to, subject, body string
}

type fakeSender struct {
	sent []sentMail
	err  error
}

func (f *fakeSender) Send(_ context.Context, to, subject, body string) error {
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: body})
	return f.err
}

type notifierMocks struct {
	uow    *sharedmock.MockUnitOfWork
	jobs   *sharedmock.MockNotificationRepository
	sender *fakeSender
	now    time.Time
	n      *mailer.Notifier
}

func newNotifierMocks(t *testing.T) *notifierMocks {
	ctrl := gomock.NewController(t)
	uow := sharedmock.NewMockUnitOfWork(ctrl)
	tx := sharedmock.NewMockTx(ctrl)
	jobs := sharedmock.NewMockNotificationRepository(ctrl)

	uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, tx)
		}).AnyTimes()
	tx.EXPECT().Notifications().Return(jobs).AnyTimes()

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	sender := &fakeSender{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &notifierMocks{
		uow:    uow,
		jobs:   jobs,
		sender: sender,
		now:    now,
		n:      mailer.NewNotifier(uow, sender, clock.NewMockClock(now), logger),
	}
}

func TestSendDelivered_RecordsSentJob(t *testing.T) {
	m := newNotifierMocks(t)
	jobID := uuid.New()

	gomock.InOrder(
		m.jobs.EXPECT().CreateJob(gomock.Any(), mailer.JobKindDelivered, "ana@example.com", gomock.Any(), m.now).Return(jobID, nil),
		m.jobs.EXPECT().UpdateJobStatus(gomock.Any(), jobID, "sent", nil).Return(nil),
	)

	deadline := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	err := m.n.SendDelivered(context.Background(), "ana@example.com", "Av. Siempre Viva 742", deadline, "D-1")

	require.NoError(t, err)
	require.Len(t, m.sender.sent, 1)
	assert.Equal(t, "ana@example.com", m.sender.sent[0].to)
	assert.Contains(t, m.sender.sent[0].body, "Av. Siempre Viva 742")
	assert.Contains(t, m.sender.sent[0].body, "D-1")
	assert.Contains(t, m.sender.sent[0].body, "01/03/2024 12:30")
}

func TestSendConfirmation_ListsEveryToken(t *testing.T) {
	m := newNotifierMocks(t)
	jobID := uuid.New()
	m.jobs.EXPECT().CreateJob(gomock.Any(), mailer.JobKindConfirmation, "ana@example.com", gomock.Any(), m.now).Return(jobID, nil)
	m.jobs.EXPECT().UpdateJobStatus(gomock.Any(), jobID, "sent", nil).Return(nil)

	period, err := reservation.NewPeriod(m.now, m.now.Add(48*time.Hour))
	require.NoError(t, err)

	err = m.n.SendConfirmation(context.Background(), "ana@example.com", []string{"D-1", "D-3"}, 702, period)

	require.NoError(t, err)
	require.Len(t, m.sender.sent, 1)
	body := m.sender.sent[0].body
	assert.Contains(t, body, "Compartimiento 1: código de depósito D-1")
	assert.Contains(t, body, "Compartimiento 2: código de depósito D-3")
	assert.Contains(t, body, "702.00")
	assert.Contains(t, body, "03/03/2024 12:00")
}

func TestSend_FailureIsRecordedAndReturned(t *testing.T) {
	m := newNotifierMocks(t)
	m.sender.err = errors.New("connection refused")
	jobID := uuid.New()

	m.jobs.EXPECT().CreateJob(gomock.Any(), mailer.JobKindGoodbye, "ana@example.com", gomock.Any(), m.now).Return(jobID, nil)
	m.jobs.EXPECT().UpdateJobStatus(gomock.Any(), jobID, "failed", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ string, lastError *string) error {
			require.NotNil(t, lastError)
			assert.Equal(t, "connection refused", *lastError)
			return nil
		})

	err := m.n.SendGoodbye(context.Background(), "ana@example.com")

	assert.EqualError(t, err, "connection refused")
}

func TestSend_JobRecordingFailureStillSends(t *testing.T) {
	m := newNotifierMocks(t)
	m.jobs.EXPECT().CreateJob(gomock.Any(), mailer.JobKindGoodbye, "ana@example.com", gomock.Any(), m.now).
		Return(uuid.Nil, errors.New("db down"))

	err := m.n.SendGoodbye(context.Background(), "ana@example.com")

	require.NoError(t, err)
	assert.Len(t, m.sender.sent, 1)
}
