package mailer

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"locker-reservation/internal/domain/reservation"
	"locker-reservation/internal/pkg/clock"
	"locker-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	JobKindDelivered    = "email.delivered"
	JobKindGoodbye      = "email.goodbye"
	JobKindConfirmation = "email.confirmation"

	jobStatusSent   = "sent"
	jobStatusFailed = "failed"

	displayLayout = "02/01/2006 15:04"
)

// Notifier sends customer emails and keeps a notification_jobs row per attempt.
// A failure to record the job never blocks the send.
type Notifier struct {
	uow    shared.UnitOfWork
	sender Sender
	clock  clock.Clock
	logger *slog.Logger
}

func NewNotifier(uow shared.UnitOfWork, sender Sender, clk clock.Clock, logger *slog.Logger) *Notifier {
	return &Notifier{
		uow:    uow,
		sender: sender,
		clock:  clk,
		logger: logger,
	}
}

type deliveredData struct {
	To       string `json:"to"`
	Address  string `json:"address"`
	Token    string `json:"token"`
	Deadline string `json:"deadline"`
}

type goodbyeData struct {
	To string `json:"to"`
}

type confirmationData struct {
	To     string   `json:"to"`
	Tokens []string `json:"tokens"`
	Price  float64  `json:"price"`
	Start  string   `json:"start"`
	End    string   `json:"end"`
}

func (n *Notifier) SendDelivered(ctx context.Context, to, lockerAddress string, deadline time.Time, token string) error {
	data := deliveredData{
		To:       to,
		Address:  lockerAddress,
		Token:    token,
		Deadline: deadline.Format(displayLayout),
	}
	return n.send(ctx, JobKindDelivered, to, deliveredMessage, data)
}

func (n *Notifier) SendGoodbye(ctx context.Context, to string) error {
	return n.send(ctx, JobKindGoodbye, to, goodbyeMessage, goodbyeData{To: to})
}

func (n *Notifier) SendConfirmation(ctx context.Context, to string, tokens []string, price float64, period reservation.Period) error {
	data := confirmationData{
		To:     to,
		Tokens: tokens,
		Price:  price,
		Start:  period.Start().Format(displayLayout),
		End:    period.End().Format(displayLayout),
	}
	return n.send(ctx, JobKindConfirmation, to, confirmationMessage, data)
}

func (n *Notifier) send(ctx context.Context, kind, to string, msg message, data any) error {
	body, err := msg.render(data)
	if err != nil {
		return err
	}

	jobID := n.recordJob(ctx, kind, to, data)

	sendErr := n.sender.Send(ctx, to, msg.subject, body)
	if sendErr != nil {
		n.logger.WarnContext(ctx, "failed to send email", "kind", kind, "error", sendErr)
	}

	if jobID != uuid.Nil {
		n.finishJob(ctx, jobID, sendErr)
	}
	return sendErr
}

func (n *Notifier) recordJob(ctx context.Context, kind, to string, data any) uuid.UUID {
	payload, err := json.Marshal(data)
	if err != nil {
		n.logger.ErrorContext(ctx, "failed to encode notification payload", "kind", kind, "error", err)
		return uuid.Nil
	}

	var jobID uuid.UUID
	err = n.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := tx.Notifications().CreateJob(ctx, kind, to, payload, n.clock.Now())
		if err != nil {
			return err
		}
		jobID = id
		return nil
	})
	if err != nil {
		n.logger.ErrorContext(ctx, "failed to record notification job", "kind", kind, "error", err)
		return uuid.Nil
	}
	return jobID
}

func (n *Notifier) finishJob(ctx context.Context, jobID uuid.UUID, sendErr error) {
	status := jobStatusSent
	var lastError *string
	if sendErr != nil {
		status = jobStatusFailed
		msg := sendErr.Error()
		lastError = &msg
	}

	err := n.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Notifications().UpdateJobStatus(ctx, jobID, status, lastError)
	})
	if err != nil {
		n.logger.ErrorContext(ctx, "failed to update notification job", "job_id", jobID, "status", status, "error", err)
	}
}
