package payment

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"locker-reservation/internal/domain/payment"
	"locker-reservation/internal/pkg/config"
	"locker-reservation/internal/pkg/errs"
)

var ErrPaymentLookup = errs.New("payment provider lookup failed")

// Gateway reads payments from the provider REST API with the entity's access token.
type Gateway struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewGateway(cfg config.PaymentConfig, logger *slog.Logger) *Gateway {
	return &Gateway{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

type paymentResponse struct {
	ID       json.Number      `json:"id"`
	Status   string           `json:"status"`
	Metadata payment.Metadata `json:"metadata"`
}

func (g *Gateway) GetPayment(ctx context.Context, accessToken, paymentID string) (payment.Payment, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/v1/payments/"+url.PathEscape(paymentID), nil)
	if err != nil {
		return payment.Payment{}, errs.Wrap(err, "build payment request")
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return payment.Payment{}, errs.Mark(errs.Wrap(err, "get payment"), ErrPaymentLookup)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		g.logger.Warn("payment provider refused lookup",
			slog.String("payment_id", paymentID),
			slog.Int("status", resp.StatusCode))
		return payment.Payment{}, errs.Mark(errs.Newf("payment %s: status %d: %s", paymentID, resp.StatusCode, strings.TrimSpace(string(raw))), ErrPaymentLookup)
	}

	var body paymentResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return payment.Payment{}, errs.Mark(errs.Wrap(err, "decode payment"), ErrPaymentLookup)
	}

	id := body.ID.String()
	if id == "" {
		id = paymentID
	}
	return payment.Payment{
		ID:       id,
		Status:   payment.Status(body.Status),
		Metadata: body.Metadata,
	}, nil
}
