package hardware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"locker-reservation/internal/domain/locker"
	"locker-reservation/internal/pkg/config"
)

const maxErrorBody = 4 << 10

// Client calls the locker controller on behalf of one entity per request.
// Every failure, including transport errors, comes back as *locker.HardwareError.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(cfg config.HardwareConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

type tokenRequestBody struct {
	SizeID    int       `json:"sizeId"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Confirmed bool      `json:"confirmed"`
	BoxID     *int      `json:"boxId,omitempty"`
}

type tokenEditBody struct {
	Token     string     `json:"token"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	BoxID     *int       `json:"boxId,omitempty"`
}

type extendBody struct {
	EndDate time.Time `json:"endDate"`
}

type tokenResponse struct {
	TransactionID string     `json:"idTransaction"`
	Token         string     `json:"token"`
	BoxID         *int       `json:"boxId"`
	EndDate       *time.Time `json:"endDate"`
}

func (r tokenResponse) toIssued() locker.IssuedToken {
	return locker.IssuedToken{
		TransactionID: r.TransactionID,
		Token:         r.Token,
		BoxID:         r.BoxID,
		End:           r.EndDate,
	}
}

type availabilityItem struct {
	SizeID       int `json:"sizeId"`
	QuantityFree int `json:"quantityFree"`
}

type lockerItem struct {
	Serial string `json:"serial"`
	Boxes  []struct {
		ID         int `json:"id"`
		PhysicalID int `json:"physicalId"`
		SizeID     int `json:"sizeId"`
	} `json:"boxes"`
	Tokens []struct {
		Token     string    `json:"token"`
		BoxID     *int      `json:"boxId"`
		StartDate time.Time `json:"startDate"`
		EndDate   time.Time `json:"endDate"`
	} `json:"tokens"`
}

func (c *Client) CreateToken(ctx context.Context, entityToken, lockerSerial string, req locker.TokenRequest) (locker.IssuedToken, error) {
	body := tokenRequestBody{
		SizeID:    req.SizeID,
		StartDate: req.Start,
		EndDate:   req.End,
		Confirmed: req.Confirmed,
		BoxID:     req.BoxID,
	}

	var resp tokenResponse
	if err := c.do(ctx, http.MethodPost, "/lockers/"+url.PathEscape(lockerSerial)+"/tokens", entityToken, body, &resp); err != nil {
		return locker.IssuedToken{}, err
	}
	return resp.toIssued(), nil
}

func (c *Client) EditToken(ctx context.Context, entityToken, lockerSerial string, edit locker.TokenEdit) error {
	body := tokenEditBody{
		Token:     edit.Token,
		StartDate: edit.Start,
		EndDate:   edit.End,
		BoxID:     edit.BoxID,
	}
	return c.do(ctx, http.MethodPatch, "/lockers/"+url.PathEscape(lockerSerial)+"/tokens", entityToken, body, nil)
}

func (c *Client) ConfirmToken(ctx context.Context, entityToken, transactionID string) (locker.IssuedToken, error) {
	var resp tokenResponse
	if err := c.do(ctx, http.MethodPost, "/transactions/"+url.PathEscape(transactionID)+"/confirm", entityToken, nil, &resp); err != nil {
		return locker.IssuedToken{}, err
	}
	if resp.TransactionID == "" {
		resp.TransactionID = transactionID
	}
	return resp.toIssued(), nil
}

func (c *Client) ExtendToken(ctx context.Context, entityToken, transactionID string, newEnd time.Time) (locker.IssuedToken, error) {
	var resp tokenResponse
	if err := c.do(ctx, http.MethodPost, "/transactions/"+url.PathEscape(transactionID)+"/extend", entityToken, extendBody{EndDate: newEnd}, &resp); err != nil {
		return locker.IssuedToken{}, err
	}
	return resp.toIssued(), nil
}

func (c *Client) GetAvailability(ctx context.Context, entityToken, lockerSerial string, start, end time.Time) ([]locker.Availability, error) {
	q := url.Values{}
	q.Set("start", start.UTC().Format(time.RFC3339))
	q.Set("end", end.UTC().Format(time.RFC3339))

	var items []availabilityItem
	path := "/lockers/" + url.PathEscape(lockerSerial) + "/availability?" + q.Encode()
	if err := c.do(ctx, http.MethodGet, path, entityToken, nil, &items); err != nil {
		return nil, err
	}

	out := make([]locker.Availability, len(items))
	for i, it := range items {
		out[i] = locker.Availability{SizeID: it.SizeID, Free: it.QuantityFree}
	}
	return out, nil
}

func (c *Client) ListLockers(ctx context.Context, entityToken string) ([]locker.Locker, error) {
	var items []lockerItem
	if err := c.do(ctx, http.MethodGet, "/lockers", entityToken, nil, &items); err != nil {
		return nil, err
	}

	out := make([]locker.Locker, len(items))
	for i, it := range items {
		l := locker.Locker{Serial: it.Serial}
		for _, b := range it.Boxes {
			l.Boxes = append(l.Boxes, locker.Box{ID: b.ID, PhysicalID: b.PhysicalID, SizeID: b.SizeID})
		}
		for _, t := range it.Tokens {
			l.Tokens = append(l.Tokens, locker.Token{Value: t.Token, BoxID: t.BoxID, Start: t.StartDate, End: t.EndDate})
		}
		out[i] = l
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path, entityToken string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return &locker.HardwareError{Kind: locker.ErrorUnknown, Raw: "encode request: " + err.Error()}
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return &locker.HardwareError{Kind: locker.ErrorUnknown, Raw: "build request: " + err.Error()}
	}
	req.Header.Set("Authorization", "Bearer "+entityToken)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("locker controller unreachable",
			slog.String("method", method),
			slog.String("path", path),
			slog.String("error", err.Error()))
		return locker.Unreachable(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		hwErr := locker.ClassifyFailure(resp.StatusCode, strings.TrimSpace(string(raw)))
		c.logger.Warn("locker controller refused request",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.String("kind", string(hwErr.Kind)))
		return hwErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &locker.HardwareError{Kind: locker.ErrorUnknown, Status: resp.StatusCode, Raw: "undecodable response: " + err.Error()}
	}
	return nil
}
