//go:build unit

package hardware_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"locker-reservation/internal/domain/locker"
	"locker-reservation/internal/infra/hardware"
	"locker-reservation/internal/pkg/config"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, h http.HandlerFunc) *hardware.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return hardware.NewClient(config.HardwareConfig{BaseURL: srv.URL + "/", Timeout: 2 * time.Second},
		slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCreateToken(t *testing.T) {
	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(48 * time.Hour)

	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/lockers/LCK-1/tokens", r.URL.Path)
		assert.Equal(t, "Bearer hw-token", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(2), body["sizeId"])
		assert.Equal(t, false, body["confirmed"])
		assert.NotContains(t, body, "boxId")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"idTransaction":"tx-9"}`))
	})

	got, err := client.CreateToken(context.Background(), "hw-token", "LCK-1", locker.TokenRequest{SizeID: 2, Start: start, End: end})

	require.NoError(t, err)
	assert.Equal(t, "tx-9", got.TransactionID)
}

func TestConfirmToken_KeepsTransactionID(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transactions/tx-1/confirm", r.URL.Path)
		_, _ = w.Write([]byte(`{"token":"483920"}`))
	})

	got, err := client.ConfirmToken(context.Background(), "hw-token", "tx-1")

	require.NoError(t, err)
	assert.Equal(t, locker.IssuedToken{TransactionID: "tx-1", Token: "483920"}, got)
}

func TestFailuresAreTyped(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   locker.ErrorKind
	}{
		{name: "offline", status: http.StatusServiceUnavailable, body: "locker desconectado", want: locker.ErrorOffline},
		{name: "already reserved", status: http.StatusConflict, body: "box reservado", want: locker.ErrorAlreadyReserved},
		{name: "invalid window", status: http.StatusUnprocessableEntity, body: "fecha invalida", want: locker.ErrorInvalidWindow},
		{name: "unknown", status: http.StatusInternalServerError, body: "boom", want: locker.ErrorUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			err := client.EditToken(context.Background(), "hw-token", "LCK-1", locker.TokenEdit{Token: "1"})

			require.Error(t, err)
			he, ok := locker.AsHardwareError(err)
			require.True(t, ok)
			assert.Equal(t, tt.want, he.Kind)
			assert.Equal(t, tt.body, he.Raw)
		})
	}
}

func TestUnreachableControllerIsOffline(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	client := hardware.NewClient(config.HardwareConfig{BaseURL: srv.URL}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := client.ListLockers(context.Background(), "hw-token")

	assert.True(t, locker.IsKind(err, locker.ErrorOffline))
}

func TestBadBaseURLIsTyped(t *testing.T) {
	client := hardware.NewClient(config.HardwareConfig{BaseURL: "http://[::1"}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := client.ConfirmToken(context.Background(), "hw-token", "tx-1")

	require.Error(t, err)
	assert.True(t, locker.IsKind(err, locker.ErrorUnknown))
}

func TestGetAvailability(t *testing.T) {
	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/lockers/LCK-1/availability", r.URL.Path)
		assert.Equal(t, "2025-03-01T10:00:00Z", r.URL.Query().Get("start"))
		_, _ = w.Write([]byte(`[{"sizeId":1,"quantityFree":2},{"sizeId":3,"quantityFree":0}]`))
	})

	got, err := client.GetAvailability(context.Background(), "hw-token", "LCK-1", start, start.Add(24*time.Hour))

	require.NoError(t, err)
	assert.Equal(t, []locker.Availability{{SizeID: 1, Free: 2}, {SizeID: 3, Free: 0}}, got)
}

func TestListLockers(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"serial":"LCK-1","boxes":[{"id":4,"physicalId":40,"sizeId":2}],
			"tokens":[{"token":"111","boxId":4,"startDate":"2025-03-01T10:00:00Z","endDate":"2025-03-02T10:00:00Z"}]}]`))
	})

	got, err := client.ListLockers(context.Background(), "hw-token")

	require.NoError(t, err)
	box := 4
	want := []locker.Locker{{
		Serial: "LCK-1",
		Boxes:  []locker.Box{{ID: 4, PhysicalID: 40, SizeID: 2}},
		Tokens: []locker.Token{{
			Value: "111",
			BoxID: &box,
			Start: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
			End:   time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC),
		}},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("lockers mismatch (-want +got):\n%s", diff)
	}
}
