//go:build unit

package lockerevent_test

import (
	"testing"
	"time"

	"locker-reservation/internal/domain/lockerevent"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	t.Run("token response with numeric token", func(t *testing.T) {
		body := `{"evento":"RespuestaToken","nroSerieLocker":"LCK-1","fechaCreacion":"2026-02-01T10:30:00Z",
			"data":{"Token":123456,"Box":"7","Respuesta":"Aceptado"}}`

		ev, err := lockerevent.Decode([]byte(body))
		require.NoError(t, err)

		tr, ok := ev.(*lockerevent.TokenResponse)
		require.True(t, ok)
		assert.Equal(t, lockerevent.KindTokenResponse, tr.Kind())
		assert.Equal(t, "LCK-1", tr.LockerSerial())
		assert.Equal(t, time.Date(2026, 2, 1, 10, 30, 0, 0, time.UTC), tr.OccurredAt())
		assert.Equal(t, "123456", tr.Token)
		require.NotNil(t, tr.Box)
		assert.Equal(t, 7, *tr.Box)
		assert.True(t, tr.Accepted())
	})

	t.Run("rejected attempt", func(t *testing.T) {
		body := `{"evento":"RespuestaToken","nroSerieLocker":42,"fechaCreacion":"2026-02-01 10:30:00",
			"data":{"Token":"9","Respuesta":"Rechazado"}}`

		ev, err := lockerevent.Decode([]byte(body))
		require.NoError(t, err)
		tr := ev.(*lockerevent.TokenResponse)
		assert.False(t, tr.Accepted())
		assert.Nil(t, tr.Box)
		assert.Equal(t, "42", tr.LockerSerial())
	})

	t.Run("missing timestamp decodes with zero time", func(t *testing.T) {
		body := `{"evento":"RespuestaToken","nroSerieLocker":"L1","data":{"Token":"123","Box":4,"Respuesta":"Aceptado"}}`

		ev, err := lockerevent.Decode([]byte(body))
		require.NoError(t, err)
		tr, ok := ev.(*lockerevent.TokenResponse)
		require.True(t, ok)
		assert.True(t, tr.OccurredAt().IsZero())
		assert.Equal(t, "123", tr.Token)
		require.NotNil(t, tr.Box)
		assert.Equal(t, 4, *tr.Box)
	})

	t.Run("unknown kinds decode to a no-op variant", func(t *testing.T) {
		body := `{"evento":"PuertaAbierta","nroSerieLocker":"LCK-1","fechaCreacion":"2026-02-01T10:30:00Z","data":{"x":1}}`

		ev, err := lockerevent.Decode([]byte(body))
		require.NoError(t, err)
		_, ok := ev.(*lockerevent.Unknown)
		assert.True(t, ok)
		assert.Equal(t, lockerevent.Kind("PuertaAbierta"), ev.Kind())
	})

	t.Run("malformed input", func(t *testing.T) {
		cases := map[string]string{
			"not json":         `{`,
			"missing kind":     `{"nroSerieLocker":"x","fechaCreacion":"2026-02-01T10:30:00Z"}`,
			"bad timestamp":    `{"evento":"RespuestaToken","fechaCreacion":"yesterday","data":{}}`,
			"missing token":    `{"evento":"RespuestaToken","fechaCreacion":"2026-02-01T10:30:00Z","data":{"Respuesta":"Aceptado"}}`,
			"payload not json": `{"evento":"RespuestaToken","fechaCreacion":"2026-02-01T10:30:00Z","data":"oops"}`,
		}
		for name, body := range cases {
			t.Run(name, func(t *testing.T) {
				_, err := lockerevent.Decode([]byte(body))
				assert.Error(t, err)
			})
		}
	})
}
