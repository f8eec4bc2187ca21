//go:build unit

package locker_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"locker-reservation/internal/domain/locker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyFailure(t *testing.T) {
	cases := []struct {
		name   string
		status int
		raw    string
		want   locker.ErrorKind
	}{
		{name: "gateway down", status: http.StatusBadGateway, raw: "", want: locker.ErrorOffline},
		{name: "offline message", status: http.StatusBadRequest, raw: "Locker desconectado", want: locker.ErrorOffline},
		{name: "conflict", status: http.StatusConflict, raw: "busy", want: locker.ErrorAlreadyReserved},
		{name: "no availability message", status: http.StatusBadRequest, raw: "No hay disponibilidad para el tamaño", want: locker.ErrorAlreadyReserved},
		{name: "bad window", status: http.StatusUnprocessableEntity, raw: "", want: locker.ErrorInvalidWindow},
		{name: "date message", status: http.StatusBadRequest, raw: "Fecha de término inválida", want: locker.ErrorInvalidWindow},
		{name: "anything else", status: http.StatusInternalServerError, raw: "boom", want: locker.ErrorUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			he := locker.ClassifyFailure(tc.status, tc.raw)
			assert.Equal(t, tc.want, he.Kind)
			assert.Equal(t, tc.raw, he.Raw)
		})
	}
}

func TestAsHardwareError(t *testing.T) {
	wrapped := fmt.Errorf("reserve: %w", locker.ClassifyFailure(http.StatusConflict, "taken"))

	he, ok := locker.AsHardwareError(wrapped)
	require.True(t, ok)
	assert.Equal(t, "taken", he.Raw)
	assert.True(t, locker.IsKind(wrapped, locker.ErrorAlreadyReserved))
	assert.False(t, locker.IsKind(errors.New("plain"), locker.ErrorAlreadyReserved))

	assert.Equal(t, locker.ErrorOffline, locker.Unreachable(errors.New("dial tcp: refused")).Kind)
}
