package locker

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

type ErrorKind string

const (
	ErrorOffline         ErrorKind = "offline"
	ErrorAlreadyReserved ErrorKind = "already-reserved"
	ErrorInvalidWindow   ErrorKind = "invalid-window"
	ErrorUnknown         ErrorKind = "unknown"
)

// HardwareError is a failed call to the locker controller. Raw keeps the controller's message.
type HardwareError struct {
	Kind   ErrorKind
	Status int
	Raw    string
}

func (e *HardwareError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("locker hardware %s (status %d): %s", e.Kind, e.Status, e.Raw)
	}
	return fmt.Sprintf("locker hardware %s: %s", e.Kind, e.Raw)
}

func AsHardwareError(err error) (*HardwareError, bool) {
	var he *HardwareError
	if errors.As(err, &he) {
		return he, true
	}
	return nil, false
}

func IsKind(err error, kind ErrorKind) bool {
	he, ok := AsHardwareError(err)
	return ok && he.Kind == kind
}

// ClassifyFailure maps a non-2xx controller response to a typed error.
func ClassifyFailure(status int, raw string) *HardwareError {
	msg := strings.ToLower(raw)
	kind := ErrorUnknown

	switch {
	case status == http.StatusServiceUnavailable, status == http.StatusBadGateway, status == http.StatusGatewayTimeout,
		strings.Contains(msg, "offline"), strings.Contains(msg, "desconectado"), strings.Contains(msg, "sin conexion"):
		kind = ErrorOffline
	case status == http.StatusConflict,
		strings.Contains(msg, "reservad"), strings.Contains(msg, "no hay disponibilidad"), strings.Contains(msg, "not available"):
		kind = ErrorAlreadyReserved
	case status == http.StatusUnprocessableEntity,
		strings.Contains(msg, "fecha"), strings.Contains(msg, "date"):
		kind = ErrorInvalidWindow
	}

	return &HardwareError{Kind: kind, Status: status, Raw: raw}
}

// Unreachable wraps a transport failure.
func Unreachable(err error) *HardwareError {
	return &HardwareError{Kind: ErrorOffline, Raw: err.Error()}
}
