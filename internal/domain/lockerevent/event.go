package lockerevent

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"
)

var (
	ErrMalformedEnvelope = errors.New("malformed locker event envelope")
	ErrMalformedPayload  = errors.New("malformed locker event payload")
)

type Kind string

const KindTokenResponse Kind = "RespuestaToken"

const (
	AnswerAccepted = "Aceptado"
	AnswerRejected = "Rechazado"
)

// Event is one hardware notification. Concrete types: *TokenResponse, *Unknown.
type Event interface {
	Kind() Kind
	LockerSerial() string
	OccurredAt() time.Time
}

type envelope struct {
	Kind         Kind            `json:"evento"`
	LockerSerial flexString      `json:"nroSerieLocker"`
	CreatedAt    string          `json:"fechaCreacion"`
	Data         json.RawMessage `json:"data"`
}

type header struct {
	kind   Kind
	serial string
	at     time.Time
}

func (h header) Kind() Kind            { return h.kind }
func (h header) LockerSerial() string  { return h.serial }
func (h header) OccurredAt() time.Time { return h.at }

type TokenResponse struct {
	header
	Token  string
	Box    *int
	Answer string
}

func (e *TokenResponse) Accepted() bool {
	return strings.EqualFold(e.Answer, AnswerAccepted)
}

type Unknown struct {
	header
	Data json.RawMessage
}

type tokenResponsePayload struct {
	Token     flexString `json:"Token"`
	Box       *flexInt   `json:"Box"`
	Respuesta string     `json:"Respuesta"`
}

func Decode(body []byte) (Event, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, errors.Join(ErrMalformedEnvelope, err)
	}
	if env.Kind == "" {
		return nil, ErrMalformedEnvelope
	}

	at, err := parseTimestamp(env.CreatedAt)
	if err != nil {
		return nil, errors.Join(ErrMalformedEnvelope, err)
	}
	h := header{kind: env.Kind, serial: string(env.LockerSerial), at: at}

	switch env.Kind {
	case KindTokenResponse:
		var p tokenResponsePayload
		if err := json.Unmarshal(env.Data, &p); err != nil {
			return nil, errors.Join(ErrMalformedPayload, err)
		}
		if p.Token == "" {
			return nil, ErrMalformedPayload
		}
		ev := &TokenResponse{header: h, Token: string(p.Token), Answer: p.Respuesta}
		if p.Box != nil {
			v := int(*p.Box)
			ev.Box = &v
		}
		return ev, nil
	default:
		return &Unknown{header: h, Data: env.Data}, nil
	}
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// parseTimestamp returns the zero time when the envelope carries none.
func parseTimestamp(s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return time.Time{}, nil
	}
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// flexString accepts a JSON string or number.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

type flexInt int

func (f *flexInt) UnmarshalJSON(b []byte) error {
	var s flexString
	if err := s.UnmarshalJSON(b); err != nil {
		return err
	}
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(string(s))
	if err != nil {
		return err
	}
	*f = flexInt(n)
	return nil
}
