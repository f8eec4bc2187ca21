package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
)

var (
	ErrMissingSignature   = errors.New("missing payment signature")
	ErrMalformedSignature = errors.New("malformed payment signature")
	ErrSignatureMismatch  = errors.New("payment signature mismatch")
)

// Signature is the parsed x-signature header: "ts=<unix>,v1=<hex hmac>".
type Signature struct {
	Timestamp string
	V1        string
}

func ParseSignature(header string) (Signature, error) {
	if strings.TrimSpace(header) == "" {
		return Signature{}, ErrMissingSignature
	}

	var sig Signature
	for _, part := range strings.Split(header, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch strings.TrimSpace(key) {
		case "ts":
			sig.Timestamp = strings.TrimSpace(value)
		case "v1":
			sig.V1 = strings.TrimSpace(value)
		}
	}

	if sig.Timestamp == "" || sig.V1 == "" {
		return Signature{}, ErrMalformedSignature
	}
	return sig, nil
}

func Manifest(paymentID, requestID, timestamp string) string {
	return "id:" + paymentID + ";request-id:" + requestID + ";ts:" + timestamp + ";"
}

func Sign(secret, manifest string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(manifest))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify checks the signature header against the entity webhook secret.
func Verify(secret, header, requestID, paymentID string) error {
	sig, err := ParseSignature(header)
	if err != nil {
		return err
	}

	want := Sign(secret, Manifest(paymentID, requestID, sig.Timestamp))
	got, err := hex.DecodeString(sig.V1)
	if err != nil {
		return ErrMalformedSignature
	}
	expected, _ := hex.DecodeString(want)
	if !hmac.Equal(got, expected) {
		return ErrSignatureMismatch
	}
	return nil
}
