//go:build unit

package payment_test

import (
	"testing"

	"locker-reservation/internal/domain/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	secret    = "whsec_test"
	paymentID = "123456789"
	requestID = "bb56a2f1-6aae-46ac-982e-9dcd3581d08e"
	ts        = "1742505638683"
)

func header(ts, v1 string) string {
	return "ts=" + ts + ",v1=" + v1
}

func TestManifest(t *testing.T) {
	assert.Equal(t, "id:1;request-id:r;ts:2;", payment.Manifest("1", "r", "2"))
}

func TestVerify(t *testing.T) {
	good := payment.Sign(secret, payment.Manifest(paymentID, requestID, ts))

	t.Run("valid signature", func(t *testing.T) {
		require.NoError(t, payment.Verify(secret, header(ts, good), requestID, paymentID))
	})

	t.Run("tolerates spacing in header", func(t *testing.T) {
		require.NoError(t, payment.Verify(secret, " ts = "+ts+" , v1 = "+good, requestID, paymentID))
	})

	cases := []struct {
		name      string
		header    string
		requestID string
		paymentID string
		errIs     error
	}{
		{name: "tampered ts", header: header("1742505638684", good), requestID: requestID, paymentID: paymentID, errIs: payment.ErrSignatureMismatch},
		{name: "tampered v1", header: header(ts, payment.Sign("other", payment.Manifest(paymentID, requestID, ts))), requestID: requestID, paymentID: paymentID, errIs: payment.ErrSignatureMismatch},
		{name: "other payment id", header: header(ts, good), requestID: requestID, paymentID: "987", errIs: payment.ErrSignatureMismatch},
		{name: "other request id", header: header(ts, good), requestID: "x", paymentID: paymentID, errIs: payment.ErrSignatureMismatch},
		{name: "v1 not hex", header: header(ts, "zz"), requestID: requestID, paymentID: paymentID, errIs: payment.ErrMalformedSignature},
		{name: "missing v1", header: "ts=" + ts, requestID: requestID, paymentID: paymentID, errIs: payment.ErrMalformedSignature},
		{name: "empty header", header: "", requestID: requestID, paymentID: paymentID, errIs: payment.ErrMissingSignature},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := payment.Verify(secret, tc.header, tc.requestID, tc.paymentID)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}
