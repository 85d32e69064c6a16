package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
)

func TestUPIVerifier_Simulation(t *testing.T) {
	verifier := &UPIVerifier{client: resty.New()}

	tests := []struct {
		name          string
		transactionID string
		expectedError error
	}{
		{name: "normal id accepted", transactionID: "ABC123456789"},
		{name: "uppercase fail prefix declined", transactionID: "FAIL12345678", expectedError: ErrBankRejected},
		{name: "lowercase fail prefix declined", transactionID: "fail12345678", expectedError: ErrBankRejected},
		{name: "mixed case fail prefix declined", transactionID: "FaIl12345678", expectedError: ErrBankRejected},
		{name: "fail elsewhere in the id accepted", transactionID: "ABCFAIL12345"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := verifier.VerifyUPI(context.Background(), DefaultUPIID, tt.transactionID)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUPIVerifier_RemoteEndpoint(t *testing.T) {
	t.Run("success status accepted", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"status":"Success"}`))
		}))
		defer srv.Close()

		verifier := &UPIVerifier{client: resty.New().SetTimeout(time.Second), verifyURL: srv.URL}
		assert.NoError(t, verifier.VerifyUPI(context.Background(), "store@upi", "ABC123456789"))
	})

	t.Run("declined status rejected", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"status":"Declined"}`))
		}))
		defer srv.Close()

		verifier := &UPIVerifier{client: resty.New().SetTimeout(time.Second), verifyURL: srv.URL}
		assert.ErrorIs(t, verifier.VerifyUPI(context.Background(), "store@upi", "ABC123456789"), ErrBankRejected)
	})

	t.Run("non-200 rejected", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusPaymentRequired)
		}))
		defer srv.Close()

		verifier := &UPIVerifier{client: resty.New().SetTimeout(time.Second), verifyURL: srv.URL}
		assert.ErrorIs(t, verifier.VerifyUPI(context.Background(), "store@upi", "ABC123456789"), ErrBankRejected)
	})
}
