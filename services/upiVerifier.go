package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultUPIID is the receiving UPI ID used when the admin has not
// configured one.
const DefaultUPIID = "shreeambika@oksbi"

// UPIVerifier implements BankVerifier. When BANK_VERIFY_URL is configured the
// check is delegated to that endpoint; otherwise verification is simulated
// locally: any transaction ID whose upper-cased form starts with "FAIL" is
// declined, everything else is accepted.
type UPIVerifier struct {
	client    *resty.Client
	verifyURL string
}

func NewUPIVerifier() *UPIVerifier {
	return &UPIVerifier{
		client:    resty.New().SetTimeout(10 * time.Second),
		verifyURL: os.Getenv("BANK_VERIFY_URL"),
	}
}

func (v *UPIVerifier) VerifyUPI(ctx context.Context, upiID, transactionID string) error {
	if v.verifyURL == "" {
		return v.simulate(upiID, transactionID)
	}

	resp, err := v.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetBody(map[string]string{
			"upi_id":         upiID,
			"transaction_id": transactionID,
		}).
		Post(v.verifyURL)
	if err != nil {
		return fmt.Errorf("bank verification request failed: %w", err)
	}
	if resp.StatusCode() != 200 {
		return ErrBankRejected
	}

	var result struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return fmt.Errorf("invalid response from bank verifier: %w", err)
	}
	if !strings.EqualFold(result.Status, "Success") {
		return ErrBankRejected
	}
	return nil
}

func (v *UPIVerifier) simulate(upiID, transactionID string) error {
	log.Printf("[SIMULATION] Verifying UPI payment %s to %s", transactionID, upiID)
	if strings.HasPrefix(strings.ToUpper(transactionID), "FAIL") {
		return ErrBankRejected
	}
	return nil
}
