package utils

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOTP(t *testing.T) {
	for i := 0; i < 20; i++ {
		otp := GenerateOTP(4)
		assert.Len(t, otp, 4)
		for _, c := range otp {
			assert.True(t, c >= '0' && c <= '9')
		}
	}
}

func TestMemoryOTPStore_IssueAndVerify(t *testing.T) {
	store := NewMemoryOTPStore()
	ctx := context.Background()

	code, err := store.Issue(ctx, "phone:9876543210")
	assert.NoError(t, err)
	assert.Len(t, code, 4)

	assert.NoError(t, store.Verify(ctx, "phone:9876543210", code))

	// A code is consumed by a successful verification.
	assert.ErrorIs(t, store.Verify(ctx, "phone:9876543210", code), ErrOTPExpired)
}

func TestMemoryOTPStore_NeverIssued(t *testing.T) {
	store := NewMemoryOTPStore()
	assert.ErrorIs(t, store.Verify(context.Background(), "phone:000", "1234"), ErrOTPExpired)
}

func TestMemoryOTPStore_WrongCode(t *testing.T) {
	store := NewMemoryOTPStore()
	ctx := context.Background()

	code, err := store.Issue(ctx, "email:a@b.c")
	assert.NoError(t, err)

	wrong := "0000"
	if wrong == code {
		wrong = "1111"
	}

	assert.ErrorIs(t, store.Verify(ctx, "email:a@b.c", wrong), ErrOTPInvalid)

	// The right code still works while attempts remain.
	assert.NoError(t, store.Verify(ctx, "email:a@b.c", code))
}

func TestMemoryOTPStore_AttemptsExhausted(t *testing.T) {
	store := NewMemoryOTPStore()
	ctx := context.Background()

	code, err := store.Issue(ctx, "phone:123")
	assert.NoError(t, err)

	wrong := "0000"
	if wrong == code {
		wrong = "1111"
	}

	assert.ErrorIs(t, store.Verify(ctx, "phone:123", wrong), ErrOTPInvalid)
	assert.ErrorIs(t, store.Verify(ctx, "phone:123", wrong), ErrOTPInvalid)
	assert.ErrorIs(t, store.Verify(ctx, "phone:123", wrong), ErrOTPInvalid)

	// Fourth attempt burns the record even with the right code.
	assert.ErrorIs(t, store.Verify(ctx, "phone:123", code), ErrOTPAttempts)
	assert.ErrorIs(t, store.Verify(ctx, "phone:123", code), ErrOTPExpired)
}

func TestMemoryOTPStore_Expiry(t *testing.T) {
	store := NewMemoryOTPStore()
	ctx := context.Background()

	code, err := store.Issue(ctx, "phone:456")
	assert.NoError(t, err)

	store.now = func() time.Time { return time.Now().Add(otpTTL + time.Second) }

	assert.ErrorIs(t, store.Verify(ctx, "phone:456", code), ErrOTPExpired)
}

func TestMemoryOTPStore_ReissueReplacesCode(t *testing.T) {
	store := NewMemoryOTPStore()
	ctx := context.Background()

	first, err := store.Issue(ctx, "phone:789")
	assert.NoError(t, err)
	second, err := store.Issue(ctx, "phone:789")
	assert.NoError(t, err)

	if first != second {
		assert.ErrorIs(t, store.Verify(ctx, "phone:789", first), ErrOTPInvalid)
	}
	assert.NoError(t, store.Verify(ctx, "phone:789", second))
}
