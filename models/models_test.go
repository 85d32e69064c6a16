package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLookupKey(t *testing.T) {
	tests := []struct {
		name        string
		phone       string
		email       string
		expected    LookupKey
		expectError bool
	}{
		{name: "phone only", phone: "9876543210", expected: LookupKey{Column: "phone", Value: "9876543210"}},
		{name: "email only", email: "a@b.c", expected: LookupKey{Column: "email", Value: "a@b.c"}},
		{name: "phone wins over email", phone: "9876543210", email: "a@b.c", expected: LookupKey{Column: "phone", Value: "9876543210"}},
		{name: "neither", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := NewLookupKey(tt.phone, tt.email)
			if tt.expectError {
				assert.ErrorIs(t, err, ErrLookupKeyMissing)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, key)
			assert.Equal(t, tt.expected.Column+":"+tt.expected.Value, key.Key())
		})
	}
}

func TestMarshalOrderItems(t *testing.T) {
	items := []OrderItem{{ProductID: "ply-1", Price: 1850, Quantity: 2}}
	raw, err := MarshalOrderItems(items)
	assert.NoError(t, err)
	assert.JSONEq(t, `[{"id":"ply-1","price":1850,"quantity":2}]`, string(raw))
}
