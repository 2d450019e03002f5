package validator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"money-transfers/internal/domain"
)

func TestNonNegativeBalance_IsAllowed(t *testing.T) {
	v := NewNonNegativeBalance()

	assert.True(t, v.IsAllowed(decimal.Zero))
	assert.True(t, v.IsAllowed(decimal.RequireFromString("0.01")))
	assert.True(t, v.IsAllowed(decimal.RequireFromString("1000000")))
	assert.False(t, v.IsAllowed(decimal.RequireFromString("-0.01")))
}

func TestTransferAmount_IsValid(t *testing.T) {
	v := NewTransferAmount()

	tests := []struct {
		name     string
		amount   string
		currency domain.Currency
		want     bool
	}{
		{name: "positive amount", amount: "50.00", currency: domain.EUR, want: true},
		{name: "smallest unit", amount: "0.01", currency: domain.EUR, want: true},
		{name: "zero", amount: "0", currency: domain.EUR, want: false},
		{name: "negative", amount: "-1.00", currency: domain.EUR, want: false},
		{name: "rounds to zero", amount: "0.004", currency: domain.EUR, want: false},
		{name: "sub-unit in zero-digit currency", amount: "0.4", currency: domain.JPY, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := v.IsValid(decimal.RequireFromString(tt.amount), tt.currency)
			assert.Equal(t, tt.want, got)
		})
	}
}
