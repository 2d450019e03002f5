// Package validator holds the pluggable amount policies consumed by the
// ledger and the HTTP boundary.
package validator

import (
	"github.com/shopspring/decimal"

	"money-transfers/internal/domain"
)

// NonNegativeBalance allows any balance at or above zero. It is the default
// balance policy; a deployment allowing overdrafts would plug in a different
// one.
type NonNegativeBalance struct{}

func NewNonNegativeBalance() NonNegativeBalance {
	return NonNegativeBalance{}
}

// IsAllowed reports whether the resulting balance is acceptable.
func (NonNegativeBalance) IsAllowed(balance decimal.Decimal) bool {
	return !balance.IsNegative()
}

// TransferAmount checks transfer amounts before submission: an amount must
// still be strictly positive after rounding to the currency's scale, since
// transferring zero or negative amounts makes no sense.
type TransferAmount struct{}

func NewTransferAmount() TransferAmount {
	return TransferAmount{}
}

// IsValid reports whether the amount is a valid transfer amount in the given
// currency.
func (TransferAmount) IsValid(amount decimal.Decimal, currency domain.Currency) bool {
	return domain.NewMoney(amount, currency).Amount().IsPositive()
}
