package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is an immutable amount of money in a single currency. The amount is
// stored rounded to the currency's fraction digits using banker's rounding
// (round half to even). Money may represent a negative amount; debit entries
// rely on that.
type Money struct {
	amount   decimal.Decimal
	currency Currency
}

// NewMoney builds a Money value, rounding the amount to the currency's
// canonical scale.
func NewMoney(amount decimal.Decimal, currency Currency) Money {
	return Money{
		amount:   amount.RoundBank(currency.FractionDigits()),
		currency: currency,
	}
}

// Euros is a convenience constructor for EUR amounts.
func Euros(amount decimal.Decimal) Money {
	return NewMoney(amount, EUR)
}

func (m Money) Amount() decimal.Decimal {
	return m.amount
}

func (m Money) Currency() Currency {
	return m.currency
}

// Add returns the sum of the two amounts in the receiver's currency. Money
// does not cross-check currencies between operands; callers that mix
// currencies get literal arithmetic. Cross-currency safety is enforced by the
// ledger and the transfer pipeline, not here.
func (m Money) Add(other Money) Money {
	return NewMoney(m.amount.Add(other.amount), m.currency)
}

// Negate returns the amount with its sign flipped.
func (m Money) Negate() Money {
	return NewMoney(m.amount.Neg(), m.currency)
}

// IsNegative reports whether the amount is strictly below zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// Equal reports value equality of amount and currency.
func (m Money) Equal(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.amount.StringFixed(m.currency.FractionDigits()), m.currency)
}
