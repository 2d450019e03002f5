package ledger

import (
	"fmt"

	"money-transfers/internal/domain"
)

// Entry is one signed contribution to a ledger. Debits are stored with a
// negative value, credits with a non-negative one; folding all entries with
// Add yields the account balance.
//
// Both constructors take the non-negative magnitude of the movement and
// reject negative input, so a debit is always built by negating internally.
// That keeps a double-negated amount from ever sneaking into the log.
type Entry struct {
	value domain.Money
}

// NewCreditEntry builds an entry that adds value to a ledger.
func NewCreditEntry(magnitude domain.Money) (Entry, error) {
	if magnitude.IsNegative() {
		return Entry{}, fmt.Errorf("credit entry requires a non-negative value, got %s", magnitude)
	}
	return Entry{value: magnitude}, nil
}

// NewDebitEntry builds an entry that removes value from a ledger. The input
// is the non-negative magnitude; the stored value is its negation.
func NewDebitEntry(magnitude domain.Money) (Entry, error) {
	if magnitude.IsNegative() {
		return Entry{}, fmt.Errorf("debit entry requires a non-negative value, got %s", magnitude)
	}
	return Entry{value: magnitude.Negate()}, nil
}

// Value returns the signed contribution, ready for aggregation.
func (e Entry) Value() domain.Money {
	return e.value
}
