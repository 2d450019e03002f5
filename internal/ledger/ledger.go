package ledger

import (
	"sync"

	"github.com/shopspring/decimal"

	"money-transfers/internal/domain"
)

// BalanceValidator decides whether a resulting balance is acceptable. It is
// a pluggable policy injected from outside; the ledger only consumes this
// one capability.
type BalanceValidator interface {
	IsAllowed(balance decimal.Decimal) bool
}

// Ledger is the append-only operation log for a single account and the sole
// source of truth for its balance. It always holds at least one entry (the
// opening balance) and entries are never removed or edited.
//
// All appends on one ledger are serialized by its mutex; the critical
// section of AppendIfAllowed spans read-balance, validate and append, so no
// other append can interleave. Ledgers for different accounts share nothing
// and run fully in parallel.
type Ledger struct {
	mu        sync.Mutex
	accountID domain.AccountID
	currency  domain.Currency
	entries   []Entry
}

// New seeds a ledger with the account's opening balance as its first credit
// entry. The caller is responsible for supplying an opening balance the
// balance policy accepts; a negative opening balance is rejected here.
func New(account domain.Account) (*Ledger, error) {
	opening, err := NewCreditEntry(account.Balance)
	if err != nil {
		return nil, err
	}
	return &Ledger{
		accountID: account.ID,
		currency:  account.Currency(),
		entries:   []Entry{opening},
	}, nil
}

// Currency returns the currency fixed at ledger creation. Every entry in
// the log shares it.
func (l *Ledger) Currency() domain.Currency {
	return l.currency
}

// Balance folds all entries into the current balance.
func (l *Ledger) Balance() domain.Money {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balanceLocked()
}

// Materialize returns a read-only account snapshot of the ledger's current
// state.
func (l *Ledger) Materialize() domain.Account {
	return domain.NewAccount(l.accountID, l.Balance())
}

// AppendIfAllowed appends the entry only if the balance resulting from it is
// acceptable to the validator. It reports whether the entry was appended;
// on rejection the log is unchanged. The balance read, the validation and
// the append happen under the ledger's lock as one atomic step.
func (l *Ledger) AppendIfAllowed(e Entry, v BalanceValidator) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	after := l.balanceLocked().Add(e.Value())
	if !v.IsAllowed(after.Amount()) {
		return false
	}
	l.entries = append(l.entries, e)
	return true
}

// AppendUnconditional appends a credit entry without consulting the balance
// policy. The assumption, not enforced here, is that adding a non-negative
// value cannot turn a valid balance invalid under the policies this system
// uses; a policy rejecting growth would need the checked path instead. The
// append still takes the ledger lock so the log itself stays race-free
// against concurrent debits.
func (l *Ledger) AppendUnconditional(e Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, e)
}

func (l *Ledger) balanceLocked() domain.Money {
	if len(l.entries) == 0 {
		// Unreachable after New: the opening entry is never removed.
		panic("ledger: account history must have at least one entry")
	}
	balance := l.entries[0].Value()
	for _, e := range l.entries[1:] {
		balance = balance.Add(e.Value())
	}
	return balance
}
