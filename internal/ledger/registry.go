package ledger

import (
	"sync"

	"money-transfers/internal/domain"
	"money-transfers/internal/errors"
)

// Registry is a concurrent map of account id to ledger. It owns account
// creation uniqueness; accounts are never removed.
type Registry struct {
	mu      sync.RWMutex
	ledgers map[domain.AccountID]*Ledger
}

func NewRegistry() *Registry {
	return &Registry{
		ledgers: make(map[domain.AccountID]*Ledger),
	}
}

// Create inserts a fresh ledger for the account as a single check-and-insert
// under the registry lock, so concurrent creation of the same id cannot
// produce two ledgers. Returns ErrDuplicateAccount if the id is taken; the
// existing ledger is left untouched.
func (r *Registry) Create(account domain.Account) error {
	l, err := New(account)
	if err != nil {
		return errors.ErrInvalidBalance.WithDetails(err.Error())
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.ledgers[account.ID]; exists {
		return errors.ErrDuplicateAccount
	}
	r.ledgers[account.ID] = l
	return nil
}

// Get returns the ledger for an id, if one exists.
func (r *Registry) Get(id domain.AccountID) (*Ledger, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.ledgers[id]
	return l, ok
}

// List materializes every registered account. Each ledger is read
// independently, so the snapshot is per-account consistent but carries no
// cross-account consistency guarantee.
func (r *Registry) List() []domain.Account {
	r.mu.RLock()
	ledgers := make([]*Ledger, 0, len(r.ledgers))
	for _, l := range r.ledgers {
		ledgers = append(ledgers, l)
	}
	r.mu.RUnlock()

	accounts := make([]domain.Account, 0, len(ledgers))
	for _, l := range ledgers {
		accounts = append(accounts, l.Materialize())
	}
	return accounts
}
