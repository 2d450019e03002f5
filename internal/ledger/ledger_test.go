package ledger

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"money-transfers/internal/domain"
	"money-transfers/internal/validator"
)

func euros(t *testing.T, s string) domain.Money {
	t.Helper()
	return domain.Euros(decimal.RequireFromString(s))
}

func newEuroLedger(t *testing.T, opening string) *Ledger {
	t.Helper()
	l, err := New(domain.NewAccount("acc-1", euros(t, opening)))
	require.NoError(t, err)
	return l
}

func mustDebit(t *testing.T, amount domain.Money) Entry {
	t.Helper()
	e, err := NewDebitEntry(amount)
	require.NoError(t, err)
	return e
}

func mustCredit(t *testing.T, amount domain.Money) Entry {
	t.Helper()
	e, err := NewCreditEntry(amount)
	require.NoError(t, err)
	return e
}

func TestNew_SeedsOpeningBalance(t *testing.T) {
	l := newEuroLedger(t, "350.50")

	assert.Equal(t, domain.EUR, l.Currency())
	assert.Equal(t, "350.50", l.Balance().Amount().StringFixed(2))

	account := l.Materialize()
	assert.Equal(t, domain.AccountID("acc-1"), account.ID)
	assert.Equal(t, "350.50", account.Balance.Amount().StringFixed(2))
}

func TestNew_ZeroOpeningBalance(t *testing.T) {
	l := newEuroLedger(t, "0")
	assert.Equal(t, "0.00", l.Balance().Amount().StringFixed(2))
}

func TestNew_RejectsNegativeOpeningBalance(t *testing.T) {
	_, err := New(domain.NewAccount("acc-1", euros(t, "-1.00")))
	assert.Error(t, err)
}

func TestAppendIfAllowed_AppendsWhenValidatorAccepts(t *testing.T) {
	l := newEuroLedger(t, "100.00")

	ok := l.AppendIfAllowed(mustDebit(t, euros(t, "40.00")), validator.NewNonNegativeBalance())

	assert.True(t, ok)
	assert.Equal(t, "60.00", l.Balance().Amount().StringFixed(2))
}

func TestAppendIfAllowed_LeavesLogUnchangedOnRejection(t *testing.T) {
	l := newEuroLedger(t, "100.00")

	ok := l.AppendIfAllowed(mustDebit(t, euros(t, "100.01")), validator.NewNonNegativeBalance())

	assert.False(t, ok)
	assert.Equal(t, "100.00", l.Balance().Amount().StringFixed(2))
}

func TestAppendIfAllowed_AllowsDrainingToZero(t *testing.T) {
	l := newEuroLedger(t, "100.00")

	ok := l.AppendIfAllowed(mustDebit(t, euros(t, "100.00")), validator.NewNonNegativeBalance())

	assert.True(t, ok)
	assert.Equal(t, "0.00", l.Balance().Amount().StringFixed(2))
}

func TestAppendUnconditional(t *testing.T) {
	l := newEuroLedger(t, "0.20")

	l.AppendUnconditional(mustCredit(t, euros(t, "50.00")))

	assert.Equal(t, "50.20", l.Balance().Amount().StringFixed(2))
}

// Concurrent debits on one ledger must be serialized: with balance 100 and
// 200 one-euro debits, exactly 100 may pass the non-negative policy.
func TestAppendIfAllowed_ConcurrentDebitsAreSerialized(t *testing.T) {
	l := newEuroLedger(t, "100.00")
	policy := validator.NewNonNegativeBalance()

	var succeeded atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.AppendIfAllowed(mustDebit(t, euros(t, "1.00")), policy) {
				succeeded.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(100), succeeded.Load())
	assert.Equal(t, "0.00", l.Balance().Amount().StringFixed(2))
}

// Credits and debits interleaving on the same ledger must never tear the
// entry list; the final balance is the exact sum of what was applied.
func TestLedger_ConcurrentMixedAppends(t *testing.T) {
	l := newEuroLedger(t, "1000.00")
	policy := validator.NewNonNegativeBalance()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			l.AppendUnconditional(mustCredit(t, euros(t, "2.00")))
		}()
		go func() {
			defer wg.Done()
			ok := l.AppendIfAllowed(mustDebit(t, euros(t, "1.00")), policy)
			assert.True(t, ok)
		}()
	}
	wg.Wait()

	// 1000 + 100*2 - 100*1
	assert.Equal(t, "1100.00", l.Balance().Amount().StringFixed(2))
}
