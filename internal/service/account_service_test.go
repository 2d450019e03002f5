package service

import (
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"money-transfers/internal/domain"
	"money-transfers/internal/errors"
	"money-transfers/internal/ledger"
	"money-transfers/internal/validator"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func euros(t *testing.T, s string) domain.Money {
	t.Helper()
	return domain.Euros(decimal.RequireFromString(s))
}

func newAccountService() *AccountService {
	return NewAccountService(ledger.NewRegistry(), validator.NewNonNegativeBalance(), testLogger())
}

func TestAccountService_CreateAndGet(t *testing.T) {
	s := newAccountService()

	err := s.Create(domain.NewAccount("acc-1", euros(t, "350.50")))
	require.NoError(t, err)

	account, err := s.Get("acc-1")
	require.NoError(t, err)
	assert.Equal(t, domain.AccountID("acc-1"), account.ID)
	assert.Equal(t, "350.50", account.Balance.Amount().StringFixed(2))
	assert.Equal(t, domain.EUR, account.Currency())
}

func TestAccountService_GetUnknownAccount(t *testing.T) {
	s := newAccountService()

	_, err := s.Get("missing")
	assert.Equal(t, errors.ErrAccountNotFound, err)
}

func TestAccountService_DuplicateCreateKeepsOriginalBalance(t *testing.T) {
	s := newAccountService()
	require.NoError(t, s.Create(domain.NewAccount("acc-1", euros(t, "350.50"))))

	err := s.Create(domain.NewAccount("acc-1", euros(t, "1.00")))
	assert.Equal(t, errors.ErrDuplicateAccount, err)

	account, err := s.Get("acc-1")
	require.NoError(t, err)
	assert.Equal(t, "350.50", account.Balance.Amount().StringFixed(2))
}

func TestAccountService_RejectsOpeningBalanceAgainstPolicy(t *testing.T) {
	s := newAccountService()

	err := s.Create(domain.NewAccount("acc-1", euros(t, "-0.01")))
	require.Error(t, err)
	assert.Equal(t, errors.ErrInvalidBalance, err)

	_, err = s.Get("acc-1")
	assert.Equal(t, errors.ErrAccountNotFound, err)
}

func TestAccountService_ZeroOpeningBalanceIsAllowed(t *testing.T) {
	s := newAccountService()

	require.NoError(t, s.Create(domain.NewAccount("acc-1", euros(t, "0"))))

	account, err := s.Get("acc-1")
	require.NoError(t, err)
	assert.Equal(t, "0.00", account.Balance.Amount().StringFixed(2))
}

func TestAccountService_GetDoesNotMutateState(t *testing.T) {
	s := newAccountService()
	require.NoError(t, s.Create(domain.NewAccount("acc-1", euros(t, "10.00"))))

	for i := 0; i < 5; i++ {
		account, err := s.Get("acc-1")
		require.NoError(t, err)
		assert.Equal(t, "10.00", account.Balance.Amount().StringFixed(2))
	}
}

func TestAccountService_List(t *testing.T) {
	s := newAccountService()
	require.NoError(t, s.Create(domain.NewAccount("acc-1", euros(t, "10.00"))))
	require.NoError(t, s.Create(domain.NewAccount("acc-2", euros(t, "20.00"))))

	accounts := s.List()
	assert.Len(t, accounts, 2)
}
