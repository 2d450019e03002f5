package service

import (
	"log/slog"

	"money-transfers/internal/domain"
	"money-transfers/internal/errors"
	"money-transfers/internal/ledger"
)

// AccountService exposes account creation and read access over the ledger
// registry.
type AccountService struct {
	registry         *ledger.Registry
	balanceValidator ledger.BalanceValidator
	logger           *slog.Logger
}

func NewAccountService(
	registry *ledger.Registry,
	balanceValidator ledger.BalanceValidator,
	logger *slog.Logger,
) *AccountService {
	return &AccountService{
		registry:         registry,
		balanceValidator: balanceValidator,
		logger:           logger,
	}
}

// Create registers a new account seeded with its opening balance. The
// opening balance must be acceptable to the balance policy; creation of an
// already-registered id fails and leaves the existing account untouched.
func (s *AccountService) Create(account domain.Account) error {
	s.logger.Info("Creating account",
		"account_id", account.ID,
		"currency", account.Currency(),
		"opening_balance", account.Balance.Amount())

	if !s.balanceValidator.IsAllowed(account.Balance.Amount()) {
		s.logger.Warn("Opening balance rejected by balance policy", "account_id", account.ID)
		return errors.ErrInvalidBalance
	}

	if err := s.registry.Create(account); err != nil {
		s.logger.Warn("Account creation failed", "account_id", account.ID, "error", err)
		return err
	}

	s.logger.Info("Account created successfully", "account_id", account.ID)
	return nil
}

// Get materializes the account snapshot for an id.
func (s *AccountService) Get(id domain.AccountID) (domain.Account, error) {
	l, ok := s.registry.Get(id)
	if !ok {
		return domain.Account{}, errors.ErrAccountNotFound
	}
	return l.Materialize(), nil
}

// List materializes all registered accounts.
func (s *AccountService) List() []domain.Account {
	return s.registry.List()
}
