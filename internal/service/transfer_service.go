package service

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"money-transfers/internal/domain"
	"money-transfers/internal/errors"
	"money-transfers/internal/ledger"
)

// IDGenerator produces unique transfer identifiers. It is invoked once per
// submission, before the transfer enters the service.
type IDGenerator interface {
	NewTransferID() domain.TransferID
}

// UUIDGenerator is the default IDGenerator, backed by random UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) NewTransferID() domain.TransferID {
	return domain.TransferID(uuid.New())
}

// Executor schedules transfer execution; satisfied by worker.Pool.
type Executor interface {
	Submit(task func()) error
}

// transferRecord is the single mutable transfer representation, owned
// exclusively by the service. Status is the only field that changes, always
// under the record's lock, and readers only ever get value snapshots.
type transferRecord struct {
	mu       sync.Mutex
	transfer domain.Transfer
}

func (r *transferRecord) snapshot() domain.Transfer {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.transfer
}

// setStatus moves the transfer to the given status unless it already reached
// a terminal state. Only one worker drives a transfer, so the terminal guard
// is defensive.
func (r *transferRecord) setStatus(status domain.TransferStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.transfer.Status.IsTerminal() {
		return
	}
	r.transfer.Status = status
}

// TransferService accepts transfer submissions, executes them
// asynchronously against the account ledgers and tracks their status.
type TransferService struct {
	registry         *ledger.Registry
	executor         Executor
	balanceValidator ledger.BalanceValidator
	logger           *slog.Logger

	mu        sync.RWMutex
	transfers map[domain.TransferID]*transferRecord
}

func NewTransferService(
	registry *ledger.Registry,
	executor Executor,
	balanceValidator ledger.BalanceValidator,
	logger *slog.Logger,
) *TransferService {
	return &TransferService{
		registry:         registry,
		executor:         executor,
		balanceValidator: balanceValidator,
		logger:           logger,
		transfers:        make(map[domain.TransferID]*transferRecord),
	}
}

// Submit records the transfer with status SUBMITTED and schedules its
// execution on the worker pool. It returns as soon as the work is queued;
// the outcome is reported only through the transfer's status. The record is
// stored before scheduling so a Get can never miss a transfer whose worker
// already started.
func (s *TransferService) Submit(transfer domain.Transfer) error {
	transfer.Status = domain.StatusSubmitted
	record := &transferRecord{transfer: transfer}

	s.mu.Lock()
	s.transfers[transfer.ID] = record
	s.mu.Unlock()

	s.logger.Info("Transfer submitted",
		"transfer_id", transfer.ID,
		"source_account_id", transfer.SourceAccount,
		"target_account_id", transfer.TargetAccount,
		"amount", transfer.Amount.Amount(),
		"currency", transfer.Amount.Currency())

	return s.executor.Submit(func() { s.perform(record) })
}

// Get returns a snapshot of the transfer's current state.
func (s *TransferService) Get(id domain.TransferID) (domain.Transfer, error) {
	s.mu.RLock()
	record, ok := s.transfers[id]
	s.mu.RUnlock()
	if !ok {
		return domain.Transfer{}, errors.ErrTransferNotFound
	}
	return record.snapshot(), nil
}

// List returns snapshots of every submitted transfer.
func (s *TransferService) List() []domain.Transfer {
	s.mu.RLock()
	records := make([]*transferRecord, 0, len(s.transfers))
	for _, r := range s.transfers {
		records = append(records, r)
	}
	s.mu.RUnlock()

	transfers := make([]domain.Transfer, 0, len(records))
	for _, r := range records {
		transfers = append(transfers, r.snapshot())
	}
	return transfers
}

// perform runs on a worker. The rejection checks run in a fixed order
// because callers distinguish rejection causes by the terminal status:
// missing account, transfer currency vs source account, source vs target
// currency, then source balance. Anything unexpected, including a panic,
// ends the transfer in INTERNAL_ERROR without taking the worker down.
func (s *TransferService) perform(record *transferRecord) {
	transfer := record.snapshot()
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Error during transfer processing",
				"transfer_id", transfer.ID, "panic", r)
			record.setStatus(domain.StatusInternalError)
		}
	}()

	record.setStatus(domain.StatusProcessing)

	source, sourceOK := s.registry.Get(transfer.SourceAccount)
	target, targetOK := s.registry.Get(transfer.TargetAccount)
	if !sourceOK || !targetOK {
		s.logger.Error("Account from transfer does not exist",
			"transfer_id", transfer.ID,
			"source_account_id", transfer.SourceAccount,
			"target_account_id", transfer.TargetAccount)
		record.setStatus(domain.StatusRejectedAccountDoesNotExist)
		return
	}

	if source.Currency() != transfer.Amount.Currency() {
		s.logger.Error("Transfer currency differs from source account currency",
			"transfer_id", transfer.ID,
			"transfer_currency", transfer.Amount.Currency(),
			"source_currency", source.Currency())
		record.setStatus(domain.StatusRejectedUnsupportedCurrency)
		return
	}

	if source.Currency() != target.Currency() {
		s.logger.Error("Currencies of accounts differ",
			"transfer_id", transfer.ID,
			"source_currency", source.Currency(),
			"target_currency", target.Currency())
		record.setStatus(domain.StatusRejectedDifferentCurrencies)
		return
	}

	debit, err := ledger.NewDebitEntry(transfer.Amount)
	if err != nil {
		s.logger.Error("Invalid debit entry", "transfer_id", transfer.ID, "error", err)
		record.setStatus(domain.StatusInternalError)
		return
	}

	if !source.AppendIfAllowed(debit, s.balanceValidator) {
		s.logger.Error("Not enough credit on source account",
			"transfer_id", transfer.ID, "source_account_id", transfer.SourceAccount)
		record.setStatus(domain.StatusRejectedNotEnoughCredit)
		return
	}

	// The debit and the credit are two independent per-ledger operations;
	// between them the amount is on neither account. See DESIGN.md.
	credit, err := ledger.NewCreditEntry(transfer.Amount)
	if err != nil {
		s.logger.Error("Invalid credit entry", "transfer_id", transfer.ID, "error", err)
		record.setStatus(domain.StatusInternalError)
		return
	}
	target.AppendUnconditional(credit)

	record.setStatus(domain.StatusCompleted)
	s.logger.Info("Transfer completed successfully", "transfer_id", transfer.ID)
}
