package domain

// TransferStatus is the lifecycle state of a transfer.
//
// SUBMITTED is the initial state, set at submission time. Exactly one worker
// moves the transfer to PROCESSING and then to one of the terminal states.
// No transition ever leaves a terminal state.
type TransferStatus string

const (
	StatusSubmitted  TransferStatus = "SUBMITTED"
	StatusProcessing TransferStatus = "PROCESSING"
	StatusCompleted  TransferStatus = "COMPLETED"

	StatusRejectedAccountDoesNotExist TransferStatus = "REJECTED_ONE_OF_ACCOUNTS_DOES_NOT_EXIST"
	StatusRejectedNotEnoughCredit     TransferStatus = "REJECTED_NOT_ENOUGH_CREDIT_ON_SOURCE_ACCOUNT"
	StatusRejectedDifferentCurrencies TransferStatus = "REJECTED_DIFFERENT_CURRENCIES"
	StatusRejectedUnsupportedCurrency TransferStatus = "REJECTED_UNSUPPORTED_TRANSFER_CURRENCY"
	StatusInternalError               TransferStatus = "INTERNAL_ERROR"
)

// IsTerminal reports whether the status admits no further transitions.
func (s TransferStatus) IsTerminal() bool {
	switch s {
	case StatusSubmitted, StatusProcessing:
		return false
	}
	return true
}

func (s TransferStatus) String() string {
	return string(s)
}
