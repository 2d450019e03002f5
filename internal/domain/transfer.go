package domain

import "github.com/google/uuid"

// TransferID identifies a submitted transfer. IDs are generated by the
// caller's id-generation collaborator, never supplied by clients.
type TransferID uuid.UUID

// ParseTransferID parses the canonical UUID string form of a transfer id.
func ParseTransferID(s string) (TransferID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return TransferID{}, err
	}
	return TransferID(u), nil
}

func (id TransferID) String() string {
	return uuid.UUID(id).String()
}

// Transfer is an immutable snapshot of a money transfer between two
// accounts. The live record is owned by the transfer service; everything
// handed to callers is a copy, so a snapshot's Status never changes under
// the reader.
type Transfer struct {
	ID            TransferID
	SourceAccount AccountID
	TargetAccount AccountID
	Amount        Money
	Status        TransferStatus
}

// NewTransfer builds a transfer in its initial SUBMITTED state. Amount must
// already be validated as strictly positive by the transfer-amount policy at
// the boundary.
func NewTransfer(id TransferID, source, target AccountID, amount Money) Transfer {
	return Transfer{
		ID:            id,
		SourceAccount: source,
		TargetAccount: target,
		Amount:        amount,
		Status:        StatusSubmitted,
	}
}
