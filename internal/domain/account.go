package domain

// AccountID is an opaque account identifier with value equality. It is the
// key under which an account's ledger is registered.
type AccountID string

func (id AccountID) String() string {
	return string(id)
}

// Account is a read-only snapshot of an account: its id and the balance at
// the moment it was materialized from the ledger. It is never the source of
// truth; the ledger is.
type Account struct {
	ID      AccountID
	Balance Money
}

// NewAccount builds an account snapshot.
func NewAccount(id AccountID, balance Money) Account {
	return Account{ID: id, Balance: balance}
}

// Currency returns the currency the account is denominated in.
func (a Account) Currency() Currency {
	return a.Balance.Currency()
}
