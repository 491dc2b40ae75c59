package model

type TransferRequest struct {
	Accounts    []Account `json:"accounts"`
	Instruction string    `json:"instruction"`
}

// Account is a request-scoped balance record. It is never persisted;
// the ledger step mutates it in place when a transfer executes.
type Account struct {
	ID       string  `json:"id"`
	Balance  float64 `json:"balance"`
	Currency string  `json:"currency"`
}
