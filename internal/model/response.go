package model

// Outcome is the core pipeline's return value. Parsed fields stay nil until
// the stage that produces them succeeds, so a failure response echoes exactly
// what was determined before the failing check.
type Outcome struct {
	Type          *string           `json:"type"`
	Amount        *float64          `json:"amount"`
	Currency      *string           `json:"currency"`
	DebitAccount  *string           `json:"debit_account"`
	CreditAccount *string           `json:"credit_account"`
	ExecuteBy     *string           `json:"execute_by"`
	Status        string            `json:"status"`
	StatusCode    string            `json:"status_code"`
	StatusReason  string            `json:"status_reason"`
	Accounts      []AccountSnapshot `json:"accounts"`
}

// AccountSnapshot is the pre/post balance view of one involved account.
// When no mutation occurred, Balance equals BalanceBefore.
type AccountSnapshot struct {
	ID            string  `json:"id"`
	Balance       float64 `json:"balance"`
	BalanceBefore float64 `json:"balance_before"`
	Currency      string  `json:"currency"`
}

// Envelope is the transport-level wrapper around an Outcome.
type Envelope struct {
	Status        string   `json:"status"`
	Message       string   `json:"message"`
	TransactionID string   `json:"transaction_id"`
	ProcessedAt   string   `json:"processed_at"`
	DurationMs    int64    `json:"duration_ms"`
	Data          *Outcome `json:"data"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

const (
	StatusSuccessful = "successful"
	StatusPending    = "pending"
	StatusFailed     = "failed"
)
