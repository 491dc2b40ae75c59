package engine

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"payment-engine/internal/grammar"
	"payment-engine/internal/model"
)

var now = time.Now

// failure is a terminal validation result. The first failure wins; later
// rules are never evaluated.
type failure struct {
	code   string
	reason string
}

func fail(code, format string, args ...interface{}) *failure {
	return &failure{code: code, reason: fmt.Sprintf(format, args...)}
}

// run threads the accumulating result through the pipeline. Fields filled by
// earlier stages survive a later failure so the outcome can echo them.
type run struct {
	accounts map[string]*model.Account

	fields grammar.Fields
	amount *float64 // set once the raw amount parses to a finite number

	debit  *model.Account
	credit *model.Account

	snapshots []model.AccountSnapshot
}

// Process interprets one payment instruction against the request's account
// set and returns a terminal outcome. It never mutates balances unless the
// outcome is successful, and it never panics past this boundary.
func Process(req *model.TransferRequest) *model.Outcome {
	r := &run{accounts: make(map[string]*model.Account, len(req.Accounts))}
	for i := range req.Accounts {
		acc := &req.Accounts[i]
		r.accounts[acc.ID] = acc
	}

	tokens := grammar.Tokenize(req.Instruction)
	shape, err := grammar.Match(tokens)
	if err != nil {
		return r.failed(structuralFailure(err))
	}

	r.fields = shape.Extract(tokens)
	if a, perr := strconv.ParseFloat(r.fields.RawAmount, 64); perr == nil && !math.IsInf(a, 0) && !math.IsNaN(a) {
		r.amount = &a
	}

	for _, stage := range []func() *failure{
		r.checkAmount,
		r.checkCurrencySupported,
		r.checkAccountIDFormat,
		r.checkDateFormat,
		r.resolveAccounts,
		r.checkCurrencyConsistency,
		r.checkDistinctAccounts,
		r.checkSufficientFunds,
	} {
		if f := stage(); f != nil {
			return r.failed(f)
		}
	}

	return r.execute()
}

func structuralFailure(err error) *failure {
	switch err {
	case grammar.ErrMissingKeyword:
		return fail(model.CodeMissingKeyword, "Instruction is missing required keywords")
	case grammar.ErrMalformedInstruction:
		return fail(model.CodeMalformedInstruction, "Instruction is malformed: it must begin with DEBIT or CREDIT")
	default:
		return fail(model.CodeInvalidKeywordOrder, "Instruction keywords are out of order")
	}
}

// execute decides immediate execution vs. future scheduling. The date
// comparison is a plain string compare, which is ordering-correct for the
// YYYY-MM-DD shape enforced earlier; dates equal to today execute now.
func (r *run) execute() *model.Outcome {
	today := now().Format("2006-01-02")
	if r.fields.ExecuteBy != nil && *r.fields.ExecuteBy > today {
		r.snapshots = []model.AccountSnapshot{unchanged(r.debit), unchanged(r.credit)}
		return r.outcome(model.StatusPending, model.CodeScheduledSuccess,
			fmt.Sprintf("Transaction scheduled for execution on %s", *r.fields.ExecuteBy))
	}

	amount := *r.amount
	debitBefore := r.debit.Balance
	creditBefore := r.credit.Balance
	r.debit.Balance -= amount
	r.credit.Balance += amount

	r.snapshots = []model.AccountSnapshot{
		{ID: r.debit.ID, Balance: r.debit.Balance, BalanceBefore: debitBefore, Currency: r.debit.Currency},
		{ID: r.credit.ID, Balance: r.credit.Balance, BalanceBefore: creditBefore, Currency: r.credit.Currency},
	}
	return r.outcome(model.StatusSuccessful, model.CodeExecutedSuccess, "Transaction executed successfully")
}

// failed assembles a failure outcome with best-effort account snapshots:
// whichever of the extracted debit/credit ids resolve are included, each
// with balance_before equal to balance since nothing was mutated.
func (r *run) failed(f *failure) *model.Outcome {
	seen := make(map[string]bool, 2)
	for _, id := range []string{r.fields.DebitAccount, r.fields.CreditAccount} {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		if acc, ok := r.accounts[id]; ok {
			r.snapshots = append(r.snapshots, unchanged(acc))
		}
	}
	return r.outcome(model.StatusFailed, f.code, f.reason)
}

func (r *run) outcome(status, code, reason string) *model.Outcome {
	out := &model.Outcome{
		Status:       status,
		StatusCode:   code,
		StatusReason: reason,
		Amount:       r.amount,
		Accounts:     r.snapshots,
	}
	if out.Accounts == nil {
		out.Accounts = []model.AccountSnapshot{}
	}
	if r.fields.Type != "" {
		out.Type = &r.fields.Type
		out.Currency = &r.fields.Currency
		out.DebitAccount = &r.fields.DebitAccount
		out.CreditAccount = &r.fields.CreditAccount
		out.ExecuteBy = r.fields.ExecuteBy
	}
	return out
}

func unchanged(acc *model.Account) model.AccountSnapshot {
	return model.AccountSnapshot{
		ID:            acc.ID,
		Balance:       acc.Balance,
		BalanceBefore: acc.Balance,
		Currency:      acc.Currency,
	}
}
