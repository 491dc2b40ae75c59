package engine

import (
	"math"
	"regexp"
	"strings"

	"payment-engine/internal/model"
)

var supportedCurrencies = map[string]bool{
	"NGN": true,
	"USD": true,
	"GBP": true,
	"GHS": true,
}

var accountIDPattern = regexp.MustCompile(`^[A-Za-z0-9.@-]+$`)

func (r *run) checkAmount() *failure {
	if r.amount == nil || *r.amount <= 0 || *r.amount != math.Trunc(*r.amount) {
		return fail(model.CodeInvalidAmount, "Amount %q must be a positive whole number", r.fields.RawAmount)
	}
	return nil
}

func (r *run) checkCurrencySupported() *failure {
	if !supportedCurrencies[r.fields.Currency] {
		return fail(model.CodeUnsupportedCurrency, "Currency %s is not supported", r.fields.Currency)
	}
	return nil
}

func (r *run) checkAccountIDFormat() *failure {
	for _, id := range []string{r.fields.DebitAccount, r.fields.CreditAccount} {
		if !accountIDPattern.MatchString(id) {
			return fail(model.CodeInvalidAccountID, "Account id %q contains invalid characters", id)
		}
	}
	return nil
}

// checkDateFormat enforces the YYYY-MM-DD shape only: length 10 with
// hyphens at positions 4 and 7. Calendar validity is deliberately not
// checked; the scheduling compare is lexicographic over this shape.
func (r *run) checkDateFormat() *failure {
	if r.fields.ExecuteBy == nil {
		return nil
	}
	d := *r.fields.ExecuteBy
	if len(d) != 10 || d[4] != '-' || d[7] != '-' {
		return fail(model.CodeInvalidDateFormat, "Execution date %q must use the YYYY-MM-DD format", d)
	}
	return nil
}

func (r *run) resolveAccounts() *failure {
	debit, ok := r.accounts[r.fields.DebitAccount]
	if !ok {
		return fail(model.CodeAccountNotFound, "Account %s not found", r.fields.DebitAccount)
	}
	credit, ok := r.accounts[r.fields.CreditAccount]
	if !ok {
		return fail(model.CodeAccountNotFound, "Account %s not found", r.fields.CreditAccount)
	}
	r.debit = debit
	r.credit = credit
	return nil
}

func (r *run) checkCurrencyConsistency() *failure {
	if !strings.EqualFold(r.debit.Currency, r.credit.Currency) ||
		!strings.EqualFold(r.fields.Currency, r.debit.Currency) {
		return fail(model.CodeCurrencyMismatch,
			"Both accounts must hold %s, got %s and %s",
			r.fields.Currency, r.debit.Currency, r.credit.Currency)
	}
	return nil
}

func (r *run) checkDistinctAccounts() *failure {
	if r.fields.DebitAccount == r.fields.CreditAccount {
		return fail(model.CodeSameAccount, "Debit and credit accounts must differ")
	}
	return nil
}

func (r *run) checkSufficientFunds() *failure {
	if r.debit.Balance < *r.amount {
		return fail(model.CodeInsufficientFunds,
			"Insufficient funds in account %s: balance %v is less than %v",
			r.debit.ID, r.debit.Balance, *r.amount)
	}
	return nil
}
