package model

// Status codes are a documented contract shared with API consumers.
// Do not renumber.
const (
	CodeMissingKeyword       = "SY01"
	CodeInvalidKeywordOrder  = "SY02"
	CodeMalformedInstruction = "SY03"
	CodeInvalidAmount        = "AM01"
	CodeCurrencyMismatch     = "CU01"
	CodeUnsupportedCurrency  = "CU02"
	CodeInsufficientFunds    = "AC01"
	CodeSameAccount          = "AC02"
	CodeAccountNotFound      = "AC03"
	CodeInvalidAccountID     = "AC04"
	CodeInvalidDateFormat    = "DT01"
	CodeExecutedSuccess      = "AP00"
	CodeScheduledSuccess     = "AP02"
)
