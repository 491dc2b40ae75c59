// Package grammar parses the constrained payment instruction language.
//
// An instruction is a fixed sequence of literal keywords interleaved with
// free-form fields. Each accepted shape is declared as a slot table rather
// than index arithmetic, so new shapes can be added by appending a table.
package grammar

import (
	"errors"
	"strconv"
	"strings"
)

const (
	TypeDebit  = "DEBIT"
	TypeCredit = "CREDIT"
)

// MinTokens is the shortest token sequence worth matching against a shape.
const MinTokens = 8

const keywordOn = "ON"

var (
	ErrMissingKeyword       = errors.New("instruction has too few words to contain the required keywords")
	ErrMalformedInstruction = errors.New("instruction must start with DEBIT or CREDIT")
	ErrInvalidKeywordOrder  = errors.New("instruction keywords are not in the expected order")
)

// FieldName identifies a free-form slot in a shape.
type FieldName string

const (
	FieldAmount        FieldName = "amount"
	FieldCurrency      FieldName = "currency"
	FieldDebitAccount  FieldName = "debit_account"
	FieldCreditAccount FieldName = "credit_account"
)

// Class is a coarse token category for a free-form slot. A token of the
// wrong class at a field position reads as an ordering violation (the
// words are out of order), not as a bad value: "DEBIT NGN 2000 ..." is a
// transposition, not an invalid amount.
type Class int

const (
	ClassAny Class = iota
	ClassNumber
	ClassAlpha
)

func (c Class) matches(token string) bool {
	switch c {
	case ClassNumber:
		_, err := strconv.ParseFloat(token, 64)
		return err == nil
	case ClassAlpha:
		for _, r := range token {
			if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// Slot is one position in an instruction shape: either a literal keyword
// (matched case-insensitively) or a named free-form field with a class.
type Slot struct {
	Keyword string
	Field   FieldName
	Class   Class
}

func kw(s string) Slot                { return Slot{Keyword: s} }
func field(f FieldName, c Class) Slot { return Slot{Field: f, Class: c} }

// Shape is the positional schema for one instruction type. The debit and
// credit grammars read differently: a DEBIT instruction names the debit
// account first, a CREDIT instruction names the credit account first.
type Shape struct {
	Type  string
	Slots []Slot
}

var debitShape = Shape{
	Type: TypeDebit,
	Slots: []Slot{
		kw("DEBIT"), field(FieldAmount, ClassNumber), field(FieldCurrency, ClassAlpha),
		kw("FROM"), kw("ACCOUNT"), field(FieldDebitAccount, ClassAny),
		kw("FOR"), kw("CREDIT"), kw("TO"), kw("ACCOUNT"), field(FieldCreditAccount, ClassAny),
	},
}

var creditShape = Shape{
	Type: TypeCredit,
	Slots: []Slot{
		kw("CREDIT"), field(FieldAmount, ClassNumber), field(FieldCurrency, ClassAlpha),
		kw("TO"), kw("ACCOUNT"), field(FieldCreditAccount, ClassAny),
		kw("FOR"), kw("DEBIT"), kw("FROM"), kw("ACCOUNT"), field(FieldDebitAccount, ClassAny),
	},
}

// Tokenize splits an instruction into words, discarding empty substrings.
func Tokenize(instruction string) []string {
	return strings.Fields(instruction)
}

// Match structurally validates a token sequence and returns the shape it
// conforms to: the keyword skeleton, the slot classes, and the optional
// trailing ON clause. Field values themselves are not validated here.
func Match(tokens []string) (*Shape, error) {
	if len(tokens) < MinTokens {
		return nil, ErrMissingKeyword
	}

	var shape *Shape
	switch {
	case strings.EqualFold(tokens[0], TypeDebit):
		shape = &debitShape
	case strings.EqualFold(tokens[0], TypeCredit):
		shape = &creditShape
	default:
		return nil, ErrMalformedInstruction
	}

	for i, slot := range shape.Slots {
		if i >= len(tokens) {
			return nil, ErrInvalidKeywordOrder
		}
		if slot.Keyword != "" {
			if !strings.EqualFold(tokens[i], slot.Keyword) {
				return nil, ErrInvalidKeywordOrder
			}
			continue
		}
		if !slot.Class.matches(tokens[i]) {
			return nil, ErrInvalidKeywordOrder
		}
	}

	// Anything after the skeleton must be introduced by ON.
	if len(tokens) > len(shape.Slots) && !strings.EqualFold(tokens[len(shape.Slots)], keywordOn) {
		return nil, ErrInvalidKeywordOrder
	}

	return shape, nil
}

// Fields holds the raw values extracted from a matched instruction.
// Account identifiers are kept verbatim (they are case-sensitive); the
// currency is uppercased; the amount stays a string for the business
// validator to parse. ExecuteBy is nil when no ON clause was present.
type Fields struct {
	Type          string
	RawAmount     string
	Currency      string
	DebitAccount  string
	CreditAccount string
	ExecuteBy     *string
}

// Extract pulls the free-form field values out of a token sequence that
// already matched this shape. It never fails: values are captured even if
// a later validation step rejects them, so error responses can echo what
// was read.
func (s *Shape) Extract(tokens []string) Fields {
	f := Fields{Type: s.Type}
	for i, slot := range s.Slots {
		switch slot.Field {
		case FieldAmount:
			f.RawAmount = tokens[i]
		case FieldCurrency:
			f.Currency = strings.ToUpper(tokens[i])
		case FieldDebitAccount:
			f.DebitAccount = tokens[i]
		case FieldCreditAccount:
			f.CreditAccount = tokens[i]
		}
	}

	if len(tokens) > len(s.Slots) {
		// ON was already verified by Match. A missing date token is recorded
		// as empty and rejected by the date format rule.
		date := ""
		if len(tokens) > len(s.Slots)+1 {
			date = tokens[len(s.Slots)+1]
		}
		f.ExecuteBy = &date
	}

	return f
}
