package money

import "errors"

// Kind categorises a parse failure.
type Kind int

const (
	// StructureFormat the input did not split into exactly two tokens.
	StructureFormat Kind = iota + 1
	// AmountFormat the first token is not a finite decimal number.
	AmountFormat
	// CurrencyFormat the second token is not a known currency alias.
	CurrencyFormat
)

func (k Kind) String() string {
	switch k {
	case StructureFormat:
		return "structure_format"
	case AmountFormat:
		return "amount_format"
	case CurrencyFormat:
		return "currency_format"
	default:
		return "unknown"
	}
}

const (
	msgExpectedAmountAndCurrency = "Expected amount and currency"
	msgInvalidInput              = "Invalid input"
	msgUnknownCurrency           = "Unknown currency"
)

// Sentinels for errors.Is. A *ParseError matches the sentinel of its Kind.
var (
	ErrStructureFormat = errors.New("structure format")
	ErrAmountFormat    = errors.New("amount format")
	ErrCurrencyFormat  = errors.New("currency format")
)

// ParseError is returned by Parse and ParseCurrency.
type ParseError struct {
	Kind Kind
	// Msg human readable description of the failure
	Msg string
	// Input the text that failed: the whole input for StructureFormat,
	// the offending token otherwise
	Input string
	// Err underlying cause, if any
	Err error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's Kind.
func (e *ParseError) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

func (k Kind) sentinel() error {
	switch k {
	case StructureFormat:
		return ErrStructureFormat
	case AmountFormat:
		return ErrAmountFormat
	case CurrencyFormat:
		return ErrCurrencyFormat
	default:
		return nil
	}
}

// KindOf returns the Kind of the first *ParseError in err's chain.
func KindOf(err error) (Kind, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Kind, true
	}
	return 0, false
}
