// Package money parses "amount currency" strings such as "55.5 Dollar" or
// "56 €" into typed Money values.
//
// Parsing is pure: no state, no logging, no I/O. Every failure is a
// *ParseError whose Kind tells the caller what was wrong with the input.
package money

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Amount a monetary amount, always finite
type Amount float64

// Money is an amount in a Currency. The only way to obtain a non-zero Money
// is a successful Parse, so every Money seen by callers is valid.
type Money struct {
	amount   Amount
	currency Currency
}

// Amount returns the parsed amount.
func (m Money) Amount() Amount {
	return m.amount
}

// Currency returns the parsed currency.
func (m Money) Currency() Currency {
	return m.currency
}

// String renders the value for debugging, e.g. "55.5 Dollar".
func (m Money) String() string {
	return fmt.Sprintf("%g %s", float64(m.amount), m.currency)
}

// MarshalJSON implements json.Marshaler.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Amount   Amount   `json:"amount"`
		Currency Currency `json:"currency"`
	}{
		Amount:   m.amount,
		Currency: m.currency,
	})
}

// UnmarshalText implements encoding.TextUnmarshaler by parsing text with Parse.
// On error m is left untouched.
func (m *Money) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// UnmarshalJSON implements json.Unmarshaler. It accepts the object written by
// MarshalJSON, {"amount":56,"currency":"Euro"}, where currency may be any
// alias, and also the string form "56 €". On error m is left untouched.
func (m *Money) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if string(data) == "null" {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		return m.UnmarshalText([]byte(text))
	}

	var aux struct {
		Amount   json.Number `json:"amount"`
		Currency string      `json:"currency"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if aux.Amount == "" {
		return &ParseError{Kind: AmountFormat, Msg: msgInvalidInput, Err: errMissingAmount}
	}
	amount, err := parseAmount(aux.Amount.String())
	if err != nil {
		return &ParseError{Kind: AmountFormat, Msg: msgInvalidInput, Input: aux.Amount.String(), Err: err}
	}

	currency, err := ParseCurrency(aux.Currency)
	if err != nil {
		return err
	}

	*m = Money{amount: amount, currency: currency}
	return nil
}

var errMissingAmount = errors.New("missing amount")
