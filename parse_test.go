package money

import (
	"encoding/json"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strconv"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		amount   Amount
		currency Currency
	}{
		{"euro symbol", "56 €", 56.0, Euro},
		{"dollar word", "45 Dollar", 45.0, Dollar},
		{"fractional dollar", "55.5 Dollar", 55.5, Dollar},
		{"dollar symbol", "3 $", 3.0, Dollar},
		{"eur code", "12.25 EUR", 12.25, Euro},
		{"negative amount", "-7 euro", -7.0, Euro},
		{"explicit plus", "+7 euro", 7.0, Euro},
		{"exponent", "1e3 dollar", 1000.0, Dollar},
		{"leading dot", ".5 euro", 0.5, Euro},
		{"surrounding whitespace", "  20 \t Euro \n", 20.0, Euro},
		{"unicode whitespace", "20\u00a0\u2003Euro", 20.0, Euro},
		{"zero", "0 dollar", 0, Dollar},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.amount, got.Amount())
			assert.Equal(t, tt.currency, got.Currency())
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  Kind
		msg   string
	}{
		{"empty", "", StructureFormat, msgExpectedAmountAndCurrency},
		{"only whitespace", " \t ", StructureFormat, msgExpectedAmountAndCurrency},
		{"single token", "Dollar", StructureFormat, msgExpectedAmountAndCurrency},
		{"three tokens", "1 2 euro", StructureFormat, msgExpectedAmountAndCurrency},
		{"structure before amount", "abc", StructureFormat, msgExpectedAmountAndCurrency},
		{"letters in amount", "OneMillion Bitcoin", AmountFormat, msgInvalidInput},
		{"amount before currency", "x Dollar", AmountFormat, msgInvalidInput},
		{"thousands separator", "1,000 dollar", AmountFormat, msgInvalidInput},
		{"decimal comma", "1,5 euro", AmountFormat, msgInvalidInput},
		{"embedded symbol", "$5 dollar", AmountFormat, msgInvalidInput},
		{"infinity", "Inf euro", AmountFormat, msgInvalidInput},
		{"nan", "NaN euro", AmountFormat, msgInvalidInput},
		{"hex float", "0x1p4 euro", AmountFormat, msgInvalidInput},
		{"underscores", "1_000 euro", AmountFormat, msgInvalidInput},
		{"overflow", "1e400 euro", AmountFormat, msgInvalidInput},
		{"currency first", "Dollar 45", AmountFormat, msgInvalidInput},
		{"plural currency", "40 Euros", CurrencyFormat, msgUnknownCurrency},
		{"unknown currency", "10 Bitcoin", CurrencyFormat, msgUnknownCurrency},
		{"iso dollar code is not an alias", "10 USD", CurrencyFormat, msgUnknownCurrency},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.Error(t, err)
			assert.Equal(t, Money{}, got, "no partial result")

			var pe *ParseError
			require.True(t, errors.As(err, &pe), "error is %T", err)
			assert.Equal(t, tt.kind, pe.Kind)
			assert.Equal(t, tt.msg, pe.Msg)
		})
	}
}

func TestParse_AmountErrorPropagatesCause(t *testing.T) {
	_, err := Parse("OneMillion Bitcoin")
	require.Error(t, err)

	var numErr *strconv.NumError
	require.True(t, errors.As(err, &numErr))
	assert.Equal(t, "OneMillion", numErr.Num)
	assert.ErrorIs(t, err, strconv.ErrSyntax)
	assert.Equal(t, `Invalid input: strconv.ParseFloat: parsing "OneMillion": invalid syntax`, err.Error())
}

func TestParse_OverflowIsRange(t *testing.T) {
	_, err := Parse("1e400 dollar")
	assert.ErrorIs(t, err, ErrAmountFormat)
	assert.ErrorIs(t, err, strconv.ErrRange)
}

func TestParse_ErrorInput(t *testing.T) {
	_, err := Parse("Dollar")
	pe := err.(*ParseError)
	assert.Equal(t, "Dollar", pe.Input)

	_, err = Parse("12 Euros")
	pe = err.(*ParseError)
	assert.Equal(t, "Euros", pe.Input)

	_, err = Parse("twelve Euro")
	pe = err.(*ParseError)
	assert.Equal(t, "twelve", pe.Input)
}

func TestMoney_String(t *testing.T) {
	m, err := Parse("55.5 dollar")
	require.NoError(t, err)
	assert.Equal(t, "55.5 Dollar", m.String())
}

func TestMoney_MarshalJSON(t *testing.T) {
	m, err := Parse("56 €")
	require.NoError(t, err)

	b, err := m.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":56,"currency":"Euro"}`, string(b))
}

func TestMoney_UnmarshalText(t *testing.T) {
	var m Money
	require.NoError(t, m.UnmarshalText([]byte("45 Dollar")))
	assert.Equal(t, Amount(45), m.Amount())
	assert.Equal(t, Dollar, m.Currency())

	err := m.UnmarshalText([]byte("40 Euros"))
	assert.ErrorIs(t, err, ErrCurrencyFormat)
	assert.Equal(t, Dollar, m.Currency(), "unchanged on error")
}

func TestMoney_JSONRoundTrip(t *testing.T) {
	for _, input := range []string{"56 €", "45 Dollar", "55.5 Dollar", "-0.25 eur", "1e300 $"} {
		t.Run(input, func(t *testing.T) {
			want, err := Parse(input)
			require.NoError(t, err)

			b, err := json.Marshal(want)
			require.NoError(t, err)

			var got Money
			require.NoError(t, json.Unmarshal(b, &got))
			assert.Equal(t, want, got)
		})
	}
}

func TestMoney_UnmarshalJSON(t *testing.T) {
	type holder struct {
		M Money
	}

	tests := []struct {
		name      string
		body      string
		amount    Amount
		currency  Currency
		kind      Kind
		decodeErr bool
	}{
		{"object", `{"M":{"amount":56,"currency":"Euro"}}`, 56, Euro, 0, false},
		{"object with alias", `{"M":{"amount":3.5,"currency":"$"}}`, 3.5, Dollar, 0, false},
		{"string form", `{"M":"56 €"}`, 56, Euro, 0, false},
		{"null", `{"M":null}`, 0, "", 0, false},
		{"missing amount", `{"M":{"currency":"Euro"}}`, 0, "", AmountFormat, false},
		{"overflowing amount", `{"M":{"amount":1e400,"currency":"Euro"}}`, 0, "", AmountFormat, false},
		{"amount as text", `{"M":{"amount":"ten","currency":"Euro"}}`, 0, "", 0, true},
		{"unknown currency", `{"M":{"amount":1,"currency":"Euros"}}`, 0, "", CurrencyFormat, false},
		{"missing currency", `{"M":{"amount":1}}`, 0, "", CurrencyFormat, false},
		{"bad string form", `{"M":"Dollar"}`, 0, "", StructureFormat, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var h holder
			err := json.Unmarshal([]byte(tt.body), &h)

			if tt.decodeErr {
				assert.Error(t, err)
				assert.Equal(t, Money{}, h.M)
				return
			}
			if tt.kind != 0 {
				kind, ok := KindOf(err)
				require.True(t, ok, "want parse error, got %v", err)
				assert.Equal(t, tt.kind, kind)
				assert.Equal(t, Money{}, h.M, "no partial result")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.amount, h.M.Amount())
			assert.Equal(t, tt.currency, h.M.Currency())
		})
	}
}

func TestParse_Concurrent(t *testing.T) {
	inputs := []string{"56 €", "45 Dollar", "Dollar", "40 Euros"}
	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				for _, input := range inputs {
					_, _ = Parse(input)
				}
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}

	m, err := Parse("56 €")
	require.NoError(t, err)
	assert.Equal(t, Euro, m.Currency())
}
