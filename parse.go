package money

import (
	"strconv"
	"strings"
)

// Parse converts input of the form "<amount> <currency>" into Money.
//
// The input is split on runs of Unicode whitespace. Exactly two tokens are
// required, amount first. The amount is a decimal number with an optional
// sign, fraction and exponent ("-1.5", "2e3"). The currency is matched
// case-insensitively against the aliases of Dollar ("dollar", "$") and
// Euro ("euro", "eur", "€").
//
// Checks run in a fixed order, so the reported Kind is deterministic:
// StructureFormat, then AmountFormat, then CurrencyFormat.
func Parse(input string) (Money, error) {
	tokens := strings.Fields(input)
	if len(tokens) != 2 {
		return Money{}, &ParseError{Kind: StructureFormat, Msg: msgExpectedAmountAndCurrency, Input: input}
	}
	amountToken, currencyToken := tokens[0], tokens[1]

	amount, err := parseAmount(amountToken)
	if err != nil {
		return Money{}, &ParseError{Kind: AmountFormat, Msg: msgInvalidInput, Input: amountToken, Err: err}
	}

	currency, err := ParseCurrency(currencyToken)
	if err != nil {
		return Money{}, err
	}

	return Money{amount: amount, currency: currency}, nil
}

// parseAmount accepts plain decimal literals only. strconv.ParseFloat on its
// own would also take "Inf", "NaN", hex floats and digit underscores. With
// those spellings excluded, the only non-finite result ParseFloat can produce
// is an overflow, which it already reports as strconv.ErrRange.
func parseAmount(token string) (Amount, error) {
	for _, r := range token {
		if !isDecimalRune(r) {
			return 0, &strconv.NumError{Func: "ParseFloat", Num: token, Err: strconv.ErrSyntax}
		}
	}

	f, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, err
	}
	return Amount(f), nil
}

func isDecimalRune(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r == '+', r == '-', r == '.', r == 'e', r == 'E':
		return true
	default:
		return false
	}
}
