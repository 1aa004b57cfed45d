package money

import "strings"

// Currency is one of the recognised monetary units. The set is closed:
// Dollar and Euro are the only values ParseCurrency ever returns.
type Currency string

const (
	Dollar Currency = "Dollar"
	Euro   Currency = "Euro"
)

// alias table, walked in order; the first variant with a matching alias wins.
// Aliases are stored lowercased.
var currencyAliases = []struct {
	currency Currency
	aliases  []string
}{
	{Dollar, []string{"dollar", "$"}},
	{Euro, []string{"euro", "eur", "€"}},
}

// ParseCurrency resolves a single token to a Currency, ignoring case.
// Unknown tokens fail with a CurrencyFormat *ParseError.
func ParseCurrency(token string) (Currency, error) {
	lower := strings.ToLower(token)
	for _, entry := range currencyAliases {
		for _, alias := range entry.aliases {
			if lower == alias {
				return entry.currency, nil
			}
		}
	}
	return "", &ParseError{Kind: CurrencyFormat, Msg: msgUnknownCurrency, Input: token}
}

// Currencies lists every known Currency in matching order.
func Currencies() []Currency {
	out := make([]Currency, 0, len(currencyAliases))
	for _, entry := range currencyAliases {
		out = append(out, entry.currency)
	}
	return out
}

// Aliases returns the spellings accepted for c, or nil if c is not a known Currency.
func (c Currency) Aliases() []string {
	for _, entry := range currencyAliases {
		if entry.currency == c {
			out := make([]string, len(entry.aliases))
			copy(out, entry.aliases)
			return out
		}
	}
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseCurrency.
func (c *Currency) UnmarshalText(text []byte) error {
	parsed, err := ParseCurrency(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
