package parser

import (
	"context"
	"fmt"
	money "go-money-parser"
)

// Service parses money and currency strings
type Service interface {
	Parse(ctx context.Context, input string) (money.Money, error)
	ParseCurrency(ctx context.Context, token string) (money.Currency, error)
}

// service delegates to the money package. It holds no state and is safe for
// concurrent use.
type service struct{}

// NewService constructs a valid Service
func NewService() Service {
	return &service{}
}

// Parse parses input with money.Parse unless ctx is already done.
// Parse failures are returned as-is so callers can use money.KindOf on them.
func (s *service) Parse(ctx context.Context, input string) (money.Money, error) {
	if err := ctx.Err(); err != nil {
		return money.Money{}, fmt.Errorf("parse: %w", err)
	}
	return money.Parse(input)
}

// ParseCurrency resolves a single currency token unless ctx is already done.
func (s *service) ParseCurrency(ctx context.Context, token string) (money.Currency, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("parse currency: %w", err)
	}
	return money.ParseCurrency(token)
}
