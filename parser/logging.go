package parser

import (
	"context"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	money "go-money-parser"
	"time"
)

// loggingService decorates a parser.Service with logging
type loggingService struct {
	logger log.Logger
	next   Service
}

// NewLoggingService returns a new instance of a logging Service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) Parse(ctx context.Context, input string) (m money.Money, err error) {
	defer func(begin time.Time) {
		if err != nil {
			_ = level.Warn(s.logger).Log(
				"method", "parse",
				"input", input,
				"kind", kindOf(err),
				"took", time.Since(begin),
				"err", err,
			)
			return
		}
		_ = level.Debug(s.logger).Log(
			"method", "parse",
			"input", input,
			"amount", m.Amount(),
			"currency", m.Currency(),
			"took", time.Since(begin),
		)
	}(time.Now())
	return s.next.Parse(ctx, input)
}

func (s *loggingService) ParseCurrency(ctx context.Context, token string) (c money.Currency, err error) {
	defer func(begin time.Time) {
		if err != nil {
			_ = level.Warn(s.logger).Log(
				"method", "parse_currency",
				"token", token,
				"kind", kindOf(err),
				"took", time.Since(begin),
				"err", err,
			)
			return
		}
		_ = level.Debug(s.logger).Log(
			"method", "parse_currency",
			"token", token,
			"currency", c,
			"took", time.Since(begin),
		)
	}(time.Now())
	return s.next.ParseCurrency(ctx, token)
}

// kindOf names the failure for log output; errors outside the parse taxonomy
// (cancellation) are logged as "none".
func kindOf(err error) string {
	if kind, ok := money.KindOf(err); ok {
		return kind.String()
	}
	return "none"
}
