package postgres

import (
	"context"

	"github.com/smsdesk/smsdesk/internal/logger"
	sentryService "github.com/smsdesk/smsdesk/internal/sentry"
	"go.uber.org/fx"
)

// IClient is the transaction boundary services depend on
type IClient interface {
	// WithTx wraps the given function in a transaction
	WithTx(ctx context.Context, fn func(context.Context) error) error
}

// Module provides an fx.Option to integrate the sqlx pool with the application
func Module() fx.Option {
	return fx.Options(
		fx.Provide(
			NewDB,
			NewClient,
		),
		fx.Invoke(registerHooks),
	)
}

// NewClient exposes the pool as an IClient instrumented with sentry spans
func NewClient(db *DB, sentry *sentryService.Service, logger *logger.Logger) IClient {
	return NewSentryClient(db, sentry, logger)
}

func registerHooks(lc fx.Lifecycle, db *DB) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			db.Close()
			return nil
		},
	})
}
