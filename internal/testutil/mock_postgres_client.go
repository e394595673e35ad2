package testutil

import (
	"context"
	"sync/atomic"

	"github.com/smsdesk/smsdesk/internal/logger"
	"github.com/smsdesk/smsdesk/internal/postgres"
	"github.com/smsdesk/smsdesk/internal/types"
)

var _ postgres.IClient = (*MockPostgresClient)(nil) // Ensure MockPostgresClient implements IClient

// MockPostgresClient runs transactional functions inline and counts them
type MockPostgresClient struct {
	logger *logger.Logger
	txs    atomic.Int64
}

// NewMockPostgresClient creates a new mock postgres client
func NewMockPostgresClient(logger *logger.Logger) *MockPostgresClient {
	return &MockPostgresClient{
		logger: logger,
	}
}

// WithTx executes the given function, reusing an enclosing transaction if present
func (c *MockPostgresClient) WithTx(ctx context.Context, fn func(context.Context) error) error {
	if ctx.Value(types.CtxDBTransaction) != nil {
		return fn(ctx)
	}

	c.txs.Add(1)
	return fn(context.WithValue(ctx, types.CtxDBTransaction, true))
}

// TxCount is the number of top level transactions opened so far
func (c *MockPostgresClient) TxCount() int64 {
	return c.txs.Load()
}
