package testutil

import (
	"context"

	"github.com/smsdesk/smsdesk/internal/types"
)

// SetupContext returns a request-like context for the given caller
func SetupContext(caller types.Caller) context.Context {
	ctx := context.Background()
	ctx = types.SetUserID(ctx, caller.UserID)
	ctx = types.SetRoles(ctx, caller.Roles)
	ctx = types.SetRequestID(ctx, types.GenerateUUID())
	return ctx
}
