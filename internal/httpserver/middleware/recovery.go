package middleware

import (
	"context"

	"github.com/gorilla/handlers"
	"go.uber.org/zap"

	"github.com/davidbz/nepersonaj/internal/observability"
)

// Recovery turns handler panics into 500 responses and logs them with their stack.
func Recovery() Middleware {
	logger := zap.NewStdLog(observability.FromContext(context.Background()))

	return handlers.RecoveryHandler(
		handlers.RecoveryLogger(logger),
		handlers.PrintRecoveryStack(true),
	)
}
