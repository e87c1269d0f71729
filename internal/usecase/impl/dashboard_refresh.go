// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "salesboard/internal/delivery/context"
	"salesboard/internal/usecase"
)

// refreshDashboard recomputes the summary after a committed mutation.
// Failures never reach the caller, the relational change already stands.
func refreshDashboard(ctx context.Context, refresher usecase.DashboardRefresher, fallback *slog.Logger) {
	if refresher == nil {
		return
	}

	if _, err := refresher.Refresh(ctx); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, fallback).Warn("Failed to refresh dashboard", slog.Any("error", err))
	}
}
