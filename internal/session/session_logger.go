package session

import (
	"context"
	"log/slog"
	"time"

	"customer-console/internal/models"
)

// SessionLogger provides structured logging for engine operations. The
// search term itself is never logged; it is user input and may carry PII.
type SessionLogger struct {
	logger *slog.Logger
}

// NewSessionLogger creates a new session logger
func NewSessionLogger(logger *slog.Logger) SessionLoggerInterface {
	return &SessionLogger{
		logger: logger,
	}
}

// LogFetchStarted logs the start of a page fetch
func (sl *SessionLogger) LogFetchStarted(ctx context.Context, page int, token uint64) {
	sl.logger.InfoContext(ctx, "page fetch started",
		slog.String("event_type", "fetch_started"),
		slog.Int("page", page),
		slog.Uint64("token", token),
		slog.Time("timestamp", time.Now()),
	)
}

// LogFetchCompleted logs a fetch whose response replaced the snapshot
func (sl *SessionLogger) LogFetchCompleted(ctx context.Context, page, lastPage, resultCount int, durationMs int64) {
	sl.logger.InfoContext(ctx, "page fetch completed",
		slog.String("event_type", "fetch_completed"),
		slog.Int("page", page),
		slog.Int("last_page", lastPage),
		slog.Int("result_count", resultCount),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
	)
}

// LogFetchFailed logs a fetch that left the snapshot untouched
func (sl *SessionLogger) LogFetchFailed(ctx context.Context, page int, errorMsg string, durationMs int64) {
	sl.logger.WarnContext(ctx, "page fetch failed",
		slog.String("event_type", "fetch_failed"),
		slog.Int("page", page),
		slog.String("error", errorMsg),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
	)
}

// LogStaleFetchDiscarded logs a response that lost the token race
func (sl *SessionLogger) LogStaleFetchDiscarded(ctx context.Context, token, latestToken uint64) {
	sl.logger.InfoContext(ctx, "stale fetch response discarded",
		slog.String("event_type", "stale_fetch_discarded"),
		slog.Uint64("token", token),
		slog.Uint64("latest_token", latestToken),
		slog.Time("timestamp", time.Now()),
	)
}

// LogCustomerCreated logs customer creation
func (sl *SessionLogger) LogCustomerCreated(ctx context.Context, customerID models.CustomerID) {
	sl.logger.InfoContext(ctx, "customer created",
		slog.String("event_type", "customer_created"),
		slog.String("customer_id", customerID.String()),
		slog.Time("timestamp", time.Now()),
	)
}

// LogCustomerUpdated logs a saved inline edit
func (sl *SessionLogger) LogCustomerUpdated(ctx context.Context, customerID models.CustomerID) {
	sl.logger.InfoContext(ctx, "customer updated",
		slog.String("event_type", "customer_updated"),
		slog.String("customer_id", customerID.String()),
		slog.Time("timestamp", time.Now()),
	)
}

// LogCustomerDeleted logs a confirmed removal
func (sl *SessionLogger) LogCustomerDeleted(ctx context.Context, customerID models.CustomerID) {
	sl.logger.InfoContext(ctx, "customer deleted",
		slog.String("event_type", "customer_deleted"),
		slog.String("customer_id", customerID.String()),
		slog.Time("timestamp", time.Now()),
	)
}

// LogRemovalDeclined logs a declined removal confirmation
func (sl *SessionLogger) LogRemovalDeclined(ctx context.Context, customerID models.CustomerID) {
	sl.logger.InfoContext(ctx, "customer removal declined",
		slog.String("event_type", "removal_declined"),
		slog.String("customer_id", customerID.String()),
		slog.Time("timestamp", time.Now()),
	)
}

// LogImportCompleted logs a successful bulk import upload
func (sl *SessionLogger) LogImportCompleted(ctx context.Context, filename string) {
	sl.logger.InfoContext(ctx, "customer import completed",
		slog.String("event_type", "import_completed"),
		slog.String("filename", filename),
		slog.Time("timestamp", time.Now()),
	)
}

// LogExportTriggered logs a full-collection export
func (sl *SessionLogger) LogExportTriggered(ctx context.Context) {
	sl.logger.InfoContext(ctx, "customer export triggered",
		slog.String("event_type", "export_triggered"),
		slog.Time("timestamp", time.Now()),
	)
}

// LogValidationFailure logs a draft blocked before any remote call
func (sl *SessionLogger) LogValidationFailure(ctx context.Context, operation string, details []string) {
	sl.logger.WarnContext(ctx, "local validation failed",
		slog.String("event_type", "validation_failure"),
		slog.String("operation", operation),
		slog.Any("details", details),
		slog.Time("timestamp", time.Now()),
	)
}

// LogRemoteFailure logs a mutation the record service failed or refused
func (sl *SessionLogger) LogRemoteFailure(ctx context.Context, operation string, errorMsg string) {
	sl.logger.WarnContext(ctx, "remote call failed",
		slog.String("event_type", "remote_failure"),
		slog.String("operation", operation),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
	)
}
