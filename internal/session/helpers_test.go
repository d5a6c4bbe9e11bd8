package session

import (
	"context"
	"time"

	apperrors "customer-console/internal/errors"
	"customer-console/internal/models"
	"customer-console/internal/validation"
)

// captureNotifier records every notice so tests can assert that each failure
// path produced exactly one user-visible signal.
type captureNotifier struct {
	notices []apperrors.Notice
}

func (c *captureNotifier) Notify(notice apperrors.Notice) {
	c.notices = append(c.notices, notice)
}

func (c *captureNotifier) last() (apperrors.Notice, bool) {
	if len(c.notices) == 0 {
		return apperrors.Notice{}, false
	}
	return c.notices[len(c.notices)-1], true
}

type nopLogger struct{}

func (nopLogger) LogFetchStarted(context.Context, int, uint64) {}
func (nopLogger) LogFetchCompleted(context.Context, int, int, int, int64) {}
func (nopLogger) LogFetchFailed(context.Context, int, string, int64) {}
func (nopLogger) LogStaleFetchDiscarded(context.Context, uint64, uint64) {}
func (nopLogger) LogCustomerCreated(context.Context, models.CustomerID) {}
func (nopLogger) LogCustomerUpdated(context.Context, models.CustomerID) {}
func (nopLogger) LogCustomerDeleted(context.Context, models.CustomerID) {}
func (nopLogger) LogRemovalDeclined(context.Context, models.CustomerID) {}
func (nopLogger) LogImportCompleted(context.Context, string) {}
func (nopLogger) LogExportTriggered(context.Context) {}
func (nopLogger) LogValidationFailure(context.Context, string, []string) {}
func (nopLogger) LogRemoteFailure(context.Context, string, string) {}

type nopMetrics struct{}

func (nopMetrics) IncrementCounter(string, map[string]string) {}
func (nopMetrics) RecordProcessingTime(string, time.Duration) {}
func (nopMetrics) RecordGauge(string, float64, map[string]string) {}

// newTestSession wires a full engine over the given service with a capturing
// notifier and silent observability.
func newTestSession(service RecordServiceInterface) (*Session, *captureNotifier) {
	notifier := &captureNotifier{}
	store := NewRecordStore()
	edits := NewEditSession()
	form := NewCreateForm()
	queries := NewQueryController(service, store, notifier, nopLogger{}, nopMetrics{})
	coordinator := NewSyncCoordinator(service, store, edits, form, queries, validation.NewValidator(), notifier, nopLogger{}, nopMetrics{})

	return &Session{
		Store:       store,
		Edits:       edits,
		Form:        form,
		Queries:     queries,
		Coordinator: coordinator,
	}, notifier
}
