package session

import (
	"context"
	"io"
	"time"

	"customer-console/internal/dto"
	apperrors "customer-console/internal/errors"
	"customer-console/internal/models"
)

// RecordServiceInterface defines the remote record service contract. The
// transport and encoding behind it are the collaborator's concern; the
// engine only sees these six operations.
type RecordServiceInterface interface {
	// List fetches one page of customers matching the search term.
	List(ctx context.Context, req dto.ListCustomersRequest) (*dto.ListCustomersResponse, error)

	// Create persists a new customer from a locally validated draft.
	Create(ctx context.Context, draft models.CustomerDraft) (*models.Customer, error)

	// Update replaces the editable fields of an existing customer.
	Update(ctx context.Context, id models.CustomerID, draft models.CustomerDraft) (*models.Customer, error)

	// Delete removes a customer by id.
	Delete(ctx context.Context, id models.CustomerID) error

	// Import uploads an opaque customer file payload.
	Import(ctx context.Context, filename string, file io.Reader) error

	// Export streams the full-collection export; the caller closes the reader.
	Export(ctx context.Context) (io.ReadCloser, error)
}

// NotifierInterface receives the user-visible signal for every failure path.
// The presentation layer decides how to render a notice; the engine only
// guarantees that no failure is silently swallowed.
type NotifierInterface interface {
	Notify(notice apperrors.Notice)
}

// SessionLoggerInterface defines structured logging for engine operations
type SessionLoggerInterface interface {
	LogFetchStarted(ctx context.Context, page int, token uint64)
	LogFetchCompleted(ctx context.Context, page, lastPage, resultCount int, durationMs int64)
	LogFetchFailed(ctx context.Context, page int, errorMsg string, durationMs int64)
	LogStaleFetchDiscarded(ctx context.Context, token, latestToken uint64)
	LogCustomerCreated(ctx context.Context, customerID models.CustomerID)
	LogCustomerUpdated(ctx context.Context, customerID models.CustomerID)
	LogCustomerDeleted(ctx context.Context, customerID models.CustomerID)
	LogRemovalDeclined(ctx context.Context, customerID models.CustomerID)
	LogImportCompleted(ctx context.Context, filename string)
	LogExportTriggered(ctx context.Context)
	LogValidationFailure(ctx context.Context, operation string, details []string)
	LogRemoteFailure(ctx context.Context, operation string, errorMsg string)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
