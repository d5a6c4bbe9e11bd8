package session

import (
	"context"
	"time"

	"customer-console/internal/dto"
	apperrors "customer-console/internal/errors"
	"customer-console/internal/models"

	"github.com/google/uuid"
)

// QueryController owns the search term and issues page fetches. Every fetch
// carries a monotonically increasing token; a response is applied to the
// store only while its token is still the latest, so a slow fetch for an
// older term or page can never overwrite a newer snapshot.
type QueryController struct {
	service  RecordServiceInterface
	store    *RecordStore
	notifier NotifierInterface
	logger   SessionLoggerInterface
	metrics  MetricsRecorderInterface

	searchTerm  string
	latestToken uint64
}

// NewQueryController creates a controller over the given store with an empty
// search term.
func NewQueryController(
	service RecordServiceInterface,
	store *RecordStore,
	notifier NotifierInterface,
	logger SessionLoggerInterface,
	metrics MetricsRecorderInterface,
) *QueryController {
	return &QueryController{
		service:  service,
		store:    store,
		notifier: notifier,
		logger:   logger,
		metrics:  metrics,
	}
}

// SearchTerm returns the current search term; empty means no filter.
func (q *QueryController) SearchTerm() string {
	return q.searchTerm
}

// SetSearchTerm installs a new term and refetches at the CURRENT page. The
// page is deliberately not reset to 1 when the term changes.
func (q *QueryController) SetSearchTerm(ctx context.Context, term string) error {
	q.searchTerm = term
	return q.FetchPage(ctx, q.store.Pagination().CurrentPage)
}

// RequestPage fetches current+delta, refusing out-of-range targets before
// any remote call is made.
func (q *QueryController) RequestPage(ctx context.Context, delta int) error {
	target, err := q.store.TargetPage(delta)
	if err != nil {
		return err
	}
	return q.FetchPage(ctx, target)
}

// Refetch re-issues the current page with the current term. Mutations call
// this after the service confirmed them; the remote list is the single
// source of truth post-mutation.
func (q *QueryController) Refetch(ctx context.Context) error {
	return q.FetchPage(ctx, q.store.Pagination().CurrentPage)
}

// FetchPage lists {searchTerm, page} and replaces the snapshot on success.
// A failed fetch leaves the previous snapshot intact and surfaces exactly
// one notice. Responses that lost the token race are discarded.
func (q *QueryController) FetchPage(ctx context.Context, page int) error {
	q.latestToken++
	token := q.latestToken
	started := time.Now()

	q.logger.LogFetchStarted(ctx, page, token)

	resp, err := q.service.List(ctx, dto.ListCustomersRequest{
		Search: q.searchTerm,
		Page:   page,
	})
	duration := time.Since(started)

	if err != nil {
		q.logger.LogFetchFailed(ctx, page, err.Error(), duration.Milliseconds())
		q.metrics.IncrementCounter("session.fetch", map[string]string{"status": "failed"})

		kind, code := apperrors.ClassifyRemote(err, apperrors.TransportListFailed)
		q.notifier.Notify(apperrors.NewNotice(kind, code, uuid.NewString()))
		return err
	}

	if token != q.latestToken {
		q.logger.LogStaleFetchDiscarded(ctx, token, q.latestToken)
		q.metrics.IncrementCounter("session.fetch", map[string]string{"status": "stale_discarded"})
		return nil
	}

	if err := q.applyPage(resp); err != nil {
		q.logger.LogFetchFailed(ctx, page, err.Error(), duration.Milliseconds())
		q.metrics.IncrementCounter("session.fetch", map[string]string{"status": "failed"})
		q.notifier.Notify(apperrors.NewNotice(apperrors.KindTransportFailure, apperrors.TransportInvalidReply, uuid.NewString()))
		return err
	}

	q.logger.LogFetchCompleted(ctx, resp.Pagination.CurrentPage, resp.Pagination.LastPage, len(resp.Data), duration.Milliseconds())
	q.metrics.IncrementCounter("session.fetch", map[string]string{"status": "success"})
	q.metrics.RecordProcessingTime("session.fetch", duration)
	q.metrics.RecordGauge("session.snapshot_records", float64(q.store.Len()), nil)
	q.metrics.RecordGauge("session.current_page", float64(resp.Pagination.CurrentPage), nil)
	return nil
}

func (q *QueryController) applyPage(resp *dto.ListCustomersResponse) error {
	records := resp.Data
	if records == nil {
		records = []models.Customer{}
	}
	return q.store.ReplacePage(records, resp.Pagination)
}
