package session

import (
	"customer-console/internal/validation"
)

// Session is the explicit context object that owns all mutable console
// state: the page snapshot, the single edit, the new-customer form, the
// search term and the removal/import intents. Nothing here is ambient or
// global; a caller holds exactly one Session per console view.
type Session struct {
	Store       *RecordStore
	Edits       *EditSession
	Form        *CreateForm
	Queries     *QueryController
	Coordinator *SyncCoordinator
}

// New wires a session over a record service. The notifier receives every
// user-visible failure signal; logger and metrics observe the engine.
func New(
	service RecordServiceInterface,
	notifier NotifierInterface,
	logger SessionLoggerInterface,
	metrics MetricsRecorderInterface,
) *Session {
	store := NewRecordStore()
	edits := NewEditSession()
	form := NewCreateForm()
	queries := NewQueryController(service, store, notifier, logger, metrics)
	coordinator := NewSyncCoordinator(
		service,
		store,
		edits,
		form,
		queries,
		validation.GetValidator(),
		notifier,
		logger,
		metrics,
	)

	return &Session{
		Store:       store,
		Edits:       edits,
		Form:        form,
		Queries:     queries,
		Coordinator: coordinator,
	}
}
