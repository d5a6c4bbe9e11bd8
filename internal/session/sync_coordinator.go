package session

import (
	"context"
	"errors"
	"io"

	apperrors "customer-console/internal/errors"
	"customer-console/internal/models"
	"customer-console/internal/validation"

	"github.com/google/uuid"
)

var (
	ErrValidationFailed = errors.New("draft failed local validation")
	ErrNoActiveEdit     = errors.New("no edit in progress")
	ErrNoPendingRemoval = errors.New("no removal intent to confirm")
	ErrNoFileSelected   = errors.New("no import file selected")
)

// importFile is the selected-but-not-yet-uploaded file reference.
type importFile struct {
	name string
	file io.Reader
}

// SyncCoordinator orchestrates the remote mutations and reconciles their
// results back into the store, the edit session and the create form. Every
// successful mutation triggers exactly one refetch of the current page; the
// remote list is the single source of truth post-mutation, even at the cost
// of an extra round-trip, because server-side sort and filter could
// invalidate any local patch.
type SyncCoordinator struct {
	service   RecordServiceInterface
	store     *RecordStore
	edits     *EditSession
	form      *CreateForm
	queries   *QueryController
	validator *validation.Validator
	notifier  NotifierInterface
	logger    SessionLoggerInterface
	metrics   MetricsRecorderInterface

	pendingRemoval *models.CustomerID
	selectedFile   *importFile
}

// NewSyncCoordinator wires the coordinator over the engine's state holders.
func NewSyncCoordinator(
	service RecordServiceInterface,
	store *RecordStore,
	edits *EditSession,
	form *CreateForm,
	queries *QueryController,
	validator *validation.Validator,
	notifier NotifierInterface,
	logger SessionLoggerInterface,
	metrics MetricsRecorderInterface,
) *SyncCoordinator {
	return &SyncCoordinator{
		service:   service,
		store:     store,
		edits:     edits,
		form:      form,
		queries:   queries,
		validator: validator,
		notifier:  notifier,
		logger:    logger,
		metrics:   metrics,
	}
}

// Create validates the new-customer draft and persists it. Local validation
// failure records the field errors on the form and makes no remote call. On
// success the form is cleared and the current page refetched; on remote
// failure the draft and its errors are untouched so the user can retry.
func (s *SyncCoordinator) Create(ctx context.Context) error {
	draft := s.form.Draft()

	errs := s.validator.DraftErrors(draft)
	if !errs.IsValid() {
		s.form.setErrors(errs)
		s.logger.LogValidationFailure(ctx, "create", errs.Details())
		s.metrics.IncrementCounter("session.mutation", map[string]string{"operation": "create", "status": "invalid"})
		s.notifier.Notify(apperrors.NewValidationNotice(errs.Details(), uuid.NewString()))
		return ErrValidationFailed
	}
	s.form.setErrors(models.ValidationErrors{})

	created, err := s.service.Create(ctx, draft)
	if err != nil {
		s.failMutation(ctx, "create", err, apperrors.CustomerCreateRejected)
		return err
	}

	s.form.reset()
	s.logger.LogCustomerCreated(ctx, created.ID)
	s.metrics.IncrementCounter("session.mutation", map[string]string{"operation": "create", "status": "success"})
	return s.queries.Refetch(ctx)
}

// Update validates the active edit draft and saves it. Local validation
// failure keeps the draft, replaces the errors and makes no remote call. On
// success the edit session returns to idle and the current page is refetched
// exactly once; on remote failure the session stays editing with draft and
// errors untouched.
func (s *SyncCoordinator) Update(ctx context.Context) error {
	id, ok := s.edits.EditingID()
	if !ok {
		return ErrNoActiveEdit
	}
	draft, _ := s.edits.Draft()

	errs := s.validator.DraftErrors(draft)
	if !errs.IsValid() {
		s.edits.SetErrors(errs)
		s.logger.LogValidationFailure(ctx, "update", errs.Details())
		s.metrics.IncrementCounter("session.mutation", map[string]string{"operation": "update", "status": "invalid"})
		s.notifier.Notify(apperrors.NewValidationNotice(errs.Details(), uuid.NewString()))
		return ErrValidationFailed
	}

	updated, err := s.service.Update(ctx, id, draft)
	if err != nil {
		s.failMutation(ctx, "update", err, apperrors.CustomerUpdateRejected)
		return err
	}

	s.edits.Finish()
	s.logger.LogCustomerUpdated(ctx, updated.ID)
	s.metrics.IncrementCounter("session.mutation", map[string]string{"operation": "update", "status": "success"})
	return s.queries.Refetch(ctx)
}

// RequestRemoval records the intent to delete a record. Nothing is issued
// until ConfirmRemoval; this is the two-phase replacement for a blocking
// confirmation dialog.
func (s *SyncCoordinator) RequestRemoval(id models.CustomerID) {
	s.pendingRemoval = &id
}

// PendingRemoval returns the id awaiting confirmation.
func (s *SyncCoordinator) PendingRemoval() (models.CustomerID, bool) {
	if s.pendingRemoval == nil {
		return "", false
	}
	return *s.pendingRemoval, true
}

// DeclineRemoval drops the pending intent. Declining is a no-op, not an
// error: zero remote calls, zero state mutation, no notice.
func (s *SyncCoordinator) DeclineRemoval(ctx context.Context) {
	if s.pendingRemoval == nil {
		return
	}
	s.logger.LogRemovalDeclined(ctx, *s.pendingRemoval)
	s.pendingRemoval = nil
}

// ConfirmRemoval issues the delete for the pending intent. No local state is
// mutated until the service confirms; on success the current page is
// refetched. On failure the intent is kept so the user can retry.
func (s *SyncCoordinator) ConfirmRemoval(ctx context.Context) error {
	if s.pendingRemoval == nil {
		return ErrNoPendingRemoval
	}
	id := *s.pendingRemoval

	if err := s.service.Delete(ctx, id); err != nil {
		s.failMutation(ctx, "delete", err, apperrors.TransportDeleteFailed)
		return err
	}

	s.pendingRemoval = nil
	s.logger.LogCustomerDeleted(ctx, id)
	s.metrics.IncrementCounter("session.mutation", map[string]string{"operation": "delete", "status": "success"})
	return s.queries.Refetch(ctx)
}

// SelectImportFile records the chosen file for the next import.
func (s *SyncCoordinator) SelectImportFile(name string, file io.Reader) {
	s.selectedFile = &importFile{name: name, file: file}
}

// ClearImportFile drops the selected file reference.
func (s *SyncCoordinator) ClearImportFile() {
	s.selectedFile = nil
}

// HasImportFile reports whether a file has been selected.
func (s *SyncCoordinator) HasImportFile() bool {
	return s.selectedFile != nil
}

// ImportBatch uploads the selected file. Absence of a selection is a local
// validation failure surfaced as a blocking prompt, not a remote call. On
// success the file reference is discarded and the current page refetched; on
// failure the reference is retained so the user can retry.
func (s *SyncCoordinator) ImportBatch(ctx context.Context) error {
	if s.selectedFile == nil {
		s.logger.LogValidationFailure(ctx, "import", []string{apperrors.GetErrorMessage(apperrors.ValidationNoFileChosen)})
		s.metrics.IncrementCounter("session.mutation", map[string]string{"operation": "import", "status": "invalid"})
		s.notifier.Notify(apperrors.NewNotice(apperrors.KindLocalValidation, apperrors.ValidationNoFileChosen, uuid.NewString()))
		return ErrNoFileSelected
	}

	if err := s.service.Import(ctx, s.selectedFile.name, s.selectedFile.file); err != nil {
		s.failMutation(ctx, "import", err, apperrors.TransportImportFailed)
		return err
	}

	s.logger.LogImportCompleted(ctx, s.selectedFile.name)
	s.metrics.IncrementCounter("session.mutation", map[string]string{"operation": "import", "status": "success"})
	s.selectedFile = nil
	return s.queries.Refetch(ctx)
}

// ExportAll streams the full-collection export into dst. The export is
// fire-and-forget for local state: no snapshot, form or edit mutation either
// way. A failure still surfaces a notice.
func (s *SyncCoordinator) ExportAll(ctx context.Context, dst io.Writer) error {
	stream, err := s.service.Export(ctx)
	if err != nil {
		s.failMutation(ctx, "export", err, apperrors.TransportExportFailed)
		return err
	}
	defer stream.Close()

	if _, err := io.Copy(dst, stream); err != nil {
		s.failMutation(ctx, "export", err, apperrors.TransportExportFailed)
		return err
	}

	s.logger.LogExportTriggered(ctx)
	s.metrics.IncrementCounter("session.mutation", map[string]string{"operation": "export", "status": "success"})
	return nil
}

// failMutation surfaces exactly one notice for a failed remote call. Remote
// errors never trigger automatic retry; the user must re-trigger the action.
func (s *SyncCoordinator) failMutation(ctx context.Context, operation string, err error, fallback apperrors.ErrorCode) {
	s.logger.LogRemoteFailure(ctx, operation, err.Error())
	s.metrics.IncrementCounter("session.mutation", map[string]string{"operation": operation, "status": "failed"})

	kind, code := apperrors.ClassifyRemote(err, fallback)
	s.notifier.Notify(apperrors.NewNotice(kind, code, uuid.NewString()))
}
