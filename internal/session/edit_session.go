package session

import (
	"customer-console/internal/models"
)

// EditSession tracks the single in-progress inline edit: which record is
// being edited, the draft field values, and the draft's validation errors.
// At most one record is in edit mode system-wide; beginning an edit on a
// second record discards the prior draft without saving it.
type EditSession struct {
	active bool
	id     models.CustomerID
	draft  models.CustomerDraft
	errors models.ValidationErrors
}

// NewEditSession creates an idle edit session.
func NewEditSession() *EditSession {
	return &EditSession{errors: models.ValidationErrors{}}
}

// BeginEdit starts editing the given customer. The draft is initialized to a
// copy of the customer's editable fields and the errors are cleared. Any
// prior edit is discarded unconditionally, last writer wins.
func (e *EditSession) BeginEdit(customer models.Customer) {
	e.active = true
	e.id = customer.ID
	e.draft = customer.Draft()
	e.errors = models.ValidationErrors{}
}

// Cancel abandons the active edit and returns to idle. Canceling while idle
// is a no-op.
func (e *EditSession) Cancel() {
	e.reset()
}

// IsEditing reports whether an edit is in progress.
func (e *EditSession) IsEditing() bool {
	return e.active
}

// EditingID returns the id of the record being edited.
func (e *EditSession) EditingID() (models.CustomerID, bool) {
	if !e.active {
		return "", false
	}
	return e.id, true
}

// Draft returns the current draft field values.
func (e *EditSession) Draft() (models.CustomerDraft, bool) {
	if !e.active {
		return models.CustomerDraft{}, false
	}
	return e.draft, true
}

// SetDraft replaces the draft field values while an edit is active,
// reporting whether there was one. The draft's errors are left as they are;
// they are only recomputed on a save attempt.
func (e *EditSession) SetDraft(draft models.CustomerDraft) bool {
	if !e.active {
		return false
	}
	e.draft = draft
	return true
}

// Errors returns the draft's validation errors.
func (e *EditSession) Errors() models.ValidationErrors {
	return e.errors
}

// SetErrors replaces the error mapping after a failed save attempt; the
// draft is retained.
func (e *EditSession) SetErrors(errs models.ValidationErrors) {
	if !e.active {
		return
	}
	e.errors = errs
}

// Finish ends the edit after a save fully succeeded.
func (e *EditSession) Finish() {
	e.reset()
}

func (e *EditSession) reset() {
	e.active = false
	e.id = ""
	e.draft = models.CustomerDraft{}
	e.errors = models.ValidationErrors{}
}
