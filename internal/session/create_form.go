package session

import (
	"customer-console/internal/models"
)

// CreateForm holds the new-customer draft and its validation errors. It is
// owned by the session, independent of the edit session, and cleared back to
// empty after a successful create.
type CreateForm struct {
	draft  models.CustomerDraft
	errors models.ValidationErrors
}

// NewCreateForm creates an empty form.
func NewCreateForm() *CreateForm {
	return &CreateForm{errors: models.ValidationErrors{}}
}

// SetDraft replaces the draft as the user types. Errors are left in place
// until the next create attempt recomputes them.
func (f *CreateForm) SetDraft(draft models.CustomerDraft) {
	f.draft = draft
}

// Draft returns the current draft field values.
func (f *CreateForm) Draft() models.CustomerDraft {
	return f.draft
}

// Errors returns the last computed validation errors.
func (f *CreateForm) Errors() models.ValidationErrors {
	return f.errors
}

func (f *CreateForm) setErrors(errs models.ValidationErrors) {
	f.errors = errs
}

func (f *CreateForm) reset() {
	f.draft = models.CustomerDraft{}
	f.errors = models.ValidationErrors{}
}
