package session

import (
	"testing"

	"customer-console/internal/models"

	"github.com/stretchr/testify/suite"
)

// EditSessionTestSuite is the test suite for EditSession
type EditSessionTestSuite struct {
	suite.Suite
	edits *EditSession
}

func (s *EditSessionTestSuite) SetupTest() {
	s.edits = NewEditSession()
}

func TestEditSessionSuite(t *testing.T) {
	suite.Run(t, new(EditSessionTestSuite))
}

func (s *EditSessionTestSuite) customer(id models.CustomerID) models.Customer {
	return models.Customer{ID: id, Name: "Ann", Email: "a@n.com", Phone: "1112223333"}
}

func (s *EditSessionTestSuite) TestStartsIdle() {
	s.False(s.edits.IsEditing())

	_, ok := s.edits.EditingID()
	s.False(ok)

	_, ok = s.edits.Draft()
	s.False(ok)
}

func (s *EditSessionTestSuite) TestBeginEditCopiesEditableFields() {
	customer := s.customer("5")
	s.edits.BeginEdit(customer)

	s.True(s.edits.IsEditing())

	id, ok := s.edits.EditingID()
	s.Require().True(ok)
	s.Equal(models.CustomerID("5"), id)

	draft, ok := s.edits.Draft()
	s.Require().True(ok)
	s.Equal(customer.Draft(), draft)
	s.True(s.edits.Errors().IsValid())
}

func (s *EditSessionTestSuite) TestBeginEditReplacesPriorDraftWithoutSaving() {
	s.edits.BeginEdit(s.customer("5"))
	s.edits.SetDraft(models.CustomerDraft{Name: "changed", Email: "c@h.com", Phone: "0001112222"})
	s.edits.SetErrors(models.ValidationErrors{models.FieldName: "Name is required"})

	// Last writer wins, no warning, prior draft and errors are gone.
	other := models.Customer{ID: "7", Name: "Bob", Email: "b@o.com", Phone: "4445556666"}
	s.edits.BeginEdit(other)

	id, _ := s.edits.EditingID()
	s.Equal(models.CustomerID("7"), id)

	draft, _ := s.edits.Draft()
	s.Equal(other.Draft(), draft)
	s.True(s.edits.Errors().IsValid())
}

func (s *EditSessionTestSuite) TestCancelReturnsToIdle() {
	s.edits.BeginEdit(s.customer("5"))
	s.edits.Cancel()

	s.False(s.edits.IsEditing())
	s.True(s.edits.Errors().IsValid())
}

func (s *EditSessionTestSuite) TestCancelWhileIdleIsNoOp() {
	s.edits.Cancel()
	s.False(s.edits.IsEditing())
}

func (s *EditSessionTestSuite) TestFailedValidationKeepsDraftAndReplacesErrors() {
	s.edits.BeginEdit(s.customer("5"))

	invalid := models.CustomerDraft{Name: "", Email: "a@n.com", Phone: "1112223333"}
	s.Require().True(s.edits.SetDraft(invalid))

	s.edits.SetErrors(models.ValidationErrors{models.FieldName: "Name is required"})

	s.True(s.edits.IsEditing())
	draft, _ := s.edits.Draft()
	s.Equal(invalid, draft)
	s.Equal("Name is required", s.edits.Errors().Get(models.FieldName))

	// A later attempt replaces the mapping wholesale.
	s.edits.SetErrors(models.ValidationErrors{models.FieldPhone: "Phone must be 10 digits"})
	s.Empty(s.edits.Errors().Get(models.FieldName))
	s.Equal("Phone must be 10 digits", s.edits.Errors().Get(models.FieldPhone))
}

func (s *EditSessionTestSuite) TestFinishEndsEdit() {
	s.edits.BeginEdit(s.customer("5"))
	s.edits.Finish()

	s.False(s.edits.IsEditing())
	_, ok := s.edits.Draft()
	s.False(ok)
}

func (s *EditSessionTestSuite) TestSetDraftWhileIdleIsRejected() {
	s.False(s.edits.SetDraft(models.CustomerDraft{Name: "x"}))
	_, ok := s.edits.Draft()
	s.False(ok)
}

func (s *EditSessionTestSuite) TestSetErrorsWhileIdleIsNoOp() {
	s.edits.SetErrors(models.ValidationErrors{models.FieldName: "Name is required"})
	s.True(s.edits.Errors().IsValid())
}
