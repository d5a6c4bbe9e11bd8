package session

import (
	"errors"

	"customer-console/internal/models"
)

var ErrPageOutOfRange = errors.New("requested page is outside 1..last_page")

// RecordStore holds the authoritative local snapshot: the current page of
// customers in server order plus the server-reported pagination cursors. It
// is a cache of what the service last said, mutated only through total page
// replacement; it never merges with prior state.
//
// The store is confined to the session's single logical thread of control
// and carries no locking of its own.
type RecordStore struct {
	records    []models.Customer
	pagination models.Pagination
}

// NewRecordStore creates an empty store positioned on page 1 of 1.
func NewRecordStore() *RecordStore {
	return &RecordStore{
		records:    []models.Customer{},
		pagination: models.DefaultPagination(),
	}
}

// ReplacePage discards the whole snapshot and installs the fetched page.
// Pagination violating 1 <= current <= last is rejected and the prior
// snapshot stays intact.
func (s *RecordStore) ReplacePage(records []models.Customer, pagination models.Pagination) error {
	if err := pagination.Validate(); err != nil {
		return err
	}

	s.records = append([]models.Customer(nil), records...)
	s.pagination = pagination
	return nil
}

// Records returns a copy of the snapshot in server page order.
func (s *RecordStore) Records() []models.Customer {
	return append([]models.Customer(nil), s.records...)
}

// Pagination returns the current cursor pair.
func (s *RecordStore) Pagination() models.Pagination {
	return s.pagination
}

// TargetPage computes current+delta and refuses targets outside the valid
// range before any fetch is issued. A delta of zero is the identity.
func (s *RecordStore) TargetPage(delta int) (int, error) {
	target := s.pagination.CurrentPage + delta
	if !s.pagination.InRange(target) {
		return 0, ErrPageOutOfRange
	}
	return target, nil
}

// Len returns the number of records on the current page.
func (s *RecordStore) Len() int {
	return len(s.records)
}
