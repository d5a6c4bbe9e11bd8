package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
)

// NoticeTestSuite is the test suite for notices and remote error classification
type NoticeTestSuite struct {
	suite.Suite
}

func TestNoticeSuite(t *testing.T) {
	suite.Run(t, new(NoticeTestSuite))
}

func (s *NoticeTestSuite) TestNewNoticeCarriesDefaultMessage() {
	notice := NewNotice(KindTransportFailure, TransportListFailed, "trace-1")

	s.Equal(KindTransportFailure, notice.Kind)
	s.Equal("TRANSPORT_001", notice.Code)
	s.Equal("Could not load customers", notice.Message)
	s.Equal("trace-1", notice.TraceID)
	s.Empty(notice.Details)
}

func (s *NoticeTestSuite) TestNoticeOptions() {
	notice := NewNotice(
		KindRemoteRejection,
		CustomerCreateRejected,
		"trace-2",
		WithMessage("custom message"),
		WithDetails("name: Name is required", "phone: Phone must be 10 digits"),
	)

	s.Equal("custom message", notice.Message)
	s.Equal([]string{"name: Name is required", "phone: Phone must be 10 digits"}, notice.Details)
}

func (s *NoticeTestSuite) TestNewValidationNotice() {
	notice := NewValidationNotice([]string{"email: Invalid email format"}, "trace-3")

	s.Equal(KindLocalValidation, notice.Kind)
	s.Equal(string(ValidationGeneral), notice.Code)
	s.Equal([]string{"email: Invalid email format"}, notice.Details)
}

func (s *NoticeTestSuite) TestRemoteErrorWrapsCause() {
	cause := errors.New("connection refused")
	remote := NewTransportFailure(TransportUnavailable, 0, cause)

	s.ErrorIs(remote, cause)
	s.Contains(remote.Error(), "connection refused")
	s.Contains(remote.Error(), GetErrorMessage(TransportUnavailable))
}

func (s *NoticeTestSuite) TestClassifyRemote() {
	tests := []struct {
		name     string
		err      error
		wantKind Kind
		wantCode ErrorCode
	}{
		{
			name:     "rejection keeps its code",
			err:      NewRemoteRejection(CustomerUpdateRejected, 422, nil),
			wantKind: KindRemoteRejection,
			wantCode: CustomerUpdateRejected,
		},
		{
			name:     "transport failure keeps its code",
			err:      NewTransportFailure(TransportDeleteFailed, 503, nil),
			wantKind: KindTransportFailure,
			wantCode: TransportDeleteFailed,
		},
		{
			name:     "wrapped remote error is still found",
			err:      fmt.Errorf("delete: %w", NewRemoteRejection(CustomerNotFound, 404, nil)),
			wantKind: KindRemoteRejection,
			wantCode: CustomerNotFound,
		},
		{
			name:     "plain error falls back to transport",
			err:      errors.New("boom"),
			wantKind: KindTransportFailure,
			wantCode: TransportListFailed,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			kind, code := ClassifyRemote(tt.err, TransportListFailed)
			s.Equal(tt.wantKind, kind)
			s.Equal(tt.wantCode, code)
		})
	}
}
