package errors

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

// ErrorCodesTestSuite is the test suite for the error code registry
type ErrorCodesTestSuite struct {
	suite.Suite
}

func TestErrorCodesSuite(t *testing.T) {
	suite.Run(t, new(ErrorCodesTestSuite))
}

func (s *ErrorCodesTestSuite) TestGetErrorMessage() {
	tests := []struct {
		name string
		code ErrorCode
		want string
	}{
		{"create rejected", CustomerCreateRejected, "Error adding customer"},
		{"update rejected", CustomerUpdateRejected, "Error updating customer"},
		{"no file chosen", ValidationNoFileChosen, "Please select a file"},
		{"list failed", TransportListFailed, "Could not load customers"},
		{"unknown code", ErrorCode("NOPE_999"), "An error occurred"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.Equal(tt.want, GetErrorMessage(tt.code))
		})
	}
}

func (s *ErrorCodesTestSuite) TestIsValidErrorCode() {
	s.True(IsValidErrorCode(TransportCircuitOpen))
	s.True(IsValidErrorCode(ValidationGeneral))
	s.False(IsValidErrorCode(ErrorCode("NOPE_999")))
	s.False(IsValidErrorCode(ErrorCode("")))
}

func (s *ErrorCodesTestSuite) TestEveryRegisteredCodeHasAMessage() {
	for code, msg := range errorMessages {
		s.NotEmpty(msg, "code %s has an empty message", code)
	}
}
