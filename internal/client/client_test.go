package client

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"customer-console/internal/config"
	"customer-console/internal/dto"
	apperrors "customer-console/internal/errors"
	"customer-console/internal/models"

	"github.com/stretchr/testify/suite"
)

// ClientTestSuite exercises the HTTP client against the in-process record
// service, covering the wire contract end to end.
type ClientTestSuite struct {
	suite.Suite
	service *TestService
	server  *httptest.Server
	client  *Client
}

func (s *ClientTestSuite) SetupTest() {
	s.service = NewTestService(2, []models.Customer{
		{ID: "1", Name: "Ann Lee", Email: "ann@example.com", Phone: "1112223333"},
		{ID: "2", Name: "Bob Mars", Email: "bob@example.com", Phone: "4445556666"},
		{ID: "3", Name: "Carol Annis", Email: "carol@example.com", Phone: "7778889999"},
	})
	s.server = httptest.NewServer(s.service.Handler())
	s.client = New(config.ServiceConfig{
		BaseURL:             s.server.URL,
		RequestTimeout:      5 * time.Second,
		RateLimitPerSecond:  1000,
		RateLimitBurst:      1000,
		BreakerMaxFailures:  10,
		BreakerResetTimeout: time.Minute,
	})
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) remoteError(err error) *apperrors.RemoteError {
	s.Require().Error(err)
	remote, ok := err.(*apperrors.RemoteError)
	s.Require().True(ok, "expected *RemoteError, got %T", err)
	return remote
}

func (s *ClientTestSuite) TestListFirstPage() {
	page, err := s.client.List(context.Background(), dto.ListCustomersRequest{Search: "", Page: 1})
	s.Require().NoError(err)

	s.Len(page.Data, 2)
	s.Equal(models.Pagination{CurrentPage: 1, LastPage: 2}, page.Pagination)
	s.Equal(models.CustomerID("1"), page.Data[0].ID)
}

func (s *ClientTestSuite) TestListSecondPage() {
	page, err := s.client.List(context.Background(), dto.ListCustomersRequest{Search: "", Page: 2})
	s.Require().NoError(err)

	s.Len(page.Data, 1)
	s.Equal(2, page.Pagination.CurrentPage)
}

func (s *ClientTestSuite) TestListSearchMatchesNameCaseInsensitively() {
	page, err := s.client.List(context.Background(), dto.ListCustomersRequest{Search: "ANN", Page: 1})
	s.Require().NoError(err)

	// "ann" matches both "Ann Lee" and "Carol Annis".
	s.Len(page.Data, 2)
	s.Equal(models.Pagination{CurrentPage: 1, LastPage: 1}, page.Pagination)
}

func (s *ClientTestSuite) TestListSearchWithNoMatches() {
	page, err := s.client.List(context.Background(), dto.ListCustomersRequest{Search: "zzz", Page: 1})
	s.Require().NoError(err)

	s.Empty(page.Data)
	s.Equal(models.Pagination{CurrentPage: 1, LastPage: 1}, page.Pagination)
}

func (s *ClientTestSuite) TestListServerFailure() {
	s.service.FailNext("list", 1)

	_, err := s.client.List(context.Background(), dto.ListCustomersRequest{Page: 1})

	remote := s.remoteError(err)
	s.Equal(apperrors.KindTransportFailure, remote.Kind)
	s.Equal(apperrors.TransportUnavailable, remote.Code)
	s.Equal(500, remote.Status)
}

func (s *ClientTestSuite) TestCreateRoundTrip() {
	draft := models.CustomerDraft{Name: "Dana", Email: "dana@example.com", Phone: "2223334444"}

	created, err := s.client.Create(context.Background(), draft)
	s.Require().NoError(err)

	s.Equal(models.CustomerID("4"), created.ID)
	s.Equal("Dana", created.Name)
	s.Len(s.service.Customers(), 4)
}

func (s *ClientTestSuite) TestCreateRejectedByService() {
	draft := models.CustomerDraft{Name: "Dana", Email: "dana@example.com", Phone: "123"}

	_, err := s.client.Create(context.Background(), draft)

	remote := s.remoteError(err)
	s.Equal(apperrors.KindRemoteRejection, remote.Kind)
	s.Equal(apperrors.CustomerCreateRejected, remote.Code)
	s.Len(s.service.Customers(), 3)
}

func (s *ClientTestSuite) TestUpdateRoundTrip() {
	draft := models.CustomerDraft{Name: "Ann Updated", Email: "ann@example.com", Phone: "1112223333"}

	updated, err := s.client.Update(context.Background(), "1", draft)
	s.Require().NoError(err)

	s.Equal(models.CustomerID("1"), updated.ID)
	s.Equal("Ann Updated", updated.Name)
	s.Equal("Ann Updated", s.service.Customers()[0].Name)
}

func (s *ClientTestSuite) TestUpdateUnknownCustomer() {
	draft := models.CustomerDraft{Name: "Ghost", Email: "g@host.com", Phone: "0001112222"}

	_, err := s.client.Update(context.Background(), "99", draft)

	remote := s.remoteError(err)
	s.Equal(apperrors.KindRemoteRejection, remote.Kind)
	s.Equal(apperrors.CustomerNotFound, remote.Code)
	s.Equal(404, remote.Status)
}

func (s *ClientTestSuite) TestDeleteRoundTrip() {
	s.Require().NoError(s.client.Delete(context.Background(), "2"))

	remaining := s.service.Customers()
	s.Len(remaining, 2)
	for _, customer := range remaining {
		s.NotEqual(models.CustomerID("2"), customer.ID)
	}
}

func (s *ClientTestSuite) TestDeleteUnknownCustomer() {
	err := s.client.Delete(context.Background(), "99")

	remote := s.remoteError(err)
	s.Equal(apperrors.CustomerNotFound, remote.Code)
}

func (s *ClientTestSuite) TestImportSkipsInvalidRows() {
	payload := strings.Join([]string{
		"Dana,dana@example.com,2223334444",
		"NoPhone,np@example.com,12",
		"Eve,eve@example.com,5556667777",
	}, "\n")

	err := s.client.Import(context.Background(), "customers.csv", strings.NewReader(payload))
	s.Require().NoError(err)

	// Two valid rows land, the short-phone row is skipped.
	s.Len(s.service.Customers(), 5)
}

func (s *ClientTestSuite) TestImportServerFailure() {
	s.service.FailNext("import", 1)

	err := s.client.Import(context.Background(), "customers.csv", strings.NewReader("Dana,dana@example.com,2223334444\n"))

	remote := s.remoteError(err)
	s.Equal(apperrors.KindTransportFailure, remote.Kind)
	s.Len(s.service.Customers(), 3)
}

func (s *ClientTestSuite) TestExportStreamsEveryRecord() {
	stream, err := s.client.Export(context.Background())
	s.Require().NoError(err)
	defer stream.Close()

	content, err := io.ReadAll(stream)
	s.Require().NoError(err)

	s.Contains(string(content), "1,Ann Lee,ann@example.com,1112223333")
	s.Contains(string(content), "3,Carol Annis,carol@example.com,7778889999")
	s.Len(strings.Split(strings.TrimSpace(string(content)), "\n"), 3)
}

func (s *ClientTestSuite) TestBreakerOpensAfterRepeatedFailures() {
	client := New(config.ServiceConfig{
		BaseURL:             s.server.URL,
		RequestTimeout:      5 * time.Second,
		RateLimitPerSecond:  1000,
		RateLimitBurst:      1000,
		BreakerMaxFailures:  2,
		BreakerResetTimeout: time.Minute,
	})
	s.service.FailNext("list", 2)

	for i := 0; i < 2; i++ {
		_, err := client.List(context.Background(), dto.ListCustomersRequest{Page: 1})
		s.Require().Error(err)
	}
	s.Equal(StateOpen, client.Breaker().GetState())

	// Further calls are refused locally without reaching the service.
	_, err := client.List(context.Background(), dto.ListCustomersRequest{Page: 1})
	remote := s.remoteError(err)
	s.Equal(apperrors.TransportCircuitOpen, remote.Code)
	s.ErrorIs(remote, ErrCircuitBreakerOpen)
}

func (s *ClientTestSuite) TestSuccessKeepsBreakerClosed() {
	s.service.FailNext("list", 1)

	_, err := s.client.List(context.Background(), dto.ListCustomersRequest{Page: 1})
	s.Require().Error(err)

	_, err = s.client.List(context.Background(), dto.ListCustomersRequest{Page: 1})
	s.Require().NoError(err)

	s.Equal(StateClosed, s.client.Breaker().GetState())
	s.Equal(0, s.client.Breaker().GetFailureCount())
}
