package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"customer-console/internal/config"
	"customer-console/internal/dto"
	apperrors "customer-console/internal/errors"
	"customer-console/internal/models"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const requestIDHeader = "X-Request-ID"

// Client is the HTTP implementation of the record-service contract. Outbound
// calls pass a rate limiter and a circuit breaker shared across all
// operations; the session engine above it never touches the transport.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	breaker *CircuitBreaker
}

// New creates a record-service client from configuration.
func New(cfg config.ServiceConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.RequestTimeout},
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimitPerSecond), cfg.RateLimitBurst),
		breaker: NewCircuitBreaker(CircuitBreakerConfig{
			MaxFailures:     cfg.BreakerMaxFailures,
			ResetTimeout:    cfg.BreakerResetTimeout,
			HalfOpenMaxSucc: DefaultCircuitBreakerConfig().HalfOpenMaxSucc,
		}),
	}
}

// Breaker exposes the circuit breaker for metrics reporting.
func (c *Client) Breaker() *CircuitBreaker {
	return c.breaker
}

// List fetches one page of customers matching the search term.
func (c *Client) List(ctx context.Context, req dto.ListCustomersRequest) (*dto.ListCustomersResponse, error) {
	query := url.Values{}
	query.Set("search", req.Search)
	query.Set("page", strconv.Itoa(req.Page))

	resp, err := c.do(ctx, http.MethodGet, "/customers?"+query.Encode(), nil, "", apperrors.TransportListFailed)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var page dto.ListCustomersResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, apperrors.NewTransportFailure(apperrors.TransportInvalidReply, resp.StatusCode, err)
	}
	return &page, nil
}

// Create persists a new customer from a locally validated draft.
func (c *Client) Create(ctx context.Context, draft models.CustomerDraft) (*models.Customer, error) {
	body, err := json.Marshal(dto.CreateCustomerRequestFromDraft(draft))
	if err != nil {
		return nil, apperrors.NewTransportFailure(apperrors.SystemUnexpectedError, 0, err)
	}

	resp, err := c.do(ctx, http.MethodPost, "/customers", bytes.NewReader(body), "application/json", apperrors.CustomerCreateRejected)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var created dto.CreateCustomerResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, apperrors.NewTransportFailure(apperrors.TransportInvalidReply, resp.StatusCode, err)
	}
	return &created.Customer, nil
}

// Update replaces the editable fields of an existing customer.
func (c *Client) Update(ctx context.Context, id models.CustomerID, draft models.CustomerDraft) (*models.Customer, error) {
	body, err := json.Marshal(dto.UpdateCustomerRequestFromDraft(draft))
	if err != nil {
		return nil, apperrors.NewTransportFailure(apperrors.SystemUnexpectedError, 0, err)
	}

	resp, err := c.do(ctx, http.MethodPut, "/customers/"+url.PathEscape(id.String()), bytes.NewReader(body), "application/json", apperrors.CustomerUpdateRejected)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var updated dto.UpdateCustomerResponse
	if err := json.NewDecoder(resp.Body).Decode(&updated); err != nil {
		return nil, apperrors.NewTransportFailure(apperrors.TransportInvalidReply, resp.StatusCode, err)
	}
	return &updated.Customer, nil
}

// Delete removes a customer by id.
func (c *Client) Delete(ctx context.Context, id models.CustomerID) error {
	resp, err := c.do(ctx, http.MethodDelete, "/customers/"+url.PathEscape(id.String()), nil, "", apperrors.TransportDeleteFailed)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// Import uploads an opaque customer file as a multipart form. The payload
// format is the record service's concern.
func (c *Client) Import(ctx context.Context, filename string, file io.Reader) error {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	part, err := form.CreateFormFile("file", filename)
	if err != nil {
		return apperrors.NewTransportFailure(apperrors.SystemUnexpectedError, 0, err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return apperrors.NewTransportFailure(apperrors.SystemUnexpectedError, 0, err)
	}
	if err := form.Close(); err != nil {
		return apperrors.NewTransportFailure(apperrors.SystemUnexpectedError, 0, err)
	}

	resp, err := c.do(ctx, http.MethodPost, "/customers/import", &buf, form.FormDataContentType(), apperrors.TransportImportFailed)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// Export streams the full-collection export. The caller owns the returned
// reader and must close it.
func (c *Client) Export(ctx context.Context) (io.ReadCloser, error) {
	resp, err := c.do(ctx, http.MethodGet, "/customers/export", nil, "", apperrors.TransportExportFailed)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// do runs one request through the limiter and breaker and classifies the
// response. Responses with non-2xx statuses are drained, closed and turned
// into RemoteError values; 2xx responses are returned with the body open.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, rejectionCode apperrors.ErrorCode) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, apperrors.NewTransportFailure(apperrors.TransportUnavailable, 0, err)
	}

	if c.breaker.IsOpen() {
		return nil, apperrors.NewTransportFailure(apperrors.TransportCircuitOpen, 0, ErrCircuitBreakerOpen)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, apperrors.NewTransportFailure(apperrors.SystemUnexpectedError, 0, err)
	}
	req.Header.Set(requestIDHeader, uuid.NewString())
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.breaker.RecordFailure()
		return nil, apperrors.NewTransportFailure(apperrors.TransportUnavailable, 0, err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		c.breaker.RecordSuccess()
		return resp, nil

	case resp.StatusCode == http.StatusNotFound:
		// The service is alive and answered; not a breaker failure.
		c.breaker.RecordSuccess()
		drain(resp)
		return nil, apperrors.NewRemoteRejection(apperrors.CustomerNotFound, resp.StatusCode, statusError(resp.StatusCode))

	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		c.breaker.RecordSuccess()
		drain(resp)
		return nil, apperrors.NewRemoteRejection(rejectionCode, resp.StatusCode, statusError(resp.StatusCode))

	default:
		c.breaker.RecordFailure()
		drain(resp)
		return nil, apperrors.NewTransportFailure(apperrors.TransportUnavailable, resp.StatusCode, statusError(resp.StatusCode))
	}
}

func statusError(status int) error {
	return fmt.Errorf("unexpected status %d", status)
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
	resp.Body.Close()
}
