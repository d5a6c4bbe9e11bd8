package client

import (
	"encoding/csv"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"customer-console/internal/dto"
	"customer-console/internal/models"
	"customer-console/internal/validation"

	"github.com/labstack/echo/v4"
)

// TestService is an in-process record service implementing the same wire
// contract as the real one, used by client and session integration tests.
// It stores customers in memory and can be told to fail the next calls of an
// operation to exercise the failure paths.
type TestService struct {
	e *echo.Echo

	mu        sync.Mutex
	customers []models.Customer
	nextID    int64
	pageSize  int
	failNext  map[string]int
}

// NewTestService creates a test record service seeded with the given
// customers.
func NewTestService(pageSize int, seed []models.Customer) *TestService {
	ts := &TestService{
		e:         echo.New(),
		customers: append([]models.Customer(nil), seed...),
		nextID:    int64(len(seed)) + 1,
		pageSize:  pageSize,
		failNext:  make(map[string]int),
	}
	ts.e.HideBanner = true

	ts.e.GET("/customers", ts.listCustomers)
	ts.e.POST("/customers", ts.createCustomer)
	ts.e.PUT("/customers/:id", ts.updateCustomer)
	ts.e.DELETE("/customers/:id", ts.deleteCustomer)
	ts.e.POST("/customers/import", ts.importCustomers)
	ts.e.GET("/customers/export", ts.exportCustomers)

	return ts
}

// Handler returns the service as an http.Handler for httptest.NewServer.
func (ts *TestService) Handler() http.Handler {
	return ts.e
}

// FailNext forces the next n calls of an operation ("list", "create",
// "update", "delete", "import", "export") to answer 500.
func (ts *TestService) FailNext(op string, n int) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.failNext[op] = n
}

// Customers returns a snapshot of the stored records.
func (ts *TestService) Customers() []models.Customer {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return append([]models.Customer(nil), ts.customers...)
}

func (ts *TestService) shouldFail(op string) bool {
	if ts.failNext[op] > 0 {
		ts.failNext[op]--
		return true
	}
	return false
}

func (ts *TestService) listCustomers(c echo.Context) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if ts.shouldFail("list") {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "forced failure"})
	}

	search := strings.ToLower(c.QueryParam("search"))
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		page = 1
	}

	matched := make([]models.Customer, 0, len(ts.customers))
	for _, customer := range ts.customers {
		if search == "" ||
			strings.Contains(strings.ToLower(customer.Name), search) ||
			strings.Contains(strings.ToLower(customer.Email), search) ||
			strings.Contains(customer.Phone, search) {
			matched = append(matched, customer)
		}
	}

	lastPage := (len(matched) + ts.pageSize - 1) / ts.pageSize
	if lastPage < 1 {
		lastPage = 1
	}
	if page > lastPage {
		page = lastPage
	}

	start := (page - 1) * ts.pageSize
	end := start + ts.pageSize
	if start > len(matched) {
		start = len(matched)
	}
	if end > len(matched) {
		end = len(matched)
	}

	return c.JSON(http.StatusOK, dto.ListCustomersResponse{
		Data: matched[start:end],
		Pagination: models.Pagination{
			CurrentPage: page,
			LastPage:    lastPage,
		},
	})
}

func (ts *TestService) createCustomer(c echo.Context) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if ts.shouldFail("create") {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "forced failure"})
	}

	var req dto.CreateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid request body"})
	}
	if err := validation.GetValidator().GetValidate().Struct(req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"message": err.Error()})
	}

	customer := models.Customer{
		ID:    models.CustomerID(strconv.FormatInt(ts.nextID, 10)),
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}
	ts.nextID++
	ts.customers = append(ts.customers, customer)

	return c.JSON(http.StatusCreated, dto.CreateCustomerResponse{Customer: customer})
}

func (ts *TestService) updateCustomer(c echo.Context) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if ts.shouldFail("update") {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "forced failure"})
	}

	var req dto.UpdateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid request body"})
	}
	if err := validation.GetValidator().GetValidate().Struct(req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"message": err.Error()})
	}

	id := models.CustomerID(c.Param("id"))
	for i := range ts.customers {
		if ts.customers[i].ID == id {
			ts.customers[i].Name = req.Name
			ts.customers[i].Email = req.Email
			ts.customers[i].Phone = req.Phone
			return c.JSON(http.StatusOK, dto.UpdateCustomerResponse{Customer: ts.customers[i]})
		}
	}

	return c.JSON(http.StatusNotFound, map[string]string{"message": "customer not found"})
}

func (ts *TestService) deleteCustomer(c echo.Context) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if ts.shouldFail("delete") {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "forced failure"})
	}

	id := models.CustomerID(c.Param("id"))
	for i := range ts.customers {
		if ts.customers[i].ID == id {
			ts.customers = append(ts.customers[:i], ts.customers[i+1:]...)
			return c.JSON(http.StatusOK, dto.DeleteCustomerResponse{Message: "deleted"})
		}
	}

	return c.JSON(http.StatusNotFound, map[string]string{"message": "customer not found"})
}

// importCustomers accepts a CSV payload of name,email,phone rows. Rows
// failing the field rules are skipped rather than failing the batch.
func (ts *TestService) importCustomers(c echo.Context) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if ts.shouldFail("import") {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "forced failure"})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "file is required"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "could not read file"})
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	imported := 0
	for {
		row, err := reader.Read()
		if err != nil {
			break
		}
		if len(row) < 3 {
			continue
		}

		req := dto.CreateCustomerRequest{
			Name:  strings.TrimSpace(row[0]),
			Email: strings.TrimSpace(row[1]),
			Phone: strings.TrimSpace(row[2]),
		}
		if err := validation.GetValidator().GetValidate().Struct(req); err != nil {
			continue
		}

		ts.customers = append(ts.customers, models.Customer{
			ID:    models.CustomerID(strconv.FormatInt(ts.nextID, 10)),
			Name:  req.Name,
			Email: req.Email,
			Phone: req.Phone,
		})
		ts.nextID++
		imported++
	}

	return c.JSON(http.StatusOK, dto.ImportCustomersResponse{Message: "imported", Imported: imported})
}

func (ts *TestService) exportCustomers(c echo.Context) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if ts.shouldFail("export") {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "forced failure"})
	}

	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="customers.csv"`)
	c.Response().WriteHeader(http.StatusOK)

	writer := csv.NewWriter(c.Response())
	for _, customer := range ts.customers {
		if err := writer.Write([]string{customer.ID.String(), customer.Name, customer.Email, customer.Phone}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
