package models

import (
	"strconv"

	"github.com/brianvoe/gofakeit/v7"
)

// CustomerGenerator produces realistic customer fixtures for seeding the test
// record service and for test data. Generated records always satisfy the
// draft field rules, so a generated customer round-trips cleanly through
// validation.
type CustomerGenerator struct {
	faker  *gofakeit.Faker
	nextID int64
}

// NewCustomerGenerator creates a generator with a fixed seed so fixtures are
// reproducible across runs.
func NewCustomerGenerator(seed uint64) *CustomerGenerator {
	return &CustomerGenerator{
		faker:  gofakeit.New(seed),
		nextID: 1,
	}
}

// GenerateDraft returns a valid draft with fabricated name, email and phone.
func (g *CustomerGenerator) GenerateDraft() CustomerDraft {
	return CustomerDraft{
		Name:  g.faker.Name(),
		Email: g.faker.Email(),
		Phone: g.faker.Numerify("##########"),
	}
}

// GenerateCustomer returns a customer with a sequential numeric id, the shape
// the record service assigns.
func (g *CustomerGenerator) GenerateCustomer() Customer {
	draft := g.GenerateDraft()
	id := g.nextID
	g.nextID++

	return Customer{
		ID:    CustomerID(strconv.FormatInt(id, 10)),
		Name:  draft.Name,
		Email: draft.Email,
		Phone: draft.Phone,
	}
}

// GenerateCustomers returns n customers with distinct sequential ids.
func (g *CustomerGenerator) GenerateCustomers(n int) []Customer {
	customers := make([]Customer, 0, n)
	for i := 0; i < n; i++ {
		customers = append(customers, g.GenerateCustomer())
	}
	return customers
}
