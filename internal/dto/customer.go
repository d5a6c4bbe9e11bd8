package dto

import (
	"customer-console/internal/models"
)

// ListCustomersRequest represents the query for one page of customers.
// An empty search means no filter.
type ListCustomersRequest struct {
	Search string `query:"search"`
	Page   int    `query:"page" validate:"omitempty,min=1"`
}

// ListCustomersResponse represents one page of customers plus the
// server-reported cursors
type ListCustomersResponse struct {
	Data       []models.Customer `json:"data"`
	Pagination models.Pagination `json:"pagination"`
}

// CreateCustomerRequest represents the request to create a new customer
type CreateCustomerRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,len=10,numeric"`
}

// CreateCustomerRequestFromDraft builds the wire request from a locally
// validated draft
func CreateCustomerRequestFromDraft(draft models.CustomerDraft) CreateCustomerRequest {
	return CreateCustomerRequest{
		Name:  draft.Name,
		Email: draft.Email,
		Phone: draft.Phone,
	}
}

// CreateCustomerResponse represents the created customer as the service
// persisted it
type CreateCustomerResponse struct {
	Customer models.Customer `json:"data"`
}

// UpdateCustomerRequest represents the request to replace a customer's
// editable fields
type UpdateCustomerRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,len=10,numeric"`
}

// UpdateCustomerRequestFromDraft builds the wire request from a locally
// validated edit draft
func UpdateCustomerRequestFromDraft(draft models.CustomerDraft) UpdateCustomerRequest {
	return UpdateCustomerRequest{
		Name:  draft.Name,
		Email: draft.Email,
		Phone: draft.Phone,
	}
}

// UpdateCustomerResponse represents the updated customer
type UpdateCustomerResponse struct {
	Customer models.Customer `json:"data"`
}

// DeleteCustomerResponse represents the acknowledgement after a delete
type DeleteCustomerResponse struct {
	Message string `json:"message"`
}

// ImportCustomersResponse represents the acknowledgement after a bulk import
type ImportCustomersResponse struct {
	Message  string `json:"message"`
	Imported int    `json:"imported,omitempty"`
}
