package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// CustomerID is the server-assigned record identity. The record service is
// free to encode it as a JSON string or a JSON number; both decode to the
// same opaque value.
type CustomerID string

// UnmarshalJSON accepts both `"42"` and `42` on the wire.
func (id *CustomerID) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*id = ""
		return nil
	}

	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("invalid customer id: %w", err)
		}
		*id = CustomerID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid customer id: %w", err)
	}
	*id = CustomerID(n.String())
	return nil
}

func (id CustomerID) String() string {
	return string(id)
}

// IsZero reports whether the id has not been assigned by the server yet.
func (id CustomerID) IsZero() bool {
	return id == ""
}

// Int returns the numeric form of the id when the server assigned a numeric
// one, or an error for non-numeric ids.
func (id CustomerID) Int() (int64, error) {
	return strconv.ParseInt(string(id), 10, 64)
}

// Customer is one record as reported by the record service. The service owns
// authoritative storage; the client never mutates a Customer in place.
type Customer struct {
	ID    CustomerID `json:"id"`
	Name  string     `json:"name"`
	Email string     `json:"email"`
	Phone string     `json:"phone"`
}

// Draft returns a copy of the customer's editable fields, the starting point
// of an inline edit.
func (c Customer) Draft() CustomerDraft {
	return CustomerDraft{
		Name:  c.Name,
		Email: c.Email,
		Phone: c.Phone,
	}
}

// CustomerDraft holds the three editable fields of a record that has not been
// saved yet. It backs both the new-customer form and the inline edit draft.
type CustomerDraft struct {
	Name  string `json:"name" validate:"notblank"`
	Email string `json:"email" validate:"notblank,mailbox"`
	Phone string `json:"phone" validate:"notblank,tendigits"`
}

// IsEmpty reports whether every field is blank, the state the new-customer
// form returns to after a successful create.
func (d CustomerDraft) IsEmpty() bool {
	return d.Name == "" && d.Email == "" && d.Phone == ""
}
