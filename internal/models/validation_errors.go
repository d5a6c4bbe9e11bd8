package models

import (
	"fmt"
	"sort"
	"strings"
)

// Field names used as ValidationErrors keys. They match the json field names
// of CustomerDraft.
const (
	FieldName  = "name"
	FieldEmail = "email"
	FieldPhone = "phone"
)

// ValidationErrors maps a field name to a human-readable message. An empty
// map means the draft is valid. It is always recomputed as a whole, never
// patched field by field.
type ValidationErrors map[string]string

// IsValid reports whether no field failed validation.
func (ve ValidationErrors) IsValid() bool {
	return len(ve) == 0
}

// Get returns the message for a field, or "" when the field is valid.
func (ve ValidationErrors) Get(field string) string {
	return ve[field]
}

// Fields returns the failing field names in stable order.
func (ve ValidationErrors) Fields() []string {
	fields := make([]string, 0, len(ve))
	for field := range ve {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Details flattens the mapping into "field: message" lines in stable order,
// the shape notification payloads carry.
func (ve ValidationErrors) Details() []string {
	details := make([]string, 0, len(ve))
	for _, field := range ve.Fields() {
		details = append(details, fmt.Sprintf("%s: %s", field, ve[field]))
	}
	return details
}

func (ve ValidationErrors) String() string {
	return strings.Join(ve.Details(), "; ")
}
