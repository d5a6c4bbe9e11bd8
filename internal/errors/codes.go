package errors

// ErrorCode represents a standardized error code used throughout the console
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidEmail  ErrorCode = "VALIDATION_003"
	ValidationInvalidPhone  ErrorCode = "VALIDATION_004"
	ValidationNoFileChosen  ErrorCode = "VALIDATION_005"
)

// Customer error codes (CUSTOMER_*)
const (
	CustomerCreateRejected ErrorCode = "CUSTOMER_001"
	CustomerUpdateRejected ErrorCode = "CUSTOMER_002"
	CustomerNotFound       ErrorCode = "CUSTOMER_003"
	CustomerInvalidID      ErrorCode = "CUSTOMER_004"
)

// Transport error codes (TRANSPORT_*)
const (
	TransportListFailed   ErrorCode = "TRANSPORT_001"
	TransportDeleteFailed ErrorCode = "TRANSPORT_002"
	TransportImportFailed ErrorCode = "TRANSPORT_003"
	TransportExportFailed ErrorCode = "TRANSPORT_004"
	TransportUnavailable  ErrorCode = "TRANSPORT_005"
	TransportCircuitOpen  ErrorCode = "TRANSPORT_006"
	TransportInvalidReply ErrorCode = "TRANSPORT_007"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError   ErrorCode = "SYSTEM_001"
	SystemUnexpectedError ErrorCode = "SYSTEM_002"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidEmail:  "Invalid email format",
	ValidationInvalidPhone:  "Phone must be 10 digits",
	ValidationNoFileChosen:  "Please select a file",

	// Customer errors
	CustomerCreateRejected: "Error adding customer",
	CustomerUpdateRejected: "Error updating customer",
	CustomerNotFound:       "Customer not found",
	CustomerInvalidID:      "Invalid customer ID",

	// Transport errors
	TransportListFailed:   "Could not load customers",
	TransportDeleteFailed: "Could not delete customer",
	TransportImportFailed: "Import failed",
	TransportExportFailed: "Export failed",
	TransportUnavailable:  "Record service temporarily unavailable",
	TransportCircuitOpen:  "Record service calls suspended after repeated failures",
	TransportInvalidReply: "Record service returned an unreadable response",

	// System errors
	SystemInternalError:   "An unexpected error occurred",
	SystemUnexpectedError: "An unexpected error occurred",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
