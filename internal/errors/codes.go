package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Category error codes (CATEGORY_*)
const (
	CategoryNotFound      ErrorCode = "CATEGORY_001"
	CategoryAlreadyExists ErrorCode = "CATEGORY_002"
	CategoryInvalidName   ErrorCode = "CATEGORY_003"
	CategoryPersistFailed ErrorCode = "CATEGORY_004"
)

// Ingestion error codes (INGEST_*)
const (
	IngestMalformedAmount   ErrorCode = "INGEST_001"
	IngestMissingColumn     ErrorCode = "INGEST_002"
	IngestEmptyInput        ErrorCode = "INGEST_003"
	IngestUnsupportedFormat ErrorCode = "INGEST_004"
	IngestUnreadableInput   ErrorCode = "INGEST_005"
	IngestFileTooLarge      ErrorCode = "INGEST_006"
	IngestFileRequired      ErrorCode = "INGEST_007"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound ErrorCode = "TRANSACTION_001"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemRouteNotFound      ErrorCode = "SYSTEM_007"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Category errors
	CategoryNotFound:      "Category not found",
	CategoryAlreadyExists: "A category with this name already exists",
	CategoryInvalidName:   "Category name cannot be empty",
	CategoryPersistFailed: "Category changes could not be saved",

	// Ingestion errors
	IngestMalformedAmount:   "Ledger contains a non-numeric amount",
	IngestMissingColumn:     "Ledger is missing a required column",
	IngestEmptyInput:        "Ledger has no header row",
	IngestUnsupportedFormat: "Unsupported ledger format, expected .csv or .xlsx",
	IngestUnreadableInput:   "Ledger file could not be read",
	IngestFileTooLarge:      "Ledger file exceeds the upload size limit",
	IngestFileRequired:      "A ledger file is required",

	// Transaction errors
	TransactionNotFound: "Transaction not found",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemRouteNotFound:      "The requested resource was not found",
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
