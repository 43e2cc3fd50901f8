package handlers

import (
	stderrors "errors"
	"log/slog"
	"net/http"

	"ledger-categorizer/internal/errors"
	"ledger-categorizer/internal/models"
	"ledger-categorizer/internal/services"

	"github.com/labstack/echo/v4"
)

// STANDARDIZED ERROR HANDLING PATTERNS
//
// All handlers must use the following standardized error response functions:
//
// 1. SendError - For client errors and business logic errors (4xx responses)
//    Use cases:
//    - Validation errors: SendError(c, errors.ValidationGeneral, errors.WithDetails("..."))
//    - Not found errors: SendError(c, errors.CategoryNotFound)
//    - Ingestion failures: SendError(c, errors.IngestMalformedAmount, errors.WithDetails(err.Error()))
//
// 2. SendSystemError - For system/internal errors (500 responses)
//    Use cases:
//    - Category store write failures
//    - Unexpected errors that should not expose internal details to client
//
// 3. handleServiceError - For errors returned by the ledger session. It picks
//    one of the two above based on the error's sentinel.
//
// DO NOT USE:
//    - echo.NewHTTPError() - Use SendError or SendSystemError instead
//    - Direct c.JSON() for errors - Use the helper functions
//    - return err without wrapping - Use SendSystemError to protect internal details

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// SuccessResponse represents a standard success response
// Used for successful API responses with data, messages, and metadata
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	slog.Error("Request failed with internal error",
		"trace_id", traceID,
		"path", c.Request().URL.Path,
		"error", err.Error(),
	)
	errorResponse, _ := errors.WrapSystemError(err, traceID)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// domainErrorCodes maps session sentinels to API codes. Order matters only
// for errors that wrap more than one sentinel.
var domainErrorCodes = []struct {
	sentinel error
	code     errors.ErrorCode
}{
	{models.ErrDuplicateCategory, errors.CategoryAlreadyExists},
	{models.ErrUnknownCategory, errors.CategoryNotFound},
	{models.ErrEmptyCategoryName, errors.CategoryInvalidName},
	{models.ErrMalformedAmount, errors.IngestMalformedAmount},
	{models.ErrMissingColumn, errors.IngestMissingColumn},
	{models.ErrEmptyInput, errors.IngestEmptyInput},
	{models.ErrUnsupportedFormat, errors.IngestUnsupportedFormat},
	{models.ErrUnreadableInput, errors.IngestUnreadableInput},
	{models.ErrRowOutOfRange, errors.TransactionNotFound},
	{services.ErrInvalidSampleSize, errors.ValidationOutOfRange},
}

// handleServiceError translates a session error into the standardized response.
// Client-facing errors carry the error text as detail; anything unrecognised,
// including category store write failures, is a system error.
func handleServiceError(c echo.Context, err error) error {
	if stderrors.Is(err, models.ErrPersistFailed) {
		slog.Error("Category store write failed",
			"trace_id", getTraceID(c),
			"error", err.Error(),
		)
		return SendError(c, errors.CategoryPersistFailed)
	}
	for _, mapping := range domainErrorCodes {
		if stderrors.Is(err, mapping.sentinel) {
			return SendError(c, mapping.code, errors.WithDetails(err.Error()))
		}
	}
	return SendSystemError(c, err)
}
