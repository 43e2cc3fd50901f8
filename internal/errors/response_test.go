package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ResponseTestSuite defines the test suite for error responses
type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

// SetupTest runs before each test
func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "550e8400-e29b-41d4-a716-446655440000"
}

// TestResponseTestSuite runs the test suite
func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

// TestNewErrorResponse_BasicUsage tests creating a basic error response
func (s *ResponseTestSuite) TestNewErrorResponse_BasicUsage() {
	response := NewErrorResponse(CategoryAlreadyExists, s.traceID)

	s.NotNil(response)
	s.Equal("CATEGORY_002", response.Error.Code)
	s.Equal("A category with this name already exists", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Empty(response.Error.Details)
}

// TestNewErrorResponse_WithDetails tests creating error response with details
func (s *ResponseTestSuite) TestNewErrorResponse_WithDetails() {
	details := []string{"row 4: malformed amount \"N/A\""}
	response := NewErrorResponse(IngestMalformedAmount, s.traceID, WithDetails(details...))

	s.Equal("INGEST_001", response.Error.Code)
	s.Equal(details, response.Error.Details)
}

// TestNewErrorResponse_WithMultipleOptions tests using multiple functional options
func (s *ResponseTestSuite) TestNewErrorResponse_WithMultipleOptions() {
	response := NewErrorResponse(
		CategoryNotFound,
		s.traceID,
		WithMessage("Category 'Bills' not found"),
		WithDetails("Detail 1", "Detail 2"),
	)

	s.Equal("CATEGORY_001", response.Error.Code)
	s.Equal("Category 'Bills' not found", response.Error.Message)
	s.Equal([]string{"Detail 1", "Detail 2"}, response.Error.Details)
	s.Equal(s.traceID, response.Error.TraceID)
}

// TestNewValidationError_WithFieldErrors tests creating validation error from field map
func (s *ResponseTestSuite) TestNewValidationError_WithFieldErrors() {
	fieldErrors := map[string]string{
		"name":    "is required",
		"keyword": "must be at most 100 characters",
		"count":   "must be at least 1",
	}

	response := NewValidationError(fieldErrors, s.traceID)

	s.Equal("VALIDATION_001", response.Error.Code)
	s.Equal("Validation failed", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Equal([]string{
		"count: must be at least 1",
		"keyword: must be at most 100 characters",
		"name: is required",
	}, response.Error.Details)
}

// TestNewValidationError_EmptyFieldErrors tests validation error with empty field map
func (s *ResponseTestSuite) TestNewValidationError_EmptyFieldErrors() {
	response := NewValidationError(map[string]string{}, s.traceID)

	s.Equal("VALIDATION_001", response.Error.Code)
	s.Empty(response.Error.Details)
}

// TestWrapSystemError_Success tests wrapping system errors
func (s *ResponseTestSuite) TestWrapSystemError_Success() {
	internalErr := errors.New("rename /data/categories.json: permission denied")

	response, originalErr := WrapSystemError(internalErr, s.traceID)

	s.Equal("SYSTEM_001", response.Error.Code)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Empty(response.Error.Details)
	s.NotContains(response.Error.Message, "/data")
	s.Equal(internalErr, originalErr)
}

// TestToJSON_ValidSerialization tests JSON serialization of error response
func (s *ResponseTestSuite) TestToJSON_ValidSerialization() {
	response := NewErrorResponse(IngestMissingColumn, s.traceID, WithDetails("missing required column(s): Date"))

	jsonBytes, err := response.ToJSON()
	s.NoError(err)

	var unmarshaled ErrorResponse
	s.NoError(json.Unmarshal(jsonBytes, &unmarshaled))
	s.Equal("INGEST_002", unmarshaled.Error.Code)
	s.Equal(s.traceID, unmarshaled.Error.TraceID)
	s.Contains(unmarshaled.Error.Details, "missing required column(s): Date")
}

// TestToJSON_EmptyDetails tests JSON serialization omits empty details
func (s *ResponseTestSuite) TestToJSON_EmptyDetails() {
	jsonBytes, err := NewErrorResponse(TransactionNotFound, s.traceID).ToJSON()
	s.NoError(err)

	var jsonMap map[string]interface{}
	s.NoError(json.Unmarshal(jsonBytes, &jsonMap))

	errorMap := jsonMap["error"].(map[string]interface{})
	_, hasDetails := errorMap["details"]
	s.False(hasDetails, "Empty details should be omitted from JSON")
	s.Contains(errorMap, "code")
	s.Contains(errorMap, "message")
	s.Contains(errorMap, "trace_id")
}

// TestGetHTTPStatus_AllErrorCodes tests HTTP status mapping for all error codes
func (s *ResponseTestSuite) TestGetHTTPStatus_AllErrorCodes() {
	testCases := []struct {
		code           ErrorCode
		expectedStatus int
	}{
		{ValidationGeneral, http.StatusBadRequest},
		{ValidationRequiredField, http.StatusBadRequest},
		{ValidationOutOfRange, http.StatusBadRequest},
		{CategoryInvalidName, http.StatusBadRequest},
		{IngestEmptyInput, http.StatusBadRequest},
		{IngestUnreadableInput, http.StatusBadRequest},
		{IngestFileRequired, http.StatusBadRequest},

		{CategoryNotFound, http.StatusNotFound},
		{TransactionNotFound, http.StatusNotFound},
		{SystemRouteNotFound, http.StatusNotFound},

		{CategoryAlreadyExists, http.StatusConflict},
		{IngestFileTooLarge, http.StatusRequestEntityTooLarge},
		{IngestUnsupportedFormat, http.StatusUnsupportedMediaType},

		{IngestMalformedAmount, http.StatusUnprocessableEntity},
		{IngestMissingColumn, http.StatusUnprocessableEntity},

		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{SystemServiceUnavailable, http.StatusServiceUnavailable},

		{SystemInternalError, http.StatusInternalServerError},
		{SystemDatabaseError, http.StatusInternalServerError},
		{CategoryPersistFailed, http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expectedStatus, GetHTTPStatus(tc.code))
		})
	}
}

// TestGetHTTPStatus_UnknownCode tests HTTP status for unknown error code
func (s *ResponseTestSuite) TestGetHTTPStatus_UnknownCode() {
	s.Equal(http.StatusInternalServerError, GetHTTPStatus("UNKNOWN_999"))
}

// TestIsClientError_4xxErrors tests client error detection
func (s *ResponseTestSuite) TestIsClientError_4xxErrors() {
	for _, code := range []ErrorCode{ValidationGeneral, CategoryAlreadyExists, IngestMalformedAmount, TransactionNotFound} {
		s.Run(string(code), func() {
			response := NewErrorResponse(code, s.traceID)
			s.True(response.IsClientError())
			s.False(response.IsServerError())
		})
	}
}

// TestIsServerError_5xxErrors tests server error detection
func (s *ResponseTestSuite) TestIsServerError_5xxErrors() {
	for _, code := range []ErrorCode{SystemInternalError, CategoryPersistFailed, SystemServiceUnavailable} {
		s.Run(string(code), func() {
			response := NewErrorResponse(code, s.traceID)
			s.True(response.IsServerError())
			s.False(response.IsClientError())
		})
	}
}

// TestString_FormatsCorrectly tests string representation of error response
func (s *ResponseTestSuite) TestString_FormatsCorrectly() {
	str := NewErrorResponse(CategoryNotFound, s.traceID).String()

	s.Contains(str, "CATEGORY_001")
	s.Contains(str, "Category not found")
	s.Contains(str, s.traceID)
}

// TestWithDetails_MultipleInvocations tests multiple WithDetails calls
func (s *ResponseTestSuite) TestWithDetails_MultipleInvocations() {
	response := NewErrorResponse(
		ValidationGeneral,
		s.traceID,
		WithDetails("detail1", "detail2"),
		WithDetails("detail3"),
	)

	s.Equal([]string{"detail3"}, response.Error.Details)
}
