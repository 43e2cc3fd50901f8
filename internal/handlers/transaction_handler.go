package handlers

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"

	"ledger-categorizer/internal/dto"
	"ledger-categorizer/internal/errors"
	"ledger-categorizer/internal/services"

	"github.com/labstack/echo/v4"
)

const uploadFormField = "file"

// TransactionHandler handles ledger upload and the current working set
type TransactionHandler struct {
	session        services.LedgerSessionInterface
	maxUploadBytes int64
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(session services.LedgerSessionInterface, maxUploadBytes int64) *TransactionHandler {
	return &TransactionHandler{
		session:        session,
		maxUploadBytes: maxUploadBytes,
	}
}

// UploadLedger ingests a CSV or XLSX ledger and categorizes every record.
// The previous records are kept when ingestion fails.
//
// Method: POST /api/v1/transactions/upload
//
// Form fields:
//   - file: the ledger, .csv or .xlsx
//
// Query parameters:
//   - format: csv or xlsx, overrides detection from the file extension
//
// Success Response: 200 OK with dto.IngestResponse
//
// Error Responses:
//   - 400: INGEST_007 - No file, INGEST_003 - No header row, INGEST_005 - Unreadable file
//   - 413: INGEST_006 - File too large
//   - 415: INGEST_004 - Unsupported format
//   - 422: INGEST_001 - Malformed amount, INGEST_002 - Missing column
func (h *TransactionHandler) UploadLedger(c echo.Context) error {
	params := dto.UploadLedgerParams{Format: c.QueryParam("format")}
	if err := c.Validate(params); err != nil {
		return err
	}

	file, err := c.FormFile(uploadFormField)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if stderrors.As(err, &maxBytesErr) {
			return err
		}
		return SendError(c, errors.IngestFileRequired, errors.WithDetails(fmt.Sprintf("multipart field %q is required", uploadFormField)))
	}

	if file.Size > h.maxUploadBytes {
		return SendError(c, errors.IngestFileTooLarge, errors.WithDetails(fmt.Sprintf("limit is %d bytes", h.maxUploadBytes)))
	}

	format := services.InputFormat(strings.ToLower(params.Format))
	if format == "" {
		format, err = services.DetectInputFormat(file.Filename)
		if err != nil {
			return handleServiceError(c, err)
		}
	}

	src, err := file.Open()
	if err != nil {
		return SendSystemError(c, err)
	}
	defer src.Close()

	result, err := h.session.Ingest(src, format)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewIngestResponse(file.Filename, result))
}

// ListTransactions returns the categorized records in ledger order
//
// Method: GET /api/v1/transactions
//
// Query parameters:
//   - category: only records in this category; empty or "All" returns every record
//
// Success Response: 200 OK with dto.TransactionListResponse
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	params := dto.ListTransactionsParams{Category: c.QueryParam("category")}
	if err := c.Validate(params); err != nil {
		return err
	}

	records := h.session.Records(params.Category)
	return c.JSON(http.StatusOK, dto.TransactionListResponse{
		Transactions: records,
		Total:        len(records),
		Category:     params.Category,
	})
}

// OverrideCategory manually assigns a category to one record
//
// Method: PATCH /api/v1/transactions/:row/category
//
// Path parameters:
//   - row: 1-based position of the record in the ledger
//
// Success Response: 200 OK with the updated transaction
//
// Error Responses:
//   - 400: VALIDATION_003 - Row is not a positive integer
//   - 404: TRANSACTION_001 - No such row, CATEGORY_001 - Unknown category
func (h *TransactionHandler) OverrideCategory(c echo.Context) error {
	row, err := getRowParam(c, "row")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	var req dto.OverrideCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	record, err := h.session.OverrideCategory(row, req.Category)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, record)
}

// Recategorize reruns keyword matching over the current records, typically
// after categories or keywords were added
//
// Method: POST /api/v1/transactions/recategorize
//
// Body (optional):
//   - preserve_overrides: keep manually assigned categories
//
// Success Response: 200 OK with dto.RecategorizeResponse
func (h *TransactionHandler) Recategorize(c echo.Context) error {
	var req dto.RecategorizeRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	stats := h.session.Recategorize(req.PreserveOverrides)
	return c.JSON(http.StatusOK, dto.RecategorizeResponse{
		PreserveOverrides:   req.PreserveOverrides,
		CategorizationStats: stats,
	})
}
