package handlers

import (
	"fmt"
	"net/http"

	"ledger-categorizer/internal/dto"
	"ledger-categorizer/internal/errors"
	"ledger-categorizer/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	session services.LedgerSessionInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(session services.LedgerSessionInterface) *DevHandler {
	return &DevHandler{session: session}
}

// LoadSampleLedger replaces the current records with a generated ledger
//
// Method: POST /api/v1/dev/sample
// Environment: Development only
//
// Body:
//   - count: number of rows to generate (1 to 5000)
//
// Success Response: 200 OK with dto.IngestResponse
//
// Error Responses:
//   - 400: Invalid count
func (h *DevHandler) LoadSampleLedger(c echo.Context) error {
	var req dto.SampleLedgerRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	result, err := h.session.LoadSample(req.Count)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewIngestResponse(fmt.Sprintf("sample:%d", req.Count), result))
}
