package handlers

import (
	"net/http"

	"ledger-categorizer/internal/dto"
	"ledger-categorizer/internal/services"

	"github.com/labstack/echo/v4"
)

// SummaryHandler reports on the current records
type SummaryHandler struct {
	session services.LedgerSessionInterface
}

// NewSummaryHandler creates a new summary handler
func NewSummaryHandler(session services.LedgerSessionInterface) *SummaryHandler {
	return &SummaryHandler{session: session}
}

// GetSummary returns the expense distribution, the per-category totals and
// total expenses. has_expenses is false when there is nothing to chart.
//
// Method: GET /api/v1/summary
//
// Success Response: 200 OK with dto.SummaryResponse
func (h *SummaryHandler) GetSummary(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.NewSummaryResponse(h.session.Summary()))
}
