package handlers

import (
	"net/http"
	"time"

	"ledger-categorizer/internal/errors"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db      *gorm.DB
	backend string
}

// NewHealthCheckHandler creates a new health check handler. db is nil when
// categories are kept in a file.
func NewHealthCheckHandler(db *gorm.DB, backend string) *HealthCheckHandler {
	return &HealthCheckHandler{db: db, backend: backend}
}

// HealthCheck reports liveness and, for the database backend, connectivity
//
// Method: GET /health
//
// Success Response: 200 OK {status, store, time}
//
// Error Responses:
//   - 503: SYSTEM_003 - Database connection failed
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request().Context())
		}
		if err != nil {
			return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
		}
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
		"store":  h.backend,
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
