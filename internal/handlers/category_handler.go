package handlers

import (
	"net/http"
	"strings"

	"ledger-categorizer/internal/dto"
	"ledger-categorizer/internal/errors"
	"ledger-categorizer/internal/services"

	"github.com/labstack/echo/v4"
)

// CategoryHandler handles category dictionary requests
type CategoryHandler struct {
	session services.LedgerSessionInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(session services.LedgerSessionInterface) *CategoryHandler {
	return &CategoryHandler{session: session}
}

// ListCategories returns the dictionary in matching order
//
// Method: GET /api/v1/categories
//
// Success Response: 200 OK with dto.CategoryListResponse
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.NewCategoryListResponse(h.session.Categories()))
}

// CreateCategory adds a category with no keywords at the end of the dictionary
//
// Method: POST /api/v1/categories
//
// Success Response: 201 Created with dto.CategoryResponse
//
// Error Responses:
//   - 400: VALIDATION_001 - Invalid body, CATEGORY_003 - Blank name
//   - 409: CATEGORY_002 - Category already exists
//   - 500: CATEGORY_004 - Category store write failed
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req dto.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	if err := h.session.AddCategory(req.Name); err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.CategoryResponse{Name: strings.TrimSpace(req.Name), Keywords: []string{}})
}

// AddKeyword appends a keyword to a category. Re-adding a keyword that
// differs only by case or surrounding whitespace is not an error.
//
// Method: POST /api/v1/categories/:name/keywords
//
// Success Response:
//   - 201 Created: keyword appended
//   - 200 OK: keyword blank or already present, added=false
//
// Error Responses:
//   - 400: VALIDATION_001 - Invalid body
//   - 404: CATEGORY_001 - Category not found
//   - 500: CATEGORY_004 - Category store write failed
func (h *CategoryHandler) AddKeyword(c echo.Context) error {
	category := getPathParam(c, "name")

	var req dto.AddKeywordRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	added, err := h.session.AddKeyword(category, req.Keyword)
	if err != nil {
		return handleServiceError(c, err)
	}

	status := http.StatusOK
	if added {
		status = http.StatusCreated
	}
	return c.JSON(status, dto.KeywordResponse{
		Category: category,
		Keyword:  strings.TrimSpace(req.Keyword),
		Added:    added,
	})
}
