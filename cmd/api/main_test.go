package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ledger-categorizer/internal/config"
	apierrors "ledger-categorizer/internal/errors"
	"ledger-categorizer/internal/middleware"
	"ledger-categorizer/internal/models"
	"ledger-categorizer/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type ServerTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	session *service_mocks.MockLedgerSessionInterface
	cfg     *config.Config
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (s *ServerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.session = service_mocks.NewMockLedgerSessionInterface(s.ctrl)
	s.cfg = &config.Config{
		Server: config.ServerConfig{
			Environment:        "development",
			RateLimitPerSecond: 100,
			RateLimitBurst:     100,
			MaxUploadBytes:     1 << 20,
		},
		Store: config.StoreConfig{Backend: config.StoreBackendFile},
	}
}

func (s *ServerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ServerTestSuite) serve(method, target, body string) *httptest.ResponseRecorder {
	e := newServer(s.cfg, s.session, nil, middleware.NewRateLimiter(s.cfg.Server.RateLimitPerSecond, s.cfg.Server.RateLimitBurst))

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func (s *ServerTestSuite) decodeError(rec *httptest.ResponseRecorder) apierrors.ErrorResponse {
	var response apierrors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	return response
}

func (s *ServerTestSuite) TestHealth() {
	rec := s.serve(http.MethodGet, "/health", "")

	s.Equal(http.StatusOK, rec.Code)
	s.NotEmpty(rec.Header().Get(middleware.TraceIDHeader))
}

func (s *ServerTestSuite) TestMetricsEndpoint() {
	rec := s.serve(http.MethodGet, "/metrics", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "go_goroutines")
}

func (s *ServerTestSuite) TestUnknownRoute() {
	rec := s.serve(http.MethodGet, "/api/v1/nope", "")

	s.Equal(http.StatusNotFound, rec.Code)
	response := s.decodeError(rec)
	s.Equal("SYSTEM_007", response.Error.Code)
	s.Equal(rec.Header().Get(middleware.TraceIDHeader), response.Error.TraceID)
}

func (s *ServerTestSuite) TestValidationErrorsGoThroughErrorHandler() {
	rec := s.serve(http.MethodPost, "/api/v1/categories", `{"name":"   "}`)

	s.Equal(http.StatusBadRequest, rec.Code)
	response := s.decodeError(rec)
	s.Equal("VALIDATION_001", response.Error.Code)
	s.Len(response.Error.Details, 1)
	s.True(strings.HasPrefix(response.Error.Details[0], "name: "))
}

func (s *ServerTestSuite) TestCategoriesRoute() {
	s.session.EXPECT().Categories().Return(models.DefaultCategoryDictionary())

	rec := s.serve(http.MethodGet, "/api/v1/categories", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("no-store", rec.Header().Get("Cache-Control"))
	s.JSONEq(`{"categories":[{"name":"Uncategorized","keywords":[]}],"total":1}`, rec.Body.String())
}

func (s *ServerTestSuite) TestDevRoutesOnlyInDevelopment() {
	s.session.EXPECT().LoadSample(5).Return(&models.IngestResult{Records: 5}, nil)
	rec := s.serve(http.MethodPost, "/api/v1/dev/sample", `{"count":5}`)
	s.Equal(http.StatusOK, rec.Code)

	s.cfg.Server.Environment = "production"
	rec = s.serve(http.MethodPost, "/api/v1/dev/sample", `{"count":5}`)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ServerTestSuite) TestNewLogger() {
	s.NotNil(newLogger(s.cfg))

	s.cfg.Log.Format = "json"
	s.NotNil(newLogger(s.cfg))
}
