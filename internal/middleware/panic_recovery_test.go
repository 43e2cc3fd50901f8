package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	apierrors "ledger-categorizer/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
)

type PanicRecoverySuite struct {
	suite.Suite
	echo *echo.Echo
}

func TestPanicRecoverySuite(t *testing.T) {
	suite.Run(t, new(PanicRecoverySuite))
}

func (s *PanicRecoverySuite) SetupTest() {
	s.echo = echo.New()
}

func (s *PanicRecoverySuite) newContext(route string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, route, nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetPath(route)
	return c, rec
}

func panicking(value interface{}) echo.HandlerFunc {
	return func(c echo.Context) error {
		panic(value)
	}
}

func (s *PanicRecoverySuite) TestRecoveredPanicReturnsSystemError() {
	c, rec := s.newContext("/api/v1/transactions/upload")
	c.Set(TraceIDContextKey, "upload-trace")

	var err error
	s.NotPanics(func() {
		err = PanicRecovery()(panicking("csv reader exploded"))(c)
	})

	s.NoError(err)
	s.Equal(http.StatusInternalServerError, rec.Code)

	var response apierrors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("SYSTEM_001", response.Error.Code)
	s.Equal("upload-trace", response.Error.TraceID)
	s.NotContains(rec.Body.String(), "csv reader exploded")
}

func (s *PanicRecoverySuite) TestMissingTraceIDReportsUnknown() {
	c, rec := s.newContext("/api/v1/summary")

	s.NoError(PanicRecovery()(panicking("boom"))(c))

	var response apierrors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("unknown", response.Error.TraceID)
}

func (s *PanicRecoverySuite) TestCommittedResponseIsLeftAlone() {
	c, rec := s.newContext("/api/v1/transactions")

	handler := PanicRecovery()(func(c echo.Context) error {
		if err := c.String(http.StatusOK, "partial"); err != nil {
			return err
		}
		panic("after write")
	})

	s.NoError(handler(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("partial", rec.Body.String())
}

func (s *PanicRecoverySuite) TestRecoveredPanicIsCounted() {
	route := "/api/v1/categories/:name/keywords"
	counter := apiErrorsTotal.WithLabelValues("SYSTEM_001", route, "500")
	before := testutil.ToFloat64(counter)

	for i := 0; i < 2; i++ {
		c, _ := s.newContext(route)
		s.NoError(PanicRecovery()(panicking(i))(c))
	}

	s.Equal(before+2, testutil.ToFloat64(counter))
}

func (s *PanicRecoverySuite) TestHandlerErrorPassesThrough() {
	c, rec := s.newContext("/api/v1/categories")
	want := echo.NewHTTPError(http.StatusConflict, "exists")

	err := PanicRecovery()(func(c echo.Context) error { return want })(c)

	s.Equal(want, err)
	s.False(c.Response().Committed)
	s.Equal(0, rec.Body.Len())
}

func (s *PanicRecoverySuite) TestPanicValueKinds() {
	testCases := []struct {
		name  string
		value interface{}
	}{
		{"string", "bad row"},
		{"typed string", apierrors.SystemInternalError},
		{"int", 42},
		{"nil", nil},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			c, rec := s.newContext("/api/v1/transactions/recategorize")

			s.NotPanics(func() {
				_ = PanicRecovery()(panicking(tc.value))(c)
			})
			s.Equal(http.StatusInternalServerError, rec.Code)
		})
	}
}
