package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cryptbox/cryptbox/internal/logger"
	"github.com/cryptbox/cryptbox/internal/mock"
	"github.com/cryptbox/cryptbox/internal/service"
	"github.com/cryptbox/cryptbox/models"
)

// newRoutedHandler builds a Handler with permissive mocks so that requests
// can travel through the whole middleware chain.
func newRoutedHandler(t *testing.T, ctrl *gomock.Controller) *Handler {
	t.Helper()

	authService := mock.NewMockAuthService(ctrl)
	authService.EXPECT().Salt(gomock.Any(), gomock.Any()).Return(models.User{}, nil).AnyTimes()
	authService.EXPECT().ParseToken(gomock.Any(), gomock.Any()).
		Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid).AnyTimes()

	appInfoService := mock.NewMockAppInfoService(ctrl)
	appInfoService.EXPECT().GetAppVersion(gomock.Any()).Return("test-version").AnyTimes()

	return NewHandler(&service.Services{
		AuthService:    authService,
		AppInfoService: appInfoService,
	}, logger.Nop())
}

func TestInit_ReturnsRouter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := newRoutedHandler(t, ctrl).Init()

	require.NotNil(t, router)
}

// routeCase describes a single expected route.
type routeCase struct {
	method string
	path   string
}

// expectedRoutes lists every route that Init() must register. A registered
// route never answers 404 to its own method (authenticated routes answer
// 401 without a token, which still proves registration).
var expectedRoutes = []routeCase{
	// auth
	{http.MethodPost, "/api/auth/register"},
	{http.MethodGet, "/api/auth/salt"},
	{http.MethodPost, "/api/auth/login"},
	// files
	{http.MethodPost, "/api/files"},
	{http.MethodGet, "/api/files"},
	{http.MethodGet, "/api/files/some-id"},
	{http.MethodDelete, "/api/files/some-id"},
	// service info
	{http.MethodGet, "/api/version"},
}

func TestInit_RegistersRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := newRoutedHandler(t, ctrl).Init()

	for _, tc := range expectedRoutes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.NotEqual(t, http.StatusNotFound, rec.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code)
		})
	}
}

func TestInit_AuthenticatedRoutesRejectAnonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := newRoutedHandler(t, ctrl).Init()

	protected := []routeCase{
		{http.MethodPost, "/api/files"},
		{http.MethodGet, "/api/files"},
		{http.MethodGet, "/api/files/some-id"},
		{http.MethodDelete, "/api/files/some-id"},
	}

	for _, tc := range protected {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestInit_UnknownMethodHidesRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := newRoutedHandler(t, ctrl).Init()

	req := httptest.NewRequest(http.MethodPut, "/api/auth/register", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_TraceIDHeaderSet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := newRoutedHandler(t, ctrl).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestInit_TraceIDHeaderPropagated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := newRoutedHandler(t, ctrl).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, "trace-123", rec.Header().Get(traceIDHeader))
}
