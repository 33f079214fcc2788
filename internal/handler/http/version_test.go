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
)

func newVersionTestHandler(ctrl *gomock.Controller, version string) *Handler {
	appInfoService := mock.NewMockAppInfoService(ctrl)
	appInfoService.EXPECT().GetAppVersion(gomock.Any()).Return(version)

	return NewHandler(&service.Services{AppInfoService: appInfoService}, logger.Nop())
}

func TestGetServerVersion_WritesVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	const want = "1.2.3"
	h := newVersionTestHandler(ctrl, want)

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()

	h.getServerVersion(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, want, rec.Body.String())
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
}

func TestGetServerVersion_EmptyVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newVersionTestHandler(ctrl, "")

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()

	h.getServerVersion(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}
