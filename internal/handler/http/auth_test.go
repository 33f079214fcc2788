package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cryptbox/cryptbox/internal/logger"
	"github.com/cryptbox/cryptbox/internal/mock"
	"github.com/cryptbox/cryptbox/internal/service"
	"github.com/cryptbox/cryptbox/internal/store"
	"github.com/cryptbox/cryptbox/models"
)

func newAuthTestHandler(ctrl *gomock.Controller) (*Handler, *mock.MockAuthService) {
	authService := mock.NewMockAuthService(ctrl)
	h := NewHandler(&service.Services{AuthService: authService}, logger.Nop())
	return h, authService
}

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, authService := newAuthTestHandler(ctrl)

	registered := models.User{UserID: 42, Login: "alice"}
	authService.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(registered, nil)
	authService.EXPECT().CreateToken(gomock.Any(), registered).Return(
		models.Token{SignedString: "signed-jwt"}, nil)

	body := `{"login":"alice","auth_digest":"digest","encryption_salt":"c2FsdA=="}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer signed-jwt", rec.Header().Get("Authorization"))
}

func TestRegister_InvalidJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newAuthTestHandler(ctrl)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister_LoginTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, authService := newAuthTestHandler(ctrl)

	authService.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).
		Return(models.User{}, store.ErrLoginAlreadyExists)

	body := `{"login":"alice","auth_digest":"digest","encryption_salt":"c2FsdA=="}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

// ─────────────────────────────────────────────
// salt
// ─────────────────────────────────────────────

func TestSalt_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, authService := newAuthTestHandler(ctrl)

	authService.EXPECT().Salt(gomock.Any(), "alice").Return(
		models.User{Login: "alice", EncryptionSalt: "c2FsdA=="}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/salt?login=alice", nil)
	rec := httptest.NewRecorder()

	h.salt(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"encryption_salt":"c2FsdA=="`)
	assert.NotContains(t, rec.Body.String(), "auth_digest")
}

func TestSalt_UnknownLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, authService := newAuthTestHandler(ctrl)

	authService.EXPECT().Salt(gomock.Any(), "ghost").Return(
		models.User{}, store.ErrNoUserWasFound)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/salt?login=ghost", nil)
	rec := httptest.NewRecorder()

	h.salt(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSalt_EmptyLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, authService := newAuthTestHandler(ctrl)

	authService.EXPECT().Salt(gomock.Any(), "").Return(
		models.User{}, service.ErrInvalidDataProvided)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/salt", nil)
	rec := httptest.NewRecorder()

	h.salt(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, authService := newAuthTestHandler(ctrl)

	found := models.User{UserID: 7, Login: "alice"}
	authService.EXPECT().Login(gomock.Any(), gomock.Any()).Return(found, nil)
	authService.EXPECT().CreateToken(gomock.Any(), found).Return(
		models.Token{
			RegisteredClaims: jwt.RegisteredClaims{Subject: "7"},
			SignedString:     "signed-jwt",
		}, nil)

	body := `{"login":"alice","auth_digest":"digest"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer signed-jwt", rec.Header().Get("Authorization"))
}

func TestLogin_WrongCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, authService := newAuthTestHandler(ctrl)

	authService.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(models.User{}, service.ErrWrongPassword)

	body := `{"login":"alice","auth_digest":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid login/password")
}
