package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/mylink/internal/pkg/cache"
	"github.com/piresc/mylink/internal/pkg/middleware"
	"github.com/piresc/mylink/internal/pkg/models"
	"github.com/piresc/mylink/internal/pkg/validator"
	authhttp "github.com/piresc/mylink/services/auth/handler/http"
	"github.com/piresc/mylink/services/auth/mocks"
	"github.com/stretchr/testify/assert"
)

func setupRoutes(t *testing.T, cfg *models.Config) (*echo.Echo, *mocks.MockAuthUC) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	authUC := mocks.NewMockAuthUC(ctrl)
	e := echo.New()
	e.Validator = validator.New()

	h := NewHandler(authhttp.NewAuthHandler(authUC), authUC, cache.NewMemoryStore(), cfg)
	h.RegisterRoutes(e)
	return e, authUC
}

func post(e *echo.Echo, path, body, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.RemoteAddr = ip + ":40000"
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRoutes_OTPThrottledPerAddress(t *testing.T) {
	cfg := &models.Config{}
	cfg.RateLimit.OTPPerHour = 2
	e, authUC := setupRoutes(t, cfg)
	authUC.EXPECT().RequestCode(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	body := `{"phone_number": "998901234567"}`
	assert.Equal(t, http.StatusOK, post(e, "/auth/otp", body, "10.0.0.1").Code)
	assert.Equal(t, http.StatusOK, post(e, "/auth/otp", body, "10.0.0.1").Code)

	rec := post(e, "/auth/otp", body, "10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	// Another client is unaffected
	assert.Equal(t, http.StatusOK, post(e, "/auth/otp", body, "10.0.0.2").Code)
}

func TestRoutes_LoginHasSeparateBudget(t *testing.T) {
	cfg := &models.Config{}
	cfg.RateLimit.OTPPerHour = 1
	cfg.RateLimit.LoginPerHour = 1
	e, authUC := setupRoutes(t, cfg)
	authUC.EXPECT().RequestCode(gomock.Any(), gomock.Any()).Return(nil)
	authUC.EXPECT().VerifyCode(gomock.Any(), "998901234567", "12345").
		Return(&models.LoginResponse{Token: "t", PhoneNumber: "998901234567"}, nil)

	assert.Equal(t, http.StatusOK, post(e, "/auth/otp", `{"phone_number": "998901234567"}`, "10.0.0.1").Code)
	assert.Equal(t, http.StatusOK, post(e, "/auth/login", `{"phone_number": "998901234567", "code": "12345"}`, "10.0.0.1").Code)
	assert.Equal(t, http.StatusTooManyRequests, post(e, "/auth/login", `{"phone_number": "998901234567", "code": "12345"}`, "10.0.0.1").Code)
}

func TestRoutes_MeRequiresToken(t *testing.T) {
	e, authUC := setupRoutes(t, &models.Config{})
	user := &models.User{ID: uuid.New(), PhoneNumber: "998901234567", IsActive: true}
	authUC.EXPECT().GetUserByToken(gomock.Any(), "good").Return(user, nil)
	authUC.EXPECT().GetUserByToken(gomock.Any(), "bad").Return(nil, middleware.ErrTokenNotFound)

	get := func(header string) int {
		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		if header != "" {
			req.Header.Set(echo.HeaderAuthorization, header)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusUnauthorized, get(""))
	assert.Equal(t, http.StatusUnauthorized, get("Token bad"))
	assert.Equal(t, http.StatusOK, get("Token good"))
}
