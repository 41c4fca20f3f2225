package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/mylink/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

type stubResolver struct {
	users map[string]*models.User
	err   error
}

func (s stubResolver) GetUserByToken(ctx context.Context, key string) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	user, ok := s.users[key]
	if !ok {
		return nil, ErrTokenNotFound
	}
	return user, nil
}

func TestTokenAuthMiddleware(t *testing.T) {
	active := &models.User{ID: uuid.New(), PhoneNumber: "998901234567", IsActive: true}
	inactive := &models.User{ID: uuid.New(), PhoneNumber: "998901234568"}
	resolver := stubResolver{users: map[string]*models.User{
		"activetoken":   active,
		"inactivetoken": inactive,
	}}

	tests := []struct {
		name         string
		header       string
		resolver     TokenResolver
		expectStatus int
	}{
		{name: "missing header", header: "", resolver: resolver, expectStatus: http.StatusUnauthorized},
		{name: "bad scheme", header: "Basic abc", resolver: resolver, expectStatus: http.StatusUnauthorized},
		{name: "too many parts", header: "Token a b", resolver: resolver, expectStatus: http.StatusUnauthorized},
		{name: "unknown token", header: "Token nope", resolver: resolver, expectStatus: http.StatusUnauthorized},
		{name: "inactive user", header: "Token inactivetoken", resolver: resolver, expectStatus: http.StatusUnauthorized},
		{name: "token scheme", header: "Token activetoken", resolver: resolver, expectStatus: http.StatusOK},
		{name: "bearer scheme", header: "Bearer activetoken", resolver: resolver, expectStatus: http.StatusOK},
		{name: "store failure", header: "Token activetoken", resolver: stubResolver{err: errors.New("db down")}, expectStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			e := echo.New()
			var seen *models.User
			e.GET("/auth/me", func(c echo.Context) error {
				seen, _ = CurrentUser(c)
				return c.NoContent(http.StatusOK)
			}, TokenAuthMiddleware(tt.resolver))

			req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()

			// Act
			e.ServeHTTP(rec, req)

			// Assert
			assert.Equal(t, tt.expectStatus, rec.Code)
			if tt.expectStatus == http.StatusOK {
				assert.Equal(t, active, seen)
			} else {
				assert.Nil(t, seen)
			}
		})
	}
}

func TestRequireStaff(t *testing.T) {
	staff := &models.User{ID: uuid.New(), IsActive: true, IsStaff: true}
	regular := &models.User{ID: uuid.New(), IsActive: true}
	resolver := stubResolver{users: map[string]*models.User{"staff": staff, "regular": regular}}

	e := echo.New()
	e.PUT("/admin/settings", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, TokenAuthMiddleware(resolver), RequireStaff())

	for header, want := range map[string]int{
		"Token staff":   http.StatusOK,
		"Token regular": http.StatusForbidden,
	} {
		req := httptest.NewRequest(http.MethodPut, "/admin/settings", nil)
		req.Header.Set(echo.HeaderAuthorization, header)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, want, rec.Code, header)
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	e := echo.New()
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, c.Get("request_id").(string))
	}, RequestIDMiddleware())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderXRequestID, "abc-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(echo.HeaderXRequestID))
	assert.Equal(t, "abc-123", rec.Body.String())

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	_, err := uuid.Parse(rec.Header().Get(echo.HeaderXRequestID))
	assert.NoError(t, err)
}
