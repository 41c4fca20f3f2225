package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/piresc/mylink/internal/pkg/cache"
	"github.com/piresc/mylink/internal/pkg/constants"
	"github.com/piresc/mylink/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEskizGW(t *testing.T, handler http.HandlerFunc) (*EskizGW, *cache.MemoryStore) {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store := cache.NewMemoryStore()
	gw := NewEskizGW(store, models.SMSConfig{
		Email:    "ops@mylink.asia",
		Password: "secret",
		BaseURL:  server.URL,
		Timeout:  2,
	})
	return gw, store
}

func TestNewEskizGW_Defaults(t *testing.T) {
	gw := NewEskizGW(cache.NewMemoryStore(), models.SMSConfig{})

	assert.Equal(t, "4546", gw.cfg.From)
	assert.NotNil(t, gw.client)
}

func TestEskizGW_GetToken_Login(t *testing.T) {
	var logins int32
	gw, store := newTestEskizGW(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "ops@mylink.asia", r.PostForm.Get("email"))
		assert.Equal(t, "secret", r.PostForm.Get("password"))

		atomic.AddInt32(&logins, 1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"token_generated","data":{"token":"eyJhbGciOi"},"token_type":"bearer"}`))
	})

	token, ok := gw.GetToken(context.Background())
	require.True(t, ok)
	assert.Equal(t, "eyJhbGciOi", token)

	cached, found, err := store.Get(context.Background(), constants.KeyEskizToken)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "eyJhbGciOi", cached)
	assert.InDelta(t, (29 * 24 * time.Hour).Seconds(), store.TTL(constants.KeyEskizToken).Seconds(), 5)

	// Served from cache the second time
	token, ok = gw.GetToken(context.Background())
	assert.True(t, ok)
	assert.Equal(t, "eyJhbGciOi", token)
	assert.Equal(t, int32(1), atomic.LoadInt32(&logins))
}

func TestEskizGW_GetToken_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "rejected credentials",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"message":"Invalid credentials"}`))
			},
		},
		{
			name: "missing token",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"data":{}}`))
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`<html>`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw, store := newTestEskizGW(t, tt.handler)

			token, ok := gw.GetToken(context.Background())

			assert.False(t, ok)
			assert.Empty(t, token)
			exists, _ := store.Exists(context.Background(), constants.KeyEskizToken)
			assert.False(t, exists)
		})
	}
}

func TestEskizGW_GetToken_NoCredentials(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	gw := NewEskizGW(cache.NewMemoryStore(), models.SMSConfig{BaseURL: server.URL})

	_, ok := gw.GetToken(context.Background())

	assert.False(t, ok)
	assert.False(t, called)
}

func TestEskizGW_GetToken_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	gw := NewEskizGW(cache.NewMemoryStore(), models.SMSConfig{
		Email:    "ops@mylink.asia",
		Password: "secret",
		BaseURL:  url,
	})

	_, ok := gw.GetToken(context.Background())
	assert.False(t, ok)
}

type failingStore struct {
	cache.Store
}

func (failingStore) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("redis down")
}

func TestEskizGW_GetToken_StoreError(t *testing.T) {
	gw := NewEskizGW(failingStore{}, models.SMSConfig{Email: "a", Password: "b", BaseURL: "http://127.0.0.1:1"})

	_, ok := gw.GetToken(context.Background())
	assert.False(t, ok)
}

func TestEskizGW_SendMessage_Success(t *testing.T) {
	gw, store := newTestEskizGW(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/message/sms/send", r.URL.Path)
		assert.Equal(t, "Bearer cached-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "998901234567", r.PostForm.Get("mobile_phone"))
		assert.Equal(t, "hello", r.PostForm.Get("message"))
		assert.Equal(t, "4546", r.PostForm.Get("from"))
		_, present := r.PostForm["callback_url"]
		assert.True(t, present)

		w.Write([]byte(`{"id":"4385062","message":"Waiting for SMS provider","status":"success"}`))
	})
	require.NoError(t, store.Set(context.Background(), constants.KeyEskizToken, "cached-token", time.Hour))

	ok := gw.SendMessage(context.Background(), "+998 90-123-45-67", "hello")

	assert.True(t, ok)
}

func TestEskizGW_SendMessage_Failures(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		body         string
		tokenDropped bool
	}{
		{name: "unauthorized drops token", status: http.StatusUnauthorized, body: `{"message":"Unauthenticated"}`, tokenDropped: true},
		{name: "token error in body drops token", status: http.StatusBadRequest, body: `{"message":"Token has expired"}`, tokenDropped: true},
		{name: "non success status keeps token", status: http.StatusOK, body: `{"status":"waiting"}`, tokenDropped: false},
		{name: "server error keeps token", status: http.StatusInternalServerError, body: `oops`, tokenDropped: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			var sends int32
			gw, store := newTestEskizGW(t, func(w http.ResponseWriter, r *http.Request) {
				atomic.AddInt32(&sends, 1)
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})
			require.NoError(t, store.Set(context.Background(), constants.KeyEskizToken, "cached-token", time.Hour))

			// Act
			ok := gw.SendMessage(context.Background(), "998901234567", "hello")

			// Assert
			assert.False(t, ok)
			assert.Equal(t, int32(1), atomic.LoadInt32(&sends), "no retry")
			exists, _ := store.Exists(context.Background(), constants.KeyEskizToken)
			assert.Equal(t, !tt.tokenDropped, exists)
		})
	}
}

func TestEskizGW_SendMessage_NoToken(t *testing.T) {
	gw := NewEskizGW(cache.NewMemoryStore(), models.SMSConfig{})

	assert.False(t, gw.SendMessage(context.Background(), "998901234567", "hello"))
}

func TestEskizGW_SendMessage_LogsInFirst(t *testing.T) {
	gw, _ := newTestEskizGW(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			w.Write([]byte(`{"data":{"token":"fresh"}}`))
		case "/message/sms/send":
			assert.Equal(t, "Bearer fresh", r.Header.Get("Authorization"))
			w.Write([]byte(`{"status":"success"}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	assert.True(t, gw.SendMessage(context.Background(), "998901234567", "hello"))
}
