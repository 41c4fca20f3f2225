package gateway

import (
	"time"

	"github.com/piresc/mylink/internal/pkg/cache"
	"github.com/piresc/mylink/internal/pkg/constants"
	"github.com/piresc/mylink/internal/pkg/events"
	httpclient "github.com/piresc/mylink/internal/pkg/http"
	"github.com/piresc/mylink/internal/pkg/models"
)

// EskizGW sends SMS through the Eskiz provider, caching its bearer token in the store
type EskizGW struct {
	client *httpclient.Client
	store  cache.Store
	cfg    models.SMSConfig
}

// NewEskizGW creates the SMS gateway
func NewEskizGW(store cache.Store, cfg models.SMSConfig) *EskizGW {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = constants.SMSDefaultBaseURL
	}
	if cfg.From == "" {
		cfg.From = constants.SMSDefaultSender
	}

	return &EskizGW{
		client: httpclient.NewClient(httpclient.Config{
			BaseURL: baseURL,
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		}),
		store: store,
		cfg:   cfg,
	}
}

// EventGW publishes auth domain events
type EventGW struct {
	publisher events.Publisher
}

// NewEventGW creates the auth event gateway
func NewEventGW(publisher events.Publisher) *EventGW {
	return &EventGW{publisher: publisher}
}
