package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"wooders/internal/domain"
)

func sampleOrder() *domain.Order {
	return &domain.Order{
		ID:            1,
		OrderNumber:   "ORD-1756400000000-ABCDEFGHI",
		CustomerName:  "Aline Uwase",
		CustomerEmail: "aline@example.rw",
		CustomerPhone: "+250 788 111 222",
		Items: []domain.OrderItem{
			{ProductID: "prod-chair", Name: "Carved Dining Chair", Quantity: 2, Price: 45000},
		},
		TotalAmount:     90000,
		Status:          domain.OrderPending,
		ShippingAddress: "KG 5 Ave, Kigali",
	}
}

func captureServer(t *testing.T, captured *sendRequest) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/smtp/email", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("api-key"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(captured))
		w.WriteHeader(http.StatusCreated)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestBrevo_NotifyOrderCreated(t *testing.T) {
	var captured sendRequest
	srv := captureServer(t, &captured)

	b := NewBrevo(Config{
		APIKey:     "test-key",
		AdminEmail: "admin@woodersrwanda.rw",
		FromEmail:  "noreply@woodersrwanda.rw",
		FromName:   "Wooders Rwanda",
		BaseURL:    srv.URL,
	})

	err := b.NotifyOrderCreated(context.Background(), sampleOrder())
	require.NoError(t, err)

	assert.Equal(t, "noreply@woodersrwanda.rw", captured.Sender.Email)
	require.Len(t, captured.To, 1)
	assert.Equal(t, "admin@woodersrwanda.rw", captured.To[0].Email)
	assert.Equal(t, "New Order Received - #ORD-1756400000000-ABCDEFGHI", captured.Subject)
	assert.Contains(t, captured.HTMLContent, "Carved Dining Chair")
	assert.Contains(t, captured.HTMLContent, "Aline Uwase")
}

func TestBrevo_NotifyOrderStatusChanged(t *testing.T) {
	var captured sendRequest
	srv := captureServer(t, &captured)

	b := NewBrevo(Config{
		APIKey:    "test-key",
		FromEmail: "noreply@woodersrwanda.rw",
		FromName:  "Wooders Rwanda",
		BaseURL:   srv.URL,
	})

	o := sampleOrder()
	o.Status = domain.OrderShipped

	err := b.NotifyOrderStatusChanged(context.Background(), o)
	require.NoError(t, err)

	require.Len(t, captured.To, 1)
	assert.Equal(t, "aline@example.rw", captured.To[0].Email)
	assert.Equal(t, "Order Status Update - #ORD-1756400000000-ABCDEFGHI", captured.Subject)
	assert.Contains(t, captured.HTMLContent, "ORD-1756400000000-ABCDEFGHI")
}

func TestBrevo_DisabledWithoutAPIKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected when the mailer is disabled")
	}))
	t.Cleanup(srv.Close)

	b := NewBrevo(Config{BaseURL: srv.URL})

	assert.NoError(t, b.NotifyOrderCreated(context.Background(), sampleOrder()))
	assert.NoError(t, b.NotifyOrderStatusChanged(context.Background(), sampleOrder()))
}

func TestBrevo_SkipsAdminNotificationWithoutAddress(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected without an admin address")
	}))
	t.Cleanup(srv.Close)

	b := NewBrevo(Config{APIKey: "test-key", FromEmail: "noreply@woodersrwanda.rw", BaseURL: srv.URL})

	assert.NoError(t, b.NotifyOrderCreated(context.Background(), sampleOrder()))
}

func TestBrevo_UpstreamErrorSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(srv.Close)

	b := NewBrevo(Config{
		APIKey:     "bad-key",
		AdminEmail: "admin@woodersrwanda.rw",
		FromEmail:  "noreply@woodersrwanda.rw",
		BaseURL:    srv.URL,
	})

	assert.Error(t, b.NotifyOrderCreated(context.Background(), sampleOrder()))
}
