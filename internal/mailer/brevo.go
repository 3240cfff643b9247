// Package mailer sends transactional email through the Brevo API. Delivery is
// best-effort: callers dispatch in the background and failures are logged,
// never surfaced to the customer-facing request.
package mailer

import (
	"context"
	"fmt"
	"time"

	"wooders/internal/domain"

	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"
)

const defaultBaseURL = "https://api.brevo.com/v3"

type Config struct {
	APIKey     string
	AdminEmail string
	FromEmail  string
	FromName   string
	// BaseURL overrides the Brevo endpoint, used by tests.
	BaseURL string
}

type Brevo struct {
	http       *resty.Client
	adminEmail string
	from       recipient
	enabled    bool
}

type recipient struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type sendRequest struct {
	Sender      recipient   `json:"sender"`
	To          []recipient `json:"to"`
	Subject     string      `json:"subject"`
	HTMLContent string      `json:"htmlContent"`
}

func NewBrevo(cfg Config) *Brevo {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("api-key", cfg.APIKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(10 * time.Second)

	if cfg.APIKey == "" {
		log.Warn("BREVO_API_KEY not configured; email notifications disabled")
	}

	return &Brevo{
		http:       client,
		adminEmail: cfg.AdminEmail,
		from:       recipient{Email: cfg.FromEmail, Name: cfg.FromName},
		enabled:    cfg.APIKey != "",
	}
}

// NotifyOrderCreated emails the shop administrator about a new order.
func (b *Brevo) NotifyOrderCreated(ctx context.Context, o *domain.Order) error {
	if !b.enabled {
		return nil
	}
	if b.adminEmail == "" {
		log.Warn("BREVO_ADMIN_EMAIL not configured; skipping admin notification")
		return nil
	}

	return b.send(ctx, sendRequest{
		Sender:      b.from,
		To:          []recipient{{Email: b.adminEmail, Name: "Wooders Rwanda Admin"}},
		Subject:     fmt.Sprintf("New Order Received - #%s", o.OrderNumber),
		HTMLContent: orderConfirmationHTML(o),
	})
}

// NotifyOrderStatusChanged emails the customer after a status mutation.
func (b *Brevo) NotifyOrderStatusChanged(ctx context.Context, o *domain.Order) error {
	if !b.enabled {
		return nil
	}

	return b.send(ctx, sendRequest{
		Sender:      b.from,
		To:          []recipient{{Email: o.CustomerEmail, Name: o.CustomerName}},
		Subject:     fmt.Sprintf("Order Status Update - #%s", o.OrderNumber),
		HTMLContent: orderStatusUpdateHTML(o),
	})
}

func (b *Brevo) send(ctx context.Context, req sendRequest) error {
	resp, err := b.http.R().
		SetContext(ctx).
		SetBody(req).
		Post("/smtp/email")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("brevo: status %d: %s", resp.StatusCode(), resp.String())
	}
	return nil
}
