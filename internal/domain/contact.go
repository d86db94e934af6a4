package domain

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/davidbz/nepersonaj/internal/observability"
)

// ContactService validates contact form submissions and forwards them to the messenger.
type ContactService struct {
	settings  SettingsStore
	messenger Messenger
	limiter   RateLimiter
	validate  *validator.Validate
	events    EventPublisher
}

// NewContactService creates a new contact service (DI constructor).
// limiter and events may be nil.
func NewContactService(
	settings SettingsStore,
	messenger Messenger,
	limiter RateLimiter,
	validate *validator.Validate,
	events EventPublisher,
) *ContactService {
	return &ContactService{
		settings:  settings,
		messenger: messenger,
		limiter:   limiter,
		validate:  validate,
		events:    events,
	}
}

// Submit delivers msg. clientKey identifies the sender for rate limiting.
func (c *ContactService) Submit(ctx context.Context, msg *ContactMessage, clientKey string) error {
	if msg == nil {
		return errors.New("message cannot be nil")
	}

	logger := observability.FromContext(ctx)

	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Message = strings.TrimSpace(msg.Message)

	if err := c.validate.StructCtx(ctx, msg); err != nil {
		return fmt.Errorf("invalid contact message: %w", err)
	}

	if c.limiter != nil && clientKey != "" {
		allowed, err := c.limiter.Allow(ctx, clientKey)
		if err != nil {
			logger.Warn("rate limiter unavailable, accepting message", observability.Error(err))
		} else if !allowed {
			c.publish(ctx, "rate_limited")
			return ErrRateLimited
		}
	}

	settings, err := c.settings.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	sent, err := c.messenger.Send(ctx, settings.Telegram(), FormatContactMessage(msg))
	if err != nil {
		c.publish(ctx, "error")
		return fmt.Errorf("failed to deliver message: %w", err)
	}
	if !sent {
		c.publish(ctx, "not_sent")
		return ErrMessageNotSent
	}

	c.publish(ctx, "sent")
	logger.Info("contact message delivered")
	return nil
}

// FormatContactMessage renders msg as Telegram HTML.
func FormatContactMessage(msg *ContactMessage) string {
	var b strings.Builder
	b.WriteString("<b>New message from the website</b>\n\n")
	b.WriteString("<b>Name:</b> " + html.EscapeString(msg.Name) + "\n")
	b.WriteString("<b>Email:</b> " + html.EscapeString(msg.Email) + "\n")
	b.WriteString("<b>Message:</b>\n")
	b.WriteString(html.EscapeString(msg.Message))
	return b.String()
}

func (c *ContactService) publish(ctx context.Context, status string) {
	if c.events == nil {
		return
	}
	c.events.Publish(ctx, "contact.message", map[string]interface{}{
		"status": status,
	})
}
