package domain

import (
	"context"

	"github.com/google/uuid"
)

// TextProvider is one text generation API variant.
type TextProvider interface {
	// Name returns the provider identifier used in settings.
	Name() string

	// BuildRequest renders the provider specific request envelope.
	BuildRequest(cfg TextProviderConfig, prompt Prompt) (*ProviderRequest, error)

	// ParseResponse extracts the generated text from a successful response body.
	ParseResponse(body []byte) (string, error)
}

// ImageProvider is one image generation API variant.
type ImageProvider interface {
	// Name returns the provider identifier used in settings.
	Name() string

	// Generate produces an image for prompt and returns its URL or data URI.
	Generate(ctx context.Context, cfg ImageProviderConfig, prompt string) (string, error)
}

// TextProviderRegistry resolves text providers by name.
type TextProviderRegistry interface {
	Get(ctx context.Context, name string) (TextProvider, error)
	List(ctx context.Context) ([]string, error)
}

// ImageProviderRegistry resolves image providers by name.
type ImageProviderRegistry interface {
	Get(ctx context.Context, name string) (ImageProvider, error)
	List(ctx context.Context) ([]string, error)
}

// Transport sends provider requests and returns successful response bodies.
type Transport interface {
	Send(ctx context.Context, req *ProviderRequest) ([]byte, error)
}

// ImageHost stores image bytes and returns a public URL.
type ImageHost interface {
	Upload(ctx context.Context, cfg StorageConfig, filename string, data []byte) (string, error)
}

// Messenger delivers contact form messages.
type Messenger interface {
	// Send reports false without an error when delivery is not configured.
	Send(ctx context.Context, cfg TelegramConfig, text string) (bool, error)
}

// RateLimiter throttles actions per key.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// SettingsStore reads and writes the site settings row.
type SettingsStore interface {
	Get(ctx context.Context) (*SiteSettings, error)
	Update(ctx context.Context, settings *SiteSettings) error
}

// PostStore persists blog posts.
type PostStore interface {
	List(ctx context.Context) ([]*BlogPost, error)
	Get(ctx context.Context, id uuid.UUID) (*BlogPost, error)
	Create(ctx context.Context, post *BlogPost) error
	Update(ctx context.Context, post *BlogPost) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProjectStore persists portfolio projects.
type ProjectStore interface {
	List(ctx context.Context, publishedOnly bool) ([]*Project, error)
	Get(ctx context.Context, id uuid.UUID) (*Project, error)
	GetBySlug(ctx context.Context, slug string) (*Project, error)
	Create(ctx context.Context, project *Project) error
	Update(ctx context.Context, project *Project) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// EventPublisher publishes events for observability.
type EventPublisher interface {
	// Publish publishes an event with the given type and data.
	Publish(ctx context.Context, eventType string, data map[string]interface{})
}
