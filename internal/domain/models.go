package domain

import (
	"time"

	"github.com/google/uuid"
)

// Field names a content slot that can be generated.
type Field string

// Generatable fields.
const (
	FieldTitle           Field = "title"
	FieldDescription     Field = "description"
	FieldContent         Field = "content"
	FieldMetaTitle       Field = "meta_title"
	FieldMetaDescription Field = "meta_description"
	FieldMetaKeywords    Field = "meta_keywords"
)

// DefaultBatchFields is the field order used by GenerateAll when none are given.
func DefaultBatchFields() []Field {
	return []Field{FieldTitle, FieldDescription, FieldMetaTitle, FieldMetaDescription, FieldMetaKeywords}
}

// Valid reports whether f is one of the known fields.
func (f Field) Valid() bool {
	_, ok := promptTemplates[f]
	return ok
}

// Status is the state of a single generation call.
type Status string

// Generation states.
const (
	StatusPending    Status = "pending"
	StatusGenerating Status = "generating"
	StatusCompleted  Status = "completed"
	StatusError      Status = "error"
)

// GenerationStatus is a progress report emitted during one generation call.
type GenerationStatus struct {
	Field    string `json:"field"`
	Progress int    `json:"progress"`
	Status   Status `json:"status"`
	Error    string `json:"error,omitempty"`
}

// ProgressFunc receives progress reports. It may be nil.
type ProgressFunc func(GenerationStatus)

// TextProviderConfig selects and parameterizes a text generation provider.
type TextProviderConfig struct {
	Provider    string
	Model       string
	APIKey      string
	EndpointURL string
	Temperature float64
	MaxTokens   int
}

// ImageProviderConfig selects and parameterizes an image generation provider.
type ImageProviderConfig struct {
	Provider    string
	Model       string
	APIKey      string
	EndpointURL string
}

// StorageConfig configures the image hosting service.
type StorageConfig struct {
	Provider    string
	APIKey      string
	EndpointURL string
}

// TelegramConfig holds the contact form delivery target.
type TelegramConfig struct {
	BotToken string
	ChatID   string
}

// Prompt is the provider independent prompt for one field.
type Prompt struct {
	Field  Field
	Topic  string
	System string
	User   string
}

// ProviderRequest is an outbound JSON request built by a provider variant.
type ProviderRequest struct {
	URL     string
	Headers map[string]string
	Body    any
}

// SiteSettings is the single settings row of the site.
type SiteSettings struct {
	ID       uuid.UUID `json:"id"`
	SiteName string    `json:"site_name" validate:"required,max=200"`
	LogoURL  string    `json:"logo_url"  validate:"omitempty,url"`

	TelegramBotToken string `json:"telegram_bot_token"`
	TelegramChatID   string `json:"telegram_chat_id"`

	TelegramURL  string `json:"telegram_url"  validate:"omitempty,url"`
	WhatsappURL  string `json:"whatsapp_url"  validate:"omitempty,url"`
	YoutubeURL   string `json:"youtube_url"   validate:"omitempty,url"`
	VKURL        string `json:"vk_url"        validate:"omitempty,url"`
	TwitterURL   string `json:"twitter_url"   validate:"omitempty,url"`
	InstagramURL string `json:"instagram_url" validate:"omitempty,url"`
	Email        string `json:"email"         validate:"omitempty,email"`
	Phone        string `json:"phone"`

	ShowTelegram  bool `json:"show_telegram"`
	ShowWhatsapp  bool `json:"show_whatsapp"`
	ShowYoutube   bool `json:"show_youtube"`
	ShowVK        bool `json:"show_vk"`
	ShowTwitter   bool `json:"show_twitter"`
	ShowInstagram bool `json:"show_instagram"`
	ShowEmail     bool `json:"show_email"`
	ShowPhone     bool `json:"show_phone"`

	TextAIProvider    string  `json:"text_ai_provider"     validate:"required"`
	TextAIModel       string  `json:"text_ai_model"`
	TextAIAPIKey      string  `json:"text_ai_api_key"`
	TextAIEndpointURL string  `json:"text_ai_endpoint_url" validate:"omitempty,url"`
	TextAITemperature float64 `json:"text_ai_temperature"  validate:"gte=0,lte=2"`
	TextAIMaxTokens   int     `json:"text_ai_max_tokens"   validate:"gte=1"`

	ImageAIProvider    string `json:"image_ai_provider"     validate:"required"`
	ImageAIModel       string `json:"image_ai_model"`
	ImageAIAPIKey      string `json:"image_ai_api_key"`
	ImageAIEndpointURL string `json:"image_ai_endpoint_url" validate:"omitempty,url"`

	StorageProvider    string `json:"storage_provider"`
	StorageAPIKey      string `json:"storage_api_key"`
	StorageEndpointURL string `json:"storage_endpoint_url" validate:"omitempty,url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TextProvider returns the text generation configuration.
func (s *SiteSettings) TextProvider() TextProviderConfig {
	return TextProviderConfig{
		Provider:    s.TextAIProvider,
		Model:       s.TextAIModel,
		APIKey:      s.TextAIAPIKey,
		EndpointURL: s.TextAIEndpointURL,
		Temperature: s.TextAITemperature,
		MaxTokens:   s.TextAIMaxTokens,
	}
}

// ImageProvider returns the image generation configuration.
func (s *SiteSettings) ImageProvider() ImageProviderConfig {
	return ImageProviderConfig{
		Provider:    s.ImageAIProvider,
		Model:       s.ImageAIModel,
		APIKey:      s.ImageAIAPIKey,
		EndpointURL: s.ImageAIEndpointURL,
	}
}

// Storage returns the image hosting configuration.
func (s *SiteSettings) Storage() StorageConfig {
	return StorageConfig{
		Provider:    s.StorageProvider,
		APIKey:      s.StorageAPIKey,
		EndpointURL: s.StorageEndpointURL,
	}
}

// Telegram returns the contact delivery configuration.
func (s *SiteSettings) Telegram() TelegramConfig {
	return TelegramConfig{
		BotToken: s.TelegramBotToken,
		ChatID:   s.TelegramChatID,
	}
}

// PublicSettings is the subset of settings exposed to site visitors.
type PublicSettings struct {
	SiteName string            `json:"site_name"`
	LogoURL  string            `json:"logo_url,omitempty"`
	Email    string            `json:"email,omitempty"`
	Phone    string            `json:"phone,omitempty"`
	Social   map[string]string `json:"social"`
}

// Public strips secrets and hidden contacts.
func (s *SiteSettings) Public() PublicSettings {
	public := PublicSettings{
		SiteName: s.SiteName,
		LogoURL:  s.LogoURL,
		Social:   make(map[string]string),
	}

	links := []struct {
		name string
		url  string
		show bool
	}{
		{"telegram", s.TelegramURL, s.ShowTelegram},
		{"whatsapp", s.WhatsappURL, s.ShowWhatsapp},
		{"youtube", s.YoutubeURL, s.ShowYoutube},
		{"vk", s.VKURL, s.ShowVK},
		{"twitter", s.TwitterURL, s.ShowTwitter},
		{"instagram", s.InstagramURL, s.ShowInstagram},
	}
	for _, link := range links {
		if link.show && link.url != "" {
			public.Social[link.name] = link.url
		}
	}

	if s.ShowEmail {
		public.Email = s.Email
	}
	if s.ShowPhone {
		public.Phone = s.Phone
	}

	return public
}

// Image is an additional picture attached to a post or project.
type Image struct {
	ID        uuid.UUID `json:"id"`
	ImageURL  string    `json:"image_url" validate:"required,url"`
	AltText   string    `json:"alt_text"`
	SortOrder int       `json:"sort_order"`
}

// SEO holds the metadata shared by posts and projects.
type SEO struct {
	MetaTitle       string   `json:"meta_title"       validate:"max=120"`
	MetaDescription string   `json:"meta_description" validate:"max=320"`
	MetaKeywords    []string `json:"meta_keywords"`
	OGImage         string   `json:"og_image"         validate:"omitempty,url"`
	CanonicalURL    string   `json:"canonical_url"    validate:"omitempty,url"`
}

// BlogPost is a blog article.
type BlogPost struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"     validate:"required,max=300"`
	Content  string    `json:"content"   validate:"required"`
	ImageURL string    `json:"image_url" validate:"omitempty,url"`
	SEO
	Images    []Image   `json:"images"    validate:"dive"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProjectStatus is the publication state of a project.
type ProjectStatus string

// Project states.
const (
	ProjectDraft     ProjectStatus = "draft"
	ProjectPublished ProjectStatus = "published"
)

// Technology is a tool or stack item shown on a project.
type Technology struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"     validate:"required,max=100"`
	IconURL   string    `json:"icon_url" validate:"omitempty,url"`
	Color     string    `json:"color"`
	SortOrder int       `json:"sort_order"`
}

// Project is a portfolio entry.
type Project struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"       validate:"required,max=300"`
	Description string    `json:"description" validate:"required"`
	ImageURL    string    `json:"image_url"   validate:"omitempty,url"`
	SEO
	OGDescription string        `json:"og_description"`
	Status        ProjectStatus `json:"status"     validate:"required,oneof=draft published"`
	Slug          string        `json:"slug"       validate:"omitempty,max=200"`
	Featured      bool          `json:"featured"`
	SortOrder     int           `json:"sort_order"`
	Images        []Image       `json:"images"       validate:"dive"`
	Technologies  []Technology  `json:"technologies" validate:"dive"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// ContactMessage is a visitor submission from the contact form.
type ContactMessage struct {
	Name    string `json:"name"    validate:"required,max=200"`
	Email   string `json:"email"   validate:"required,email"`
	Message string `json:"message" validate:"required,max=5000"`
}
