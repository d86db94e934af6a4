package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/davidbz/nepersonaj/internal/domain"
	"github.com/davidbz/nepersonaj/internal/observability"
)

const settingsColumns = `
	id, site_name, logo_url,
	telegram_bot_token, telegram_chat_id,
	telegram_url, whatsapp_url, youtube_url, vk_url, twitter_url, instagram_url, email, phone,
	show_telegram, show_whatsapp, show_youtube, show_vk, show_twitter, show_instagram, show_email, show_phone,
	text_ai_provider, text_ai_model, text_ai_api_key, text_ai_endpoint_url, text_ai_temperature, text_ai_max_tokens,
	image_ai_provider, image_ai_model, image_ai_api_key, image_ai_endpoint_url,
	storage_provider, storage_api_key, storage_endpoint_url,
	created_at, updated_at`

// SettingsStore implements domain.SettingsStore.
type SettingsStore struct {
	db *sql.DB
}

// NewSettingsStore creates a new settings store (DI constructor).
func NewSettingsStore(db *sql.DB) (*SettingsStore, error) {
	if db == nil {
		return nil, errors.New("db cannot be nil")
	}
	return &SettingsStore{db: db}, nil
}

// Get returns the single settings row. It is read on every call.
func (s *SettingsStore) Get(ctx context.Context) (*domain.SiteSettings, error) {
	query := `SELECT ` + settingsColumns + ` FROM site_settings ORDER BY created_at LIMIT 1`

	var st domain.SiteSettings
	err := s.db.QueryRowContext(ctx, query).Scan(
		&st.ID, &st.SiteName, &st.LogoURL,
		&st.TelegramBotToken, &st.TelegramChatID,
		&st.TelegramURL, &st.WhatsappURL, &st.YoutubeURL, &st.VKURL, &st.TwitterURL, &st.InstagramURL,
		&st.Email, &st.Phone,
		&st.ShowTelegram, &st.ShowWhatsapp, &st.ShowYoutube, &st.ShowVK, &st.ShowTwitter, &st.ShowInstagram,
		&st.ShowEmail, &st.ShowPhone,
		&st.TextAIProvider, &st.TextAIModel, &st.TextAIAPIKey, &st.TextAIEndpointURL,
		&st.TextAITemperature, &st.TextAIMaxTokens,
		&st.ImageAIProvider, &st.ImageAIModel, &st.ImageAIAPIKey, &st.ImageAIEndpointURL,
		&st.StorageProvider, &st.StorageAPIKey, &st.StorageEndpointURL,
		&st.CreatedAt, &st.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("site settings: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load site settings: %w", err)
	}

	return &st, nil
}

// Update overwrites the settings row identified by settings.ID.
func (s *SettingsStore) Update(ctx context.Context, st *domain.SiteSettings) error {
	if st == nil {
		return errors.New("settings cannot be nil")
	}

	query := `
		UPDATE site_settings SET
			site_name = $2, logo_url = $3,
			telegram_bot_token = $4, telegram_chat_id = $5,
			telegram_url = $6, whatsapp_url = $7, youtube_url = $8, vk_url = $9,
			twitter_url = $10, instagram_url = $11, email = $12, phone = $13,
			show_telegram = $14, show_whatsapp = $15, show_youtube = $16, show_vk = $17,
			show_twitter = $18, show_instagram = $19, show_email = $20, show_phone = $21,
			text_ai_provider = $22, text_ai_model = $23, text_ai_api_key = $24,
			text_ai_endpoint_url = $25, text_ai_temperature = $26, text_ai_max_tokens = $27,
			image_ai_provider = $28, image_ai_model = $29, image_ai_api_key = $30, image_ai_endpoint_url = $31,
			storage_provider = $32, storage_api_key = $33, storage_endpoint_url = $34,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := s.db.QueryRowContext(ctx, query,
		st.ID, st.SiteName, st.LogoURL,
		st.TelegramBotToken, st.TelegramChatID,
		st.TelegramURL, st.WhatsappURL, st.YoutubeURL, st.VKURL,
		st.TwitterURL, st.InstagramURL, st.Email, st.Phone,
		st.ShowTelegram, st.ShowWhatsapp, st.ShowYoutube, st.ShowVK,
		st.ShowTwitter, st.ShowInstagram, st.ShowEmail, st.ShowPhone,
		st.TextAIProvider, st.TextAIModel, st.TextAIAPIKey,
		st.TextAIEndpointURL, st.TextAITemperature, st.TextAIMaxTokens,
		st.ImageAIProvider, st.ImageAIModel, st.ImageAIAPIKey, st.ImageAIEndpointURL,
		st.StorageProvider, st.StorageAPIKey, st.StorageEndpointURL,
	).Scan(&st.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("site settings %s: %w", st.ID, domain.ErrNotFound)
		}
		return fmt.Errorf("failed to update site settings: %w", err)
	}

	observability.FromContext(ctx).Info("site settings updated")
	return nil
}

var _ domain.SettingsStore = (*SettingsStore)(nil)
