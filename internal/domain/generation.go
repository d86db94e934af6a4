package domain

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/davidbz/nepersonaj/internal/observability"
	"github.com/davidbz/nepersonaj/internal/queue"
	"github.com/davidbz/nepersonaj/internal/textclean"
)

// Progress checkpoints of a text generation call.
const (
	progressStarted    = 0
	progressConfigured = 25
	progressDispatched = 50
	progressReceived   = 75
	progressDone       = 100
)

const generatedImageName = "generated.png"

// GenerationService produces content for admin forms through the configured providers.
type GenerationService struct {
	settings       SettingsStore
	textProviders  TextProviderRegistry
	imageProviders ImageProviderRegistry
	transport      Transport
	queue          *queue.Queue
	imageHost      ImageHost
	events         EventPublisher
}

// NewGenerationService creates a new generation service (DI constructor).
// imageHost and events may be nil.
func NewGenerationService(
	settings SettingsStore,
	textProviders TextProviderRegistry,
	imageProviders ImageProviderRegistry,
	transport Transport,
	q *queue.Queue,
	imageHost ImageHost,
	events EventPublisher,
) *GenerationService {
	return &GenerationService{
		settings:       settings,
		textProviders:  textProviders,
		imageProviders: imageProviders,
		transport:      transport,
		queue:          q,
		imageHost:      imageHost,
		events:         events,
	}
}

// GenerateText generates the value of field for topic. Progress is reported
// through onProgress and ends with exactly one completed or error report.
func (g *GenerationService) GenerateText(
	ctx context.Context,
	topic string,
	field Field,
	onProgress ProgressFunc,
) (string, error) {
	progress := newProgressReporter(field, onProgress)
	progress.step(progressStarted)

	if !field.Valid() {
		return "", progress.fail(fmt.Errorf("%w: %s", ErrUnknownField, field))
	}

	cfg, err := g.loadTextConfig(ctx)
	if err != nil {
		return "", progress.fail(err)
	}

	return g.generateText(ctx, cfg, topic, field, progress)
}

// GenerateAll generates fields one after another with a single settings read.
// The first failure stops the batch.
func (g *GenerationService) GenerateAll(
	ctx context.Context,
	topic string,
	fields []Field,
	onProgress ProgressFunc,
) (map[Field]string, error) {
	if len(fields) == 0 {
		fields = DefaultBatchFields()
	}

	for _, field := range fields {
		if !field.Valid() {
			err := fmt.Errorf("%w: %s", ErrUnknownField, field)
			progress := newProgressReporter(field, onProgress)
			progress.step(progressStarted)
			return nil, progress.fail(err)
		}
	}

	var cfg TextProviderConfig
	results := make(map[Field]string, len(fields))

	for i, field := range fields {
		progress := newProgressReporter(field, onProgress)
		progress.step(progressStarted)

		if i == 0 {
			loaded, err := g.loadTextConfig(ctx)
			if err != nil {
				return nil, progress.fail(err)
			}
			cfg = loaded
		}

		text, err := g.generateText(ctx, cfg, topic, field, progress)
		if err != nil {
			return nil, fmt.Errorf("failed to generate %s: %w", field, err)
		}
		results[field] = text
	}

	return results, nil
}

// GenerateImage generates an illustration for topic and returns its URL.
// Inline data URIs are moved to the image host when one is configured.
func (g *GenerationService) GenerateImage(ctx context.Context, topic string) (string, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return "", ErrEmptyTopic
	}

	settings, err := g.settings.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load settings: %w", err)
	}

	cfg := settings.ImageProvider()
	if cfg.APIKey == "" {
		return "", fmt.Errorf("image generation: %w", ErrMissingAPIKey)
	}

	ctx = observability.WithProvider(ctx, cfg.Provider)
	ctx = observability.WithModel(ctx, cfg.Model)
	logger := observability.FromContext(ctx)

	provider, err := g.imageProviders.Get(ctx, cfg.Provider)
	if err != nil {
		return "", err
	}

	started := time.Now()
	imageURL, err := queue.Submit(ctx, g.queue, func(ctx context.Context) (string, error) {
		return provider.Generate(ctx, cfg, topic)
	})
	g.publish(ctx, "generation.image", cfg.Provider, "image", started, err)
	if err != nil {
		logger.Error("image generation failed", observability.Error(err))
		return "", fmt.Errorf("image generation failed: %w", err)
	}

	if strings.HasPrefix(imageURL, "data:") {
		return g.hostInlineImage(ctx, settings.Storage(), imageURL), nil
	}

	return imageURL, nil
}

// Upload stores an image on the configured image host.
func (g *GenerationService) Upload(ctx context.Context, filename string, data []byte) (string, error) {
	if g.imageHost == nil {
		return "", errors.New("image host is not configured")
	}

	settings, err := g.settings.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load settings: %w", err)
	}

	storage := settings.Storage()
	if storage.APIKey == "" {
		return "", fmt.Errorf("image hosting: %w", ErrMissingAPIKey)
	}

	url, err := g.imageHost.Upload(ctx, storage, filename, data)
	if err != nil {
		return "", fmt.Errorf("upload failed: %w", err)
	}
	return url, nil
}

func (g *GenerationService) loadTextConfig(ctx context.Context) (TextProviderConfig, error) {
	settings, err := g.settings.Get(ctx)
	if err != nil {
		return TextProviderConfig{}, fmt.Errorf("failed to load settings: %w", err)
	}

	cfg := settings.TextProvider()
	if cfg.APIKey == "" {
		return TextProviderConfig{}, fmt.Errorf("text generation: %w", ErrMissingAPIKey)
	}

	return cfg, nil
}

func (g *GenerationService) generateText(
	ctx context.Context,
	cfg TextProviderConfig,
	topic string,
	field Field,
	progress *progressReporter,
) (string, error) {
	progress.step(progressConfigured)

	ctx = observability.WithProvider(ctx, cfg.Provider)
	ctx = observability.WithModel(ctx, cfg.Model)
	logger := observability.FromContext(ctx)

	provider, err := g.textProviders.Get(ctx, cfg.Provider)
	if err != nil {
		return "", progress.fail(err)
	}

	prompt, err := BuildPrompt(field, topic)
	if err != nil {
		return "", progress.fail(err)
	}

	req, err := provider.BuildRequest(cfg, prompt)
	if err != nil {
		return "", progress.fail(err)
	}

	progress.step(progressDispatched)
	logger.Debug("dispatching text generation", observability.String("field", string(field)))

	started := time.Now()
	body, err := queue.Submit(ctx, g.queue, func(ctx context.Context) ([]byte, error) {
		return g.transport.Send(ctx, req)
	})
	if err != nil {
		g.publish(ctx, "generation.text", cfg.Provider, string(field), started, err)
		logger.Error("text generation request failed", observability.Error(err))
		return "", progress.fail(err)
	}

	progress.step(progressReceived)

	text, err := provider.ParseResponse(body)
	g.publish(ctx, "generation.text", cfg.Provider, string(field), started, err)
	if err != nil {
		return "", progress.fail(err)
	}

	text = textclean.Clean(text)
	if field == FieldMetaKeywords {
		text = normalizeKeywords(text)
	}

	progress.complete()
	return text, nil
}

// hostInlineImage uploads a data URI image. On any failure the data URI is kept.
func (g *GenerationService) hostInlineImage(ctx context.Context, storage StorageConfig, dataURI string) string {
	logger := observability.FromContext(ctx)

	if g.imageHost == nil || storage.APIKey == "" {
		return dataURI
	}

	_, encoded, found := strings.Cut(dataURI, ",")
	if !found {
		return dataURI
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		logger.Warn("generated image is not valid base64", observability.Error(err))
		return dataURI
	}

	hosted, err := g.imageHost.Upload(ctx, storage, generatedImageName, data)
	if err != nil {
		logger.Warn("failed to host generated image, returning inline data", observability.Error(err))
		return dataURI
	}

	return hosted
}

func (g *GenerationService) publish(
	ctx context.Context,
	eventType string,
	provider string,
	field string,
	started time.Time,
	err error,
) {
	if g.events == nil {
		return
	}

	status := string(StatusCompleted)
	if err != nil {
		status = string(StatusError)
	}

	g.events.Publish(ctx, eventType, map[string]interface{}{
		"provider":    provider,
		"field":       field,
		"status":      status,
		"duration_ms": time.Since(started).Milliseconds(),
	})
}

// progressReporter emits the GenerationStatus sequence of one call.
type progressReporter struct {
	field      Field
	onProgress ProgressFunc
	done       bool
}

func newProgressReporter(field Field, onProgress ProgressFunc) *progressReporter {
	return &progressReporter{field: field, onProgress: onProgress}
}

func (p *progressReporter) step(progress int) {
	p.emit(GenerationStatus{Field: string(p.field), Progress: progress, Status: StatusGenerating})
}

func (p *progressReporter) complete() {
	p.emit(GenerationStatus{Field: string(p.field), Progress: progressDone, Status: StatusCompleted})
	p.done = true
}

// fail reports err once and returns it for the caller to propagate.
func (p *progressReporter) fail(err error) error {
	if !p.done {
		p.emit(GenerationStatus{
			Field:    string(p.field),
			Progress: progressDone,
			Status:   StatusError,
			Error:    err.Error(),
		})
		p.done = true
	}
	return err
}

func (p *progressReporter) emit(status GenerationStatus) {
	if p.onProgress == nil || p.done {
		return
	}
	p.onProgress(status)
}
