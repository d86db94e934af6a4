package domain_test

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/davidbz/nepersonaj/internal/domain"
	"github.com/davidbz/nepersonaj/internal/mocks"
	"github.com/davidbz/nepersonaj/internal/queue"
)

type generationFixture struct {
	settings       *mocks.MockSettingsStore
	textProviders  *mocks.MockTextProviderRegistry
	imageProviders *mocks.MockImageProviderRegistry
	textProvider   *mocks.MockTextProvider
	imageProvider  *mocks.MockImageProvider
	transport      *mocks.MockTransport
	imageHost      *mocks.MockImageHost
	service        *domain.GenerationService
}

func newGenerationFixture(t *testing.T) *generationFixture {
	t.Helper()

	q := queue.New()
	t.Cleanup(q.Close)

	f := &generationFixture{
		settings:       mocks.NewMockSettingsStore(t),
		textProviders:  mocks.NewMockTextProviderRegistry(t),
		imageProviders: mocks.NewMockImageProviderRegistry(t),
		textProvider:   mocks.NewMockTextProvider(t),
		imageProvider:  mocks.NewMockImageProvider(t),
		transport:      mocks.NewMockTransport(t),
		imageHost:      mocks.NewMockImageHost(t),
	}
	f.service = domain.NewGenerationService(
		f.settings, f.textProviders, f.imageProviders, f.transport, q, f.imageHost, nil)

	return f
}

func testSettings() *domain.SiteSettings {
	return &domain.SiteSettings{
		SiteName:          "Studio",
		TextAIProvider:    "openai",
		TextAIModel:       "gpt-4o-mini",
		TextAIAPIKey:      "sk-text",
		TextAITemperature: 0.7,
		TextAIMaxTokens:   500,
		ImageAIProvider:   "stability",
		ImageAIModel:      "sdxl",
		ImageAIAPIKey:     "sk-image",
		StorageProvider:   "imgbb",
		StorageAPIKey:     "imgbb-key",
	}
}

func collect(reports *[]domain.GenerationStatus) domain.ProgressFunc {
	return func(s domain.GenerationStatus) {
		*reports = append(*reports, s)
	}
}

func TestGenerateText_Success(t *testing.T) {
	f := newGenerationFixture(t)
	settings := testSettings()
	req := &domain.ProviderRequest{URL: "https://api.openai.com/v1/chat/completions"}

	f.settings.EXPECT().Get(mock.Anything).Return(settings, nil)
	f.textProviders.EXPECT().Get(mock.Anything, "openai").Return(f.textProvider, nil)
	f.textProvider.EXPECT().
		BuildRequest(settings.TextProvider(), mock.MatchedBy(func(p domain.Prompt) bool {
			return p.Field == domain.FieldTitle && p.Topic == "go concurrency"
		})).
		Return(req, nil)
	f.transport.EXPECT().Send(mock.Anything, req).Return([]byte(`{}`), nil)
	f.textProvider.EXPECT().ParseResponse([]byte(`{}`)).Return("“**Go Concurrency**”", nil)

	var reports []domain.GenerationStatus
	text, err := f.service.GenerateText(context.Background(), "go concurrency", domain.FieldTitle, collect(&reports))

	require.NoError(t, err)
	require.Equal(t, "Go Concurrency", text)

	progress := make([]int, 0, len(reports))
	for _, r := range reports {
		progress = append(progress, r.Progress)
		require.Equal(t, "title", r.Field)
	}
	require.Equal(t, []int{0, 25, 50, 75, 100}, progress)
	require.Equal(t, domain.StatusCompleted, reports[len(reports)-1].Status)
	for _, r := range reports[:len(reports)-1] {
		require.Equal(t, domain.StatusGenerating, r.Status)
	}
}

func TestGenerateText_MetaKeywordsNormalized(t *testing.T) {
	f := newGenerationFixture(t)
	settings := testSettings()
	req := &domain.ProviderRequest{}

	f.settings.EXPECT().Get(mock.Anything).Return(settings, nil)
	f.textProviders.EXPECT().Get(mock.Anything, "openai").Return(f.textProvider, nil)
	f.textProvider.EXPECT().BuildRequest(mock.Anything, mock.Anything).Return(req, nil)
	f.transport.EXPECT().Send(mock.Anything, req).Return([]byte(`{}`), nil)
	f.textProvider.EXPECT().ParseResponse(mock.Anything).Return("1. golang\n2. 3D printing\n- web;api", nil)

	text, err := f.service.GenerateText(context.Background(), "go", domain.FieldMetaKeywords, nil)

	require.NoError(t, err)
	require.Equal(t, "golang, 3D printing, web, api", text)
}

func TestGenerateText_Failures(t *testing.T) {
	t.Run("provider API error reports once", func(t *testing.T) {
		f := newGenerationFixture(t)
		req := &domain.ProviderRequest{}
		apiErr := &domain.APIError{Status: 401, Message: "Invalid API key"}

		f.settings.EXPECT().Get(mock.Anything).Return(testSettings(), nil)
		f.textProviders.EXPECT().Get(mock.Anything, "openai").Return(f.textProvider, nil)
		f.textProvider.EXPECT().BuildRequest(mock.Anything, mock.Anything).Return(req, nil)
		f.transport.EXPECT().Send(mock.Anything, req).Return(nil, apiErr)

		var reports []domain.GenerationStatus
		_, err := f.service.GenerateText(context.Background(), "go", domain.FieldDescription, collect(&reports))

		require.ErrorIs(t, err, domain.ErrProviderRequest)
		require.Equal(t, "Invalid API key", err.Error())

		var errorReports []domain.GenerationStatus
		for _, r := range reports {
			if r.Status == domain.StatusError {
				errorReports = append(errorReports, r)
			}
		}
		require.Len(t, errorReports, 1)
		require.Equal(t, 100, errorReports[0].Progress)
		require.Equal(t, "Invalid API key", errorReports[0].Error)
		require.Equal(t, errorReports[0], reports[len(reports)-1])
	})

	t.Run("missing API key", func(t *testing.T) {
		f := newGenerationFixture(t)
		settings := testSettings()
		settings.TextAIAPIKey = ""

		f.settings.EXPECT().Get(mock.Anything).Return(settings, nil)

		var reports []domain.GenerationStatus
		_, err := f.service.GenerateText(context.Background(), "go", domain.FieldTitle, collect(&reports))

		require.ErrorIs(t, err, domain.ErrMissingAPIKey)
		require.Len(t, reports, 2)
		require.Equal(t, domain.StatusError, reports[1].Status)
	})

	t.Run("unknown field", func(t *testing.T) {
		f := newGenerationFixture(t)

		_, err := f.service.GenerateText(context.Background(), "go", domain.Field("summary"), nil)

		require.ErrorIs(t, err, domain.ErrUnknownField)
	})

	t.Run("unsupported provider", func(t *testing.T) {
		f := newGenerationFixture(t)
		settings := testSettings()
		settings.TextAIProvider = "mistral"

		f.settings.EXPECT().Get(mock.Anything).Return(settings, nil)
		f.textProviders.EXPECT().Get(mock.Anything, "mistral").
			Return(nil, domain.ErrUnsupportedProvider)

		_, err := f.service.GenerateText(context.Background(), "go", domain.FieldTitle, nil)

		require.ErrorIs(t, err, domain.ErrUnsupportedProvider)
	})

	t.Run("unrecognized response", func(t *testing.T) {
		f := newGenerationFixture(t)
		req := &domain.ProviderRequest{}

		f.settings.EXPECT().Get(mock.Anything).Return(testSettings(), nil)
		f.textProviders.EXPECT().Get(mock.Anything, "openai").Return(f.textProvider, nil)
		f.textProvider.EXPECT().BuildRequest(mock.Anything, mock.Anything).Return(req, nil)
		f.transport.EXPECT().Send(mock.Anything, req).Return([]byte(`{"foo":"bar"}`), nil)
		f.textProvider.EXPECT().ParseResponse(mock.Anything).Return("", domain.ErrUnsupportedFormat)

		var reports []domain.GenerationStatus
		_, err := f.service.GenerateText(context.Background(), "go", domain.FieldTitle, collect(&reports))

		require.ErrorIs(t, err, domain.ErrUnsupportedFormat)
		last := reports[len(reports)-1]
		require.Equal(t, domain.StatusError, last.Status)
		require.Equal(t, 100, last.Progress)
	})
}

func TestGenerateAll(t *testing.T) {
	t.Run("loads settings once", func(t *testing.T) {
		f := newGenerationFixture(t)
		req := &domain.ProviderRequest{}

		f.settings.EXPECT().Get(mock.Anything).Return(testSettings(), nil).Once()
		f.textProviders.EXPECT().Get(mock.Anything, "openai").Return(f.textProvider, nil)
		f.textProvider.EXPECT().BuildRequest(mock.Anything, mock.Anything).Return(req, nil)
		f.transport.EXPECT().Send(mock.Anything, req).Return([]byte(`{}`), nil)
		f.textProvider.EXPECT().ParseResponse(mock.Anything).Return("generated", nil)

		var reports []domain.GenerationStatus
		fields := []domain.Field{domain.FieldTitle, domain.FieldMetaTitle}
		results, err := f.service.GenerateAll(context.Background(), "go", fields, collect(&reports))

		require.NoError(t, err)
		require.Equal(t, map[domain.Field]string{
			domain.FieldTitle:     "generated",
			domain.FieldMetaTitle: "generated",
		}, results)
		require.Len(t, reports, 10)
		require.Equal(t, "meta_title", reports[9].Field)
		require.Equal(t, domain.StatusCompleted, reports[9].Status)
	})

	t.Run("stops at first failure", func(t *testing.T) {
		f := newGenerationFixture(t)
		req := &domain.ProviderRequest{}

		f.settings.EXPECT().Get(mock.Anything).Return(testSettings(), nil).Once()
		f.textProviders.EXPECT().Get(mock.Anything, "openai").Return(f.textProvider, nil).Once()
		f.textProvider.EXPECT().BuildRequest(mock.Anything, mock.Anything).Return(req, nil).Once()
		f.transport.EXPECT().Send(mock.Anything, req).Return(nil, &domain.APIError{Status: 500}).Once()

		_, err := f.service.GenerateAll(context.Background(), "go", nil, nil)

		require.ErrorIs(t, err, domain.ErrProviderRequest)
		require.Contains(t, err.Error(), "API error (500)")
	})

	t.Run("rejects unknown field before any call", func(t *testing.T) {
		f := newGenerationFixture(t)

		_, err := f.service.GenerateAll(context.Background(), "go",
			[]domain.Field{domain.FieldTitle, "bogus"}, nil)

		require.ErrorIs(t, err, domain.ErrUnknownField)
	})
}

func TestGenerateImage(t *testing.T) {
	t.Run("returns provider URL", func(t *testing.T) {
		f := newGenerationFixture(t)
		settings := testSettings()

		f.settings.EXPECT().Get(mock.Anything).Return(settings, nil)
		f.imageProviders.EXPECT().Get(mock.Anything, "stability").Return(f.imageProvider, nil)
		f.imageProvider.EXPECT().Generate(mock.Anything, settings.ImageProvider(), "mountains").
			Return("https://cdn.example.com/a.png", nil)

		url, err := f.service.GenerateImage(context.Background(), "mountains")

		require.NoError(t, err)
		require.Equal(t, "https://cdn.example.com/a.png", url)
	})

	t.Run("hosts inline images", func(t *testing.T) {
		f := newGenerationFixture(t)
		settings := testSettings()
		raw := []byte("png-bytes")
		dataURI := "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw)

		f.settings.EXPECT().Get(mock.Anything).Return(settings, nil)
		f.imageProviders.EXPECT().Get(mock.Anything, "stability").Return(f.imageProvider, nil)
		f.imageProvider.EXPECT().Generate(mock.Anything, mock.Anything, "mountains").Return(dataURI, nil)
		f.imageHost.EXPECT().Upload(mock.Anything, settings.Storage(), "generated.png", raw).
			Return("https://i.ibb.co/x/generated.png", nil)

		url, err := f.service.GenerateImage(context.Background(), "mountains")

		require.NoError(t, err)
		require.Equal(t, "https://i.ibb.co/x/generated.png", url)
	})

	t.Run("keeps inline image when hosting fails", func(t *testing.T) {
		f := newGenerationFixture(t)
		dataURI := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("x"))

		f.settings.EXPECT().Get(mock.Anything).Return(testSettings(), nil)
		f.imageProviders.EXPECT().Get(mock.Anything, "stability").Return(f.imageProvider, nil)
		f.imageProvider.EXPECT().Generate(mock.Anything, mock.Anything, mock.Anything).Return(dataURI, nil)
		f.imageHost.EXPECT().Upload(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return("", errors.New("upstream down"))

		url, err := f.service.GenerateImage(context.Background(), "mountains")

		require.NoError(t, err)
		require.Equal(t, dataURI, url)
	})

	t.Run("missing image key", func(t *testing.T) {
		f := newGenerationFixture(t)
		settings := testSettings()
		settings.ImageAIAPIKey = ""

		f.settings.EXPECT().Get(mock.Anything).Return(settings, nil)

		_, err := f.service.GenerateImage(context.Background(), "mountains")

		require.ErrorIs(t, err, domain.ErrMissingAPIKey)
	})

	t.Run("empty topic", func(t *testing.T) {
		f := newGenerationFixture(t)

		_, err := f.service.GenerateImage(context.Background(), "  ")

		require.ErrorIs(t, err, domain.ErrEmptyTopic)
	})
}

func TestUpload(t *testing.T) {
	f := newGenerationFixture(t)
	settings := testSettings()

	f.settings.EXPECT().Get(mock.Anything).Return(settings, nil)
	f.imageHost.EXPECT().Upload(mock.Anything, settings.Storage(), "cover.jpg", []byte("jpeg")).
		Return("https://i.ibb.co/y/cover.jpg", nil)

	url, err := f.service.Upload(context.Background(), "cover.jpg", []byte("jpeg"))

	require.NoError(t, err)
	require.Equal(t, "https://i.ibb.co/y/cover.jpg", url)
}
