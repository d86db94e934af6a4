package httpserver_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/davidbz/nepersonaj/internal/config"
	"github.com/davidbz/nepersonaj/internal/domain"
	"github.com/davidbz/nepersonaj/internal/httpserver"
	"github.com/davidbz/nepersonaj/internal/httpserver/middleware"
	"github.com/davidbz/nepersonaj/internal/mocks"
	"github.com/davidbz/nepersonaj/internal/provider/registry"
	"github.com/davidbz/nepersonaj/internal/provider/text"
	"github.com/davidbz/nepersonaj/internal/queue"
)

const testSecret = "test-secret-with-enough-entropy-0123456789"

type serverFixture struct {
	settings  *mocks.MockSettingsStore
	posts     *mocks.MockPostStore
	projects  *mocks.MockProjectStore
	transport *mocks.MockTransport
	imageHost *mocks.MockImageHost
	messenger *mocks.MockMessenger
	limiter   *mocks.MockRateLimiter
	images    *mocks.MockImageProviderRegistry
	router    http.Handler
}

func newServerFixture(t *testing.T) *serverFixture {
	t.Helper()
	return newServerFixtureWithConfig(t, &config.ServerConfig{MaxUploadMB: 1})
}

func newServerFixtureWithConfig(t *testing.T, serverCfg *config.ServerConfig) *serverFixture {
	t.Helper()

	q := queue.New()
	t.Cleanup(q.Close)

	f := &serverFixture{
		settings:  mocks.NewMockSettingsStore(t),
		posts:     mocks.NewMockPostStore(t),
		projects:  mocks.NewMockProjectStore(t),
		transport: mocks.NewMockTransport(t),
		imageHost: mocks.NewMockImageHost(t),
		messenger: mocks.NewMockMessenger(t),
		limiter:   mocks.NewMockRateLimiter(t),
		images:    mocks.NewMockImageProviderRegistry(t),
	}

	textProviders := registry.NewRegistry[domain.TextProvider]()
	require.NoError(t, textProviders.Register(context.Background(), text.NewOpenAI()))

	validate := validator.New(validator.WithRequiredStructEnabled())
	generation := domain.NewGenerationService(
		f.settings, textProviders, f.images, f.transport, q, f.imageHost, nil)
	contact := domain.NewContactService(f.settings, f.messenger, f.limiter, validate, nil)

	handler := httpserver.NewHandler(
		f.settings, f.posts, f.projects, generation, contact, validate,
		serverCfg,
	)
	auth := middleware.NewAuth(&config.AuthConfig{JWTSecret: testSecret, RequiredRole: "authenticated"})
	f.router = httpserver.NewRouter(handler, auth, middleware.BuildMiddlewareChain(nil, serverCfg, nil), nil)

	return f
}

func testSettings() *domain.SiteSettings {
	return &domain.SiteSettings{
		ID:                uuid.MustParse("5f0c9a7e-1111-4c2b-9a55-2f1e0d3c4b5a"),
		SiteName:          "Studio",
		TelegramBotToken:  "bot-secret",
		TelegramChatID:    "42",
		TelegramURL:       "https://t.me/studio",
		ShowTelegram:      true,
		YoutubeURL:        "https://youtube.com/@studio",
		Email:             "hello@example.com",
		TextAIProvider:    "openai",
		TextAIModel:       "gpt-4o-mini",
		TextAIAPIKey:      "sk-text",
		TextAITemperature: 0.7,
		TextAIMaxTokens:   500,
		ImageAIProvider:   "openai",
		StorageProvider:   "imgbb",
		StorageAPIKey:     "imgbb-key",
	}
}

func adminToken(t *testing.T, role string, expiresIn time.Duration) string {
	t.Helper()

	claims := middleware.AdminClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func (f *serverFixture) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func (f *serverFixture) admin(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	return f.do(t, method, path, body, adminToken(t, "authenticated", time.Hour))
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body.Error
}

func TestHandleHealth(t *testing.T) {
	f := newServerFixture(t)

	w := f.do(t, http.MethodGet, "/health", nil, "")

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
	require.NotEmpty(t, w.Header().Get("X-Request-Id"))
}

func TestHandlePublicSettings_HidesSecrets(t *testing.T) {
	f := newServerFixture(t)
	f.settings.EXPECT().Get(mock.Anything).Return(testSettings(), nil)

	w := f.do(t, http.MethodGet, "/api/settings", nil, "")

	require.Equal(t, http.StatusOK, w.Code)
	require.NotContains(t, w.Body.String(), "bot-secret")
	require.NotContains(t, w.Body.String(), "sk-text")
	require.NotContains(t, w.Body.String(), "youtube")

	var public domain.PublicSettings
	require.NoError(t, json.NewDecoder(w.Body).Decode(&public))
	require.Equal(t, "Studio", public.SiteName)
	require.Equal(t, map[string]string{"telegram": "https://t.me/studio"}, public.Social)
	require.Empty(t, public.Email)
}

func TestAdminAuthentication(t *testing.T) {
	tests := []struct {
		name       string
		token      func(t *testing.T) string
		wantStatus int
	}{
		{
			name:       "missing token",
			token:      func(*testing.T) string { return "" },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "garbage token",
			token:      func(*testing.T) string { return "not-a-jwt" },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "expired token",
			token:      func(t *testing.T) string { return adminToken(t, "authenticated", -time.Hour) },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong role",
			token:      func(t *testing.T) string { return adminToken(t, "anon", time.Hour) },
			wantStatus: http.StatusForbidden,
		},
		{
			name: "wrong signing key",
			token: func(t *testing.T) string {
				claims := middleware.AdminClaims{
					Role: "authenticated",
					RegisteredClaims: jwt.RegisteredClaims{
						ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
					},
				}
				token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other"))
				require.NoError(t, err)
				return token
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newServerFixture(t)

			w := f.do(t, http.MethodGet, "/api/admin/settings", nil, tt.token(t))

			require.Equal(t, tt.wantStatus, w.Code)
			require.NotEmpty(t, decodeError(t, w))
		})
	}
}

func TestHandleGetSettings_Admin(t *testing.T) {
	f := newServerFixture(t)
	f.settings.EXPECT().Get(mock.Anything).Return(testSettings(), nil)

	w := f.admin(t, http.MethodGet, "/api/admin/settings", nil)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "bot-secret")
}

func TestHandleUpdateSettings_MergesBody(t *testing.T) {
	f := newServerFixture(t)
	current := testSettings()

	f.settings.EXPECT().Get(mock.Anything).Return(current, nil)
	f.settings.EXPECT().
		Update(mock.Anything, mock.MatchedBy(func(s *domain.SiteSettings) bool {
			return s.ID == testSettings().ID && s.SiteName == "New Studio" && s.TextAIAPIKey == "sk-text"
		})).
		Return(nil)

	w := f.admin(t, http.MethodPut, "/api/admin/settings", map[string]any{
		"id":        uuid.New().String(),
		"site_name": "New Studio",
	})

	require.Equal(t, http.StatusOK, w.Code)
}

func TestHandleUpdateSettings_Invalid(t *testing.T) {
	f := newServerFixture(t)
	f.settings.EXPECT().Get(mock.Anything).Return(testSettings(), nil)

	w := f.admin(t, http.MethodPut, "/api/admin/settings", map[string]any{
		"text_ai_temperature": 5,
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleGetPost(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		f := newServerFixture(t)

		w := f.do(t, http.MethodGet, "/api/posts/not-a-uuid", nil, "")

		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		f := newServerFixture(t)
		id := uuid.New()
		f.posts.EXPECT().Get(mock.Anything, id).Return(nil, fmt.Errorf("post %s: %w", id, domain.ErrNotFound))

		w := f.do(t, http.MethodGet, "/api/posts/"+id.String(), nil, "")

		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("found", func(t *testing.T) {
		f := newServerFixture(t)
		id := uuid.New()
		f.posts.EXPECT().Get(mock.Anything, id).Return(&domain.BlogPost{ID: id, Title: "Hello"}, nil)

		w := f.do(t, http.MethodGet, "/api/posts/"+id.String(), nil, "")

		require.Equal(t, http.StatusOK, w.Code)
		var post domain.BlogPost
		require.NoError(t, json.NewDecoder(w.Body).Decode(&post))
		require.Equal(t, "Hello", post.Title)
	})
}

func TestHandleCreatePost(t *testing.T) {
	t.Run("rejects invalid post", func(t *testing.T) {
		f := newServerFixture(t)

		w := f.admin(t, http.MethodPost, "/api/admin/posts", map[string]any{
			"title":     "",
			"content":   "body",
			"image_url": "not a url",
		})

		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("creates post", func(t *testing.T) {
		f := newServerFixture(t)
		id := uuid.New()

		f.posts.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(p *domain.BlogPost) bool {
				return p.Title == "Hello" && len(p.MetaKeywords) == 2
			})).
			Run(func(_ context.Context, p *domain.BlogPost) { p.ID = id }).
			Return(nil)

		w := f.admin(t, http.MethodPost, "/api/admin/posts", map[string]any{
			"title":         "Hello",
			"content":       "World",
			"meta_keywords": []string{"go", "web"},
		})

		require.Equal(t, http.StatusCreated, w.Code)
		var post domain.BlogPost
		require.NoError(t, json.NewDecoder(w.Body).Decode(&post))
		require.Equal(t, id, post.ID)
	})
}

func TestHandleDeletePost(t *testing.T) {
	f := newServerFixture(t)
	id := uuid.New()
	f.posts.EXPECT().Delete(mock.Anything, id).Return(nil)

	w := f.admin(t, http.MethodDelete, "/api/admin/posts/"+id.String(), nil)

	require.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandleProjects(t *testing.T) {
	t.Run("public list only shows published", func(t *testing.T) {
		f := newServerFixture(t)
		f.projects.EXPECT().List(mock.Anything, true).Return([]*domain.Project{}, nil)

		w := f.do(t, http.MethodGet, "/api/projects", nil, "")

		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("admin list includes drafts", func(t *testing.T) {
		f := newServerFixture(t)
		f.projects.EXPECT().List(mock.Anything, false).Return([]*domain.Project{}, nil)

		w := f.admin(t, http.MethodGet, "/api/admin/projects", nil)

		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("draft slug is hidden", func(t *testing.T) {
		f := newServerFixture(t)
		f.projects.EXPECT().GetBySlug(mock.Anything, "secret").
			Return(&domain.Project{Slug: "secret", Status: domain.ProjectDraft}, nil)

		w := f.do(t, http.MethodGet, "/api/projects/secret", nil, "")

		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("published slug", func(t *testing.T) {
		f := newServerFixture(t)
		f.projects.EXPECT().GetBySlug(mock.Anything, "shop").
			Return(&domain.Project{Slug: "shop", Title: "Shop", Status: domain.ProjectPublished}, nil)

		w := f.do(t, http.MethodGet, "/api/projects/shop", nil, "")

		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("create defaults to draft", func(t *testing.T) {
		f := newServerFixture(t)
		f.projects.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(p *domain.Project) bool {
				return p.Status == domain.ProjectDraft && len(p.Technologies) == 1
			})).
			Return(nil)

		w := f.admin(t, http.MethodPost, "/api/admin/projects", map[string]any{
			"title":        "Shop",
			"description":  "An online shop",
			"technologies": []map[string]any{{"name": "Go"}},
		})

		require.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		f := newServerFixture(t)

		w := f.admin(t, http.MethodPut, "/api/admin/projects/"+uuid.New().String(), map[string]any{
			"title":       "Shop",
			"description": "An online shop",
			"status":      "archived",
		})

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleContact(t *testing.T) {
	message := map[string]string{
		"name":    "Ann",
		"email":   "ann@example.com",
		"message": "Hi there",
	}

	t.Run("delivers message", func(t *testing.T) {
		f := newServerFixture(t)
		f.limiter.EXPECT().Allow(mock.Anything, "192.0.2.1").Return(true, nil)
		f.settings.EXPECT().Get(mock.Anything).Return(testSettings(), nil)
		f.messenger.EXPECT().
			Send(mock.Anything, domain.TelegramConfig{BotToken: "bot-secret", ChatID: "42"}, mock.Anything).
			Return(true, nil)

		w := f.do(t, http.MethodPost, "/api/contact", message, "")

		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `{"status":"sent"}`, w.Body.String())
	})

	t.Run("rate limited", func(t *testing.T) {
		f := newServerFixture(t)
		f.limiter.EXPECT().Allow(mock.Anything, "192.0.2.1").Return(false, nil)

		w := f.do(t, http.MethodPost, "/api/contact", message, "")

		require.Equal(t, http.StatusTooManyRequests, w.Code)
	})

	t.Run("ignores forwarded headers from direct clients", func(t *testing.T) {
		f := newServerFixture(t)

		var keys []string
		f.limiter.EXPECT().Allow(mock.Anything, mock.Anything).
			Run(func(_ context.Context, key string) { keys = append(keys, key) }).
			Return(false, nil).Times(3)

		for _, spoofed := range []string{"1.1.1.1", "2.2.2.2", "3.3.3.3"} {
			req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader([]byte(mustJSON(message))))
			req.RemoteAddr = "203.0.113.7:4711"
			req.Header.Set("X-Forwarded-For", spoofed)
			req.Header.Set("X-Real-IP", spoofed)
			w := httptest.NewRecorder()
			f.router.ServeHTTP(w, req)

			require.Equal(t, http.StatusTooManyRequests, w.Code)
		}

		require.Equal(t, []string{"203.0.113.7", "203.0.113.7", "203.0.113.7"}, keys)
	})

	t.Run("uses forwarded address behind a trusted proxy", func(t *testing.T) {
		f := newServerFixtureWithConfig(t, &config.ServerConfig{MaxUploadMB: 1, TrustProxy: true})
		f.limiter.EXPECT().Allow(mock.Anything, "198.51.100.20").Return(false, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader([]byte(mustJSON(message))))
		req.RemoteAddr = "10.0.0.2:4711"
		req.Header.Set("X-Forwarded-For", "198.51.100.20")
		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)

		require.Equal(t, http.StatusTooManyRequests, w.Code)
	})

	t.Run("invalid email", func(t *testing.T) {
		f := newServerFixture(t)

		w := f.do(t, http.MethodPost, "/api/contact", map[string]string{
			"name":    "Ann",
			"email":   "nope",
			"message": "Hi",
		}, "")

		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("messenger not configured", func(t *testing.T) {
		f := newServerFixture(t)
		f.limiter.EXPECT().Allow(mock.Anything, mock.Anything).Return(true, nil)
		f.settings.EXPECT().Get(mock.Anything).Return(testSettings(), nil)
		f.messenger.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything).Return(false, nil)

		w := f.do(t, http.MethodPost, "/api/contact", message, "")

		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		f := newServerFixture(t)

		req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader("{"))
		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func chatResponse(content string) []byte {
	return []byte(`{"choices":[{"message":{"role":"assistant","content":` + mustJSON(content) + `}}]}`)
}

func mustJSON(v any) string {
	data, _ := json.Marshal(v)
	return string(data)
}

func TestHandleGenerateText(t *testing.T) {
	t.Run("returns cleaned text", func(t *testing.T) {
		f := newServerFixture(t)
		f.settings.EXPECT().Get(mock.Anything).Return(testSettings(), nil)
		f.transport.EXPECT().
			Send(mock.Anything, mock.MatchedBy(func(req *domain.ProviderRequest) bool {
				return req.URL == text.OpenAIEndpoint && req.Headers["Authorization"] == "Bearer sk-text"
			})).
			Return(chatResponse(`"**Go Concurrency Patterns**"`), nil)

		w := f.admin(t, http.MethodPost, "/api/admin/generate/text", map[string]any{
			"topic": "go concurrency",
			"field": "title",
		})

		require.Equal(t, http.StatusOK, w.Code)
		var resp httpserver.GenerateTextResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		require.Equal(t, domain.FieldTitle, resp.Field)
		require.Equal(t, "Go Concurrency Patterns", resp.Text)
	})

	t.Run("status mapping", func(t *testing.T) {
		tests := []struct {
			name       string
			settings   func() *domain.SiteSettings
			sendErr    error
			field      string
			wantStatus int
		}{
			{
				name: "missing API key",
				settings: func() *domain.SiteSettings {
					s := testSettings()
					s.TextAIAPIKey = ""
					return s
				},
				field:      "title",
				wantStatus: http.StatusUnprocessableEntity,
			},
			{
				name: "unsupported provider",
				settings: func() *domain.SiteSettings {
					s := testSettings()
					s.TextAIProvider = "mystery"
					return s
				},
				field:      "title",
				wantStatus: http.StatusUnprocessableEntity,
			},
			{
				name:       "provider API error",
				settings:   testSettings,
				sendErr:    &domain.APIError{Status: http.StatusUnauthorized, Message: "Incorrect API key provided"},
				field:      "description",
				wantStatus: http.StatusBadGateway,
			},
			{
				name:       "unknown field",
				field:      "subtitle",
				wantStatus: http.StatusBadRequest,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := newServerFixture(t)
				if tt.settings != nil {
					f.settings.EXPECT().Get(mock.Anything).Return(tt.settings(), nil)
				}
				if tt.sendErr != nil {
					f.transport.EXPECT().Send(mock.Anything, mock.Anything).Return(nil, tt.sendErr)
				}

				w := f.admin(t, http.MethodPost, "/api/admin/generate/text", map[string]any{
					"topic": "go concurrency",
					"field": tt.field,
				})

				require.Equal(t, tt.wantStatus, w.Code)
				require.NotEmpty(t, decodeError(t, w))
			})
		}
	})

	t.Run("empty topic", func(t *testing.T) {
		f := newServerFixture(t)

		w := f.admin(t, http.MethodPost, "/api/admin/generate/text", map[string]any{
			"topic": "  ",
			"field": "title",
		})

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

type sseEvent struct {
	name string
	data string
}

func parseEvents(t *testing.T, body string) []sseEvent {
	t.Helper()

	var events []sseEvent
	for _, block := range strings.Split(strings.TrimSpace(body), "\n\n") {
		var ev sseEvent
		for _, line := range strings.Split(block, "\n") {
			if name, ok := strings.CutPrefix(line, "event: "); ok {
				ev.name = name
			}
			if data, ok := strings.CutPrefix(line, "data: "); ok {
				ev.data = data
			}
		}
		require.NotEmpty(t, ev.name, "malformed event block %q", block)
		events = append(events, ev)
	}
	return events
}

func TestHandleGenerateText_Stream(t *testing.T) {
	f := newServerFixture(t)
	f.settings.EXPECT().Get(mock.Anything).Return(testSettings(), nil)
	f.transport.EXPECT().Send(mock.Anything, mock.Anything).Return(chatResponse("A short description."), nil)

	w := f.admin(t, http.MethodPost, "/api/admin/generate/text", map[string]any{
		"topic":  "go concurrency",
		"field":  "description",
		"stream": true,
	})

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))

	events := parseEvents(t, w.Body.String())
	require.Len(t, events, 6)

	var progress []int
	for _, ev := range events[:5] {
		require.Equal(t, "progress", ev.name)
		var status domain.GenerationStatus
		require.NoError(t, json.Unmarshal([]byte(ev.data), &status))
		require.Equal(t, "description", status.Field)
		progress = append(progress, status.Progress)
	}
	require.Equal(t, []int{0, 25, 50, 75, 100}, progress)

	require.Equal(t, "result", events[5].name)
	require.JSONEq(t, `{"field":"description","text":"A short description."}`, events[5].data)
}

func TestHandleGenerateAll_Stream(t *testing.T) {
	t.Run("streams every field", func(t *testing.T) {
		f := newServerFixture(t)
		f.settings.EXPECT().Get(mock.Anything).Return(testSettings(), nil).Once()
		f.transport.EXPECT().Send(mock.Anything, mock.Anything).Return(chatResponse("value"), nil).Times(2)

		w := f.admin(t, http.MethodPost, "/api/admin/generate/all", map[string]any{
			"topic":  "go concurrency",
			"fields": []string{"title", "meta_title"},
		})

		require.Equal(t, http.StatusOK, w.Code)

		events := parseEvents(t, w.Body.String())
		last := events[len(events)-1]
		require.Equal(t, "result", last.name)
		require.JSONEq(t, `{"title":"value","meta_title":"value"}`, last.data)
		require.Len(t, events, 11)
	})

	t.Run("stops at the first failure", func(t *testing.T) {
		f := newServerFixture(t)
		f.settings.EXPECT().Get(mock.Anything).Return(testSettings(), nil).Once()
		f.transport.EXPECT().Send(mock.Anything, mock.Anything).
			Return(nil, &domain.APIError{Status: http.StatusTooManyRequests, Message: "quota exceeded"}).Once()

		w := f.admin(t, http.MethodPost, "/api/admin/generate/all", map[string]any{
			"topic": "go concurrency",
		})

		events := parseEvents(t, w.Body.String())
		last := events[len(events)-1]
		require.Equal(t, "error", last.name)
		require.Contains(t, last.data, "quota exceeded")

		var status domain.GenerationStatus
		require.NoError(t, json.Unmarshal([]byte(events[len(events)-2].data), &status))
		require.Equal(t, domain.StatusError, status.Status)
		require.Equal(t, "title", status.Field)
	})
}

func TestHandleGenerateImage(t *testing.T) {
	t.Run("empty topic", func(t *testing.T) {
		f := newServerFixture(t)

		w := f.admin(t, http.MethodPost, "/api/admin/generate/image", map[string]any{"topic": ""})

		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("returns image URL", func(t *testing.T) {
		f := newServerFixture(t)
		provider := mocks.NewMockImageProvider(t)

		settings := testSettings()
		settings.ImageAIAPIKey = "sk-image"
		f.settings.EXPECT().Get(mock.Anything).Return(settings, nil)
		f.images.EXPECT().Get(mock.Anything, "openai").Return(provider, nil)
		provider.EXPECT().Generate(mock.Anything, settings.ImageProvider(), "a lighthouse").
			Return("https://cdn.example.com/img.png", nil)

		w := f.admin(t, http.MethodPost, "/api/admin/generate/image", map[string]any{"topic": "a lighthouse"})

		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `{"image_url":"https://cdn.example.com/img.png"}`, w.Body.String())
	})
}

// pngHeader is enough for content sniffing to report image/png.
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func uploadRequest(t *testing.T, filename string, data []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/uploads", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+adminToken(t, "authenticated", time.Hour))
	return req
}

func TestHandleUpload(t *testing.T) {
	t.Run("uploads image", func(t *testing.T) {
		f := newServerFixture(t)
		f.settings.EXPECT().Get(mock.Anything).Return(testSettings(), nil)
		f.imageHost.EXPECT().
			Upload(mock.Anything, testSettings().Storage(), "logo.png", pngHeader).
			Return("https://i.ibb.co/abc/logo.png", nil)

		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, uploadRequest(t, "logo.png", pngHeader))

		require.Equal(t, http.StatusCreated, w.Code)
		require.JSONEq(t, `{"url":"https://i.ibb.co/abc/logo.png"}`, w.Body.String())
	})

	t.Run("rejects non image", func(t *testing.T) {
		f := newServerFixture(t)

		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, uploadRequest(t, "notes.txt", []byte("plain text")))

		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing file field", func(t *testing.T) {
		f := newServerFixture(t)

		req := httptest.NewRequest(http.MethodPost, "/api/admin/uploads", strings.NewReader(""))
		req.Header.Set("Content-Type", "multipart/form-data; boundary=x")
		req.Header.Set("Authorization", "Bearer "+adminToken(t, "authenticated", time.Hour))
		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}
