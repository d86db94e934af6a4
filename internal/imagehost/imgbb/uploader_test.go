package imgbb_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/nepersonaj/internal/domain"
	"github.com/davidbz/nepersonaj/internal/imagehost/imgbb"
)

func newUploader() *imgbb.Uploader {
	return imgbb.NewUploader(imgbb.Config{
		Timeout:      time.Second,
		MaxRetries:   2,
		InitialDelay: time.Millisecond,
		MaxDelay:     2 * time.Millisecond,
	})
}

func TestUploader_Upload(t *testing.T) {
	t.Run("sends multipart form and returns data.url", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseMultipartForm(1<<20))
			require.Equal(t, "imgbb-key", r.FormValue("key"))

			file, header, err := r.FormFile("image")
			require.NoError(t, err)
			defer file.Close()
			require.Equal(t, "cover.png", header.Filename)

			content, err := io.ReadAll(file)
			require.NoError(t, err)
			require.Equal(t, "png-bytes", string(content))

			_, _ = w.Write([]byte(`{"data":{"url":"https://i.ibb.co/abc/cover.png"},"success":true,"status":200}`))
		}))
		defer server.Close()

		url, err := newUploader().Upload(context.Background(), domain.StorageConfig{
			APIKey:      "imgbb-key",
			EndpointURL: server.URL,
		}, "cover.png", []byte("png-bytes"))

		require.NoError(t, err)
		require.Equal(t, "https://i.ibb.co/abc/cover.png", url)
	})

	t.Run("retries transient failures", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			if calls.Add(1) < 3 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			_, _ = w.Write([]byte(`{"data":{"url":"https://i.ibb.co/ok.png"}}`))
		}))
		defer server.Close()

		url, err := newUploader().Upload(context.Background(), domain.StorageConfig{
			APIKey:      "k",
			EndpointURL: server.URL,
		}, "a.png", []byte("x"))

		require.NoError(t, err)
		require.Equal(t, "https://i.ibb.co/ok.png", url)
		require.Equal(t, int32(3), calls.Load())
	})

	t.Run("returns last API error after retries", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"status_code":400,"error":{"message":"Invalid API v1 key.","code":100}}`))
		}))
		defer server.Close()

		_, err := newUploader().Upload(context.Background(), domain.StorageConfig{
			APIKey:      "bad",
			EndpointURL: server.URL,
		}, "a.png", []byte("x"))

		var apiErr *domain.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, "Invalid API v1 key.", apiErr.Message)
		require.Equal(t, int32(3), calls.Load())
	})

	t.Run("missing key", func(t *testing.T) {
		_, err := newUploader().Upload(context.Background(), domain.StorageConfig{}, "a.png", []byte("x"))
		require.ErrorIs(t, err, domain.ErrMissingAPIKey)
	})

	t.Run("empty data", func(t *testing.T) {
		_, err := newUploader().Upload(context.Background(), domain.StorageConfig{APIKey: "k"}, "a.png", nil)
		require.Error(t, err)
	})

	t.Run("unexpected body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"success":true}`))
		}))
		defer server.Close()

		uploader := imgbb.NewUploader(imgbb.Config{Timeout: time.Second})
		_, err := uploader.Upload(context.Background(), domain.StorageConfig{APIKey: "k", EndpointURL: server.URL},
			"a.png", []byte("x"))
		require.ErrorIs(t, err, domain.ErrUnsupportedFormat)
	})
}
