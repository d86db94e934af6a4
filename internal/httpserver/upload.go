package httpserver

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/davidbz/nepersonaj/internal/observability"
)

const uploadFormField = "file"

// HandleUpload stores a multipart image on the image host and returns its URL.
func (h *Handler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	maxBytes := int64(h.maxUploadMB) * bytesPerMB

	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", errInvalidRequest, err))
		return
	}
	defer func() {
		_ = r.MultipartForm.RemoveAll()
	}()

	file, header, err := r.FormFile(uploadFormField)
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: %s is required", errInvalidRequest, uploadFormField))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", errInvalidRequest, err))
		return
	}

	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		writeError(w, r, fmt.Errorf("%w: %s is not an image", errInvalidRequest, contentType))
		return
	}

	url, err := h.generation.Upload(ctx, header.Filename, data)
	if err != nil {
		writeError(w, r, err)
		return
	}

	observability.FromContext(ctx).Info("image uploaded",
		observability.String("filename", header.Filename),
		observability.Int("bytes", len(data)),
	)
	writeJSON(w, r, http.StatusCreated, map[string]string{
		"url": url,
	})
}
