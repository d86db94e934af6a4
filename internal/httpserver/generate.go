package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/davidbz/nepersonaj/internal/domain"
	"github.com/davidbz/nepersonaj/internal/observability"
)

var errStreamingUnsupported = errors.New("streaming not supported")

// GenerateTextRequest asks for the value of one field.
type GenerateTextRequest struct {
	Topic  string       `json:"topic"`
	Field  domain.Field `json:"field"`
	Stream bool         `json:"stream"`
}

// GenerateTextResponse carries one generated field.
type GenerateTextResponse struct {
	Field domain.Field `json:"field"`
	Text  string       `json:"text"`
}

// GenerateAllRequest asks for several fields. An empty field list means the default batch.
type GenerateAllRequest struct {
	Topic  string         `json:"topic"`
	Fields []domain.Field `json:"fields"`
}

// GenerateImageRequest asks for an illustration.
type GenerateImageRequest struct {
	Topic string `json:"topic"`
}

// GenerateImageResponse carries the generated image location.
type GenerateImageResponse struct {
	ImageURL string `json:"image_url"`
}

// HandleGenerateText generates one field, as JSON or as an SSE progress stream.
func (h *Handler) HandleGenerateText(w http.ResponseWriter, r *http.Request) {
	var req GenerateTextRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if strings.TrimSpace(req.Topic) == "" {
		writeError(w, r, domain.ErrEmptyTopic)
		return
	}

	ctx := r.Context()
	logger := observability.FromContext(ctx)
	logger.Info("text generation requested",
		observability.String("field", string(req.Field)),
		observability.Bool("stream", req.Stream),
	)

	if req.Stream {
		h.handleStream(ctx, w, r, func(stream *eventStream) (any, error) {
			text, err := h.generation.GenerateText(ctx, req.Topic, req.Field, stream.progress)
			return GenerateTextResponse{Field: req.Field, Text: text}, err
		})
		return
	}

	text, err := h.generation.GenerateText(ctx, req.Topic, req.Field, nil)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, GenerateTextResponse{Field: req.Field, Text: text})
}

// HandleGenerateAll generates a batch of fields and streams progress as SSE.
func (h *Handler) HandleGenerateAll(w http.ResponseWriter, r *http.Request) {
	var req GenerateAllRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if strings.TrimSpace(req.Topic) == "" {
		writeError(w, r, domain.ErrEmptyTopic)
		return
	}

	ctx := r.Context()
	observability.FromContext(ctx).Info("batch generation requested",
		observability.Int("fields", len(req.Fields)),
	)

	h.handleStream(ctx, w, r, func(stream *eventStream) (any, error) {
		return h.generation.GenerateAll(ctx, req.Topic, req.Fields, stream.progress)
	})
}

// HandleGenerateImage generates an illustration for a topic.
func (h *Handler) HandleGenerateImage(w http.ResponseWriter, r *http.Request) {
	var req GenerateImageRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	imageURL, err := h.generation.GenerateImage(r.Context(), req.Topic)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, GenerateImageResponse{ImageURL: imageURL})
}

// handleStream runs generate while forwarding its progress reports as SSE
// "progress" events. The outcome is sent as a "result" or "error" event.
func (h *Handler) handleStream(
	ctx context.Context,
	w http.ResponseWriter,
	r *http.Request,
	generate func(stream *eventStream) (any, error),
) {
	logger := observability.FromContext(ctx)

	flusher, ok := w.(http.Flusher)
	if !ok {
		logger.Error("streaming not supported")
		writeError(w, r, errStreamingUnsupported)
		return
	}

	// Set headers for SSE.
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	stream := &eventStream{ctx: ctx, w: w, flusher: flusher}

	result, err := generate(stream)
	if err != nil {
		logger.Error("stream generation failed", observability.Error(err))
		stream.send("error", errorResponse{Error: err.Error()})
		return
	}

	stream.send("result", result)
	logger.Info("stream completed")
}

// eventStream writes server-sent events until the client goes away.
type eventStream struct {
	ctx     context.Context
	w       http.ResponseWriter
	flusher http.Flusher
}

func (s *eventStream) progress(status domain.GenerationStatus) {
	s.send("progress", status)
}

func (s *eventStream) send(event string, payload any) {
	if s.ctx.Err() != nil {
		// Client disconnected or timeout
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		observability.FromContext(s.ctx).Error("failed to encode event", observability.Error(err))
		return
	}

	fmt.Fprintf(s.w, "event: %s\ndata: %s\n\n", event, data)
	s.flusher.Flush()
}
