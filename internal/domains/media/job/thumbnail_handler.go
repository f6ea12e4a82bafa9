package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"aurexis-backend/internal/domains/media/model"
	"aurexis-backend/internal/infrastructure/storage"
	"aurexis-backend/internal/shared"
)

// ObjectReadWriter is the bucket access the worker needs
type ObjectReadWriter interface {
	Download(ctx context.Context, key string) ([]byte, error)
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// ThumbnailHandler renders a JPEG thumbnail next to an uploaded image
type ThumbnailHandler struct {
	objects ObjectReadWriter
	images  *storage.ImageProcessor
	size    int
}

func NewThumbnailHandler(objects ObjectReadWriter, images *storage.ImageProcessor) *ThumbnailHandler {
	return &ThumbnailHandler{
		objects: objects,
		images:  images,
		size:    storage.ThumbnailSize,
	}
}

func (h *ThumbnailHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload shared.ThumbnailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		log.Error().Err(err).Msg("Failed to unmarshal thumbnail payload")
		return fmt.Errorf("unmarshal payload: %w: %w", err, asynq.SkipRetry)
	}

	if payload.ObjectKey == "" || model.IsThumbnailKey(payload.ObjectKey) {
		log.Warn().Str("key", payload.ObjectKey).Msg("Skipping thumbnail task")
		return nil
	}

	// Step 1: original
	data, err := h.objects.Download(ctx, payload.ObjectKey)
	if err != nil {
		return fmt.Errorf("download %s: %w", payload.ObjectKey, err)
	}

	// Step 2: only JPEG/PNG within the size limit
	if err := h.images.ValidateImage(data); err != nil {
		log.Warn().Err(err).Str("key", payload.ObjectKey).Msg("Not thumbnailable, skipping")
		return nil
	}

	// Step 3: render
	thumb, err := h.images.Thumbnail(data, h.size)
	if err != nil {
		return fmt.Errorf("render thumbnail: %w: %w", err, asynq.SkipRetry)
	}

	// Step 4: store
	thumbKey := model.ThumbnailKey(payload.ObjectKey)
	if _, err := h.objects.Upload(ctx, thumbKey, thumb, "image/jpeg"); err != nil {
		return fmt.Errorf("upload thumbnail: %w", err)
	}

	log.Info().
		Str("key", payload.ObjectKey).
		Str("thumbnail", thumbKey).
		Int("bytes", len(thumb)).
		Msg("Thumbnail generated")
	return nil
}
