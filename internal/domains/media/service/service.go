package service

import (
	"context"

	"aurexis-backend/internal/domains/media/model"
	"aurexis-backend/internal/shared"
)

// ServiceInterface uploads admin files to the object bucket
type ServiceInterface interface {
	// Upload stores the file under <folder>/<uuid><ext> and returns its public URL
	Upload(ctx context.Context, in *model.UploadInput) (*model.UploadResult, error)
	// MaxUploadBytes is the per-file size limit
	MaxUploadBytes() int64
}

// ObjectStorage is the bucket the service writes to
type ObjectStorage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// ThumbnailEnqueuer schedules background thumbnail generation
type ThumbnailEnqueuer interface {
	EnqueueThumbnail(ctx context.Context, payload shared.ThumbnailPayload) error
}
