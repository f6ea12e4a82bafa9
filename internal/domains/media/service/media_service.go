package service

import (
	"context"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"aurexis-backend/internal/config"
	"aurexis-backend/internal/domains/media/model"
	"aurexis-backend/internal/infrastructure/storage"
	"aurexis-backend/internal/shared"
	"aurexis-backend/internal/shared/utils"
)

var extPattern = regexp.MustCompile(`^\.[a-z0-9]{1,10}$`)

type mediaService struct {
	bucket   string
	maxBytes int64
	storage  ObjectStorage
	queue    ThumbnailEnqueuer
	images   *storage.ImageProcessor
	newName  func() string
}

// NewMediaService wires the uploader. objects may be nil when no bucket is
// configured and queue may be nil when background jobs are disabled.
func NewMediaService(cfg config.StorageConfig, objects ObjectStorage, queue ThumbnailEnqueuer) ServiceInterface {
	maxBytes := int64(cfg.MaxUploadMB) * 1024 * 1024
	return &mediaService{
		bucket:   cfg.Bucket,
		maxBytes: maxBytes,
		storage:  objects,
		queue:    queue,
		images:   storage.NewImageProcessor(maxBytes),
		newName:  uuid.NewString,
	}
}

func (s *mediaService) MaxUploadBytes() int64 {
	return s.maxBytes
}

func (s *mediaService) Upload(ctx context.Context, in *model.UploadInput) (*model.UploadResult, error) {
	// Step 1: configuration gate, before anything touches storage
	if s.bucket == "" || s.storage == nil {
		return nil, model.ErrStorageNotConfigured
	}

	// Step 2: size checks
	size := int64(len(in.Data))
	if size == 0 {
		return nil, model.ErrEmptyFile
	}
	if size > s.maxBytes {
		return nil, model.NewFileTooLarge(size, s.maxBytes)
	}

	// Step 3: object key
	key := utils.SanitizeFolder(in.Folder) + "/" + s.newName() + fileExtension(in.Filename)

	contentType := in.ContentType
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(in.Data)
	}

	// Step 4: upload
	url, err := s.storage.Upload(ctx, key, in.Data, contentType)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("[MEDIA] upload failed")
		return nil, model.NewUploadFailed(err)
	}

	log.Info().Str("key", key).Int64("size", size).Msg("[MEDIA] file uploaded")

	// Step 5: optional thumbnail, never fails the upload
	if s.queue != nil && s.images.IsThumbnailable(in.Data) {
		payload := shared.ThumbnailPayload{ObjectKey: key, ContentType: contentType}
		if err := s.queue.EnqueueThumbnail(ctx, payload); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("[MEDIA] thumbnail enqueue failed")
		}
	}

	return &model.UploadResult{
		URL:         url,
		Path:        key,
		ContentType: contentType,
		Size:        size,
	}, nil
}

// fileExtension returns the lowercased extension, or "" when it is unusable
func fileExtension(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if !extPattern.MatchString(ext) {
		return ""
	}
	return ext
}
