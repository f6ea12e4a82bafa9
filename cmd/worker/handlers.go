package main

import (
	"github.com/hibiken/asynq"

	mediaJob "aurexis-backend/internal/domains/media/job"
	"aurexis-backend/internal/infrastructure/storage"
	"aurexis-backend/internal/shared"
)

// HandlerRegistry holds all job handlers
type HandlerRegistry struct {
	thumbnail *mediaJob.ThumbnailHandler
}

// initializeHandlers creates all job handlers with their dependencies
func initializeHandlers(objects *storage.MinIOStorage, maxUploadBytes int64) *HandlerRegistry {
	return &HandlerRegistry{
		thumbnail: mediaJob.NewThumbnailHandler(objects, storage.NewImageProcessor(maxUploadBytes)),
	}
}

// RegisterHandlers registers all handlers with the mux
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	// Media tasks
	mux.HandleFunc(shared.TypeGenerateThumbnail, h.thumbnail.ProcessTask)
}
