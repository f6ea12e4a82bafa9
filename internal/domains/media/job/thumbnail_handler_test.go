package job

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/jpeg"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aurexis-backend/internal/infrastructure/storage"
	"aurexis-backend/internal/shared"
)

type MockObjects struct {
	Data map[string][]byte
}

func (m *MockObjects) Download(ctx context.Context, key string) ([]byte, error) {
	d, ok := m.Data[key]
	if !ok {
		return nil, assert.AnError
	}
	return d, nil
}

func (m *MockObjects) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	m.Data[key] = data
	return "http://cdn/" + key, nil
}

func jpegBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, x%h, color.RGBA{G: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

func task(t *testing.T, key string) *asynq.Task {
	raw, err := json.Marshal(shared.ThumbnailPayload{ObjectKey: key, ContentType: "image/jpeg"})
	require.NoError(t, err)
	return asynq.NewTask(shared.TypeGenerateThumbnail, raw)
}

func TestThumbnailHandler_WritesThumbnail(t *testing.T) {
	objects := &MockObjects{Data: map[string][]byte{"portfolio/abc.jpg": jpegBytes(t, 1200, 600)}}
	h := NewThumbnailHandler(objects, storage.NewImageProcessor(0))

	require.NoError(t, h.ProcessTask(context.Background(), task(t, "portfolio/abc.jpg")))

	thumb, ok := objects.Data["portfolio/abc_thumb.jpg"]
	require.True(t, ok)
	cfg, format, err := image.DecodeConfig(bytes.NewReader(thumb))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, storage.ThumbnailSize, cfg.Width)
	assert.Equal(t, storage.ThumbnailSize/2, cfg.Height)
}

func TestThumbnailHandler_SkipsNonImagesAndThumbnails(t *testing.T) {
	objects := &MockObjects{Data: map[string][]byte{"docs/a.pdf": []byte("%PDF-1.4")}}
	h := NewThumbnailHandler(objects, storage.NewImageProcessor(0))

	require.NoError(t, h.ProcessTask(context.Background(), task(t, "docs/a.pdf")))
	require.NoError(t, h.ProcessTask(context.Background(), task(t, "docs/a_thumb.jpg")))
	assert.Len(t, objects.Data, 1)
}

func TestThumbnailHandler_Errors(t *testing.T) {
	h := NewThumbnailHandler(&MockObjects{Data: map[string][]byte{}}, storage.NewImageProcessor(0))

	err := h.ProcessTask(context.Background(), asynq.NewTask(shared.TypeGenerateThumbnail, []byte("{")))
	assert.ErrorIs(t, err, asynq.SkipRetry)

	err = h.ProcessTask(context.Background(), task(t, "missing.jpg"))
	assert.Error(t, err)
}
