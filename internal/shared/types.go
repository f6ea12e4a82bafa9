package shared

// Task types and queues shared by the API (producer) and the worker (consumer)
const (
	TypeGenerateThumbnail = "media:generate_thumbnail"

	QueueMedia = "media"
)

// ThumbnailPayload identifies an uploaded object to thumbnail
type ThumbnailPayload struct {
	ObjectKey   string `json:"objectKey"`
	ContentType string `json:"contentType"`
}
