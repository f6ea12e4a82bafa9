package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"aurexis-backend/internal/shared"
)

// Client enqueues background tasks on the asynq Redis broker
type Client struct {
	client *asynq.Client
}

func NewClient(redisAddr string) *Client {
	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{Addr: redisAddr}),
	}
}

// EnqueueThumbnail schedules thumbnail generation for an uploaded object
func (c *Client) EnqueueThumbnail(ctx context.Context, payload shared.ThumbnailPayload) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal thumbnail payload: %w", err)
	}

	task := asynq.NewTask(shared.TypeGenerateThumbnail, raw)
	info, err := c.client.EnqueueContext(ctx, task,
		asynq.Queue(shared.QueueMedia),
		asynq.MaxRetry(2),
		asynq.Timeout(2*time.Minute),
	)
	if err != nil {
		return fmt.Errorf("enqueue %s: %w", shared.TypeGenerateThumbnail, err)
	}

	log.Debug().Str("task_id", info.ID).Str("key", payload.ObjectKey).Msg("[QUEUE] thumbnail enqueued")
	return nil
}

func (c *Client) Close() error {
	return c.client.Close()
}
