package uploads

import (
	"context"
	"log/slog"
	"time"

	"github.com/nfrund/docchat/internal/pubsub"
)

// UploadCreated is published after an upload has been stored and recorded.
type UploadCreated struct {
	ID        string    `json:"id"`
	Filename  string    `json:"filename"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

// Created is the topic uploads are announced on.
var Created = pubsub.NewEvent[UploadCreated]("uploads.created")

// auditCreated logs every announced upload.
func auditCreated(logger *slog.Logger) func(ctx context.Context, owner string, evt UploadCreated) error {
	return func(ctx context.Context, owner string, evt UploadCreated) error {
		logger.Info("Upload ingested",
			slog.String("upload_id", evt.ID),
			slog.String("owner", owner),
			slog.String("filename", evt.Filename),
			slog.Int64("size", evt.Size),
		)
		return nil
	}
}
