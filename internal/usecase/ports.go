package usecase

import (
	"context"
	"log/slog"

	"github.com/inklet-dev/inklet/internal/domain"
)

// StoreRepository defines persistence over the whole-document store.
type StoreRepository interface {
	// Load re-reads the backing store. Implementations fail open: a missing
	// or unparsable store yields an empty document, not an error.
	Load(ctx context.Context) (domain.Document, error)
	// Update runs the load+mutate+save sequence as a single serialized
	// write. A write failure is propagated and nothing is persisted.
	Update(ctx context.Context, mutate func(*domain.Document)) (domain.Document, error)
}

// ImageGateway relays a file attachment to the hosted-image service.
type ImageGateway interface {
	Upload(ctx context.Context, data []byte, filename string) (string, error)
}

// Attachment is a file received alongside a create request.
type Attachment struct {
	Name string
	Data []byte
}

// uploadAttachment relays att to the image host and returns the public URL.
// Failures are absorbed: an attachment that cannot be uploaded must never
// block entity creation, so the entity simply gets no image.
func uploadAttachment(ctx context.Context, images ImageGateway, att *Attachment) *string {
	if att == nil || images == nil {
		return nil
	}

	url, err := images.Upload(ctx, att.Data, att.Name)
	if err != nil {
		slog.WarnContext(
			ctx, "image relay failed, continuing without image",
			slog.String("error", err.Error()),
			slog.String("filename", att.Name),
			slog.String("module", "usecase"),
		)
		return nil
	}
	if url == "" {
		return nil
	}
	return &url
}
