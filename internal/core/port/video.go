package port

import (
	"context"

	"tokbot/internal/core/domain"
)

type VideoResolver interface {
	// Random picks a random active catalog video.
	Random(ctx context.Context) (domain.VideoReference, error)
	// RandomForSource picks a random active video of one source.
	RandomForSource(ctx context.Context, source string) (domain.VideoReference, error)
	// FromExplicitInput validates a user-supplied URL.
	FromExplicitInput(raw string) (domain.VideoReference, error)
	// FromReplyCaption extracts the video URL from a delivery caption.
	FromReplyCaption(caption string) (domain.VideoReference, error)
}

type VideoDeliverer interface {
	// Deliver fetches the referenced video and uploads it to the chat. The
	// outcome never carries a live temp file.
	Deliver(ctx context.Context, chatID int64, ref domain.VideoReference) domain.DeliveryOutcome
}

// BackgroundRunner schedules detached, supervised work.
type BackgroundRunner interface {
	Go(name string, fn func() error)
}
