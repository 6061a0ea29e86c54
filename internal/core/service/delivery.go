package service

import (
	"context"
	"fmt"
	"os"

	"tokbot/internal/core/domain"
	"tokbot/internal/core/port"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc"
)

// Deliverer fetches a video and uploads it to a chat. One call owns one
// temp file: whatever the fetcher produced is removed before Deliver
// returns, on every path.
type Deliverer struct {
	fetcher port.MediaFetcher
	texts   port.TextSender
	videos  port.VideoSender
}

func NewDeliverer(fetcher port.MediaFetcher, texts port.TextSender, videos port.VideoSender) *Deliverer {
	return &Deliverer{fetcher: fetcher, texts: texts, videos: videos}
}

// Deliver runs the fetch and an upload_video presence signal concurrently,
// joins both before uploading, and reports the outcome. Fetch and delivery
// errors never propagate; they come back as a Failed outcome for the
// command handler to surface.
func (d *Deliverer) Deliver(ctx context.Context, chatID int64, ref domain.VideoReference) domain.DeliveryOutcome {
	l := log.With().Int64("chatId", chatID).Str("url", ref.URL).Logger()

	presenceCtx, stopPresence := context.WithCancel(ctx)
	defer stopPresence()

	presence := conc.NewWaitGroup()
	presence.Go(func() {
		d.texts.SendChatAction(presenceCtx, chatID, domain.UploadingVideo)
	})

	path, err := d.fetcher.Fetch(ctx, ref.URL)

	// The presence loop must be joined before the upload so no action
	// signal arrives after the video itself.
	stopPresence()
	presence.Wait()

	if err != nil {
		l.Error().Err(err).Msg("video fetch failed")
		return domain.DeliveryOutcome{Status: domain.Failed, Reason: err.Error()}
	}
	if path == "" {
		l.Debug().Msg("fetcher produced no media")
		return domain.DeliveryOutcome{Status: domain.Empty}
	}

	defer removeMedia(path)

	if err := d.videos.SendVideoFile(ctx, chatID, path, "video.mp4"); err != nil {
		l.Error().Err(err).Str("path", path).Msg("video upload failed")
		return domain.DeliveryOutcome{Status: domain.Failed, Reason: err.Error()}
	}

	follow := fmt.Sprintf("link: %s", ref.URL)
	if ref.Owner != "" {
		follow = fmt.Sprintf("link: %s, username: %s", ref.URL, ref.Owner)
	}

	err = d.texts.SendText(ctx, chatID, follow, domain.SendOptions{Silent: true, NoPreview: true})
	if err != nil {
		l.Error().Err(err).Msg("follow-up message failed")
		return domain.DeliveryOutcome{Status: domain.Failed, Reason: err.Error()}
	}

	l.Info().Msg("video delivered")

	return domain.DeliveryOutcome{Status: domain.Delivered}
}

func removeMedia(path string) {
	if err := os.Remove(path); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("could not clean up media file")
		return
	}
	log.Debug().Str("path", path).Msg("cleaned up media file")
}
