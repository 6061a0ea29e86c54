package commands

import (
	"context"

	"tokbot/internal/core/domain"
	"tokbot/internal/core/port"

	"github.com/rs/zerolog/log"
)

const (
	invalidURLReply     = "Please provide a valid TikTok URL."
	noVideoReply        = "No video found."
	emptyDownloadReply  = "Sorry, couldn't download that video."
	deliveryFailedReply = "Sorry, something went wrong. Please try again later."
)

// reportOutcome converts a delivery outcome into the user-facing reply.
// Failure detail stays in the log; the chat gets a generic apology.
func reportOutcome(ctx context.Context, texts port.TextSender, cmd *domain.Command,
	outcome domain.DeliveryOutcome) error {
	switch outcome.Status {
	case domain.Delivered:
		return nil
	case domain.Empty:
		return texts.SendReply(ctx, cmd, emptyDownloadReply)
	default:
		log.Error().Str("command", cmd.Name).Str("reason", outcome.Reason).
			Int64("chatId", cmd.ChatID).Msg("delivery failed")
		return texts.SendReply(ctx, cmd, deliveryFailedReply)
	}
}
