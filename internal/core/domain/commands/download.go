package commands

import (
	"context"

	"tokbot/internal/core/domain"
	"tokbot/internal/core/port"

	"github.com/rs/zerolog/log"
)

// DownloadHandler delivers the video behind a URL the user supplied
// directly as the command argument.
type DownloadHandler struct {
	resolver   port.VideoResolver
	deliverer  port.VideoDeliverer
	textSender port.TextSender
	command    string
}

func NewDownloadHandler(resolver port.VideoResolver, deliverer port.VideoDeliverer,
	textSender port.TextSender, command string) *DownloadHandler {
	return &DownloadHandler{resolver: resolver, deliverer: deliverer, textSender: textSender,
		command: command}
}

func (h *DownloadHandler) GetCommand() string {
	return h.command
}

func (h *DownloadHandler) Respond(ctx context.Context, cmd *domain.Command) error {
	l := log.With().
		Int("messageId", cmd.MessageID).
		Int64("chatId", cmd.ChatID).
		Str("command", h.GetCommand()).
		Logger()

	l.Info().Msg("handling request")

	ref, err := h.resolver.FromExplicitInput(cmd.Args)
	if err != nil {
		return h.textSender.SendReply(ctx, cmd, invalidURLReply)
	}

	outcome := h.deliverer.Deliver(ctx, cmd.ChatID, ref)

	return reportOutcome(ctx, h.textSender, cmd, outcome)
}
