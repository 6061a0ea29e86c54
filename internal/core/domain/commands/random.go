package commands

import (
	"context"

	"tokbot/internal/core/domain"
	"tokbot/internal/core/port"

	"github.com/rs/zerolog/log"
)

// RandomHandler delivers a random video from the whole catalog.
type RandomHandler struct {
	resolver   port.VideoResolver
	deliverer  port.VideoDeliverer
	textSender port.TextSender
	command    string
}

func NewRandomHandler(resolver port.VideoResolver, deliverer port.VideoDeliverer,
	textSender port.TextSender, command string) *RandomHandler {
	return &RandomHandler{resolver: resolver, deliverer: deliverer, textSender: textSender,
		command: command}
}

func (h *RandomHandler) GetCommand() string {
	return h.command
}

func (h *RandomHandler) Respond(ctx context.Context, cmd *domain.Command) error {
	l := log.With().
		Int("messageId", cmd.MessageID).
		Int64("chatId", cmd.ChatID).
		Str("command", h.GetCommand()).
		Logger()

	l.Info().Msg("handling request")

	ref, err := h.resolver.Random(ctx)
	if err != nil {
		return h.textSender.SendReply(ctx, cmd, noVideoReply)
	}

	outcome := h.deliverer.Deliver(ctx, cmd.ChatID, ref)

	return reportOutcome(ctx, h.textSender, cmd, outcome)
}

// SourceRandomHandler delivers a random video scoped to one source.
type SourceRandomHandler struct {
	resolver   port.VideoResolver
	deliverer  port.VideoDeliverer
	textSender port.TextSender
	command    string
}

func NewSourceRandomHandler(resolver port.VideoResolver, deliverer port.VideoDeliverer,
	textSender port.TextSender, command string) *SourceRandomHandler {
	return &SourceRandomHandler{resolver: resolver, deliverer: deliverer, textSender: textSender,
		command: command}
}

func (h *SourceRandomHandler) GetCommand() string {
	return h.command
}

func (h *SourceRandomHandler) Respond(ctx context.Context, cmd *domain.Command) error {
	l := log.With().
		Int("messageId", cmd.MessageID).
		Int64("chatId", cmd.ChatID).
		Str("command", h.GetCommand()).
		Str("source", cmd.Args).
		Logger()

	l.Info().Msg("handling request")

	ref, err := h.resolver.RandomForSource(ctx, cmd.Args)
	if err != nil {
		return h.textSender.SendReply(ctx, cmd, noVideoReply)
	}

	outcome := h.deliverer.Deliver(ctx, cmd.ChatID, ref)

	return reportOutcome(ctx, h.textSender, cmd, outcome)
}
