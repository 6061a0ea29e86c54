package commands

import (
	"context"
	"strings"

	"tokbot/internal/core/domain"
	"tokbot/internal/core/port"

	"github.com/rs/zerolog/log"
)

// BroadcastHandler sends a text message to every chat the bot knows.
type BroadcastHandler struct {
	catalog    port.CatalogStore
	textSender port.TextSender
	command    string
}

func NewBroadcastHandler(catalog port.CatalogStore, textSender port.TextSender,
	command string) *BroadcastHandler {
	return &BroadcastHandler{catalog: catalog, textSender: textSender, command: command}
}

func (h *BroadcastHandler) GetCommand() string {
	return h.command
}

func (h *BroadcastHandler) Respond(ctx context.Context, cmd *domain.Command) error {
	l := log.With().
		Int64("chatId", cmd.ChatID).
		Str("command", h.GetCommand()).
		Logger()

	content := strings.TrimSpace(cmd.Args)
	if content == "" {
		return h.textSender.SendReply(ctx, cmd, "Please provide a message to send.")
	}

	chatIDs, err := h.catalog.ChatIDs(ctx)
	if err != nil {
		l.Error().Err(err).Msg("could not list chats for broadcast")
		return h.textSender.SendReply(ctx, cmd, deliveryFailedReply)
	}

	l.Info().Int("chats", len(chatIDs)).Msg("broadcasting message")

	// One unreachable chat must not stop the rest of the broadcast.
	for _, chatID := range chatIDs {
		err := h.textSender.SendText(ctx, chatID, content, domain.SendOptions{})
		if err != nil {
			l.Error().Err(err).Int64("targetChatId", chatID).Msg("broadcast send failed")
		}
	}

	return nil
}
