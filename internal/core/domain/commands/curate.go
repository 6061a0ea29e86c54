package commands

import (
	"context"
	"time"

	"tokbot/internal/core/domain"
	"tokbot/internal/core/port"

	"github.com/rs/zerolog/log"
)

const curateTimeout = 10 * time.Second

// DeleteHandler removes the video named in the caption of the replied-to
// delivery message. The store write runs detached; the chat gets an
// immediate confirmation.
type DeleteHandler struct {
	resolver   port.VideoResolver
	catalog    port.CatalogStore
	tasks      port.BackgroundRunner
	textSender port.TextSender
	command    string
}

func NewDeleteHandler(resolver port.VideoResolver, catalog port.CatalogStore,
	tasks port.BackgroundRunner, textSender port.TextSender, command string) *DeleteHandler {
	return &DeleteHandler{resolver: resolver, catalog: catalog, tasks: tasks,
		textSender: textSender, command: command}
}

func (h *DeleteHandler) GetCommand() string {
	return h.command
}

func (h *DeleteHandler) Respond(ctx context.Context, cmd *domain.Command) error {
	ref, err := replyReference(h.resolver, cmd)
	if err != nil {
		return h.textSender.SendReply(ctx, cmd, invalidURLReply)
	}

	log.Info().Str("url", ref.URL).Int64("userId", cmd.SenderID).Msg("deleting video")

	url := ref.URL
	h.tasks.Go("delete video", func() error {
		ctx, cancel := context.WithTimeout(context.Background(), curateTimeout)
		defer cancel()

		return h.catalog.DeleteVideo(ctx, url)
	})

	return h.textSender.SendReply(ctx, cmd, "Video deleted.")
}

// InactivateHandler marks the replied-to video inactive without removing
// it from the catalog.
type InactivateHandler struct {
	resolver   port.VideoResolver
	catalog    port.CatalogStore
	tasks      port.BackgroundRunner
	textSender port.TextSender
	command    string
}

func NewInactivateHandler(resolver port.VideoResolver, catalog port.CatalogStore,
	tasks port.BackgroundRunner, textSender port.TextSender, command string) *InactivateHandler {
	return &InactivateHandler{resolver: resolver, catalog: catalog, tasks: tasks,
		textSender: textSender, command: command}
}

func (h *InactivateHandler) GetCommand() string {
	return h.command
}

func (h *InactivateHandler) Respond(ctx context.Context, cmd *domain.Command) error {
	ref, err := replyReference(h.resolver, cmd)
	if err != nil {
		return h.textSender.SendReply(ctx, cmd, invalidURLReply)
	}

	log.Info().Str("url", ref.URL).Int64("userId", cmd.SenderID).Msg("inactivating video")

	url := ref.URL
	h.tasks.Go("inactivate video", func() error {
		ctx, cancel := context.WithTimeout(context.Background(), curateTimeout)
		defer cancel()

		return h.catalog.InactivateVideo(ctx, url)
	})

	return h.textSender.SendReply(ctx, cmd, "Video inactive.")
}

func replyReference(resolver port.VideoResolver, cmd *domain.Command) (domain.VideoReference, error) {
	if !cmd.HasReply {
		return domain.VideoReference{}, domain.ErrNoCaptionLink
	}

	return resolver.FromReplyCaption(cmd.ReplyCaption)
}
