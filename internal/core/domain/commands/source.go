package commands

import (
	"context"
	"fmt"
	"strings"

	"tokbot/internal/core/domain"
	"tokbot/internal/core/port"

	"github.com/rs/zerolog/log"
)

// AddSourceHandler registers a new content source in the catalog.
type AddSourceHandler struct {
	catalog    port.CatalogStore
	textSender port.TextSender
	command    string
}

func NewAddSourceHandler(catalog port.CatalogStore, textSender port.TextSender,
	command string) *AddSourceHandler {
	return &AddSourceHandler{catalog: catalog, textSender: textSender, command: command}
}

func (h *AddSourceHandler) GetCommand() string {
	return h.command
}

func (h *AddSourceHandler) Respond(ctx context.Context, cmd *domain.Command) error {
	source := strings.TrimSpace(cmd.Args)
	if source == "" {
		return h.textSender.SendReply(ctx, cmd, "Please provide a tiktok user to add.")
	}

	confirmation, err := h.catalog.AddSource(ctx, source)
	if err != nil || confirmation == "" {
		log.Error().Err(err).Str("source", source).Msg("failed to add source")
		return h.textSender.SendReply(ctx, cmd, fmt.Sprintf("Failed to add tiktok user %s.", source))
	}

	return h.textSender.SendReply(ctx, cmd, confirmation)
}
