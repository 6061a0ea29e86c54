package port

import (
	"context"

	"tokbot/internal/core/domain"
)

type TextSender interface {
	// SendReply sends a text reply to the message that carried the command.
	SendReply(ctx context.Context, cmd *domain.Command, text string) error
	// SendText sends a plain text message to a chat.
	SendText(ctx context.Context, chatID int64, text string, opts domain.SendOptions) error
	// SendChatAction repeatedly signals a chat action until the context is
	// cancelled. Intended to run on its own goroutine.
	SendChatAction(ctx context.Context, chatID int64, action domain.Action)
}

type VideoSender interface {
	// SendVideoFile uploads a local video file to a chat.
	SendVideoFile(ctx context.Context, chatID int64, path string, name string) error
}
