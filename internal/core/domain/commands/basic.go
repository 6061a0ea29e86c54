package commands

import (
	"context"
	"fmt"

	"tokbot/internal/core/domain"
	"tokbot/internal/core/port"
)

type HelloHandler struct {
	textSender port.TextSender
	command    string
}

func NewHelloHandler(textSender port.TextSender, command string) *HelloHandler {
	return &HelloHandler{textSender: textSender, command: command}
}

func (h *HelloHandler) GetCommand() string {
	return h.command
}

func (h *HelloHandler) Respond(ctx context.Context, cmd *domain.Command) error {
	return h.textSender.SendReply(ctx, cmd, "Hello there! 👋")
}

type StartHandler struct {
	textSender port.TextSender
	command    string
}

func NewStartHandler(textSender port.TextSender, command string) *StartHandler {
	return &StartHandler{textSender: textSender, command: command}
}

func (h *StartHandler) GetCommand() string {
	return h.command
}

func (h *StartHandler) Respond(ctx context.Context, cmd *domain.Command) error {
	return h.textSender.SendReply(ctx, cmd, "Welcome! Send /hello to get a greeting.")
}

type ChatIDHandler struct {
	textSender port.TextSender
	command    string
}

func NewChatIDHandler(textSender port.TextSender, command string) *ChatIDHandler {
	return &ChatIDHandler{textSender: textSender, command: command}
}

func (h *ChatIDHandler) GetCommand() string {
	return h.command
}

func (h *ChatIDHandler) Respond(ctx context.Context, cmd *domain.Command) error {
	return h.textSender.SendReply(ctx, cmd, fmt.Sprintf("Your chat ID is: %d", cmd.ChatID))
}
