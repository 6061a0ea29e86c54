package handler

import (
	"context"
	"time"

	"tokbot/internal/core/domain"
	"tokbot/internal/core/port"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"
)

const genericErrorReply = "An error occurred while processing your command."

// Command turns inbound Telegram updates into domain commands and hands
// them to the registered guarded handlers. One goroutine per command; a
// failing or panicking handler never takes the update loop down.
type Command struct {
	commandRegistry port.CommandRegistry
	textSender      port.TextSender
	timeout         time.Duration
}

func NewCommand(commandRegistry port.CommandRegistry, textSender port.TextSender,
	timeout time.Duration) *Command {
	return &Command{commandRegistry: commandRegistry, textSender: textSender, timeout: timeout}
}

func (c *Command) Handle(_ context.Context, _ *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	msg := update.Message

	text := msg.Text
	if text == "" {
		text = msg.Caption
	}

	log.Debug().Str("message", text).Msg("received command")

	name := domain.ParseCommand(text)
	commandHandler, err := c.commandRegistry.Get(name)
	if err != nil {
		// Unknown commands are not errors, nothing is sent back.
		log.Debug().Str("command", name).Msg("no handler for command")
		return
	}

	cmd := &domain.Command{
		Name:      name,
		Args:      domain.ParseCommandArgs(text),
		MessageID: msg.ID,
		ChatID:    msg.Chat.ID,
	}

	if msg.From != nil {
		cmd.SenderID = msg.From.ID
		cmd.Username = getUserNameOrFirstName(msg.From)
	}

	if msg.ReplyToMessage != nil {
		cmd.HasReply = true
		cmd.ReplyCaption = msg.ReplyToMessage.Caption
	}

	go c.respond(commandHandler, cmd)
}

func (c *Command) respond(commandHandler port.Command, cmd *domain.Command) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Str("command", cmd.Name).
				Int64("chatId", cmd.ChatID).Int64("userId", cmd.SenderID).
				Msg("command handler panicked")
			c.apologize(cmd)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	if err := commandHandler.Respond(ctx, cmd); err != nil {
		log.Err(err).Str("command", cmd.Name).
			Int64("chatId", cmd.ChatID).Int64("userId", cmd.SenderID).
			Msg("failed to respond to command")
		c.apologize(cmd)
	}
}

func (c *Command) apologize(cmd *domain.Command) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	if err := c.textSender.SendReply(ctx, cmd, genericErrorReply); err != nil {
		log.Err(err).Int64("chatId", cmd.ChatID).Msg("failed to send error reply")
	}
}

func getUserNameOrFirstName(user *models.User) string {
	if user.Username == "" {
		return user.FirstName
	}

	return "@" + user.Username
}
