package sender

import (
	"context"
	"fmt"
	"os"
	"time"

	"tokbot/internal/core/domain"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"
)

// TelegramBot is the slice of the bot API client this adapter needs.
type TelegramBot interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
	SendVideo(ctx context.Context, params *bot.SendVideoParams) (*models.Message, error)
	SendChatAction(ctx context.Context, params *bot.SendChatActionParams) (bool, error)
}

type Telegram struct {
	bot TelegramBot
}

func NewTelegram(bot TelegramBot) *Telegram {
	return &Telegram{bot: bot}
}

func (s *Telegram) SendReply(ctx context.Context, cmd *domain.Command, text string) error {
	_, err := s.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: cmd.ChatID,
		Text:   text,
		ReplyParameters: &models.ReplyParameters{
			MessageID: cmd.MessageID,
			ChatID:    cmd.ChatID,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to send reply: %w", err)
	}

	return nil
}

func (s *Telegram) SendText(ctx context.Context, chatID int64, text string, opts domain.SendOptions) error {
	params := &bot.SendMessageParams{
		ChatID:              chatID,
		Text:                text,
		DisableNotification: opts.Silent,
	}

	if opts.NoPreview {
		disabled := true
		params.LinkPreviewOptions = &models.LinkPreviewOptions{IsDisabled: &disabled}
	}

	_, err := s.bot.SendMessage(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}

func (s *Telegram) SendVideoFile(ctx context.Context, chatID int64, path string, name string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open video file: %w", err)
	}
	defer f.Close()

	_, err = s.bot.SendVideo(ctx, &bot.SendVideoParams{
		ChatID: chatID,
		Video:  &models.InputFileUpload{Filename: name, Data: f},
	})
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("failed to send video")
		return fmt.Errorf("failed to send video: %w", err)
	}

	return nil
}

const ChatActionRepeatSeconds = 5

func (s *Telegram) SendChatAction(ctx context.Context, chatID int64, action domain.Action) {
	log.Debug().Int64("chatID", chatID).Msg("starting action routine")
	for {
		select {
		case <-ctx.Done():
			log.Debug().Int64("chatID", chatID).Msg("done, stopping action routine")
			return
		default:
		}

		var chatAction models.ChatAction
		switch action {
		case domain.UploadingVideo:
			chatAction = models.ChatActionUploadVideo
		case domain.Typing:
			chatAction = models.ChatActionTyping
		default:
			chatAction = models.ChatActionTyping
		}

		log.Debug().Int64("chatID", chatID).Msg("transmitting action")
		_, err := s.bot.SendChatAction(ctx, &bot.SendChatActionParams{
			ChatID: chatID,
			Action: chatAction,
		})
		if err != nil {
			log.Err(err).Msg("error sending chat action")
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(ChatActionRepeatSeconds * time.Second):
		}
	}
}
