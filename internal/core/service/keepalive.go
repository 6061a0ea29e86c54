package service

import (
	"context"
	"time"

	"tokbot/internal/core/domain"
	"tokbot/internal/core/port"

	"github.com/rs/zerolog/log"
)

// Keepalive periodically messages a configured chat so the bot's presence
// stays visible. Send failures are logged and the loop keeps going.
type Keepalive struct {
	sender   port.TextSender
	chatID   int64
	interval time.Duration
}

func NewKeepalive(sender port.TextSender, chatID int64, interval time.Duration) *Keepalive {
	return &Keepalive{sender: sender, chatID: chatID, interval: interval}
}

func (k *Keepalive) Run(ctx context.Context) {
	for {
		err := k.sender.SendText(ctx, k.chatID, "Hello!", domain.SendOptions{})
		if err != nil {
			log.Error().Err(err).Int64("chatId", k.chatID).Msg("keepalive message failed")
		}

		select {
		case <-time.After(k.interval):
		case <-ctx.Done():
			log.Debug().Msg("stopping keepalive")
			return
		}
	}
}
