package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tokbot/internal/core/domain"
	"tokbot/internal/core/port"

	"github.com/rs/zerolog/log"
)

const (
	roleMissingReply = "User not found or has no role information."
	roleDeniedReply  = "You don't have access to this command."
	roleErrorReply   = "An error occurred while checking permissions."

	registrationTimeout = 10 * time.Second
)

// Registration records the (chat, user) pair of every command on a detached
// task. It never denies and never blocks the handler on the store write.
func Registration(catalog port.CatalogStore, tasks *TaskSet) port.Guard {
	return func(next port.Responder) port.Responder {
		return func(ctx context.Context, cmd *domain.Command) error {
			chatID := cmd.ChatID
			userID := cmd.SenderID

			log.Debug().Int64("chatId", chatID).Int64("userId", userID).Msg("registering chat user")

			tasks.Go("register chat user", func() error {
				ctx, cancel := context.WithTimeout(context.Background(), registrationTimeout)
				defer cancel()

				return catalog.UpsertChatUser(ctx, chatID, userID)
			})

			return next(ctx, cmd)
		}
	}
}

// RequireRole denies unless the catalog reports exactly the privileged role
// for the sender. The role is fetched per call and never cached; lookup
// failures deny (fail closed).
func RequireRole(catalog port.CatalogStore, sender port.TextSender, privileged domain.Role) port.Guard {
	return func(next port.Responder) port.Responder {
		return func(ctx context.Context, cmd *domain.Command) error {
			role, err := catalog.UserRole(ctx, cmd.SenderID)
			if errors.Is(err, domain.ErrUserNotFound) {
				return sender.SendReply(ctx, cmd, roleMissingReply)
			}
			if err != nil {
				log.Error().Err(err).Int64("userId", cmd.SenderID).Msg("role lookup failed")
				return sender.SendReply(ctx, cmd, roleErrorReply)
			}

			if role != privileged {
				log.Debug().Int64("userId", cmd.SenderID).Str("role", string(role)).
					Msg("denying unprivileged user")
				return sender.SendReply(ctx, cmd, roleDeniedReply)
			}

			return next(ctx, cmd)
		}
	}
}

// Cooldown denies repeat invocations of a command by the same user within
// the cooldown window.
func Cooldown(limiter *CooldownLimiter, sender port.TextSender, cooldown time.Duration) port.Guard {
	return func(next port.Responder) port.Responder {
		return func(ctx context.Context, cmd *domain.Command) error {
			verdict := limiter.Check(cmd.SenderID, cmd.Name, cooldown)
			if !verdict.Allowed {
				return sender.SendReply(ctx, cmd,
					fmt.Sprintf("Command cooldown active. Please wait %d more second(s).", verdict.Remaining))
			}

			return next(ctx, cmd)
		}
	}
}
