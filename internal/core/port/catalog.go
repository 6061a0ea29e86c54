package port

import (
	"context"

	"tokbot/internal/core/domain"
)

// CatalogStore is the persistent store of videos, sources, chats and roles.
// Implementations normalize absent records to the domain sentinel errors so
// core logic never sees store-specific shapes.
type CatalogStore interface {
	// RandomVideo returns the URL of a random active video, or
	// domain.ErrNoVideoFound.
	RandomVideo(ctx context.Context) (string, error)
	// RandomVideoForSource returns the URL of a random active video of one
	// source, or domain.ErrNoVideoFound.
	RandomVideoForSource(ctx context.Context, source string) (string, error)
	// DeleteVideo removes a video from the catalog by URL.
	DeleteVideo(ctx context.Context, url string) error
	// InactivateVideo marks a video inactive without removing it.
	InactivateVideo(ctx context.Context, url string) error
	// AddSource registers a new content source and returns the store's
	// confirmation text.
	AddSource(ctx context.Context, name string) (string, error)
	// ChatIDs lists every chat the bot has seen.
	ChatIDs(ctx context.Context) ([]int64, error)
	// UpsertChatUser records a (chat, user) pair.
	UpsertChatUser(ctx context.Context, chatID int64, userID int64) error
	// UserRole returns the role of a user, or domain.ErrUserNotFound.
	UserRole(ctx context.Context, userID int64) (domain.Role, error)
}
