package port

import (
	"context"

	"tokbot/internal/core/domain"
)

// Responder is the executable form of a command handler. Guards wrap
// responders and may short-circuit them.
type Responder func(ctx context.Context, cmd *domain.Command) error

// Guard wraps a responder with a cross-cutting policy. A guard that denies
// a command replies to the chat itself and does not call next.
type Guard func(next Responder) Responder

type Command interface {
	// Respond executes the command for the given parsed message.
	Respond(ctx context.Context, cmd *domain.Command) error
	// GetCommand retrieves the command keyword this handler is registered for.
	GetCommand() string
}

type CommandRegistry interface {
	// Register adds a command handler, wrapped by the given guards in
	// declared order (first guard outermost).
	Register(handler Command, guards ...Guard)
	// Get retrieves a registered Command by keyword or returns an error if not found.
	Get(command string) (Command, error)
	// ListCommands returns all registered command keywords.
	ListCommands() []string
}
