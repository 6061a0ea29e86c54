package service

import (
	"context"
	"errors"

	"tokbot/internal/core/domain"
	"tokbot/internal/core/port"

	"github.com/rs/zerolog/log"
)

// Registry maps command keywords to guarded handlers. Guard chains are
// resolved once at registration time, in declared order, so the effective
// policy of every command is visible at the call site that registers it.
type Registry struct {
	commands map[string]port.Command
}

type guardedCommand struct {
	inner   port.Command
	respond port.Responder
}

func (g *guardedCommand) Respond(ctx context.Context, cmd *domain.Command) error {
	return g.respond(ctx, cmd)
}

func (g *guardedCommand) GetCommand() string {
	return g.inner.GetCommand()
}

// Chain wraps a responder with guards, first guard outermost.
func Chain(next port.Responder, guards ...port.Guard) port.Responder {
	for i := len(guards) - 1; i >= 0; i-- {
		next = guards[i](next)
	}

	return next
}

func (r *Registry) Register(handler port.Command, guards ...port.Guard) {
	if r.commands == nil {
		r.commands = make(map[string]port.Command)
	}

	log.Info().Str("handler", handler.GetCommand()).Int("guards", len(guards)).
		Msg("adding command handler to registry")
	r.commands[handler.GetCommand()] = &guardedCommand{
		inner:   handler,
		respond: Chain(handler.Respond, guards...),
	}
}

func (r *Registry) Get(command string) (port.Command, error) {
	log.Debug().Str("command", command).Msg("fetching command handler from registry")

	if r.commands == nil {
		return nil, errors.New("can't fetch commands, registry not initialized")
	}

	handler, ok := r.commands[command]
	if !ok {
		return nil, errors.New("command not found")
	}

	return handler, nil
}

func (r *Registry) ListCommands() []string {
	keys := make([]string, len(r.commands))

	i := 0
	for k := range r.commands {
		keys[i] = k
		i++
	}

	return keys
}
