package service

import (
	"context"
	"testing"

	"tokbot/internal/core/domain"
	"tokbot/internal/core/port"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubHandler struct {
	command string
	calls   int
}

func (s *stubHandler) Respond(_ context.Context, _ *domain.Command) error {
	s.calls++
	return nil
}

func (s *stubHandler) GetCommand() string {
	return s.command
}

func TestRegistry_Register(t *testing.T) {
	r := &Registry{}
	r.Register(&stubHandler{command: "/r"})

	assert.Len(t, r.ListCommands(), 1)
}

func TestRegistry_GetNotRegistered(t *testing.T) {
	r := &Registry{}

	_, err := r.Get("/r")
	assert.Error(t, err)
}

func TestRegistry_GetCommandNotFound(t *testing.T) {
	r := &Registry{}
	r.Register(&stubHandler{command: "/r"})

	_, err := r.Get("/foo")
	assert.Error(t, err)
}

func TestRegistry_GetKeepsGuards(t *testing.T) {
	guardCalls := 0
	guard := func(next port.Responder) port.Responder {
		return func(ctx context.Context, cmd *domain.Command) error {
			guardCalls++
			return next(ctx, cmd)
		}
	}

	h := &stubHandler{command: "/r"}

	r := &Registry{}
	r.Register(h, guard)

	registered, err := r.Get("/r")
	require.NoError(t, err)
	assert.Equal(t, "/r", registered.GetCommand())

	require.NoError(t, registered.Respond(t.Context(), &domain.Command{Name: "/r"}))
	assert.Equal(t, 1, guardCalls)
	assert.Equal(t, 1, h.calls)
}

func TestRegistry_ListCommands(t *testing.T) {
	r := &Registry{}
	r.Register(&stubHandler{command: "/r"})
	r.Register(&stubHandler{command: "/ru"})

	assert.ElementsMatch(t, []string{"/r", "/ru"}, r.ListCommands())
}
