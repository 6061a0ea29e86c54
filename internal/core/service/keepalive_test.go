package service

import (
	"context"
	"testing"
	"time"

	"tokbot/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestKeepalive_Run(t *testing.T) {
	sent := make(chan struct{}, 8)

	sender := new(mockSender)
	sender.On("SendText", mock.Anything, int64(55), "Hello!", domain.SendOptions{}).
		Run(func(_ mock.Arguments) { sent <- struct{}{} }).
		Return(nil)

	ctx, cancel := context.WithCancel(t.Context())

	done := make(chan struct{})
	go func() {
		NewKeepalive(sender, 55, time.Hour).Run(ctx)
		close(done)
	}()

	select {
	case <-sent:
	case <-time.After(time.Second):
		t.Fatal("keepalive did not send")
	}

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("keepalive did not stop on cancel")
	}

	sender.AssertCalled(t, "SendText", mock.Anything, int64(55), "Hello!", domain.SendOptions{})
	assert.Len(t, sent, 0)
}
