package commands

import (
	"context"

	"tokbot/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

type mockTextSender struct {
	mock.Mock
}

func (m *mockTextSender) SendReply(ctx context.Context, cmd *domain.Command, text string) error {
	args := m.Called(ctx, cmd, text)
	return args.Error(0)
}

func (m *mockTextSender) SendText(ctx context.Context, chatID int64, text string, opts domain.SendOptions) error {
	args := m.Called(ctx, chatID, text, opts)
	return args.Error(0)
}

func (m *mockTextSender) SendChatAction(ctx context.Context, chatID int64, action domain.Action) {
	m.Called(ctx, chatID, action)
}

type mockResolver struct {
	mock.Mock
}

func (m *mockResolver) Random(ctx context.Context) (domain.VideoReference, error) {
	args := m.Called(ctx)
	ref, _ := args.Get(0).(domain.VideoReference)
	return ref, args.Error(1)
}

func (m *mockResolver) RandomForSource(ctx context.Context, source string) (domain.VideoReference, error) {
	args := m.Called(ctx, source)
	ref, _ := args.Get(0).(domain.VideoReference)
	return ref, args.Error(1)
}

func (m *mockResolver) FromExplicitInput(raw string) (domain.VideoReference, error) {
	args := m.Called(raw)
	ref, _ := args.Get(0).(domain.VideoReference)
	return ref, args.Error(1)
}

func (m *mockResolver) FromReplyCaption(caption string) (domain.VideoReference, error) {
	args := m.Called(caption)
	ref, _ := args.Get(0).(domain.VideoReference)
	return ref, args.Error(1)
}

type mockDeliverer struct {
	mock.Mock
}

func (m *mockDeliverer) Deliver(ctx context.Context, chatID int64, ref domain.VideoReference) domain.DeliveryOutcome {
	args := m.Called(ctx, chatID, ref)
	outcome, _ := args.Get(0).(domain.DeliveryOutcome)
	return outcome
}

type mockCatalog struct {
	mock.Mock
}

func (m *mockCatalog) RandomVideo(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *mockCatalog) RandomVideoForSource(ctx context.Context, source string) (string, error) {
	args := m.Called(ctx, source)
	return args.String(0), args.Error(1)
}

func (m *mockCatalog) DeleteVideo(ctx context.Context, url string) error {
	args := m.Called(ctx, url)
	return args.Error(0)
}

func (m *mockCatalog) InactivateVideo(ctx context.Context, url string) error {
	args := m.Called(ctx, url)
	return args.Error(0)
}

func (m *mockCatalog) AddSource(ctx context.Context, name string) (string, error) {
	args := m.Called(ctx, name)
	return args.String(0), args.Error(1)
}

func (m *mockCatalog) ChatIDs(ctx context.Context) ([]int64, error) {
	args := m.Called(ctx)
	ids, _ := args.Get(0).([]int64)
	return ids, args.Error(1)
}

func (m *mockCatalog) UpsertChatUser(ctx context.Context, chatID int64, userID int64) error {
	args := m.Called(ctx, chatID, userID)
	return args.Error(0)
}

func (m *mockCatalog) UserRole(ctx context.Context, userID int64) (domain.Role, error) {
	args := m.Called(ctx, userID)
	role, _ := args.Get(0).(domain.Role)
	return role, args.Error(1)
}

// syncRunner runs detached tasks inline so tests can assert on the result.
type syncRunner struct {
	errs []error
}

func (r *syncRunner) Go(_ string, fn func() error) {
	r.errs = append(r.errs, fn())
}
