package service

import (
	"context"

	"tokbot/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

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

type mockSender struct {
	mock.Mock
}

func (m *mockSender) SendReply(ctx context.Context, cmd *domain.Command, text string) error {
	args := m.Called(ctx, cmd, text)
	return args.Error(0)
}

func (m *mockSender) SendText(ctx context.Context, chatID int64, text string, opts domain.SendOptions) error {
	args := m.Called(ctx, chatID, text, opts)
	return args.Error(0)
}

func (m *mockSender) SendChatAction(ctx context.Context, chatID int64, action domain.Action) {
	m.Called(ctx, chatID, action)
}

type mockVideoSender struct {
	mock.Mock
}

func (m *mockVideoSender) SendVideoFile(ctx context.Context, chatID int64, path string, name string) error {
	args := m.Called(ctx, chatID, path, name)
	return args.Error(0)
}

type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) Fetch(ctx context.Context, url string) (string, error) {
	args := m.Called(ctx, url)
	return args.String(0), args.Error(1)
}
