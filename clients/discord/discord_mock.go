package discord

import (
	"context"

	"github.com/stretchr/testify/mock"

	"ruebydash/clients"
)

// MockDiscordClient is a mock implementation of clients.DiscordClient
type MockDiscordClient struct {
	mock.Mock
}

func (m *MockDiscordClient) GetGuildChannels(ctx context.Context, guildID string) ([]clients.DiscordChannel, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]clients.DiscordChannel), args.Error(1)
}

func (m *MockDiscordClient) GetGuildRoles(ctx context.Context, guildID string) ([]clients.DiscordRole, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]clients.DiscordRole), args.Error(1)
}

func (m *MockDiscordClient) PostMessage(
	ctx context.Context,
	channelID string,
	message *clients.ChannelMessage,
) error {
	args := m.Called(ctx, channelID, message)
	return args.Error(0)
}

func (m *MockDiscordClient) PatchRolePermissions(
	ctx context.Context,
	guildID, roleID string,
	permissions int64,
) error {
	args := m.Called(ctx, guildID, roleID, permissions)
	return args.Error(0)
}

func (m *MockDiscordClient) PutChannelPermissionOverwrite(
	ctx context.Context,
	channelID, roleID string,
	allow, deny int64,
) error {
	args := m.Called(ctx, channelID, roleID, allow, deny)
	return args.Error(0)
}
