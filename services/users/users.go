package users

import (
	"context"
	"fmt"
	"log"

	"ruebydash/db"
	"ruebydash/models"
)

type UsersService struct {
	usersRepo *db.PostgresUsersRepository
}

func NewUsersService(repo *db.PostgresUsersRepository) *UsersService {
	return &UsersService{usersRepo: repo}
}

func (s *UsersService) GetOrCreateUser(
	ctx context.Context,
	authProvider, authProviderID string,
) (*models.User, error) {
	log.Printf("📋 Starting to get or create user for provider: %s", authProvider)
	if authProvider == "" {
		return nil, fmt.Errorf("auth provider cannot be empty")
	}
	if authProviderID == "" {
		return nil, fmt.Errorf("auth provider ID cannot be empty")
	}

	user, err := s.usersRepo.GetOrCreateUser(ctx, authProvider, authProviderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create user: %w", err)
	}

	log.Printf("📋 Completed successfully - user: %s", user.ID)
	return user, nil
}
