package testutils

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"testing"

	"ruebydash/appctx"
	"ruebydash/config"
	"ruebydash/db"
	"ruebydash/models"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"
)

// LoadTestConfig loads configuration for tests from environment variables
func LoadTestConfig() (*config.AppConfig, error) {
	// Try to load environment variables from various possible locations
	_ = godotenv.Load("../.env.test") // From services/ directory
	_ = godotenv.Load(".env.test")    // From root directory
	_ = godotenv.Load()               // Default .env file

	databaseURL := os.Getenv("DB_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DB_URL is not set")
	}

	databaseSchema := os.Getenv("DB_SCHEMA")
	if databaseSchema == "" {
		return nil, fmt.Errorf("DB_SCHEMA is not set")
	}

	return &config.AppConfig{
		DatabaseURL:    databaseURL,
		DatabaseSchema: databaseSchema,
	}, nil
}

// GenerateGuildID returns a random snowflake-shaped guild ID so parallel
// tests never collide on the guild_id primary key.
func GenerateGuildID() string {
	return fmt.Sprintf("9%017d", rand.Int63n(1e17))
}

// GenerateRoleID returns a random snowflake-shaped role ID
func GenerateRoleID() string {
	return fmt.Sprintf("8%017d", rand.Int63n(1e17))
}

// GenerateChannelID returns a random snowflake-shaped channel ID
func GenerateChannelID() string {
	return fmt.Sprintf("7%017d", rand.Int63n(1e17))
}

// CreateTestUser creates a test user with a unique ID to avoid constraint violations
func CreateTestUser(t *testing.T, usersRepo *db.PostgresUsersRepository) *models.User {
	testUserID := uuid.New().String()
	testUser, err := usersRepo.GetOrCreateUser(context.Background(), "test", testUserID)
	require.NoError(t, err, "Failed to create test user")
	return testUser
}

// CreateTestContext creates a context with the given user set for testing
func CreateTestContext(user *models.User) context.Context {
	ctx := context.Background()
	return appctx.SetUser(ctx, user)
}
