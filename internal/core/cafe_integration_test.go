package core_test

import (
	"bytes"
	"context"
	"os"
	"testing"

	"cafe/internal/core"
	"cafe/internal/db"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *db.Conn {
	t.Helper()
	_ = godotenv.Load("../../.env")

	// Use a dedicated TEST database; the schema file drops and recreates the cafe tables.
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test to protect live database")
	}

	ctx := context.Background()
	conn, err := db.Open(ctx, dbURL)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(conn.Close)

	schema, err := os.ReadFile("../../migrations/001_cafe_schema.sql")
	if err != nil {
		t.Fatalf("Failed to read schema: %v", err)
	}
	if err := conn.ExecuteUpdate(ctx, string(schema)); err != nil {
		t.Fatalf("Failed to apply schema: %v", err)
	}
	return conn
}

func TestUserService_CreateThenAuthenticate(t *testing.T) {
	conn := setupTestDB(t)
	users := core.NewUserService(conn)
	ctx := context.Background()

	require.NoError(t, users.Create(ctx, "alice", "pw1", "555-1234"))

	ok, err := users.Authenticate(ctx, "alice", "pw1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = users.Authenticate(ctx, "alice", "wrong")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = users.Authenticate(ctx, "nobody", "pw1")
	require.NoError(t, err)
	assert.False(t, ok)

	u, err := users.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, core.Customer, u.Type)
	assert.Equal(t, "555-1234", u.Phone)
	assert.Empty(t, u.FavoriteItems)
}

func TestUserService_IsManager_NeverMatchesStoredManager(t *testing.T) {
	conn := setupTestDB(t)
	users := core.NewUserService(conn)
	ctx := context.Background()

	err := conn.ExecuteUpdate(ctx,
		"INSERT INTO Users (phoneNum, login, password, favItems, type) VALUES ($1, $2, $3, $4, $5)",
		"555-0005", "erin", "pw5", "", "Manager")
	require.NoError(t, err)

	isManager, err := users.IsManager(ctx, "erin")
	require.NoError(t, err)
	assert.False(t, isManager)
}

func TestCatalogService_AgainstMenuTable(t *testing.T) {
	conn := setupTestDB(t)
	catalog := core.NewCatalogService(conn)
	ctx := context.Background()

	err := conn.ExecuteUpdate(ctx, `
		INSERT INTO Menu (itemName, type, price, description) VALUES
		('Latte',   'Drinks', 4.5,  'Milk coffee'),
		('Mocha',   'Drinks', 5,    'Chocolate coffee'),
		('Brownie', 'Sweets', 3,    NULL);
	`)
	require.NoError(t, err)

	var out bytes.Buffer
	n, err := catalog.PrintCategory(ctx, &out, core.Drinks)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	out.Reset()
	n, err = catalog.PrintCategory(ctx, &out, core.Soup)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Empty(t, out.String())

	n, err = catalog.PrintByName(ctx, &out, "Mocha")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
