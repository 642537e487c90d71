package main

import (
	"bytes"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_WrongArgumentCount(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no arguments", []string{"cafe"}},
		{"two arguments", []string{"cafe", "cafedb", "5432"}},
		{"four arguments", []string{"cafe", "cafedb", "5432", "alice", "extra"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer

			code := run(tt.args, strings.NewReader(""), &out, &errOut)

			assert.Equal(t, 0, code)
			assert.Equal(t, "Usage: cafe <dbname> <port> <user>\n", errOut.String())
			assert.Empty(t, out.String(), "nothing is printed or connected before the argument check")
		})
	}
}

func TestRun_UnreachableDatabase(t *testing.T) {
	t.Setenv("CAFE_DB_HOST", "127.0.0.1")
	t.Setenv("LOG_LEVEL", "fatal")
	var out, errOut bytes.Buffer

	code := run([]string{"cafe", "cafedb", "1", "nobody"}, strings.NewReader("9\n"), &out, &errOut)

	assert.Equal(t, 1, code)
	got := out.String()
	assert.Contains(t, got, "User Interface")
	assert.Contains(t, got, "Connecting to database...Connection URL: postgres://127.0.0.1:1/cafedb\n\n")
	assert.True(t, strings.HasSuffix(got, "Make sure you started postgres on this machine\n"))
	assert.NotContains(t, got, "MAIN MENU")
	assert.NotContains(t, got, "Bye!")
}

func TestRun_DisconnectsOnExit(t *testing.T) {
	_ = godotenv.Load("../../.env")

	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test to protect live database")
	}
	cfg, err := pgx.ParseConfig(dbURL)
	require.NoError(t, err)

	t.Setenv("CAFE_DB_HOST", cfg.Host)
	t.Setenv("CAFE_DB_PASSWORD", cfg.Password)
	t.Setenv("LOG_LEVEL", "error")
	args := []string{"cafe", cfg.Database, strconv.Itoa(int(cfg.Port)), cfg.User}

	tests := []struct {
		name  string
		input string
	}{
		{"exit choice", "9\n"},
		{"input closed", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer

			code := run(args, strings.NewReader(tt.input), &out, &errOut)

			assert.Equal(t, 0, code)
			got := out.String()
			assert.Contains(t, got, "\nDone\n")
			assert.True(t, strings.HasSuffix(got, "\nDisconnecting from the database... Done!\n\nBye!\n"))
		})
	}
}
