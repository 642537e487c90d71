package main

import (
	"context"
	"fmt"
	"os"

	"cafe/internal/db"

	"github.com/joho/godotenv"
)

// Applies the bundled cafe schema to DATABASE_URL. Existing cafe tables are dropped.
func main() {
	_ = godotenv.Load()

	schemaPath := "migrations/001_cafe_schema.sql"
	if len(os.Args) > 1 {
		schemaPath = os.Args[1]
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		fmt.Println("DATABASE_URL environment variable not set")
		os.Exit(1)
	}

	ctx := context.Background()
	conn, err := db.Open(ctx, dbURL)
	if err != nil {
		fmt.Printf("Failed to connect to DB: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close()

	sqlFile, err := os.ReadFile(schemaPath)
	if err != nil {
		fmt.Printf("Failed to read sql file: %v\n", err)
		os.Exit(1)
	}

	if err := conn.ExecuteUpdate(ctx, string(sqlFile)); err != nil {
		fmt.Printf("Migration failed: %v\n", err)
		conn.Close()
		os.Exit(1)
	}
	fmt.Println("Migration successful.")
}
