package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"cafe/internal/adapters/repl"
	"cafe/internal/config"
	"cafe/internal/console"
	"cafe/internal/core"
	"cafe/internal/db"
	"cafe/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

// run executes one console session and returns the process exit status.
func run(args []string, in io.Reader, out, errOut io.Writer) int {
	if len(args) != 4 {
		fmt.Fprintln(errOut, "Usage: cafe <dbname> <port> <user>")
		return 0
	}
	dbName, dbPort, dbUser := args[1], args[2], args[3]

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(errOut, "config: %v\n", err)
		return 1
	}

	baseLogger, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(errOut, "logger: %v\n", err)
		return 1
	}
	sessionLog := baseLogger.With(zap.String("session_id", uuid.NewString()))
	defer sessionLog.Sync()

	repl.PrintGreeting(out)

	params := db.Params{
		Host:     cfg.DBHost,
		Port:     dbPort,
		Database: dbName,
		User:     dbUser,
		Password: cfg.DBPassword,
	}

	fmt.Fprint(out, "Connecting to database...")
	fmt.Fprintf(out, "Connection URL: %s\n\n", params.DisplayURL())

	ctx := context.Background()
	conn, err := db.Connect(ctx, params)
	if err != nil {
		sessionLog.Error("Unable to connect to database", zap.Error(err))
		fmt.Fprintln(out, "Make sure you started postgres on this machine")
		return 1
	}
	fmt.Fprintln(out, "Done")

	defer func() {
		fmt.Fprint(out, "\nDisconnecting from the database... ")
		conn.Close()
		fmt.Fprintln(out, "Done!\n\nBye!")
	}()

	con := console.New(in, out)
	session := repl.NewSession(con, core.NewUserService(conn), core.NewCatalogService(conn), sessionLog)
	if err := session.Run(ctx); err != nil {
		sessionLog.Error("session ended", zap.Error(err))
	}
	return 0
}
