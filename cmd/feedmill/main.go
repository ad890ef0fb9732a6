package main

import (
	"log/slog"

	dotenv "github.com/dsh2dsh/expx-dotenv"

	"feedmill.app/internal/cli"
)

func main() {
	if err := dotenv.New().WithDepth(1).Load(); err != nil {
		slog.Warn("failed parse .env file(s)", slog.Any("error", err))
	}
	cli.Execute()
}
