package main

import (
	"context"
	"fmt"
	"os"

	"github.com/de-tools/campaign-dash/pkg/runtime/bootstrap"
	"github.com/de-tools/campaign-dash/pkg/runtime/terminal"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	logger := bootstrap.NewLogger(os.Stderr, os.Getenv("DASH_LOG_LEVEL"))
	ctx := logger.WithContext(context.Background())

	cli := terminal.NewCLI(terminal.Options{
		Output: os.Stdout,
	})

	if err := cli.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
