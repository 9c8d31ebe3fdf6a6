package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Thermaltank/project-front/internal/cli"
	"github.com/Thermaltank/project-front/internal/domain"
)

func main() {
	app, err := cli.NewApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Root().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, domain.ErrNoAutorizado) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
