package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/satstream/internal/client/cli"
	"github.com/dmitrijs2005/satstream/internal/client/config"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, rest, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		cli.Usage(os.Stderr)
		os.Exit(2)
	}

	app := cli.NewApp(cfg)
	err = app.Run(ctx, rest)
	_ = app.Close()

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if errors.Is(err, cli.ErrUsage) {
			cli.Usage(os.Stderr)
			os.Exit(2)
		}
		os.Exit(1)
	}

}
