package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/dlog/cli"
	"github.com/ardnew/dlog/log"
	"github.com/ardnew/dlog/pkg"
)

func main() {
	err := cli.Run(context.Background(), os.Exit, os.Args[1:]...)
	if err != nil {
		// The process-wide logger is gone by now; report on stderr only.
		stderr := log.New(log.MakeConfig(
			log.WithSinks(log.SinkConsole),
			log.WithConsole(os.Stderr),
		))

		slog.New(log.NewHandler(stderr, pkg.Name)).Error(
			"run failed",
			slog.Any("error", err),
		) // slog resolves LogValue() for command errors
		os.Exit(1)
	}
}
