// Package main provides the synapses command line tool.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
)

const version = "v0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app carries what every command needs: where results go and where logs go.
type app struct {
	stdout io.Writer
	logger *slog.Logger
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		return usageError("missing command")
	}

	a := &app{stdout: stdout, logger: newLogger(stderr)}
	switch args[0] {
	case "version":
		fmt.Fprintf(stdout, "synapses %s\n", version)
		return nil
	case "init":
		return a.runInit(ctx, args[1:])
	case "codec":
		return a.runCodec(ctx, args[1:])
	case "train":
		return a.runTrain(ctx, args[1:])
	case "predict":
		return a.runPredict(ctx, args[1:])
	case "svg":
		return a.runSVG(ctx, args[1:])
	default:
		return usageError(fmt.Sprintf("unknown command: %s", args[0]))
	}
}

func usageError(msg string) error {
	return fmt.Errorf("%s\nusage: synapses <version|init|codec|train|predict|svg> [flags]", msg)
}
