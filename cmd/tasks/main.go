// Command tasks is a personal task tracker for the terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/bjaus/tasks/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.Run(ctx, os.Args[1:], cli.DefaultOptions()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
