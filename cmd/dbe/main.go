package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/matzehuels/metriclines/internal/cli"
	errs "github.com/matzehuels/metriclines/pkg/errors"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	c := cli.New(os.Stderr, cli.LogInfo)
	err := c.Execute(ctx, os.Args[1:])
	code := cli.ExitCode(err)
	if code != cli.ExitOK && code != cli.ExitInterrupt {
		fmt.Fprintln(os.Stderr, "Error:", errs.UserMessage(err))
		if code == cli.ExitUsage {
			fmt.Fprintln(os.Stderr, "Run 'dbe --help' for usage.")
		}
	}
	cancel()
	os.Exit(code)
}
