package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"git.home.luguber.info/inful/linkmigrate/cmd/linkmigrate/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := commands.Execute(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
