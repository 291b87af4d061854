package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path"
	"syscall"

	"github.com/google/subcommands"
	"github.com/somanmedha/banking-application/internal/pkg/logging"
)

func main() {
	mainCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logging.StdoutLogger
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	commander.Register(&serveCmd{logger: logger}, "")
	commander.Register(&migrateCmd{logger: logger}, "")
	commander.Register(&reconcileCmd{logger: logger}, "")

	flag.Parse()
	status := commander.Execute(mainCtx)

	stop()
	os.Exit(int(status))
}
