package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/saeidalz13/battleship-terminal/controller"
	"github.com/saeidalz13/battleship-terminal/internal/config"
	cerr "github.com/saeidalz13/battleship-terminal/internal/error"
	"github.com/saeidalz13/battleship-terminal/internal/logger"
	"github.com/saeidalz13/battleship-terminal/models/console"
)

const (
	exitCodeOk    = 0
	exitCodeFatal = 1
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run is the single place where the session ends.
func run(args []string) int {
	cfg, err := config.Load(".env", args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprint(os.Stderr, "Available flags", console.Flags)
		return exitCodeFatal
	}
	if cfg.Help {
		fmt.Print(console.Flags)
		return exitCodeOk
	}

	log, err := logger.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitCodeFatal
	}

	if !cfg.Quiet {
		fmt.Print(console.Intro(cfg.Fleet))
	}

	ctrl, err := controller.New(cfg, controller.WithLogger(log))
	if err != nil {
		log.Error().Err(err).Msg("could not start the game")
		return exitCodeFatal
	}

	_, err = ctrl.Run(context.Background())
	switch {
	case err == nil:
		return exitCodeOk

	case errors.Is(err, cerr.ErrSessionAborted):
		console.NewRenderer(os.Stdout).Banner("Please play again", "Exiting.....")
		return exitCodeOk

	default:
		log.Error().Err(err).Msg("game terminated")
		return exitCodeFatal
	}
}
