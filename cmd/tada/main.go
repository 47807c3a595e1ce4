package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/Makepad-fr/tada/internal/cli"
	"github.com/Makepad-fr/tada/internal/config"
	"github.com/Makepad-fr/tada/internal/logger"
	"github.com/Makepad-fr/tada/internal/ui"
)

func main() {
	cfg := config.FromEnv()

	// Root flags (apply to every subcommand); env supplies the defaults.
	flag.StringVar(&cfg.Store, "store", cfg.Store, "storage backend: file, redis or mem")
	flag.StringVar(&cfg.File, "file", cfg.File, "JSON file used by the file backend")
	flag.StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "Redis URL used by the redis backend")
	flag.StringVar(&cfg.Theme, "theme", cfg.Theme, "color theme: classic, neon or mono")
	flag.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable colors")
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "log diagnostics to stderr")
	flag.Parse()
	cfg.Normalize()

	ui.SetTheme(cfg.Theme)
	if cfg.NoColor {
		ui.DisableColor()
	}

	// Hand the remaining args to the CLI runner.
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintHelp()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Run(ctx, args, cli.Options{
		Config: cfg,
		Log:    logger.New(os.Stderr, cfg.Debug),
	})
	stop()
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
