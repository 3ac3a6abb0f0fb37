// Package main provides the video player entry point.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/videoplayer/internal/app/catalog"
	"github.com/osa030/videoplayer/internal/app/playback"
	"github.com/osa030/videoplayer/internal/app/player"
	"github.com/osa030/videoplayer/internal/console"
	"github.com/osa030/videoplayer/internal/infra/config"
	"github.com/osa030/videoplayer/internal/infra/logger"
	"github.com/osa030/videoplayer/internal/infra/source"
)

var (
	app         = kingpin.New("videoplayer", "Console video player with playlists")
	configPath  = app.Flag("config", "Path to config file (built-in defaults when omitted)").Envar("VIDEOPLAYER_CONFIG").String()
	catalogPath = app.Flag("catalog", "Extra catalog file (.txt, .yaml or .toml)").String()
	verbose     = app.Flag("verbose", "Enable verbose (DEBUG) logging").Short('v').Bool()
	logfile     = app.Flag("logfile", "Path to log file (default: stderr)").String()

	// list-videos command
	listVideosCmd = app.Command("list-videos", "List the loaded catalog and exit")
)

func init() {
	// start command (default) - no need to store the command
	app.Command("start", "Start the interactive console (default)").Default()
}

func main() {
	// Load .env file if it exists (errors are ignored)
	_ = godotenv.Load()

	// Parse command
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger, command-line flags take precedence
	loggerConfig := logger.Config{
		Output: cfg.Log.Output,
		Level:  cfg.Log.Level,
		File:   cfg.Log.File,
	}
	if *verbose {
		loggerConfig.Level = "debug"
	}
	if *logfile != "" {
		loggerConfig.Output = "file"
		loggerConfig.File = *logfile
	}
	closer, err := logger.Init(loggerConfig)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	err = run(command, cfg)
	if err != nil {
		zlog.Error().Msgf("videoplayer error: %v", err)
	}
	_ = closer.Close()
	if err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
	} else {
		cfg, err = config.Default()
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// run executes the main logic. Using a separate function ensures
// defer statements are executed even when returning with an error.
func run(command string, cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *configPath != "" {
		zlog.Info().Msgf("Loaded config from %s", *configPath)
	}

	chain, err := source.NewChainFromConfig(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to create catalog sources")
	}
	if *catalogPath != "" {
		extra, err := source.FromPath(*catalogPath)
		if err != nil {
			return errors.Wrap(err, "invalid --catalog")
		}
		chain.Add(extra)
	}
	videos, err := chain.Load(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load catalog")
	}
	lib, err := catalog.New(videos)
	if err != nil {
		return errors.Wrap(err, "failed to build catalog")
	}
	zlog.Info().Msgf("catalog ready: videos=%d sources=%d", lib.Count(), len(cfg.Catalog.Sources))

	if command == listVideosCmd.FullCommand() {
		for _, v := range lib.All() {
			fmt.Println(console.FormatVideo(v))
		}
		return nil
	}

	p := player.New(lib, playback.WithSeed(cfg.Playback.Seed))

	shell := console.NewShell(p, cfg.Console.Prompt, cfg.Console.PromptMode)
	return shell.Run(ctx, os.Stdin, os.Stdout)
}
