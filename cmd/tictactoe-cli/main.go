package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	app "github.com/rocketscienceinc/tictactoe-bot/internal"
	"github.com/rocketscienceinc/tictactoe-bot/internal/cli"
	"github.com/rocketscienceinc/tictactoe-bot/internal/config"
	"github.com/rocketscienceinc/tictactoe-bot/internal/minimax"
	flag "github.com/spf13/pflag"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a config.yml; its bot section is used")
		randomness = flag.Float64("randomness", minimax.DefaultRandomness, "probability that the bot plays a best move")
		mark       = flag.String("mark", "X", "mark the bot plays, X or O")
		seed       = flag.Uint64("seed", 0, "seed for a reproducible game")
		botFirst   = flag.Bool("bot-first", false, "let the bot open the game")
		logLevel   = flag.String("log-level", "warn", "log level written to stderr")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: config.ParseLogLevel(*logLevel)}))

	botConf := config.Bot{Randomness: *randomness, Mark: *mark}
	if *configPath != "" {
		conf, err := config.Load(*configPath)
		if err != nil {
			exit(err)
		}

		botConf = conf.Bot
		if flag.CommandLine.Changed("randomness") {
			botConf.Randomness = *randomness
		}
		if flag.CommandLine.Changed("mark") {
			botConf.Mark = *mark
		}
	}

	var source minimax.Source
	if flag.CommandLine.Changed("seed") {
		source = minimax.NewSeededSource(*seed)
	}

	bot, err := app.NewBotService(logger, botConf, source)
	if err != nil {
		exit(err)
	}

	session, err := cli.NewSession(logger, os.Stdin, os.Stdout, bot, *botFirst)
	if err != nil {
		exit(err)
	}

	if err = session.Run(context.Background()); err != nil {
		exit(err)
	}
}

func exit(err error) {
	fmt.Fprintf(os.Stderr, "tictactoe: %v\n", err)
	os.Exit(1)
}
