// Cozinha browses recipes and walks you through cooking them from the terminal.
//
// Usage:
//
//	cozinha [-verbose] [-quiet] [-config cozinha.yaml] [-no-ai] [-no-sound]
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/hammamikhairi/cozinha/internal/app"
	"github.com/hammamikhairi/cozinha/internal/chime"
	"github.com/hammamikhairi/cozinha/internal/config"
	"github.com/hammamikhairi/cozinha/internal/conversation"
	"github.com/hammamikhairi/cozinha/internal/cooking"
	"github.com/hammamikhairi/cozinha/internal/display"
	"github.com/hammamikhairi/cozinha/internal/domain"
	"github.com/hammamikhairi/cozinha/internal/gpt"
	"github.com/hammamikhairi/cozinha/internal/logger"
)

func main() {
	_ = godotenv.Load()

	configPath := flag.String("config", "", "path to cozinha.yaml (default: search . and ~/.config/cozinha)")
	verbose := flag.Bool("verbose", false, "enable verbose/debug logging")
	quiet := flag.Bool("quiet", false, "disable all logging")
	logFile := flag.String("log-file", "", "file to write logs to (use \"stderr\" to log to console)")
	noAI := flag.Bool("no-ai", false, "disable AI suggestions even if GPT keys are set")
	noSound := flag.Bool("no-sound", false, "disable the time's-up chime")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	logLevel := logger.ParseLevel(cfg.App.LogLevel)
	if *verbose {
		logLevel = logger.LevelVerbose
	}
	if *quiet {
		logLevel = logger.LevelOff
	}
	if *logFile != "" {
		cfg.App.LogFile = *logFile
	}

	// Logs go to a file by default so the prompt stays clean.
	var logOut io.Writer = os.Stderr
	if path := cfg.App.LogFile; path != "" && path != "stderr" {
		if dir := filepath.Dir(path); dir != "" && dir != "." {
			_ = os.MkdirAll(dir, 0o755)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", path, err)
		} else {
			logOut = f
			defer f.Close()
		}
	}

	// The audio backend logs through the standard log package.
	stdlog.SetOutput(logOut)
	stdlog.SetFlags(stdlog.Ltime)

	log := logger.New(logLevel, logOut)
	defer log.Sync()

	// Cancelled when the UI quits.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cli := &cliApp{
		parser: conversation.NewKeywordParser(log.With("parser")),
		log:    log,
	}

	var assistant domain.Assistant
	if cfg.AI.Ready() && !*noAI {
		client := gpt.NewClient(cfg.AI.Endpoint, cfg.AI.APIKey, log.With("gpt"),
			gpt.WithModel(cfg.AI.Model),
			gpt.WithMaxTokens(cfg.AI.MaxTokens),
			gpt.WithHTTPTimeout(cfg.AI.Timeout),
		)
		assistant = gpt.NewGateway(client, log.With("gateway"),
			gpt.WithSuggestionTokens(cfg.AI.SuggestionMaxTokens),
		)
		log.Info("AI enabled (model=%s)", cfg.AI.Model)
	} else if !*noAI {
		log.Info("AI disabled: set GPT_CHAT_KEY and GPT_CHAT_ENDPOINT env vars to enable")
	}

	state := app.New(log.With("app"),
		app.WithAssistant(assistant),
		app.WithOnChange(cli.onAIChange),
		app.WithCookingOptions(
			cooking.WithTickInterval(cfg.Cooking.TickInterval),
			cooking.WithLogger(log.With("cooking")),
			cooking.WithOnTimeUp(func(st cooking.State) { cli.timeUp(ctx, st) }),
		),
	)
	ui := display.NewUI(state)

	notifier := conversation.MultiNotifier{conversation.NewCLINotifier(log, ui.Printf)}
	var bell *chime.Chime
	if cfg.Sound.Enabled && !*noSound {
		player, err := chime.NewPlayer(log.With("audio"))
		if err != nil {
			log.Error("audio player init failed, chime disabled: %v", err)
		} else {
			defer player.Stop()
			bell = chime.New(player, log.With("chime"),
				chime.WithVolume(cfg.Sound.Volume),
				chime.WithSoftNotify(cfg.Sound.SoftNotify),
			)
			notifier = append(notifier, bell)
		}
	}

	cli.state = state
	cli.ui = ui
	cli.notifier = notifier

	fmt.Println(display.RenderBanner())
	fmt.Println(display.BannerStyle.Render("  Type 'help' for commands, 'quit' to exit."))
	fmt.Println()

	go func() {
		ui.WaitReady()
		cli.run(ctx)
		ui.Quit()
	}()

	// Bubble Tea owns the terminal until quit.
	if err := ui.Run(); err != nil {
		log.Error("display: %v", err)
	}
	cancel()

	state.StopCooking()
	state.Wait()
	if bell != nil {
		bell.Wait()
	}
}
