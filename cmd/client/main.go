package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/jzupan/go-card-wallet/internal/adapter"
	"github.com/jzupan/go-card-wallet/internal/barcode"
	"github.com/jzupan/go-card-wallet/internal/config"
	"github.com/jzupan/go-card-wallet/internal/logger"
	"github.com/jzupan/go-card-wallet/internal/nav"
	"github.com/jzupan/go-card-wallet/internal/session"
	"github.com/jzupan/go-card-wallet/internal/store"
	"github.com/jzupan/go-card-wallet/internal/sync"
	"github.com/jzupan/go-card-wallet/internal/tui"
	"github.com/jzupan/go-card-wallet/internal/utils"
	"github.com/jzupan/go-card-wallet/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "loading .env: %v\n", err)
	}

	log := logger.NewClientLogger("card-wallet")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cards, err := store.NewCardStore(cfg.CardsFile, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create card store")
	}

	creds := session.NewCredentials()
	serverAdapter := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{
		BaseURL: cfg.ServerURL,
		Timeout: cfg.RequestTimeout,
	}, creds)

	sess := session.New(serverAdapter, cards, creds, log)

	generator := barcode.NewGenerator(log)
	saver := barcode.NewSaver(cfg.PicturesDir, log)
	log.Info().
		Str("cards_file", cfg.CardsFile).
		Str("pictures_dir", saver.Dir()).
		Msg("local storage ready")

	regenerator := workers.NewRegenerator(generator, saver, cards, log)
	regenerator.Start(ctx)
	defer regenerator.Stop()

	orchestrator := sync.NewOrchestrator(cards, sess, regenerator, log)
	stack := nav.NewStack(cards, log)

	ui := tui.New(tui.Deps{
		Cards:   cards,
		Session: sess,
		Sync:    orchestrator,
		Nav:     stack,
		IDs:     utils.NewUUIDGenerator(),
		Log:     log,
	})

	startDivergenceLog(ctx, orchestrator, cfg.SyncInterval, log)

	if err := ui.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

// startDivergenceLog periodically records how far the local collection has
// drifted from the remote account, while one is logged in.
func startDivergenceLog(ctx context.Context, orchestrator *sync.Orchestrator, interval time.Duration, log *logger.Logger) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				localOnly, remoteOnly, err := orchestrator.Divergence()
				if err != nil {
					continue
				}
				log.Debug().
					Int("local_only", len(localOnly)).
					Int("remote_only", len(remoteOnly)).
					Msg("sync divergence")
			}
		}
	}()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
