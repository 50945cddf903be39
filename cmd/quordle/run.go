package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/joe-boudreau/llm-quordle-solver/internal/artist"
	"github.com/joe-boudreau/llm-quordle-solver/internal/browser"
	"github.com/joe-boudreau/llm-quordle-solver/internal/config"
	"github.com/joe-boudreau/llm-quordle-solver/internal/guesser"
	"github.com/joe-boudreau/llm-quordle-solver/internal/replay"
	"github.com/joe-boudreau/llm-quordle-solver/internal/solver"
	"github.com/joe-boudreau/llm-quordle-solver/internal/stats"
	"github.com/joe-boudreau/llm-quordle-solver/internal/store"
)

// newBlobStore builds the configured artifact store.
func newBlobStore(ctx context.Context, cfg config.Config, log *zap.Logger) (store.Blob, error) {
	switch cfg.Storage.Backend {
	case "s3":
		return store.NewS3Store(ctx, cfg.Storage.Bucket, cfg.Storage.Region, log)
	default:
		return store.NewLocalStore(cfg.Storage.OutputDir)
	}
}

// runSolve plays one full game. Fatal turn-loop errors abort before anything
// is persisted; decoration failures (artwork, stats) are logged and the run
// carries on.
func runSolve(ctx context.Context, cfg config.Config) error {
	runID := uuid.NewString()[:8]
	log := logger.With(zap.String("run_id", runID))

	blob, err := newBlobStore(ctx, cfg, log)
	if err != nil {
		return err
	}

	browserCfg := browser.DefaultConfig()
	browserCfg.Headless = cfg.Browser.Headless
	if cfg.Browser.URL != "" {
		browserCfg.URL = cfg.Browser.URL
	}
	driver := browser.NewDriver(browserCfg, log.Named("browser"))
	if err := driver.Start(ctx); err != nil {
		return fmt.Errorf("start browser: %w", err)
	}
	defer driver.Close()

	agent := guesser.NewClient(guesser.Config{
		APIKey:  cfg.LLM.APIKey,
		BaseURL: cfg.LLM.BaseURL,
		Model:   cfg.LLM.Model,
		Timeout: cfg.LLMTimeout(),
	}, log.Named("guesser"))

	controller := solver.New(driver, agent, guesser.SystemPrompt, log.Named("solver"),
		solver.WithRetries(cfg.Solver.GuessRetries))

	result, err := controller.Run(ctx)
	if err != nil {
		// Leave no partial snapshot behind on a fatal loop error.
		return fmt.Errorf("game run: %w", err)
	}

	log.Info("game finished",
		zap.String("outcome", string(result.Outcome)),
		zap.Int("attempts", result.State.NumAttempts()))

	art := maybeGenerateArtwork(ctx, cfg, driver, result, log)
	closing := solver.ClosingMessages(result)

	statsRepo := stats.NewRepository(blob, log.Named("stats"))
	record, err := statsRepo.Update(ctx, result.State)
	if err != nil {
		log.Error("stats update failed", zap.Error(err))
	}

	gameRepo := store.NewGameRepository(blob)
	if err := gameRepo.SaveGame(ctx, result.State, controller.Ledger().Messages()); err != nil {
		return fmt.Errorf("persist game: %w", err)
	}

	doc, err := replay.Render(result, closing, &record, art)
	if err != nil {
		return fmt.Errorf("render replay: %w", err)
	}
	if err := blob.Upload(ctx, store.ReplayKey, doc); err != nil {
		return fmt.Errorf("persist replay: %w", err)
	}

	if art != nil {
		key := fmt.Sprintf("art/%s-%s.png", time.Now().Format("2006-01-02"), runID)
		if err := blob.Upload(ctx, key, art.PNG); err != nil {
			log.Error("persist artwork failed", zap.Error(err))
		}
	}

	log.Info("run complete", zap.String("replay", store.ReplayKey))
	return nil
}

// maybeGenerateArtwork asks the image model to celebrate a win. Strictly
// best effort.
func maybeGenerateArtwork(ctx context.Context, cfg config.Config, page solver.PageAutomation, result *solver.Result, log *zap.Logger) *artist.Artwork {
	if result.Outcome != solver.OutcomeSolved || !cfg.Image.Enabled {
		return nil
	}
	if cfg.Image.APIKey == "" {
		log.Warn("image generation enabled but no api key configured")
		return nil
	}

	gen, err := artist.NewGenerator(ctx, cfg.Image.APIKey, cfg.Image.Model, log.Named("artist"))
	if err != nil {
		log.Error("artist init failed", zap.Error(err))
		return nil
	}

	words, err := page.FinalAnswers(ctx)
	if err != nil {
		words = result.State.SolvedWords()
	}

	art, err := gen.Generate(ctx, words)
	if err != nil {
		log.Error("artwork generation failed", zap.Error(err))
		return nil
	}
	return &art
}

// runReplay rebuilds the replay document from the persisted game record.
func runReplay(ctx context.Context, cfg config.Config) error {
	blob, err := newBlobStore(ctx, cfg, logger)
	if err != nil {
		return err
	}

	state, messages, err := store.NewGameRepository(blob).LoadGame(ctx)
	if err != nil {
		return fmt.Errorf("load saved game: %w", err)
	}

	result, err := solver.ResultFromTranscript(state, messages)
	if err != nil {
		return err
	}

	record, err := stats.NewRepository(blob, logger.Named("stats")).Load(ctx)
	if err != nil {
		logger.Error("stats load failed", zap.Error(err))
	}

	doc, err := replay.Render(result, solver.ClosingMessages(result), &record, nil)
	if err != nil {
		return fmt.Errorf("render replay: %w", err)
	}
	if err := blob.Upload(ctx, store.ReplayKey, doc); err != nil {
		return fmt.Errorf("persist replay: %w", err)
	}

	logger.Info("replay regenerated", zap.String("key", store.ReplayKey))
	return nil
}

// runStats prints the agent's lifetime record.
func runStats(ctx context.Context, cfg config.Config) error {
	blob, err := newBlobStore(ctx, cfg, logger)
	if err != nil {
		return err
	}

	record, err := stats.NewRepository(blob, logger.Named("stats")).Load(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Wins:   %d\n", record.WinCount)
	fmt.Printf("Losses: %d\n", record.LossCount)
	fmt.Printf("Streak: %d\n", record.CurrentStreak)
	fmt.Println("Winning attempt distribution:")
	for i := 1; i <= len(record.AttemptsDistributionForWins); i++ {
		fmt.Printf("  %d: %d\n", i, record.AttemptsDistributionForWins[i])
	}
	return nil
}
