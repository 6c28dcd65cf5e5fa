package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"proof-timeline/config"
	_ "proof-timeline/docs" // Swagger docs
	"proof-timeline/internal/habit"
	"proof-timeline/internal/httpserver"
	"proof-timeline/internal/ledger"
	"proof-timeline/internal/matcher"
	"proof-timeline/internal/middleware"
	"proof-timeline/internal/notifier"
	"proof-timeline/internal/recognition"
	recognitionHTTP "proof-timeline/internal/recognition/delivery/http"
	"proof-timeline/internal/settlement"
	settlementHTTP "proof-timeline/internal/settlement/delivery/http"
	settlementRepo "proof-timeline/internal/settlement/repository"
	settlementMemory "proof-timeline/internal/settlement/repository/memory"
	settlementSQLite "proof-timeline/internal/settlement/repository/sqlite"
	settlementUC "proof-timeline/internal/settlement/usecase"
	taskMemory "proof-timeline/internal/task/repository/memory"
	"proof-timeline/internal/timeline"
	timelineHTTP "proof-timeline/internal/timeline/delivery/http"
	timelineUC "proof-timeline/internal/timeline/usecase"
	"proof-timeline/internal/verification"
	verificationHTTP "proof-timeline/internal/verification/delivery/http"
	verificationUC "proof-timeline/internal/verification/usecase"
	"proof-timeline/pkg/datemath"
	"proof-timeline/pkg/gcalendar"
	"proof-timeline/pkg/log"
	"proof-timeline/pkg/telegram"
	"proof-timeline/pkg/vision"
)

// @title       Proof Timeline API
// @description Personal timeline with photo-verified task starts and completions, conflict resolution and coin settlement.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Proof Timeline...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Timeline domain
	dateMathParser, err := datemath.NewParser(cfg.Timeline.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Timeline.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	taskRepo := taskMemory.New(logger)

	// Google Calendar client (optional)
	var calendarMirror timelineUC.CalendarMirror
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "→ Run `go run ./scripts/gcal-auth` to generate token.json")
		} else {
			calendarMirror = calendarClient
			logger.Info(ctx, "Google Calendar mirror initialized")
		}
	}

	timelineUseCase := timelineUC.New(logger, taskRepo, calendarMirror, dateMathParser, timelineUC.Config{
		MaxIterations:       cfg.Timeline.MaxIterations,
		UnscheduledDuration: cfg.Timeline.UnscheduledDuration,
		CalendarID:          cfg.GoogleCalendar.CalendarID,
		Timezone:            cfg.Timeline.Timezone,
	})

	// 4. Settlement domain
	coins := ledger.New(logger, cfg.Settlement.OpeningBalance)
	settlementStore, closeStore, err := openSettlementStore(ctx, cfg.Storage, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to open settlement storage: %v", err)
		return
	}
	defer closeStore()

	settlementUseCase := settlementUC.New(logger, settlementStore, coins, settlement.Config{
		DefaultBaseReward: cfg.Settlement.DefaultBaseReward,
		BonusFactor:       cfg.Settlement.BonusFactor,
		PenaltyFactor:     cfg.Settlement.PenaltyFactor,
	})

	// 5. Recognition gateway
	visionClient := vision.New().WithHTTPClient(&http.Client{Timeout: cfg.Recognition.Timeout})
	if cfg.Recognition.TokenURL != "" {
		visionClient = visionClient.WithTokenURL(cfg.Recognition.TokenURL)
	}
	if cfg.Recognition.ClassifyURL != "" {
		visionClient = visionClient.WithClassifyURL(cfg.Recognition.ClassifyURL)
	}
	tokenCache, err := recognition.NewTokenCache(cfg.Recognition.TokenCacheSize, cfg.Recognition.TokenSafetyMargin, time.Now)
	if err != nil {
		logger.Errorf(ctx, "Failed to create token cache: %v", err)
		return
	}
	gateway := recognition.New(logger, visionClient, tokenCache, recognition.Config{
		Threshold: cfg.Recognition.Threshold,
		Extra:     cfg.Recognition.Extra,
	})

	keywordMatcher := matcher.New(cfg.Matcher.Synonyms)
	policy, err := matcher.ParsePolicy(cfg.Matcher.Policy, cfg.Matcher.RateThreshold)
	if err != nil {
		logger.Errorf(ctx, "Invalid match policy: %v", err)
		return
	}

	// 6. Verification controller
	var eventNotifier verification.Notifier
	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != 0 {
		eventNotifier = notifier.NewTelegram(logger, telegram.NewBot(cfg.Telegram.BotToken), cfg.Telegram.ChatID, cfg.Telegram.SendTimeout)
		logger.Info(ctx, "Telegram notifier initialized")
	} else {
		eventNotifier = notifier.NewLog(logger)
		logger.Warn(ctx, "Telegram notifier skipped: telegram.bot_token or telegram.chat_id is missing")
	}

	creds := recognition.Credentials{APIKey: cfg.Recognition.APIKey, SecretKey: cfg.Recognition.SecretKey}
	if !creds.Valid() {
		logger.Warn(ctx, "Recognition credentials missing: verification captures will fail closed")
	}

	verificationUseCase := verificationUC.New(
		logger,
		verification.RealClock(),
		taskRepo,
		gateway,
		keywordMatcher,
		settlementUseCase,
		verificationUC.Deps{
			Habits:    habit.New(logger),
			Notifier:  eventNotifier,
			OnStarted: startHook(logger, timelineUseCase),
		},
		verificationUC.Config{
			GraceWindow: cfg.Verification.GraceWindow,
			MaxAttempts: cfg.Verification.MaxAttempts,
			Policy:      policy,
			Credentials: creds,
			Location:    dateMathParser.Location(),
		},
	)
	defer verificationUseCase.Stop()

	go runTicker(ctx, logger, verificationUseCase, cfg.Verification.TickInterval)

	// 7. HTTP Server
	mw := middleware.New(logger, middleware.Config{
		AllowedOrigins:  cfg.RateLimit.AllowedOrigins,
		RateLimitPerMin: cfg.RateLimit.PerMin,
		RateLimitBurst:  cfg.RateLimit.Burst,
	})

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:              logger,
		Port:                cfg.HTTPServer.Port,
		Mode:                cfg.HTTPServer.Mode,
		Environment:         cfg.Environment.Name,
		ShutdownTimeout:     cfg.HTTPServer.ShutdownTimeout,
		Middleware:          mw,
		TimelineHandler:     timelineHTTP.New(logger, timelineUseCase),
		VerificationHandler: verificationHTTP.New(logger, verificationUseCase),
		SettlementHandler:   settlementHTTP.New(logger, settlementUseCase, coins),
		RecognitionHandler:  recognitionHTTP.New(logger, gateway, keywordMatcher, policy),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// runTicker drives window entry and timeouts until ctx is done.
func runTicker(ctx context.Context, l log.Logger, uc verification.UseCase, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			res, err := uc.Tick(ctx)
			if err != nil {
				l.Warnf(ctx, "verification tick failed: %v", err)
				continue
			}
			if res.Opened > 0 || res.TimedOut > 0 || res.Dropped > 0 {
				l.Debugf(ctx, "verification tick: %d opened, %d timed out, %d dropped", res.Opened, res.TimedOut, res.Dropped)
			}
		}
	}
}

// startHook feeds accepted start photos into conflict resolution.
func startHook(l log.Logger, uc timeline.UseCase) verification.StartHook {
	return func(ctx context.Context, taskID string, at time.Time) {
		out, err := uc.ChangeActualStart(ctx, timeline.ChangeActualStartInput{TaskID: taskID, ActualStart: at})
		if err != nil {
			l.Warnf(ctx, "timeline update after verified start of %s failed: %v", taskID, err)
			return
		}
		if len(out.Shifts) > 0 {
			l.Infof(ctx, "verified start of %s shifted %d task(s)", taskID, len(out.Shifts))
		}
	}
}

func openSettlementStore(ctx context.Context, cfg config.StorageConfig, l log.Logger) (settlementRepo.Repository, func(), error) {
	if cfg.Driver != "sqlite" {
		return settlementMemory.New(), func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create %s: %w", filepath.Dir(cfg.SQLitePath), err)
	}
	repo, db, err := settlementSQLite.Open(ctx, cfg.SQLitePath, l)
	if err != nil {
		return nil, nil, err
	}
	l.Infof(ctx, "Settlement store: sqlite at %s", cfg.SQLitePath)
	return repo, func() { db.Close() }, nil
}
