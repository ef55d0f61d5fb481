package main

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/avikamggh/ai-interviewer/api/http"
	"github.com/avikamggh/ai-interviewer/api/http/handlers"
	"github.com/avikamggh/ai-interviewer/api/ws"
	"github.com/avikamggh/ai-interviewer/pkg/config"
	"github.com/avikamggh/ai-interviewer/pkg/health"
	"github.com/avikamggh/ai-interviewer/pkg/health/checkers"
	"github.com/avikamggh/ai-interviewer/pkg/interview"
	"github.com/avikamggh/ai-interviewer/pkg/logger"
	"github.com/avikamggh/ai-interviewer/pkg/questions"
	"github.com/avikamggh/ai-interviewer/pkg/resume"
	"github.com/avikamggh/ai-interviewer/pkg/security/token"
)

func main() {
	// Load configuration from env/.env
	cfg := config.Load()

	zlog, err := logger.New(cfg.LogJSON, cfg.LogDebug)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zlog.Sync()

	// Catalog holes are deployment errors; refuse to start on them.
	if err := questions.Validate(); err != nil {
		zlog.Fatal("question catalog invalid", zap.Error(err))
	}

	app := fiber.New()

	// Request logging
	app.Use(func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		zlog.Info("http",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
		)
		return err
	})

	// Wire dependencies
	store := resume.NewStore(time.Duration(cfg.AnalysisTTLMinutes) * time.Minute)
	tokens := token.NewManager(cfg.TokenSecret, cfg.TokenIssuer, time.Duration(cfg.TokenTTLMinutes)*time.Minute)
	registry := interview.NewRegistry()
	acks := interview.NewAckPicker(rand.NewSource(time.Now().UnixNano()))
	selectOpts := questions.Options{Cap: cfg.QuestionCap, AllowRepeats: cfg.QuestionAllowRepeats}

	readiness := health.NewService(checkers.NewCatalogChecker())
	healthHandler := handlers.NewHealthHandler(readiness)
	interviewHandler := handlers.NewInterviewHandler(store, tokens, selectOpts, cfg.MaxUploadMB, zlog)
	socketHandler := ws.NewHandler(registry, store, tokens, acks, zlog)

	http.Register(app, healthHandler, interviewHandler, socketHandler)

	// Expire stale analyses in the background.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go store.Sweep(ctx, time.Minute)

	zlog.Info("server listening", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
