package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"

	"sport-academy/internal/auth"
	"sport-academy/internal/config"
	"sport-academy/internal/handlers"
	"sport-academy/internal/mockdata"
	"sport-academy/internal/models"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// Generate the in-memory data set once; it is read-only from here on
	reference := cfg.Reference()
	gen := mockdata.New(cfg.MockSeed, reference)
	gen.FillerStudents = cfg.FillerStudents
	data := gen.Generate()
	if problems := mockdata.CheckConsistency(data, reference); len(problems) > 0 {
		logger.Warn("generated data set is inconsistent", zap.Strings("problems", problems))
	}
	store := models.NewStore(data)

	logger.Info("data set generated",
		zap.String("reference_date", reference.Format(config.DateLayout)),
		zap.Int64("seed", cfg.MockSeed),
		zap.Int("students", len(data.Students)),
		zap.Int("payments", len(data.Payments)),
		zap.Int("events", len(data.Events)),
	)

	handlers.SetLogger(logger)
	// Initialize templates early to catch any errors at startup
	handlers.InitTemplates()

	router := handlers.NewRouter(&handlers.Env{
		Config:    cfg,
		Repo:      store,
		Sessions:  auth.NewSessions(store),
		Logger:    logger,
		Reference: reference,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	logger.Info(fmt.Sprintf("Server starting on http://localhost:%s", cfg.Port))
	logger.Info("Default admin login: admin / admin")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server stopped", zap.Error(err))
		os.Exit(1)
	}
}
