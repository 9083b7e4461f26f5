package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/network/netpoll"
	"github.com/spf13/cobra"

	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/config"
	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/handler"
	infradb "github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/infrastructure/database"
	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/infrastructure/gemini"
	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/router"
	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/usecase"
	dbpkg "github.com/thecustomsoundarchitect/soulliftaudiov-7/pkg/database"
	"github.com/thecustomsoundarchitect/soulliftaudiov-7/pkg/logger"
)

var (
	cfgFile string
	version = "0.1.0"
)

var rootCmd = &cobra.Command{
	Use:   "soulhug-server",
	Short: "Soul Hug API server for crafting personalized emotional messages",
	Long: `Soul Hug API server is an HTTP service built with the Hertz framework.
It guides a sender through a staged creative flow, composes heartfelt messages
with AI assistance, and meters the paid operations with a credit ledger.`,
	Version: version,
	Run:     runServer,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "configs/config.yaml", "path to config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func runServer(cmd *cobra.Command, args []string) {
	// Load configuration
	cfg, err := config.Load(cfgFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Setup(cfg.Log); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	slog.Info("Soul Hug server starting...",
		"version", version,
		"config", cfgFile,
	)

	// Setup Hertz to use slog
	hertzLogger := logger.NewHertzSlogAdapter(slog.Default())
	hlog.SetLogger(hertzLogger)
	if cfg.Server.Mode == "debug" {
		hlog.SetLevel(hlog.LevelDebug)
	} else {
		hlog.SetLevel(hlog.LevelInfo)
	}

	// Initialize database
	dbClient, err := dbpkg.NewClient(cfg.Database, slog.Default())
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer dbpkg.Close(dbClient, slog.Default())

	slog.Info("database ready", "path", cfg.Database.Path)

	// Generation backend. Without an API key the server still runs; the
	// composition operations serve their deterministic fallbacks.
	generation := gemini.NewClient(cfg.Generation, slog.Default())
	if !generation.Configured() {
		slog.Warn("generation backend not configured, serving fallback content")
	}

	// Repositories
	sessionRepo := infradb.NewSessionRepository(dbClient)
	creditRepo := infradb.NewCreditRepository(dbClient, cfg.Credits.StartingGrant)

	// Usecases
	hugUsecase := usecase.NewHugUsecase(generation, creditRepo, cfg.Credits, slog.Default())
	sessionUsecase := usecase.NewSessionUsecase(sessionRepo, cfg.Session, slog.Default())
	flowUsecase := usecase.NewFlowUsecase(sessionUsecase, hugUsecase, slog.Default())
	creditUsecase := usecase.NewCreditUsecase(creditRepo, slog.Default())

	// Handlers
	sessionHandler := handler.NewSessionHandler(sessionUsecase, flowUsecase, slog.Default())
	hugHandler := handler.NewHugHandler(hugUsecase, slog.Default())
	creditHandler := handler.NewCreditHandler(creditUsecase, slog.Default())
	healthHandler := handler.NewHealthHandler(dbClient, slog.Default())

	// Create Hertz server
	h := server.Default(
		server.WithHostPorts(cfg.GetServerAddr()),
		server.WithReadTimeout(cfg.Server.ReadTimeout),
		server.WithWriteTimeout(cfg.Server.WriteTimeout),
		server.WithMaxRequestBodySize(cfg.Server.MaxRequestBodySize),
		server.WithTransport(netpoll.NewTransporter),
	)

	// Setup routes
	router.Setup(h, sessionHandler, hugHandler, creditHandler, healthHandler)

	slog.Info("server started",
		"address", cfg.GetServerAddr(),
		"mode", cfg.Server.Mode,
	)

	go func() {
		if err := h.Run(); err != nil {
			slog.Error("server run failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := h.Shutdown(ctx); err != nil {
		slog.Error("server shutdown failed", "error", err)
		os.Exit(1)
	}

	slog.Info("server exited")
}
