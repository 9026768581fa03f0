package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	discordclient "ruebydash/clients/discord"
	"ruebydash/config"
	"ruebydash/db"
	"ruebydash/handlers"
	"ruebydash/middleware"
	"ruebydash/services/antinuke"
	"ruebydash/services/discordguild"
	"ruebydash/services/guildsettings"
	"ruebydash/services/heat"
	"ruebydash/services/joingate"
	"ruebydash/services/logsrouting"
	panicsvc "ruebydash/services/panic"
	"ruebydash/services/permits"
	"ruebydash/services/txmanager"
	"ruebydash/services/users"
	"ruebydash/services/verification"
	"ruebydash/usecases/setup"
)

func main() {
	if err := run(); err != nil {
		log.Printf("❌ Fatal error: %v", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	// Initialize error alert middleware
	alertMiddleware := middleware.NewErrorAlertMiddleware(middleware.AlertConfig{
		WebhookURL:  cfg.AlertWebhookURL,
		Environment: cfg.Environment,
		AppName:     "ruebydash",
	})

	// Initialize database connection
	dbConn, err := db.NewConnection(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer dbConn.Close()

	// Initialize repositories with shared connection
	usersRepo := db.NewPostgresUsersRepository(dbConn, cfg.DatabaseSchema)
	guildSettingsRepo := db.NewPostgresGuildSettingsRepository(dbConn, cfg.DatabaseSchema)
	antiNukeRepo := db.NewPostgresAntiNukeLimitsRepository(dbConn, cfg.DatabaseSchema)
	joinGatesRepo := db.NewPostgresJoinGatesRepository(dbConn, cfg.DatabaseSchema)
	verificationRepo := db.NewPostgresVerificationSettingsRepository(dbConn, cfg.DatabaseSchema)
	heatConfigsRepo := db.NewPostgresHeatConfigsRepository(dbConn, cfg.DatabaseSchema)
	logsRoutingRepo := db.NewPostgresLogsRoutingRepository(dbConn, cfg.DatabaseSchema)
	permitsRepo := db.NewPostgresPermitsRepository(dbConn, cfg.DatabaseSchema)
	panicStatesRepo := db.NewPostgresPanicStatesRepository(dbConn, cfg.DatabaseSchema)

	// Initialize transaction manager
	txManager := txmanager.NewTransactionManager(dbConn)

	// Initialize Discord client
	discordClient := discordclient.NewDiscordClient(http.DefaultClient, cfg.DiscordConfig.BotToken)

	// Initialize services
	usersService := users.NewUsersService(usersRepo)
	guildSettingsService := guildsettings.NewGuildSettingsService(guildSettingsRepo)
	antiNukeService := antinuke.NewAntiNukeService(antiNukeRepo)
	joinGateService := joingate.NewJoinGateService(joinGatesRepo)
	verificationService := verification.NewVerificationService(verificationRepo, discordClient)
	heatService := heat.NewHeatService(heatConfigsRepo)
	logsRoutingService := logsrouting.NewLogsRoutingService(logsRoutingRepo)
	permitsService := permits.NewPermitsService(permitsRepo, txManager)
	panicService := panicsvc.NewPanicService(panicStatesRepo)
	discordGuildService := discordguild.NewDiscordGuildService(discordClient)

	setupUseCase := setup.NewSetupUseCase(
		txManager,
		guildSettingsService,
		verificationService,
		joinGateService,
		logsRoutingService,
		permitsService,
	)

	dashboardHandler := handlers.NewDashboardHTTPHandler(
		guildSettingsService,
		antiNukeService,
		joinGateService,
		verificationService,
		heatService,
		logsRoutingService,
		permitsService,
		panicService,
		discordGuildService,
		setupUseCase,
	)
	authMiddleware := middleware.NewClerkAuthMiddleware(usersService, cfg.ClerkConfig.SecretKey)

	// Create a new router
	router := mux.NewRouter()
	dashboardHandler.SetupEndpoints(router, authMiddleware)

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(`{"status":"ok"}`)); err != nil {
			log.Printf("❌ Failed to write health check response: %v", err)
		}
	}).Methods("GET")

	// Setup CORS middleware
	allowedOrigins := strings.Split(cfg.CORSAllowedOrigins, ",")
	for i, origin := range allowedOrigins {
		allowedOrigins[i] = strings.TrimSpace(origin)
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	// Setup and handle graceful shutdown
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           alertMiddleware.HTTPMiddleware(c.Handler(router)),
		ReadHeaderTimeout: 30 * time.Second,
	}

	return handleGracefulShutdown(server, alertMiddleware)
}

func handleGracefulShutdown(server *http.Server, alertMiddleware *middleware.ErrorAlertMiddleware) error {
	// Channel to listen for interrupt signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Start server in a goroutine, with listener failures alerted
	serve := alertMiddleware.WrapBackgroundTask("http server", func() error {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	go func() {
		log.Printf("✅ Listening on http://localhost%s", server.Addr)
		if err := serve(); err != nil {
			log.Printf("❌ Server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	<-stop
	log.Printf("🛑 Shutdown signal received, cleaning up...")

	// Create a deadline for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Shutdown server gracefully
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("❌ Server shutdown error: %v", err)
		return err
	}

	log.Printf("✅ Server stopped gracefully")
	return nil
}
