package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"

	"github.com/daehyun-b/tripwise/internal/handlers"
	"github.com/daehyun-b/tripwise/internal/jwt"
	"github.com/daehyun-b/tripwise/internal/logger"
	"github.com/daehyun-b/tripwise/internal/middlewares"
	"github.com/daehyun-b/tripwise/internal/repositories"
	"github.com/daehyun-b/tripwise/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config is the immutable process-wide configuration, loaded once at startup
// and passed explicitly to the components that need it.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	JWTSecretKey    string
	JWTAlgorithm    string
	TokenTTLMinutes int

	AllowedOrigins []string

	MigrationsDir string
}

// @title tripwise API
// @version 1.0.0
// @description Travel itinerary planner: users, trips and day-by-day itinerary items
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse config: %v\n", err)
		os.Exit(1)
	}

	if err := run(context.Background(), cfg); err != nil {
		fmt.Fprintf(os.Stderr, "application stopped with error: %v\n", err)
		os.Exit(1)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and builds the
// immutable configuration. A missing JWT secret or an unusable algorithm is
// fatal here rather than at request time.
func parseConfig(path string) (*config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	cfg := &config{
		AppHost:       getEnv("APP_HOST", "localhost"),
		AppPort:       getEnv("APP_PORT", "8080"),
		LogLevel:      getEnv("APP_LOG_LEVEL", "info"),
		PGHost:        getEnv("POSTGRES_HOST", "localhost"),
		PGUser:        getEnv("POSTGRES_USER", "user"),
		PGPassword:    getEnv("POSTGRES_PASSWORD", "password"),
		PGDB:          getEnv("POSTGRES_DB", "tripwise"),
		JWTSecretKey:  os.Getenv("JWT_SECRET_KEY"),
		JWTAlgorithm:  getEnv("JWT_ALGORITHM", "HS256"),
		MigrationsDir: getEnv("MIGRATIONS_DIR", "migrations"),
	}

	var err error
	if cfg.PGPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return nil, err
	}
	if cfg.PGMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return nil, err
	}
	if cfg.PGMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return nil, err
	}
	if cfg.TokenTTLMinutes, err = strconv.Atoi(getEnv("JWT_TTL_MINUTES", "15")); err != nil {
		return nil, err
	}

	if cfg.JWTSecretKey == "" {
		return nil, errors.New("JWT_SECRET_KEY is required")
	}

	for _, origin := range strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:5173"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
		}
	}

	return cfg, nil
}

// run initializes the logger, database and token service, wires the HTTP
// router, and handles graceful shutdown.
func run(ctx context.Context, cfg *config) error {
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer log.Sync()
	log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.PGHost, cfg.PGPort, cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		log.Errorw("PostgreSQL connection error", "error", err)
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		log.Errorw("PostgreSQL ping failed", "error", err)
		return err
	}

	if err := applyMigrations(db, cfg.MigrationsDir); err != nil {
		log.Errorw("migrations failed", "error", err)
		return err
	}

	// Initialize token service
	tokenTTL := time.Duration(cfg.TokenTTLMinutes) * time.Minute
	jwtSvc, err := jwt.New(cfg.JWTSecretKey, cfg.JWTAlgorithm, tokenTTL)
	if err != nil {
		log.Errorw("failed to initialize token service", "error", err)
		return err
	}

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	tripReadRepo := repositories.NewTripReadRepository(db)
	tripWriteRepo := repositories.NewTripWriteRepository(db)
	itemReadRepo := repositories.NewItemReadRepository(db)
	itemWriteRepo := repositories.NewItemWriteRepository(db)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwtSvc)
	tripService := services.NewTripService(tripReadRepo, tripWriteRepo, itemReadRepo)
	itemService := services.NewItemService(tripReadRepo, itemReadRepo, itemWriteRepo)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(log))
	r.Use(middlewares.CORSMiddleware(cfg.AllowedOrigins))

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Post("/auth/register", handlers.NewRegisterHandler(authService))
		r.Post("/auth/login", handlers.NewLoginHandler(authService))

		// Protected routes: every request re-resolves the acting user
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(jwtSvc, userReadRepo))

			r.Get("/users/me", handlers.NewMeHandler(tripService))

			r.Post("/trips", handlers.NewCreateTripHandler(tripService))
			r.Get("/trips", handlers.NewListTripsHandler(tripService))
			r.Get("/trips/{id}", handlers.NewGetTripHandler(tripService))
			r.Put("/trips/{id}", handlers.NewUpdateTripHandler(tripService))
			r.Delete("/trips/{id}", handlers.NewDeleteTripHandler(tripService))

			r.Post("/trips/{id}/items", handlers.NewCreateItemHandler(itemService))
			r.Put("/items/{id}", handlers.NewUpdateItemHandler(itemService))
			r.Delete("/items/{id}", handlers.NewDeleteItemHandler(itemService))
			r.Post("/items/reorder", handlers.NewReorderItemsHandler(itemService))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}

// applyMigrations runs every *.sql file in dir in lexical order, each inside
// its own transaction. A missing directory is not an error so the binary can
// run against an already-provisioned database.
func applyMigrations(db *sqlx.DB, dir string) error {
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return err
	}
	sort.Strings(files)

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return err
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(content)); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %s: %w", file, err)
		}
		if err := tx.Commit(); err != nil {
			return err
		}
		logger.Log.Infow("migration applied", "file", file)
	}
	return nil
}
