package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"daily_diet/internal/handlers"
	"daily_diet/internal/logger"
	"daily_diet/internal/repository"
	"daily_diet/internal/repository/db"
	"daily_diet/internal/server"
	"daily_diet/internal/service"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// @title                      Daily Diet API
// @version                    1.0
// @description                Meal logging with per-user diet adherence stats.
// @BasePath                   /
// @securityDefinitions.apikey SessionCookie
// @in                         cookie
// @name                       session
func main() {
	// .env is optional
	_ = godotenv.Load()

	if err := loadConfig(); err != nil {
		logger.Get(logger.InfoLevel, logger.FormatConsole).Fatalw("error reading config", "err", err)
	}

	// init logger
	log := logger.Get(viper.GetString("log.level"), viper.GetString("log.format"))

	secret := viper.GetString("session.secret")
	if secret == "" {
		log.Fatalw("session.secret is not set (DIET_SESSION_SECRET)")
	}

	// open DB
	conn, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	ttl := viper.GetDuration("session.ttl")
	repos := repository.NewRepository(conn)
	services := service.NewService(repos, service.Config{
		SessionSecret: secret,
		SessionTTL:    ttl,
	}, log)
	apiHandler := handlers.NewHandler(services, log, handlers.Config{
		CookieName:     viper.GetString("session.cookie_name"),
		CookieSecure:   viper.GetBool("session.secure"),
		SessionTTL:     ttl,
		AllowedOrigins: viper.GetStringSlice("cors.allowed_origins"),
	})

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go services.Janitor.Run(ctx, viper.GetDuration("session.cleanup_interval"))

	// start HTTP server
	srv := server.New(server.Config{})
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(cancel, srv, log)
}

func loadConfig() error {
	viper.SetDefault("port", "8080")
	viper.SetDefault("db.path", "diet.db")
	viper.SetDefault("log.level", logger.InfoLevel)
	viper.SetDefault("log.format", logger.FormatConsole)
	viper.SetDefault("session.ttl", 24*time.Hour)
	viper.SetDefault("session.cookie_name", "session")
	viper.SetDefault("session.cleanup_interval", 10*time.Minute)

	viper.SetEnvPrefix("DIET")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	return nil
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	log.Infow("opening sqlite", "path", dbPath)
	return db.InitDB(dbPath)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		log.Infow("http server listening", "port", port)
		if err := srv.Run(port, handler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop background goroutines
	cancel()

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
