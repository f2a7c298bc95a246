package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/diewo77/vendor-tracker/internal/config"
	"github.com/diewo77/vendor-tracker/internal/db"
	"github.com/diewo77/vendor-tracker/internal/server"
)

var rootCmd = &cobra.Command{
	Use:           "vendor-tracker",
	Short:         "Vendor/client tracker API for staffing operations",
	SilenceUsage:  true,
	SilenceErrors: false,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		dbConn, err := db.ConnectAndMigrate(cfg)
		if err != nil {
			return err
		}

		srv := &http.Server{
			Addr:         ":" + cfg.Port,
			Handler:      server.New(dbConn),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		}

		go func() {
			log.Printf("server starting on port %s (env=%s)", cfg.Port, cfg.Env)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Fatalf("server error: %v", err)
			}
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("shutdown signal received")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("error during shutdown: %v", err)
		}
		log.Println("server stopped gracefully")
		return nil
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run SQL migrations and exit (postgres DSN required)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if err := db.RunSQLMigrations(cfg.DatabaseDSN); err != nil {
			return err
		}
		log.Println("migrations completed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}
