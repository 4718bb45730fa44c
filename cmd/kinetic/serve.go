package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/avezina/kinetic/internal/config"
	"github.com/avezina/kinetic/internal/logging"
	"github.com/avezina/kinetic/internal/scenario"
	httpAdapter "github.com/avezina/kinetic/pkg/adapters/http"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the debug HTTP server",
	Long:  `Starts the Kinetic engine in server mode, exposing node state, recorded timelines and metrics over a JSON API.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfgPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(cfgPath)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}
		if addr, _ := cmd.Flags().GetString("listen"); addr != "" {
			cfg.Listen = addr
		}

		engine, _, reg := buildEngine(cfg)

		// Optionally seed the engine so the API has something to show.
		if path, _ := cmd.Flags().GetString("scenario"); path != "" {
			sc, err := scenario.Load(path)
			if err != nil {
				fmt.Printf("Error loading scenario: %v\n", err)
				os.Exit(1)
			}
			if err := scenario.Run(engine, sc); err != nil {
				fmt.Printf("Error running scenario: %v\n", err)
				os.Exit(1)
			}
		}

		handler := httpAdapter.NewHandler(engine,
			httpAdapter.WithGatherer(reg),
			httpAdapter.WithLogger(logging.New(slog.LevelInfo)),
		)

		srv := &http.Server{
			Addr:    cfg.Listen,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting Kinetic Server on %s\n", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("Kinetic Server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("listen", "l", "", "Listen address (overrides config)")
	serveCmd.Flags().String("scenario", "", "Scenario file to run before serving")
}
