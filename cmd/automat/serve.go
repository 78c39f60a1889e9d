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

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	httpAdapter "github.com/aretw0/automat/internal/adapters/http"
	"github.com/aretw0/automat/internal/logging"
	"github.com/aretw0/automat/pkg/adapters/memory"
	"github.com/aretw0/automat/pkg/adapters/redis"
	"github.com/aretw0/automat/pkg/observability"
	"github.com/aretw0/automat/pkg/ports"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Starts the machine in server mode, exposing documentation, graph queries and persistent instances over a JSON API. Instances live in memory unless a Redis address is given.`,
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetString("port")
		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = ":" + port
		}
		redisAddr, _ := cmd.Flags().GetString("redis")
		ttl, _ := cmd.Flags().GetDuration("instance-ttl")
		debug, _ := cmd.Flags().GetBool("debug")

		level := slog.LevelInfo
		if debug {
			level = slog.LevelDebug
		}
		logger := logging.NewJSON(level)

		table, err := loadTable(cmd)
		if err != nil {
			fmt.Printf("Error loading machine: %v\n", err)
			os.Exit(1)
		}

		var store ports.SnapshotStore
		if redisAddr != "" {
			storeOpts := []redis.Option{}
			if ttl > 0 {
				storeOpts = append(storeOpts, redis.WithTTL(ttl))
			}
			store = redis.New(redisAddr, "", 0, storeOpts...)
			logger.Info("using redis snapshot store", "addr", redisAddr)
		} else {
			store = memory.NewStore()
			logger.Info("using in-memory snapshot store")
		}

		reg := prometheus.NewRegistry()
		metrics := observability.NewMetrics(reg)

		api := httpAdapter.NewHandler(table, store,
			httpAdapter.WithLogger(logger),
			httpAdapter.WithMetrics(metrics),
		)

		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		mux.Handle("/", api)

		srv := &http.Server{
			Addr:    addr,
			Handler: mux,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting Automat Server on %s\n", srv.Addr)
			fmt.Printf("Serving machine: %s\n", table.Name())
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			// Error when starting HTTP server.
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			// Asking listener to shut down and shed load.
			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("Automat Server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().String("addr", "", "Full listen address (overrides --port)")
	serveCmd.Flags().String("redis", "", "Redis address for instance persistence (e.g. localhost:6379)")
	serveCmd.Flags().Duration("instance-ttl", 0, "Expiry for persisted instances (Redis only, 0 keeps them forever)")
}
