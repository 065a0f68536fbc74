package commands

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/caesbrissa/visual-poker/internal/api/handlers"
	"github.com/caesbrissa/visual-poker/internal/api/middleware"
	"github.com/caesbrissa/visual-poker/internal/logger"
	"github.com/caesbrissa/visual-poker/internal/metrics"
	"github.com/caesbrissa/visual-poker/internal/pipeline"
	"github.com/caesbrissa/visual-poker/internal/poller"
	"github.com/caesbrissa/visual-poker/internal/sheets"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the poll loop and the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			log := logger.New(cfg.LogLevel)

			builder := pipeline.Builder{
				Schema: cfg.Sheet,
				Player: cfg.Player,
				Engine: metrics.Engine{MonthlyGoal: decimal.NewFromFloat(cfg.MonthlyGoal)},
			}

			ctx := context.Background()
			client, err := sheets.New(ctx, cfg, builder)
			if err != nil {
				return err
			}

			p := poller.New(client, cfg.PollInterval, cfg.FetchTimeout, log)

			pollCtx, cancelPoll := context.WithCancel(ctx)
			defer cancelPoll()
			go p.Run(pollCtx)

			snapshotHandler := handlers.NewSnapshotHandler(p, log)

			mux := http.NewServeMux()
			mux.HandleFunc("/api/snapshot", func(w http.ResponseWriter, r *http.Request) {
				if r.Method == http.MethodGet {
					snapshotHandler.GetSnapshot(w, r)
				} else {
					middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
				}
			})
			mux.HandleFunc("/api/sessions", func(w http.ResponseWriter, r *http.Request) {
				if r.Method == http.MethodGet {
					snapshotHandler.ListSessions(w, r)
				} else {
					middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
				}
			})
			mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
				middleware.WriteJSON(w, http.StatusOK, map[string]string{
					"status": "healthy",
					"time":   time.Now().Format(time.RFC3339),
				})
			})

			handler := middleware.Recovery(log)(
				middleware.Logger(log)(
					middleware.RequestID(
						middleware.CORS(mux),
					),
				),
			)

			server := &http.Server{
				Addr:         cfg.API.Addr,
				Handler:      handler,
				ReadTimeout:  15 * time.Second,
				WriteTimeout: 15 * time.Second,
				IdleTimeout:  60 * time.Second,
			}

			go func() {
				log.Info().Str("addr", cfg.API.Addr).Msg("Starting API server")
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Failed to start server")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			<-quit

			log.Info().Msg("Shutting down server...")
			cancelPoll()

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return err
			}

			log.Info().Msg("Server exited")
			return nil
		},
	}
}
