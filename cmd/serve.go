package main

import (
	"fmt"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/bough38-web/haeji-voc-dashboard-sub000/internal/auth"
	"github.com/bough38-web/haeji-voc-dashboard-sub000/internal/ingest"
	"github.com/bough38-web/haeji-voc-dashboard-sub000/internal/ledger"
	"github.com/bough38-web/haeji-voc-dashboard-sub000/internal/model"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		loader, err := initLoader(cfg)
		if err != nil {
			return err
		}

		snap, err := loader.Load(ctx)
		if err != nil {
			return err
		}

		led, err := initLedger(ctx, cfg)
		if err != nil {
			return err
		}
		defer led.Close()

		perMin := cfg.Auth.LoginRatePerMin
		if perMin <= 0 {
			perMin = 10
		}

		srv := &apiServer{
			loader:     loader,
			snapshot:   snap,
			ledger:     led,
			resolver:   initAuth(cfg),
			sessions:   make(map[string]model.Identity),
			loginLimit: rate.NewLimiter(rate.Limit(float64(perMin)/60.0), perMin),
		}

		httpSrv := &http.Server{
			Addr:    fmt.Sprintf(":%d", serverPort()),
			Handler: srv.routes(),
		}

		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			httpSrv.Shutdown(ctx)
		}()

		zap.L().Info("starting server", zap.Int("port", serverPort()))
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

func serverPort() int {
	if servePort != 0 {
		return servePort
	}
	return cfg.Server.Port
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}

// apiServer holds the request-scoped engine's shared collaborators: the
// loaded snapshot (read-mostly), the ledger, and the session table.
type apiServer struct {
	loader   *ingest.Loader
	ledger   ledger.Ledger
	resolver *auth.Resolver

	mu       sync.RWMutex
	snapshot *ingest.Snapshot
	sessions map[string]model.Identity

	loginLimit *rate.Limiter
}

func (s *apiServer) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	r.Get("/health", s.handleHealth)
	r.Post("/api/login", s.handleLogin)

	r.Group(func(r chi.Router) {
		r.Use(s.requireIdentity)
		r.Get("/api/records", s.handleRecords)
		r.Get("/api/records/outstanding", s.handleOutstanding)
		r.Get("/api/kpi", s.handleKPI)
		r.Get("/api/branches", s.handleBranches)
		r.Post("/api/feedback", s.handleFeedbackAppend)
		r.Get("/api/feedback/{contractID}", s.handleFeedbackList)
		r.Post("/api/reload", s.handleReload)
	})

	return r
}

func (s *apiServer) currentSnapshot() *ingest.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}
