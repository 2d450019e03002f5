package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"money-transfers/internal/config"
	"money-transfers/internal/handler"
	"money-transfers/internal/ledger"
	"money-transfers/internal/service"
	"money-transfers/internal/validator"
	"money-transfers/internal/worker"
)

// Server represents the HTTP server and the transfer-processing pool behind
// it.
type Server struct {
	router *mux.Router
	server *http.Server
	pool   *worker.Pool
	logger *slog.Logger
	port   string
}

// NewServer wires the in-memory core and mounts the HTTP API on it.
func NewServer(cfg *config.Config, logger *slog.Logger) *Server {
	balanceValidator := validator.NewNonNegativeBalance()

	registry := ledger.NewRegistry()
	pool := worker.NewPool(cfg.MinWorkers, cfg.MaxWorkers, cfg.WorkerIdleTimeout, logger)

	accountService := service.NewAccountService(registry, balanceValidator, logger)
	transferService := service.NewTransferService(registry, pool, balanceValidator, logger)

	accountHandler := handler.NewAccountHandler(accountService)
	transferHandler := handler.NewTransferHandler(
		transferService, validator.NewTransferAmount(), service.UUIDGenerator{})

	router := mux.NewRouter()

	// Add middleware for logging
	router.Use(loggingMiddleware(logger))

	api := router.PathPrefix("/v1").Subrouter()

	// Account routes
	api.HandleFunc("/accounts", accountHandler.CreateAccount).Methods("POST")
	api.HandleFunc("/accounts", accountHandler.ListAccounts).Methods("GET")
	api.HandleFunc("/accounts/{account_id}", accountHandler.GetAccount).Methods("GET")

	// Transfer routes
	api.HandleFunc("/transfers", transferHandler.SubmitTransfer).Methods("POST")
	api.HandleFunc("/transfers", transferHandler.ListTransfers).Methods("GET")
	api.HandleFunc("/transfers/{transfer_id}", transferHandler.GetTransfer).Methods("GET")

	// Health check
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}).Methods("GET")

	return &Server{
		router: router,
		pool:   pool,
		logger: logger,
	}
}

// loggingMiddleware adds request logging
func loggingMiddleware(logger *slog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Create response wrapper to capture status code
			ww := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(ww, r)

			logger.Info("request completed",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.statusCode,
				"duration", time.Since(start),
				"user_agent", r.UserAgent(),
			)
		})
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Start starts the HTTP server on the specified port. Port "0" picks a free
// port, which tests rely on.
func (s *Server) Start(port string) (string, error) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return "", err
	}

	addr := listener.Addr().(*net.TCPAddr)
	s.port = strconv.Itoa(addr.Port)

	s.server = &http.Server{
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	if s.logger != nil {
		s.logger.Info("Starting server", "port", s.port)
	}

	go func() {
		if err := s.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			if s.logger != nil {
				s.logger.Error("Server failed to start", "error", err)
			}
		}
	}()

	return s.port, nil
}

// Stop gracefully shuts down the server: first the HTTP listener so no new
// transfers arrive, then the worker pool so queued transfers finish.
func (s *Server) Stop(ctx context.Context) error {
	if s.logger != nil {
		s.logger.Info("Shutting down server")
	}

	if s.server != nil {
		if err := s.server.Shutdown(ctx); err != nil {
			return err
		}
	}

	if s.pool != nil {
		return s.pool.Stop(ctx)
	}
	return nil
}

// GetPort returns the port the server is listening on
func (s *Server) GetPort() string {
	return s.port
}

// GetBaseURL returns the base URL for the server
func (s *Server) GetBaseURL() string {
	return "http://localhost:" + s.port
}

// GetRouter returns the router for testing purposes
func (s *Server) GetRouter() *mux.Router {
	return s.router
}

// StartServer starts the server with the given configuration
func StartServer(cfg *config.Config) (*Server, string, error) {
	// Use a discard logger when running on an ephemeral test port
	var logger *slog.Logger
	if cfg.ServerPort == "0" {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	} else {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}

	server := NewServer(cfg, logger)

	port, err := server.Start(cfg.ServerPort)
	if err != nil {
		return nil, "", err
	}

	return server, port, nil
}
