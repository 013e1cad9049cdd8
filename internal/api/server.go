package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"credcheck/internal/analyzer"
	"credcheck/internal/config"
	"credcheck/internal/domain"
	"credcheck/internal/monitoring"
	"credcheck/internal/storage"
)

// DocumentFetcher is the fetch/parse collaborator the handlers depend on.
// Kept small so tests can substitute a stub.
type DocumentFetcher interface {
	Fetch(ctx context.Context, rawURL string) (*domain.Document, error)
}

// Server holds the dependencies for the HTTP server.
type Server struct {
	config     *config.Config
	router     http.Handler
	httpServer *http.Server
	analyzer   *analyzer.Analyzer
	fetcher    DocumentFetcher
	redisStore *storage.RedisStore
	metrics    *monitoring.Metrics
	logger     *zap.Logger
}

func NewServer(cfg *config.Config, an *analyzer.Analyzer, f DocumentFetcher, rs *storage.RedisStore, m *monitoring.Metrics, l *zap.Logger) *Server {
	s := &Server{
		config:     cfg,
		analyzer:   an,
		fetcher:    f,
		redisStore: rs,
		metrics:    m,
		logger:     l,
	}
	s.router = s.setupRouter()
	return s
}

func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%s", s.config.ServerPort),
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
