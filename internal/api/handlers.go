package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"credcheck/internal/domain"
)

type analyzeResponse struct {
	Success bool `json:"success"`
	*domain.AnalysisResult
}

type errorResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url,omitempty"`
	Error   string `json:"error"`
}

type batchResponse struct {
	Success bool  `json:"success"`
	Results []any `json:"results"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req domain.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	rawURL := strings.TrimSpace(req.URL)
	if rawURL == "" {
		s.respondWithError(w, http.StatusBadRequest, "URL is required")
		return
	}
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		s.respondWithError(w, http.StatusBadRequest, "Invalid URL format. URL must start with http:// or https://")
		return
	}

	doc, err := s.fetchDocument(r.Context(), rawURL)
	if err != nil {
		s.metrics.IncFetchErrors("fetch_failed")
		s.logger.Warn("fetch failed", zap.String("url", rawURL), zap.Error(err))
		s.respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	result := s.analyzer.Analyze(doc)
	s.metrics.IncAnalyzed(string(result.Warning.Level))
	s.logger.Info("analysis complete",
		zap.String("url", rawURL),
		zap.Int("credibility_score", result.CredibilityScore),
		zap.String("warning_level", string(result.Warning.Level)),
	)

	s.respondWithJSON(w, http.StatusOK, analyzeResponse{Success: true, AnalysisResult: result})
}

func (s *Server) handleBatchAnalyze(w http.ResponseWriter, r *http.Request) {
	var req domain.BatchAnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if len(req.URLs) == 0 {
		s.respondWithError(w, http.StatusBadRequest, "URLs must be a non-empty array")
		return
	}
	// Size check happens before any fetch or analysis starts.
	if len(req.URLs) > s.analyzer.MaxBatchSize() {
		s.respondWithError(w, http.StatusBadRequest,
			fmt.Sprintf("maximum %d URLs allowed per batch", s.analyzer.MaxBatchSize()))
		return
	}

	outcomes := s.fetchBatch(r.Context(), req.URLs)

	items, err := s.analyzer.AnalyzeBatch(outcomes)
	if err != nil {
		s.respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	results := make([]any, len(items))
	for i, item := range items {
		if item.Err != nil {
			results[i] = errorResponse{Success: false, URL: item.Err.URL, Error: item.Err.Message}
			continue
		}
		s.metrics.IncAnalyzed(string(item.Result.Warning.Level))
		results[i] = analyzeResponse{Success: true, AnalysisResult: item.Result}
	}

	s.respondWithJSON(w, http.StatusOK, batchResponse{Success: true, Results: results})
}

// fetchBatch fetches every URL concurrently, keeping slot order. A failed
// fetch fills its own slot and leaves the rest alone.
func (s *Server) fetchBatch(ctx context.Context, urls []string) []domain.FetchOutcome {
	outcomes := make([]domain.FetchOutcome, len(urls))

	var wg sync.WaitGroup
	for i, rawURL := range urls {
		wg.Add(1)
		go func(i int, rawURL string) {
			defer wg.Done()
			rawURL = strings.TrimSpace(rawURL)
			doc, err := s.fetchDocument(ctx, rawURL)
			if err != nil {
				s.metrics.IncFetchErrors("batch_fetch_failed")
				outcomes[i] = domain.FetchOutcome{URL: rawURL, Err: err}
				return
			}
			outcomes[i] = domain.FetchOutcome{URL: rawURL, Doc: doc}
		}(i, rawURL)
	}
	wg.Wait()

	return outcomes
}

func (s *Server) fetchDocument(ctx context.Context, rawURL string) (*domain.Document, error) {
	start := time.Now()
	doc, err := s.fetcher.Fetch(ctx, rawURL)
	s.metrics.ObserveFetchDuration(time.Since(start).Seconds())
	return doc, err
}

func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	healthStatus := map[string]string{"service": "healthy"}

	if err := s.redisStore.Ping(ctx); err != nil {
		healthStatus["redis"] = "unhealthy"
		s.logger.Error("health check failed for redis", zap.Error(err))
		s.respondWithJSON(w, http.StatusServiceUnavailable, healthStatus)
		return
	}
	healthStatus["redis"] = "healthy"

	s.respondWithJSON(w, http.StatusOK, healthStatus)
}

// --- Helper Functions ---

func (s *Server) respondWithError(w http.ResponseWriter, code int, message string) {
	s.respondWithJSON(w, code, errorResponse{Success: false, Error: message})
}

func (s *Server) respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
