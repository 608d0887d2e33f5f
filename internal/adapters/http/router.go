package httpadapter

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/civiai/planning-analyzer/internal/config"
	"github.com/civiai/planning-analyzer/internal/core/ports"
	"github.com/civiai/planning-analyzer/internal/observability/metrics"
)

const serviceName = "api"

type Router struct {
	analyzeUC ports.DocumentAnalyzer
	submitUC  ports.DocumentSubmitter
	storage   ports.ObjectStorage
	metrics   *metrics.HTTPServerMetrics
}

// NewRouter wires the HTTP surface. metrics may be nil, which disables
// request and analysis instrumentation.
func NewRouter(
	analyzeUC ports.DocumentAnalyzer,
	submitUC ports.DocumentSubmitter,
	storage ports.ObjectStorage,
	m *metrics.HTTPServerMetrics,
) *Router {
	return &Router{
		analyzeUC: analyzeUC,
		submitUC:  submitUC,
		storage:   storage,
		metrics:   m,
	}
}

func (rt *Router) Handler(cfg config.Config) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", rt.healthz)
	mux.HandleFunc("/v1/analyze", rt.analyzeText)
	mux.HandleFunc("/v1/documents", rt.uploadDocument)
	mux.HandleFunc("/v1/documents/", rt.getAnalysis)
	if rt.metrics != nil {
		mux.Handle("/metrics", rt.metrics.Handler())
	}

	var handler http.Handler = mux
	if cfg.APIMaxConcurrent > 0 {
		handler = backpressureMiddleware(handler, cfg.APIMaxConcurrent, 50*time.Millisecond)
	}
	if cfg.APIRateLimitRPS > 0 {
		handler = rateLimitMiddleware(handler, cfg.APIRateLimitRPS, cfg.APIRateLimitBurst)
	}
	if rt.metrics != nil {
		handler = rt.metrics.Middleware(serviceName, handler)
	}
	return requestIDMiddleware(accessLogMiddleware(handler))
}

func (rt *Router) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (rt *Router) analyzeText(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	var req struct {
		Text     string              `json:"text"`
		Entities map[string][]string `json:"entities"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	start := time.Now()
	result, err := rt.analyzeUC.Analyze(r.Context(), req.Text, req.Entities)
	if err != nil {
		writeJSON(w, mapErrorToHTTPStatus(err), map[string]string{"error": err.Error()})
		return
	}
	rt.recordAnalysis(string(result.DocumentType), result.ComplianceScore, len(result.MissingRequirements), time.Since(start))

	writeJSON(w, http.StatusOK, result)
}

func (rt *Router) uploadDocument(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "multipart field 'file' is required"})
		return
	}
	defer file.Close()

	storageKey, err := rt.submitUC.Store(r.Context(), fileHeader.Filename, file)
	if err != nil {
		writeJSON(w, mapErrorToHTTPStatus(err), map[string]string{"error": err.Error()})
		return
	}

	if r.URL.Query().Get("async") == "1" {
		if err := rt.submitUC.Enqueue(r.Context(), storageKey); err != nil {
			writeJSON(w, mapErrorToHTTPStatus(err), map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusAccepted, map[string]string{"storage_key": storageKey})
		return
	}

	start := time.Now()
	result, err := rt.submitUC.AnalyzeStored(r.Context(), storageKey)
	if err != nil {
		writeJSON(w, mapErrorToHTTPStatus(err), map[string]string{"error": err.Error()})
		return
	}
	rt.recordAnalysis(string(result.DocumentType), result.ComplianceScore, len(result.MissingRequirements), time.Since(start))

	writeJSON(w, http.StatusOK, map[string]any{
		"storage_key": storageKey,
		"analysis":    result,
	})
}

// getAnalysis serves the analysis artifact written by the worker for
// documents submitted asynchronously.
func (rt *Router) getAnalysis(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/v1/documents/")
	storageKey, ok := strings.CutSuffix(rest, "/analysis")
	if !ok || storageKey == "" {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}

	artifact, err := rt.storage.Open(r.Context(), storageKey+".analysis.json")
	if err != nil {
		writeJSON(w, mapErrorToHTTPStatus(err), map[string]string{"error": err.Error()})
		return
	}
	defer artifact.Close()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = io.Copy(w, artifact)
}

func (rt *Router) recordAnalysis(documentType string, score float64, missing int, duration time.Duration) {
	if rt.metrics == nil {
		return
	}
	rt.metrics.RecordAnalysis(serviceName, documentType, score, missing, duration)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
