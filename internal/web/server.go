package web

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/rpgo/growth-calculator/internal/calculation"
	"github.com/rpgo/growth-calculator/internal/domain"
	"github.com/rpgo/growth-calculator/internal/output"
)

// Server serves the interactive comparison page.
type Server struct {
	http.Server
	engine   *calculation.CalculationEngine
	logger   *slog.Logger
	currency string
}

// NewServer configures routes, returning a ready-to-run http.Server.
func NewServer(addr string, engine *calculation.CalculationEngine, logger *slog.Logger, code string) *Server {
	if engine == nil {
		engine = calculation.NewCalculationEngine()
	}
	if logger == nil {
		logger = slog.Default()
	}
	if code == "" {
		code = domain.DefaultCurrency
	}

	mux := http.NewServeMux()
	s := &Server{
		Server: http.Server{
			Addr:    addr,
			Handler: mux,
		},
		engine:   engine,
		logger:   logger,
		currency: code,
	}

	mux.HandleFunc("/", s.withRequestLogging(s.handleIndex))
	mux.HandleFunc("/healthz", handleHealth)
	return s
}

// Render runs every scenario in st and writes the full page: the form followed by the comparison.
func (s *Server) Render(w io.Writer, st State) error {
	cmp, err := s.engine.RunScenarios(&domain.Configuration{
		Title:     st.Title,
		Currency:  st.Currency,
		Scenarios: st.Inputs,
	})
	if err != nil {
		return err
	}

	form, err := renderForm(st)
	if err != nil {
		return fmt.Errorf("render form: %w", err)
	}

	page, err := output.HTMLFormatter{Prelude: form}.Format(cmp)
	if err != nil {
		return err
	}
	_, err = w.Write(page)
	return err
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query()
	st := DefaultState(s.currency)
	if _, submitted := query["principal"]; submitted {
		st = ParseState(query, s.currency)
	}

	// buffer so a failed render can still become a 500
	var buf bytes.Buffer
	if err := s.Render(&buf, st); err != nil {
		s.logger.ErrorContext(r.Context(), "Failed rendering page", "error", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// withRequestLogging adds security headers and logs each request with its status and duration.
func (s *Server) withRequestLogging(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := generateRequestID()

		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "default-src 'self'; script-src 'self' https://cdn.jsdelivr.net 'unsafe-inline'; style-src 'self' 'unsafe-inline'")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next(rw, r)

		s.logger.InfoContext(r.Context(), "Request completed",
			"request_id", requestID,
			"method", r.Method,
			"url", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", time.Since(start).Milliseconds())
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func generateRequestID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("req_%d", time.Now().UnixNano())
	}
	return "req_" + hex.EncodeToString(b)
}
