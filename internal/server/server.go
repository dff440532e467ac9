package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/example/toklab/internal/config"
	"github.com/example/toklab/internal/text"
	"github.com/example/toklab/internal/tokenizer"
	"github.com/example/toklab/internal/vocab"
)

// ParseLogLevel converts a case-insensitive level string to slog.Level.
// An empty string returns slog.LevelInfo. Unknown strings return an error.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q (want debug|info|warn|error)", s)
	}
}

// Tokenizer is the engine surface the handler consumes.
type Tokenizer interface {
	Encode(text string) tokenizer.EncodeResult
	Decode(tokenIDs []int) tokenizer.DecodeResult
	Stats(text string) tokenizer.Stats
}

// VocabLister enumerates vocabulary entries.
type VocabLister interface {
	List(search string, includeASCII bool) []vocab.Entry
}

// ---------------------------------------------------------------------------
// Functional options
// ---------------------------------------------------------------------------

type options struct {
	maxTextBytes int
	logger       *slog.Logger
}

func defaultOptions() options {
	return options{
		maxTextBytes: 40960,
		logger:       slog.Default(),
	}
}

// Option configures the HTTP handler.
type Option func(*options)

// WithMaxTextBytes sets the maximum allowed text length in bytes for the
// encode and stats endpoints.
func WithMaxTextBytes(n int) Option {
	return func(o *options) { o.maxTextBytes = n }
}

// WithLogger sets the slog.Logger used for request logging.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// ---------------------------------------------------------------------------
// handler
// ---------------------------------------------------------------------------

// handler holds the dependencies needed to serve HTTP requests.
type handler struct {
	engine Tokenizer
	vocab  VocabLister
	opts   options
	log    *slog.Logger
}

// NewHandler returns an http.Handler serving /health, POST /encode,
// POST /decode, POST /stats, and GET /vocab.
func NewHandler(engine Tokenizer, vocabList VocabLister, optFns ...Option) http.Handler {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	h := &handler{
		engine: engine,
		vocab:  vocabList,
		opts:   opts,
		log:    opts.logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", h.handleHealth)
	mux.HandleFunc("/encode", h.handleEncode)
	mux.HandleFunc("/decode", h.handleDecode)
	mux.HandleFunc("/stats", h.handleStats)
	mux.HandleFunc("/vocab", h.handleVocab)
	return mux
}

func buildVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func (h *handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildVersion(),
	})
}

type textRequest struct {
	Text string `json:"text"`
}

// readTextRequest decodes and validates the shared {text} request body.
// It writes the error response itself and reports ok=false on failure.
func (h *handler) readTextRequest(w http.ResponseWriter, r *http.Request) (string, bool) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return "", false
	}

	var req textRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return "", false
	}

	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "text field is required")
		return "", false
	}

	if len(req.Text) > h.opts.maxTextBytes {
		writeError(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("text exceeds maximum size of %d bytes", h.opts.maxTextBytes))
		return "", false
	}

	return req.Text, true
}

func (h *handler) handleEncode(w http.ResponseWriter, r *http.Request) {
	input, ok := h.readTextRequest(w, r)
	if !ok {
		return
	}

	start := time.Now()
	result := h.engine.Encode(input)

	h.log.InfoContext(r.Context(), "encode complete",
		slog.Int("char_count", result.CharCount),
		slog.Int("token_count", result.TokenCount),
		slog.Int64("duration_us", time.Since(start).Microseconds()),
	)

	writeJSON(w, http.StatusOK, result)
}

type decodeRequest struct {
	// Tokens is the raw comma-separated form, e.g. "8, 2099, 2097".
	Tokens string `json:"tokens"`
	// TokenIDs is the pre-parsed form; it takes precedence when present.
	TokenIDs []int `json:"token_ids"`
}

func (h *handler) handleDecode(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req decodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	ids := req.TokenIDs
	if ids == nil {
		parsed, err := text.ParseTokenIDs(req.Tokens)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		ids = parsed
	} else {
		for i, id := range ids {
			if id < 0 {
				writeError(w, http.StatusBadRequest,
					fmt.Sprintf("token_ids[%d] = %d is negative", i, id))
				return
			}
		}
	}

	start := time.Now()
	result := h.engine.Decode(ids)

	h.log.InfoContext(r.Context(), "decode complete",
		slog.Int("token_count", len(ids)),
		slog.Int("text_len", len(result.Text)),
		slog.Int64("duration_us", time.Since(start).Microseconds()),
	)

	writeJSON(w, http.StatusOK, result)
}

func (h *handler) handleStats(w http.ResponseWriter, r *http.Request) {
	input, ok := h.readTextRequest(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, h.engine.Stats(input))
}

func (h *handler) handleVocab(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	q := r.URL.Query()
	includeASCII := false
	if raw := q.Get("ascii"); raw != "" {
		switch strings.ToLower(raw) {
		case "1", "true", "yes":
			includeASCII = true
		case "0", "false", "no":
			includeASCII = false
		default:
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid ascii parameter %q", raw))
			return
		}
	}

	writeJSON(w, http.StatusOK, h.vocab.List(q.Get("search"), includeASCII))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// ---------------------------------------------------------------------------
// Server — wires handler into net/http.Server with graceful shutdown
// ---------------------------------------------------------------------------

// Server wires the HTTP handler into a net/http.Server with graceful shutdown.
type Server struct {
	cfg             config.Config
	engine          *tokenizer.Engine
	shutdownTimeout time.Duration
}

func New(cfg config.Config, engine *tokenizer.Engine) *Server {
	return &Server{
		cfg:             cfg,
		engine:          engine,
		shutdownTimeout: 30 * time.Second,
	}
}

// WithShutdownTimeout overrides the graceful-shutdown drain period.
func (s *Server) WithShutdownTimeout(d time.Duration) *Server {
	s.shutdownTimeout = d
	return s
}

func (s *Server) Start(ctx context.Context) error {
	engine := s.engine
	if engine == nil {
		engine = tokenizer.NewDefault()
	}

	h := NewHandler(engine, vocab.Default(),
		WithMaxTextBytes(s.cfg.Server.MaxTextBytes),
	)

	httpServer := &http.Server{
		Addr:              s.cfg.Server.ListenAddr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http listen: %w", err)
	}
}

func ProbeHTTP(addr string) error {
	resp, err := http.Get("http://" + addr + "/health") //nolint:noctx
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected health status: %s", resp.Status)
	}
	return nil
}
