package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/sigles"
)

// ShutdownTimeout is the time given for outstanding requests to finish
// before the server is closed.
const ShutdownTimeout = 5 * time.Second

// Query parameter and usage hints of the lookup endpoints.
const (
	termParam    = "abreviation"
	usitoUsage   = "/recherche?abreviation=ONG"
	sourcesUsage = "/recherche/sources?abreviation=ONG"
)

// Server serves the lookup API over HTTP.
type Server struct {
	ln     net.Listener
	server *http.Server
	router *http.ServeMux

	// Addr is the bind address, e.g. ":8080". Set before Open.
	Addr string

	LookupService sigles.LookupService
	Logger        *slog.Logger
}

// NewServer returns a Server with its routes registered.
func NewServer(svc sigles.LookupService, logger *slog.Logger) *Server {
	s := &Server{
		router:        http.NewServeMux(),
		LookupService: svc,
		Logger:        logger,
	}

	s.router.HandleFunc("GET /{$}", s.handleIndex)
	s.router.HandleFunc("GET /health", s.handleHealth)
	s.router.HandleFunc("GET /recherche", s.handleLookupUsito)
	s.router.HandleFunc("GET /recherche/sources", s.handleLookupAll)

	s.server = &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// ServeHTTP wraps the router with request ids, logging and panic recovery.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID(logRequests(s.Logger, recovery(s.Logger, s.router))).ServeHTTP(w, r)
}

// Open binds Addr and starts serving in the background.
func (s *Server) Open() (err error) {
	if s.ln, err = net.Listen("tcp", s.Addr); err != nil {
		return err
	}
	go func() {
		if err := s.server.Serve(s.ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.Logger.Error("serve", "err", err)
		}
	}()
	return nil
}

// URL returns the base URL of the running server.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

// Close gracefully shuts the server down.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

type endpoint struct {
	Endpoint  string `json:"endpoint"`
	Method    string `json:"method"`
	Parameter string `json:"parameter"`
	Example   string `json:"example"`
}

type indexResponse struct {
	Message     string     `json:"message"`
	Description string     `json:"description"`
	Usage       []endpoint `json:"usage"`
	Sources     []string   `json:"sources"`
}

type healthResponse struct {
	Status string `json:"status"`
}

type usitoResponse struct {
	Success      bool           `json:"success"`
	Abbreviation string         `json:"abbreviation"`
	Record       *sigles.Record `json:"record"`
}

type sourcesResponse struct {
	Success      bool             `json:"success"`
	Abbreviation string           `json:"abbreviation"`
	Records      []*sigles.Record `json:"records"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Usage   string `json:"usage,omitempty"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	resp := indexResponse{
		Message:     "API de recherche d'abréviations",
		Description: "Recherche des sigles et acronymes dans Usito (Université de Sherbrooke), puis dans Abbreviations.com, Acronym Finder et All Acronyms.",
		Usage: []endpoint{
			{Endpoint: "/recherche", Method: http.MethodGet, Parameter: termParam, Example: usitoUsage},
			{Endpoint: "/recherche/sources", Method: http.MethodGet, Parameter: termParam, Example: sourcesUsage},
		},
	}
	for _, src := range sigles.Sources {
		resp.Sources = append(resp.Sources, string(src))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

func (s *Server) handleLookupUsito(w http.ResponseWriter, r *http.Request) {
	term := strings.TrimSpace(r.URL.Query().Get(termParam))
	if term == "" {
		writeMissingTerm(w, usitoUsage)
		return
	}

	rec, err := s.LookupService.LookupUsito(r.Context(), term)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, usitoResponse{
		Success:      true,
		Abbreviation: sigles.DisplayTerm(term),
		Record:       rec,
	})
}

func (s *Server) handleLookupAll(w http.ResponseWriter, r *http.Request) {
	term := strings.TrimSpace(r.URL.Query().Get(termParam))
	if term == "" {
		writeMissingTerm(w, sourcesUsage)
		return
	}

	result, err := s.LookupService.LookupAll(r.Context(), term)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sourcesResponse{
		Success:      true,
		Abbreviation: result.Term,
		Records:      result.Records,
	})
}

func writeMissingTerm(w http.ResponseWriter, usage string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{
		Error: "Paramètre 'abreviation' manquant",
		Usage: usage,
	})
}

// errorStatus maps error codes to HTTP status codes.
var errorStatus = map[string]int{
	sigles.EINVALID:     http.StatusBadRequest,
	sigles.ENOTFOUND:    http.StatusNotFound,
	sigles.EUNAVAILABLE: http.StatusBadGateway,
	sigles.EINTERNAL:    http.StatusInternalServerError,
}

// writeError writes err as JSON. Internal errors are logged and their
// details hidden from the client.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code, message := sigles.ErrorCode(err), sigles.ErrorMessage(err)
	if errors.Is(err, context.DeadlineExceeded) {
		code, message = sigles.EUNAVAILABLE, "Délai d'attente dépassé."
	}

	status, ok := errorStatus[code]
	if !ok {
		status = http.StatusInternalServerError
	}
	if status == http.StatusInternalServerError {
		s.Logger.ErrorContext(r.Context(), "lookup failed",
			"path", r.URL.Path,
			"request_id", RequestIDFromContext(r.Context()),
			"err", err,
		)
	}
	writeJSON(w, status, errorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
