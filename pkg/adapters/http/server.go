package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/extrude"
	"github.com/aretw0/extrude/pkg/domain"
	"github.com/aretw0/extrude/pkg/geom"
	"github.com/aretw0/extrude/pkg/ports"
	"github.com/aretw0/extrude/pkg/schema"
	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

// maxBodyBytes bounds generate request bodies.
const maxBodyBytes = 1 << 20

// Server serves the extrude engine over HTTP.
type Server struct {
	Engine  ports.Engine
	Streams *StreamManager
	Logger  *slog.Logger
	Metrics http.Handler
}

// Option configures the handler.
type Option func(*Server)

// WithStreams enables GET /events. Register the manager's Hooks on the
// engine so finished runs reach subscribers.
func WithStreams(sm *StreamManager) Option {
	return func(s *Server) {
		s.Streams = sm
	}
}

// WithLogger sets the request failure logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// WithMetrics mounts a metrics handler (usually promhttp) at /metrics.
func WithMetrics(h http.Handler) Option {
	return func(s *Server) {
		s.Metrics = h
	}
}

// NewHandler creates a new HTTP handler for the engine.
func NewHandler(engine ports.Engine, opts ...Option) http.Handler {
	server := &Server{Engine: engine}
	for _, opt := range opts {
		opt(server)
	}
	if server.Logger == nil {
		server.Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if server.Streams == nil {
		server.Streams = NewStreamManager()
	}

	r := chi.NewRouter()

	// Swagger UI
	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(RawSpec())
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})

	r.Get("/health", server.GetHealth)
	r.Get("/info", server.GetInfo)
	r.Get("/units", server.ListUnits)
	r.Get("/units/{unit}", server.GetUnit)
	r.Post("/units/{unit}/generate", server.Generate)
	r.Get("/results", server.ListResults)
	r.Get("/results/{id}", server.GetResult)
	r.Delete("/results/{id}", server.DeleteResult)
	r.Get("/events", server.SubscribeEvents)
	if server.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", server.Metrics)
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>extrude API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

// GenerateRequest is the body of POST /units/{unit}/generate.
type GenerateRequest struct {
	Params map[string]any `json:"params"`
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	apiVersion := "unknown"
	if swagger, err := GetSwagger(); err == nil && swagger.Info != nil {
		apiVersion = swagger.Info.Version
	}

	s.writeJSON(w, http.StatusOK, map[string]string{
		"app":         "extrude-http",
		"version":     strings.TrimSpace(extrude.Version),
		"api_version": apiVersion,
	})
}

// ListUnits handles the GET /units request.
func (s *Server) ListUnits(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.Engine.Units())
}

// GetUnit handles the GET /units/{unit} request.
func (s *Server) GetUnit(w http.ResponseWriter, r *http.Request) {
	unit, ok := s.pathParam(w, r, "unit")
	if !ok {
		return
	}
	for _, u := range s.Engine.Units() {
		if u.Name == unit {
			s.writeJSON(w, http.StatusOK, u)
			return
		}
	}
	s.writeError(w, r, fmt.Errorf("%w: %s", domain.ErrUnknownUnit, unit))
}

// Generate handles the POST /units/{unit}/generate request.
func (s *Server) Generate(w http.ResponseWriter, r *http.Request) {
	unit, ok := s.pathParam(w, r, "unit")
	if !ok {
		return
	}

	var body GenerateRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		s.writeStatus(w, http.StatusBadRequest, "Invalid request body")
		s.Logger.Warn("Generate: Invalid request body", "error", err)
		return
	}

	result, err := s.Engine.Generate(r.Context(), unit, domain.Context(body.Params))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Location", "/results/"+result.ID)
	s.writeJSON(w, http.StatusCreated, result)
}

// ListResults handles the GET /results request.
func (s *Server) ListResults(w http.ResponseWriter, r *http.Request) {
	ids, err := s.Engine.Results(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, ids)
}

// GetResult handles the GET /results/{id} request.
func (s *Server) GetResult(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathParam(w, r, "id")
	if !ok {
		return
	}
	result, err := s.Engine.Result(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

// DeleteResult handles the DELETE /results/{id} request.
func (s *Server) DeleteResult(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathParam(w, r, "id")
	if !ok {
		return
	}
	if err := s.Engine.DeleteResult(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SubscribeEvents handles the GET /events request (SSE).
func (s *Server) SubscribeEvents(w http.ResponseWriter, r *http.Request) {
	var unit string
	if err := runtime.BindQueryParameter("form", true, false, "unit", r.URL.Query(), &unit); err != nil {
		s.writeStatus(w, http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter unit: %v", err))
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		s.writeStatus(w, http.StatusInternalServerError, "Streaming not supported")
		s.Logger.Error("SubscribeEvents: Streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch, cancel := s.Streams.Subscribe(unit)
	defer cancel()

	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", msg)
			flusher.Flush()
		}
	}
}

// -- Helpers --

func (s *Server) pathParam(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	var value string
	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), &value, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		s.writeStatus(w, http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %v", name, err))
		return "", false
	}
	return value, true
}

// StatusFor maps engine errors to HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnknownUnit), errors.Is(err, domain.ErrResultNotFound):
		return http.StatusNotFound
	case schema.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, geom.ErrInfeasible), errors.Is(err, geom.ErrUnsupported):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFor(err)
	if status >= http.StatusInternalServerError {
		s.Logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	} else {
		s.Logger.Warn("request rejected", "method", r.Method, "path", r.URL.Path, "status", status, "error", err)
	}
	if fields := fieldErrors(err); len(fields) > 0 {
		s.writeJSON(w, status, ErrorResponse{Error: err.Error(), Fields: fields})
		return
	}
	s.writeStatus(w, status, err.Error())
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error  string       `json:"error"`
	Fields []FieldError `json:"fields,omitempty"`
}

// FieldError names one rejected parameter.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func fieldErrors(err error) []FieldError {
	var out []FieldError
	for _, e := range schema.ValidationErrors(err) {
		var verr *schema.ValidationError
		if errors.As(e, &verr) {
			out = append(out, FieldError{Field: verr.Key, Reason: verr.Reason})
		}
	}
	return out
}

func (s *Server) writeStatus(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, ErrorResponse{Error: msg})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("response encode failed", "error", err)
	}
}
