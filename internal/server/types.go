package server

import (
	"net/http"

	"github.com/MeKo-Tech/flatten/internal/geometry"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server holds the HTTP server state and dependencies.
type Server struct {
	corsOrigin string
	timeoutSec int
}

// Config holds server configuration.
type Config struct {
	Host            string
	Port            int
	CORSOrigin      string
	TimeoutSec      int
	ShutdownTimeout int
}

// PointPayload is a single corner coordinate pair.
type PointPayload struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// QuadPayload is a four-corner set in fixed winding order. Corners are
// pointers so absent fields are distinguishable from (0,0).
type QuadPayload struct {
	TL *PointPayload `json:"tl"`
	TR *PointPayload `json:"tr"`
	BR *PointPayload `json:"br"`
	BL *PointPayload `json:"bl"`
}

// TransformRequest is the /transform request body.
type TransformRequest struct {
	Source      *QuadPayload `json:"source"`
	Destination *QuadPayload `json:"destination"`
	Normalize   bool         `json:"normalize,omitempty"`
}

// TransformResult carries the computed matrix. The matrix is always a valid
// transform; Fallback reports that the identity was served because a guard
// tripped (degenerate or non-finite input).
type TransformResult struct {
	Matrix    [9]float64 `json:"matrix"`
	Fallback  bool       `json:"fallback"`
	ElapsedUs int64      `json:"elapsed_us"`
}

// TransformResponse is the /transform response body.
type TransformResponse struct {
	Success bool            `json:"success"`
	Result  TransformResult `json:"result,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// HealthResponse is the /health response body.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
	Time    string `json:"time"`
}

// NewServer creates a new transform server instance.
func NewServer(config Config) *Server {
	return &Server{
		corsOrigin: config.CORSOrigin,
		timeoutSec: config.TimeoutSec,
	}
}

// SetupRoutes configures the HTTP routes.
func (s *Server) SetupRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/health", s.corsMiddleware(s.healthHandler))
	mux.HandleFunc("/transform", s.corsMiddleware(s.transformHandler))
	mux.HandleFunc("/ws", s.transformWebSocketHandler)
	mux.Handle("/metrics", promhttp.Handler())
}

// corners converts a payload quad into a geometry corner set. ok is false
// when the quad or any of its corners is absent.
func (q *QuadPayload) corners() (geometry.Corners, bool) {
	if q == nil || q.TL == nil || q.TR == nil || q.BR == nil || q.BL == nil {
		return geometry.Corners{}, false
	}
	return geometry.NewCorners(
		geometry.Point{X: q.TL.X, Y: q.TL.Y},
		geometry.Point{X: q.TR.X, Y: q.TR.Y},
		geometry.Point{X: q.BR.X, Y: q.BR.Y},
		geometry.Point{X: q.BL.X, Y: q.BL.Y},
	), true
}
