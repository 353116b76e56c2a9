package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/MeKo-Tech/flatten/internal/geometry"
	"github.com/MeKo-Tech/flatten/internal/homography"
	"github.com/MeKo-Tech/flatten/internal/version"
)

// healthHandler returns server health status.
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := HealthResponse{
		Status:  "healthy",
		Version: version.Version,
		Time:    time.Now().UTC().Format(time.RFC3339),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		slog.Error("Failed to encode health response", "error", err)
	}
}

// transformHandler computes a homography from a JSON corner-pair request.
// The response always carries a usable matrix: degenerate or incomplete
// corner sets yield the identity fallback, never an error status.
func (s *Server) transformHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var req TransformRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeErrorResponse(w, "Invalid JSON request body", http.StatusBadRequest)
		return
	}

	result := computeTransform(&req, "http")

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(TransformResponse{Success: true, Result: result}); err != nil {
		slog.Error("Failed to encode transform response", "error", err)
	}
}

// computeTransform runs the estimation for a request and records metrics.
// Missing corner sets count as a guard failure and serve the fallback.
func computeTransform(req *TransformRequest, mode string) TransformResult {
	start := time.Now()

	var m homography.Matrix3x3
	solved := false

	src, okSrc := req.Source.corners()
	dst, okDst := req.Destination.corners()
	switch {
	case !okSrc || !okDst:
		m = homography.Identity()
	case req.Normalize:
		m, solved = homography.EstimateNormalizedChecked(src, dst)
	default:
		m, solved = homography.EstimateChecked(src, dst)
	}

	elapsed := time.Since(start)
	status := "solved"
	if !solved {
		status = "fallback"
	}
	transformRequestsTotal.WithLabelValues(mode, status).Inc()
	transformDuration.WithLabelValues(mode).Observe(elapsed.Seconds())

	return TransformResult{
		Matrix:    m.Flat(),
		Fallback:  !solved,
		ElapsedUs: elapsed.Microseconds(),
	}
}

// writeErrorResponse writes a JSON error response.
func (s *Server) writeErrorResponse(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(TransformResponse{Success: false, Error: message}); err != nil {
		slog.Error("Failed to encode error response", "error", err)
	}
}

// quadFromCorners converts a geometry corner set into a payload quad.
// Used by tests and the websocket echo path.
func quadFromCorners(c geometry.Corners) *QuadPayload {
	return &QuadPayload{
		TL: &PointPayload{X: c.TL.X, Y: c.TL.Y},
		TR: &PointPayload{X: c.TR.X, Y: c.TR.Y},
		BR: &PointPayload{X: c.BR.X, Y: c.BR.Y},
		BL: &PointPayload{X: c.BL.X, Y: c.BL.Y},
	}
}
