package server

import (
	"net/http"
	"net/url"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/spotirelay/internal/services"
	"github.com/desertthunder/spotirelay/internal/shared"
)

// upstreamFailure is the only body a caller sees when the provider call
// fails; the raw upstream response is never relayed on error.
const upstreamFailure = "failed to fetch data from Spotify"

const defaultTimeRange = "medium_term"

// validTimeRanges enumerates the provider's accepted time_range values.
var validTimeRanges = map[string]bool{
	"short_term":  true,
	"medium_term": true,
	"long_term":   true,
}

// ResourceHandler serves the protected read-only endpoints by composing the
// bearer-token guard with a single forwarding primitive. Implements
// [Handler] for registration with a [Router].
type ResourceHandler struct {
	forwarder services.Forwarder
	logger    *log.Logger
}

// NewResourceHandler creates a resource handler forwarding to the given [services.Forwarder].
func NewResourceHandler(forwarder services.Forwarder, logger *log.Logger) *ResourceHandler {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	return &ResourceHandler{
		forwarder: forwarder,
		logger:    shared.WithLogger(logger, "handler", "resource"),
	}
}

// Routes returns the patterns this handler serves.
func (h *ResourceHandler) Routes() []string {
	return []string{
		"GET /user/profile",
		"GET /user/playlists",
		"GET /user/recently-played",
		"GET /user/following",
		"GET /user/top-tracks",
		"GET /user/top-artists",
		"GET /artist/{id}",
		"GET /artist/{id}/top-tracks",
		"GET /track/{id}",
	}
}

func (h *ResourceHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	token, err := BearerToken(r)
	if err != nil {
		http.Error(w, "missing or malformed bearer token", http.StatusUnauthorized)
		return
	}

	path, query := h.resolve(r)
	if path == "" {
		http.NotFound(w, r)
		return
	}

	body, err := h.forwarder.Forward(r.Context(), token, path, query)
	if err != nil {
		h.logger.Error("forwarding failed", "path", path, "error", err)
		http.Error(w, upstreamFailure, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}

// resolve maps the matched route onto the upstream API path and its fixed or
// validated query parameters.
func (h *ResourceHandler) resolve(r *http.Request) (string, url.Values) {
	switch r.Pattern {
	case "GET /user/profile":
		return "/me", nil
	case "GET /user/playlists":
		return "/me/playlists", nil
	case "GET /user/recently-played":
		return "/me/player/recently-played", nil
	case "GET /user/following":
		return "/me/following", url.Values{"type": {"artist"}}
	case "GET /user/top-tracks":
		return "/me/top/tracks", url.Values{"time_range": {timeRange(r)}}
	case "GET /user/top-artists":
		return "/me/top/artists", url.Values{"time_range": {timeRange(r)}}
	case "GET /artist/{id}":
		return "/artists/" + r.PathValue("id"), nil
	case "GET /artist/{id}/top-tracks":
		// market is required by the provider for artist top tracks
		return "/artists/" + r.PathValue("id") + "/top-tracks", url.Values{"market": {"US"}}
	case "GET /track/{id}":
		return "/tracks/" + r.PathValue("id"), nil
	}

	return "", nil
}

// timeRange validates the caller-supplied range, substituting the default
// for anything unknown.
func timeRange(r *http.Request) string {
	if v := r.URL.Query().Get("time_range"); validTimeRanges[v] {
		return v
	}
	return defaultTimeRange
}
