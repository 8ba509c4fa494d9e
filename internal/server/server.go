// package server contains middleware & handlers for the Spotify relay service
package server

import (
	"fmt"
	"net/http"
)

// Middleware wraps an http.Handler and returns a new http.Handler with additional behavior.
// The relay uses middleware for request logging, CORS, and rate limiting.
type Middleware func(http.Handler) http.Handler

// Handler defines the interface for HTTP request handlers in the relay.
// Implementations handle groups of endpoints (auth flow, resource forwarding).
type Handler interface {
	http.Handler      // ServeHTTP handles the HTTP request and writes the response
	Routes() []string // Routes returns the "METHOD /path" patterns this handler serves
}

// Router defines the interface for HTTP routing and middleware management.
type Router interface {
	Use(middleware ...Middleware)                     // Use adds middleware applied to every registered route
	Handle(method, path string, handler http.Handler) // Handle registers a handler for the specified method and path
	Handler(handler Handler)                          // Handler registers a custom Handler implementation
	ServeHTTP(w http.ResponseWriter, r *http.Request) // ServeHTTP implements http.Handler for the entire router
}

// Welcome responds with static landing text at the root path.
func Welcome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "spotirelay: a read-only relay for the Spotify Web API")
}
