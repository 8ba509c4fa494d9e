package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/spotirelay/internal/services"
	"github.com/desertthunder/spotirelay/internal/shared"
	"golang.org/x/time/rate"
)

// authRouteLimit caps each client IP at 30 auth requests per minute.
var authRouteLimit = rate.Every(time.Minute / 30)

// New assembles the relay's router and returns an [http.Server] ready to listen.
func New(cfg *shared.Config, auth services.Authenticator, forwarder services.Forwarder, logger *log.Logger) *http.Server {
	router := NewBasicRouter()
	router.Use(LogRequests(logger), CORS(cfg.Client.Origin))

	// auth routes carry a stricter per-IP limit than the forwarding routes
	limited := RateLimitByIP(authRouteLimit, 30, cfg.Server.TrustProxyHeaders)
	authHandler := NewAuthHandler(auth, cfg.Client.Origin, logger)
	for _, route := range authHandler.Routes() {
		method, path, _ := strings.Cut(route, " ")
		router.Handle(method, path, limited(authHandler))
	}

	router.Handler(NewResourceHandler(forwarder, logger))
	router.Handle(http.MethodGet, "/{$}", http.HandlerFunc(Welcome))

	return &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
