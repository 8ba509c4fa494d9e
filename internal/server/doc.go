// Package server provides HTTP routing, middleware, and the relay's two handler groups.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first), following the standard Go pattern.
//
// The [BasicRouter] implementation uses [http.ServeMux] method patterns, so
// path parameters and 405 handling come from the mux. Middleware registered
// with Use wraps the whole mux, which lets CORS answer preflight requests
// for routes registered GET-only.
//
// # Authorization Flow
//
// [AuthHandler] implements the OAuth2 authorization-code flow as a relay:
// /auth/login redirects to the provider consent screen, /auth/callback
// exchanges the code and hands tokens to the client application via redirect
// query parameters, /auth/refresh_token mints a new access token as JSON,
// and /auth/logout returns the user to the client root. The server stores
// nothing; the browser client owns the token lifecycle.
//
// A callback with no code is not an error: the user declined consent and is
// silently redirected to the client root.
//
// # Resource Forwarding
//
// [ResourceHandler] composes the [BearerToken] guard with a single
// authenticated-GET primitive ([services.Forwarder]). Each protected
// endpoint maps onto a fixed upstream path, with time_range validation for
// the top-tracks/top-artists pair and a fixed market parameter for artist
// top tracks. Upstream failures surface as a static 500 message, never the
// raw provider body.
//
// # Handler Interface
//
// Custom handlers implement the [Handler] interface, which wraps the stdlib
// handler interface and adds Routes, allowing handlers to encapsulate their
// own route patterns.
package server
