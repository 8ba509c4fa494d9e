// Package services defines the [Authenticator] and [Forwarder] interfaces for the upstream music provider and implements both for Spotify.
//
// # Authenticator
//
// [SpotifyService] drives the OAuth2 authorization-code flow with
// [oauth2.Config]: consent URL construction, code exchange, and refresh-token
// exchange. Client credentials are sent to the token endpoint as a basic-auth
// header ([oauth2.AuthStyleInHeader]) and never reach the browser.
//
// # Forwarder
//
// Forward is the single read primitive the HTTP layer composes: a
// bearer-authenticated GET of an API path plus optional query parameters,
// returning the raw JSON body untouched. The relay does not model provider
// payloads; responses pass through verbatim.
//
// # Error Handling
//
// Services use typed errors from the shared package:
//   - [shared.ErrMissingCredentials] : configuration lacks client id/secret
//   - [shared.ErrTokenRejected] : provider answered the token request with a non-2xx
//   - [shared.ErrTokenExchange] / [shared.ErrRefreshFailed] : transport or protocol failure
//   - [shared.ErrNotAuthenticated] : Forward called without a bearer token
//   - [shared.ErrUpstream] : resource request failed or returned a non-2xx
//
// Handlers map these sentinels onto HTTP statuses; the raw upstream body is
// never surfaced to the caller on failure.
package services
