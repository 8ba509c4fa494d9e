// package services defines interfaces for the provider-facing halves of the relay
//
// [Authenticator] covers the OAuth2 handshake, [Forwarder] covers read-only
// resource access.
package services

import (
	"context"
	"encoding/json"
	"net/url"
)

// TokenSet carries the credentials minted by a code exchange or a refresh.
// The relay hands these to the browser client and never stores them.
type TokenSet struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64 // seconds until the access token expires
}

// Authenticator performs the OAuth2 authorization-code dance with the provider.
type Authenticator interface {
	// AuthCodeURL builds the provider consent-screen URL for the given state token.
	AuthCodeURL(state string) string

	// Exchange trades a single-use authorization code for a token set.
	// A provider rejection wraps [shared.ErrTokenRejected]; transport and
	// other failures wrap [shared.ErrTokenExchange].
	Exchange(ctx context.Context, code string) (*TokenSet, error)

	// Refresh mints a new access token from a long-lived refresh token.
	Refresh(ctx context.Context, refreshToken string) (*TokenSet, error)
}

// Forwarder issues authenticated reads against the provider's resource API.
type Forwarder interface {
	// Forward performs a bearer-authenticated GET of path (relative to the
	// provider API root) with optional query parameters and returns the raw
	// JSON body. Any non-2xx or transport failure wraps [shared.ErrUpstream].
	Forward(ctx context.Context, token, path string, query url.Values) (json.RawMessage, error)
}
