// package testing contains shared testing utilities
package testing

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/desertthunder/spotirelay/internal/services"
)

// MockAuthenticator is a test double for [services.Authenticator] that
// records every call it receives.
type MockAuthenticator struct {
	AuthURL string
	Tokens  *services.TokenSet
	Err     error

	ExchangeCalls []string
	RefreshCalls  []string
}

func (m *MockAuthenticator) AuthCodeURL(state string) string {
	return m.AuthURL + "?state=" + state
}

func (m *MockAuthenticator) Exchange(ctx context.Context, code string) (*services.TokenSet, error) {
	m.ExchangeCalls = append(m.ExchangeCalls, code)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Tokens, nil
}

func (m *MockAuthenticator) Refresh(ctx context.Context, refreshToken string) (*services.TokenSet, error) {
	m.RefreshCalls = append(m.RefreshCalls, refreshToken)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Tokens, nil
}

// ForwardCall records one invocation of [MockForwarder.Forward].
type ForwardCall struct {
	Token string
	Path  string
	Query url.Values
}

// MockForwarder is a test double for [services.Forwarder].
type MockForwarder struct {
	Body  json.RawMessage
	Err   error
	Calls []ForwardCall
}

func (m *MockForwarder) Forward(ctx context.Context, token, path string, query url.Values) (json.RawMessage, error) {
	m.Calls = append(m.Calls, ForwardCall{Token: token, Path: path, Query: query})
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Body, nil
}
