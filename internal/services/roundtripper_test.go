package services

import "net/http"

// MockRoundTripper allows custom HTTP responses for testing.
//
// It lives in this package (rather than internal/testing) because the
// services tests run in-package and importing internal/testing from here
// would create an import cycle.
type MockRoundTripper struct {
	response *http.Response
	err      error

	Requests []*http.Request
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	m.Requests = append(m.Requests, r)
	return m.response, m.err
}
