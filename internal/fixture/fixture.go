// Package fixture serves canned API responses for tests without network access.
//
// Requests keep their original Host header and request URI, so responses are
// keyed by the real endpoint ("api.github.com/repos/o/r/pulls/1"), while a
// rewriting transport sends them to a local httptest server.
package fixture

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
)

// Response is a canned answer.
type Response struct {
	Status int
	Body   string
	Header http.Header
}

// Server records requests and replies with the registered responses.
// Unregistered endpoints answer 404.
type Server struct {
	mu        sync.Mutex
	responses map[string]Response
	requests  []*http.Request
}

// New starts a fixture server and returns it with an HTTP client routed to it.
func New(t *testing.T, responses map[string]Response) (*Server, *http.Client) {
	t.Helper()

	s := &Server{responses: responses}
	server := httptest.NewServer(s)
	t.Cleanup(server.Close)

	target, err := url.Parse(server.URL)
	if err != nil {
		t.Fatalf("failed to parse fixture server url: %v", err)
	}

	return s, &http.Client{Transport: rewriteTransport{target: target}}
}

// Key returns the response key for a request.
func Key(r *http.Request) string {
	return r.Host + r.URL.RequestURI()
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.requests = append(s.requests, r.Clone(r.Context()))
	resp, ok := s.responses[Key(r)]
	s.mu.Unlock()

	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"message":"Not Found"}`)
		return
	}

	for key, values := range resp.Header {
		for _, value := range values {
			w.Header().Add(key, value)
		}
	}
	w.Header().Set("Content-Type", "application/json")

	status := resp.Status
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	_, _ = io.WriteString(w, resp.Body)
}

// Requests returns the requests received so far.
func (s *Server) Requests() []*http.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*http.Request(nil), s.requests...)
}

// LastRequest returns the most recent request, or nil.
func (s *Server) LastRequest() *http.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return nil
	}
	return s.requests[len(s.requests)-1]
}

type rewriteTransport struct {
	target *url.URL
}

func (t rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	out := req.Clone(req.Context())
	if out.Host == "" {
		out.Host = req.URL.Host
	}
	out.URL.Scheme = t.target.Scheme
	out.URL.Host = t.target.Host
	return http.DefaultTransport.RoundTrip(out)
}
