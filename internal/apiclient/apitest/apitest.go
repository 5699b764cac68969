// Package apitest runs a fake Prep Manager API for tests.
package apitest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/Nawaf-Almansour/prep-manger/internal/apiclient"
)

// Call is one request received by the fake API.
type Call struct {
	Method      string
	Path        string
	Query       string
	Auth        string
	ContentType string
	Body        []byte
}

// JSON decodes the request body.
func (c Call) JSON(t *testing.T) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(c.Body, &m); err != nil {
		t.Fatalf("request body is not JSON: %v", err)
	}
	return m
}

// Reply is the canned answer for a route.
type Reply struct {
	Status int
	Body   string
}

// Server answers "METHOD /path" routes with canned replies and records every
// call. Unknown routes answer 404.
type Server struct {
	*httptest.Server

	mu     sync.Mutex
	routes map[string]Reply
	calls  []Call
}

func New(t *testing.T, routes map[string]Reply) *Server {
	t.Helper()
	s := &Server{routes: map[string]Reply{}}
	for k, v := range routes {
		s.routes[k] = v
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

// Handle sets or replaces the reply for route.
func (s *Server) Handle(route string, reply Reply) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes[route] = reply
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	s.mu.Lock()
	s.calls = append(s.calls, Call{
		Method:      r.Method,
		Path:        r.URL.Path,
		Query:       r.URL.RawQuery,
		Auth:        r.Header.Get("Authorization"),
		ContentType: r.Header.Get("Content-Type"),
		Body:        body,
	})
	reply, ok := s.routes[r.Method+" "+r.URL.Path]
	s.mu.Unlock()

	if !ok {
		reply = Reply{Status: http.StatusNotFound, Body: `{"message":"Route not found"}`}
	}
	if reply.Status == 0 {
		reply.Status = http.StatusOK
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(reply.Status)
	_, _ = io.WriteString(w, reply.Body)
}

// Calls returns a copy of the recorded calls.
func (s *Server) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.calls...)
}

// Client returns an API client pointed at the fake server.
func (s *Server) Client() *apiclient.Client {
	return apiclient.New(apiclient.Options{BaseURL: s.URL})
}
