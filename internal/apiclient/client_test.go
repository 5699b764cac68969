package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	method      string
	path        string
	query       string
	auth        string
	contentType string
	body        []byte
}

func newTestServer(t *testing.T, status int, body string) (*httptest.Server, *[]recorded) {
	t.Helper()
	var calls []recorded
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		calls = append(calls, recorded{
			method:      r.Method,
			path:        r.URL.Path,
			query:       r.URL.RawQuery,
			auth:        r.Header.Get("Authorization"),
			contentType: r.Header.Get("Content-Type"),
			body:        data,
		})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func TestDoAttachesBearerToken(t *testing.T) {
	srv, calls := newTestServer(t, http.StatusOK, `{"success":true}`)
	client := New(Options{BaseURL: srv.URL + "/api/v1/", Timeout: time.Second})

	ctx := WithToken(context.Background(), "abc.def.ghi")
	_, err := client.Get(ctx, "/tasks/today", url.Values{"status": {"scheduled"}})
	require.NoError(t, err)

	require.Len(t, *calls, 1)
	call := (*calls)[0]
	assert.Equal(t, http.MethodGet, call.method)
	assert.Equal(t, "/api/v1/tasks/today", call.path)
	assert.Equal(t, "status=scheduled", call.query)
	assert.Equal(t, "Bearer abc.def.ghi", call.auth)
}

func TestDoWithoutTokenSendsNoAuthorization(t *testing.T) {
	srv, calls := newTestServer(t, http.StatusOK, `{}`)
	client := New(Options{BaseURL: srv.URL})

	_, err := client.Post(context.Background(), "/auth/login", map[string]string{"email": "a@b.co"})
	require.NoError(t, err)

	call := (*calls)[0]
	assert.Empty(t, call.auth)
	assert.Equal(t, "application/json", call.contentType)
	assert.JSONEq(t, `{"email":"a@b.co"}`, string(call.body))
}

func TestDoNormalizesErrors(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		message    string
		statusOnly bool
	}{
		{"message field", http.StatusBadRequest, `{"success":false,"message":"Name is required"}`, "Name is required", false},
		{"error string", http.StatusConflict, `{"error":"duplicate key"}`, "duplicate key", false},
		{"nested error", http.StatusBadRequest, `{"error":{"message":"bad quantity"}}`, "bad quantity", false},
		{"status text in body", http.StatusInternalServerError, `{"message":"Internal Server Error"}`, "Internal Server Error", false},
		{"no body", http.StatusBadGateway, ``, "Bad Gateway", true},
		{"empty 500", http.StatusInternalServerError, ``, "Internal Server Error", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newTestServer(t, tt.status, tt.body)
			client := New(Options{BaseURL: srv.URL})

			_, err := client.Get(context.Background(), "/inventory", nil)
			require.Error(t, err)

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.message, apiErr.Message)
			assert.Equal(t, tt.statusOnly, apiErr.StatusOnly)
			assert.False(t, errors.Is(err, ErrUnauthorized))
		})
	}
}

func TestDoUnauthorizedMatchesSentinel(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusUnauthorized, `{"message":"Token expired"}`)
	client := New(Options{BaseURL: srv.URL})

	_, err := client.Get(WithToken(context.Background(), "stale"), "/auth/me", nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnauthorized))
	assert.Equal(t, "Token expired", Message(err, "fallback"))
}

func TestDoMultipart(t *testing.T) {
	var gotName, gotFile string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotName = r.FormValue("name")
		f, _, err := r.FormFile("image")
		require.NoError(t, err)
		data, _ := io.ReadAll(f)
		gotFile = string(data)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{"_id": "x"}})
	}))
	defer srv.Close()

	client := New(Options{BaseURL: srv.URL})
	body := NewMultipart().
		Field("name", "Chicken").
		OptionalField("supplier", "  ").
		File("image", File{FileName: "c.png", ContentType: "image/png", Data: []byte("PNG")})

	resp, err := client.Post(context.Background(), "/inventory", body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Chicken", gotName)
	assert.Equal(t, "PNG", gotFile)
	_, ok := body.Value("supplier")
	assert.False(t, ok)
}

func TestMessageFallback(t *testing.T) {
	assert.Equal(t, "Something went wrong", Message(errors.New("dial tcp"), "Something went wrong"))
}

func TestEndpointLabel(t *testing.T) {
	assert.Equal(t, "/tasks/:id/start", EndpointLabel("/tasks/64b7f0c2a1b2c3d4e5f60718/start"))
	assert.Equal(t, "/users/:id", EndpointLabel("/users/42"))
	assert.Equal(t, "/tasks/today", EndpointLabel("/tasks/today"))
}
