package books

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestParseEndpoint_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseEndpoint("")
	if err != nil {
		t.Fatalf("parseEndpoint returned error: %v", err)
	}
	if u.String() != DefaultEndpoint {
		t.Fatalf("endpoint = %q, want %q", u.String(), DefaultEndpoint)
	}

	u, err = parseEndpoint("example.com/api/v1/books#frag")
	if err != nil {
		t.Fatalf("parseEndpoint returned error: %v", err)
	}
	if u.Scheme != "https" || u.Fragment != "" || u.Path != "/api/v1/books" {
		t.Fatalf("endpoint not normalized: %q", u.String())
	}

	if _, err := parseEndpoint("http://"); err == nil {
		t.Fatalf("expected error for endpoint without host")
	}
}

func TestClient_FetchBooksNormalizes(t *testing.T) {
	t.Parallel()

	var gotUserAgent, gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"title": "Dune", "author": "Frank Herbert", "year": 1965, "isbn": "0441013597"},
			{"title": "", "author": null, "extra": true}
		]`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, WithUserAgent("bookgrid-test"))
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	got, err := c.FetchBooks(ctx)
	if err != nil {
		t.Fatalf("FetchBooks returned error: %v", err)
	}
	want := []Book{
		{Title: "Dune", Author: "Frank Herbert", Year: "1965", ISBN: "0441013597"},
		{Title: Placeholder, Author: Placeholder, Year: Placeholder, ISBN: Placeholder},
	}
	if len(got) != len(want) {
		t.Fatalf("FetchBooks len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("book %d = %#v, want %#v", i, got[i], want[i])
		}
	}
	if gotUserAgent != "bookgrid-test" {
		t.Fatalf("User-Agent = %q, want bookgrid-test", gotUserAgent)
	}
	if gotAccept != "application/json" {
		t.Fatalf("Accept = %q, want application/json", gotAccept)
	}
}

func TestClient_AcceptsEnvelope(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"books": [{"title": "Emma"}]}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	got, err := c.FetchBooks(context.Background())
	if err != nil {
		t.Fatalf("FetchBooks returned error: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Emma" || got[0].Author != Placeholder {
		t.Fatalf("FetchBooks = %#v", got)
	}
}

func TestClient_ReturnsErrorForNon2xx(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("nope"))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL + "/api/v1/books")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = c.FetchBooks(context.Background())
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, ErrUnexpectedStatus) {
		t.Fatalf("error = %v, want ErrUnexpectedStatus", err)
	}
	if !strings.Contains(err.Error(), "status 503") {
		t.Fatalf("error = %q, want status code", err.Error())
	}
}

func TestClient_ReturnsDecodeError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = c.FetchBooks(context.Background())
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("error = %v, want decode response error", err)
	}
}

func TestClient_ReturnsTransportError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	c, err := NewClient(url, WithTimeout(time.Second))
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = c.FetchBooks(context.Background())
	if err == nil || !strings.Contains(err.Error(), "execute request") {
		t.Fatalf("error = %v, want execute request error", err)
	}
}

func TestClient_RespectsContextCancellation(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		server.Close()
	})

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = c.FetchBooks(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("error = %v, want context.DeadlineExceeded", err)
	}
}

func TestNilClient(t *testing.T) {
	var c *Client
	if _, err := c.FetchBooks(context.Background()); err == nil {
		t.Fatalf("expected error from nil client")
	}
}
