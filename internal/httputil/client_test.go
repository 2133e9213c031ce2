package httputil

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
)

func TestNewClientTimeout(t *testing.T) {
	if got := NewClient(0).Timeout; got != DefaultTimeout {
		t.Errorf("NewClient(0).Timeout = %v, want %v", got, DefaultTimeout)
	}
	if got := NewClient(5 * time.Second).Timeout; got != 5*time.Second {
		t.Errorf("NewClient(5s).Timeout = %v, want 5s", got)
	}
}

func TestNewJSONRequest(t *testing.T) {
	req, err := NewJSONRequest(context.Background(), "https://api.themoviedb.org/3/movie/1?api_key=x")
	if err != nil {
		t.Fatalf("NewJSONRequest() error: %v", err)
	}
	if req.Header.Get("Accept") != "application/json" {
		t.Errorf("Accept = %q, want application/json", req.Header.Get("Accept"))
	}

	if _, err := NewJSONRequest(context.Background(), "http://insecure.example.com"); err == nil {
		t.Error("expected error for non-HTTPS URL")
	}
}

func TestDecodeJSON(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			_, _ = io.WriteString(w, `{"results":[{"id":1}]}`)
		case "/bad":
			_, _ = io.WriteString(w, `{"results":`)
		default:
			w.WriteHeader(http.StatusUnauthorized)
		}
	}))
	defer server.Close()

	get := func(path string) *http.Response {
		t.Helper()
		req, err := NewJSONRequest(context.Background(), server.URL+path+"?api_key=secret")
		if err != nil {
			t.Fatalf("NewJSONRequest() error: %v", err)
		}
		resp, err := server.Client().Do(req)
		if err != nil {
			t.Fatalf("Do() error: %v", err)
		}
		t.Cleanup(func() { _ = resp.Body.Close() })
		return resp
	}

	var payload struct {
		Results []struct {
			ID int `json:"id"`
		} `json:"results"`
	}
	if err := DecodeJSON(get("/ok"), &payload); err != nil {
		t.Fatalf("DecodeJSON(/ok) error: %v", err)
	}
	if len(payload.Results) != 1 || payload.Results[0].ID != 1 {
		t.Errorf("unexpected payload: %+v", payload)
	}

	if err := DecodeJSON(get("/bad"), &payload); err == nil {
		t.Error("expected error for truncated JSON")
	}

	err := DecodeJSON(get("/missing"), &payload)
	if err == nil {
		t.Fatal("expected error for 401 status")
	}
	if !strings.Contains(err.Error(), "unexpected status 401") {
		t.Errorf("error = %v, want status 401", err)
	}
	if strings.Contains(err.Error(), "secret") {
		t.Errorf("error leaks the query string: %v", err)
	}
}

func TestRedactNilRequest(t *testing.T) {
	if got := redact(nil); got != "request" {
		t.Errorf("redact(nil) = %q", got)
	}
	u, _ := url.Parse("https://x.test/a?api_key=k")
	if got := redact(&http.Request{URL: u}); got != "/a" {
		t.Errorf("redact() = %q, want /a", got)
	}
}
