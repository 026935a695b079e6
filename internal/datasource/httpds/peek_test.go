// These tests exercise FetchFirstBytes, which retrieves at most N bytes
// from a URL using Range when possible but falling back to a client-side
// limit when the server ignores Range. The preview path depends on the cap
// holding either way.
package httpds

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFetchFirstBytes_RangeHonored(t *testing.T) {
	t.Parallel()

	var gotRange string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRange = r.Header.Get("Range")
		w.WriteHeader(http.StatusPartialContent)
		_, _ = w.Write([]byte("ID,TITLE"))
	}))
	defer srv.Close()

	c := NewClient(Config{})
	got, err := c.FetchFirstBytes(context.Background(), srv.URL, 8)
	if err != nil {
		t.Fatalf("FetchFirstBytes error: %v", err)
	}
	if string(got) != "ID,TITLE" {
		t.Fatalf("got %q, want %q", got, "ID,TITLE")
	}
	if gotRange != "bytes=0-7" {
		t.Fatalf("Range header = %q, want %q", gotRange, "bytes=0-7")
	}
}

func TestFetchFirstBytes_RangeIgnoredStillCapped(t *testing.T) {
	t.Parallel()

	payload := strings.Repeat("x", 1000)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Ignore Range entirely; send the whole body with a plain 200.
		_, _ = w.Write([]byte(payload))
	}))
	defer srv.Close()

	c := NewClient(Config{})
	got, err := c.FetchFirstBytes(context.Background(), srv.URL, 16)
	if err != nil {
		t.Fatalf("FetchFirstBytes error: %v", err)
	}
	if len(got) != 16 {
		t.Fatalf("expected 16 bytes, got %d", len(got))
	}
}

func TestFetchFirstBytes_RejectsNonPositiveN(t *testing.T) {
	t.Parallel()

	c := NewClient(Config{})
	if _, err := c.FetchFirstBytes(context.Background(), "http://example.invalid", 0); err == nil {
		t.Fatal("expected error for n=0, got nil")
	}
}
