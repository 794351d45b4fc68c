package probe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestCheckAll_PreservesInputOrder(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(80 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer slow.Close()

	fast := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer fast.Close()

	p := New(Options{Timeout: 2 * time.Second, FollowRedirects: true, Concurrency: 2})
	defer p.Close()

	urls := []string{slow.URL, fast.URL, "ftp://example.com"}
	results := p.CheckAll(context.Background(), urls)

	if len(results) != len(urls) {
		t.Fatalf("want %d results, got %d", len(urls), len(results))
	}
	for i, r := range results {
		if r.URL != urls[i] {
			t.Fatalf("result %d: want URL %q, got %q", i, urls[i], r.URL)
		}
	}
	if results[0].StatusCode == nil || *results[0].StatusCode != 200 {
		t.Fatalf("slow probe: want 200, got %+v", results[0].StatusCode)
	}
	if results[1].StatusCode == nil || *results[1].StatusCode != http.StatusTeapot {
		t.Fatalf("fast probe: want 418, got %+v", results[1].StatusCode)
	}
	if results[2].Error == nil {
		t.Fatalf("invalid URL probe: want error")
	}
}

func TestCheckAll_Empty(t *testing.T) {
	p := New(Options{Timeout: time.Second})
	defer p.Close()

	results := p.CheckAll(context.Background(), nil)
	if len(results) != 0 {
		t.Fatalf("want no results, got %d", len(results))
	}
}

func TestCheckAll_TimeoutsAreIndependent(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(400 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer slow.Close()

	fast := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer fast.Close()

	p := New(Options{Timeout: 100 * time.Millisecond, FollowRedirects: true, Concurrency: 2})
	defer p.Close()

	results := p.CheckAll(context.Background(), []string{slow.URL, fast.URL})

	if results[0].Error == nil || !strings.Contains(*results[0].Error, "Timeout") {
		t.Fatalf("slow probe should time out, got %+v", results[0].Error)
	}
	if !results[1].StatusHealthy {
		t.Fatalf("one probe timing out must not affect the other, got %+v", results[1])
	}
}
