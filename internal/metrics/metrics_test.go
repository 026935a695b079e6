package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"
)

// fakeBackend is a simple in-memory Backend implementation for tests.
type fakeBackend struct {
	mu sync.Mutex

	counters   []counterCall
	histograms []histCall
	flushCount int
}

type counterCall struct {
	name   string
	delta  float64
	labels Labels
}

type histCall struct {
	name   string
	value  float64
	labels Labels
}

func (f *fakeBackend) IncCounter(name string, delta float64, labels Labels) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counters = append(f.counters, counterCall{name, delta, labels})
}

func (f *fakeBackend) ObserveHistogram(name string, value float64, labels Labels) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.histograms = append(f.histograms, histCall{name, value, labels})
}

func (f *fakeBackend) Flush() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.flushCount++
	return nil
}

func TestRecordLoad_SuccessAndFailure(t *testing.T) {
	orig := backend
	defer func() { backend = orig }()

	fb := &fakeBackend{}
	backend = fb

	RecordLoad("upload", nil, 2*time.Second)
	RecordLoad("url", errors.New("boom"), 1500*time.Millisecond)

	if len(fb.counters) != 2 || len(fb.histograms) != 2 {
		t.Fatalf("expected 2 counter and 2 histogram calls, got %d/%d",
			len(fb.counters), len(fb.histograms))
	}

	c0 := fb.counters[0]
	if c0.name != "catalog_load_total" || c0.delta != 1 {
		t.Fatalf("counter[0] = %#v; want name=catalog_load_total, delta=1", c0)
	}
	if c0.labels["source"] != "upload" || c0.labels["status"] != "success" {
		t.Fatalf("counter[0] labels = %v; want source=upload status=success", c0.labels)
	}

	h0 := fb.histograms[0]
	if h0.name != "catalog_load_duration_seconds" {
		t.Fatalf("hist[0].name = %q; want catalog_load_duration_seconds", h0.name)
	}
	if h0.value < 2.0-0.001 || h0.value > 2.0+0.001 {
		t.Fatalf("hist[0].value = %v; want ~2.0", h0.value)
	}

	c1 := fb.counters[1]
	if c1.labels["source"] != "url" || c1.labels["status"] != "failure" {
		t.Fatalf("counter[1] labels = %v; want source=url status=failure", c1.labels)
	}
}

func TestRecordRows(t *testing.T) {
	orig := backend
	defer func() { backend = orig }()

	fb := &fakeBackend{}
	backend = fb

	RecordRows("parsed", 3)
	RecordRows("parsed", 0) // ignored
	RecordRows("invalid", 5)

	if len(fb.counters) != 2 {
		t.Fatalf("expected 2 counter calls, got %d", len(fb.counters))
	}
	c0 := fb.counters[0]
	if c0.name != "catalog_rows_total" || c0.delta != 3 || c0.labels["kind"] != "parsed" {
		t.Fatalf("counter[0] = %#v; want catalog_rows_total delta=3 kind=parsed", c0)
	}
	c1 := fb.counters[1]
	if c1.delta != 5 || c1.labels["kind"] != "invalid" {
		t.Fatalf("counter[1] = %#v; want delta=5 kind=invalid", c1)
	}
}

func TestRecordQuery(t *testing.T) {
	orig := backend
	defer func() { backend = orig }()

	fb := &fakeBackend{}
	backend = fb

	RecordQuery("search", 50*time.Millisecond)

	if len(fb.counters) != 1 || len(fb.histograms) != 1 {
		t.Fatalf("expected 1 counter and 1 histogram call, got %d/%d",
			len(fb.counters), len(fb.histograms))
	}
	if fb.counters[0].name != "catalog_query_total" || fb.counters[0].labels["op"] != "search" {
		t.Fatalf("counter = %#v; want catalog_query_total op=search", fb.counters[0])
	}
	if fb.histograms[0].name != "catalog_query_duration_seconds" {
		t.Fatalf("hist name = %q", fb.histograms[0].name)
	}
}

func TestSetBackendAndFlush(t *testing.T) {
	orig := backend
	defer func() { backend = orig }()

	fb := &fakeBackend{}
	SetBackend(fb)

	if backend != fb {
		t.Fatal("SetBackend did not replace global backend")
	}
	if err := Flush(); err != nil {
		t.Fatalf("Flush returned error: %v", err)
	}
	if fb.flushCount != 1 {
		t.Fatalf("expected flushCount=1, got %d", fb.flushCount)
	}

	// SetBackend(nil) keeps the existing backend.
	SetBackend(nil)
	if backend != fb {
		t.Fatal("SetBackend(nil) should not change backend")
	}
}
