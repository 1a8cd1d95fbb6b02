package testsupport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-medrec/pkg/uischema"
)

// MustLayout loads the bundled layout or fails the test.
func MustLayout(t *testing.T) *uischema.Layout {
	t.Helper()
	layout, err := uischema.Default()
	if err != nil {
		t.Fatalf("load default layout: %v", err)
	}
	return layout
}

// PredictionBackend is a scripted prediction service. Every POST to /predict
// is recorded and answered with the configured status and body.
type PredictionBackend struct {
	*httptest.Server

	mu       sync.Mutex
	status   int
	body     string
	requests [][]byte
}

// NewPredictionBackend starts a backend that answers with status and body.
// The server is closed when the test ends.
func NewPredictionBackend(t *testing.T, status int, body string) *PredictionBackend {
	t.Helper()
	backend := &PredictionBackend{status: status, body: body}
	mux := http.NewServeMux()
	mux.HandleFunc("/predict", func(w http.ResponseWriter, r *http.Request) {
		payload, _ := io.ReadAll(r.Body)
		backend.mu.Lock()
		backend.requests = append(backend.requests, payload)
		status, body := backend.status, backend.body
		backend.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	})
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, `{"status":"ok","model_loaded":true}`)
	})
	backend.Server = httptest.NewServer(mux)
	t.Cleanup(backend.Close)
	return backend
}

// Respond changes the scripted answer for later requests.
func (b *PredictionBackend) Respond(status int, body string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.status = status
	b.body = body
}

// Features decodes the feature vectors received so far.
func (b *PredictionBackend) Features(t *testing.T) [][]int {
	t.Helper()
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([][]int, 0, len(b.requests))
	for _, raw := range b.requests {
		var payload struct {
			Features []int `json:"features"`
		}
		if err := json.Unmarshal(raw, &payload); err != nil {
			t.Fatalf("decode prediction request %s: %v", raw, err)
		}
		out = append(out, payload.Features)
	}
	return out
}

// Calls reports how many prediction requests were received.
func (b *PredictionBackend) Calls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.requests)
}

// WriteGolden writes arbitrary data to a golden file when UPDATE_GOLDENS is set.
func WriteGolden(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
