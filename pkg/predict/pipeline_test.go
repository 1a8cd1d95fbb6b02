package predict_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-medrec/pkg/form"
	"github.com/goliatone/go-medrec/pkg/predict"
)

type loadingRecorder struct {
	mu          sync.Mutex
	transitions []bool
}

func (r *loadingRecorder) observe(e form.Event) {
	if e.Kind != form.EventLoadingChanged {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transitions = append(r.transitions, e.Loading)
}

func (r *loadingRecorder) get() []bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]bool(nil), r.transitions...)
}

func newPipeline(t *testing.T, baseURL string) *predict.Pipeline {
	t.Helper()
	client, err := predict.New(predict.WithBaseURL(baseURL))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return predict.NewPipeline(client)
}

func TestPipeline_SubmitSuccess(t *testing.T) {
	srv := newBackend(t, http.StatusOK, `{"prediction":"Severity Level: High\n• MedA\nNote: consult a doctor"}`, nil)
	rec := &loadingRecorder{}
	store := form.NewStore(form.WithObserver(rec.observe))

	result, err := newPipeline(t, srv.URL).Submit(context.Background(), store)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	want := form.Success("Severity Level: High\n• MedA\nNote: consult a doctor")
	if diff := cmp.Diff(want, result); diff != "" {
		t.Fatalf("result mismatch (-want +got):\n%s", diff)
	}
	stored, ok := store.Result()
	if !ok || stored != result {
		t.Fatalf("result not written back to store: %+v", stored)
	}
	if diff := cmp.Diff([]bool{true, false}, rec.get()); diff != "" {
		t.Fatalf("loading transitions mismatch (-want +got):\n%s", diff)
	}
}

func TestPipeline_SubmitRemoteRejection(t *testing.T) {
	srv := newBackend(t, http.StatusInternalServerError, `{"error":"X"}`, nil)
	store := form.NewStore()

	result, err := newPipeline(t, srv.URL).Submit(context.Background(), store)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.OK() || result.Message != "X" || result.Failure != form.FailureRemoteRejection {
		t.Fatalf("unexpected result: %+v", result)
	}
	if store.Loading() {
		t.Fatalf("loading must be false after completion")
	}
}

func TestPipeline_SubmitConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()

	rec := &loadingRecorder{}
	store := form.NewStore(form.WithObserver(rec.observe))

	result, err := newPipeline(t, baseURL).Submit(context.Background(), store)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.Message != predict.TransportMessage || result.Failure != form.FailureTransport {
		t.Fatalf("unexpected result: %+v", result)
	}
	if diff := cmp.Diff([]bool{true, false}, rec.get()); diff != "" {
		t.Fatalf("loading must transition true->false exactly once (-want +got):\n%s", diff)
	}
}

func TestPipeline_SubmitValidationFailureSkipsNetwork(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte(`{"prediction":"unused"}`))
	}))
	t.Cleanup(srv.Close)

	store := form.NewStore()
	if err := store.SetField(form.FieldAgeGroup, 9); err != nil {
		t.Fatalf("set field: %v", err)
	}

	result, err := newPipeline(t, srv.URL).Submit(context.Background(), store)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.Failure != form.FailureValidation {
		t.Fatalf("expected validation failure, got %+v", result)
	}
	if calls != 0 {
		t.Fatalf("expected no backend call, got %d", calls)
	}
	if store.Loading() {
		t.Fatalf("loading must be cleared after a validation failure")
	}
}

type blockingPredictor struct {
	started chan struct{}
	release chan struct{}
}

func (b *blockingPredictor) Predict(ctx context.Context, _ predict.Payload) (string, error) {
	close(b.started)
	<-b.release
	return "done", nil
}

func TestPipeline_RejectsOverlappingSubmission(t *testing.T) {
	predictor := &blockingPredictor{started: make(chan struct{}), release: make(chan struct{})}
	pipeline := predict.NewPipeline(predictor)
	store := form.NewStore()

	done := make(chan form.Result, 1)
	go func() {
		result, _ := pipeline.Submit(context.Background(), store)
		done <- result
	}()

	<-predictor.started
	if _, err := pipeline.Submit(context.Background(), store); !errors.Is(err, form.ErrSubmissionInFlight) {
		t.Fatalf("expected ErrSubmissionInFlight, got %v", err)
	}

	close(predictor.release)
	result := <-done
	if !result.OK() || result.Text != "done" {
		t.Fatalf("first submission should complete normally: %+v", result)
	}
	if store.Loading() {
		t.Fatalf("loading must be cleared")
	}
}

type panickingPredictor struct{}

func (panickingPredictor) Predict(context.Context, predict.Payload) (string, error) {
	panic("boom")
}

func TestPipeline_ClearsLoadingOnPanic(t *testing.T) {
	store := form.NewStore()
	pipeline := predict.NewPipeline(panickingPredictor{})

	func() {
		defer func() { _ = recover() }()
		_, _ = pipeline.Submit(context.Background(), store)
	}()

	if store.Loading() {
		t.Fatalf("loading must be cleared even when the exchange panics")
	}
	result, ok := store.Result()
	if !ok || result.Message != predict.TransportMessage {
		t.Fatalf("expected transport failure recorded, got %+v", result)
	}
}

func TestPipeline_NilStore(t *testing.T) {
	if _, err := predict.NewPipeline(nil).Submit(context.Background(), nil); !errors.Is(err, predict.ErrNilStore) {
		t.Fatalf("expected ErrNilStore, got %v", err)
	}
}

func TestResultFromError(t *testing.T) {
	if got := predict.ResultFromError(errors.New("dial tcp: refused")); got.Message != predict.TransportMessage {
		t.Fatalf("unexpected message %q", got.Message)
	}
	wrapped := &predict.TransportError{Op: "send", Err: &predict.RemoteRejection{Message: "inner"}}
	if got := predict.ResultFromError(wrapped); got.Failure != form.FailureRemoteRejection {
		t.Fatalf("errors.As should see through wrapping: %+v", got)
	}
}
