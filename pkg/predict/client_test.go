package predict_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-medrec/pkg/form"
	"github.com/goliatone/go-medrec/pkg/predict"
)

type capturedRequest struct {
	Method      string
	Path        string
	ContentType string
	Features    []int
}

func newBackend(t *testing.T, status int, body string, captured *capturedRequest) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if captured != nil {
			captured.Method = r.Method
			captured.Path = r.URL.Path
			captured.ContentType = r.Header.Get("Content-Type")
			var payload struct {
				Features []int `json:"features"`
			}
			_ = json.NewDecoder(r.Body).Decode(&payload)
			captured.Features = payload.Features
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func mustPayload(t *testing.T, snap form.Snapshot) predict.Payload {
	t.Helper()
	payload, err := predict.NewPayload(snap)
	if err != nil {
		t.Fatalf("new payload: %v", err)
	}
	return payload
}

func TestClient_PredictSendsCanonicalFeatures(t *testing.T) {
	var captured capturedRequest
	srv := newBackend(t, http.StatusOK, `{"prediction":"Severity Level: Mild"}`, &captured)

	client, err := predict.New(predict.WithBaseURL(srv.URL + "/"))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	store := form.NewStore()
	if err := store.SetField("cough", 1); err != nil {
		t.Fatalf("set field: %v", err)
	}

	text, err := client.Predict(context.Background(), mustPayload(t, store.Snapshot()))
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if text != "Severity Level: Mild" {
		t.Fatalf("unexpected prediction %q", text)
	}

	want := capturedRequest{
		Method:      http.MethodPost,
		Path:        "/predict",
		ContentType: "application/json",
		Features:    store.Snapshot().Values(),
	}
	if diff := cmp.Diff(want, captured); diff != "" {
		t.Fatalf("request mismatch (-want +got):\n%s", diff)
	}
	if captured.Features[20] != 1 {
		t.Fatalf("cough should be serialized at position 20: %v", captured.Features)
	}
}

func TestClient_PredictRemoteRejection(t *testing.T) {
	srv := newBackend(t, http.StatusBadRequest, `{"error":"Expected 34 features, but got 3"}`, nil)
	client, err := predict.New(predict.WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	_, err = client.Predict(context.Background(), mustPayload(t, form.DefaultSnapshot()))
	var rejection *predict.RemoteRejection
	if !errors.As(err, &rejection) {
		t.Fatalf("expected RemoteRejection, got %v", err)
	}
	if rejection.Message != "Expected 34 features, but got 3" || rejection.StatusCode != http.StatusBadRequest {
		t.Fatalf("unexpected rejection: %+v", rejection)
	}
}

func TestClient_PredictTransportFailures(t *testing.T) {
	cases := map[string]string{
		"html body":     `<html>bad gateway</html>`,
		"null body":     `null`,
		"wrong type":    `{"prediction": 42}`,
		"empty object":  `{}`,
		"truncated":     `{"prediction": "Sev`,
		"array payload": `["prediction"]`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			srv := newBackend(t, http.StatusOK, body, nil)
			client, err := predict.New(predict.WithBaseURL(srv.URL))
			if err != nil {
				t.Fatalf("new client: %v", err)
			}
			_, err = client.Predict(context.Background(), mustPayload(t, form.DefaultSnapshot()))
			var transport *predict.TransportError
			if !errors.As(err, &transport) {
				t.Fatalf("expected TransportError, got %v", err)
			}
		})
	}
}

func TestClient_PredictRejectsContractViolations(t *testing.T) {
	client, err := predict.New(predict.WithBaseURL("http://127.0.0.1:1"))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	_, err = client.Predict(context.Background(), predict.Payload{})
	if err == nil {
		t.Fatalf("expected empty payload to violate the contract")
	}
	var transport *predict.TransportError
	if errors.As(err, &transport) {
		t.Fatalf("contract violations must be reported before any exchange, got %v", err)
	}
}

func TestClient_Health(t *testing.T) {
	var captured capturedRequest
	srv := newBackend(t, http.StatusOK, `{"status":"healthy","model_loaded":true}`, &captured)
	client, err := predict.New(predict.WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	health, err := client.Health(context.Background())
	if err != nil {
		t.Fatalf("health: %v", err)
	}
	if diff := cmp.Diff(predict.Health{Status: "healthy", ModelLoaded: true}, health); diff != "" {
		t.Fatalf("health mismatch (-want +got):\n%s", diff)
	}
	if captured.Method != http.MethodGet || captured.Path != "/health" {
		t.Fatalf("unexpected request %s %s", captured.Method, captured.Path)
	}
}

func TestResolveBaseURL(t *testing.T) {
	t.Setenv(predict.BaseURLEnv, "")
	if got := predict.ResolveBaseURL(""); got != predict.DefaultBaseURL {
		t.Fatalf("expected default base URL, got %q", got)
	}

	t.Setenv(predict.BaseURLEnv, "https://medrec.example.com/api/")
	if got := predict.ResolveBaseURL(""); got != "https://medrec.example.com/api" {
		t.Fatalf("expected env base URL, got %q", got)
	}
	if got := predict.ResolveBaseURL("http://override:8000"); got != "http://override:8000" {
		t.Fatalf("explicit base URL should win, got %q", got)
	}
}
