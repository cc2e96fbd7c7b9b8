package provider

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"voxrace/internal/config"
)

func deepgramTestConfig(endpoint string) config.DeepgramConfig {
	return config.DeepgramConfig{
		APIKey:    "dg_test",
		Endpoint:  endpoint,
		Model:     "nova-3",
		Language:  "en",
		TimeoutMS: 5000,
	}
}

func TestDeepgramTranscribe(t *testing.T) {
	payload := []byte("RIFFfake-wav-bytes")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Token dg_test" {
			t.Errorf("unexpected auth header %q", got)
		}
		if got := r.Header.Get("Content-Type"); got != "audio/wav" {
			t.Errorf("unexpected content type %q", got)
		}
		if got := r.URL.Query().Get("model"); got != "nova-3" {
			t.Errorf("unexpected model param %q", got)
		}
		if got := r.URL.Query().Get("language"); got != "en" {
			t.Errorf("unexpected language param %q", got)
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != string(payload) {
			t.Errorf("audio payload was not forwarded verbatim")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":{"channels":[{"alternatives":[{"transcript":"the quick brown fox","confidence":0.98}]}]}}`))
	}))
	defer srv.Close()

	d := NewDeepgram(deepgramTestConfig(srv.URL))
	result, err := d.Transcribe(context.Background(), payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Text != "the quick brown fox" {
		t.Fatalf("unexpected text %q", result.Text)
	}
	if result.Elapsed <= 0 {
		t.Fatal("expected elapsed time to be measured")
	}
}

func TestDeepgramTranscribeAuthError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"err_code":"INVALID_AUTH","err_msg":"Invalid credentials."}`))
	}))
	defer srv.Close()

	d := NewDeepgram(deepgramTestConfig(srv.URL))
	_, err := d.Transcribe(context.Background(), []byte("RIFFfake"))
	if err == nil {
		t.Fatal("expected auth error")
	}
	if want := "Invalid credentials."; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error to carry %q, got %q", want, err.Error())
	}
}

func TestDeepgramTranscribeEmptyResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"results":{"channels":[]}}`))
	}))
	defer srv.Close()

	d := NewDeepgram(deepgramTestConfig(srv.URL))
	result, err := d.Transcribe(context.Background(), []byte("RIFFfake"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Text != "" {
		t.Fatalf("expected empty transcript, got %q", result.Text)
	}
}

func TestDeepgramTranscribeMissingKey(t *testing.T) {
	cfg := deepgramTestConfig("http://localhost:0")
	cfg.APIKey = ""
	d := NewDeepgram(cfg)
	if _, err := d.Transcribe(context.Background(), []byte("RIFFfake")); err == nil {
		t.Fatal("expected error for missing api key")
	}
}

func TestDeepgramName(t *testing.T) {
	d := NewDeepgram(deepgramTestConfig("http://localhost:0"))
	if d.Name() != "Deepgram (nova-3)" {
		t.Fatalf("unexpected name %q", d.Name())
	}
}
