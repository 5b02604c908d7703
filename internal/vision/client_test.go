package vision_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/farmassist/farmassist/server/internal/config"
	"github.com/farmassist/farmassist/server/internal/vision"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *vision.Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return vision.NewClient(config.VisionConfig{
		APIKey:   "test-key",
		Model:    "test-model",
		Endpoint: ts.URL,
	})
}

func generateReply(text string) string {
	return `{"candidates":[{"content":{"parts":[{"text":` + jsonString(text) + `}]}}]}`
}

func jsonString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestClassify_OK(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if !strings.Contains(r.URL.Path, "test-model") {
			t.Errorf("path = %q, want model name in path", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("key = %q, want test-key", r.URL.Query().Get("key"))
		}
		w.Write([]byte(generateReply(`{"isPlant": true}`)))
	})

	out := c.Classify(context.Background(), []byte("image-bytes"), "image/png")
	if out.Status != vision.StatusOK {
		t.Fatalf("Classify().Status = %v, want StatusOK (err: %v)", out.Status, out.Err)
	}
	if out.Text != `{"isPlant": true}` {
		t.Errorf("Classify().Text = %q, want model text", out.Text)
	}
}

func TestClassify_RateLimited(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	out := c.Classify(context.Background(), []byte("img"), "image/jpeg")
	if out.Status != vision.StatusRateLimited {
		t.Errorf("Classify().Status = %v, want StatusRateLimited", out.Status)
	}
}

func TestClassify_UpstreamFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal", http.StatusInternalServerError)
	})

	out := c.Classify(context.Background(), []byte("img"), "image/jpeg")
	if out.Status != vision.StatusError {
		t.Errorf("Classify().Status = %v, want StatusError", out.Status)
	}
	if out.Err == nil {
		t.Error("Classify().Err = nil, want error detail")
	}
}

func TestClassify_BadEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	})

	out := c.Classify(context.Background(), []byte("img"), "image/jpeg")
	if out.Status != vision.StatusError {
		t.Errorf("Classify().Status = %v, want StatusError for unparseable envelope", out.Status)
	}
}

func TestClassify_NoTextParts(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	})

	out := c.Classify(context.Background(), []byte("img"), "image/jpeg")
	if out.Status != vision.StatusInvalidResponse {
		t.Errorf("Classify().Status = %v, want StatusInvalidResponse", out.Status)
	}
}

func TestClassify_TransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // closed server: connection refused

	c := vision.NewClient(config.VisionConfig{APIKey: "k", Model: "m", Endpoint: ts.URL})
	out := c.Classify(context.Background(), []byte("img"), "image/jpeg")
	if out.Status != vision.StatusError {
		t.Errorf("Classify().Status = %v, want StatusError", out.Status)
	}
}
