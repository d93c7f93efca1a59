package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDetectNgrokURL(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "prefers https",
			body: `{"tunnels":[{"public_url":"http://a.ngrok.io","proto":"http"},{"public_url":"https://a.ngrok.io","proto":"https"}]}`,
			want: "https://a.ngrok.io",
		},
		{
			name: "falls back to any tunnel",
			body: `{"tunnels":[{"public_url":"http://b.ngrok.io","proto":"http"}]}`,
			want: "http://b.ngrok.io",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/api/tunnels" {
					w.WriteHeader(http.StatusNotFound)
					return
				}
				w.Write([]byte(tt.body))
			}))
			defer ts.Close()

			got, err := detectNgrokURL(context.Background(), ts.URL)
			if err != nil {
				t.Fatalf("detectNgrokURL() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("detectNgrokURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetectNgrokURL_CancelledWhileWaiting(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tunnels":[]}`))
	}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := detectNgrokURL(ctx, ts.URL); err == nil {
		t.Fatal("expected an error once the context is cancelled")
	}
}
