package deepseek_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"grocery-assistant/pkg/deepseek"
)

func TestClient_GenerateContent(t *testing.T) {
	var captured deepseek.Request

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"message":"bad key"}}`))
			return
		}
		json.NewDecoder(r.Body).Decode(&captured)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"id": "cmpl-1",
			"model": "deepseek-chat",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "Aisle 4."}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 9, "completion_tokens": 3, "total_tokens": 12}
		}`))
	}))
	defer ts.Close()

	t.Run("Success Flow", func(t *testing.T) {
		client, err := deepseek.New(deepseek.Config{APIKey: "test-key", BaseURL: ts.URL})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		resp, err := client.GenerateContent(context.Background(), &deepseek.Request{
			Messages: []deepseek.Message{{Role: "user", Content: "where is milk"}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text() != "Aisle 4." {
			t.Errorf("unexpected text: %q", resp.Text())
		}
		if captured.Model != deepseek.DefaultModel {
			t.Errorf("expected default model to be filled, got %q", captured.Model)
		}
		if resp.Usage == nil || resp.Usage.TotalTokens != 12 {
			t.Errorf("unexpected usage: %+v", resp.Usage)
		}
	})

	t.Run("API error surfaces message", func(t *testing.T) {
		client, _ := deepseek.New(deepseek.Config{APIKey: "wrong", BaseURL: ts.URL})
		_, err := client.GenerateContent(context.Background(), &deepseek.Request{
			Messages: []deepseek.Message{{Role: "user", Content: "hi"}},
		})
		if err == nil || !strings.Contains(err.Error(), "bad key") {
			t.Fatalf("expected API error with message, got %v", err)
		}
	})

	t.Run("Missing API key", func(t *testing.T) {
		if _, err := deepseek.New(deepseek.Config{}); err == nil {
			t.Fatal("expected validation error")
		}
	})

	t.Run("Empty response text", func(t *testing.T) {
		var r *deepseek.Response
		if r.Text() != "" {
			t.Error("nil response should yield empty text")
		}
	})
}
