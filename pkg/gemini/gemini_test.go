package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"grocery-assistant/pkg/gemini"
)

func TestGemini_GenerateContent(t *testing.T) {
	var captured map[string]interface{}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.URL.Path != "/models/gemini-test:generateContent" {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		json.NewDecoder(r.Body).Decode(&captured)
		contents := captured["contents"].([]interface{})
		first := contents[0].(map[string]interface{})
		text := first["parts"].([]interface{})[0].(map[string]interface{})["text"]
		if text == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"candidates": [
				{
					"content": {"role": "model", "parts": [{"text": "Try a "}, {"text": "lentil soup."}]},
					"finishReason": "STOP"
				}
			],
			"usageMetadata": {"promptTokenCount": 12, "candidatesTokenCount": 5, "totalTokenCount": 17}
		}`))
	}))
	defer ts.Close()

	client, err := gemini.New(gemini.Config{
		APIKey: "test-api-key",
		Model:  "gemini-test",
		APIURL: ts.URL,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("Success Flow", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), &gemini.Request{
			SystemInstruction: "You are a grocery assistant.",
			Messages:          []gemini.Content{{Role: "user", Text: "soup idea"}},
			Temperature:       0.4,
			MaxTokens:         200,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text != "Try a lentil soup." {
			t.Errorf("unexpected text: %q", resp.Text)
		}
		if resp.Usage.TotalTokens != 17 || resp.FinishReason != "STOP" {
			t.Errorf("unexpected metadata: %+v", resp)
		}
		if _, ok := captured["systemInstruction"]; !ok {
			t.Errorf("expected systemInstruction in request body")
		}
		if _, ok := captured["generationConfig"]; !ok {
			t.Errorf("expected generationConfig in request body")
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), &gemini.Request{
			Messages: []gemini.Content{{Role: "user", Text: "cause_500"}},
		})
		if err == nil {
			t.Fatal("expected error from 500 response")
		}
	})

	t.Run("Missing API key", func(t *testing.T) {
		if _, err := gemini.New(gemini.Config{}); err == nil {
			t.Fatal("expected validation error")
		}
	})
}
