package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"grocery-assistant/internal/action"
	"grocery-assistant/internal/conversation"
	"grocery-assistant/internal/intent"
	"grocery-assistant/internal/middleware"
	"grocery-assistant/internal/reply"
	"grocery-assistant/pkg/log"
)

type stubTelegram struct{ hits int }

func (s *stubTelegram) HandleWebhook(c *gin.Context) {
	s.hits++
	c.Status(http.StatusOK)
}

func newTestServer(t *testing.T, tg *stubTelegram) *HTTPServer {
	t.Helper()
	l := log.NewNop()
	catalog := action.New()
	classifier := intent.New(nil)
	synth, err := reply.New(nil, catalog, reply.Config{}, l)
	if err != nil {
		t.Fatalf("reply.New() error = %v", err)
	}
	sessions := conversation.NewRegistry(conversation.RegistryConfig{}, func() *conversation.Engine {
		return conversation.New(classifier, synth, l)
	}, l)

	cfg := Config{
		Logger:      l,
		Port:        8080,
		Mode:        gin.TestMode,
		Environment: "test",
		Middleware:  middleware.New(l, middleware.Config{TelegramSecret: "s3cret"}),
		Sessions:    sessions,
		Classifier:  classifier,
		Catalog:     catalog,
	}
	if tg != nil {
		cfg.TelegramHandler = tg
	}

	srv, err := New(l, cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return srv
}

func serve(srv *HTTPServer, method, path, body string, header map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestNew_Validation(t *testing.T) {
	l := log.NewNop()
	tests := []struct {
		name string
		cfg  Config
	}{
		{"missing mode", Config{Port: 8080}},
		{"missing port", Config{Mode: gin.TestMode}},
		{"missing assistant", Config{Port: 8080, Mode: gin.TestMode}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(l, tt.cfg); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t, nil)

	for _, path := range []string{"/health", "/ready", "/live"} {
		t.Run(path, func(t *testing.T) {
			w := serve(srv, http.MethodGet, path, "", nil)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", w.Code)
			}
			var body struct {
				Data map[string]any `json:"data"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Data["service"] != ServiceName {
				t.Errorf("service = %v, want %s", body.Data["service"], ServiceName)
			}
		})
	}
}

func TestAssistantRoutes(t *testing.T) {
	srv := newTestServer(t, nil)

	w := serve(srv, http.MethodPost, "/api/v1/assistant/sessions/abc/messages", `{"text":"where can I find milk"}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("send status = %d, body %s", w.Code, w.Body.String())
	}

	w = serve(srv, http.MethodGet, "/ready", "", nil)
	if !strings.Contains(w.Body.String(), `"sessions":1`) {
		t.Errorf("expected one live session, got %s", w.Body.String())
	}

	if w := serve(srv, http.MethodGet, "/api/v1/assistant/actions", "", nil); w.Code != http.StatusOK {
		t.Errorf("actions status = %d", w.Code)
	}
}

func TestTelegramRoute(t *testing.T) {
	if w := serve(newTestServer(t, nil), http.MethodPost, TelegramWebhookPath, `{}`, nil); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 without a telegram handler, got %d", w.Code)
	}

	tg := &stubTelegram{}
	srv := newTestServer(t, tg)

	if w := serve(srv, http.MethodPost, TelegramWebhookPath, `{}`, nil); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without secret, got %d", w.Code)
	}
	w := serve(srv, http.MethodPost, TelegramWebhookPath, `{}`, map[string]string{
		middleware.HeaderTelegramSecret: "s3cret",
	})
	if w.Code != http.StatusOK || tg.hits != 1 {
		t.Errorf("expected webhook to reach the handler, got %d hits=%d", w.Code, tg.hits)
	}
}
