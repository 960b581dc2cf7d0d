package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/okhramov/llm-telegram-bot/pkg/domain"
)

type recordedRequest struct {
	Model       string  `json:"model"`
	Temperature float32 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
	Messages    []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func completionServer(t *testing.T, recorded *recordedRequest, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if recorded != nil {
			if err := json.NewDecoder(r.Body).Decode(recorded); err != nil {
				t.Errorf("decoding request: %v", err)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

const completionBody = `{
	"id": "chatcmpl-1",
	"object": "chat.completion",
	"created": 1,
	"model": "test-model",
	"choices": [{"index": 0, "message": {"role": "assistant", "content": "hello!"}, "finish_reason": "stop"}]
}`

func TestGenerateResponse(t *testing.T) {
	var recorded recordedRequest
	srv := completionServer(t, &recorded, http.StatusOK, completionBody)

	provider, err := NewLocal(Config{Kind: "local", Model: "test-model", BaseURL: srv.URL + "/v1"})
	if err != nil {
		t.Fatal(err)
	}

	messages := []domain.ChatMessage{
		{Role: domain.RoleSystem, Content: "be brief"},
		{Role: domain.RoleUser, Content: "hi"},
		{Role: domain.RoleAssistant, Content: "hello"},
		{Role: domain.RoleUser, Content: "again"},
	}

	reply, err := provider.GenerateResponse(context.Background(), messages, domain.GenerationSettings{Temperature: 0.7})
	if err != nil {
		t.Fatalf("GenerateResponse() error = %v", err)
	}
	if reply != "hello!" {
		t.Errorf("GenerateResponse() = %q, want %q", reply, "hello!")
	}

	if recorded.Model != "test-model" {
		t.Errorf("request model = %q", recorded.Model)
	}
	if recorded.Temperature != 0.7 {
		t.Errorf("request temperature = %v, want 0.7", recorded.Temperature)
	}
	if recorded.MaxTokens != 0 {
		t.Errorf("request max_tokens = %d, want omitted/zero", recorded.MaxTokens)
	}

	wantRoles := []string{"system", "user", "assistant", "user"}
	if len(recorded.Messages) != len(wantRoles) {
		t.Fatalf("request carries %d messages, want %d", len(recorded.Messages), len(wantRoles))
	}
	for i, want := range wantRoles {
		if recorded.Messages[i].Role != want {
			t.Errorf("messages[%d].Role = %q, want %q (roles pass through unchanged)", i, recorded.Messages[i].Role, want)
		}
	}
}

func TestGenerateResponse_UnknownRoleSentAsUser(t *testing.T) {
	var recorded recordedRequest
	srv := completionServer(t, &recorded, http.StatusOK, completionBody)

	provider, err := NewLocal(Config{Model: "test-model", BaseURL: srv.URL + "/v1"})
	if err != nil {
		t.Fatal(err)
	}

	messages := []domain.ChatMessage{{Role: "narrator", Content: "once upon a time"}}
	if _, err := provider.GenerateResponse(context.Background(), messages, domain.GenerationSettings{}); err != nil {
		t.Fatal(err)
	}

	if recorded.Messages[0].Role != "user" {
		t.Errorf("unknown role sent as %q, want user", recorded.Messages[0].Role)
	}
}

func TestGenerateResponse_BackendFailure(t *testing.T) {
	srv := completionServer(t, nil, http.StatusTooManyRequests, `{"error": {"message": "rate limited", "type": "requests"}}`)

	provider, err := NewLocal(Config{Model: "test-model", BaseURL: srv.URL + "/v1"})
	if err != nil {
		t.Fatal(err)
	}

	_, err = provider.GenerateResponse(context.Background(), []domain.ChatMessage{{Role: "user", Content: "hi"}}, domain.GenerationSettings{})

	var providerErr *ProviderError
	if !errors.As(err, &providerErr) {
		t.Fatalf("GenerateResponse() error = %v, want *ProviderError", err)
	}
	if providerErr.Backend != "local" {
		t.Errorf("ProviderError.Backend = %q, want local", providerErr.Backend)
	}
}

func TestGenerateResponse_EmptyChoices(t *testing.T) {
	srv := completionServer(t, nil, http.StatusOK, `{"id": "1", "object": "chat.completion", "choices": []}`)

	provider, err := NewLocal(Config{Model: "test-model", BaseURL: srv.URL + "/v1"})
	if err != nil {
		t.Fatal(err)
	}

	_, err = provider.GenerateResponse(context.Background(), []domain.ChatMessage{{Role: "user", Content: "hi"}}, domain.GenerationSettings{})

	var providerErr *ProviderError
	if !errors.As(err, &providerErr) {
		t.Fatalf("GenerateResponse() with no choices: error = %v, want *ProviderError", err)
	}
}

func TestGenerateResponse_EmptyContent(t *testing.T) {
	body := `{
		"id": "1",
		"object": "chat.completion",
		"choices": [{"index": 0, "message": {"role": "assistant", "content": ""}, "finish_reason": "stop"}]
	}`
	srv := completionServer(t, nil, http.StatusOK, body)

	provider, err := NewLocal(Config{Model: "test-model", BaseURL: srv.URL + "/v1"})
	if err != nil {
		t.Fatal(err)
	}

	// A blank completion must surface as an error, never as an empty reply.
	if _, err := provider.GenerateResponse(context.Background(), []domain.ChatMessage{{Role: "user", Content: "hi"}}, domain.GenerationSettings{}); err == nil {
		t.Fatal("GenerateResponse() with empty content returned nil error")
	}
}
