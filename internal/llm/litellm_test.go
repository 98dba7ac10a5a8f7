package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLiteLLMClientChat(t *testing.T) {
	var gotBody struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("Failed to decode request body: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":     "chatcmpl-test",
			"object": "chat.completion",
			"choices": []map[string]interface{}{
				{
					"index": 0,
					"message": map[string]string{
						"role":    "assistant",
						"content": "Hello there",
					},
					"finish_reason": "stop",
				},
			},
		})
	}))
	defer srv.Close()

	client := NewLiteLLMClient(srv.URL, "test-key", "test-model")

	reply, err := client.Chat(context.Background(), "user: Hello")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if reply != "Hello there" {
		t.Errorf("Expected reply 'Hello there', got %q", reply)
	}
	if gotBody.Model != "test-model" {
		t.Errorf("Expected model 'test-model', got %q", gotBody.Model)
	}
	if len(gotBody.Messages) != 1 {
		t.Fatalf("Expected 1 message, got %d", len(gotBody.Messages))
	}
	if gotBody.Messages[0].Role != "user" || gotBody.Messages[0].Content != "user: Hello" {
		t.Errorf("Expected flattened prompt as a single user message, got %+v", gotBody.Messages[0])
	}
}

func TestLiteLLMClientChatUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "invalid model"}}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	client := NewLiteLLMClient(srv.URL, "test-key", "test-model")

	if _, err := client.Chat(context.Background(), "user: hi"); err == nil {
		t.Fatal("Expected error for upstream failure")
	}
}

func TestLiteLLMClientChatNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "chatcmpl-test", "object": "chat.completion", "choices": []}`))
	}))
	defer srv.Close()

	client := NewLiteLLMClient(srv.URL, "test-key", "test-model")

	if _, err := client.Chat(context.Background(), "user: hi"); err == nil {
		t.Fatal("Expected error for empty choices")
	}
}
