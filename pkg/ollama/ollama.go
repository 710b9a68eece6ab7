package ollama

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Generate sends a system prompt and a user prompt to the model and returns
// the generated text.
func (o *ollamaImpl) Generate(ctx context.Context, system, prompt string) (string, error) {
	url := o.baseURL + chatCompletionsPath

	messages := make([]Message, 0, 2)
	if system != "" {
		messages = append(messages, Message{Role: "system", Content: system})
	}
	messages = append(messages, Message{Role: "user", Content: prompt})

	req := Request{
		Model:    o.model,
		Messages: messages,
		Stream:   false,
	}

	body, statusCode, err := o.httpClient.Post(ctx, url, req, nil)
	if err != nil {
		return "", fmt.Errorf("failed to call Ollama API: %w", err)
	}

	if statusCode != http.StatusOK {
		return "", fmt.Errorf("Ollama API returned status: %d, body: %s", statusCode, string(body))
	}

	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to unmarshal Ollama response: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no content generated")
	}

	return resp.Choices[0].Message.Content, nil
}
