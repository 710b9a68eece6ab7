package ollama

import pkghttp "salesreport-srv/pkg/http"

// OllamaConfig holds the configuration for the Ollama client.
type OllamaConfig struct {
	BaseURL string
	Model   string
}

// ollamaImpl implements IOllama against the OpenAI-compatible Ollama endpoint.
type ollamaImpl struct {
	baseURL    string
	model      string
	httpClient pkghttp.IClient
}

// Message is a single chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request is the request body for the chat completions API.
type Request struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
	Stream   bool      `json:"stream"`
}

// Choice is a single completion choice.
type Choice struct {
	Index        int     `json:"index"`
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

// Response is the response body from the chat completions API.
type Response struct {
	ID      string   `json:"id"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
}
