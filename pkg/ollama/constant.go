package ollama

// DefaultModel is used when no model is configured.
const DefaultModel = "llama3.2"

// chatCompletionsPath is the OpenAI-compatible chat endpoint exposed by Ollama.
const chatCompletionsPath = "/v1/chat/completions"
