package ai

// Purpose selects the configured model for a request.
type Purpose int

const (
	PurposeChat Purpose = iota
	PurposeTitle
)

// Message is one entry of the prompt.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionRequest is a provider independent completion call.
type CompletionRequest struct {
	Purpose     Purpose
	Messages    []Message
	MaxTokens   int
	Temperature float64
}

// Completion is the first choice returned by the provider.
type Completion struct {
	Content      string
	FinishReason string
	Model        string
}

type chatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Temperature float64   `json:"temperature,omitempty"`
}

type chatCompletionResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

type fileObject struct {
	ID string `json:"id"`
}

type vectorStoreFileRequest struct {
	FileID string `json:"file_id"`
}

type apiErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}
