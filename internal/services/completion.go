package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/student-sumit04/AI-powered-meeting-notes-summarizer-and-sharer/internal/config"
	"github.com/student-sumit04/AI-powered-meeting-notes-summarizer-and-sharer/internal/domain"
)

const (
	completionTimeout = 2 * time.Minute

	// Fixed operational parameters, not user-tunable.
	completionTemperature = 0.3
	completionMaxTokens   = 2000
)

const systemPrompt = "You are a professional meeting summarizer. Create clear, structured summaries that are easy to read and actionable."

const defaultInstruction = "Please provide a comprehensive summary of this meeting transcript, highlighting key points, action items, and important decisions."

// CompletionService calls the Groq chat-completions endpoint (OpenAI wire
// format) to turn a transcript into a summary.
type CompletionService struct {
	apiKey     string
	apiURL     string
	model      string
	httpClient *http.Client
}

func NewCompletionService(cfg config.Config) *CompletionService {
	return &CompletionService{
		apiKey: cfg.GroqAPIKey,
		apiURL: cfg.GroqAPIURL,
		model:  cfg.Model,
		httpClient: &http.Client{
			Timeout: completionTimeout,
		},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

// Summarize sends the transcript to the completion service and returns the
// model's output verbatim. customPrompt replaces the default instruction
// when present; the transcript always follows it.
func (s *CompletionService) Summarize(ctx context.Context, transcript, customPrompt string) (string, error) {
	if err := s.ensureAPIKey(); err != nil {
		return "", domain.UpstreamError(domain.KindUpstreamAuth,
			"Invalid API key. Please check your Groq API configuration.", err)
	}

	instruction := customPrompt
	if strings.TrimSpace(instruction) == "" {
		instruction = defaultInstruction
	}

	payload := chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: fmt.Sprintf("%s\n\nTranscript:\n%s", instruction, transcript)},
		},
		Temperature: completionTemperature,
		MaxTokens:   completionMaxTokens,
	}

	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		return "", fmt.Errorf("encode completion payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, buf)
	if err != nil {
		return "", fmt.Errorf("create completion request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", domain.UpstreamError(domain.KindSummarizationFailed,
			"Failed to generate summary", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return "", s.mapStatusError(resp)
	}

	var response struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", domain.UpstreamError(domain.KindSummarizationFailed,
			"Failed to generate summary", fmt.Errorf("decode completion response: %w", err))
	}

	if len(response.Choices) == 0 {
		return "", domain.UpstreamError(domain.KindSummarizationFailed,
			"Failed to generate summary", errors.New("no completion returned"))
	}

	return response.Choices[0].Message.Content, nil
}

func (s *CompletionService) mapStatusError(resp *http.Response) error {
	cause := s.decodeAPIError(resp)

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.UpstreamError(domain.KindUpstreamAuth,
			"Invalid API key. Please check your Groq API configuration.", cause)
	case http.StatusTooManyRequests:
		return domain.UpstreamError(domain.KindUpstreamRateLimited,
			"API rate limit exceeded. Please try again later.", cause)
	default:
		return domain.UpstreamError(domain.KindSummarizationFailed,
			"Failed to generate summary", cause)
	}
}

func (s *CompletionService) decodeAPIError(resp *http.Response) error {
	var apiErr struct {
		Error struct {
			Message string `json:"message"`
			Type    string `json:"type"`
		} `json:"error"`
	}

	body, _ := io.ReadAll(resp.Body)

	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
		return fmt.Errorf("completion api error: status %d type %s message %s",
			resp.StatusCode, apiErr.Error.Type, apiErr.Error.Message)
	}

	return fmt.Errorf("completion api error: status %d body %s", resp.StatusCode, string(body))
}

func (s *CompletionService) ensureAPIKey() error {
	if strings.TrimSpace(s.apiKey) == "" {
		return errors.New("groq api key is not configured")
	}
	return nil
}
