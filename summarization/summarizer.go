package summarization

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/sashabaranov/go-openai"

	"go-hermes/feedprocessor"
)

const maxPromptLength = 15000 // Rough character limit for prompt

// ChatCompleter is the part of *openai.Client the summarizer uses.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Summarize sends a content body to OpenAI and requests a concise summary.
func Summarize(ctx context.Context, client ChatCompleter, origin, body string) (string, error) {
	if len(body) > maxPromptLength {
		log.Printf("Warning: body exceeds max prompt length (%d), truncating.", maxPromptLength)
		body = body[:maxPromptLength]
	}

	prompt := fmt.Sprintf("Summarize the following piece of web content from %s. Focus on the key statements, topics and overall tone. Provide a concise summary (2-3 sentences maximum):\n\n---\n%s\n---\n\nSummary:", origin, body)

	resp, err := client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4oMini,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: "You are an assistant that summarizes web content concisely.",
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   150,
			N:           1,
			Temperature: 0.5, // Lower temperature for more focused summary
		},
	)

	if err != nil {
		return "", fmt.Errorf("openai chat completion error: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openai returned empty response or choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// GenerateSummaries fills in the Summary field of analysed feed results.
// It modifies the input slice directly.
func GenerateSummaries(ctx context.Context, results []feedprocessor.Result, client ChatCompleter) {
	log.Printf("Starting summary generation for %d results...", len(results))

	var wg sync.WaitGroup

	for i := range results {
		wg.Add(1)
		go func(resultIndex int) {
			defer wg.Done()
			result := &results[resultIndex]

			if result.ErrorAnalysing || result.Document.Source.Body == "" {
				return
			}

			summary, err := Summarize(ctx, client, result.Document.Source.Origin, result.Document.Source.Body)
			if err != nil {
				log.Printf("Error getting summary for %s: %v. Skipping summary.", result.URI, err)
				return
			}

			result.Summary = summary
		}(i)
	}

	wg.Wait()

	log.Println("Summary generation finished.")
}
