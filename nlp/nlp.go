package nlp

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"sync"

	language "cloud.google.com/go/language/apiv2"
	"cloud.google.com/go/language/apiv2/languagepb"
	"github.com/googleapis/gax-go/v2"
	"google.golang.org/api/option"

	"go-hermes/types"
)

// LanguageClient is the slice of *language.Client this module consumes.
// Handlers and the content package take the interface so tests can swap in
// a fake; production code passes the real client.
type LanguageClient interface {
	AnalyzeSentiment(ctx context.Context, req *languagepb.AnalyzeSentimentRequest, opts ...gax.CallOption) (*languagepb.AnalyzeSentimentResponse, error)
	ClassifyText(ctx context.Context, req *languagepb.ClassifyTextRequest, opts ...gax.CallOption) (*languagepb.ClassifyTextResponse, error)
}

// languageClient a singleton languageClient instance.
var (
	languageClient *language.Client
	clientOnce     sync.Once
)

// AnalyzeSentiment sends text to the Cloud Natural Language API and returns
// the document-level sentiment plus one entry per sentence.
func AnalyzeSentiment(ctx context.Context, client LanguageClient, text string) (types.Sentiment, error) {
	var sentiment types.Sentiment
	req := &languagepb.AnalyzeSentimentRequest{
		Document: &languagepb.Document{
			Source: &languagepb.Document_Content{
				Content: text,
			},
			Type: languagepb.Document_PLAIN_TEXT,
		},
		EncodingType: languagepb.EncodingType_UTF8,
	}

	resp, err := client.AnalyzeSentiment(ctx, req)
	if err != nil {
		return sentiment, fmt.Errorf("AnalyzeSentiment request error: %w", err)
	}

	sentiment.Overall = &types.OverallSentiment{
		Score:     resp.DocumentSentiment.Score,
		Magnitude: resp.DocumentSentiment.Magnitude,
	}

	sentiment.Content = make([]types.SentenceSentiment, 0, len(resp.Sentences))
	for _, s := range resp.Sentences {
		sentiment.Content = append(sentiment.Content, types.SentenceSentiment{
			Text:      s.Text.GetContent(),
			Score:     s.Sentiment.GetScore(),
			Magnitude: s.Sentiment.GetMagnitude(),
		})
	}

	return sentiment, nil
}

// ClassifyText sends text to the Cloud Natural Language API and returns the
// topical categories it detected. An empty slice means the API found none.
func ClassifyText(ctx context.Context, client LanguageClient, text string) ([]types.Category, error) {
	req := &languagepb.ClassifyTextRequest{
		Document: &languagepb.Document{
			Source: &languagepb.Document_Content{
				Content: text,
			},
			Type: languagepb.Document_PLAIN_TEXT,
		},
	}

	resp, err := client.ClassifyText(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("ClassifyText request error: %w", err)
	}

	var categories []types.Category
	for _, cat := range resp.Categories {
		categories = append(categories, types.Category{
			Category:   cat.Name,
			Confidence: cat.Confidence,
		})
	}
	return categories, nil
}

// initializes and returns a language client.
func InitLanguageClient() (*language.Client, error) {
	var err error

	clientOnce.Do(func() {
		// Decode credentials
		encodedCreds := os.Getenv("NATURAL_LANGUAGE_CREDENTIALS")
		creds, err := base64.StdEncoding.DecodeString(encodedCreds)
		if err != nil {
			log.Fatalf("Failed to decode Natural Language credentials: %v", err)
		}

		// Create the Natural Language API client using the decoded credentials
		opt := option.WithCredentialsJSON(creds)
		languageClient, err = language.NewClient(context.Background(), opt)
		if err != nil {
			log.Fatalf("Failed to create Natural Language client: %v", err)
		}
	})

	return languageClient, err
}

func CloseLanguageClient() {
	if languageClient != nil {
		languageClient.Close()
	}
}

// ComputeAverageSentiment averages the overall score across analysed
// documents. Documents without an overall sentiment are skipped.
func ComputeAverageSentiment(docs []types.Document) float32 {
	var totalScore float32
	count := 0

	for _, doc := range docs {
		if doc.Sentiment.Overall == nil {
			continue
		}
		totalScore += doc.Sentiment.Overall.Score
		count++
	}

	if count == 0 {
		return 0
	}

	return totalScore / float32(count)
}
