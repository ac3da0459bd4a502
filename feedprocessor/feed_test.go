package feedprocessor

import (
	"context"
	"errors"
	"testing"

	"cloud.google.com/go/language/apiv2/languagepb"
	"github.com/googleapis/gax-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-hermes/types"
)

type fakeLanguageClient struct {
	sentimentErr error
}

func (f *fakeLanguageClient) AnalyzeSentiment(ctx context.Context, req *languagepb.AnalyzeSentimentRequest, opts ...gax.CallOption) (*languagepb.AnalyzeSentimentResponse, error) {
	if f.sentimentErr != nil {
		return nil, f.sentimentErr
	}
	return &languagepb.AnalyzeSentimentResponse{
		DocumentSentiment: &languagepb.Sentiment{Score: 0.4, Magnitude: 0.6},
		Sentences: []*languagepb.Sentence{
			{
				Text:      &languagepb.TextSpan{Content: req.Document.GetContent()},
				Sentiment: &languagepb.Sentiment{Score: 0.4, Magnitude: 0.6},
			},
		},
	}, nil
}

func (f *fakeLanguageClient) ClassifyText(ctx context.Context, req *languagepb.ClassifyTextRequest, opts ...gax.CallOption) (*languagepb.ClassifyTextResponse, error) {
	return &languagepb.ClassifyTextResponse{}, nil
}

func testFeed() types.FeedResponse {
	return types.FeedResponse{
		Cursor: "next",
		Feed: []types.FeedEntry{
			{
				Post: types.Post{
					URI: "at://did:plc:abc/app.bsky.feed.post/1",
					Author: types.Author{
						Handle:      "jane.bsky.social",
						DisplayName: "Jane",
					},
					Record: types.Record{
						CreatedAt: "2026-03-01T10:00:00Z",
						Text:      "What a lovely morning on the coast!",
						Langs:     []string{"en"},
						Facets: []types.Facet{
							{Features: []types.Feature{{Type: "app.bsky.richtext.facet#tag", Tag: "morning"}}},
						},
					},
				},
			},
			{
				// No URI, must be skipped.
				Post: types.Post{Record: types.Record{Text: "orphan"}},
			},
		},
	}
}

func TestAnalyzeFeed(t *testing.T) {
	results := AnalyzeFeed(context.Background(), testFeed(), &fakeLanguageClient{})

	require.Len(t, results, 1)
	result := results[0]

	assert.Equal(t, "at://did:plc:abc/app.bsky.feed.post/1", result.URI)
	assert.Equal(t, "jane.bsky.social", result.Handle)
	assert.False(t, result.ErrorAnalysing)

	src := result.Document.Source
	assert.Equal(t, "bluesky", src.Origin)
	assert.Equal(t, "What a lovely morning on the coast!", src.Body)
	assert.Equal(t, "2026-03-01T10:00:00Z", src.Date)
	assert.Equal(t, types.StringList{"jane.bsky.social"}, src.Author)
	assert.Equal(t, types.StringList{"morning"}, src.Tags)

	require.NotNil(t, result.Document.Sentiment.Overall)
	assert.Equal(t, float32(0.4), result.Document.Sentiment.Overall.Score)
	require.Len(t, result.Document.Sentiment.Content, 1)
}

func TestAnalyzeFeedMarksClientErrors(t *testing.T) {
	fake := &fakeLanguageClient{sentimentErr: errors.New("unavailable")}

	results := AnalyzeFeed(context.Background(), testFeed(), fake)

	require.Len(t, results, 1)
	assert.True(t, results[0].ErrorAnalysing)
	assert.Nil(t, results[0].Document.Sentiment.Overall)
}

func TestFacetTags(t *testing.T) {
	record := types.Record{
		Facets: []types.Facet{
			{Features: []types.Feature{
				{Type: "app.bsky.richtext.facet#tag", Tag: "fire"},
				{Type: "app.bsky.richtext.facet#link", URI: "https://example.com"},
			}},
			{Features: []types.Feature{{Type: "app.bsky.richtext.facet#tag", Tag: "news"}}},
		},
	}

	assert.Equal(t, types.StringList{"fire", "news"}, facetTags(record))
	assert.Empty(t, facetTags(types.Record{}))
}
