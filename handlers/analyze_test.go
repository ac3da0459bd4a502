package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cloud.google.com/go/language/apiv2/languagepb"
	"github.com/gin-gonic/gin"
	"github.com/googleapis/gax-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-hermes/types"
)

type fakeLanguageClient struct {
	sentimentResp *languagepb.AnalyzeSentimentResponse
	sentimentErr  error
	classifyResp  *languagepb.ClassifyTextResponse
	classifyErr   error
}

func (f *fakeLanguageClient) AnalyzeSentiment(ctx context.Context, req *languagepb.AnalyzeSentimentRequest, opts ...gax.CallOption) (*languagepb.AnalyzeSentimentResponse, error) {
	return f.sentimentResp, f.sentimentErr
}

func (f *fakeLanguageClient) ClassifyText(ctx context.Context, req *languagepb.ClassifyTextRequest, opts ...gax.CallOption) (*languagepb.ClassifyTextResponse, error) {
	return f.classifyResp, f.classifyErr
}

func goodFake() *fakeLanguageClient {
	return &fakeLanguageClient{
		sentimentResp: &languagepb.AnalyzeSentimentResponse{
			DocumentSentiment: &languagepb.Sentiment{Score: 0.5, Magnitude: 0.8},
			Sentences: []*languagepb.Sentence{
				{
					Text:      &languagepb.TextSpan{Content: "Good."},
					Sentiment: &languagepb.Sentiment{Score: 0.9, Magnitude: 0.9},
				},
			},
		},
		classifyResp: &languagepb.ClassifyTextResponse{
			Categories: []*languagepb.ClassificationCategory{
				{Name: "/News", Confidence: 0.87},
			},
		},
	}
}

func analyzeRouter(fake *fakeLanguageClient) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/analyze", func(c *gin.Context) {
		AnalyzeContent(c, fake)
	})
	r.POST("/classify", func(c *gin.Context) {
		ClassifyContent(c, fake)
	})
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAnalyzeContentAutomagic(t *testing.T) {
	r := analyzeRouter(goodFake())

	w := postJSON(t, r, "/analyze", gin.H{
		"title":     "A good day",
		"author":    "jane", // scalar, normalized to a list
		"date":      "2026-01-02T15:04:05Z",
		"url":       "https://example.com/a-good-day",
		"body":      "Good.",
		"origin":    "news",
		"tags":      []string{"mood"},
		"misc":      "en",
		"automagic": true,
	})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var doc types.Document
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))

	assert.Equal(t, types.StringList{"jane"}, doc.Source.Author)
	assert.Equal(t, types.StringList{"en"}, doc.Source.Misc)
	require.NotNil(t, doc.Sentiment.Overall)
	assert.Equal(t, float32(0.5), doc.Sentiment.Overall.Score)
	assert.Equal(t, []types.Category{{Category: "/News", Confidence: 0.87}}, doc.Sentiment.Overall.Categories)
	require.Len(t, doc.Sentiment.Content, 1)
	assert.Equal(t, "Good.", doc.Sentiment.Content[0].Text)
}

func TestAnalyzeContentWithoutAutomagic(t *testing.T) {
	r := analyzeRouter(goodFake())

	w := postJSON(t, r, "/analyze", gin.H{
		"title":  "A good day",
		"author": "jane",
		"date":   "2026-01-02T15:04:05Z",
		"url":    "https://example.com/a-good-day",
		"body":   "Good.",
		"origin": "news",
		"tags":   "mood",
		"misc":   "en",
	})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var doc types.Document
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	require.NotNil(t, doc.Sentiment.Overall)
	assert.Empty(t, doc.Sentiment.Overall.Categories, "no classification without automagic")
}

func TestAnalyzeContentRejectsBadDate(t *testing.T) {
	r := analyzeRouter(goodFake())

	w := postJSON(t, r, "/analyze", gin.H{
		"title":  "A good day",
		"author": "jane",
		"date":   "yesterday-ish",
		"body":   "Good.",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClassifyContentRequiresOverall(t *testing.T) {
	r := analyzeRouter(goodFake())

	w := postJSON(t, r, "/classify", types.Document{
		Source: types.Source{Body: "Good.", Date: "2026-01-02T15:04:05Z"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestClassifyContentAppendsCategories(t *testing.T) {
	fake := goodFake()
	fake.classifyResp = &languagepb.ClassifyTextResponse{} // zero categories

	r := analyzeRouter(fake)

	w := postJSON(t, r, "/classify", types.Document{
		Source: types.Source{Body: "Good.", Date: "2026-01-02T15:04:05Z"},
		Sentiment: types.Sentiment{
			Overall: &types.OverallSentiment{Score: 0.5, Magnitude: 0.8},
		},
	})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var doc types.Document
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	require.NotNil(t, doc.Sentiment.Overall)
	assert.Equal(t, []types.Category{{Category: "", Confidence: 1}}, doc.Sentiment.Overall.Categories)
}
