package feedprocessor

import (
	"context"
	"sync"
	"time"

	"go-hermes/content"
	"go-hermes/nlp"
	"go-hermes/types"
)

// Result is the outcome of analysing one post from a feed.
type Result struct {
	URI            string         `json:"uri"`
	Handle         string         `json:"handle"`
	Document       types.Document `json:"document"`
	Summary        string         `json:"summary,omitempty"`
	ErrorAnalysing bool           `json:"errorAnalysing"`
}

// AnalyzeFeed wraps each post of a fetched feed in a Content and runs
// sentiment analysis on it, one goroutine per post. Posts are usually too
// short for topic classification, so only Analyse runs here.
func AnalyzeFeed(ctx context.Context, out types.FeedResponse, nlpClient nlp.LanguageClient) []Result {
	resultsChan := make(chan Result, len(out.Feed))
	var wg sync.WaitGroup

	for _, v := range out.Feed {
		if v.Post.URI != "" {
			wg.Add(1)
			feedItem := v // capture variable for goroutine
			go func() {
				defer wg.Done()
				resultsChan <- analyzePost(ctx, feedItem, nlpClient)
			}()
		}
	}

	wg.Wait()
	close(resultsChan)

	resultsList := make([]Result, 0, len(out.Feed))
	for result := range resultsChan {
		resultsList = append(resultsList, result)
	}

	return resultsList
}

func analyzePost(ctx context.Context, feedItem types.FeedEntry, nlpClient nlp.LanguageClient) Result {
	post := feedItem.Post

	result := Result{
		URI:    post.URI,
		Handle: post.Author.Handle,
	}

	date, err := time.Parse(time.RFC3339, post.Record.CreatedAt)
	if err != nil {
		date = time.Now().UTC()
	}

	c, err := content.New(content.Params{
		Title:  post.Author.DisplayName,
		Author: types.StringList{post.Author.Handle},
		Date:   date,
		URL:    post.URI,
		Body:   []byte(post.Record.Text),
		Origin: "bluesky",
		Tags:   facetTags(post.Record),
		Misc:   types.StringList(post.Record.Langs),
	})
	if err != nil {
		result.ErrorAnalysing = true
		return result
	}

	if err := c.Analyse(ctx, nlpClient); err != nil {
		result.ErrorAnalysing = true
		return result
	}

	doc, err := c.JSONify(ctx, nlpClient, false)
	if err != nil {
		result.ErrorAnalysing = true
		return result
	}
	result.Document = doc

	return result
}

// facetTags pulls hashtag facets out of a post record.
func facetTags(record types.Record) types.StringList {
	var tags types.StringList
	for _, facet := range record.Facets {
		for _, feature := range facet.Features {
			if feature.Tag != "" {
				tags = append(tags, feature.Tag)
			}
		}
	}
	return tags
}
