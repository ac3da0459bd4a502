package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"go-hermes/bluesky"
	"go-hermes/content"
	"go-hermes/nlp"
	"go-hermes/types"
)

// TestSentiment analyses a single post and returns its document. With
// mock=t it uses canned text instead of fetching from Bluesky.
func TestSentiment(c *gin.Context, nlpClient nlp.LanguageClient) {
	mockParam := c.Query("mock")

	if mockParam == "t" {
		mockContent, err := content.New(content.Params{
			Title:  "Mock Tester",
			Author: types.StringList{"mock.bsky.social"},
			Date:   time.Now().UTC(),
			URL:    "at://mock/post",
			Body:   []byte("This fire is pretty bad boys!"),
			Origin: "bluesky",
			Tags:   types.StringList{"fire"},
			Misc:   types.StringList{"en"},
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		if err := mockContent.Analyse(c.Request.Context(), nlpClient); err != nil {
			log.Printf("Error analysing sentiment (mock mode): %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyse sentiment in mock mode"})
			return
		}

		doc, _ := mockContent.JSONify(c.Request.Context(), nlpClient, false)
		c.JSON(http.StatusOK, doc)
		return
	}

	// Fetch one post from the feed to analyse.
	out, err := bluesky.FetchFeed(c.Request.Context(), bluesky.FeedParams{
		URI:    defaultFeedURI,
		Limit:  1,
		Cursor: c.Query("cursor"),
	})
	if err != nil {
		log.Printf("Error fetching feed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if len(out.Feed) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "No feed items returned"})
		return
	}

	first := out.Feed[0]
	if first.Post.URI == "" {
		c.JSON(http.StatusOK, gin.H{"message": "First feed item has no valid URI"})
		return
	}

	date, err := time.Parse(time.RFC3339, first.Post.Record.CreatedAt)
	if err != nil {
		date = time.Now().UTC()
	}

	postContent, err := content.New(content.Params{
		Title:  first.Post.Author.DisplayName,
		Author: types.StringList{first.Post.Author.Handle},
		Date:   date,
		URL:    first.Post.URI,
		Body:   []byte(first.Post.Record.Text),
		Origin: "bluesky",
		Tags:   types.StringList{},
		Misc:   types.StringList(first.Post.Record.Langs),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := postContent.Analyse(c.Request.Context(), nlpClient); err != nil {
		log.Printf("Error analysing sentiment: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyse sentiment"})
		return
	}

	doc, _ := postContent.JSONify(c.Request.Context(), nlpClient, false)
	c.JSON(http.StatusOK, doc)
}
