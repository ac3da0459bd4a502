package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-hermes/bluesky"
	"go-hermes/feedprocessor"
	"go-hermes/nlp"
)

// Discover feed on the public Bluesky endpoint.
const defaultFeedURI = "at://did:plc:z72i7hdynmk6r22z27h6tvur/app.bsky.feed.generator/whats-hot"

// AnalyzeFeed fetches a page of a Bluesky feed and runs sentiment analysis
// over every post in it.
func AnalyzeFeed(c *gin.Context, nlpClient nlp.LanguageClient) {
	feedURI := c.Query("feed")
	if feedURI == "" {
		feedURI = defaultFeedURI
	}

	limit := 10
	if l := c.Query("limit"); l != "" {
		parsed, err := strconv.Atoi(l)
		if err != nil || parsed < 1 || parsed > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer between 1 and 100"})
			return
		}
		limit = parsed
	}

	out, err := bluesky.FetchFeed(c.Request.Context(), bluesky.FeedParams{
		URI:    feedURI,
		Limit:  limit,
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

	results := feedprocessor.AnalyzeFeed(c.Request.Context(), out, nlpClient)

	c.JSON(http.StatusOK, gin.H{
		"cursor":  out.Cursor,
		"results": results,
	})
}
