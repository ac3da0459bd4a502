package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-hermes/summarization"
)

type SummarizeRequest struct {
	Origin string `json:"origin"`
	Body   string `json:"body"`
}

// SummarizeContent sends a content body to OpenAI and returns the summary.
func SummarizeContent(c *gin.Context, openaiClient summarization.ChatCompleter) {
	var req SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Body == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "body is required"})
		return
	}

	summary, err := summarization.Summarize(c.Request.Context(), openaiClient, req.Origin, req.Body)
	if err != nil {
		log.Printf("Error summarizing content: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to summarize content"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}
