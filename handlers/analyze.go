package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"go-hermes/content"
	"go-hermes/nlp"
	"go-hermes/types"
)

// ContentRequest is the payload for the analyze endpoint. Author, tags and
// misc accept either a single string or a list of strings.
type ContentRequest struct {
	Title     string           `json:"title"`
	Author    types.StringList `json:"author"`
	Date      string           `json:"date"`
	URL       string           `json:"url"`
	Body      string           `json:"body"`
	Origin    string           `json:"origin"`
	Tags      types.StringList `json:"tags"`
	Misc      types.StringList `json:"misc"`
	Automagic bool             `json:"automagic"`
}

// AnalyzeContent wraps the posted payload in a Content and runs sentiment
// analysis on it; with automagic set it classifies it as well. Returns the
// {source, sentiment} document.
func AnalyzeContent(c *gin.Context, nlpClient nlp.LanguageClient) {
	var req ContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be RFC 3339"})
		return
	}

	newContent, err := content.New(content.Params{
		Title:  req.Title,
		Author: req.Author,
		Date:   date,
		URL:    req.URL,
		Body:   []byte(req.Body),
		Origin: req.Origin,
		Tags:   req.Tags,
		Misc:   req.Misc,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !req.Automagic {
		if err := newContent.Analyse(c.Request.Context(), nlpClient); err != nil {
			analysisError(c, err)
			return
		}
		doc, _ := newContent.JSONify(c.Request.Context(), nlpClient, false)
		c.JSON(http.StatusOK, doc)
		return
	}

	doc, err := newContent.JSONify(c.Request.Context(), nlpClient, true)
	if err != nil {
		analysisError(c, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}

func analysisError(c *gin.Context, err error) {
	log.Printf("Error analysing content: %v", err)

	switch {
	case errors.Is(err, content.ErrBodyTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
	case errors.Is(err, content.ErrNotAnalysed):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
