package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-hermes/content"
	"go-hermes/nlp"
	"go-hermes/types"
)

// ClassifyContent takes a previously analysed {source, sentiment} document,
// rebuilds the Content from it and runs topic classification. A document
// without an overall sentiment is rejected with 422.
func ClassifyContent(c *gin.Context, nlpClient nlp.LanguageClient) {
	var doc types.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	analysed := &content.Content{}
	analysed.SetSource(doc.Source)
	analysed.SetSentiment(doc.Sentiment)

	if err := analysed.Classify(c.Request.Context(), nlpClient); err != nil {
		analysisError(c, err)
		return
	}

	result, _ := analysed.JSONify(c.Request.Context(), nlpClient, false)
	c.JSON(http.StatusOK, result)
}
