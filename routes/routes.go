package routes

import (
	"github.com/gin-gonic/gin"

	"go-hermes/handlers"
	"go-hermes/nlp"
	"go-hermes/summarization"
)

func SetupRouter(nlpClient nlp.LanguageClient, openaiClient summarization.ChatCompleter) *gin.Engine {
	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Hello, welcome to Go Hermes!",
		})
	})

	// api routes, clients injected into the handlers
	api := r.Group("/api/hermes")
	{
		api.POST("/analyze", func(c *gin.Context) {
			handlers.AnalyzeContent(c, nlpClient)
		})
		api.POST("/classify", func(c *gin.Context) {
			handlers.ClassifyContent(c, nlpClient)
		})
		api.POST("/summarize", func(c *gin.Context) {
			handlers.SummarizeContent(c, openaiClient)
		})
		api.GET("/feed", func(c *gin.Context) {
			handlers.AnalyzeFeed(c, nlpClient)
		})
		api.GET("/sentiment-test", func(c *gin.Context) {
			handlers.TestSentiment(c, nlpClient)
		})
		api.GET("/classification-test", func(c *gin.Context) {
			handlers.TestClassification(c, nlpClient)
		})
	}

	return r
}
