package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"go-hermes/content"
	"go-hermes/nlp"
	"go-hermes/types"
)

// Classification needs a reasonably long document, short mock strings come
// back with zero categories.
const mockArticleBody = "Wildfires continued to spread across the hills north of the city " +
	"on Tuesday, forcing evacuations in three neighborhoods as firefighters struggled " +
	"against high winds and dry conditions. Officials said more than two hundred homes " +
	"were under mandatory evacuation orders, and emergency shelters were opened at local " +
	"schools. The fire has burned through roughly four thousand acres since it started " +
	"on Sunday evening, and containment remained below ten percent. Power was cut to " +
	"several districts as a precaution, and residents were urged to follow official " +
	"channels for updates."

// TestClassification runs the full analyse + classify pipeline on a canned
// article and returns the resulting document.
func TestClassification(c *gin.Context, nlpClient nlp.LanguageClient) {
	mockContent, err := content.New(content.Params{
		Title:  "Wildfires force evacuations north of the city",
		Author: types.StringList{"newsroom"},
		Date:   time.Now().UTC(),
		URL:    "https://example.com/wildfire-evacuations",
		Body:   []byte(mockArticleBody),
		Origin: "news",
		Tags:   types.StringList{"wildfire"},
		Misc:   types.StringList{"en"},
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	doc, err := mockContent.JSONify(c.Request.Context(), nlpClient, true)
	if err != nil {
		analysisError(c, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}
