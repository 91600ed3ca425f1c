package controllers

import (
	"errors"
	"net/http"

	"civicseva-be/ai"

	"github.com/gin-gonic/gin"
)

// AIController forwards suggestion requests to the generative model
// adapter. Failures surface directly; the user retries by resubmitting.
type AIController struct {
	client *ai.Client
}

func NewAIController(client *ai.Client) *AIController {
	return &AIController{client: client}
}

// SuggestDescription suggests an issue description from a photo and
// location data.
func (ac *AIController) SuggestDescription(c *gin.Context) {
	var input ai.SuggestDescriptionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := ac.client.SuggestDescription(c.Request.Context(), input)
	if err != nil {
		respondAdapterError(c, err)
		return
	}

	c.JSON(http.StatusOK, out)
}

// Categorize suggests a category, department, and confidence for an issue.
// The result is informational; the persisted category remains the one the
// citizen selected.
func (ac *AIController) Categorize(c *gin.Context) {
	var input ai.CategorizeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := ac.client.Categorize(c.Request.Context(), input)
	if err != nil {
		respondAdapterError(c, err)
		return
	}

	c.JSON(http.StatusOK, out)
}

func respondAdapterError(c *gin.Context, err error) {
	if errors.Is(err, ai.ErrAdapter) {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
}
