package routes

import (
	"civicseva-be/controllers"
	"civicseva-be/middlewares"
	"civicseva-be/models"

	"github.com/gin-gonic/gin"
)

// AIRoutes sets up the AI suggestion routes, available to any logged-in role.
func AIRoutes(r *gin.Engine, ac *controllers.AIController) {
	aiGroup := r.Group("/api/ai",
		middlewares.AuthMiddleware(),
		middlewares.RequireRole(string(models.RoleCitizen), string(models.RoleAdmin)),
	)
	{
		aiGroup.POST("/suggest-description", ac.SuggestDescription)
		aiGroup.POST("/categorize", ac.Categorize)
	}
}
