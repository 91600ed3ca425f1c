package routes

import (
	"civicseva-be/controllers"
	"civicseva-be/middlewares"
	"civicseva-be/models"

	"github.com/gin-gonic/gin"
)

// IssueRoutes sets up the citizen-facing issue routes. The community map
// pins are public; everything else needs a logged-in role.
func IssueRoutes(r *gin.Engine, ic *controllers.IssueController, rateLimiter gin.HandlerFunc) {
	r.GET("/api/issue/recent", ic.RecentIssues)

	issue := r.Group("/api/issue",
		middlewares.AuthMiddleware(),
		middlewares.RequireRole(string(models.RoleCitizen), string(models.RoleAdmin)),
	)
	{
		issue.GET("", ic.ListIssues)
		issue.POST("/create", rateLimiter, ic.CreateIssue)
		issue.GET("/:id", ic.GetIssue)
		issue.PUT("/:id", ic.UpdateReport)
	}
}

// AdminRoutes sets up the admin console routes.
func AdminRoutes(r *gin.Engine, ic *controllers.IssueController) {
	admin := r.Group("/api/admin",
		middlewares.AuthMiddleware(),
		middlewares.RequireRole(string(models.RoleAdmin)),
	)
	{
		admin.GET("/board", ic.Board)
		admin.GET("/analytics", ic.Analytics)
		admin.PUT("/issue/:id/details", ic.UpdateDetails)
		admin.PUT("/issue/:id/assign", ic.AssignDepartment)
		admin.DELETE("/issue/:id/after-photo", ic.DeleteAfterPhoto)
		admin.DELETE("/issue/:id", ic.DeleteIssue)
	}
}
