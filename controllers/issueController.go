package controllers

import (
	"errors"
	"net/http"
	"time"

	"civicseva-be/models"
	"civicseva-be/services"

	"github.com/gin-gonic/gin"
)

const recentIssuesLimit = 19

// IssueController exposes the issue lifecycle over HTTP. Handlers stay
// thin: parse input, call the service, map errors to statuses.
type IssueController struct {
	svc *services.IssueService
}

func NewIssueController(svc *services.IssueService) *IssueController {
	return &IssueController{svc: svc}
}

// respondError maps service failures onto HTTP statuses. Nothing here is
// fatal; the client retries by resubmitting.
func respondError(c *gin.Context, err error) {
	switch {
	case services.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrIssueNotFound), errors.Is(err, services.ErrAfterPhotoMissing):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrAfterPhotoExists), errors.Is(err, services.ErrNotEditable):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
	}
}

// ListIssues returns the merged view filtered, searched, and sorted per
// query parameters.
func (ic *IssueController) ListIssues(c *gin.Context) {
	all, err := ic.svc.All(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	issues := services.ApplyView(all, services.ViewQuery{
		Search:   c.Query("search"),
		Status:   c.Query("status"),
		Category: c.Query("category"),
		Priority: c.Query("priority"),
		Sort:     c.DefaultQuery("sort", services.SortByReportedAt),
		Order:    c.DefaultQuery("order", "desc"),
	})

	c.JSON(http.StatusOK, gin.H{
		"issues":      issues,
		"totalIssues": len(issues),
	})
}

// GetIssue returns one issue with its tracker progress percentage.
func (ic *IssueController) GetIssue(c *gin.Context) {
	issue, err := ic.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"issue":    issue,
		"progress": models.StatusProgress[issue.Status],
		"badge":    models.StatusBadge[issue.Status],
	})
}

// CreateIssue handles a citizen report submission.
func (ic *IssueController) CreateIssue(c *gin.Context) {
	var input struct {
		Description  string   `json:"description" binding:"required"`
		PhotoDataURI string   `json:"photoDataUri" binding:"required"`
		Latitude     *float64 `json:"latitude" binding:"required"`
		Longitude    *float64 `json:"longitude" binding:"required"`
		Address      string   `json:"address"`
		Category     string   `json:"category" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	issue, err := ic.svc.Create(c.Request.Context(), services.CreateIssueInput{
		Description:  input.Description,
		PhotoDataURI: input.PhotoDataURI,
		Latitude:     *input.Latitude,
		Longitude:    *input.Longitude,
		Address:      input.Address,
		Category:     input.Category,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, issue)
}

// UpdateReport lets a citizen revise the description or photo of a report
// that is still in the Reported state. No timeline entry is appended.
func (ic *IssueController) UpdateReport(c *gin.Context) {
	var input struct {
		Description  string `json:"description"`
		PhotoDataURI string `json:"photoDataUri"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	issue, err := ic.svc.UpdateReport(c.Request.Context(), services.UpdateReportInput{
		IssueID:      c.Param("id"),
		Description:  input.Description,
		PhotoDataURI: input.PhotoDataURI,
		Audit:        false,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, issue)
}

// UpdateDetails is the admin detail-page edit: any combination of a status
// change, a department assignment, an after photo, and a comment. Every
// change taken through this path is audited.
func (ic *IssueController) UpdateDetails(c *gin.Context) {
	var input struct {
		Status            string `json:"status"`
		Department        string `json:"department"`
		AfterPhotoDataURI string `json:"afterPhotoDataUri"`
		Comments          string `json:"comments"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	issueID := c.Param("id")

	issue, err := ic.svc.Get(ctx, issueID)
	if err != nil {
		respondError(c, err)
		return
	}

	if input.Department != "" && input.Department != issue.Department {
		issue, err = ic.svc.AssignDepartment(ctx, issueID, input.Department, true)
		if err != nil {
			respondError(c, err)
			return
		}
	}
	if input.Status != "" || input.Comments != "" {
		status := input.Status
		if status == "" {
			status = string(issue.Status)
		}
		issue, err = ic.svc.ChangeStatus(ctx, issueID, status, input.Comments)
		if err != nil {
			respondError(c, err)
			return
		}
	}
	if input.AfterPhotoDataURI != "" {
		issue, err = ic.svc.AddAfterPhoto(ctx, issueID, input.AfterPhotoDataURI, true)
		if err != nil {
			respondError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, issue)
}

// AssignDepartment is the assignment-board drag-and-drop path: the routing
// persists but no timeline entry is appended.
func (ic *IssueController) AssignDepartment(c *gin.Context) {
	var input struct {
		Department string `json:"department" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	issue, err := ic.svc.AssignDepartment(c.Request.Context(), c.Param("id"), input.Department, false)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, issue)
}

// DeleteAfterPhoto removes the "After" photo from an issue.
func (ic *IssueController) DeleteAfterPhoto(c *gin.Context) {
	issue, err := ic.svc.DeleteAfterPhoto(c.Request.Context(), c.Param("id"), true)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, issue)
}

// DeleteIssue acknowledges the admin table's delete action. Issues are
// never hard-deleted; the removal is a client-side view concern only.
func (ic *IssueController) DeleteIssue(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":        "Issue deleted successfully",
		"deletedIssueId": c.Param("id"),
	})
}

// Board groups the merged view into the assignment board's fixed
// department columns.
func (ic *IssueController) Board(c *gin.Context) {
	all, err := ic.svc.All(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"columns": services.BoardColumns,
		"issues":  services.GroupByDepartment(all, services.BoardColumns),
	})
}

// RecentIssues returns the newest issues as map pins.
func (ic *IssueController) RecentIssues(c *gin.Context) {
	all, err := ic.svc.All(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	newest := services.ApplyView(all, services.ViewQuery{Sort: services.SortByReportedAt, Order: "desc"})
	if len(newest) > recentIssuesLimit {
		newest = newest[:recentIssuesLimit]
	}

	type pin struct {
		ID        string    `json:"id"`
		Title     string    `json:"title"`
		Latitude  float64   `json:"latitude"`
		Longitude float64   `json:"longitude"`
		Address   string    `json:"address"`
		Category  string    `json:"category"`
		Status    string    `json:"status"`
		CreatedAt time.Time `json:"createdAt"`
	}

	pins := make([]pin, 0, len(newest))
	for _, issue := range newest {
		pins = append(pins, pin{
			ID:        issue.ID,
			Title:     issue.Title,
			Latitude:  issue.Location.Latitude,
			Longitude: issue.Location.Longitude,
			Address:   issue.Location.Address,
			Category:  string(issue.Category),
			Status:    string(issue.Status),
			CreatedAt: issue.ReportedAt,
		})
	}

	c.JSON(http.StatusOK, pins)
}

// Analytics returns the admin dashboard rollup.
func (ic *IssueController) Analytics(c *gin.Context) {
	all, err := ic.svc.All(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, services.BuildAnalytics(all, time.Now()))
}
