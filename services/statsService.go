package services

import (
	"time"

	"civicseva-be/models"
)

// CategoryCount is one slice of the category breakdown chart.
type CategoryCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// DayCount is the number of reports filed on one calendar day.
type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Analytics is the admin dashboard rollup computed over the merged view.
type Analytics struct {
	IssuesByCategory   []CategoryCount `json:"issuesByCategory"`
	Last7Days          []DayCount      `json:"last7Days"`
	TotalIssues        int             `json:"totalIssues"`
	OpenIssues         int             `json:"openIssues"`
	ResolvedIssues     int             `json:"resolvedIssues"`
	PendingAssignment  int             `json:"pendingAssignment"`
	AvgResolutionHours float64         `json:"avgResolutionHours"`
}

// BuildAnalytics folds the merged issue collection into dashboard numbers.
// Pure and read-only, like the rest of the view layer.
func BuildAnalytics(issues []models.Issue, now time.Time) Analytics {
	analytics := Analytics{TotalIssues: len(issues)}

	byCategory := make(map[models.IssueCategory]int)
	var resolutionTotal time.Duration
	var resolvedWithTimes int

	for _, issue := range issues {
		byCategory[issue.Category]++

		switch issue.Status {
		case models.Reported, models.InProgress:
			analytics.OpenIssues++
		case models.Resolved:
			analytics.ResolvedIssues++
		}
		if issue.Department == models.PendingAssignment {
			analytics.PendingAssignment++
		}
		if issue.ResolvedAt != nil && !issue.ResolvedAt.Before(issue.ReportedAt) {
			resolutionTotal += issue.ResolvedAt.Sub(issue.ReportedAt)
			resolvedWithTimes++
		}
	}

	for _, category := range models.Categories {
		if count := byCategory[category]; count > 0 {
			analytics.IssuesByCategory = append(analytics.IssuesByCategory, CategoryCount{
				Name:  string(category),
				Value: count,
			})
		}
	}

	if resolvedWithTimes > 0 {
		analytics.AvgResolutionHours = resolutionTotal.Hours() / float64(resolvedWithTimes)
	}

	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		dayEnd := dayStart.AddDate(0, 0, 1)

		count := 0
		for _, issue := range issues {
			if !issue.ReportedAt.Before(dayStart) && issue.ReportedAt.Before(dayEnd) {
				count++
			}
		}
		analytics.Last7Days = append(analytics.Last7Days, DayCount{
			Date:  dayStart.Format("2006-01-02"),
			Count: count,
		})
	}

	return analytics
}
