package data

import (
	"time"

	"civicseva-be/models"
)

// SeedIssues returns the fixed baseline dataset shipped with the
// application. Every call returns a fresh copy so callers can never mutate
// the baseline through an aliased slice.
func SeedIssues() []models.Issue {
	seed := []models.Issue{
		{
			ID:          "IS-1",
			Title:       "Large pothole on main street",
			Description: "A large and dangerous pothole has formed on the corner of Main St and 1st Ave, causing issues for traffic.",
			ImageURL:    "https://i.pinimg.com/736x/d0/3f/c2/d03fc2fe363172d449e218a84b557508.jpg",
			ImageHint:   "pothole road",
			Images: []models.IssueImage{
				{URL: "https://i.pinimg.com/736x/d0/3f/c2/d03fc2fe363172d449e218a84b557508.jpg", Caption: "Before"},
				{URL: "https://i.pinimg.com/736x/d0/3f/c2/d03fc2fe363172d449e218a84b557508.jpg", Caption: "Work in progress"},
				{URL: "https://i.pinimg.com/736x/03/90/18/0390186b460f48858349282218084a44.jpg", Caption: "After"},
			},
			Location: models.Location{
				Latitude:  40.7128,
				Longitude: -74.0060,
				Address:   "Main St & 1st Ave, New York, NY",
			},
			Status:     models.InProgress,
			Category:   models.Pothole,
			Priority:   models.High,
			Department: "Public Works",
			ReportedAt: date(2024, 7, 20, 10, 0),
			ETA:        timePtr(date(2024, 7, 23, 17, 0)),
			Confidence: floatPtr(0.95),
			Updates: []models.IssueUpdate{
				{Timestamp: date(2024, 7, 20, 10, 0), Status: models.Reported, Description: "Issue submitted by citizen."},
				{Timestamp: date(2024, 7, 20, 11, 30), Status: models.InProgress, Description: "Assigned to Public Works. A team has been dispatched."},
			},
		},
		{
			ID:          "IS-4",
			Title:       "Overflowing trash can",
			Description: "Public trash can on 5th Avenue is overflowing, leading to litter on the sidewalk.",
			ImageURL:    "https://i.pinimg.com/1200x/07/4e/1a/074e1afeeae49ddb39969fbdba4bd8af.jpg",
			ImageHint:   "trash can",
			Images: []models.IssueImage{
				{URL: "https://i.pinimg.com/1200x/07/4e/1a/074e1afeeae49ddb39969fbdba4bd8af.jpg", Caption: "Before"},
				{URL: "https://i.pinimg.com/564x/4b/c0/8b/4bc08b53213a7a9e9e1b268e2782e4f0.jpg", Caption: "After"},
			},
			Location: models.Location{
				Latitude:  40.7739,
				Longitude: -73.965,
				Address:   "5th Avenue, New York, NY",
			},
			Status:     models.Resolved,
			Category:   models.WasteManagement,
			Priority:   models.Low,
			Department: "Sanitation",
			ReportedAt: date(2024, 7, 21, 9, 0),
			ResolvedAt: timePtr(date(2024, 7, 21, 15, 0)),
			Confidence: floatPtr(0.92),
			Updates: []models.IssueUpdate{
				{Timestamp: date(2024, 7, 21, 9, 0), Status: models.Reported, Description: "Issue submitted by citizen."},
				{Timestamp: date(2024, 7, 21, 15, 0), Status: models.Resolved, Description: "Trash has been collected."},
			},
		},
		{
			ID:          "IS-5",
			Title:       "Damaged Stop Sign",
			Description: "A stop sign at the corner of Liberty St and Nassau St is bent and difficult to see.",
			ImageURL:    "https://i.pinimg.com/736x/29/70/4c/29704cd0075d0cc865bcda8f3dc3a075.jpg",
			ImageHint:   "street sign",
			Images: []models.IssueImage{
				{URL: "https://i.pinimg.com/736x/29/70/4c/29704cd0075d0cc865bcda8f3dc3a075.jpg", Caption: "Before"},
				{URL: "https://i.pinimg.com/1200x/29/22/6a/29226adc9367dbb940c6b3d2296efd7f.jpg", Caption: "After"},
			},
			Location: models.Location{
				Latitude:  40.7088,
				Longitude: -74.009,
				Address:   "Liberty St & Nassau St, New York, NY",
			},
			Status:     models.Resolved,
			Category:   models.DamagedSign,
			Priority:   models.High,
			Department: "Transportation",
			ReportedAt: date(2024, 7, 18, 8, 45),
			ResolvedAt: timePtr(date(2024, 7, 19, 14, 0)),
			ETA:        timePtr(date(2024, 7, 19, 17, 0)),
			Confidence: floatPtr(0.96),
			Updates: []models.IssueUpdate{
				{Timestamp: date(2024, 7, 18, 8, 45), Status: models.Reported, Description: "Issue submitted by citizen."},
				{Timestamp: date(2024, 7, 18, 10, 0), Status: models.InProgress, Description: "Repair crew has been dispatched for replacement."},
				{Timestamp: date(2024, 7, 19, 14, 0), Status: models.Resolved, Description: "Sign has been replaced."},
			},
		},
	}

	out := make([]models.Issue, len(seed))
	for i, issue := range seed {
		out[i] = cloneIssue(issue)
	}
	return out
}

func cloneIssue(issue models.Issue) models.Issue {
	issue.Images = append([]models.IssueImage(nil), issue.Images...)
	issue.Updates = append([]models.IssueUpdate(nil), issue.Updates...)
	if issue.ResolvedAt != nil {
		issue.ResolvedAt = timePtr(*issue.ResolvedAt)
	}
	if issue.ETA != nil {
		issue.ETA = timePtr(*issue.ETA)
	}
	if issue.Confidence != nil {
		issue.Confidence = floatPtr(*issue.Confidence)
	}
	return issue
}

func date(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

func timePtr(t time.Time) *time.Time { return &t }

func floatPtr(f float64) *float64 { return &f }
