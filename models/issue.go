package models

import (
	"regexp"
	"strings"
	"time"
)

// IssueCategory enum
type IssueCategory string

const (
	Pothole           IssueCategory = "Pothole"
	Graffiti          IssueCategory = "Graffiti"
	StreetlightOutage IssueCategory = "Streetlight Outage"
	WasteManagement   IssueCategory = "Waste Management"
	DamagedSign       IssueCategory = "Damaged Sign"
	WaterLeak         IssueCategory = "Water Leak"
	Other             IssueCategory = "Other"
)

// Categories lists every supported category in display order.
var Categories = []IssueCategory{
	Pothole, Graffiti, StreetlightOutage, WasteManagement, DamagedSign, WaterLeak, Other,
}

func (c IssueCategory) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// IssueStatus enum. Lifecycle is Reported -> In Progress -> Resolved;
// back-transitions are representable and not rejected.
type IssueStatus string

const (
	Reported   IssueStatus = "Reported"
	InProgress IssueStatus = "In Progress"
	Resolved   IssueStatus = "Resolved"
)

func (s IssueStatus) IsValid() bool {
	switch s {
	case Reported, InProgress, Resolved:
		return true
	}
	return false
}

// IssuePriority enum
type IssuePriority string

const (
	Low    IssuePriority = "Low"
	Medium IssuePriority = "Medium"
	High   IssuePriority = "High"
)

func (p IssuePriority) IsValid() bool {
	switch p {
	case Low, Medium, High:
		return true
	}
	return false
}

// PriorityRank orders priorities for sorting (Low first).
var PriorityRank = map[IssuePriority]int{
	Low:    1,
	Medium: 2,
	High:   3,
}

// StatusProgress maps each status to the tracker progress-bar percentage.
var StatusProgress = map[IssueStatus]int{
	Reported:   10,
	InProgress: 50,
	Resolved:   100,
}

// StatusBadge maps each status to its badge variant for rendering clients.
var StatusBadge = map[IssueStatus]string{
	Reported:   "destructive",
	InProgress: "secondary",
	Resolved:   "default",
}

// PendingAssignment is the department of every issue no admin has routed yet.
const PendingAssignment = "Pending Assignment"

// AssignableDepartments are the municipal units an admin can route an issue to.
var AssignableDepartments = []string{
	"Public Works",
	"Sanitation",
	"Transportation",
	"Parks & Recreation",
	"Water Dept.",
}

func IsAssignableDepartment(name string) bool {
	for _, d := range AssignableDepartments {
		if d == name {
			return true
		}
	}
	return false
}

// Location pins an issue to a place. Set at creation, immutable after.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

// IssueImage is one photo attached to an issue. The caption doubles as a
// semantic tag: "Before" and "After" drive the before/after gallery.
type IssueImage struct {
	URL     string `json:"url"`
	Caption string `json:"caption"`
}

// IsAfterPhoto reports whether the image carries the "After" tag.
func (img IssueImage) IsAfterPhoto() bool {
	return strings.EqualFold(img.Caption, "After")
}

// IssueUpdate is one append-only audit/timeline entry. The last entry's
// status is the authoritative current status in timeline views.
type IssueUpdate struct {
	Timestamp   time.Time   `json:"timestamp"`
	Status      IssueStatus `json:"status"`
	Description string      `json:"description"`
}

// Issue represents a civic issue reported by a citizen
type Issue struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	ImageURL    string        `json:"imageUrl,omitempty"`
	ImageHint   string        `json:"imageHint,omitempty"`
	Images      []IssueImage  `json:"images"`
	Location    Location      `json:"location"`
	Status      IssueStatus   `json:"status"`
	Category    IssueCategory `json:"category"`
	Priority    IssuePriority `json:"priority,omitempty"`
	Department  string        `json:"department"`
	ReportedAt  time.Time     `json:"reportedAt"`
	ResolvedAt  *time.Time    `json:"resolvedAt,omitempty"`
	ETA         *time.Time    `json:"eta,omitempty"`
	Updates     []IssueUpdate `json:"updates"`
	Confidence  *float64      `json:"confidence,omitempty"`
}

// HasAfterPhoto reports whether any attached image is tagged "After".
func (i Issue) HasAfterPhoto() bool {
	for _, img := range i.Images {
		if img.IsAfterPhoto() {
			return true
		}
	}
	return false
}

const titleMaxLen = 50

// DeriveTitle builds an issue title from its description, truncated to 50
// characters with an ellipsis. Truncation counts runes so a multibyte
// character is never split.
func DeriveTitle(description string) string {
	runes := []rune(description)
	if len(runes) > titleMaxLen {
		return string(runes[:titleMaxLen]) + "..."
	}
	return description
}

// MinDescriptionLen is the shortest description accepted at the boundary.
const MinDescriptionLen = 10

var issueIDPattern = regexp.MustCompile(`^IS-\d+$`)

// IsGeneratedIssueID reports whether id matches the IS-<digits> format used
// for citizen-created issues and department-driven updates.
func IsGeneratedIssueID(id string) bool {
	return issueIDPattern.MatchString(id)
}
