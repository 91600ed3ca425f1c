package services

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"civicseva-be/models"
	"civicseva-be/store"
)

const maxIDAttempts = 10

// IssueService owns the issue lifecycle: every operation reads the merged
// view (seed + overrides), applies one change, and upserts the full record
// back into the override store. Once an override exists the seed copy is
// shadowed for the rest of the issue's life.
type IssueService struct {
	store *store.OverrideStore
	seed  []models.Issue

	// Overridable for deterministic tests.
	now     func() time.Time
	randInt func(n int) int
}

func NewIssueService(overrides *store.OverrideStore, seed []models.Issue) *IssueService {
	return &IssueService{
		store:   overrides,
		seed:    seed,
		now:     time.Now,
		randInt: rand.Intn,
	}
}

// All returns the merged view of every issue.
func (s *IssueService) All(ctx context.Context) ([]models.Issue, error) {
	overrides, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return Merge(s.seed, overrides), nil
}

// Get returns one issue from the merged view.
func (s *IssueService) Get(ctx context.Context, id string) (models.Issue, error) {
	all, err := s.All(ctx)
	if err != nil {
		return models.Issue{}, err
	}
	for _, issue := range all {
		if issue.ID == id {
			return issue, nil
		}
	}
	return models.Issue{}, ErrIssueNotFound
}

// CreateIssueInput is a citizen report submission.
type CreateIssueInput struct {
	Description  string
	PhotoDataURI string
	Latitude     float64
	Longitude    float64
	Address      string
	Category     string
}

// Create validates the submission, generates a collision-checked IS- id,
// and prepends the new issue to the override store.
func (s *IssueService) Create(ctx context.Context, input CreateIssueInput) (models.Issue, error) {
	if len(input.Description) < models.MinDescriptionLen {
		return models.Issue{}, invalidInput("description",
			fmt.Sprintf("must be at least %d characters", models.MinDescriptionLen))
	}
	if input.PhotoDataURI == "" {
		return models.Issue{}, invalidInput("photo", "a photo is required")
	}
	category := models.IssueCategory(input.Category)
	if !category.IsValid() {
		return models.Issue{}, invalidInput("category", "unknown category "+input.Category)
	}

	all, err := s.All(ctx)
	if err != nil {
		return models.Issue{}, err
	}

	address := input.Address
	if address == "" {
		address = fmt.Sprintf("Lat: %.5f, Lon: %.5f", input.Latitude, input.Longitude)
	}

	now := s.now()
	issue := models.Issue{
		ID:          s.newIssueID(all),
		Title:       models.DeriveTitle(input.Description),
		Description: input.Description,
		ImageURL:    input.PhotoDataURI,
		ImageHint:   strings.ToLower(input.Category),
		Images: []models.IssueImage{
			{URL: input.PhotoDataURI, Caption: "Before"},
		},
		Location: models.Location{
			Latitude:  input.Latitude,
			Longitude: input.Longitude,
			Address:   address,
		},
		Status:     models.Reported,
		Category:   category,
		Priority:   models.Medium,
		Department: models.PendingAssignment,
		ReportedAt: now,
		Updates: []models.IssueUpdate{
			{Timestamp: now, Status: models.Reported, Description: "Issue submitted by citizen."},
		},
	}

	overrides, err := s.store.Load(ctx)
	if err != nil {
		return models.Issue{}, err
	}
	overrides = append([]models.Issue{issue}, overrides...)
	if err := s.store.Save(ctx, overrides); err != nil {
		return models.Issue{}, err
	}
	return issue, nil
}

// newIssueID draws an IS-<5 digits> id and re-draws on collision against
// the merged view, falling back to a linear probe if the random draws keep
// colliding.
func (s *IssueService) newIssueID(existing []models.Issue) string {
	taken := make(map[string]bool, len(existing))
	for _, issue := range existing {
		taken[issue.ID] = true
	}

	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id := fmt.Sprintf("IS-%d", 10000+s.randInt(90000))
		if !taken[id] {
			return id
		}
	}
	for n := 10000; ; n++ {
		id := fmt.Sprintf("IS-%d", n)
		if !taken[id] {
			return id
		}
	}
}

// UpdateReportInput is a citizen edit of their own report. Both fields are
// optional; empty means leave unchanged.
type UpdateReportInput struct {
	IssueID      string
	Description  string
	PhotoDataURI string
	// Audit controls whether the edit appends a timeline entry. Citizen
	// self-edit flows pass false.
	Audit bool
}

// UpdateReport replaces the description and/or lead photo of an issue that
// is still in the Reported state.
func (s *IssueService) UpdateReport(ctx context.Context, input UpdateReportInput) (models.Issue, error) {
	if input.Description != "" && len(input.Description) < models.MinDescriptionLen {
		return models.Issue{}, invalidInput("description",
			fmt.Sprintf("must be at least %d characters", models.MinDescriptionLen))
	}

	issue, err := s.Get(ctx, input.IssueID)
	if err != nil {
		return models.Issue{}, err
	}
	if issue.Status != models.Reported {
		return models.Issue{}, ErrNotEditable
	}

	if input.Description != "" {
		issue.Description = input.Description
		issue.Title = models.DeriveTitle(input.Description)
	}
	if input.PhotoDataURI != "" {
		issue.ImageURL = input.PhotoDataURI
		replaced := false
		for i, img := range issue.Images {
			if strings.EqualFold(img.Caption, "Before") {
				issue.Images[i].URL = input.PhotoDataURI
				replaced = true
				break
			}
		}
		if !replaced {
			issue.Images = append(issue.Images, models.IssueImage{URL: input.PhotoDataURI, Caption: "Before"})
		}
	}
	if input.Audit {
		issue.Updates = append(issue.Updates, models.IssueUpdate{
			Timestamp:   s.now(),
			Status:      issue.Status,
			Description: "Issue details updated by citizen.",
		})
	}

	if err := s.store.Upsert(ctx, issue); err != nil {
		return models.Issue{}, err
	}
	return issue, nil
}

// AssignDepartment routes an issue to a municipal department. The audit
// flag decides whether the assignment lands in the timeline; the quick
// board drag passes false, the admin detail page passes true.
func (s *IssueService) AssignDepartment(ctx context.Context, issueID, department string, audit bool) (models.Issue, error) {
	if !models.IsGeneratedIssueID(issueID) {
		return models.Issue{}, invalidInput("issueId", "must match the IS-<digits> format")
	}
	if !models.IsAssignableDepartment(department) {
		return models.Issue{}, invalidInput("department", "unknown department "+department)
	}

	issue, err := s.Get(ctx, issueID)
	if err != nil {
		return models.Issue{}, err
	}

	issue.Department = department
	if audit {
		issue.Updates = append(issue.Updates, models.IssueUpdate{
			Timestamp:   s.now(),
			Status:      issue.Status,
			Description: fmt.Sprintf("Issue assigned to %s department.", department),
		})
	}

	if err := s.store.Upsert(ctx, issue); err != nil {
		return models.Issue{}, err
	}
	return issue, nil
}

// ChangeStatus moves an issue to a new status and always appends a
// timeline entry carrying the comment (empty string when none was given).
// Reaching Resolved stamps resolvedAt.
func (s *IssueService) ChangeStatus(ctx context.Context, issueID, status, comment string) (models.Issue, error) {
	newStatus := models.IssueStatus(status)
	if !newStatus.IsValid() {
		return models.Issue{}, invalidInput("status", "unknown status "+status)
	}

	issue, err := s.Get(ctx, issueID)
	if err != nil {
		return models.Issue{}, err
	}

	now := s.now()
	issue.Status = newStatus
	issue.Updates = append(issue.Updates, models.IssueUpdate{
		Timestamp:   now,
		Status:      newStatus,
		Description: comment,
	})
	if newStatus == models.Resolved {
		issue.ResolvedAt = &now
	}

	if err := s.store.Upsert(ctx, issue); err != nil {
		return models.Issue{}, err
	}
	return issue, nil
}

// AddAfterPhoto attaches the resolution photo. Only one "After" image may
// exist at a time.
func (s *IssueService) AddAfterPhoto(ctx context.Context, issueID, photoDataURI string, audit bool) (models.Issue, error) {
	if photoDataURI == "" {
		return models.Issue{}, invalidInput("photo", "a photo is required")
	}

	issue, err := s.Get(ctx, issueID)
	if err != nil {
		return models.Issue{}, err
	}
	if issue.HasAfterPhoto() {
		return models.Issue{}, ErrAfterPhotoExists
	}

	issue.Images = append(issue.Images, models.IssueImage{URL: photoDataURI, Caption: "After"})
	if audit {
		issue.Updates = append(issue.Updates, models.IssueUpdate{
			Timestamp:   s.now(),
			Status:      issue.Status,
			Description: "Added 'After' photo.",
		})
	}

	if err := s.store.Upsert(ctx, issue); err != nil {
		return models.Issue{}, err
	}
	return issue, nil
}

// DeleteAfterPhoto removes every image tagged "After" (case-insensitive).
func (s *IssueService) DeleteAfterPhoto(ctx context.Context, issueID string, audit bool) (models.Issue, error) {
	issue, err := s.Get(ctx, issueID)
	if err != nil {
		return models.Issue{}, err
	}

	kept := issue.Images[:0:0]
	for _, img := range issue.Images {
		if !img.IsAfterPhoto() {
			kept = append(kept, img)
		}
	}
	if len(kept) == len(issue.Images) {
		return models.Issue{}, ErrAfterPhotoMissing
	}
	issue.Images = kept
	if issue.Images == nil {
		issue.Images = []models.IssueImage{}
	}
	if audit {
		issue.Updates = append(issue.Updates, models.IssueUpdate{
			Timestamp:   s.now(),
			Status:      issue.Status,
			Description: "Administrator removed the 'After' photo.",
		})
	}

	if err := s.store.Upsert(ctx, issue); err != nil {
		return models.Issue{}, err
	}
	return issue, nil
}
