package store

import (
	"context"
	"encoding/json"
	"log"

	"civicseva-be/models"
)

// OverrideStore is the client-persisted set of created and edited issues
// that shadows the seed dataset by id. All mutation operations go through
// it; callers never touch the underlying slot directly, which keeps the
// read-modify-write (last write wins) cycle in one place.
type OverrideStore struct {
	slot Slot
}

func NewOverrideStore(slot Slot) *OverrideStore {
	return &OverrideStore{slot: slot}
}

// Load returns the persisted overrides. A payload that fails to parse is
// absorbed as an empty sequence, never surfaced as an error; only a slot
// transport failure is returned.
func (s *OverrideStore) Load(ctx context.Context) ([]models.Issue, error) {
	payload, err := s.slot.Load(ctx)
	if err != nil {
		return nil, err
	}
	if len(payload) == 0 {
		return []models.Issue{}, nil
	}

	var issues []models.Issue
	if err := json.Unmarshal(payload, &issues); err != nil {
		log.Printf("Discarding malformed override payload: %v", err)
		return []models.Issue{}, nil
	}
	if issues == nil {
		issues = []models.Issue{}
	}
	return issues, nil
}

// Save writes the full override sequence back to the slot.
func (s *OverrideStore) Save(ctx context.Context, issues []models.Issue) error {
	payload, err := json.Marshal(issues)
	if err != nil {
		return err
	}
	return s.slot.Save(ctx, payload)
}

// Upsert replaces the override with the same id, or prepends the issue as
// the newest record when no override exists yet.
func (s *OverrideStore) Upsert(ctx context.Context, issue models.Issue) error {
	issues, err := s.Load(ctx)
	if err != nil {
		return err
	}

	for i := range issues {
		if issues[i].ID == issue.ID {
			issues[i] = issue
			return s.Save(ctx, issues)
		}
	}

	issues = append([]models.Issue{issue}, issues...)
	return s.Save(ctx, issues)
}
