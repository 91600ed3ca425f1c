package services

import "civicseva-be/models"

// Merge combines the seed dataset with the override set into one
// authoritative view, keyed by issue id. Overrides replace seed entries
// with the same id in full; there is no field-by-field blending. The
// result keeps insertion order: seed order first, then any override-only
// ids appended in override order. Callers wanting newest-first must sort
// by reportedAt themselves.
//
// Merge is idempotent and deterministic given the same two inputs.
func Merge(seed, overrides []models.Issue) []models.Issue {
	merged := make([]models.Issue, 0, len(seed)+len(overrides))
	position := make(map[string]int, len(seed)+len(overrides))

	for _, issue := range seed {
		position[issue.ID] = len(merged)
		merged = append(merged, issue)
	}
	for _, issue := range overrides {
		if at, ok := position[issue.ID]; ok {
			merged[at] = issue
			continue
		}
		position[issue.ID] = len(merged)
		merged = append(merged, issue)
	}

	return merged
}
