package services

import (
	"sort"
	"strings"

	"civicseva-be/models"
)

// Sort keys accepted by the list view engine.
const (
	SortByReportedAt = "reportedAt"
	SortByPriority   = "priority"
	SortByStatus     = "status"
)

// ViewQuery selects, orders, and searches the merged issue collection for
// one dashboard render. Empty or "all" values are no-ops; filters combine
// with AND.
type ViewQuery struct {
	Search   string
	Status   string
	Category string
	Priority string
	Sort     string // reportedAt (default), priority, status
	Order    string // asc or desc (default)
}

// ApplyView filters, searches, and sorts the given issues. It is pure: the
// input slice is never mutated and the override store is never touched.
func ApplyView(issues []models.Issue, query ViewQuery) []models.Issue {
	out := make([]models.Issue, 0, len(issues))
	search := strings.ToLower(strings.TrimSpace(query.Search))

	for _, issue := range issues {
		if filterActive(query.Status) && string(issue.Status) != query.Status {
			continue
		}
		if filterActive(query.Category) && string(issue.Category) != query.Category {
			continue
		}
		if filterActive(query.Priority) && string(issue.Priority) != query.Priority {
			continue
		}
		if search != "" && !matchesSearch(issue, search) {
			continue
		}
		out = append(out, issue)
	}

	sortIssues(out, query.Sort, query.Order)
	return out
}

func filterActive(value string) bool {
	return value != "" && value != "all"
}

// matchesSearch does a case-insensitive substring match against id, title,
// description, and address, OR across fields.
func matchesSearch(issue models.Issue, search string) bool {
	for _, field := range []string{issue.ID, issue.Title, issue.Description, issue.Location.Address} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

// less functions per sort key, ascending. Sorting is stable so ties keep
// their original relative order.
var comparators = map[string]func(a, b models.Issue) bool{
	SortByReportedAt: func(a, b models.Issue) bool {
		return a.ReportedAt.Before(b.ReportedAt)
	},
	SortByPriority: func(a, b models.Issue) bool {
		return models.PriorityRank[a.Priority] < models.PriorityRank[b.Priority]
	},
	SortByStatus: func(a, b models.Issue) bool {
		return string(a.Status) < string(b.Status)
	},
}

func sortIssues(issues []models.Issue, key, order string) {
	less, ok := comparators[key]
	if !ok {
		less = comparators[SortByReportedAt]
	}
	ascending := order == "asc"
	sort.SliceStable(issues, func(i, j int) bool {
		if ascending {
			return less(issues[i], issues[j])
		}
		return less(issues[j], issues[i])
	})
}

// BoardColumns are the assignment board's fixed buckets. Issues whose
// department is in no column simply do not appear on the board.
var BoardColumns = []string{
	models.PendingAssignment,
	"Public Works",
	"Sanitation",
	"Transportation",
}

// GroupByDepartment partitions issues into the named columns.
func GroupByDepartment(issues []models.Issue, columns []string) map[string][]models.Issue {
	grouped := make(map[string][]models.Issue, len(columns))
	for _, column := range columns {
		grouped[column] = []models.Issue{}
	}
	for _, issue := range issues {
		if bucket, ok := grouped[issue.Department]; ok {
			grouped[issue.Department] = append(bucket, issue)
		}
	}
	return grouped
}
