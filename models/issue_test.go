package models

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestCategoryIsValid(t *testing.T) {
	for _, category := range Categories {
		if !category.IsValid() {
			t.Errorf("expected %q to be valid", category)
		}
	}
	for _, category := range []IssueCategory{"", "Road", "pothole"} {
		if category.IsValid() {
			t.Errorf("expected %q to be invalid", category)
		}
	}
}

func TestStatusIsValid(t *testing.T) {
	for _, status := range []IssueStatus{Reported, InProgress, Resolved} {
		if !status.IsValid() {
			t.Errorf("expected %q to be valid", status)
		}
	}
	for _, status := range []IssueStatus{"", "Pending", "resolved"} {
		if status.IsValid() {
			t.Errorf("expected %q to be invalid", status)
		}
	}
}

func TestStatusProgress(t *testing.T) {
	cases := map[IssueStatus]int{
		Reported:   10,
		InProgress: 50,
		Resolved:   100,
	}
	for status, want := range cases {
		if got := StatusProgress[status]; got != want {
			t.Errorf("StatusProgress[%q] = %d, want %d", status, got, want)
		}
	}
}

func TestPriorityRankOrder(t *testing.T) {
	if !(PriorityRank[Low] < PriorityRank[Medium] && PriorityRank[Medium] < PriorityRank[High]) {
		t.Fatalf("priority ranks out of order: %v", PriorityRank)
	}
}

func TestDeriveTitle(t *testing.T) {
	short := "Broken streetlight on Elm St"
	if got := DeriveTitle(short); got != short {
		t.Errorf("DeriveTitle(short) = %q, want unchanged", got)
	}

	exactly50 := strings.Repeat("a", 50)
	if got := DeriveTitle(exactly50); got != exactly50 {
		t.Errorf("DeriveTitle should not truncate a 50-char description, got %q", got)
	}

	long := strings.Repeat("b", 51)
	want := strings.Repeat("b", 50) + "..."
	if got := DeriveTitle(long); got != want {
		t.Errorf("DeriveTitle(long) = %q, want %q", got, want)
	}
}

func TestDeriveTitleMultibyte(t *testing.T) {
	// 51 three-byte runes; a byte-index cut would land mid-rune.
	long := strings.Repeat("道", 51)
	got := DeriveTitle(long)
	if !utf8.ValidString(got) {
		t.Fatalf("truncated title is not valid UTF-8: %q", got)
	}
	if want := strings.Repeat("道", 50) + "..."; got != want {
		t.Errorf("DeriveTitle(multibyte) = %q, want %q", got, want)
	}

	exactly50 := strings.Repeat("é", 50)
	if got := DeriveTitle(exactly50); got != exactly50 {
		t.Errorf("50-rune description should not be truncated, got %q", got)
	}
}

func TestIsGeneratedIssueID(t *testing.T) {
	valid := []string{"IS-1", "IS-12345", "IS-99999"}
	for _, id := range valid {
		if !IsGeneratedIssueID(id) {
			t.Errorf("expected %q to match", id)
		}
	}
	invalid := []string{"", "IS-", "is-123", "IS-12a", "XX-123", "IS-123 "}
	for _, id := range invalid {
		if IsGeneratedIssueID(id) {
			t.Errorf("expected %q not to match", id)
		}
	}
}

func TestIssueImageIsAfterPhoto(t *testing.T) {
	cases := map[string]bool{
		"After":            true,
		"after":            true,
		"AFTER":            true,
		"Before":           false,
		"Work in progress": false,
	}
	for caption, want := range cases {
		img := IssueImage{Caption: caption}
		if got := img.IsAfterPhoto(); got != want {
			t.Errorf("IsAfterPhoto(%q) = %v, want %v", caption, got, want)
		}
	}
}

func TestIsAssignableDepartment(t *testing.T) {
	for _, d := range AssignableDepartments {
		if !IsAssignableDepartment(d) {
			t.Errorf("expected %q to be assignable", d)
		}
	}
	if IsAssignableDepartment(PendingAssignment) {
		t.Error("Pending Assignment must not be directly assignable")
	}
	if IsAssignableDepartment("Fire Dept.") {
		t.Error("unknown department must not be assignable")
	}
}
