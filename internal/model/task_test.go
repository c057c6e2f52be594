package model

import (
	"testing"
	"time"
)

func newPendingTask() Task {
	created := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	return Task{
		ID:         "3d9c5f2a-7b41-4a6e-9c2d-1f8e6a0b4c77",
		SeqID:      1,
		Title:      "Send the quarterly report",
		Status:     StatusPending,
		Priority:   PriorityMedium,
		Source:     ManualSource(),
		Confidence: ConfidenceHigh,
		CreatedAt:  created,
		UpdatedAt:  created,
	}
}

func TestMarkCompletedStampsCompletionTime(t *testing.T) {
	task := newPendingTask()
	now := time.Date(2025, 3, 2, 14, 30, 0, 0, time.UTC)

	task.MarkCompleted(now)

	if task.Status != StatusCompleted {
		t.Fatalf("expected status %q, got %q", StatusCompleted, task.Status)
	}
	if task.CompletedAt == nil {
		t.Fatal("expected CompletedAt to be set")
	}
	if !task.CompletedAt.Equal(now) {
		t.Fatalf("expected CompletedAt %v, got %v", now, *task.CompletedAt)
	}
	if !task.UpdatedAt.Equal(now) {
		t.Fatalf("expected UpdatedAt %v, got %v", now, task.UpdatedAt)
	}
}

func TestReopenClearsCompletionTime(t *testing.T) {
	task := newPendingTask()
	done := time.Date(2025, 3, 2, 14, 30, 0, 0, time.UTC)
	task.MarkCompleted(done)

	later := done.Add(time.Hour)
	task.Reopen(later)

	if task.Status != StatusPending {
		t.Fatalf("expected status %q, got %q", StatusPending, task.Status)
	}
	if task.CompletedAt != nil {
		t.Fatalf("expected CompletedAt cleared, got %v", *task.CompletedAt)
	}
	if !task.UpdatedAt.Equal(later) {
		t.Fatalf("expected UpdatedAt %v, got %v", later, task.UpdatedAt)
	}
}

func TestToggleCompletionFlipsBothWays(t *testing.T) {
	task := newPendingTask()
	now := time.Date(2025, 3, 2, 14, 30, 0, 0, time.UTC)

	task.ToggleCompletion(now)
	if !task.IsCompleted() {
		t.Fatal("expected task to be completed after first toggle")
	}
	if task.CompletedAt == nil {
		t.Fatal("expected CompletedAt after first toggle")
	}

	task.ToggleCompletion(now.Add(time.Minute))
	if task.IsCompleted() {
		t.Fatal("expected task to be pending after second toggle")
	}
	if task.CompletedAt != nil {
		t.Fatal("expected CompletedAt cleared after second toggle")
	}
}

func TestToggleCompletionLeavesCancelledAlone(t *testing.T) {
	task := newPendingTask()
	task.Status = StatusCancelled
	now := time.Date(2025, 3, 2, 14, 30, 0, 0, time.UTC)

	task.ToggleCompletion(now)

	if task.Status != StatusCompleted {
		t.Fatalf("toggling a cancelled task should complete it, got %q", task.Status)
	}
}

func TestIsOverdue(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	past := now.Add(-48 * time.Hour)
	future := now.Add(48 * time.Hour)

	tests := []struct {
		name string
		due  *time.Time
		mut  func(*Task)
		want bool
	}{
		{name: "no due date", due: nil, want: false},
		{name: "due in the future", due: &future, want: false},
		{name: "due in the past", due: &past, want: true},
		{name: "past due but completed", due: &past, mut: func(tk *Task) { tk.MarkCompleted(now) }, want: false},
		{name: "past due but cancelled", due: &past, mut: func(tk *Task) { tk.Status = StatusCancelled }, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := newPendingTask()
			task.DueDate = tt.due
			if tt.mut != nil {
				tt.mut(&task)
			}
			if got := task.IsOverdue(now); got != tt.want {
				t.Fatalf("IsOverdue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParsePriority(t *testing.T) {
	p, err := ParsePriority("URGENT")
	if err != nil {
		t.Fatalf("failed to parse priority: %v", err)
	}
	if p != PriorityUrgent {
		t.Fatalf("expected %q, got %q", PriorityUrgent, p)
	}

	if _, err := ParsePriority("asap"); err == nil {
		t.Fatal("expected error for unknown priority")
	}
}

func TestPriorityRankOrdering(t *testing.T) {
	order := []Priority{PriorityNone, PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}
	for i := 1; i < len(order); i++ {
		if order[i].Rank() <= order[i-1].Rank() {
			t.Fatalf("expected %q to rank above %q", order[i], order[i-1])
		}
	}
}

func TestParseDueDate(t *testing.T) {
	due, err := ParseDueDate("2025-03-10")
	if err != nil {
		t.Fatalf("failed to parse date-only due: %v", err)
	}
	if due.Hour() != 23 || due.Minute() != 59 {
		t.Fatalf("date-only due should land at end of day, got %v", due)
	}

	due, err = ParseDueDate("2025-03-10 09:30")
	if err != nil {
		t.Fatalf("failed to parse date-time due: %v", err)
	}
	if due.Hour() != 9 || due.Minute() != 30 {
		t.Fatalf("expected 09:30, got %v", due)
	}

	due, err = ParseDueDate("")
	if err != nil {
		t.Fatalf("empty due should not error: %v", err)
	}
	if due != nil {
		t.Fatalf("empty due should be nil, got %v", due)
	}

	if _, err := ParseDueDate("next tuesday"); err == nil {
		t.Fatal("expected error for unparseable due date")
	}
}

func TestFrontMatterRoundTrip(t *testing.T) {
	task := newPendingTask()
	due := time.Date(2025, 3, 15, 18, 0, 0, 0, time.Local)
	task.DueDate = &due
	task.Notes = "bring the printed copy"

	fm := task.FrontMatter()
	if fm.Title != task.Title {
		t.Fatalf("expected title %q, got %q", task.Title, fm.Title)
	}
	if fm.Due != "2025-03-15 18:00" {
		t.Fatalf("expected due string 2025-03-15 18:00, got %q", fm.Due)
	}

	fm.Title = "Send the annual report"
	fm.Status = "completed"
	fm.Priority = "high"

	now := time.Date(2025, 3, 16, 8, 0, 0, 0, time.UTC)
	if err := task.ApplyFrontMatter(fm, "new body", now); err != nil {
		t.Fatalf("failed to apply front matter: %v", err)
	}
	if task.Title != "Send the annual report" {
		t.Fatalf("title not applied, got %q", task.Title)
	}
	if task.Status != StatusCompleted || task.CompletedAt == nil {
		t.Fatal("status change to completed should stamp CompletedAt")
	}
	if task.Priority != PriorityHigh {
		t.Fatalf("priority not applied, got %q", task.Priority)
	}
	if task.Notes != "new body" {
		t.Fatalf("body not applied, got %q", task.Notes)
	}
}

func TestApplyFrontMatterRejectsBadValues(t *testing.T) {
	task := newPendingTask()
	now := time.Now()

	fm := task.FrontMatter()
	fm.Title = ""
	if err := task.ApplyFrontMatter(fm, "", now); err == nil {
		t.Fatal("expected error for empty title")
	}

	fm = task.FrontMatter()
	fm.Status = "paused"
	if err := task.ApplyFrontMatter(fm, "", now); err == nil {
		t.Fatal("expected error for unknown status")
	}
}
