package model

import (
	"fmt"
	"strings"
	"time"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

type Priority string

const (
	PriorityNone   Priority = "none"
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

type Task struct {
	ID          string     `json:"id"`     // uuid
	SeqID       int        `json:"seq_id"` // 1... (shown to the user, stable)
	Title       string     `json:"title"`
	Notes       string     `json:"notes,omitempty"` // markdown body
	Status      Status     `json:"status"`
	Priority    Priority   `json:"priority"`
	Source      Source     `json:"source"`
	Confidence  Confidence `json:"confidence"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Archived    bool       `json:"archived"`
	Deleted     bool       `json:"deleted"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

// MarkCompleted moves the task to completed and stamps the completion time.
func (t *Task) MarkCompleted(now time.Time) {
	t.Status = StatusCompleted
	t.CompletedAt = &now
	t.UpdatedAt = now
}

// Reopen moves a completed task back to pending and clears the completion time.
func (t *Task) Reopen(now time.Time) {
	t.Status = StatusPending
	t.CompletedAt = nil
	t.UpdatedAt = now
}

// ToggleCompletion flips the completion state: an incomplete task becomes
// completed with a completion timestamp, a completed task goes back to
// pending with the timestamp cleared.
func (t *Task) ToggleCompletion(now time.Time) {
	if t.IsCompleted() {
		t.Reopen(now)
		return
	}
	t.MarkCompleted(now)
}

func (t Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}

// IsOverdue reports whether the task has a due date in the past and is still
// open. Completed and cancelled tasks are never overdue.
func (t Task) IsOverdue(now time.Time) bool {
	if t.DueDate == nil {
		return false
	}
	if t.Status == StatusCompleted || t.Status == StatusCancelled {
		return false
	}
	return t.DueDate.Before(now)
}

func (t *Task) SetDeleted(now time.Time) {
	t.Deleted = true
	t.DeletedAt = &now
	t.UpdatedAt = now
}

func (t *Task) ResetDeleted(now time.Time) {
	t.Deleted = false
	t.DeletedAt = nil
	t.UpdatedAt = now
}

func (t *Task) SetArchived(now time.Time) {
	t.Archived = true
	t.UpdatedAt = now
}

func (t *Task) ResetArchived(now time.Time) {
	t.Archived = false
	t.UpdatedAt = now
}

// Rank orders priorities for sorting (urgent first).
func (p Priority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 4
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// Rank orders confidence levels (high first) for threshold filters.
func (c Confidence) Rank() int {
	switch c {
	case ConfidenceHigh:
		return 3
	case ConfidenceMedium:
		return 2
	case ConfidenceLow:
		return 1
	default:
		return 0
	}
}

func ParseStatus(s string) (Status, error) {
	switch Status(strings.ToLower(s)) {
	case StatusPending, StatusCompleted, StatusCancelled:
		return Status(strings.ToLower(s)), nil
	}
	return "", fmt.Errorf("unknown status %q (pending, completed, cancelled)", s)
}

func ParsePriority(s string) (Priority, error) {
	switch Priority(strings.ToLower(s)) {
	case PriorityNone, PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return Priority(strings.ToLower(s)), nil
	}
	return "", fmt.Errorf("unknown priority %q (none, low, medium, high, urgent)", s)
}

func ParseConfidence(s string) (Confidence, error) {
	switch Confidence(strings.ToLower(s)) {
	case ConfidenceLow, ConfidenceMedium, ConfidenceHigh:
		return Confidence(strings.ToLower(s)), nil
	}
	return "", fmt.Errorf("unknown confidence %q (low, medium, high)", s)
}

// ParseDueDate accepts a due date as 2006-01-02, 2006-01-02 15:04 or RFC3339.
// A bare date is normalized to the end of that day so a task stays "due
// today" until midnight.
func ParseDueDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if d, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		eod := d.Add(24*time.Hour - time.Second)
		return &eod, nil
	}
	if d, err := time.ParseInLocation("2006-01-02 15:04", s, time.Local); err == nil {
		return &d, nil
	}
	if d, err := time.Parse(time.RFC3339, s); err == nil {
		return &d, nil
	}
	return nil, fmt.Errorf("invalid due date %q (want 2006-01-02 or 2006-01-02 15:04)", s)
}
