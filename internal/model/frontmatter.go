package model

import (
	"fmt"
	"time"
)

// TaskFrontMatter is the YAML header of the markdown file handed to $EDITOR
// by `tsk edit`. The body below the header is the task's notes.
type TaskFrontMatter struct {
	ID         string `yaml:"id"`
	Title      string `yaml:"title"`
	Status     string `yaml:"status"`
	Priority   string `yaml:"priority"`
	Due        string `yaml:"due"` // 2006-01-02 or 2006-01-02 15:04, empty for none
	SourceType string `yaml:"source_type"`
	SourceID   string `yaml:"source_id"`
	Confidence string `yaml:"confidence"`
	CreatedAt  string `yaml:"created_at"`
	UpdatedAt  string `yaml:"updated_at"`
	Archived   bool   `yaml:"archived"`
	Deleted    bool   `yaml:"deleted"`
}

// FrontMatter renders the editable header for a task.
func (t Task) FrontMatter() TaskFrontMatter {
	due := ""
	if t.DueDate != nil {
		due = t.DueDate.Format("2006-01-02 15:04")
	}
	return TaskFrontMatter{
		ID:         t.ID,
		Title:      t.Title,
		Status:     string(t.Status),
		Priority:   string(t.Priority),
		Due:        due,
		SourceType: string(t.Source.Type),
		SourceID:   t.Source.Identifier,
		Confidence: string(t.Confidence),
		CreatedAt:  t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  t.UpdatedAt.Format(time.RFC3339),
		Archived:   t.Archived,
		Deleted:    t.Deleted,
	}
}

// ApplyFrontMatter writes the editable fields back onto the task. ID,
// source and the create timestamp are not editable; status changes keep the
// completion timestamp consistent.
func (t *Task) ApplyFrontMatter(fm TaskFrontMatter, body string, now time.Time) error {
	if fm.Title == "" {
		return fmt.Errorf("title cannot be empty")
	}
	status, err := ParseStatus(fm.Status)
	if err != nil {
		return err
	}
	priority, err := ParsePriority(fm.Priority)
	if err != nil {
		return err
	}
	confidence, err := ParseConfidence(fm.Confidence)
	if err != nil {
		return err
	}
	due, err := ParseDueDate(fm.Due)
	if err != nil {
		return err
	}

	t.Title = fm.Title
	t.Priority = priority
	t.Confidence = confidence
	t.DueDate = due
	t.Notes = body
	t.Archived = fm.Archived

	// Keep DeletedAt in step so trash retention still applies.
	if fm.Deleted != t.Deleted {
		if fm.Deleted {
			t.SetDeleted(now)
		} else {
			t.ResetDeleted(now)
		}
	}

	if status != t.Status {
		switch status {
		case StatusCompleted:
			t.MarkCompleted(now)
		case StatusPending:
			t.Reopen(now)
		default:
			t.Status = status
			t.CompletedAt = nil
		}
	}
	t.UpdatedAt = now
	return nil
}
