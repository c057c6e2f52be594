package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/okmtz/tsk-cli/internal/model"
)

type badge struct {
	label string
	style lipgloss.Style
}

// Static lookup tables; PriorityNone and SourceManual have no badge.
var priorityBadges = map[model.Priority]badge{
	model.PriorityLow:    {label: "LOW", style: lipgloss.NewStyle().Foreground(lipgloss.Color("12"))},
	model.PriorityMedium: {label: "MED", style: lipgloss.NewStyle().Foreground(lipgloss.Color("214"))},
	model.PriorityHigh:   {label: "HIGH", style: lipgloss.NewStyle().Foreground(lipgloss.Color("202"))},
	model.PriorityUrgent: {label: "URG", style: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)},
}

var sourceBadges = map[model.SourceType]badge{
	model.SourceMessages:  {label: "MSG", style: AccentStyle},
	model.SourceEmail:     {label: "MAIL", style: AccentStyle},
	model.SourceClipboard: {label: "CLIP", style: AccentStyle},
}

// PriorityLabel returns the plain badge text for a priority, empty for none.
func PriorityLabel(p model.Priority) string {
	return priorityBadges[p].label
}

// PriorityBadge renders the bracketed, colored badge, empty for none.
func PriorityBadge(p model.Priority) string {
	b, ok := priorityBadges[p]
	if !ok {
		return ""
	}
	return b.style.Render("[" + b.label + "]")
}

// SourceLabel returns the plain badge text for a source type. Manually
// created tasks carry no badge.
func SourceLabel(s model.SourceType) string {
	return sourceBadges[s].label
}

func SourceBadge(s model.SourceType) string {
	b, ok := sourceBadges[s]
	if !ok {
		return ""
	}
	return b.style.Render("[" + b.label + "]")
}

// ConfidenceGlyph marks tasks the extractor was not sure about. High
// confidence (and manual entry) renders nothing.
func ConfidenceGlyph(c model.Confidence) string {
	switch c {
	case model.ConfidenceLow:
		return "??"
	case model.ConfidenceMedium:
		return "?"
	default:
		return ""
	}
}

// DueLabel formats a due date relative to now: "today", "tomorrow",
// "in 3d", "2d ago". Dates further than two weeks out collapse to a short
// calendar form.
func DueLabel(due time.Time, now time.Time) string {
	days := calendarDays(now, due)

	switch {
	case days == 0:
		return "today"
	case days == 1:
		return "tomorrow"
	case days == -1:
		return "yesterday"
	case days > 1 && days <= 14:
		return fmt.Sprintf("in %dd", days)
	case days < -1 && days >= -14:
		return fmt.Sprintf("%dd ago", -days)
	}

	if due.Year() == now.Year() {
		return due.Format("Jan 2")
	}
	return due.Format("Jan 2 2006")
}

// calendarDays counts midnight boundaries between a and b in local time, so
// 23:59 → 00:01 still reads as one day.
func calendarDays(a, b time.Time) int {
	al := a.Local()
	bl := b.Local()
	ad := time.Date(al.Year(), al.Month(), al.Day(), 0, 0, 0, 0, time.Local)
	bd := time.Date(bl.Year(), bl.Month(), bl.Day(), 0, 0, 0, 0, time.Local)
	return int(bd.Sub(ad).Hours() / 24)
}

// Checkbox renders the completion box for a task row.
func Checkbox(done bool) string {
	if done {
		return SuccessStyle.Render(BoxChecked)
	}
	return MutedStyle.Render(BoxUnchecked)
}

// RenderRow draws one task as a single line: checkbox, title, then the
// badges that apply. Completed rows are struck through; overdue due labels
// are red.
func RenderRow(t model.Task, now time.Time, selected bool) string {
	parts := make([]string, 0, 6)

	parts = append(parts, Checkbox(t.IsCompleted()))

	title := t.Title
	if t.IsCompleted() {
		title = DoneStyle.Render(title)
	} else if t.Status == model.StatusCancelled {
		title = MutedStyle.Render(title)
	}
	parts = append(parts, title)

	if b := PriorityBadge(t.Priority); b != "" {
		parts = append(parts, b)
	}
	if b := SourceBadge(t.Source.Type); b != "" {
		parts = append(parts, b)
	}

	if t.DueDate != nil {
		label := DueLabel(*t.DueDate, now)
		if t.IsOverdue(now) {
			label = ErrorStyle.Render(label)
		} else {
			label = MutedStyle.Render(label)
		}
		parts = append(parts, label)
	}

	if g := ConfidenceGlyph(t.Confidence); g != "" {
		parts = append(parts, PendingStyle.Render(g))
	}

	line := strings.Join(parts, " ")
	if selected {
		return SelectedStyle.Render("> ") + line
	}
	return "  " + line
}
