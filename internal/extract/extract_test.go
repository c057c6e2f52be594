package extract

import (
	"strings"
	"testing"
	"time"

	"github.com/okmtz/tsk-cli/internal/model"
)

func TestParseMessagesTextExport(t *testing.T) {
	export := `[2025-03-11 09:15] Sam: can you send the quarterly report by friday? urgent
[2025-03-11 09:16] Me: sure thing

remember to water the plants`

	messages, err := ParseMessages(strings.NewReader(export))
	if err != nil {
		t.Fatalf("failed to parse text export: %v", err)
	}
	if len(messages) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(messages))
	}

	first := messages[0]
	if first.Sender != "Sam" {
		t.Fatalf("expected sender Sam, got %q", first.Sender)
	}
	if first.SentAt.IsZero() {
		t.Fatal("expected timestamp on first message")
	}
	if !strings.HasPrefix(first.Text, "can you send") {
		t.Fatalf("unexpected text: %q", first.Text)
	}

	bare := messages[2]
	if bare.Sender != "" || bare.Text != "remember to water the plants" {
		t.Fatalf("bare line parsed wrong: %+v", bare)
	}
}

func TestParseMessagesJSONExport(t *testing.T) {
	export := `[
  {"id": "m1", "sender": "Sam", "sent_at": "2025-03-11T09:15:00Z", "text": "can you book the flights?"},
  {"sender": "Me", "text": "on it"}
]`

	messages, err := ParseMessages(strings.NewReader(export))
	if err != nil {
		t.Fatalf("failed to parse JSON export: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(messages))
	}
	if messages[0].ID != "m1" {
		t.Fatalf("expected id m1, got %q", messages[0].ID)
	}
	if messages[0].SentAt.IsZero() {
		t.Fatal("expected parsed sent_at")
	}
	if messages[1].ID == "" {
		t.Fatal("messages without an id should get a generated one")
	}
}

func TestParseMessagesRejectsBadTimestamp(t *testing.T) {
	export := `[{"id": "m1", "sent_at": "last tuesday", "text": "hello"}]`
	if _, err := ParseMessages(strings.NewReader(export)); err == nil {
		t.Fatal("expected error for malformed sent_at")
	}
}

func TestExtractTasksScenarios(t *testing.T) {
	now := time.Date(2025, 3, 11, 10, 0, 0, 0, time.Local) // a Tuesday

	tests := []struct {
		name      string
		text      string
		wantFound bool
		wantTitle string
		wantPri   model.Priority
		wantConf  model.Confidence
		wantDue   bool
	}{
		{
			name:      "direct request with due and priority",
			text:      "can you send the quarterly report by friday? it's urgent",
			wantFound: true,
			wantTitle: "Send the quarterly report",
			wantPri:   model.PriorityUrgent,
			wantConf:  model.ConfidenceHigh,
			wantDue:   true,
		},
		{
			name:      "strong trigger with due",
			text:      "don't forget to pay rent tomorrow",
			wantFound: true,
			wantTitle: "Pay rent tomorrow",
			wantPri:   model.PriorityNone,
			wantConf:  model.ConfidenceHigh,
			wantDue:   true,
		},
		{
			name:      "weak trigger only",
			text:      "we should talk about the trip sometime",
			wantFound: true,
			wantTitle: "Talk about the trip sometime",
			wantPri:   model.PriorityNone,
			wantConf:  model.ConfidenceLow,
			wantDue:   false,
		},
		{
			name:      "remind me phrasing",
			text:      "remind me to renew the passport next week",
			wantFound: true,
			wantTitle: "Renew the passport next week",
			wantPri:   model.PriorityNone,
			wantConf:  model.ConfidenceHigh,
			wantDue:   true,
		},
		{
			name:      "weak trigger with explicit date",
			text:      "reminder: dentist appointment on 2025-04-02",
			wantFound: true,
			wantPri:   model.PriorityNone,
			wantConf:  model.ConfidenceMedium,
			wantDue:   true,
		},
		{
			name:      "chitchat is skipped",
			text:      "lunch was great, thanks!",
			wantFound: false,
		},
		{
			name:      "low priority phrasing",
			text:      "could you clean up the garage, no rush",
			wantFound: true,
			wantPri:   model.PriorityLow,
			wantConf:  model.ConfidenceHigh,
			wantDue:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidates := ExtractTasks([]Message{{ID: "m1", Text: tt.text}}, model.SourceMessages, now)

			if !tt.wantFound {
				if len(candidates) != 0 {
					t.Fatalf("expected no candidates, got %+v", candidates)
				}
				return
			}
			if len(candidates) != 1 {
				t.Fatalf("expected 1 candidate, got %d", len(candidates))
			}

			task := candidates[0].Task
			if tt.wantTitle != "" && !strings.HasPrefix(task.Title, tt.wantTitle) {
				t.Fatalf("expected title starting %q, got %q", tt.wantTitle, task.Title)
			}
			if task.Priority != tt.wantPri {
				t.Fatalf("expected priority %q, got %q", tt.wantPri, task.Priority)
			}
			if task.Confidence != tt.wantConf {
				t.Fatalf("expected confidence %q, got %q", tt.wantConf, task.Confidence)
			}
			if tt.wantDue && task.DueDate == nil {
				t.Fatal("expected a due date")
			}
			if !tt.wantDue && task.DueDate != nil {
				t.Fatalf("expected no due date, got %v", task.DueDate)
			}
			if task.Source.Type != model.SourceMessages || task.Source.Identifier != "m1" {
				t.Fatalf("source not recorded: %+v", task.Source)
			}
			if len(candidates[0].Why) == 0 {
				t.Fatal("expected extraction reasons")
			}
		})
	}
}

func TestExtractResolvesWeekdayAgainstMessageTime(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.Local)
	sentAt := time.Date(2025, 3, 11, 9, 15, 0, 0, time.Local) // a Tuesday

	messages := []Message{{ID: "m1", SentAt: sentAt, Text: "can you send the report by friday?"}}
	candidates := ExtractTasks(messages, model.SourceMessages, now)
	if len(candidates) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(candidates))
	}

	due := candidates[0].Task.DueDate
	if due == nil {
		t.Fatal("expected a due date")
	}
	if due.Year() != 2025 || due.Month() != time.March || due.Day() != 14 {
		t.Fatalf("expected due 2025-03-14 (friday after the message), got %v", due)
	}
}

func TestExtractNotesCarrySenderAndText(t *testing.T) {
	now := time.Now()
	messages := []Message{{ID: "m1", Sender: "Sam", Text: "please pick up the keys"}}

	candidates := ExtractTasks(messages, model.SourceMessages, now)
	if len(candidates) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(candidates))
	}
	notes := candidates[0].Task.Notes
	if !strings.Contains(notes, "Sam") || !strings.Contains(notes, "please pick up the keys") {
		t.Fatalf("notes should carry sender and original text, got %q", notes)
	}
}
