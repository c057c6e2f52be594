package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/okmtz/tsk-cli/internal/model"
)

// Candidate is a task the extractor proposes, with the cues that led to it.
type Candidate struct {
	Task model.Task
	Why  []string
}

// Trigger phrases, checked in order. Strong triggers are direct requests;
// weak triggers only hint at an obligation.
var strongTriggers = []string{
	"can you",
	"could you",
	"don't forget to",
	"dont forget to",
	"remember to",
	"remind me to",
	"remind me",
	"please",
	"make sure",
	"todo:",
	"need you to",
}

var weakTriggers = []string{
	"need to",
	"have to",
	"should",
	"reminder",
}

var priorityWords = []struct {
	word     string
	priority model.Priority
}{
	{"urgent", model.PriorityUrgent},
	{"asap", model.PriorityUrgent},
	{"right away", model.PriorityUrgent},
	{"immediately", model.PriorityUrgent},
	{"critical", model.PriorityUrgent},
	{"high priority", model.PriorityHigh},
	{"important", model.PriorityHigh},
	{"no rush", model.PriorityLow},
	{"whenever", model.PriorityLow},
	{"when you get a chance", model.PriorityLow},
	{"low priority", model.PriorityLow},
	{"someday", model.PriorityLow},
}

var (
	weekdayRegex  = regexp.MustCompile(`(?:by|on|before|until|next)\s+(monday|tuesday|wednesday|thursday|friday|saturday|sunday)`)
	isoDateRegex  = regexp.MustCompile(`\b(\d{4}-\d{2}-\d{2})\b`)
	monthDayRegex = regexp.MustCompile(`\b(january|february|march|april|may|june|july|august|september|october|november|december)\s+(\d{1,2})\b`)
)

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

var months = map[string]time.Month{
	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "may": time.May, "june": time.June,
	"july": time.July, "august": time.August, "september": time.September,
	"october": time.October, "november": time.November, "december": time.December,
}

// ExtractTasks scans messages for actionable requests and proposes tasks.
// Relative due phrases resolve against the message timestamp when the
// export carries one, otherwise against now.
func ExtractTasks(messages []Message, srcType model.SourceType, now time.Time) []Candidate {
	var candidates []Candidate
	for _, msg := range messages {
		if c, ok := extractOne(msg, srcType, now); ok {
			candidates = append(candidates, c)
		}
	}
	return candidates
}

func extractOne(msg Message, srcType model.SourceType, now time.Time) (Candidate, bool) {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return Candidate{}, false
	}
	lower := strings.ToLower(text)

	trigger, strong := findTrigger(lower)
	if trigger == "" {
		return Candidate{}, false
	}

	why := []string{fmt.Sprintf("trigger %q", trigger)}
	score := 1
	if strong {
		score = 2
	}

	ref := now
	if !msg.SentAt.IsZero() {
		ref = msg.SentAt
	}

	due, duePhrase := parseDuePhrase(lower, ref)
	if due != nil {
		score++
		why = append(why, fmt.Sprintf("due phrase %q", duePhrase))
	}

	priority, priorityWord := parsePriorityWord(lower)
	if priority != model.PriorityNone {
		score++
		why = append(why, fmt.Sprintf("priority word %q", priorityWord))
	}

	confidence := model.ConfidenceLow
	switch {
	case score >= 3:
		confidence = model.ConfidenceHigh
	case score == 2:
		confidence = model.ConfidenceMedium
	}

	notes := text
	if msg.Sender != "" {
		notes = fmt.Sprintf("%s: %s", msg.Sender, text)
	}

	task := model.Task{
		Title:      deriveTitle(text, lower, trigger),
		Notes:      notes,
		Status:     model.StatusPending,
		Priority:   priority,
		Source:     model.Source{Type: srcType, Identifier: msg.ID},
		Confidence: confidence,
		DueDate:    due,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return Candidate{Task: task, Why: why}, true
}

func findTrigger(lower string) (string, bool) {
	for _, t := range strongTriggers {
		if strings.Contains(lower, t) {
			return t, true
		}
	}
	for _, t := range weakTriggers {
		if strings.Contains(lower, t) {
			return t, false
		}
	}
	return "", false
}

// deriveTitle drops everything up to and including the trigger, then trims
// trailing punctuation. "can you send the report by friday?" becomes
// "Send the report by friday".
func deriveTitle(text, lower, trigger string) string {
	title := text
	if idx := strings.Index(lower, trigger); idx >= 0 {
		rest := strings.TrimLeft(text[idx+len(trigger):], ":,;- ")
		rest = strings.TrimSpace(rest)
		if rest != "" {
			title = rest
		}
	}
	title = strings.TrimRight(title, "?!. ")
	if title == "" {
		title = strings.TrimRight(text, "?!. ")
	}
	return capitalize(title)
}

func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func parsePriorityWord(lower string) (model.Priority, string) {
	for _, pw := range priorityWords {
		if strings.Contains(lower, pw.word) {
			return pw.priority, pw.word
		}
	}
	return model.PriorityNone, ""
}

// parseDuePhrase resolves the first due phrase found in the text to an
// end-of-day deadline. Returns the matched phrase for reporting.
func parseDuePhrase(lower string, ref time.Time) (*time.Time, string) {
	if matches := isoDateRegex.FindStringSubmatch(lower); len(matches) > 0 {
		if d, err := time.ParseInLocation("2006-01-02", matches[1], time.Local); err == nil {
			due := endOfDay(d)
			return &due, matches[1]
		}
	}

	if matches := monthDayRegex.FindStringSubmatch(lower); len(matches) > 0 {
		month := months[matches[1]]
		day, err := strconv.Atoi(matches[2])
		if err == nil && day >= 1 && day <= 31 {
			due := time.Date(ref.Year(), month, day, 0, 0, 0, 0, time.Local)
			if due.Before(ref) {
				due = due.AddDate(1, 0, 0)
			}
			due = endOfDay(due)
			return &due, fmt.Sprintf("%s %d", matches[1], day)
		}
	}

	if strings.Contains(lower, "tomorrow") {
		due := endOfDay(ref.AddDate(0, 0, 1))
		return &due, "tomorrow"
	}
	if strings.Contains(lower, "today") || strings.Contains(lower, "tonight") {
		due := endOfDay(ref)
		phrase := "today"
		if strings.Contains(lower, "tonight") {
			phrase = "tonight"
		}
		return &due, phrase
	}
	if strings.Contains(lower, "next week") {
		due := endOfDay(ref.AddDate(0, 0, 7))
		return &due, "next week"
	}

	if matches := weekdayRegex.FindStringSubmatch(lower); len(matches) > 0 {
		target := weekdays[matches[1]]
		ahead := (int(target) - int(ref.Weekday()) + 7) % 7
		if ahead == 0 {
			ahead = 7
		}
		if strings.Contains(lower, "next "+matches[1]) {
			ahead += 7
		}
		due := endOfDay(ref.AddDate(0, 0, ahead))
		return &due, matches[1]
	}

	return nil, ""
}

func endOfDay(t time.Time) time.Time {
	tl := t.Local()
	return time.Date(tl.Year(), tl.Month(), tl.Day(), 23, 59, 59, 0, time.Local)
}
