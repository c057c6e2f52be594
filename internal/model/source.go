package model

import (
	"fmt"
	"strings"
)

type SourceType string

const (
	SourceManual    SourceType = "manual"
	SourceMessages  SourceType = "messages"
	SourceEmail     SourceType = "email"
	SourceClipboard SourceType = "clipboard"
)

// Source records where a task came from. Extracted tasks keep the identifier
// of the message (or sender) they were derived from.
type Source struct {
	Type       SourceType `json:"type"` // manual, messages, email, clipboard
	Identifier string     `json:"identifier,omitempty"`
}

// ManualSource is the source of tasks the user typed in directly.
func ManualSource() Source {
	return Source{Type: SourceManual}
}

func ParseSourceType(s string) (SourceType, error) {
	switch SourceType(strings.ToLower(s)) {
	case SourceManual, SourceMessages, SourceEmail, SourceClipboard:
		return SourceType(strings.ToLower(s)), nil
	}
	return "", fmt.Errorf("unknown source type %q (manual, messages, email, clipboard)", s)
}
