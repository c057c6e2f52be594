package extract

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"time"
)

// Message is one entry of a conversation export. Plain-text exports carry
// one message per line, JSON exports an array of objects.
type Message struct {
	ID     string    `json:"id"`
	Sender string    `json:"sender"`
	SentAt time.Time `json:"sent_at"`
	Text   string    `json:"text"`
}

// jsonMessage is the wire form of a JSON export entry; sent_at is RFC3339.
type jsonMessage struct {
	ID     string `json:"id"`
	Sender string `json:"sender"`
	SentAt string `json:"sent_at"`
	Text   string `json:"text"`
}

// Text export lines look like "[2025-03-10 14:22] Sam: can you ...".
var textLineRegex = regexp.MustCompile(`^\[([^\]]+)\]\s+([^:]+):\s*(.+)$`)

func ParseMessageFile(filePath string) ([]Message, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ParseMessages(file)
}

// ParseMessages reads a conversation export. JSON arrays are tried first;
// anything that does not decode as one is treated as a plain-text export.
func ParseMessages(r io.Reader) ([]Message, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read export: %w", err)
	}

	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") && strings.Contains(trimmed, "{") {
		var entries []jsonMessage
		if err := json.Unmarshal([]byte(trimmed), &entries); err == nil {
			messages := make([]Message, 0, len(entries))
			for i, e := range entries {
				msg := Message{ID: e.ID, Sender: e.Sender, Text: e.Text}
				if msg.ID == "" {
					msg.ID = fmt.Sprintf("msg-%d", i+1)
				}
				if e.SentAt != "" {
					sentAt, err := time.Parse(time.RFC3339, e.SentAt)
					if err != nil {
						return nil, fmt.Errorf("invalid sent_at %q: %w", e.SentAt, err)
					}
					msg.SentAt = sentAt
				}
				messages = append(messages, msg)
			}
			return messages, nil
		}
	}

	return parseTextExport(trimmed)
}

func parseTextExport(content string) ([]Message, error) {
	scanner := bufio.NewScanner(strings.NewReader(content))
	var messages []Message
	lineNo := 0

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		lineNo++
		if line == "" {
			continue
		}

		msg := Message{ID: fmt.Sprintf("line-%d", lineNo)}
		if matches := textLineRegex.FindStringSubmatch(line); len(matches) > 0 {
			if sentAt, err := time.ParseInLocation("2006-01-02 15:04", matches[1], time.Local); err == nil {
				msg.SentAt = sentAt
			}
			msg.Sender = strings.TrimSpace(matches[2])
			msg.Text = strings.TrimSpace(matches[3])
		} else {
			msg.Text = line
		}
		messages = append(messages, msg)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return messages, nil
}
