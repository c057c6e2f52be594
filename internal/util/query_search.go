package util

import (
	"strings"
	"time"

	"github.com/okmtz/tsk-cli/internal/model"
	log "github.com/sirupsen/logrus"
)

// FullTextSearch keeps the tasks whose title or notes contain the query,
// case-insensitively.
func FullTextSearch(tasks []model.Task, query string) []model.Task {
	if query == "" {
		return tasks
	}

	query = strings.ToLower(query)
	var filtered []model.Task

	for _, task := range tasks {
		if strings.Contains(strings.ToLower(task.Title), query) ||
			strings.Contains(strings.ToLower(task.Notes), query) {
			filtered = append(filtered, task)
		}
	}

	log.Debugf("Found %d matching tasks", len(filtered))
	return filtered
}

// IsWithinDateRange checks a timestamp against optional from/to bounds given
// as 2006-01-02 strings. Empty bounds do not filter.
func IsWithinDateRange(t time.Time, fromDate, toDate string) bool {
	if fromDate == "" && toDate == "" {
		return true
	}

	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)

	if fromDate != "" {
		fromTime, err := time.Parse("2006-01-02", fromDate)
		if err == nil && day.Before(fromTime) {
			return false
		}
	}

	if toDate != "" {
		toTime, err := time.Parse("2006-01-02", toDate)
		if err == nil && day.After(toTime) {
			return false
		}
	}

	return true
}
