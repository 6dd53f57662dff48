// Package status derives the workflow status an issue takes when it is
// dropped on a column.
package status

import (
	"strings"

	"kanbanflow/internal/model"
)

// Rule maps a keyword found in a column name to a status.
type Rule struct {
	Keyword string
	Status  model.Status
}

// Rules are checked in order; the first keyword contained in the column
// name wins.
var Rules = []Rule{
	{Keyword: "progress", Status: model.StatusInProgress},
	{Keyword: "done", Status: model.StatusDone},
	{Keyword: "review", Status: model.StatusReview},
}

// Resolve returns the status for a column display name. Matching is a
// case-insensitive substring test; names matching no rule resolve to TO_DO.
func Resolve(columnName string) model.Status {
	name := strings.ToLower(columnName)
	for _, r := range Rules {
		if strings.Contains(name, r.Keyword) {
			return r.Status
		}
	}
	return model.StatusToDo
}

// ForColumn prefers the column's explicit status mapping and falls back to
// Resolve on its name.
func ForColumn(c model.Column) model.Status {
	if c.Status != nil && *c.Status != "" {
		return *c.Status
	}
	return Resolve(c.Name)
}
