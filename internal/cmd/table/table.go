// Package table converts domain values into rows for the table formatter.
package table

import (
	"strconv"

	"github.com/agentstation/mobileapp/pkg/movies"
	"github.com/agentstation/mobileapp/pkg/todo"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// MoviesToTableData converts catalog entries to table format.
func MoviesToTableData(entries []movies.Entry) Data {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			strconv.Itoa(e.ID),
			e.Name,
			e.Genre,
			strconv.Itoa(e.Year),
		})
	}
	return Data{
		Headers:         []string{"ID", "Name", "Genre", "Year"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignRight, AlignLeft, AlignLeft, AlignRight},
	}
}

// TasksToTableData converts pending tasks to table format, numbered from 1.
func TasksToTableData(tasks []todo.Task) Data {
	rows := make([][]string, 0, len(tasks))
	for i, t := range tasks {
		deadline := t.Deadline
		if deadline == "" {
			deadline = "-"
		}
		rows = append(rows, []string{strconv.Itoa(i + 1), t.Name, deadline, t.Status})
	}
	return Data{
		Headers:         []string{"#", "Task", "Deadline", "Status"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignRight, AlignLeft, AlignLeft, AlignLeft},
	}
}

// DiagnosticsToTableData lists the lines skipped while loading a catalog.
func DiagnosticsToTableData(diags []movies.Diagnostic) Data {
	rows := make([][]string, 0, len(diags))
	for _, d := range diags {
		line := "-"
		if d.Line > 0 {
			line = strconv.Itoa(d.Line)
		}
		rows = append(rows, []string{d.Kind.String(), line, d.String()})
	}
	return Data{
		Headers: []string{"Kind", "Line", "Message"},
		Rows:    rows,
	}
}
