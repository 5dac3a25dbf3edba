// Package todo keeps a user's pending tasks in todo_list.txt and moves
// finished ones to completed_task.txt.
package todo

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/agentstation/mobileapp/pkg/constants"
	"github.com/agentstation/mobileapp/pkg/errors"
)

const (
	fieldSeparator = " | "
	deadlinePrefix = "Deadline: "
	statusPrefix   = "Status: "

	// StatusIncomplete is written for every newly added task.
	StatusIncomplete = "Incomplete"
)

// Task is one line of the to-do file.
type Task struct {
	Name     string `json:"name" yaml:"name"`
	Deadline string `json:"deadline" yaml:"deadline"`
	Status   string `json:"status" yaml:"status"`

	raw string
}

// String renders the task as it appears in the to-do file.
func (t Task) String() string {
	if t.raw != "" {
		return t.raw
	}
	return t.Name + fieldSeparator + deadlinePrefix + t.Deadline + fieldSeparator + statusPrefix + t.Status
}

// ParseTask splits a to-do line. Missing segments are left empty.
func ParseTask(line string) Task {
	line = strings.TrimSpace(line)
	parts := strings.Split(line, fieldSeparator)
	t := Task{Name: parts[0], raw: line}
	if len(parts) > 1 {
		t.Deadline = strings.TrimSpace(strings.TrimPrefix(parts[1], deadlinePrefix))
	}
	if len(parts) > 2 {
		t.Status = strings.TrimSpace(strings.TrimPrefix(parts[2], statusPrefix))
	}
	return t
}

// List is the pending task list of one user.
type List struct {
	todoPath      string
	completedPath string
	header        bool
	tasks         []Task
	now           func() time.Time
}

// Option configures a List.
type Option func(*List)

// WithClock replaces time.Now for completion timestamps.
func WithClock(now func() time.Time) Option {
	return func(l *List) {
		l.now = now
	}
}

// Open loads the to-do list stored in dir, creating the folder and both
// files when they are missing. The seed header written at registration is
// kept in the file but is not a task.
func Open(dir string, opts ...Option) (*List, error) {
	l := &List{
		todoPath:      filepath.Join(dir, constants.TodoFile),
		completedPath: filepath.Join(dir, constants.CompletedTodoFile),
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}

	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return nil, errors.WrapIO("create", dir, err)
	}
	for _, path := range []string{l.todoPath, l.completedPath} {
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, constants.FilePermissions)
		if err != nil {
			return nil, errors.WrapIO("create", path, err)
		}
		_ = f.Close()
	}

	if err := l.load(); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *List) load() error {
	f, err := os.Open(l.todoPath)
	if err != nil {
		return errors.WrapIO("open", l.todoPath, err)
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	first := true
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if first && line == constants.TodoHeader {
			l.header = true
			first = false
			continue
		}
		first = false
		if line == "" {
			continue
		}
		l.tasks = append(l.tasks, ParseTask(line))
	}
	if err := scanner.Err(); err != nil {
		return errors.WrapIO("read", l.todoPath, err)
	}
	return nil
}

// Tasks returns the pending tasks in file order.
func (l *List) Tasks() []Task {
	out := make([]Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

// Len returns the number of pending tasks.
func (l *List) Len() int {
	return len(l.tasks)
}

// Add appends an incomplete task to the to-do file.
func (l *List) Add(name, deadline string) (Task, error) {
	if err := validateField("task", name, true); err != nil {
		return Task{}, err
	}
	if err := validateField("deadline", deadline, false); err != nil {
		return Task{}, err
	}

	t := Task{Name: name, Deadline: deadline, Status: StatusIncomplete}
	if err := appendLine(l.todoPath, t.String()); err != nil {
		return Task{}, err
	}
	l.tasks = append(l.tasks, t)
	return t, nil
}

// Complete moves task number n (1-based) to the completed file and rewrites
// the to-do file without it.
func (l *List) Complete(n int) (Task, error) {
	if n < 1 || n > len(l.tasks) {
		return Task{}, errors.NewValidationError("task number", n,
			fmt.Sprintf("must be between 1 and %d", len(l.tasks)))
	}
	t := l.tasks[n-1]

	done := fmt.Sprintf("%s%s%s%s%sCompleted on: %s",
		t.Name, fieldSeparator, deadlinePrefix, t.Deadline, fieldSeparator,
		l.now().Format(constants.TimeFormatLog))
	if err := appendLine(l.completedPath, done); err != nil {
		return Task{}, err
	}

	remaining := make([]Task, 0, len(l.tasks)-1)
	remaining = append(remaining, l.tasks[:n-1]...)
	remaining = append(remaining, l.tasks[n:]...)
	if err := l.rewrite(remaining); err != nil {
		return Task{}, err
	}
	l.tasks = remaining
	return t, nil
}

func (l *List) rewrite(tasks []Task) error {
	f, err := os.OpenFile(l.todoPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, constants.FilePermissions)
	if err != nil {
		return errors.WrapIO("open", l.todoPath, err)
	}
	w := bufio.NewWriter(f)
	if l.header {
		_, _ = fmt.Fprintln(w, constants.TodoHeader)
	}
	for _, t := range tasks {
		_, _ = fmt.Fprintln(w, t.String())
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return errors.WrapIO("write", l.todoPath, err)
	}
	if err := f.Close(); err != nil {
		return errors.WrapIO("close", l.todoPath, err)
	}
	return nil
}

func validateField(field, value string, required bool) error {
	if required && strings.TrimSpace(value) == "" {
		return errors.NewValidationError(field, value, "must not be empty")
	}
	if strings.ContainsAny(value, "\n\r") || strings.Contains(value, fieldSeparator) {
		return errors.NewValidationError(field, value, `must not contain newlines or " | "`)
	}
	return nil
}

func appendLine(path, line string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, constants.FilePermissions)
	if err != nil {
		return errors.WrapIO("append", path, err)
	}
	if _, err := fmt.Fprintln(f, line); err != nil {
		_ = f.Close()
		return errors.WrapIO("write", path, err)
	}
	if err := f.Close(); err != nil {
		return errors.WrapIO("close", path, err)
	}
	return nil
}
