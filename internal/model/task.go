package model

import (
	"fmt"
	"strings"
)

// Kind is the closed set of task variants.
type Kind int

const (
	KindToDo Kind = iota
	KindDeadline
	KindEvent
)

const (
	markDone    = "✓"
	markPending = "✗"

	fieldSep = " | "
)

// Code returns the single-letter tag used in records and display.
func (k Kind) Code() string {
	switch k {
	case KindToDo:
		return "T"
	case KindDeadline:
		return "D"
	case KindEvent:
		return "E"
	default:
		return "?"
	}
}

func kindFromCode(code string) (Kind, bool) {
	switch code {
	case "T":
		return KindToDo, true
	case "D":
		return KindDeadline, true
	case "E":
		return KindEvent, true
	default:
		return 0, false
	}
}

// Task represents a single item in the list. When holds the normalized
// date/time for deadlines and events and is empty for todos.
type Task struct {
	Kind        Kind
	Description string
	When        string
	Done        bool
}

func NewToDo(description string) Task {
	return Task{Kind: KindToDo, Description: description}
}

func NewDeadline(description, by string) Task {
	return Task{Kind: KindDeadline, Description: description, When: by}
}

func NewEvent(description, at string) Task {
	return Task{Kind: KindEvent, Description: description, When: at}
}

func (t Task) IsDone() bool {
	return t.Done
}

// MarkDone sets the done flag. There is no way back.
func (t *Task) MarkDone() {
	t.Done = true
}

// String renders the task the way it is shown to the user.
func (t Task) String() string {
	status := markPending
	if t.Done {
		status = markDone
	}
	prefix := fmt.Sprintf("[%s][%s] %s", t.Kind.Code(), status, t.Description)
	switch t.Kind {
	case KindDeadline:
		return fmt.Sprintf("%s (by: %s)", prefix, t.When)
	case KindEvent:
		return fmt.Sprintf("%s (at: %s)", prefix, t.When)
	default:
		return prefix
	}
}

// Encode serializes the task into its one-line record form.
func (t Task) Encode() string {
	done := "0"
	if t.Done {
		done = "1"
	}
	fields := []string{t.Kind.Code(), done, t.Description}
	if t.Kind != KindToDo {
		fields = append(fields, t.When)
	}
	return strings.Join(fields, fieldSep)
}

// FitsRecord reports whether description comes back unchanged from Encode
// and Decode. It must not contain the field separator or end with " |".
func FitsRecord(description string) bool {
	return !strings.Contains(description+" ", fieldSep)
}

// Decode parses a record produced by Encode.
func Decode(record string) (Task, error) {
	fields := strings.Split(record, fieldSep)
	if len(fields) < 3 {
		return Task{}, fmt.Errorf("decode task %q: too few fields", record)
	}

	kind, ok := kindFromCode(fields[0])
	if !ok {
		return Task{}, fmt.Errorf("decode task %q: unknown kind %q", record, fields[0])
	}

	want := 4
	if kind == KindToDo {
		want = 3
	}
	if len(fields) != want {
		return Task{}, fmt.Errorf("decode task %q: expected %d fields, got %d", record, want, len(fields))
	}

	var done bool
	switch fields[1] {
	case "0":
	case "1":
		done = true
	default:
		return Task{}, fmt.Errorf("decode task %q: invalid done flag %q", record, fields[1])
	}

	task := Task{Kind: kind, Description: fields[2], Done: done}
	if kind != KindToDo {
		task.When = fields[3]
	}
	return task, nil
}
