package model

import (
	"fmt"
	"time"
)

// TaskRecord is the stored row for a task. Position is the zero-based index in
// the list and is rewritten on every save.
type TaskRecord struct {
	ID          uint   `gorm:"primaryKey"`
	Position    int    `gorm:"index"`
	Kind        string `gorm:"size:1"`
	Done        bool   `gorm:"default:false"`
	Description string
	When        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTaskRecord builds the row for task at position.
func NewTaskRecord(position int, task Task) TaskRecord {
	return TaskRecord{
		Position:    position,
		Kind:        task.Kind.Code(),
		Done:        task.Done,
		Description: task.Description,
		When:        task.When,
	}
}

// Task converts the row back into a task.
func (r TaskRecord) Task() (Task, error) {
	kind, ok := kindFromCode(r.Kind)
	if !ok {
		return Task{}, fmt.Errorf("task record %d: unknown kind %q", r.ID, r.Kind)
	}
	task := Task{Kind: kind, Description: r.Description, Done: r.Done}
	if kind != KindToDo {
		task.When = r.When
	}
	return task, nil
}
