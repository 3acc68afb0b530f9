// Package tasklist holds the ordered task collection and applies commands to it.
package tasklist

import (
	"strings"

	"github.com/CalistaIo/ip/internal/model"
)

// TaskList is an ordered sequence of tasks. A task's display position is its
// index plus one; deleting a task shifts every later task down by one.
type TaskList struct {
	tasks []model.Task
}

func New() *TaskList {
	return &TaskList{}
}

// FromTasks builds a list holding a copy of tasks.
func FromTasks(tasks []model.Task) *TaskList {
	return &TaskList{tasks: append([]model.Task(nil), tasks...)}
}

func (l *TaskList) Len() int {
	return len(l.tasks)
}

// Tasks returns a copy of the current sequence.
func (l *TaskList) Tasks() []model.Task {
	return append([]model.Task(nil), l.tasks...)
}

// Records serializes the list, one record per task.
func (l *TaskList) Records() []string {
	records := make([]string, len(l.tasks))
	for i, task := range l.tasks {
		records[i] = task.Encode()
	}
	return records
}

// Lines returns the display string of every task in order.
func (l *TaskList) Lines() []string {
	lines := make([]string, len(l.tasks))
	for i, task := range l.tasks {
		lines[i] = task.String()
	}
	return lines
}

// Add appends task and returns the new size.
func (l *TaskList) Add(task model.Task) int {
	l.tasks = append(l.tasks, task)
	return len(l.tasks)
}

// MarkDone marks the task at index i. The caller guarantees i is in range.
func (l *TaskList) MarkDone(i int) model.Task {
	l.tasks[i].MarkDone()
	return l.tasks[i]
}

// Delete removes every task whose index satisfies remove, keeping the
// relative order of both the kept and the removed tasks.
func (l *TaskList) Delete(remove func(i int) bool) []model.Task {
	var removed []model.Task
	kept := make([]model.Task, 0, len(l.tasks))
	for i, task := range l.tasks {
		if remove(i) {
			removed = append(removed, task)
			continue
		}
		kept = append(kept, task)
	}
	l.tasks = kept
	return removed
}

// DeleteAll empties the list and returns what it held.
func (l *TaskList) DeleteAll() []model.Task {
	removed := l.tasks
	l.tasks = nil
	return removed
}

// Find returns the display strings containing keyword, in list order.
func (l *TaskList) Find(keyword string) []string {
	var lines []string
	for _, task := range l.tasks {
		line := task.String()
		if strings.Contains(line, keyword) {
			lines = append(lines, line)
		}
	}
	return lines
}
