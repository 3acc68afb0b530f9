package service

import (
	"github.com/CalistaIo/ip/internal/model"
	"github.com/CalistaIo/ip/internal/ui"
)

// ReminderService builds summaries of dated tasks that are not done yet.
type ReminderService struct {
	tasks *TaskService
}

func NewReminderService(tasks *TaskService) *ReminderService {
	return &ReminderService{tasks: tasks}
}

// Pending returns the undone deadlines and events with their zero-based
// positions in the list.
func (s *ReminderService) Pending() ([]int, []model.Task) {
	var (
		positions []int
		pending   []model.Task
	)
	for i, task := range s.tasks.Tasks() {
		if task.Done || task.Kind == model.KindToDo {
			continue
		}
		positions = append(positions, i)
		pending = append(pending, task)
	}
	return positions, pending
}

// Summary renders the pending dated tasks.
func (s *ReminderService) Summary() string {
	return ui.Reminder(s.Pending())
}
