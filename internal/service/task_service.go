package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/CalistaIo/ip/internal/model"
	"github.com/CalistaIo/ip/internal/parser"
	"github.com/CalistaIo/ip/internal/tasklist"
	"github.com/CalistaIo/ip/internal/ui"
)

// Store persists the whole task list.
type Store interface {
	Load(ctx context.Context) ([]model.Task, error)
	Save(ctx context.Context, tasks []model.Task) error
}

// TaskService runs input lines through the parser and engine and persists
// the list after every change.
type TaskService struct {
	store  Store
	engine *tasklist.Engine
	mu     sync.Mutex
}

// NewTaskService hydrates the list from store.
func NewTaskService(ctx context.Context, store Store) (*TaskService, error) {
	tasks, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load task list: %w", err)
	}
	log.Printf("[info] loaded %d tasks", len(tasks))
	return &TaskService{
		store:  store,
		engine: tasklist.NewEngine(tasklist.FromTasks(tasks)),
	}, nil
}

// Execute interprets one input line. A parse error is returned as a
// *parser.Error and leaves the list untouched.
func (s *TaskService) Execute(ctx context.Context, line string) (tasklist.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cmd, err := parser.Parse(line, s.engine.List().Len())
	if err != nil {
		return tasklist.Outcome{}, err
	}

	out := s.engine.Apply(cmd)
	if !out.Mutated {
		return out, nil
	}
	if err := s.store.Save(ctx, s.engine.List().Tasks()); err != nil {
		return out, fmt.Errorf("save task list: %w", err)
	}
	return out, nil
}

// Respond executes line and renders the reply. A failed save is logged and
// reported after the outcome, since the change is already applied in memory.
func (s *TaskService) Respond(ctx context.Context, line string) string {
	out, err := s.Execute(ctx, line)
	if err == nil {
		return ui.Render(out)
	}
	var perr *parser.Error
	if errors.As(err, &perr) {
		return ui.Error(perr)
	}
	log.Printf("execute %q: %v", line, err)
	return ui.Render(out) + "\n" + ui.Error(err)
}

// Tasks returns a snapshot of the list.
func (s *TaskService) Tasks() []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.List().Tasks()
}

// Records returns the serialized form of the list.
func (s *TaskService) Records() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.List().Records()
}
