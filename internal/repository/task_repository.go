package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/CalistaIo/ip/internal/model"
)

// TaskRepository stores the task list in SQLite, one row per task.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Load returns the stored tasks in list order.
func (r *TaskRepository) Load(ctx context.Context) ([]model.Task, error) {
	var rows []model.TaskRecord
	if err := r.db.WithContext(ctx).Order("position ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}

	tasks := make([]model.Task, 0, len(rows))
	for _, row := range rows {
		task, err := row.Task()
		if err != nil {
			return nil, fmt.Errorf("load tasks: %w", err)
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// Save replaces the stored list with tasks in a single transaction.
func (r *TaskRepository) Save(ctx context.Context, tasks []model.Task) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.TaskRecord{}).Error; err != nil {
			return err
		}
		if len(tasks) == 0 {
			return nil
		}
		rows := make([]model.TaskRecord, len(tasks))
		for i, task := range tasks {
			rows[i] = model.NewTaskRecord(i, task)
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	return nil
}
