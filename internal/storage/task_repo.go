package storage

import (
	"context"
	"fmt"
)

type TaskRepo struct {
	store Store
}

func NewTaskRepo(store Store) *TaskRepo {
	return &TaskRepo{store: store}
}

// Load returns the stored task list. A missing key yields an empty list; on a read
// or decode failure the empty list is returned together with the error.
func (r *TaskRepo) Load(ctx context.Context) ([]Task, error) {
	var tasks []Task
	if _, err := loadJSON(ctx, r.store, KeyTasks, &tasks); err != nil {
		return []Task{}, fmt.Errorf("task repo: %w", err)
	}
	if tasks == nil {
		tasks = []Task{}
	}
	return tasks, nil
}

func (r *TaskRepo) Stage(b *Batch, tasks []Task) {
	if tasks == nil {
		tasks = []Task{}
	}
	b.Put(KeyTasks, tasks)
}
