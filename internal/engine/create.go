package engine

import (
	"context"

	"dailyquest/internal/storage"
)

// AddTask appends a new, incomplete task to the end of the list.
func (s *Service) AddTask(ctx context.Context, title string) (*storage.Task, error) {
	title, err := normalizeTitle(title)
	if err != nil {
		return nil, err
	}

	s.begin(ctx)
	defer s.mu.Unlock()

	t := storage.Task{
		ID:        s.newID(),
		Title:     title,
		Completed: false,
		CreatedAt: s.clock(),
	}
	s.state.tasks = append(s.state.tasks, t)
	s.log.Debug("task added", "id", t.ID, "title", t.Title)

	if err := s.persist(ctx, "add task", storage.KeyTasks); err != nil {
		return nil, err
	}
	return &t, nil
}
