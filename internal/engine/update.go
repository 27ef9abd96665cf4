package engine

import (
	"context"
	"strings"

	"dailyquest/internal/storage"
)

// RenameTask changes a task's title. Completion state and history are untouched.
func (s *Service) RenameTask(ctx context.Context, id string, title string) (*storage.Task, error) {
	title, err := normalizeTitle(title)
	if err != nil {
		return nil, err
	}

	s.begin(ctx)
	defer s.mu.Unlock()

	i := s.findTask(id)
	if i < 0 {
		return nil, NotFoundError{Kind: "task", ID: id}
	}
	s.state.tasks[i].Title = title
	t := s.state.tasks[i]

	if err := s.persist(ctx, "rename task", storage.KeyTasks); err != nil {
		return nil, err
	}
	return &t, nil
}

// DeleteTask removes a task. Deleting an unknown id is not an error; the return
// value reports whether anything was removed. Ledger entries of the task stay.
func (s *Service) DeleteTask(ctx context.Context, id string) (bool, error) {
	s.begin(ctx)
	defer s.mu.Unlock()

	i := s.findTask(id)
	if i < 0 {
		return false, nil
	}
	s.state.tasks = append(s.state.tasks[:i], s.state.tasks[i+1:]...)
	s.state.stats.TasksCompletedToday = countCompleted(s.state.tasks)
	s.log.Debug("task deleted", "id", id)

	if err := s.persist(ctx, "delete task", storage.KeyTasks, storage.KeyStats); err != nil {
		return true, err
	}
	return true, nil
}

// ResetDaily clears the completed flag of every task and keeps all other fields.
// It never touches the ledger or the coin balance.
func (s *Service) ResetDaily(ctx context.Context) ([]storage.Task, error) {
	s.begin(ctx)
	defer s.mu.Unlock()

	s.resetDaily()
	s.state.stats.TasksCompletedToday = 0
	if err := s.persist(ctx, "reset tasks", storage.KeyTasks, storage.KeyStats); err != nil {
		return nil, err
	}
	return append([]storage.Task(nil), s.state.tasks...), nil
}

func (s *Service) resetDaily() {
	for i := range s.state.tasks {
		s.state.tasks[i].Completed = false
	}
}

// Tasks returns a copy of the task list in insertion order.
func (s *Service) Tasks(ctx context.Context) []storage.Task {
	s.begin(ctx)
	defer s.mu.Unlock()
	return append([]storage.Task(nil), s.state.tasks...)
}

// Task looks a task up by id.
func (s *Service) Task(ctx context.Context, id string) (*storage.Task, error) {
	s.begin(ctx)
	defer s.mu.Unlock()

	i := s.findTask(id)
	if i < 0 {
		return nil, NotFoundError{Kind: "task", ID: id}
	}
	t := s.state.tasks[i]
	return &t, nil
}

// FindTask resolves a task by exact id or by a unique id prefix, which is how the
// CLI lets users type short ids.
func (s *Service) FindTask(ctx context.Context, ref string) (*storage.Task, error) {
	s.begin(ctx)
	defer s.mu.Unlock()

	if i := s.findTask(ref); i >= 0 {
		t := s.state.tasks[i]
		return &t, nil
	}
	var match *storage.Task
	for i := range s.state.tasks {
		t := s.state.tasks[i]
		if ref != "" && strings.HasPrefix(t.ID, ref) {
			if match != nil {
				return nil, ValidationError{Field: "id", Reason: "prefix " + ref + " is ambiguous"}
			}
			match = &t
		}
	}
	if match == nil {
		return nil, NotFoundError{Kind: "task", ID: ref}
	}
	return match, nil
}
