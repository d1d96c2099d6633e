// Package memory implements service.Service with process-lifetime storage.
package memory

import (
	"context"
	"sync"

	"todoapp/internal/service"
)

// Store is an in-memory task store. Identifiers come from a monotonically
// increasing counter and are never reused, even after deletion.
type Store struct {
	mu     sync.RWMutex
	tasks  map[int]service.Task
	order  []int // ids in creation order
	nextID int
}

// New creates an empty store. The first task gets identifier 1.
func New() *Store {
	return &Store{
		tasks:  make(map[int]service.Task),
		nextID: 1,
	}
}

// CreateTask implements service.Service.
func (s *Store) CreateTask(ctx context.Context, title, description string) (service.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task := service.Task{
		ID:          s.nextID,
		Title:       title,
		Description: description,
	}
	s.tasks[task.ID] = task
	s.order = append(s.order, task.ID)
	s.nextID++
	return task, nil
}

// ListTasks implements service.Service.
func (s *Store) ListTasks(ctx context.Context) ([]service.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]service.Task, 0, len(s.order))
	for _, id := range s.order {
		tasks = append(tasks, s.tasks[id])
	}
	return tasks, nil
}

// GetTask implements service.Service.
func (s *Store) GetTask(ctx context.Context, id int) (service.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.tasks[id]
	if !ok {
		return service.Task{}, service.ErrNotFound
	}
	return task, nil
}

// UpdateTask implements service.Service.
func (s *Store) UpdateTask(ctx context.Context, id int, title, description *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok {
		return service.ErrNotFound
	}
	if title != nil {
		task.Title = *title
	}
	if description != nil {
		task.Description = *description
	}
	s.tasks[id] = task
	return nil
}

// DeleteTask implements service.Service.
func (s *Store) DeleteTask(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return service.ErrNotFound
	}
	delete(s.tasks, id)
	for i, ordered := range s.order {
		if ordered == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// ToggleTask implements service.Service.
func (s *Store) ToggleTask(ctx context.Context, id int) (service.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok {
		return service.Task{}, service.ErrNotFound
	}
	task.Completed = !task.Completed
	s.tasks[id] = task
	return task, nil
}
