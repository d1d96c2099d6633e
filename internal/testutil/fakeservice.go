// Package testutil provides testing utilities.
package testutil

import (
	"context"

	"todoapp/internal/backend/memory"
	"todoapp/internal/service"
)

// FakeService wraps the in-memory store with per-operation error injection
// for exercising backend-failure paths.
type FakeService struct {
	*memory.Store

	CreateTaskErr error
	ListTasksErr  error
	GetTaskErr    error
	UpdateTaskErr error
	DeleteTaskErr error
	ToggleTaskErr error
}

// NewFakeService creates an empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{Store: memory.New()}
}

// CreateTask implements service.Service.
func (f *FakeService) CreateTask(ctx context.Context, title, description string) (service.Task, error) {
	if f.CreateTaskErr != nil {
		return service.Task{}, f.CreateTaskErr
	}
	return f.Store.CreateTask(ctx, title, description)
}

// ListTasks implements service.Service.
func (f *FakeService) ListTasks(ctx context.Context) ([]service.Task, error) {
	if f.ListTasksErr != nil {
		return nil, f.ListTasksErr
	}
	return f.Store.ListTasks(ctx)
}

// GetTask implements service.Service.
func (f *FakeService) GetTask(ctx context.Context, id int) (service.Task, error) {
	if f.GetTaskErr != nil {
		return service.Task{}, f.GetTaskErr
	}
	return f.Store.GetTask(ctx, id)
}

// UpdateTask implements service.Service.
func (f *FakeService) UpdateTask(ctx context.Context, id int, title, description *string) error {
	if f.UpdateTaskErr != nil {
		return f.UpdateTaskErr
	}
	return f.Store.UpdateTask(ctx, id, title, description)
}

// DeleteTask implements service.Service.
func (f *FakeService) DeleteTask(ctx context.Context, id int) error {
	if f.DeleteTaskErr != nil {
		return f.DeleteTaskErr
	}
	return f.Store.DeleteTask(ctx, id)
}

// ToggleTask implements service.Service.
func (f *FakeService) ToggleTask(ctx context.Context, id int) (service.Task, error) {
	if f.ToggleTaskErr != nil {
		return service.Task{}, f.ToggleTaskErr
	}
	return f.Store.ToggleTask(ctx, id)
}
