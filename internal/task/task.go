package task

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/buildpin-labs/buildpin/internal/platform"
)

// CleanName is the name of the task that deletes the shared output root.
const CleanName = "clean"

// ErrUnknownTask is returned by Run for names that were never registered.
var ErrUnknownTask = errors.New("unknown task")

// Task is a named action.
type Task struct {
	Name        string
	Description string
	Action      func(ctx context.Context) error
}

// Registry maps task names to tasks.
type Registry struct {
	tasks map[string]Task
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{tasks: make(map[string]Task)}
}

// Register adds t. Names are unique.
func (r *Registry) Register(t Task) error {
	if t.Name == "" || t.Action == nil {
		return fmt.Errorf("task needs a name and an action")
	}
	if _, ok := r.tasks[t.Name]; ok {
		return fmt.Errorf("task %q already registered", t.Name)
	}
	r.tasks[t.Name] = t
	return nil
}

// Lookup returns the task registered under name.
func (r *Registry) Lookup(name string) (Task, bool) {
	t, ok := r.tasks[name]
	return t, ok
}

// Names returns registered task names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tasks))
	for name := range r.tasks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run executes the named task.
func (r *Registry) Run(ctx context.Context, name string) error {
	t, ok := r.tasks[name]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownTask, name)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := t.Action(ctx); err != nil {
		return fmt.Errorf("task %s: %w", name, err)
	}
	return nil
}

// NewClean returns the task that recursively deletes root. Running it when
// root does not exist succeeds.
func NewClean(root string) Task {
	return Task{
		Name:        CleanName,
		Description: "Deletes the shared build output directory " + root,
		Action: func(context.Context) error {
			return platform.RemoveTree(root)
		},
	}
}
