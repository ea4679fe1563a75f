// Package task implements a file-backed task tracker.
//
// A Store holds the next id counter and the ordered task collection. It is
// loaded from a JSON document by a FileStore, mutated by at most one command
// handler per invocation, and written back after every mutating command.
//
// The public API mirrors the CLI verbs:
//   - Add, Update, MarkInProgress, MarkDone, Delete for mutation
//   - List for querying
//   - Dispatch for verb lookup
package task

import (
	"fmt"
	"strings"
	"time"
)

// Status represents the state of a task.
type Status string

const (
	// StatusTodo indicates the task has not been started.
	StatusTodo Status = "todo"

	// StatusInProgress indicates the task is being worked on.
	StatusInProgress Status = "in-progress"

	// StatusDone indicates the task is finished.
	StatusDone Status = "done"
)

// ValidStatuses returns all valid status values.
func ValidStatuses() []Status {
	return []Status{StatusTodo, StatusInProgress, StatusDone}
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	for _, valid := range ValidStatuses() {
		if s == valid {
			return true
		}
	}
	return false
}

// Task is one tracked unit of work.
type Task struct {
	// ID is assigned from Store.NextID and never reused.
	ID int `json:"id"`

	// Name is set at creation and never changes.
	Name string `json:"name"`

	Description string `json:"description"`

	Status Status `json:"status"`

	CreatedAt Timestamp `json:"created_at"`

	// UpdatedAt is refreshed on every description or status change.
	UpdatedAt Timestamp `json:"updated_at"`
}

// Store is the persisted document: the id counter and the task collection.
type Store struct {
	NextID int    `json:"next_id"`
	Tasks  []Task `json:"tasks"`
}

// NewStore returns an empty store whose first task will get id 1.
func NewStore() *Store {
	return &Store{NextID: 1, Tasks: []Task{}}
}

// Clone returns a deep copy of the store.
func (s *Store) Clone() *Store {
	tasks := make([]Task, len(s.Tasks))
	copy(tasks, s.Tasks)
	return &Store{NextID: s.NextID, Tasks: tasks}
}

// NewTask builds a todo task from the store's next id and advances the counter.
func NewTask(store *Store, name, description string, now time.Time) (Task, error) {
	if err := ValidateName(name); err != nil {
		return Task{}, err
	}

	stamp := NewTimestamp(now)
	t := Task{
		ID:          store.NextID,
		Name:        name,
		Description: description,
		Status:      StatusTodo,
		CreatedAt:   stamp,
		UpdatedAt:   stamp,
	}
	store.NextID++
	return t, nil
}

// Validate checks the store invariants.
func (s *Store) Validate() error {
	if s.NextID < 1 {
		return fmt.Errorf("%w: next_id must be positive, got %d", ErrCorruptStore, s.NextID)
	}

	seen := make(map[int]bool, len(s.Tasks))
	for i, t := range s.Tasks {
		if t.ID < 1 {
			return fmt.Errorf("%w: task %d has non-positive id %d", ErrCorruptStore, i, t.ID)
		}
		if t.ID >= s.NextID {
			return fmt.Errorf("%w: task id %d is not below next_id %d", ErrCorruptStore, t.ID, s.NextID)
		}
		if seen[t.ID] {
			return fmt.Errorf("%w: duplicate task id %d", ErrCorruptStore, t.ID)
		}
		seen[t.ID] = true
		if strings.TrimSpace(t.Name) == "" {
			return fmt.Errorf("%w: task %d has an empty name", ErrCorruptStore, t.ID)
		}
		if !t.Status.IsValid() {
			return fmt.Errorf("%w: task %d: %w: %q", ErrCorruptStore, t.ID, ErrInvalidStatus, t.Status)
		}
	}
	return nil
}
