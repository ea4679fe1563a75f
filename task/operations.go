package task

import (
	"fmt"
	"time"
)

// Handler implements one verb. args[0] is the verb itself.
// Handlers only touch the store when they succeed.
type Handler func(store *Store, args []string, now time.Time) Result

// Add creates a task from args[1] (name) and optional args[2] (description).
func Add(store *Store, args []string, now time.Time) Result {
	verb := verbOf(args, VerbAdd)
	if len(args) < 2 {
		return failed(verb, usageError("%s requires a task name", verb))
	}

	description := ""
	if len(args) > 2 {
		description = args[2]
	}

	created, err := NewTask(store, args[1], description, now)
	if err != nil {
		return failed(verb, fmt.Errorf("%w: %w", ErrUsage, err))
	}
	store.Tasks = append(store.Tasks, created)
	return succeeded(verb, created)
}

// Update replaces the description of task args[1] with args[2].
func Update(store *Store, args []string, now time.Time) Result {
	verb := verbOf(args, VerbUpdate)
	if len(args) < 2 {
		return failed(verb, usageError("%s requires a task id and a description", verb))
	}
	target, err := lookup(store, args[1])
	if err != nil {
		return failed(verb, err)
	}
	if len(args) < 3 {
		return failed(verb, usageError("%s requires a description", verb))
	}

	target.Description = args[2]
	target.UpdatedAt = NewTimestamp(now)
	return succeeded(verb, *target)
}

// MarkInProgress moves task args[1] to in-progress.
func MarkInProgress(store *Store, args []string, now time.Time) Result {
	return setStatus(store, args, now, VerbMarkInProgress, StatusInProgress)
}

// MarkDone moves task args[1] to done.
func MarkDone(store *Store, args []string, now time.Time) Result {
	return setStatus(store, args, now, VerbMarkDone, StatusDone)
}

func setStatus(store *Store, args []string, now time.Time, defaultVerb string, status Status) Result {
	verb := verbOf(args, defaultVerb)
	if len(args) < 2 {
		return failed(verb, usageError("%s requires a task id", verb))
	}
	target, err := lookup(store, args[1])
	if err != nil {
		return failed(verb, err)
	}

	target.Status = status
	target.UpdatedAt = NewTimestamp(now)
	return succeeded(verb, *target)
}

// Delete removes task args[1]. NextID is left unchanged.
func Delete(store *Store, args []string, now time.Time) Result {
	verb := verbOf(args, VerbDelete)
	if len(args) < 2 {
		return failed(verb, usageError("%s requires a task id", verb))
	}
	index, ok := indexOf(store, args[1])
	if !ok {
		return failed(verb, notFound(args[1]))
	}

	removed := store.Tasks[index]
	store.Tasks = append(store.Tasks[:index], store.Tasks[index+1:]...)
	return succeeded(verb, removed)
}

// List returns the tasks whose status matches the optional filter args[1],
// or every task when no filter is given. It never mutates the store.
func List(store *Store, args []string, _ time.Time) Result {
	verb := verbOf(args, VerbList)
	if len(args) < 2 {
		return Result{Verb: verb, Tasks: append([]Task{}, store.Tasks...)}
	}

	status, err := ParseStatus(args[1])
	if err != nil {
		return Result{Verb: verb, Tasks: []Task{}, Err: fmt.Errorf("%w: %w", ErrUsage, err)}
	}

	matches := make([]Task, 0, len(store.Tasks))
	for _, t := range store.Tasks {
		if t.Status == status {
			matches = append(matches, t)
		}
	}
	return Result{Verb: verb, Tasks: matches}
}

func lookup(store *Store, identifier string) (*Task, error) {
	target, ok := FindByID(store, identifier)
	if !ok {
		return nil, notFound(identifier)
	}
	return target, nil
}

func notFound(identifier string) error {
	return fmt.Errorf("%w: %q", ErrTaskNotFound, identifier)
}

func verbOf(args []string, fallback string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return fallback
}
