package task

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUsage is wrapped by every missing or malformed argument error.
	ErrUsage = errors.New("usage")

	// ErrTaskNotFound is returned when no task matches the given id.
	ErrTaskNotFound = errors.New("task not found")

	// ErrEmptyName is returned when a task name is missing or blank.
	ErrEmptyName = errors.New("task name cannot be empty")

	// ErrInvalidStatus is returned for a status outside ValidStatuses.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrUnknownVerb is returned when the first argument names no command.
	ErrUnknownVerb = errors.New("unknown command")

	// ErrNoVerb is returned when no command is given at all.
	ErrNoVerb = errors.New("no command given")

	// ErrCorruptStore is returned when the backing document cannot be used.
	ErrCorruptStore = errors.New("corrupt task store")
)

// ValidateName checks that a task name is present.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	return nil
}

// ParseStatus converts a filter argument into a Status.
func ParseStatus(value string) (Status, error) {
	status := Status(value)
	if !status.IsValid() {
		return "", fmt.Errorf("%w: %q (expected one of %s)", ErrInvalidStatus, value, statusList())
	}
	return status, nil
}

func statusList() string {
	statuses := ValidStatuses()
	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

func usageError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUsage, fmt.Sprintf(format, args...))
}
