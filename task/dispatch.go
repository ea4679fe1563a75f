package task

import (
	"fmt"
	"strings"
	"time"
)

// Verbs recognized by Dispatch.
const (
	VerbAdd            = "add"
	VerbUpdate         = "update"
	VerbMarkInProgress = "mark-in-progress"
	VerbMarkDone       = "mark-done"
	VerbDelete         = "delete"
	VerbList           = "list"
)

type verbEntry struct {
	name    string
	handler Handler
}

var verbTable = []verbEntry{
	{VerbAdd, Add},
	{VerbUpdate, Update},
	{VerbMarkInProgress, MarkInProgress},
	{VerbMarkDone, MarkDone},
	{VerbDelete, Delete},
	{VerbList, List},
}

// Verbs returns the recognized verbs in table order.
func Verbs() []string {
	names := make([]string, len(verbTable))
	for i, entry := range verbTable {
		names[i] = entry.name
	}
	return names
}

// HandlerFor returns the handler registered for verb.
func HandlerFor(verb string) (Handler, bool) {
	for _, entry := range verbTable {
		if entry.name == verb {
			return entry.handler, true
		}
	}
	return nil, false
}

// Dispatch runs the handler named by args[0].
func Dispatch(store *Store, args []string, now time.Time) Result {
	if len(args) == 0 {
		return failed("", fmt.Errorf("%w: %w (expected one of %s)", ErrUsage, ErrNoVerb, strings.Join(Verbs(), ", ")))
	}

	handler, ok := HandlerFor(args[0])
	if !ok {
		return failed(args[0], fmt.Errorf("%w: %w %q (expected one of %s)", ErrUsage, ErrUnknownVerb, args[0], strings.Join(Verbs(), ", ")))
	}
	return handler(store, args, now)
}
