package task

import "errors"

// Kind classifies a Result.
type Kind int

const (
	// KindOK means the command succeeded.
	KindOK Kind = iota

	// KindUsage means an argument was missing or malformed.
	KindUsage

	// KindNotFound means no task matched the given id.
	KindNotFound
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindUsage:
		return "usage"
	case KindNotFound:
		return "not-found"
	default:
		return "unknown"
	}
}

// Result is the outcome of a single command.
type Result struct {
	// Verb is the command that produced the result.
	Verb string

	// Task is a copy of the task the command created or changed.
	Task *Task

	// Tasks holds list output in collection order.
	Tasks []Task

	// Mutated is true when the store changed and must be saved.
	Mutated bool

	// Err wraps ErrUsage or ErrTaskNotFound when the command failed.
	Err error
}

// Kind classifies the result by its error.
func (r Result) Kind() Kind {
	switch {
	case r.Err == nil:
		return KindOK
	case errors.Is(r.Err, ErrTaskNotFound):
		return KindNotFound
	default:
		return KindUsage
	}
}

func succeeded(verb string, t Task) Result {
	return Result{Verb: verb, Task: &t, Mutated: true}
}

func failed(verb string, err error) Result {
	return Result{Verb: verb, Err: err}
}
