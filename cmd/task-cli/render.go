package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/amonks/taskcli/internal/ui"
	"github.com/amonks/taskcli/task"
)

type renderOptions struct {
	json    bool
	palette ui.Palette
}

// renderResult prints a command result. Failures go to stderr and are not
// returned as errors.
func renderResult(stdout, stderr io.Writer, result task.Result, opts renderOptions) error {
	if result.Err != nil {
		_, err := fmt.Fprintf(stderr, "error: %v\n", result.Err)
		return err
	}

	if result.Verb == task.VerbList {
		if opts.json {
			return encodeJSON(stdout, result.Tasks)
		}
		_, err := io.WriteString(stdout, formatTaskList(result.Tasks, opts.palette))
		return err
	}

	if result.Task == nil {
		return nil
	}
	if opts.json {
		return encodeJSON(stdout, result.Task)
	}
	_, err := fmt.Fprintln(stdout, confirmation(result.Verb, *result.Task, opts.palette))
	return err
}

func confirmation(verb string, t task.Task, palette ui.Palette) string {
	id := palette.ID(strconv.Itoa(t.ID))
	switch verb {
	case task.VerbAdd:
		return fmt.Sprintf("Created task %s: %s", id, t.Name)
	case task.VerbUpdate:
		return fmt.Sprintf("Updated task %s: %s", id, t.Name)
	case task.VerbMarkInProgress:
		return fmt.Sprintf("Started task %s: %s", id, t.Name)
	case task.VerbMarkDone:
		return fmt.Sprintf("Finished task %s: %s", id, t.Name)
	case task.VerbDelete:
		return fmt.Sprintf("Deleted task %s: %s", id, t.Name)
	default:
		return fmt.Sprintf("%s task %s: %s", verb, id, t.Name)
	}
}

func formatTaskList(tasks []task.Task, palette ui.Palette) string {
	if len(tasks) == 0 {
		return "No tasks found.\n"
	}

	table := ui.NewTable("ID", "STATUS", "NAME", "DESCRIPTION", "CREATED", "UPDATED")
	for _, t := range tasks {
		table.AddRow(
			palette.ID(strconv.Itoa(t.ID)),
			palette.Status(string(t.Status)),
			ui.Clip(t.Name),
			ui.Clip(t.Description),
			t.CreatedAt.String(),
			t.UpdatedAt.String(),
		)
	}
	return table.String()
}

func encodeJSON(w io.Writer, value any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}
