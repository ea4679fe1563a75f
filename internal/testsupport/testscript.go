package testsupport

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/amonks/taskcli/task"
	"github.com/rogpeppe/go-internal/testscript"
)

var (
	buildOnce  sync.Once
	binaryPath string
	buildErr   error
)

// BuildTaskCLI builds the task-cli binary once and returns its path.
func BuildTaskCLI(t testing.TB) string {
	t.Helper()

	buildOnce.Do(func() {
		moduleRoot, err := findModuleRoot()
		if err != nil {
			buildErr = err
			return
		}

		binDir, err := os.MkdirTemp("", "task-cli-bin-")
		if err != nil {
			buildErr = err
			return
		}

		binaryPath = filepath.Join(binDir, "task-cli")
		cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/task-cli")
		cmd.Dir = moduleRoot
		output, err := cmd.CombinedOutput()
		if err != nil {
			buildErr = fmt.Errorf("build task-cli: %w: %s", err, strings.TrimSpace(string(output)))
		}
	})

	if buildErr != nil {
		t.Fatalf("%v", buildErr)
	}

	return binaryPath
}

// SetupScriptEnv configures common environment variables for testscript.
func SetupScriptEnv(t testing.TB, env *testscript.Env) error {
	t.Helper()

	env.Setenv("TASKCLI", BuildTaskCLI(t))

	homeDir := filepath.Join(env.WorkDir, "home")
	if err := EnsureHomeDirs(homeDir); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)
	env.Setenv("NO_COLOR", "1")
	return nil
}

// CmdEnvSet stores the trimmed contents of a file in an env var.
func CmdEnvSet(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("envset does not support negation")
	}
	if len(args) != 2 {
		ts.Fatalf("usage: envset VAR FILE")
	}

	value := strings.TrimSpace(ts.ReadFile(args[1]))
	ts.Setenv(args[0], value)
}

// CmdTaskID finds a task by name in a store file and stores its id in an env var.
func CmdTaskID(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("taskid does not support negation")
	}
	if len(args) != 3 {
		ts.Fatalf("usage: taskid FILE NAME VAR")
	}

	var store task.Store
	data := ts.ReadFile(args[0])
	if err := json.Unmarshal([]byte(data), &store); err != nil {
		ts.Fatalf("parse task file: %v", err)
	}

	for _, item := range store.Tasks {
		if item.Name == args[1] {
			ts.Setenv(args[2], strconv.Itoa(item.ID))
			return
		}
	}

	ts.Fatalf("task with name %q not found", args[1])
}

// CmdNextID asserts the next_id recorded in a store file.
func CmdNextID(ts *testscript.TestScript, neg bool, args []string) {
	if len(args) != 2 {
		ts.Fatalf("usage: nextid FILE N")
	}

	var store task.Store
	if err := json.Unmarshal([]byte(ts.ReadFile(args[0])), &store); err != nil {
		ts.Fatalf("parse task file: %v", err)
	}

	want, err := strconv.Atoi(args[1])
	if err != nil {
		ts.Fatalf("invalid next_id %q", args[1])
	}
	if (store.NextID == want) == neg {
		ts.Fatalf("next_id is %d", store.NextID)
	}
}

func findModuleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find module root (go.mod)")
		}
		dir = parent
	}
}
