package main

import (
	"fmt"

	"github.com/amonks/taskcli/internal/config"
	"github.com/amonks/taskcli/internal/logging"
	"github.com/amonks/taskcli/internal/paths"
	"github.com/amonks/taskcli/internal/ui"
	"github.com/amonks/taskcli/task"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "task-cli <command> [args]",
	Short: "Track tasks in a local JSON file",
	Long: `Track tasks in a local JSON file.

Each invocation loads the task file, applies one command, and writes the
file back when the command changed it. Arguments after a command that start
with a dash are passed through unless they name a global flag; use -- to
pass a global flag name literally.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVerb(cmd, rootFlagsFrom(cmd), args)
	},
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
}

var (
	rootFile     string
	rootJSON     bool
	rootLogLevel string
)

type verbCommand struct {
	verb  string
	use   string
	short string
}

var verbCommands = []verbCommand{
	{task.VerbAdd, "add <name> [description]", "Add a task"},
	{task.VerbUpdate, "update <id> <description>", "Replace a task's description"},
	{task.VerbMarkInProgress, "mark-in-progress <id>", "Mark a task as in progress"},
	{task.VerbMarkDone, "mark-done <id>", "Mark a task as done"},
	{task.VerbDelete, "delete <id>", "Delete a task"},
	{task.VerbList, "list [todo|in-progress|done]", "List tasks, optionally by status"},
}

func init() {
	for _, vc := range verbCommands {
		rootCmd.AddCommand(newVerbCmd(vc))
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rootFile, "file", "", "Task file (default tasks.json, or [store] file in task-cli.toml)")
	flags.BoolVar(&rootJSON, "json", false, "Output as JSON")
	flags.StringVar(&rootLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.SetGlobalNormalizationFunc(flagAliasNormalizer(globalFlagAliases))
	rootCmd.SetFlagErrorFunc(reportFlagError)
}

func newVerbCmd(vc verbCommand) *cobra.Command {
	return &cobra.Command{
		Use:   vc.use,
		Short: vc.short,
		// Handlers see every argument, including ones that look like
		// shorthand flags ("-1", "-5 degrees"). Global flags are pulled
		// out by parseVerbArgs.
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags, positional, err := parseVerbArgs(args)
			if err != nil {
				return reportFlagError(cmd, err)
			}
			if flags.help {
				return cmd.Help()
			}
			return runVerb(cmd, flags, append([]string{vc.verb}, positional...))
		},
	}
}

// reportFlagError prints a flag problem as a usage error. Like handler usage
// errors it does not fail the process.
func reportFlagError(cmd *cobra.Command, err error) error {
	_, werr := fmt.Fprintf(cmd.ErrOrStderr(), "error: %v: %v\n", task.ErrUsage, err)
	return werr
}

// loadSettings merges file and environment configuration with flags.
func loadSettings(flags globalFlags) (*config.Config, error) {
	cwd, err := paths.WorkingDir()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return nil, err
	}

	if flags.fileSet {
		cfg.Store.File = paths.Resolve(cwd, flags.file)
	}
	if flags.logLevelSet {
		cfg.Log.Level = flags.logLevel
	}
	return cfg, nil
}

func runVerb(cmd *cobra.Command, flags globalFlags, args []string) error {
	cfg, err := loadSettings(flags)
	if err != nil {
		return err
	}

	logger := logging.New(logging.Config{Level: cfg.Log.Level, Encoding: cfg.Log.Encoding})
	defer logger.Sync()

	tracker, err := task.Open(task.NewFileStore(cfg.Store.File), task.Options{Logger: logger})
	if err != nil {
		return err
	}

	result, err := tracker.Run(args)
	if err != nil {
		return err
	}

	return renderResult(cmd.OutOrStdout(), cmd.ErrOrStderr(), result, renderOptions{
		json:    flags.json,
		palette: ui.NewPalette(ui.ColorEnabled()),
	})
}
