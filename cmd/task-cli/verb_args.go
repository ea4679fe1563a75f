package main

import (
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// globalFlags holds the persistent flag values for one invocation.
type globalFlags struct {
	file        string
	fileSet     bool
	logLevel    string
	logLevelSet bool
	json        bool
	help        bool
}

func rootFlagsFrom(cmd *cobra.Command) globalFlags {
	return globalFlags{
		file:        rootFile,
		fileSet:     cmd.Flags().Changed("file"),
		logLevel:    rootLogLevel,
		logLevelSet: cmd.Flags().Changed("log-level"),
		json:        rootJSON,
	}
}

func newGlobalFlagSet(flags *globalFlags) *pflag.FlagSet {
	fs := pflag.NewFlagSet("task-cli", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.SetNormalizeFunc(flagAliasNormalizer(globalFlagAliases))
	fs.StringVar(&flags.file, "file", "", "")
	fs.StringVar(&flags.logLevel, "log-level", "", "")
	fs.BoolVar(&flags.json, "json", false, "")
	fs.BoolVarP(&flags.help, "help", "h", false, "")
	return fs
}

// parseVerbArgs separates global flags from handler arguments. Only long
// global flags (and -h) are recognized; every other token, including ones
// starting with a dash, is positional. Tokens after "--" are positional.
func parseVerbArgs(args []string) (globalFlags, []string, error) {
	var flags globalFlags
	fs := newGlobalFlagSet(&flags)

	var flagArgs, positional []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			positional = append(positional, args[i+1:]...)
			break
		}
		if arg == "-h" {
			flagArgs = append(flagArgs, arg)
			continue
		}
		if !strings.HasPrefix(arg, "--") {
			positional = append(positional, arg)
			continue
		}

		name, _, hasValue := strings.Cut(arg[2:], "=")
		flag := fs.Lookup(name)
		if flag == nil {
			positional = append(positional, arg)
			continue
		}
		flagArgs = append(flagArgs, arg)
		if !hasValue && flag.NoOptDefVal == "" && i+1 < len(args) {
			i++
			flagArgs = append(flagArgs, args[i])
		}
	}

	if err := fs.Parse(flagArgs); err != nil {
		return globalFlags{}, nil, err
	}
	flags.fileSet = fs.Changed("file")
	flags.logLevelSet = fs.Changed("log-level")
	return flags, positional, nil
}
