package main

import (
	"strings"

	"github.com/spf13/pflag"
)

var globalFlagAliases = map[string]string{
	"store": "file",
}

// flagAliasNormalizer maps aliases to their canonical flag and accepts
// underscores in place of dashes.
func flagAliasNormalizer(aliases map[string]string) func(*pflag.FlagSet, string) pflag.NormalizedName {
	return func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		name = strings.ReplaceAll(name, "_", "-")
		if alias, ok := aliases[name]; ok {
			name = alias
		}
		return pflag.NormalizedName(name)
	}
}
