// Package flagx extracts selected flags from the command line so several
// loaders (JSON file, env file, main flags) can each parse only their own.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs keeps only the arguments that belong to allowedFlags, in order.
//
// Both "-f value" and "-f=value" forms are recognized. A separate value is
// only consumed when it does not itself start with "-".
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if name, _, found := strings.Cut(arg, "="); found && strings.HasPrefix(arg, "-") {
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; !ok {
			continue
		}
		filtered = append(filtered, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			i++
			filtered = append(filtered, args[i])
		}
	}

	return filtered
}

// JsonConfigFlags returns the config file path given with -c or -config,
// or "" when neither is present.
func JsonConfigFlags() string {
	return stringFlag("json", "config", "c", "", "path to JSON config file")
}

// EnvFileFlags returns the dotenv file path given with -e or -env, falling
// back to ".env".
func EnvFileFlags() string {
	return stringFlag("env", "env", "e", ".env", "path to dotenv file")
}

func stringFlag(set, long, short, def, usage string) string {
	var v string

	args := FilterArgs(os.Args[1:], []string{"-" + short, "-" + long})

	fs := flag.NewFlagSet(set, flag.ContinueOnError)
	fs.StringVar(&v, long, def, usage)
	fs.StringVar(&v, short, def, usage+" (short)")
	_ = fs.Parse(args)

	return v
}
