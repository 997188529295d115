// Package flagx lets several components parse their own subset of
// command-line flags without tripping over each other's.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs extracts from args the flags named in allowed, in both the
// "-f value" and "--flag=value" forms. Everything else is dropped, so a
// flag.FlagSet parsing the result never sees flags it does not define.
func FilterArgs(args []string, allowed []string) []string {
	keep := make(map[string]bool, len(allowed))
	for _, name := range allowed {
		keep[name] = true
	}

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		switch arg := args[i]; {
		case strings.HasPrefix(arg, "-") && strings.Contains(arg, "="):
			if keep[strings.SplitN(arg, "=", 2)[0]] {
				out = append(out, arg)
			}
		case keep[arg]:
			out = append(out, arg)
			// a following non-flag argument is this flag's value
			if next := i + 1; next < len(args) && !strings.HasPrefix(args[next], "-") {
				out = append(out, args[next])
				i = next
			}
		}
	}
	return out
}

// JsonConfigFlags extracts the config file path given via -c or -config.
// Returns "" when neither is present.
func JsonConfigFlags() string {
	args := FilterArgs(os.Args[1:], []string{"-c", "-config"})

	var path string
	fs := flag.NewFlagSet("jsonconfig", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(args)

	return path
}
