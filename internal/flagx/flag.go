// Package flagx extends the standard flag package with the two things the
// credential tools need from a command line: flags mixed freely with
// positional arguments, and knowing which flags the operator actually set.
package flagx

import (
	"flag"
	"strings"
)

// ParseInterspersed parses args with fs, allowing flags to follow positional
// arguments (e.g. "alice secret -d x.db"). The positional arguments are
// returned in order. A literal "--" ends flag parsing; everything after it
// is positional, so a password may start with a dash.
//
// Both -name and --name spellings are accepted, as with flag.FlagSet.
func ParseInterspersed(fs *flag.FlagSet, args []string) ([]string, error) {
	positional := make([]string, 0, len(args))

	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}

		rest := fs.Args()
		consumed := args[:len(args)-len(rest)]

		// flag.Parse swallows a terminating "--"
		if endsWithTerminator(fs, consumed) {
			return append(positional, rest...), nil
		}
		if len(rest) == 0 {
			return positional, nil
		}

		positional = append(positional, rest[0])
		args = rest[1:]
	}
}

// endsWithTerminator reports whether the last of the words consumed by
// fs.Parse was a "--" in flag position, as opposed to the value of a flag
// (e.g. "-d --").
func endsWithTerminator(fs *flag.FlagSet, consumed []string) bool {
	for i := 0; i < len(consumed); i++ {
		w := consumed[i]
		if w == "--" {
			return i == len(consumed)-1
		}
		name := strings.TrimLeft(w, "-")
		if strings.Contains(name, "=") {
			continue
		}
		f := fs.Lookup(name)
		if f == nil || isBoolFlag(f) {
			continue
		}
		// the next word is this flag's value
		i++
	}
	return false
}

func isBoolFlag(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}

// IsSet reports whether the flag called name was set on the command line.
func IsSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// AnySet reports whether any of the named flags was set. Used for flags that
// have a short and a long spelling bound to the same variable.
func AnySet(fs *flag.FlagSet, names ...string) bool {
	for _, n := range names {
		if IsSet(fs, n) {
			return true
		}
	}
	return false
}
