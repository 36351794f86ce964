package main

import (
	"regexp"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-chargen/internal/errors"
)

// legacyNumber matches the bare dash-number arguments of the classic
// interface: chargen -5 -3 makes five level 3 characters
var legacyNumber = regexp.MustCompile(`^-(\d+)$`)

// normalizeArgs rewrites dash-number arguments into the long flags they stand
// for. The first becomes --count and the second --level unless that flag is
// given explicitly; anything else, including the value of a flag given as a
// separate argument, is left for cobra.
func normalizeArgs(cmd *cobra.Command, args []string) ([]string, error) {
	out := make([]string, 0, len(args))
	positional := []string{flagCount, flagLevel}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			out = append(out, args[i:]...)
			break
		}

		name, inline := flagName(cmd, arg)
		if name != "" {
			// an explicit --count or --level takes that slot from the bare numbers
			positional = slices.DeleteFunc(positional, func(p string) bool { return p == name })
			out = append(out, arg)
			if !inline && i+1 < len(args) {
				out = append(out, args[i+1])
				i++
			}
			continue
		}

		m := legacyNumber.FindStringSubmatch(arg)
		if m == nil {
			out = append(out, arg)
			continue
		}
		if len(positional) == 0 {
			return nil, usageError(errors.InvalidArgumentf("unexpected argument: %s", arg))
		}

		out = append(out, "--"+positional[0]+"="+m[1])
		positional = positional[1:]
	}

	return out, nil
}

// flagName returns the name of the value-taking flag arg sets, and whether
// the value is inline rather than the next argument. Other arguments return
// an empty name.
func flagName(cmd *cobra.Command, arg string) (string, bool) {
	flags := cmd.Flags()

	switch {
	case strings.HasPrefix(arg, "--"):
		key, _, inline := strings.Cut(arg[2:], "=")
		if f := flags.Lookup(key); f != nil && f.NoOptDefVal == "" {
			return f.Name, inline
		}
	case len(arg) >= 2 && arg[0] == '-':
		if f := flags.ShorthandLookup(arg[1:2]); f != nil && f.NoOptDefVal == "" {
			return f.Name, len(arg) > 2
		}
	}
	return "", false
}
