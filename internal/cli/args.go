package cli

import (
	"strings"

	"github.com/spf13/pflag"
)

// singleDashLong are long flags that are also accepted with one dash, as in
// "-nmax=3". pflag would otherwise read them as a cluster of shorthands.
var singleDashLong = []string{"nmax", "nmin"}

// NormalizeArgs rewrites "-nmax=K", "-nmax K", "-nmin=K" and "-nmin K" to
// their double-dash forms. Arguments after "--" are left alone.
func NormalizeArgs(args []string) []string {
	out := make([]string, len(args))
	copy(out, args)
	for i, a := range out {
		if a == "--" {
			break
		}
		for _, name := range singleDashLong {
			if a == "-"+name || strings.HasPrefix(a, "-"+name+"=") {
				out[i] = "-" + a
			}
		}
	}
	return out
}

// normalizeFlagName lets "--no_cache" and "--cache_size" match their dashed
// names.
func normalizeFlagName(f *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}
