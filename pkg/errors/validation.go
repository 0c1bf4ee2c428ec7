package errors

import (
	"os"
	"strings"
	"unicode"
)

// MaxWorkers bounds the worker pool size accepted on the command line.
const MaxWorkers = 256

// ValidateInputPath validates a graph input file given on the command line.
// The empty string and "-" both mean standard input and are accepted.
//
// Validation rules:
//   - No null bytes or control characters
//   - The path must exist and must not be a directory
func ValidateInputPath(path string) error {
	if path == "" || path == "-" {
		return nil
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeUsage, "input path contains invalid characters")
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return Wrap(ErrCodeUsage, err, "cannot read input %q", path)
	}
	if info.IsDir() {
		return New(ErrCodeUsage, "input %q is a directory", path)
	}
	return nil
}

// ValidateWorkers checks a worker count. Zero selects the default.
func ValidateWorkers(n int) error {
	if n < 0 || n > MaxWorkers {
		return New(ErrCodeUsage, "workers must be between 0 and %d, got %d", MaxWorkers, n)
	}
	return nil
}

// ValidateLimit checks the graph count given with -o. Zero means unlimited.
func ValidateLimit(n int) error {
	if n < 0 {
		return New(ErrCodeUsage, "-o must be a positive graph count, got %d", n)
	}
	return nil
}

// ValidateChoice checks that value is one of the allowed names for flag.
func ValidateChoice(flag, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return New(ErrCodeUsage, "invalid %s: %q (must be one of: %s)", flag, value, strings.Join(allowed, ", "))
}
