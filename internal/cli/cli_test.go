package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/metriclines/pkg/codec"
	errs "github.com/matzehuels/metriclines/pkg/errors"
)

// execute runs the dbe command tree with stdin and returns stdout, stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	c := New(&stderr, LogInfo)
	c.In = strings.NewReader(stdin)
	c.Out = &stdout
	err := c.Execute(context.Background(), args)
	return stdout.String(), stderr.String(), err
}

func TestRootStatistics(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"five-cycle", "DUW\n", nil, "10,0,5\n"},
		{"sparse6 path", ":DgH_^\n", nil, "10,1,5\n"},
		{"single graph", "DUW\nD~{\n", []string{"-o=1"}, "10,0,5\n"},
		{"two graphs", "DUW\nC~\nD~{\n", []string{"-o", "2"}, "10,0,5\n6,0,2\n"},
		{"extended", "DUW\n", []string{"--extended"}, "10,0,5,0,0,0,0,2,10,10,5\n"},
		{"universal line counted once", "DFw\n", nil, "7,1,2\n"},
		{"extended K32", "DFw\n", []string{"--extended"}, "7,1,2,4,0,4,0,2,10,7,6\n"},
		{"pair distance range", "DFw\n", []string{"--extended", "--pair-dist=1:1"}, "7,1,2,4,0,4,0,2,6,6,5\n"},
		{"universal distance range", "DFw\n", []string{"--extended", "--universal-dist=3:"}, "7,1,2,0,0,0,0,2,10,7,2\n"},
		{"header", "DUW\n", []string{"--header"}, "lines,universal,gap\n10,0,5\n"},
		{"collinear rule", "Ch\n", []string{"--lines=collinear"}, "1,1,-3\n"},
		{"parallel", "DUW\nC~\nD~{\n", []string{"--workers=3"}, "10,0,5\n6,0,2\n10,0,5\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, err := execute(t, tt.stdin, tt.args...)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("stdout = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRootFilters(t *testing.T) {
	const input = "DUW\n:DgH_^\nC~\n"
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"-u"}, "DUW\nC~\n"},
		{[]string{"-n"}, ""},
		{[]string{"-nmax=4"}, "C~\n"},
		{[]string{"-nmax", "5"}, "DUW\nDQo\nC~\n"},
		{[]string{"-nmin=5"}, "DUW\nDQo\n"},
		{[]string{"--nmin=3"}, "DUW\nDQo\n"},
		{[]string{"-nmin=-10"}, "DUW\nDQo\nC~\n"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			got, _, err := execute(t, input, tt.args...)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("stdout = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRootSparse6Output(t *testing.T) {
	got, _, err := execute(t, "DUW\nC~\n", "-u", "--format=sparse6")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	inputs := []string{"DUW", "C~"}
	toks := strings.Fields(got)
	if len(toks) != len(inputs) {
		t.Fatalf("stdout = %q, want %d graphs", got, len(inputs))
	}
	for i, tok := range toks {
		g, err := codec.Decode(tok)
		if err != nil || !strings.HasPrefix(tok, ":") {
			t.Fatalf("token %q is not valid sparse6: %v", tok, err)
		}
		want, err := codec.Decode(inputs[i])
		if err != nil {
			t.Fatal(err)
		}
		if !g.Equal(want) {
			t.Errorf("token %q decodes to %v, want %v", tok, g, want)
		}
	}
}

func TestRootSkipsBadGraphs(t *testing.T) {
	got, stderr, err := execute(t, "Cw\nDUW\nD!!\n")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got != "10,0,5\n" {
		t.Errorf("stdout = %q, want %q", got, "10,0,5\n")
	}
	for _, want := range []string{"skipping graph", "token=Cw", "Analyzed 1 graphs, skipped 2"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr missing %q:\n%s", want, stderr)
		}
	}
	if ExitCode(err) != ExitOK {
		t.Errorf("ExitCode = %d, want %d", ExitCode(err), ExitOK)
	}
}

func TestRootQuiet(t *testing.T) {
	got, stderr, err := execute(t, "D!!\nDUW\nCw\n", "-q")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got != "10,0,5\n" {
		t.Errorf("stdout = %q", got)
	}
	for _, want := range []string{"token=D!!", "token=Cw"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("skipped graph %s should be logged with -q:\n%s", want, stderr)
		}
	}
	if strings.Contains(stderr, "Analyzed") {
		t.Errorf("run summary should be suppressed with -q:\n%s", stderr)
	}
}

func TestRootUsageErrors(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
	}{
		{"conflicting filters", "DUW\n", []string{"-u", "-n"}},
		{"unknown flag", "DUW\n", []string{"--bogus"}},
		{"bad nmax", "DUW\n", []string{"-nmax=many"}},
		{"bad line rule", "DUW\n", []string{"--lines=geodesic"}},
		{"bad format", "DUW\n", []string{"--format=dot"}},
		{"zero count", "DUW\n", []string{"-o=0"}},
		{"count without input", "", []string{"-o=1"}},
		{"missing file", "", []string{"does-not-exist.g6"}},
		{"two files", "", []string{"a.g6", "b.g6"}},
		{"too many workers", "DUW\n", []string{"--workers=100000"}},
		{"empty pair range", "DUW\n", []string{"--pair-dist=3:1"}},
		{"bad universal range", "DUW\n", []string{"--universal-dist=x"}},
		{"completion shell", "", []string{"completion", "tcsh"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.stdin, tt.args...)
			if err == nil {
				t.Fatal("Execute() should fail")
			}
			if !errs.IsUsage(err) {
				t.Errorf("error = %v, want a usage error", err)
			}
			if ExitCode(err) != ExitUsage {
				t.Errorf("ExitCode = %d, want %d", ExitCode(err), ExitUsage)
			}
		})
	}
}

func TestRootReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graphs.g6")
	if err := os.WriteFile(path, []byte(">>graph6<<DUW\nC~\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, _, err := execute(t, "ignored\n", path)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got != "10,0,5\n6,0,2\n" {
		t.Errorf("stdout = %q", got)
	}

	got, _, err = execute(t, "DUW\n", "-")
	if err != nil || got != "10,0,5\n" {
		t.Errorf("reading \"-\" = %q, %v; want stdin", got, err)
	}
}

func TestDistCommand(t *testing.T) {
	got, _, err := execute(t, "Bg\n", "dist")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.HasPrefix(got, "3 1 2 1 :") {
		t.Errorf("stdout = %q, want a distance row for P3", got)
	}

	_, _, err = execute(t, "Bg\n", "dist", "-u")
	if !errs.IsUsage(err) {
		t.Errorf("dist -u error = %v, want usage error", err)
	}
}

func TestCompletionCommand(t *testing.T) {
	got, _, err := execute(t, "", "completion", "bash")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(got, "bash completion") {
		t.Error("bash completion script expected")
	}
}

func TestVersionFlag(t *testing.T) {
	got, _, err := execute(t, "", "--version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.HasPrefix(got, "dbe version ") {
		t.Errorf("stdout = %q, want version line", got)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, ExitOK},
		{context.Canceled, ExitInterrupt},
		{errs.New(errs.ErrCodeUsage, "bad flag"), ExitUsage},
		{errs.New(errs.ErrCodeInternal, "broken"), ExitFailure},
		{errors.New("write output: broken pipe"), ExitFailure},
	}
	for _, tt := range tests {
		if got := ExitCode(tt.err); got != tt.want {
			t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

// executeWithConfigHome is execute with XDG_CONFIG_HOME set to dir.
func executeWithConfigHome(t *testing.T, dir, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", dir)

	var stdout, stderr bytes.Buffer
	c := New(&stderr, LogInfo)
	c.In = strings.NewReader(stdin)
	c.Out = &stdout
	err := c.Execute(context.Background(), args)
	return stdout.String(), stderr.String(), err
}
