package cli

import (
	"reflect"
	"testing"

	"github.com/spf13/pflag"
)

func TestNormalizeArgs(t *testing.T) {
	tests := []struct {
		in   []string
		want []string
	}{
		{[]string{"-nmax=3"}, []string{"--nmax=3"}},
		{[]string{"-nmin", "2", "file.g6"}, []string{"--nmin", "2", "file.g6"}},
		{[]string{"--nmax=3"}, []string{"--nmax=3"}},
		{[]string{"-n", "-u", "-o=1"}, []string{"-n", "-u", "-o=1"}},
		{[]string{"-nmaxx"}, []string{"-nmaxx"}},
		{[]string{"--", "-nmax=3"}, []string{"--", "-nmax=3"}},
		{nil, []string{}},
	}
	for _, tt := range tests {
		if got := NormalizeArgs(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("NormalizeArgs(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeArgsDoesNotMutateInput(t *testing.T) {
	in := []string{"-nmax=1"}
	NormalizeArgs(in)
	if in[0] != "-nmax=1" {
		t.Errorf("input mutated to %q", in[0])
	}
}

func TestNormalizeFlagName(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if got := normalizeFlagName(fs, "cache_size"); got != "cache-size" {
		t.Errorf("normalizeFlagName(cache_size) = %q, want cache-size", got)
	}
	if got := normalizeFlagName(fs, "nmax"); got != "nmax" {
		t.Errorf("normalizeFlagName(nmax) = %q, want nmax", got)
	}
}
