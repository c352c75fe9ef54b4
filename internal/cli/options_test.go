package cli

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newFS() *flag.FlagSet {
	fs := NewFlagSet("test")
	fs.SetOutput(io.Discard)
	return fs
}

func TestNoArgs(t *testing.T) {
	o, err := ParseArgs(newFS(), nil)
	require.NoError(t, err)
	require.Equal(t, Options{}, o)
}

func TestAliases(t *testing.T) {
	for _, args := range [][]string{{"-q"}, {"--quiet"}} {
		o, err := ParseArgs(newFS(), args)
		require.NoError(t, err)
		require.True(t, o.Quiet, "%v", args)
	}
	for _, args := range [][]string{{"-v"}, {"--version"}} {
		o, err := ParseArgs(newFS(), args)
		require.NoError(t, err)
		require.True(t, o.Version, "%v", args)
	}
}

func TestHelp(t *testing.T) {
	for _, args := range [][]string{{"-h"}, {"--help"}} {
		_, err := ParseArgs(newFS(), args)
		require.True(t, errors.Is(err, flag.ErrHelp), "%v: %v", args, err)
	}
}

func TestUnknownFlag(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"--terms", "10"})
	require.Error(t, err)
	require.False(t, errors.Is(err, flag.ErrHelp))
}

func TestPositionalRejected(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"-q", "1000"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "1000")
}

func TestUsageMentionsDefaultAndFlags(t *testing.T) {
	var b bytes.Buffer
	PrintUsage(&b, "fibbench")
	s := b.String()
	require.True(t, strings.HasPrefix(s, "fibbench – "))
	require.Contains(t, s, "100000000")
	for _, f := range []string{"--quiet", "--version", "--help"} {
		require.Contains(t, s, f)
	}
}
