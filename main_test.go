package main

import (
	"bytes"
	"flag"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cavegen/internal/gamemap"
	"cavegen/internal/generate"
)

func TestRunPrintsCave(t *testing.T) {
	var out, errOut bytes.Buffer
	err := run([]string{"-width", "30", "-height", "12", "-seed", "7"}, &out, &errOut)
	require.NoError(t, err, errOut.String())

	rows := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, rows, 12)
	g, err := gamemap.Parse(rows...)
	require.NoError(t, err)
	assert.Equal(t, 30, g.Width)
	assert.Len(t, generate.Regions(g), 1, "printed cave must be a single region")
}

func TestRunIsDeterministicForSeed(t *testing.T) {
	args := []string{"-width", "25", "-height", "10", "-seed", "42"}
	var a, b bytes.Buffer
	require.NoError(t, run(args, &a, &bytes.Buffer{}))
	require.NoError(t, run(args, &b, &bytes.Buffer{}))
	assert.Equal(t, a.String(), b.String())
}

func TestRunOpenField(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"-width", "4", "-height", "2", "-steps", "0", "-wall", "0", "-seed", "1"}, &out, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "....\n....\n", out.String())
}

func TestRunErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want error
	}{
		{"zero width", []string{"-width", "0"}, gamemap.ErrInvalidSize},
		{"bad wall chance", []string{"-wall", "1.5"}, generate.ErrInvalidConfig},
		{"solid rock", []string{"-width", "5", "-height", "5", "-steps", "0", "-wall", "1", "-retries", "2"}, generate.ErrNoFloor},
		{"help", []string{"-h"}, flag.ErrHelp},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := run(tc.args, &bytes.Buffer{}, &bytes.Buffer{})
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRunUnknownTheme(t *testing.T) {
	err := run([]string{"-theme", "plaid"}, &bytes.Buffer{}, &bytes.Buffer{})
	assert.Error(t, err)
}
