package main

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseList(t *testing.T) {
	ints, err := parseList(" 3, 5 ,,7", strconv.Atoi)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 5, 7}, ints)

	_, err = parseList("3,x", strconv.Atoi)
	assert.Error(t, err)
	_, err = parseList(" , ", strconv.Atoi)
	assert.Error(t, err)
}

func TestRunPrintsOneRowPerSet(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{
		"-width", "20", "-height", "10", "-seeds", "3", "-workers", "2",
		"-walls", "0.4,0.5", "-steps", "2", "-death", "4", "-birth", "4",
	}, &out, &bytes.Buffer{})
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "Sweeping 2 parameter sets x 3 seeds")
	var rows int
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "0.") {
			rows++
		}
	}
	assert.Equal(t, 2, rows)
}

func TestRunRejectsNonPositiveSeeds(t *testing.T) {
	for _, n := range []string{"-1", "0"} {
		t.Run(n, func(t *testing.T) {
			var err error
			assert.NotPanics(t, func() {
				err = run([]string{"-seeds", n}, &bytes.Buffer{}, &bytes.Buffer{})
			})
			assert.ErrorContains(t, err, "-seeds must be positive")
		})
	}
}

func TestRunRejectsBadList(t *testing.T) {
	err := run([]string{"-walls", "lots"}, &bytes.Buffer{}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "-walls")
}
