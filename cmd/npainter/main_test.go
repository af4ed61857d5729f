package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTopology(t *testing.T) {
	topology, err := parseTopology("8")
	require.NoError(t, err)
	assert.Equal(t, []int{27, 8, 3}, topology)

	topology, err = parseTopology("16, 8")
	require.NoError(t, err)
	assert.Equal(t, []int{27, 16, 8, 3}, topology)

	_, err = parseTopology("8,x")
	assert.Error(t, err)
}
