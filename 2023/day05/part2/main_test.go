package main

import (
	"testing"

	"github.com/pborges/aoc2023/2023/day05/almanac"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_sample(t *testing.T) {
	result, err := solve(sample)
	require.NoError(t, err)
	assert.Equal(t, 46, result)
}

func Test_sampleThreaded(t *testing.T) {
	*workers = 4
	t.Cleanup(func() { *workers = 1 })

	result, err := solve(sample)
	require.NoError(t, err)
	assert.Equal(t, 46, result)
}

func Test_oddSeeds(t *testing.T) {
	_, err := solve("seeds: 79 14 55\n")
	assert.ErrorIs(t, err, almanac.ErrOddSeedRanges)
}
