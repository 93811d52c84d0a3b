package almanac

import (
	"bytes"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_LoadAlmanac(t *testing.T) {
	almanac := loadSample(t)

	assert.Equal(t, []int{79, 14, 55, 13}, almanac.Seeds)
	require.Len(t, almanac.Maps, 7)

	var names []string
	for _, m := range almanac.Maps {
		names = append(names, m.Name())
	}
	assert.Equal(t, []string{
		"seed-to-soil",
		"soil-to-fertilizer",
		"fertilizer-to-water",
		"water-to-light",
		"light-to-temperature",
		"temperature-to-humidity",
		"humidity-to-location",
	}, names)

	assert.Equal(t, []Entry{
		{Source: Interval{Start: 98, Stop: 100}, Destination: Interval{Start: 50, Stop: 52}},
		{Source: Interval{Start: 50, Stop: 98}, Destination: Interval{Start: 52, Stop: 100}},
	}, almanac.Maps[0].Entries)
	assert.Len(t, almanac.Maps[2].Entries, 4)
}

func Test_LoadAlmanacErrors(t *testing.T) {
	testCases := map[string]struct {
		input string
		err   error
	}{
		"bad seed": {
			input: "seeds: 79 x4\n",
			err:   ErrParse,
		},
		"bad header": {
			input: "seeds: 1\n\nseed-soil map:\n1 2 3\n",
			err:   ErrParse,
		},
		"entry outside a map": {
			input: "seeds: 1\n\n1 2 3\n",
			err:   ErrParse,
		},
		"short entry": {
			input: "seeds: 1\n\nseed-to-soil map:\n1 2\n",
			err:   ErrParse,
		},
		"long entry": {
			input: "seeds: 1\n\nseed-to-soil map:\n50 98 2 7\n",
			err:   ErrParse,
		},
		"negative seed": {
			input: "seeds: -5 10\n",
			err:   ErrNegativeSeed,
		},
		"negative range size": {
			input: "seeds: 79 -14\n",
			err:   ErrNegativeSeed,
		},
		"overlapping entries": {
			input: "seeds: 1\n\nseed-to-soil map:\n0 10 5\n20 12 5\n",
			err:   ErrMalformedMapping,
		},
		"broken chain": {
			input: "seeds: 1\n\nseed-to-soil map:\n0 10 5\n\nwater-to-light map:\n1 2 3\n",
			err:   ErrBrokenChain,
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadAlmanac(tc.input)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func Test_SeedRanges(t *testing.T) {
	almanac := loadSample(t)

	ranges, err := almanac.SeedRanges()
	require.NoError(t, err)
	assert.Equal(t, []Interval{{Start: 79, Stop: 93}, {Start: 55, Stop: 68}}, ranges)
	assert.Equal(t, 27, almanac.TotalSeeds(ranges))

	almanac.Seeds = almanac.Seeds[:3]
	_, err = almanac.SeedRanges()
	assert.ErrorIs(t, err, ErrOddSeedRanges)
}

func Test_FollowSeeds(t *testing.T) {
	almanac := loadSample(t)
	composed, err := almanac.Changeovers()
	require.NoError(t, err)

	testCases := map[int]int{
		79: 82,
		14: 43,
		55: 86,
		13: 35,
	}
	for seed, location := range testCases {
		assert.Equal(t, location, almanac.Lookup(seed), "lookup of %d", seed)
		assert.Equal(t, location, composed.Evaluate(seed), "composed lookup of %d", seed)
	}

	for seed := 0; seed < 200; seed++ {
		assert.Equal(t, almanac.Lookup(seed), composed.Evaluate(seed), "seed %d", seed)
	}
}

func Test_LookupTrace(t *testing.T) {
	almanac := loadSample(t)
	var log bytes.Buffer
	almanac.Log = &log

	almanac.Lookup(79)
	assert.Equal(t, "seed: 79 soil: 81 fertilizer: 81 water: 81 light: 74 temperature: 78 humidity: 78 location: 82\n", log.String())
}

func Test_Changeovers(t *testing.T) {
	composed, err := loadSample(t).Changeovers()
	require.NoError(t, err)
	assert.Equal(t, map[int]int{
		0: 22, 14: 29, 15: 21, 22: 68, 26: -25, 44: 17, 50: -30, 52: -8, 54: 31, 59: 35,
		62: -6, 66: 31, 69: 4, 70: -70, 71: 3, 82: -36, 92: -32, 93: -25, 98: -31, 99: -80,
		100: 0,
	}, composed.Map())

	composed, err = Almanac{}.Changeovers()
	require.NoError(t, err)
	assert.Equal(t, Identity(), composed)
}

func Test_sample(t *testing.T) {
	almanac := loadSample(t)

	lowest, err := almanac.LowestLocation()
	require.NoError(t, err)
	assert.Equal(t, 35, lowest)
}

func Test_sampleRanges(t *testing.T) {
	almanac := loadSample(t)
	ranges, err := almanac.SeedRanges()
	require.NoError(t, err)

	lowest, err := almanac.LowestLocationInRanges(ranges)
	require.NoError(t, err)
	assert.Equal(t, 46, lowest)

	threaded, err := almanac.LowestLocationThreaded(ranges, 3)
	require.NoError(t, err)
	assert.Equal(t, 46, threaded)

	bruteForce := make([]int, 0, len(ranges))
	for _, r := range ranges {
		res, err := almanac.LowestLocationByRange(r.Start, r.Stop)
		require.NoError(t, err)
		bruteForce = append(bruteForce, res)
	}
	assert.Equal(t, 46, slices.Min(bruteForce))
}

func Test_LocationRanges(t *testing.T) {
	almanac := loadSample(t)

	assert.Equal(t, []Interval{
		{Start: 82, Stop: 85},
		{Start: 46, Stop: 56},
		{Start: 60, Stop: 61},
	}, almanac.LocationRanges(Interval{Start: 79, Stop: 93}))

	total := 0
	for _, r := range almanac.LocationRanges(Interval{Start: 55, Stop: 68}) {
		total += r.Len()
	}
	assert.Equal(t, 13, total)
}

func Test_RangesAgainstBruteForce(t *testing.T) {
	almanac := loadSample(t)
	for start := 0; start < 110; start += 7 {
		for size := 1; size < 40; size += 5 {
			r := NewInterval(start, size)
			want, err := almanac.LowestLocationByRange(r.Start, r.Stop)
			require.NoError(t, err)

			got, err := almanac.LowestLocationInRanges([]Interval{r})
			require.NoError(t, err)
			assert.Equal(t, want, got, "range %s", r)

			var starts []int
			for _, p := range almanac.LocationRanges(r) {
				starts = append(starts, p.Start)
			}
			assert.Equal(t, want, slices.Min(starts), "split range %s", r)
		}
	}
}

func Test_NoSeeds(t *testing.T) {
	almanac := loadSample(t)

	_, err := Almanac{}.LowestLocation()
	assert.ErrorIs(t, err, ErrNoSeeds)

	_, err = almanac.LowestLocationInRanges(nil)
	assert.ErrorIs(t, err, ErrNoSeeds)

	_, err = almanac.LowestLocationThreaded([]Interval{{Start: 4, Stop: 4}}, 2)
	assert.ErrorIs(t, err, ErrNoSeeds)

	_, err = almanac.LowestLocationByRange(10, 10)
	assert.ErrorIs(t, err, ErrNoSeeds)
}

func Test_NegativeSeeds(t *testing.T) {
	almanac := loadSample(t)

	almanac.Seeds = []int{79, -5}
	assert.ErrorIs(t, almanac.Validate(), ErrNegativeSeed)

	// a location below every other one still wins when it is negative
	almanac.Seeds = []int{-5}
	lowest, err := almanac.LowestLocation()
	require.NoError(t, err)
	assert.Equal(t, -5, lowest)

	ranges := []Interval{{Start: -5, Stop: -3}, {Start: 10, Stop: 12}}
	lowest, err = almanac.LowestLocationInRanges(ranges)
	require.NoError(t, err)
	assert.Equal(t, -5, lowest)

	lowest, err = almanac.LowestLocationThreaded(ranges, 2)
	require.NoError(t, err)
	assert.Equal(t, -5, lowest)

	lowest, err = almanac.LowestLocationByRange(-5, -3)
	require.NoError(t, err)
	assert.Equal(t, -5, lowest)
}
