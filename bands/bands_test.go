// SPDX-License-Identifier: MIT

package bands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/semicon/bands"
	"github.com/katalvlaran/semicon/errors"
)

func TestCanonical_OrdersAndDedups(t *testing.T) {
	s, err := bands.Canonical("gamma_7v", "gamma_6c", "gamma_7v")
	require.NoError(t, err)
	assert.Equal(t, bands.Set{bands.Gamma6c, bands.Gamma7v}, s)
	assert.Equal(t, []int{0, 1, 6, 7}, s.Indices())
	assert.Equal(t, []float64{0.5, 0.5}, s.Spins())
	assert.False(t, s.IsFull())
}

func TestCanonical_UnknownBand(t *testing.T) {
	_, err := bands.Canonical("gamma_6c", "gamma_5v")
	require.ErrorIs(t, err, errors.ErrConfiguration)
}

func TestIndices_PartitionBasis(t *testing.T) {
	seen := make(map[int]bool)
	for _, b := range bands.All {
		for _, i := range b.Indices() {
			require.False(t, seen[i], "index %d covered twice", i)
			seen[i] = true
		}
	}
	require.Len(t, seen, bands.BasisSize)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, bands.All.Indices())
	assert.True(t, bands.All.IsFull())
}

func TestSet_Validate(t *testing.T) {
	tests := []struct {
		name string
		set  bands.Set
		ok   bool
	}{
		{"empty", bands.Set{}, true},
		{"full", bands.All, true},
		{"subset", bands.Set{bands.Gamma6c, bands.Gamma7v}, true},
		{"unknown", bands.Set{"gamma_9x"}, false},
		{"wrong case", bands.Set{"Gamma8v"}, false},
		{"duplicate", bands.Set{bands.Gamma6c, bands.Gamma6c}, false},
		{"unordered", bands.Set{bands.Gamma8v, bands.Gamma6c}, false},
		{"split duplicate", bands.Set{bands.Gamma6c, bands.Gamma8v, bands.Gamma6c}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.set.Validate()
			if tc.ok {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, errors.ErrConfiguration)
		})
	}
}

func TestSet_IsFullComparesContents(t *testing.T) {
	assert.False(t, bands.Set{bands.Gamma6c, bands.Gamma6c, bands.Gamma6c}.IsFull())
	assert.False(t, bands.Set{bands.Gamma6c, bands.Gamma8v}.IsFull())
	assert.True(t, bands.Set{bands.Gamma6c, bands.Gamma8v, bands.Gamma7v}.IsFull())
}
