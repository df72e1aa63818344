package calculations

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsumeAllowance(t *testing.T) {
	tests := []struct {
		name        string
		allowance   math.Int
		used        math.Int
		requested   math.Int
		expected    math.Int
		expectedErr error
	}{
		{
			name:      "first consumption",
			allowance: i(1000), used: i(0), requested: i(400),
			expected: i(400),
		},
		{
			name:      "consume up to the exact bound",
			allowance: i(1000), used: i(400), requested: i(600),
			expected: i(1000),
		},
		{
			name:      "one over the bound fails",
			allowance: i(1000), used: i(400), requested: i(601),
			expectedErr: ErrExceedsAllowance,
		},
		{
			name:      "exhausted allowance rejects any request",
			allowance: i(1000), used: i(1000), requested: i(1),
			expectedErr: ErrExceedsAllowance,
		},
		{
			name:      "zero request rejected",
			allowance: i(1000), used: i(0), requested: i(0),
			expectedErr: ErrInvalidAmount,
		},
		{
			name:      "used beyond allowance is corrupt state",
			allowance: i(1000), used: i(1001), requested: i(1),
			expectedErr: ErrOverflow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			newUsed, err := ConsumeAllowance(tt.allowance, tt.used, tt.requested)
			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, newUsed)
		})
	}
}

func TestConsumeAllowanceMonotonic(t *testing.T) {
	// Any interleaving of consumptions stops exactly at the allowance.
	allowance := i(100)
	used := math.ZeroInt()
	for _, step := range []int64{30, 30, 30, 10} {
		var err error
		used, err = ConsumeAllowance(allowance, used, i(step))
		require.NoError(t, err)
	}
	assert.Equal(t, allowance, used)

	_, err := ConsumeAllowance(allowance, used, i(1))
	assert.ErrorIs(t, err, ErrExceedsAllowance)
}
