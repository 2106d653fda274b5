package phases

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewScheduleKnownTables(t *testing.T) {
	tests := []struct {
		period, offset int
		back, fwd      []int
		double, triple []int
	}{
		{
			period: 3, offset: 1,
			back: []int{1, 1, 1}, fwd: []int{1, 1, 1},
			double: []int{2, 2, 2}, triple: []int{3, 3, 3},
		},
		{
			period: 4, offset: 2,
			back: []int{2, 2, 3, 1}, fwd: []int{1, 3, 2, 2},
			double: []int{3, 5, 3, 5}, triple: []int{6, 6, 5, 7},
		},
	}
	for _, tt := range tests {
		s, err := NewSchedule(tt.period, tt.offset)
		require.NoError(t, err)
		require.Equal(t, tt.back, s.Back)
		require.Equal(t, tt.fwd, s.Fwd)
		require.Equal(t, tt.double, s.Double)
		require.Equal(t, tt.triple, s.Triple)
	}
}

func TestScheduleInvariants(t *testing.T) {
	for period := 2; period <= MaxPeriod; period++ {
		for offset := 1; offset < period; offset++ {
			s, err := NewSchedule(period, offset)
			require.NoError(t, err)

			sum := 0
			for i := 0; i < period; i++ {
				require.Greater(t, s.Back[i], 0, "p%d k%d phase %d", period, offset, i)
				require.Greater(t, s.Fwd[i], 0, "p%d k%d phase %d", period, offset, i)
				require.Equal(t, s.Back[i], s.Fwd[(i+s.Back[i])%period])
				sum += s.Back[i]
			}
			// one traversal of the chain advances offset rows of period depths each
			require.Equal(t, offset*period, sum, "p%d k%d", period, offset)

			seen := make(map[int]bool)
			for _, ph := range s.Chain() {
				require.False(t, seen[ph], "p%d k%d phase %d visited twice", period, offset, ph)
				seen[ph] = true
			}
			require.Len(t, seen, period)
		}
	}
}

func TestNewScheduleRejectsBadArgs(t *testing.T) {
	_, err := NewSchedule(0, 1)
	require.ErrorIs(t, err, ErrBadPeriod)
	_, err = NewSchedule(MaxPeriod+1, 1)
	require.ErrorIs(t, err, ErrBadPeriod)
	_, err = NewSchedule(3, 0)
	require.ErrorIs(t, err, ErrBadOffset)
	_, err = NewSchedule(3, 3)
	require.ErrorIs(t, err, ErrBadOffset)
}
