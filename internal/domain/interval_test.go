package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// at строит время на фиксированной дате теста
func at(hour, min int) time.Time {
	return time.Date(2024, 3, 15, hour, min, 0, 0, time.Local)
}

func iv(t *testing.T, h1, m1, h2, m2 int) TimeInterval {
	t.Helper()
	interval, err := NewTimeInterval(at(h1, m1), at(h2, m2))
	require.NoError(t, err)
	return interval
}

func TestNewTimeInterval(t *testing.T) {
	t.Run("valid interval", func(t *testing.T) {
		interval, err := NewTimeInterval(at(10, 0), at(20, 0))
		require.NoError(t, err)
		assert.Equal(t, 600, interval.Minutes())
	})

	t.Run("zero length is rejected", func(t *testing.T) {
		_, err := NewTimeInterval(at(10, 0), at(10, 0))
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})

	t.Run("inverted is rejected", func(t *testing.T) {
		_, err := NewTimeInterval(at(12, 0), at(10, 0))
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    TimeInterval
		b    TimeInterval
		want bool
	}{
		{
			name: "real overlap",
			a:    TimeInterval{Start: at(11, 30), End: at(12, 0)},
			b:    TimeInterval{Start: at(11, 20), End: at(11, 40)},
			want: true,
		},
		{
			name: "touching at start is not an overlap",
			a:    TimeInterval{Start: at(11, 30), End: at(12, 0)},
			b:    TimeInterval{Start: at(11, 0), End: at(11, 30)},
			want: false,
		},
		{
			name: "touching at end is not an overlap",
			a:    TimeInterval{Start: at(11, 30), End: at(12, 0)},
			b:    TimeInterval{Start: at(12, 0), End: at(12, 30)},
			want: false,
		},
		{
			name: "fully contained",
			a:    TimeInterval{Start: at(10, 0), End: at(20, 0)},
			b:    TimeInterval{Start: at(12, 0), End: at(13, 0)},
			want: true,
		},
		{
			name: "disjoint",
			a:    TimeInterval{Start: at(9, 0), End: at(10, 0)},
			b:    TimeInterval{Start: at(14, 0), End: at(15, 0)},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestMergeIntervals(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, MergeIntervals(nil))
	})

	t.Run("overlapping intervals are coalesced", func(t *testing.T) {
		merged := MergeIntervals([]TimeInterval{
			iv(t, 11, 0, 12, 0),
			iv(t, 11, 30, 12, 30),
		})
		require.Len(t, merged, 1)
		assert.Equal(t, iv(t, 11, 0, 12, 30), merged[0])
	})

	t.Run("adjacent intervals are coalesced", func(t *testing.T) {
		merged := MergeIntervals([]TimeInterval{
			iv(t, 10, 0, 11, 0),
			iv(t, 11, 0, 12, 0),
		})
		require.Len(t, merged, 1)
		assert.Equal(t, iv(t, 10, 0, 12, 0), merged[0])
	})

	t.Run("disjoint intervals stay separate and sorted", func(t *testing.T) {
		merged := MergeIntervals([]TimeInterval{
			iv(t, 13, 0, 17, 0),
			iv(t, 9, 0, 12, 0),
		})
		require.Len(t, merged, 2)
		assert.Equal(t, iv(t, 9, 0, 12, 0), merged[0])
		assert.Equal(t, iv(t, 13, 0, 17, 0), merged[1])
	})

	t.Run("contained interval is absorbed", func(t *testing.T) {
		merged := MergeIntervals([]TimeInterval{
			iv(t, 9, 0, 18, 0),
			iv(t, 10, 0, 11, 0),
		})
		require.Len(t, merged, 1)
		assert.Equal(t, iv(t, 9, 0, 18, 0), merged[0])
	})

	t.Run("result is pairwise disjoint and idempotent", func(t *testing.T) {
		input := []TimeInterval{
			iv(t, 9, 0, 10, 0),
			iv(t, 9, 30, 11, 0),
			iv(t, 11, 0, 11, 30),
			iv(t, 14, 0, 15, 0),
			iv(t, 14, 15, 14, 45),
		}
		merged := MergeIntervals(input)

		for i := 1; i < len(merged); i++ {
			assert.True(t, merged[i-1].End.Before(merged[i].Start),
				"intervals %d and %d must be disjoint with a real gap", i-1, i)
		}

		assert.Equal(t, merged, MergeIntervals(merged))
	})
}

func TestSubtractIntervals(t *testing.T) {
	base := TimeInterval{Start: at(10, 0), End: at(20, 0)}

	t.Run("no cuts returns base", func(t *testing.T) {
		result := SubtractIntervals(base, nil)
		require.Len(t, result, 1)
		assert.Equal(t, base, result[0])
	})

	t.Run("covering cut returns empty", func(t *testing.T) {
		result := SubtractIntervals(base, []TimeInterval{iv(t, 9, 0, 21, 0)})
		assert.Empty(t, result)
	})

	t.Run("middle cut splits base", func(t *testing.T) {
		result := SubtractIntervals(base, []TimeInterval{iv(t, 11, 30, 12, 30)})
		require.Len(t, result, 2)
		assert.Equal(t, iv(t, 10, 0, 11, 30), result[0])
		assert.Equal(t, iv(t, 12, 30, 20, 0), result[1])
	})

	t.Run("cut outside base is ignored", func(t *testing.T) {
		result := SubtractIntervals(base, []TimeInterval{iv(t, 7, 0, 8, 0), iv(t, 21, 0, 22, 0)})
		require.Len(t, result, 1)
		assert.Equal(t, base, result[0])
	})

	t.Run("cut partially overlapping truncates", func(t *testing.T) {
		result := SubtractIntervals(base, []TimeInterval{iv(t, 9, 0, 11, 0), iv(t, 19, 0, 21, 0)})
		require.Len(t, result, 1)
		assert.Equal(t, iv(t, 11, 0, 19, 0), result[0])
	})

	t.Run("overlapping cuts are not double subtracted", func(t *testing.T) {
		result := SubtractIntervals(base, []TimeInterval{
			iv(t, 11, 0, 12, 0),
			iv(t, 11, 30, 12, 30),
		})
		require.Len(t, result, 2)
		assert.Equal(t, iv(t, 10, 0, 11, 0), result[0])
		assert.Equal(t, iv(t, 12, 30, 20, 0), result[1])
	})

	t.Run("open plus covered equals base duration", func(t *testing.T) {
		cutSets := [][]TimeInterval{
			nil,
			{iv(t, 11, 30, 12, 30)},
			{iv(t, 9, 0, 11, 0), iv(t, 19, 0, 21, 0)},
			{iv(t, 11, 0, 12, 0), iv(t, 11, 30, 12, 30), iv(t, 15, 0, 16, 0)},
			{iv(t, 9, 0, 21, 0)},
		}

		for _, cuts := range cutSets {
			open := SumMinutes(SubtractIntervals(base, cuts))

			covered := 0
			for _, cut := range MergeIntervals(cuts) {
				if overlap := base.Intersect(cut); !overlap.IsZero() {
					covered += overlap.Minutes()
				}
			}

			assert.Equal(t, base.Minutes(), open+covered)
		}
	})
}

func TestIntersect(t *testing.T) {
	a := iv(t, 10, 0, 12, 0)

	assert.Equal(t, iv(t, 11, 0, 12, 0), a.Intersect(iv(t, 11, 0, 13, 0)))
	assert.True(t, a.Intersect(iv(t, 12, 0, 13, 0)).IsZero())
	assert.Equal(t, a, a.Intersect(iv(t, 9, 0, 13, 0)))
}

func TestSumMinutes(t *testing.T) {
	assert.Equal(t, 0, SumMinutes(nil))
	assert.Equal(t, 150, SumMinutes([]TimeInterval{iv(t, 10, 0, 11, 0), iv(t, 12, 0, 13, 30)}))
}
