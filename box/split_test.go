package box

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitWrappedScenario(t *testing.T) {
	// periodic on x with an extent of 100 cells: [-3, 8] wraps to [97, 8]
	b := NewIBox(97, 8, 0, 10, 0, 10)
	parts := SplitWrapped(b, 100, nil)
	require.Equal(t, []IBox{
		NewIBox(97, 99, 0, 10, 0, 10),
		NewIBox(0, 8, 0, 10, 0, 10),
	}, parts)

	far := NewIBox(98, 99, 0, 10, 0, 10)
	require.True(t, Overlap(b, far))
	require.True(t, Overlap(parts[0], far))
	require.False(t, Overlap(parts[1], far))
}

func TestSplitWrappedCorner(t *testing.T) {
	var buf [MaxSplit]IBox
	b := NewIBox(1020, 3, 1021, 2, 1022, 1)
	parts := SplitPeriodic[uint32](b, buf[:0])
	require.Len(t, parts, 8)
	for _, p := range parts {
		require.False(t, p.AnyWrapped())
		require.True(t, Overlap(b, p))
	}
	require.Contains(t, parts, NewIBox(0, 3, 0, 2, 0, 1))
	require.Contains(t, parts, NewIBox(1020, 1023, 1021, 1023, 1022, 1023))
}

func TestSplitUnwrappedIsIdentity(t *testing.T) {
	b := NewIBox(1, 2, 3, 4, 5, 6)
	require.Equal(t, []IBox{b}, SplitPeriodic[uint64](b, nil))
}

func TestSplitWrappedDropsOutOfRangePieces(t *testing.T) {
	tests := []struct {
		name string
		b    IBox
		want []IBox
	}{
		{"low piece empty", NewIBox(1000, -1, 0, 9, 0, 9), []IBox{NewIBox(1000, 1023, 0, 9, 0, 9)}},
		{"high piece empty", NewIBox(1024, 5, 0, 9, 0, 9), []IBox{NewIBox(0, 5, 0, 9, 0, 9)}},
		{"both empty", NewIBox(1024, -1, 0, 9, 0, 9), []IBox{}},
		{"empty on y", NewIBox(1000, 3, 1030, 2, 0, 9), []IBox{NewIBox(0, 3, 0, 2, 0, 9), NewIBox(1000, 1023, 0, 2, 0, 9)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf [MaxSplit]IBox
			parts := SplitPeriodic[uint32](tt.b, buf[:0])
			require.ElementsMatch(t, tt.want, parts)

			// every in-domain cell box agrees with the wrap aware overlap
			for _, leaf := range []IBox{
				NewIBox(0, 511, 0, 511, 0, 511),
				NewIBox(512, 1023, 0, 511, 0, 511),
				NewIBox(0, 511, 512, 1023, 0, 511),
				NewIBox(1020, 1023, 1020, 1023, 0, 0),
			} {
				hit := false
				for _, p := range parts {
					require.False(t, p.AnyWrapped())
					hit = hit || Overlap(p, leaf)
				}
				require.Equal(t, Overlap(tt.b, leaf), hit, "leaf %v", leaf)
			}
		})
	}
}
