package box

import (
	"math"
	"testing"

	"github.com/forestrie/go-cornerstone/sfc"
	"github.com/stretchr/testify/require"
)

func TestIntRadius(t *testing.T) {
	tests := []struct {
		name   string
		radius float64
		length float64
		want   int64
	}{
		{"zero", 0, 1, 0},
		{"negative", -1, 1, 0},
		{"nan", math.NaN(), 1, 0},
		{"exact", 0.125, 1, 128},
		{"rounds up", 0.1, 1, 103},
		{"scaled box", 3, 1024, 3},
		{"saturates", 5, 1, 1024},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, IntRadius[uint32](tt.radius, tt.length))
		})
	}
}

func TestMakeHaloBoxOpenClamps(t *testing.T) {
	global := NewCube(0.0, 1.0, false)
	// level 3 leaf at the origin corner
	lo := uint32(0)
	hi := sfc.NodeRange[uint32](3)

	halo := MakeHaloBox(lo, hi, 0.125, global)
	require.Equal(t, NewIBox(0, 255, 0, 255, 0, 255), halo)

	// the huge radius saturates to the whole domain instead of overflowing
	halo = MakeHaloBox(lo, hi, 1e30, global)
	require.Equal(t, NewIBox(0, 1023, 0, 1023, 0, 1023), halo)
}

func TestMakeHaloBoxZeroRadiusIsNodeBox(t *testing.T) {
	global := NewCube(-1.0, 1.0, true)
	lo := sfc.NodeRange[uint64](2) * 9
	hi := lo + sfc.NodeRange[uint64](2)
	require.Equal(t, NodeIBox(lo, 2), MakeHaloBox(lo, hi, 0.0, global))
}

func TestMakeHaloBoxPeriodicWraps(t *testing.T) {
	// one physical unit per integer cell
	global := Box[float64]{
		Min:      [3]float64{0, 0, 0},
		Max:      [3]float64{1024, 1024, 1024},
		Periodic: [3]bool{true, false, false},
	}
	lo := uint32(0)
	hi := sfc.NodeRange[uint32](3)

	halo := MakeHaloBox(lo, hi, 3.0, global)
	require.Equal(t, NewIBox(1021, 130, 0, 130, 0, 130), halo)
	require.True(t, halo.Wrapped(0))
	require.False(t, halo.Wrapped(1))

	// a leaf at the far x end of the domain is reached through the wrap
	far := NodeIBox(sfc.Encode[uint32](896, 0, 0), 3)
	require.True(t, Overlap(halo, far))
}

func TestMakeHaloIBoxCoversWholePeriodicAxis(t *testing.T) {
	node := NewIBox(0, 511, 0, 511, 0, 511)
	halo := MakeHaloIBox[uint32](node, [3]int64{256, 300, 0}, [3]bool{true, true, true})
	require.Equal(t, NewIBox(0, 1023, 0, 1023, 0, 511), halo)
	require.False(t, halo.AnyWrapped())
}

func TestCheckRadius(t *testing.T) {
	require.NoError(t, CheckRadius(0.0))
	require.NoError(t, CheckRadius(float32(2)))
	require.ErrorIs(t, CheckRadius(-0.5), ErrNegativeRadius)
	require.ErrorIs(t, CheckRadius(math.NaN()), ErrNegativeRadius)
	require.ErrorIs(t, CheckRadius(math.Inf(1)), ErrNegativeRadius)
}

func TestBoxValidate(t *testing.T) {
	require.NoError(t, NewCube(0.0, 1.0, false).Validate())
	require.ErrorIs(t, NewBox(0.0, 1.0, 1.0, 1.0, 0.0, 1.0, false).Validate(), ErrEmptyDomain)
	require.ErrorIs(t, NewCube(0.0, math.Inf(1), false).Validate(), ErrEmptyDomain)
}
