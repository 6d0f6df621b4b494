package lightshow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolidColor(t *testing.T) {
	e, strip := newTestEngine(LayoutRGB)
	p := NewSolidColor(e, RGB(0x20, 0x40, 0x60))

	require.NoError(t, p.Start())
	assert.Equal(t, 1, strip.Pushes())
	assert.Equal(t, filled(testLEDs, RGB(0x20, 0x40, 0x60)), strip.Last())

	for i := 0; i < 10; i++ {
		require.NoError(t, p.Loop())
	}
	assert.Equal(t, 1, strip.Pushes())
}

func TestFlashColor(t *testing.T) {
	e, strip := newTestEngine(LayoutRGB)
	color := RGB(0xff, 0, 0x80)
	p := NewFlashColor(e, color, 3)
	require.NoError(t, p.Start())

	require.NoError(t, p.Loop())
	require.NoError(t, p.Loop())
	assert.Zero(t, strip.Pushes())
	assert.False(t, p.Showing())

	require.NoError(t, p.Loop())
	assert.Equal(t, 1, strip.Pushes())
	assert.True(t, p.Showing())
	assert.Equal(t, filled(testLEDs, color), strip.Last())

	for i := 0; i < 3; i++ {
		require.NoError(t, p.Loop())
	}
	assert.Equal(t, 2, strip.Pushes())
	assert.False(t, p.Showing())
	assert.Equal(t, filled(testLEDs, Black), strip.Last())
}

func TestPulseColor(t *testing.T) {
	e, strip := newTestEngine(LayoutRGB)
	color := RGB(200, 100, 0)
	p := NewPulseColor(e, color, 1, 10)

	require.NoError(t, p.Loop())
	assert.Equal(t, filled(testLEDs, Black), strip.Last())

	for i := 1; i < 10; i++ {
		require.NoError(t, p.Loop())
	}
	assert.Equal(t, uint32(10), p.StepsTaken())
	assert.True(t, p.Advancing())
	assert.Equal(t, 10, strip.Pushes())
	assert.Equal(t, filled(testLEDs, RGB(180, 90, 0)), strip.Last())

	// the flip happens at the start of the next triggered tick
	require.NoError(t, p.Loop())
	assert.False(t, p.Advancing())
	assert.Equal(t, uint32(9), p.StepsTaken())
	assert.Equal(t, filled(testLEDs, color), strip.Last())

	for i := 11; i < 20; i++ {
		require.NoError(t, p.Loop())
	}
	assert.Equal(t, uint32(0), p.StepsTaken())
	assert.False(t, p.Advancing())

	require.NoError(t, p.Loop())
	assert.True(t, p.Advancing())
	assert.Equal(t, uint32(1), p.StepsTaken())
	assert.Equal(t, filled(testLEDs, Black), strip.Last())
}

func TestPulseColorInterval(t *testing.T) {
	e, strip := newTestEngine(LayoutRGB)
	p := NewPulseColor(e, RGB(100, 100, 100), 4, 2)

	for i := 0; i < 3; i++ {
		require.NoError(t, p.Loop())
	}
	assert.Zero(t, strip.Pushes())

	// one full triangle: 0, 1/2, 1, 1/2 of the colour
	want := []uint8{0, 50, 100, 50, 0}
	for i, v := range want {
		require.NoError(t, p.Loop())
		assert.Equal(t, RGB(v, v, v), strip.Last()[0], "step %d", i)
		for j := 0; j < 3; j++ {
			require.NoError(t, p.Loop())
		}
	}
	assert.Equal(t, len(want), strip.Pushes())
}

func TestRainbowColor(t *testing.T) {
	e, strip := newTestEngine(LayoutRGB)
	p := NewRainbowColor(e, 1)
	require.NoError(t, p.Start())
	assert.Zero(t, strip.Pushes())

	require.NoError(t, p.Loop())
	assert.Equal(t, filled(testLEDs, RGB(0xff, 0, 0)), strip.Last())

	for i := 1; i <= 120; i++ {
		require.NoError(t, p.Loop())
	}
	assert.Equal(t, uint32(121), p.Hue())
	assert.Equal(t, filled(testLEDs, RGB(0, 0xff, 0)), strip.Last())

	for i := 121; i < 360; i++ {
		require.NoError(t, p.Loop())
	}
	assert.Equal(t, uint32(0), p.Hue())
	assert.Equal(t, 360, strip.Pushes())
}

func TestPresetsPropagateErrors(t *testing.T) {
	e, _ := newTestEngine(LayoutRGB)
	require.NoError(t, e.Close())

	assert.Equal(t, NoLEDStripConnected, Code(NewSolidColor(e, RGB(1, 1, 1)).Start()))
	assert.Equal(t, NoLEDStripConnected, Code(NewFlashColor(e, RGB(1, 1, 1), 1).Loop()))
	assert.Equal(t, NoLEDStripConnected, Code(NewPulseColor(e, RGB(1, 1, 1), 1, 5).Loop()))
	assert.Equal(t, NoLEDStripConnected, Code(NewRainbowColor(e, 1).Loop()))
}
