package lightshow

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresetCount(t *testing.T) {
	e, _ := newTestEngine(LayoutRGB)
	assert.Equal(t, 5, e.PresetCount())
	assert.Len(t, e.Shows(), 5)
}

func TestStartOutOfRange(t *testing.T) {
	tt := []struct {
		show int
		want Error
	}{
		{-1, ShowIndexOutOfRange},
		{6, ShowIndexOutOfRange},
		{100, ShowIndexOutOfRange},
		// the range check is inclusive of the count
		{5, ShowUndefined},
	}

	for _, tc := range tt {
		t.Run(fmt.Sprintf("show %d", tc.show), func(t *testing.T) {
			e, strip := newTestEngine(LayoutRGB)
			assert.Equal(t, tc.want, Code(e.Start(tc.show)))
			assert.Zero(t, strip.Pushes())
		})
	}
}

func TestStartDefaultShows(t *testing.T) {
	white := RGB(0xff, 0xff, 0xff)
	red := RGB(0xff, 0, 0)
	green := RGB(0, 0xff, 0)
	blue := RGB(0, 0, 0xff)

	tt := []struct {
		show  int
		steps []Pixel
	}{
		{0, []Pixel{white}},
		{1, []Pixel{red}},
		{2, []Pixel{green}},
		{3, []Pixel{blue}},
		{4, []Pixel{red, green, blue, Black}},
	}

	for _, tc := range tt {
		t.Run(fmt.Sprintf("show %d", tc.show), func(t *testing.T) {
			e, strip := newTestEngine(LayoutRGB)
			require.NoError(t, e.Start(tc.show))

			require.Equal(t, len(tc.steps)*testFadeFrames, strip.Pushes())
			for i, c := range tc.steps {
				end := strip.Frames[(i+1)*testFadeFrames-1]
				assert.Equal(t, filled(testLEDs, c), end, "step %d", i)
			}
		})
	}
}

func TestStartCustomCatalog(t *testing.T) {
	catalog := Catalog{
		{Name: "amber", Steps: []Step{{Duration: 0, Color: RGB(0xff, 0xbf, 0)}}},
		{Name: "empty"},
		{Name: "slow", Steps: []Step{
			{Duration: 200 * time.Millisecond, Color: RGBW(0, 0, 0, 0xff)},
			{Duration: 0, Color: Black},
		}},
	}
	e, strip := newTestEngine(LayoutRGBW, WithCatalog(catalog))
	assert.Equal(t, 3, e.PresetCount())

	require.NoError(t, e.Start(0))
	assert.Equal(t, 1, strip.Pushes())
	assert.Equal(t, filled(testLEDs, RGB(0xff, 0xbf, 0)), strip.Last())

	assert.Equal(t, ShowUndefined, Code(e.Start(1)))
	assert.Equal(t, ShowUndefined, Code(e.Start(3)))
	assert.Equal(t, ShowIndexOutOfRange, Code(e.Start(4)))

	require.NoError(t, e.Start(2))
	assert.Equal(t, 1+3+1, strip.Pushes())
	assert.Equal(t, filled(testLEDs, RGBW(0, 0, 0, 0xff)), strip.Frames[3])
	assert.Equal(t, filled(testLEDs, Black), strip.Last())
}

func TestStartStopsOnPushFailure(t *testing.T) {
	e, strip := newTestEngine(LayoutRGB)
	strip.Fail = true
	assert.Equal(t, NoLEDStripConnected, Code(e.Start(4)))
	assert.Zero(t, strip.Pushes())
}
