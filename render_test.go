package indiepixel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/indiepixel/colors"
	"github.com/gogpu/indiepixel/fonts"
)

// kitchenSink builds a tree that exercises every widget.
func kitchenSink(t *testing.T) *Root {
	t.Helper()
	text, err := NewText(nil, "12:34", WithColor(colors.MustParse("#ffaa00")))
	require.NoError(t, err)
	wrapped, err := NewWrappedText(nil, "tiny words here", WithWidth(30), WithAlign(fonts.AlignCenter))
	require.NoError(t, err)
	pie, err := NewPieChart([]colors.Color{red, green}, []float64{3, 1}, WithDiameter(12))
	require.NoError(t, err)

	blink := NewAnimation([]Widget{
		NewRect(WithWidth(3), WithHeight(3), WithColor(red)),
		NewRect(WithWidth(3), WithHeight(3)),
		NewCircle(NewRect(WithWidth(1), WithHeight(1), WithColor(red)), WithDiameter(6), WithColor(green)),
	}, WithLabel("blink"))

	return NewRoot(NewColumn([]Widget{
		NewRow([]Widget{
			NewBox(text, WithPadding(1), WithBackground(colors.MustParse("navy"))),
			blink,
		}, WithExpand(true)),
		NewStack([]Widget{pie, wrapped}),
	}), WithDelay(250*time.Millisecond))
}

func TestRender(t *testing.T) {
	root := kitchenSink(t)
	frames := Render(root)
	require.Len(t, frames, 3)
	for _, f := range frames {
		assert.Equal(t, 64, f.Width())
		assert.Equal(t, 32, f.Height())
	}
	assert.False(t, frames[0].Equal(frames[1]), "animation frames differ")
}

func TestRenderIsDeterministic(t *testing.T) {
	first := Render(kitchenSink(t))
	second := Render(kitchenSink(t))
	require.Len(t, second, len(first))
	for i := range first {
		assert.True(t, first[i].Equal(second[i]), "frame %d", i)
	}

	root := kitchenSink(t)
	again := Render(root)
	for i := range first {
		assert.Equal(t, first[i].Pix(), again[i].Pix(), "frame %d", i)
	}
}

func TestRenderSize(t *testing.T) {
	frames := Render(NewRect())
	require.Len(t, frames, 1)
	assert.Equal(t, 64, frames[0].Width())
	assert.Equal(t, 32, frames[0].Height())

	frames = Render(NewRoot(NewRect(), WithCanvasSize(16, 8)))
	assert.Equal(t, 16, frames[0].Width())
	assert.Equal(t, 8, frames[0].Height())

	frames = Render(NewRoot(NewRect()), WithRenderSize(128, 64))
	assert.Equal(t, 128, frames[0].Width())
	assert.Equal(t, 64, frames[0].Height())
}

func TestFramesStopsEarly(t *testing.T) {
	ws, ps := probes(1, 1, 1, 1)
	n := 0
	for frame, s := range Frames(NewAnimation(ws)) {
		assert.Equal(t, n, frame)
		assert.NotNil(t, s)
		n++
		if frame == 1 {
			break
		}
	}
	assert.Equal(t, 2, n)
	assert.Empty(t, ps[2].calls)
	assert.Empty(t, ps[3].calls)
}

func TestRenderStartsBlack(t *testing.T) {
	frames := Render(NewRoot(NewRect()))
	assert.Zero(t, countPainted(frames[0]))
}
