package encode

import (
	"fmt"
	"image"
	"io"
	"time"

	"github.com/HugoSmits86/nativewebp"

	"github.com/gogpu/indiepixel/canvas"
)

// webpBackground is opaque black in the BGRA order of the ANIM chunk.
const webpBackground = 0xff000000

// WebP writes frames as a lossless WebP. A single frame is written as a still
// image; several frames become an animation that loops forever, showing each
// frame for delay.
func WebP(w io.Writer, frames []*canvas.Surface, delay time.Duration) error {
	delays := make([]time.Duration, len(frames))
	for i := range delays {
		delays[i] = delay
	}
	return WebPDelays(w, frames, delays)
}

// WebPDelays is like WebP with an explicit delay for every frame.
func WebPDelays(w io.Writer, frames []*canvas.Surface, delays []time.Duration) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	if len(delays) != len(frames) {
		return fmt.Errorf("%w: %d frames, %d delays", ErrDelayCount, len(frames), len(delays))
	}

	if len(frames) == 1 {
		if err := nativewebp.Encode(w, frames[0].Image(), nil); err != nil {
			return fmt.Errorf("encode: webp: %w", err)
		}
		return nil
	}

	ani := &nativewebp.Animation{
		Images:          make([]image.Image, len(frames)),
		Durations:       make([]uint, len(frames)),
		Disposals:       make([]uint, len(frames)),
		LoopCount:       0,
		BackgroundColor: webpBackground,
	}
	for i, f := range frames {
		ani.Images[i] = f.Image()
		ani.Durations[i] = milliseconds(delays[i])
	}
	if err := nativewebp.EncodeAll(w, ani, nil); err != nil {
		return fmt.Errorf("encode: webp: %w", err)
	}
	return nil
}

// milliseconds converts d to WebP frame duration units, at least one.
func milliseconds(d time.Duration) uint {
	return uint(max(1, d.Round(time.Millisecond).Milliseconds())) //nolint:gosec // clamped to >= 1
}
