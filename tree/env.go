package tree

import (
	"time"

	"github.com/gogpu/indiepixel/fonts"
)

// Env is what Build needs beyond the definition itself.
type Env struct {
	fonts    *fonts.Registry
	baseDir  string
	now      func() time.Time
	location *time.Location
	assets   *AssetCache
}

// EnvOption configures an Env.
type EnvOption func(*Env)

// NewEnv returns an environment with the default font registry, the current
// directory as base, the system clock and the local time zone.
func NewEnv(opts ...EnvOption) *Env {
	e := &Env{
		fonts:    fonts.Default(),
		now:      time.Now,
		location: time.Local,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// WithFonts sets the registry text fonts are looked up in.
func WithFonts(r *fonts.Registry) EnvOption {
	return func(e *Env) {
		if r != nil {
			e.fonts = r
		}
	}
}

// WithBaseDir sets the directory relative image paths resolve against.
func WithBaseDir(dir string) EnvOption {
	return func(e *Env) {
		e.baseDir = dir
	}
}

// WithAssetCache makes image nodes share decoded images through c.
func WithAssetCache(c *AssetCache) EnvOption {
	return func(e *Env) {
		e.assets = c
	}
}

// WithClock sets the clock templates read the time from.
func WithClock(now func() time.Time) EnvOption {
	return func(e *Env) {
		if now != nil {
			e.now = now
		}
	}
}

// WithLocation sets the time zone templates format times in.
func WithLocation(loc *time.Location) EnvOption {
	return func(e *Env) {
		if loc != nil {
			e.location = loc
		}
	}
}

// Now returns the current time in the environment's time zone.
func (e *Env) Now() time.Time {
	return e.now().In(e.location)
}

// Fonts returns the font registry.
func (e *Env) Fonts() *fonts.Registry {
	return e.fonts
}
