package main

import (
	"bytes"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/webp"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRenderGIF(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "blink.yaml", `
root:
  delay: 250
  child:
    animation:
      children:
        - rect: {color: red}
        - rect: {color: blue}
`)
	out := filepath.Join(dir, "blink.gif")

	stdout, err := run(t, "render", src, "-o", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "2 frame(s)")

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	g, err := gif.DecodeAll(f)
	require.NoError(t, err)
	assert.Len(t, g.Image, 2)
	assert.Equal(t, []int{25, 25}, g.Delay)
	assert.Equal(t, 64, g.Config.Width)
	assert.Equal(t, 32, g.Config.Height)
}

func TestRenderWebPByDefault(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "dot.yaml", "rect: {width: 2, height: 2, color: white}\n")
	t.Chdir(dir)

	stdout, err := run(t, "render", src)
	require.NoError(t, err)
	assert.Contains(t, stdout, "dot.webp")

	f, err := os.Open(filepath.Join(dir, "dot.webp"))
	require.NoError(t, err)
	defer f.Close()
	img, err := webp.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	r, _, _, _ := img.At(1, 1).RGBA()
	assert.Equal(t, uint32(0xffff), r)
}

func TestRenderPNGWithoutRoot(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "dot.json", `{"rect": {"width": 2, "height": 2, "color": "white"}}`)
	out := filepath.Join(dir, "dot.png")

	cfg := writeFile(t, dir, "indiepixel.toml", "[render]\nwidth = 16\nheight = 8\n")
	_, err := run(t, "--config", cfg, "render", src, "-o", out)
	require.NoError(t, err)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 16, img.Bounds().Dx())
	assert.Equal(t, 8, img.Bounds().Dy())

	r, _, _, _ := img.At(1, 1).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	r, _, _, _ = img.At(5, 5).RGBA()
	assert.Equal(t, uint32(0), r)
}

func TestRenderErrors(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "bad.yaml", "sprite: {}\n")
	_, err := run(t, "render", src)
	assert.Error(t, err)

	good := writeFile(t, dir, "good.yaml", "rect: {}\n")
	_, err = run(t, "render", good, "-o", filepath.Join(dir, "out.bmp"))
	assert.ErrorContains(t, err, "unsupported output format")

	_, err = run(t, "render")
	assert.Error(t, err)
}

func TestFonts(t *testing.T) {
	out, err := run(t, "fonts")
	require.NoError(t, err)
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "7x13")
	assert.Contains(t, out, "inconsolata")
}

func TestConfigErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, "--config", filepath.Join(dir, "missing.toml"), "fonts")
	assert.Error(t, err)

	cfg := writeFile(t, dir, "tz.toml", "[clock]\ntimezone = \"Nowhere/Bogus\"\n")
	_, err = run(t, "--config", cfg, "fonts")
	assert.ErrorContains(t, err, "clock.timezone")

	_, err = run(t, "--log-level", "loud", "fonts")
	assert.Error(t, err)
}
