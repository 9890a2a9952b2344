package panel

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

func writePNG(t *testing.T, path string, w, h int, c color.NRGBA) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func writeJPEG(t *testing.T, path string, w, h int) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, jpeg.Encode(f, image.NewGray(image.Rect(0, 0, w, h)), nil))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "a.png")
	writePNG(t, p, 4, 3, color.NRGBA{R: 10, G: 20, B: 30, A: 40})

	img, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 3), img.Bounds())
	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 40}, img.NRGBAAt(1, 1))

	_, err = Load(filepath.Join(dir, "a.gif"))
	assert.ErrorContains(t, err, "unknown extension")

	_, err = Load(filepath.Join(dir, "missing.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	empty := filepath.Join(dir, "empty.tga")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	_, err = Load(empty)
	assert.Error(t, err)
}

func TestLoadJPEGIsOpaque(t *testing.T) {
	p := filepath.Join(t.TempDir(), "g.jpg")
	writeJPEG(t, p, 8, 8)

	img, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, uint8(255), img.NRGBAAt(3, 3).A)
}

func TestToNRGBAShiftsOrigin(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 7, 7))
	src.Set(5, 5, color.RGBA{R: 255, A: 255})
	dst := ToNRGBA(src)
	assert.Equal(t, image.Rect(0, 0, 2, 2), dst.Bounds())
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, dst.NRGBAAt(0, 0))
}

func TestBuildIndex(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.Mkdir(sub, 0o755))

	writeJPEG(t, filepath.Join(dir, "Beta.jpg"), 2, 2)
	writePNG(t, filepath.Join(sub, "beta.png"), 2, 2, color.NRGBA{A: 255})
	writePNG(t, filepath.Join(dir, "alpha.png"), 2, 2, color.NRGBA{A: 255})
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	idx := BuildIndex(dir)
	assert.Equal(t, 2, idx.Len())
	assert.Equal(t, []string{"alpha", "beta"}, idx.Names())

	p, ok := idx.ResolvePath(`panels\BETA.tga`)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(sub, "beta.png"), p)

	_, ok = idx.ResolvePath("gamma")
	assert.False(t, ok)
}

func TestCacheFitsAndReuses(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "big.png"), 40, 20, color.NRGBA{G: 200, A: 255})
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.png"), []byte("nope"), 0o644))

	idx := BuildIndex(dir)
	c := NewCache(idx, 10, 8)

	img := c.Resolve("big")
	require.NotNil(t, img)
	assert.Equal(t, image.Rect(0, 0, 10, 8), img.Bounds())
	assert.Same(t, img, c.Resolve("BIG"))

	assert.Nil(t, c.Resolve("broken"))
	assert.Nil(t, c.Resolve("absent"))

	all := LoadAll(idx, c, 10, 8)
	require.Len(t, all, 2)
	assert.Equal(t, image.Rect(0, 0, 10, 8), all[1].Bounds())
}

func TestFit(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 6, 6))
	assert.Same(t, img, Fit(img, 6, 6))
	assert.Equal(t, image.Rect(0, 0, 3, 9), Fit(img, 3, 9).Bounds())
}

func TestCardRender(t *testing.T) {
	img := DemoCards[0].Render(120, 60)
	bg := colornames.Firebrick
	assert.Equal(t, color.NRGBA{R: bg.R, G: bg.G, B: bg.B, A: 255}, img.NRGBAAt(0, 0))

	var text int
	for y := 0; y < 60; y++ {
		for x := 0; x < 120; x++ {
			if img.NRGBAAt(x, y).G > 200 {
				text++
			}
		}
	}
	assert.Greater(t, text, 0, "caption drawn")

	cards := ListCards(Fruits)
	require.Len(t, cards, 13)
	assert.Equal(t, "Sugar-apple", cards[12].Caption)
	assert.NotEqual(t, cards[0].Background, cards[1].Background)
	assert.Len(t, Render(cards, 8, 8), 13)
}

func TestOpen(t *testing.T) {
	assert.Len(t, Open("", false, 8, 8), 3)
	assert.Len(t, Open("", true, 8, 8), 13)

	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "one.png"), 3, 3, color.NRGBA{A: 255})
	writePNG(t, filepath.Join(dir, "two.png"), 3, 3, color.NRGBA{A: 255})
	got := Open(dir, true, 8, 4)
	require.Len(t, got, 2)
	assert.Equal(t, image.Rect(0, 0, 8, 4), got[0].Bounds())
}
