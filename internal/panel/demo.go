package panel

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/colornames"

	"flip3d-renderer/internal/overlay"
)

// Card is a generated panel: a solid colour with a centred caption.
type Card struct {
	Caption    string
	Background color.RGBA
	Text       color.RGBA
}

// DemoCards are the three panels of the view-flip demo.
var DemoCards = []Card{
	{Caption: "Hello World", Background: colornames.Firebrick, Text: colornames.White},
	{Caption: "Time 4 Fun", Background: colornames.Seagreen, Text: colornames.White},
	{Caption: "Good Bye", Background: colornames.Royalblue, Text: colornames.White},
}

// Fruits is the list flipped through by the list and cube styles.
var Fruits = []string{
	"Apple", "Avocado", "Banana", "Blueberry", "Coconut", "Durian", "Guava",
	"Kiwifruit", "Jackfruit", "Mango", "Olive", "Pear", "Sugar-apple",
}

// listShades alternate behind list rows so neighbouring rows stay apart.
var listShades = []color.RGBA{colornames.Lightsteelblue, colornames.Lightslategray}

// Render draws the card at w×h.
func (c Card) Render(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c.Background), image.Point{}, draw.Src)
	overlay.CenterLabel(img, img.Bounds(), c.Caption, c.Text)
	return img
}

// ListCards returns one card per name, shaded alternately.
func ListCards(names []string) []Card {
	cards := make([]Card, len(names))
	for i, n := range names {
		cards[i] = Card{Caption: n, Background: listShades[i%len(listShades)], Text: colornames.Black}
	}
	return cards
}

// Render generates every card at w×h.
func Render(cards []Card, w, h int) []*image.NRGBA {
	out := make([]*image.NRGBA, len(cards))
	for i, c := range cards {
		out[i] = c.Render(w, h)
	}
	return out
}

// LoadAll resolves every indexed image through c in name order. Entries
// that fail to decode are replaced by a grey card carrying their name.
func LoadAll(idx *Index, c *Cache, w, h int) []*image.NRGBA {
	names := idx.Names()
	out := make([]*image.NRGBA, len(names))
	for i, n := range names {
		img := c.Resolve(n)
		if img == nil {
			img = Card{Caption: n, Background: colornames.Gray, Text: colornames.White}.Render(w, h)
		}
		out[i] = img
	}
	return out
}

// Open loads every image under dir fitted to w×h, or generates demo cards
// when dir is empty: the fruit list when list is set, the three view
// cards otherwise.
func Open(dir string, list bool, w, h int) []*image.NRGBA {
	if dir == "" {
		if list {
			return Render(ListCards(Fruits), w, h)
		}
		return Render(DemoCards, w, h)
	}
	idx := BuildIndex(dir)
	return LoadAll(idx, NewCache(idx, w, h), w, h)
}
