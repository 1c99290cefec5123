// Package glyph is a stroke font for dot-matrix displays.
//
// Each character is an ordered list of straight segments inside an 11x17
// pixel cell (the comma tail reaches row 17). Glyphs are drawn on anything
// that can rasterize a line, such as *ssd1306.Dev.
//
// Supported characters are A-Z (case-insensitive), 0-9, the punctuation
// . ! ? / : , & + - = and space.
package glyph

import (
	"image"
	"slices"
)

// Cell dimensions, in pixels, that every segment fits in.
const (
	CellWidth  = 11
	CellHeight = 17
)

// Segment is one stroke of a glyph, from (X0, Y0) to (X1, Y1), relative to
// the glyph origin.
type Segment struct {
	X0, Y0, X1, Y1 int
}

// Glyph is the ordered list of strokes of one character.
type Glyph []Segment

// Canvas rasterizes lines.
type Canvas interface {
	DrawLine(x0, y0, x1, y1 int, on bool)
}

// Lookup returns the glyph for r. Letters match regardless of case. The
// second result is false when the font has no glyph for r.
func Lookup(r rune) (Glyph, bool) {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	g, ok := table[r]
	return g, ok
}

// Supported returns every character with a glyph, in ascending order.
func Supported() []rune {
	runes := make([]rune, 0, len(table))
	for r := range table {
		runes = append(runes, r)
	}
	slices.Sort(runes)
	return runes
}

// Draw lights each segment of g on c, in order, offset by origin.
func (g Glyph) Draw(c Canvas, origin image.Point) {
	for _, s := range g {
		c.DrawLine(origin.X+s.X0, origin.Y+s.Y0, origin.X+s.X1, origin.Y+s.Y1, true)
	}
}

// Bounds returns the smallest rectangle covering every segment endpoint,
// relative to the glyph origin. It is empty for glyphs without strokes.
func (g Glyph) Bounds() image.Rectangle {
	var r image.Rectangle
	for i, s := range g {
		sr := image.Rect(s.X0, s.Y0, s.X1, s.Y1)
		sr.Max = sr.Max.Add(image.Pt(1, 1))
		if i == 0 {
			r = sr
			continue
		}
		r = r.Union(sr)
	}
	return r
}
