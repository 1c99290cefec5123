// Package layout places stroke-font text on a 128x64 display.
//
// The screen is divided in a fixed grid of 3 lines of 8 character slots.
// Slots are 15 pixels wide and lines 22 pixels tall; each slot holds one
// 11x17 glyph drawn from the slot origin.
//
// Text that does not fit is dropped, never reported as an error: characters
// past the last slot of a line are not drawn, and characters without a glyph
// leave their slot empty. Use Split to find out how much of a message Wrap
// will show. The only error returned by rendering is a bus failure.
package layout

import (
	"image"

	"github.com/flavioheleno/ssd1306/glyph"
)

// Grid geometry.
const (
	Columns     = 8
	Lines       = 3
	Slots       = Columns * Lines
	ColumnPitch = 15
	LinePitch   = 22
)

// Surface is a framebuffer that glyphs are drawn on and flushed from.
// *ssd1306.Dev implements it.
type Surface interface {
	glyph.Canvas
	Flush() error
	Clear()
}

// SlotOrigin returns the top-left pixel of a slot. Slots are numbered from 0,
// left to right then top to bottom.
func SlotOrigin(slot int) image.Point {
	return image.Pt((slot%Columns)*ColumnPitch, (slot/Columns)*LinePitch)
}

// Screen renders text on a Surface using the slot grid.
type Screen struct {
	s Surface
}

// New returns a Screen drawing on s.
func New(s Surface) *Screen {
	return &Screen{s: s}
}

// Clear blanks the framebuffer. The display keeps showing the previous
// frame until the next character is drawn.
func (sc *Screen) Clear() {
	sc.s.Clear()
}

// Line draws text on line index (0 to 2), one rune per slot starting at the
// first column. Runes beyond the 8th are dropped; other indexes draw
// nothing.
func (sc *Screen) Line(index int, text string) error {
	if index < 0 || index >= Lines {
		return nil
	}
	return sc.render([]rune(text), index*Columns, (index+1)*Columns)
}

// Line1 draws text on the top line.
func (sc *Screen) Line1(text string) error {
	return sc.Line(0, text)
}

// Line2 draws text on the middle line.
func (sc *Screen) Line2(text string) error {
	return sc.Line(1, text)
}

// Line3 draws text on the bottom line.
func (sc *Screen) Line3(text string) error {
	return sc.Line(2, text)
}

// Flow draws text across all 24 slots in order, ignoring word boundaries.
// Runes beyond the 24th are dropped.
func (sc *Screen) Flow(text string) error {
	return sc.render([]rune(text), 0, Slots)
}

// Wrap draws text split at spaces over the three lines, as computed by
// Split. Text of 8 runes or less goes on the top line only, leaving the
// other two lines as they were.
func (sc *Screen) Wrap(text string) error {
	w := Split(text)
	for i, line := range w.Lines {
		if i > 0 && w.Single {
			break
		}
		if err := sc.Line(i, line); err != nil {
			return err
		}
	}
	return nil
}

// render draws runes into slots [first, limit). Each supported rune is drawn
// then flushed on its own; unsupported runes are skipped without a flush.
func (sc *Screen) render(runes []rune, first, limit int) error {
	for i, r := range runes {
		slot := first + i
		if slot >= limit {
			break
		}
		g, ok := glyph.Lookup(r)
		if !ok {
			continue
		}
		g.Draw(sc.s, SlotOrigin(slot))
		if err := sc.s.Flush(); err != nil {
			return err
		}
	}
	return nil
}
