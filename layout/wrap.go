package layout

// defaultCut is the cut index used when no space qualifies for a line.
const defaultCut = Slots - 1

// Wrapped is the result of splitting a message over the three lines.
type Wrapped struct {
	// Lines holds the text of each line. It may be longer than Columns, in
	// which case the tail is not shown.
	Lines [Lines]string
	// Cuts holds the rune index ending each line. The rune at a cut is a
	// space, or defaultCut when no space qualified. Zero when Single.
	Cuts [Lines]int
	// Single is set when the whole message fits the top line.
	Single bool

	runes []rune
	spans [Lines][2]int // rune ranges, clamped to the message
}

// Split breaks text at spaces for display on the 3x8 grid.
//
// Messages of up to 8 runes go on the top line as they are. Longer messages
// are cut at the last space before index 8, the last space strictly between
// 8 and 16, and the last space strictly between 16 and 24. A line with no
// qualifying space is cut at index 23. The space at each cut is dropped.
// Nothing past the third cut is shown, and neither is anything past the 8th
// rune of a line.
func Split(text string) Wrapped {
	runes := []rune(text)
	w := Wrapped{runes: runes}
	if len(runes) <= Columns {
		w.Single = true
		w.Lines[0] = text
		w.spans[0] = [2]int{0, len(runes)}
		return w
	}

	cut1, cut2, cut3 := defaultCut, defaultCut, defaultCut
	for i, r := range runes {
		if r != ' ' {
			continue
		}
		switch {
		case i < Columns:
			cut1 = i
		case i > Columns && i < 2*Columns:
			cut2 = i
		case i > 2*Columns && i < Slots:
			cut3 = i
		}
	}
	w.Cuts = [Lines]int{cut1, cut2, cut3}

	starts := [Lines]int{0, cut1 + 1, cut2 + 1}
	for i := range w.Lines {
		lo, hi := clamp(starts[i], w.Cuts[i], len(runes))
		w.spans[i] = [2]int{lo, hi}
		w.Lines[i] = string(runes[lo:hi])
	}
	return w
}

// clamp bounds the slice [lo:hi] to a sequence of length n. An inverted
// range becomes empty.
func clamp(lo, hi, n int) (int, int) {
	hi = min(hi, n)
	lo = min(lo, hi)
	return lo, hi
}

// Dropped returns how many visible runes of the message have no slot:
// runes past the 8th of a line and runes outside every line. Spaces do not
// count since they draw nothing.
func (w Wrapped) Dropped() int {
	shown := make([]bool, len(w.runes))
	for _, sp := range w.spans {
		for i := sp[0]; i < sp[1] && i < sp[0]+Columns; i++ {
			shown[i] = true
		}
	}
	n := 0
	for i, r := range w.runes {
		if !shown[i] && r != ' ' {
			n++
		}
	}
	return n
}
