package glyph

// table holds the stroke font. Letters are stored upper case only; Lookup
// folds lower case onto them. Space has no strokes but is still a glyph.
var table = map[rune]Glyph{
	'A': {
		{1, 15, 5, 1},
		{5, 1, 10, 15},
		{3, 11, 8, 11},
	},
	'B': {
		{1, 15, 1, 1},
		{1, 1, 6, 1},
		{6, 1, 8, 3},
		{8, 3, 8, 4},
		{8, 4, 6, 7},
		{5, 7, 1, 7},
		{6, 7, 9, 10},
		{9, 10, 9, 12},
		{9, 12, 6, 15},
		{6, 15, 1, 15},
	},
	'C': {
		{10, 2, 9, 1},
		{9, 1, 4, 1},
		{4, 1, 2, 3},
		{2, 3, 1, 7},
		{1, 7, 1, 12},
		{1, 12, 4, 15},
		{4, 15, 8, 15},
		{8, 15, 10, 13},
	},
	'D': {
		{1, 15, 1, 1},
		{1, 1, 6, 1},
		{6, 1, 9, 3},
		{9, 3, 9, 12},
		{9, 12, 6, 15},
		{6, 15, 1, 15},
	},
	'E': {
		{1, 15, 1, 1},
		{1, 1, 9, 1},
		{1, 7, 7, 7},
		{1, 15, 9, 15},
	},
	'F': {
		{1, 15, 1, 1},
		{1, 1, 9, 1},
		{1, 7, 6, 7},
	},
	'G': {
		{9, 2, 8, 1},
		{8, 1, 4, 1},
		{4, 1, 2, 3},
		{2, 3, 1, 7},
		{1, 7, 1, 12},
		{1, 12, 4, 15},
		{4, 15, 8, 15},
		{8, 15, 10, 13},
		{10, 13, 10, 9},
		{10, 9, 6, 9},
	},
	'H': {
		{1, 15, 1, 1},
		{1, 7, 9, 7},
		{9, 15, 9, 1},
	},
	'I': {
		{1, 1, 9, 1},
		{1, 15, 9, 15},
		{5, 15, 5, 1},
	},
	'J': {
		{9, 1, 9, 10},
		{9, 10, 7, 15},
		{7, 15, 3, 15},
		{3, 15, 1, 10},
	},
	'K': {
		{1, 15, 1, 1},
		{1, 9, 8, 1},
		{4, 7, 9, 15},
	},
	'L': {
		{1, 15, 1, 1},
		{1, 15, 9, 15},
	},
	'M': {
		{1, 15, 1, 1},
		{1, 1, 5, 7},
		{9, 1, 5, 7},
		{9, 15, 9, 1},
	},
	'N': {
		{1, 15, 1, 1},
		{1, 1, 9, 15},
		{9, 15, 9, 1},
	},
	'O': {
		{10, 5, 8, 1},
		{8, 1, 4, 1},
		{4, 1, 2, 3},
		{2, 3, 1, 7},
		{1, 7, 1, 12},
		{1, 12, 4, 15},
		{4, 15, 7, 15},
		{7, 15, 10, 12},
		{10, 12, 10, 5},
	},
	'P': {
		{1, 15, 1, 1},
		{1, 1, 7, 1},
		{7, 1, 9, 4},
		{9, 4, 9, 6},
		{9, 6, 6, 9},
		{5, 9, 1, 9},
	},
	'Q': {
		{10, 5, 8, 1},
		{8, 1, 4, 1},
		{4, 1, 2, 3},
		{2, 3, 1, 7},
		{1, 7, 1, 12},
		{1, 12, 4, 15},
		{4, 15, 7, 15},
		{7, 15, 10, 12},
		{10, 12, 10, 5},
		{6, 10, 10, 15},
	},
	'R': {
		{1, 15, 1, 1},
		{1, 1, 7, 1},
		{7, 1, 9, 4},
		{9, 4, 9, 6},
		{9, 6, 6, 9},
		{5, 9, 1, 9},
		{5, 9, 9, 15},
	},
	'S': {
		{9, 2, 7, 1},
		{7, 1, 3, 1},
		{3, 1, 2, 2},
		{3, 1, 2, 2},
		{2, 2, 1, 5},
		{1, 5, 5, 7},
		{5, 7, 9, 8},
		{9, 8, 10, 11},
		{10, 11, 10, 13},
		{10, 13, 7, 15},
		{7, 15, 4, 15},
		{4, 15, 1, 13},
	},
	'T': {
		{5, 15, 5, 1},
		{1, 1, 9, 1},
	},
	'U': {
		{1, 1, 1, 13},
		{1, 13, 3, 15},
		{3, 15, 7, 15},
		{7, 15, 9, 13},
		{9, 13, 9, 1},
	},
	'V': {
		{1, 1, 5, 15},
		{5, 15, 9, 1},
	},
	'W': {
		{1, 1, 3, 15},
		{3, 15, 5, 8},
		{5, 8, 8, 15},
		{8, 15, 10, 1},
	},
	'X': {
		{1, 1, 9, 15},
		{9, 1, 1, 15},
	},
	'Y': {
		{5, 15, 5, 7},
		{5, 7, 1, 1},
		{5, 7, 10, 1},
	},
	'Z': {
		{1, 1, 9, 1},
		{1, 15, 9, 1},
		{1, 15, 9, 15},
	},
	'0': {
		{10, 5, 8, 1},
		{8, 1, 4, 1},
		{4, 1, 2, 3},
		{2, 3, 1, 7},
		{1, 7, 1, 12},
		{1, 12, 4, 15},
		{4, 15, 7, 15},
		{7, 15, 10, 12},
		{10, 12, 10, 5},
		{9, 4, 2, 12},
	},
	'1': {
		{5, 15, 5, 1},
		{5, 1, 2, 3},
	},
	'2': {
		{1, 3, 2, 1},
		{2, 1, 7, 1},
		{7, 1, 9, 3},
		{9, 3, 9, 6},
		{9, 6, 2, 13},
		{2, 13, 1, 15},
		{1, 15, 10, 15},
	},
	'3': {
		{1, 3, 2, 1},
		{2, 1, 7, 1},
		{7, 1, 9, 3},
		{9, 3, 9, 5},
		{9, 5, 7, 7},
		{7, 7, 4, 7},
		{7, 8, 9, 9},
		{9, 9, 9, 12},
		{9, 12, 7, 15},
		{7, 15, 3, 15},
		{3, 15, 1, 13},
	},
	'4': {
		{8, 1, 8, 15},
		{1, 1, 1, 7},
		{1, 7, 9, 7},
	},
	'5': {
		{9, 1, 1, 1},
		{1, 1, 1, 7},
		{7, 7, 1, 7},
		{7, 8, 9, 9},
		{9, 9, 9, 12},
		{9, 12, 7, 15},
		{7, 15, 3, 15},
		{3, 15, 1, 13},
	},
	'6': {
		{10, 3, 8, 1},
		{8, 1, 4, 1},
		{4, 1, 2, 3},
		{2, 3, 1, 7},
		{1, 7, 1, 12},
		{1, 12, 4, 15},
		{4, 15, 7, 15},
		{7, 15, 10, 13},
		{10, 13, 10, 9},
		{10, 9, 8, 7},
		{8, 7, 4, 7},
		{4, 7, 2, 9},
	},
	'7': {
		{1, 1, 10, 1},
		{10, 1, 3, 15},
	},
	'8': {
		{4, 7, 2, 5},
		{2, 5, 2, 3},
		{2, 3, 3, 2},
		{3, 2, 4, 1},
		{4, 1, 6, 1},
		{6, 1, 7, 2},
		{7, 2, 8, 3},
		{8, 3, 8, 5},
		{8, 5, 6, 7},
		{1, 10, 1, 13},
		{1, 13, 3, 15},
		{3, 15, 7, 15},
		{7, 15, 9, 13},
		{9, 13, 9, 10},
		{9, 10, 6, 7},
		{6, 7, 4, 7},
		{4, 7, 2, 9},
	},
	'9': {
		{10, 6, 8, 8},
		{8, 8, 3, 8},
		{3, 8, 1, 5},
		{1, 5, 1, 3},
		{1, 3, 3, 1},
		{3, 1, 8, 1},
		{8, 1, 10, 3},
		{10, 3, 10, 10},
		{10, 10, 9, 13},
		{9, 13, 7, 15},
		{7, 15, 3, 15},
		{3, 15, 1, 13},
	},
	'.': {
		{1, 14, 2, 14},
		{1, 15, 2, 15},
	},
	'!': {
		{1, 14, 1, 15},
		{1, 1, 1, 10},
	},
	'?': {
		{5, 14, 6, 14},
		{5, 15, 6, 15},
		{5, 10, 5, 8},
		{5, 8, 8, 6},
		{8, 6, 9, 2},
		{8, 1, 4, 1},
	},
	'/': {
		{9, 1, 1, 15},
	},
	':': {
		{1, 14, 2, 14},
		{1, 15, 2, 15},
		{1, 6, 2, 6},
		{1, 5, 2, 5},
	},
	',': {
		{1, 13, 1, 14},
		{2, 13, 2, 17},
		{1, 17, 2, 17},
	},
	'&': {
		{4, 7, 2, 5},
		{2, 5, 2, 3},
		{2, 3, 3, 2},
		{3, 2, 4, 1},
		{4, 1, 6, 1},
		{6, 1, 7, 2},
		{7, 2, 8, 3},
		{8, 3, 8, 4},
		{8, 4, 6, 6},
		{6, 6, 1, 10},
		{1, 10, 1, 13},
		{1, 13, 3, 15},
		{3, 15, 6, 15},
		{6, 15, 9, 9},
		{4, 8, 10, 15},
	},
	'+': {
		{5, 5, 5, 11},
		{2, 8, 8, 8},
	},
	'-': {
		{2, 8, 8, 8},
	},
	'=': {
		{2, 6, 8, 6},
		{2, 9, 8, 9},
	},
	' ': {},
}
