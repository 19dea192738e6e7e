package rules

import "github.com/pkg/errors"

// ErrInvalidCellValue is returned when a value outside {0, 1} is decoded as a Cell
var ErrInvalidCellValue = errors.New("invalid cell value")

// Cell is the state of a single grid position
type Cell uint8

const (
	Dead Cell = 0
	Live Cell = 1
)

const (
	defaultGlyphLive = "█"
	defaultGlyphDead = "░"
)

// CellFromInt converts 0 or 1 into a Cell
func CellFromInt(v int) (Cell, error) {
	switch v {
	case 0:
		return Dead, nil
	case 1:
		return Live, nil
	}
	return Dead, errors.Wrapf(ErrInvalidCellValue, "[CellFromInt] got %d", v)
}

// CellFromDigit decodes an ASCII '0' or '1'. ok is false for any other rune.
func CellFromDigit(r rune) (c Cell, ok bool) {
	if r < '0' || r > '9' {
		return Dead, false
	}
	c, err := CellFromInt(int(r - '0'))
	return c, err == nil
}

// Int returns the stable integer value of the cell
func (c Cell) Int() int {
	return int(c)
}

// Glyph returns the display glyph for the cell
func (c Cell) Glyph(g Glyphs) string {
	if c == Live {
		return g.Live
	}
	return g.Dead
}

func (c Cell) String() string {
	return c.Glyph(DefaultGlyphs())
}

// Glyphs maps each Cell value to the text it is rendered as
type Glyphs struct {
	Dead string `json:"dead"`
	Live string `json:"alive"`
}

// DefaultGlyphs returns the block glyphs used when none are configured
func DefaultGlyphs() Glyphs {
	return Glyphs{Dead: defaultGlyphDead, Live: defaultGlyphLive}
}

// DigitGlyphs renders cells as the digits the board loader reads back
func DigitGlyphs() Glyphs {
	return Glyphs{Dead: "0", Live: "1"}
}
