package spaces

import (
	"image"
	"image/color"
	"image/draw"
	"strconv"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Status bar sizing, in points.
const (
	DigitWidth        = 12
	DigitSpacing      = 6
	HorizontalPadding = 8
	IndicatorHeight   = 22
)

// Indicator renders the "which space am I on" strip.
type Indicator struct {
	Active int
	Total  int
}

// NewIndicator builds an indicator from a position.
func NewIndicator(pos Position) Indicator {
	return Indicator{Active: pos.Number, Total: pos.Total}
}

// Valid reports whether there is anything to draw.
func (ind Indicator) Valid() bool {
	return ind.Total > 0 && ind.Active > 0 && ind.Active <= ind.Total
}

// String renders e.g. "1 [2] 3". An invalid indicator renders as "-".
func (ind Indicator) String() string {
	if !ind.Valid() {
		return "-"
	}
	parts := make([]string, ind.Total)
	for i := 1; i <= ind.Total; i++ {
		if i == ind.Active {
			parts[i-1] = "[" + strconv.Itoa(i) + "]"
		} else {
			parts[i-1] = strconv.Itoa(i)
		}
	}
	return strings.Join(parts, " ")
}

// Width returns the strip width in points.
func (ind Indicator) Width() int {
	if ind.Total <= 0 {
		return IndicatorHeight
	}
	return ind.Total*DigitWidth + (ind.Total-1)*DigitSpacing + HorizontalPadding
}

var (
	activeColor   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	inactiveColor = color.RGBA{R: 150, G: 150, B: 150, A: 255}
)

// Render draws the strip onto a transparent image, one digit per space. The
// active digit is drawn in the primary color and emboldened by a one pixel
// overstrike.
func (ind Indicator) Render() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, ind.Width(), IndicatorHeight))
	draw.Draw(img, img.Bounds(), image.Transparent, image.Point{}, draw.Src)
	if !ind.Valid() {
		return img
	}

	face := basicfont.Face7x13
	baseline := (IndicatorHeight+face.Ascent)/2 - 1
	x := HorizontalPadding / 2
	for i := 1; i <= ind.Total; i++ {
		label := strconv.Itoa(i)
		col := inactiveColor
		if i == ind.Active {
			col = activeColor
		}
		// Center the label within its digit cell.
		textW := font.MeasureString(face, label).Ceil()
		lx := x + (DigitWidth-textW)/2
		drawLabel(img, face, label, lx, baseline, col)
		if i == ind.Active {
			drawLabel(img, face, label, lx+1, baseline, col)
		}
		x += DigitWidth + DigitSpacing
	}
	return img
}

func drawLabel(img *image.RGBA, face font.Face, label string, x, y int, col color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(label)
}
