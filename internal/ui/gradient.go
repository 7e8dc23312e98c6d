package ui

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"
)

// RGB is an 8-bit-per-channel color.
type RGB struct{ R, G, B uint8 }

var (
	GradientStart = RGB{255, 182, 193} // pink
	GradientEnd   = RGB{128, 0, 128}   // purple
)

// Gradient interpolates linearly between GradientStart and GradientEnd for
// row index of total rows. A single row gets the start color.
func Gradient(index, total int) RGB {
	progress := float64(index) / float64(max(total-1, 1))
	lerp := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a) + (float64(b)-float64(a))*progress))
	}
	return RGB{
		R: lerp(GradientStart.R, GradientEnd.R),
		G: lerp(GradientStart.G, GradientEnd.G),
		B: lerp(GradientStart.B, GradientEnd.B),
	}
}

func (c RGB) Hex() string { return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B) }

func (c RGB) String() string { return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B) }

func (c RGB) Color() lipgloss.Color { return lipgloss.Color(c.Hex()) }

// RowTitle renders s in the gradient color for its row, or in the theme's
// title style when gradients are off.
func RowTitle(s string, index, total int) string {
	t := Current()
	if !t.Gradient {
		return t.Title.Render(s)
	}
	return lipgloss.NewStyle().Bold(true).Foreground(Gradient(index, total).Color()).Render(s)
}
