package core

// Color is a foreground color for a screen cell, stored as a lipgloss color
// string ("#rrggbb" or an ANSI 256 code such as "208").
// The zero value means the terminal default.
type Color string

// Predefined colors for game elements.
const (
	ColorDefault Color = ""
	ColorRed     Color = "9"
	ColorMagenta Color = "13"
	ColorYellow  Color = "11"
	ColorCyan    Color = "14"
	ColorGray    Color = "245"
	ColorBorder  Color = "240"
)

// IsDefault reports whether c is the terminal default color.
func (c Color) IsDefault() bool {
	return c == ColorDefault
}
