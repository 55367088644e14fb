package pane

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorTheme answers named [ColorRole] slots with concrete colors. A theme
// stores only HSV values per role plus a shared hue and saturation, so a
// derived theme can be recolored while preserving its value structure.
//
// Themes resolve hierarchically: [Window.Theme] walks up the parent chain to
// the nearest window that owns one. The root must always supply a theme.
type ColorTheme struct {
	hue    float64 // degrees, 0-360
	sat    float64 // 0-1
	values [numColorRoles]float64
}

// NewColorTheme returns the default achromatic theme: light gray background,
// black figure, white/black bevel edges, lighter selected background.
func NewColorTheme() *ColorTheme {
	t := &ColorTheme{}
	t.values[RoleBackground] = 0.75
	t.values[RoleForeground] = 0
	t.values[RoleHighlight] = 1
	t.values[RoleLowlight] = 0
	t.values[RoleSelectedBackground] = 0.88
	t.values[RoleSelectedForeground] = 0
	return t
}

// Color returns the concrete color for a role.
func (t *ColorTheme) Color(role ColorRole) color.RGBA {
	r, g, b := colorful.Hsv(t.hue, t.sat, t.values[role]).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Colored returns a copy of the theme with the given hue (degrees, 0-360) and
// saturation (0-1). The per-role values are preserved.
func (t *ColorTheme) Colored(hue, saturation float64) *ColorTheme {
	c := *t
	c.hue = hue
	c.sat = saturation
	return &c
}

// InvertedValue returns a copy with every role's value flipped (v -> 1-v).
func (t *ColorTheme) InvertedValue() *ColorTheme {
	c := *t
	for i := range c.values {
		c.values[i] = 1 - c.values[i]
	}
	return &c
}

// WithValue returns a copy with the given role's value (0-1) replaced.
func (t *ColorTheme) WithValue(role ColorRole, value float64) *ColorTheme {
	c := *t
	c.values[role] = value
	return &c
}
