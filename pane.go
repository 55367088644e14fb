package pane

import "image"

// Point is a position in integer pixel coordinates. Which coordinate space it
// lives in (global, parent, or window-local) depends on context; the origin is
// at the top-left with Y increasing downward.
type Point struct {
	X, Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p translated by -q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Rect is an axis-aligned rectangle in integer pixel coordinates.
// X and Y locate the top-left corner; W and H are the size.
type Rect struct {
	X, Y, W, H int
}

// IsEmpty reports whether the rectangle covers no pixels.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// Min returns the top-left corner.
func (r Rect) Min() Point {
	return Point{r.X, r.Y}
}

// Local returns the rectangle moved to the origin: (0, 0, W, H).
func (r Rect) Local() Rect {
	return Rect{0, 0, r.W, r.H}
}

// Contains reports whether the point lies inside the rectangle.
// The right and bottom edges are exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W &&
		p.Y >= r.Y && p.Y < r.Y+r.H
}

// Intersects reports whether r and other overlap by at least one pixel.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.W &&
		r.X+r.W > other.X &&
		r.Y < other.Y+other.H &&
		r.Y+r.H > other.Y
}

// Intersect returns the overlap of r and other.
// If they do not overlap, the result is empty.
func (r Rect) Intersect(other Rect) Rect {
	x0 := max(r.X, other.X)
	y0 := max(r.Y, other.Y)
	x1 := min(r.X+r.W, other.X+other.W)
	y1 := min(r.Y+r.H, other.Y+other.H)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

// Translate returns r moved by d.
func (r Rect) Translate(d Point) Rect {
	return Rect{r.X + d.X, r.Y + d.Y, r.W, r.H}
}

// Inset returns r shrunk by n pixels on every side.
func (r Rect) Inset(n int) Rect {
	return Rect{r.X + n, r.Y + n, r.W - 2*n, r.H - 2*n}
}

// Image converts r to the standard library's rectangle representation.
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

// EventKind identifies a kind of event flowing through the window tree.
type EventKind uint8

const (
	EventMouseMove EventKind = iota // pointer moved; carries a position and held-button mask
	EventMouseDown                  // pointer button pressed; carries a position and button
	EventMouseUp                    // pointer button released; carries a position and button
	EventKeyDown                    // keyboard key pressed
	EventKeyUp                      // keyboard key released
	EventChange                     // a model or widget changed state (synthetic)
	EventClick                      // press then release over the same control (synthetic)
	EventDrop                       // payload delivered from a completed drag (synthetic, deferred)
)

// MouseButton identifies a pointer button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) button
	MouseButtonRight                     // secondary (right) button
	MouseButtonMiddle                    // middle button
)

// ButtonMask is a bitmask of pressed pointer buttons.
type ButtonMask uint8

// Mask returns the mask bit for this button.
func (b MouseButton) Mask() ButtonMask {
	return 1 << b
}

// recognized reports whether this button participates in pointer capture.
func (b MouseButton) recognized() bool {
	return b <= MouseButtonMiddle
}

// ColorRole names a slot in a [ColorTheme].
type ColorRole uint8

const (
	RoleBackground         ColorRole = iota // window/body fill
	RoleForeground                          // figure, frames, and text
	RoleHighlight                           // raised bevel edge
	RoleLowlight                            // sunken bevel edge
	RoleSelectedBackground                  // fill while selected
	RoleSelectedForeground                  // figure while selected
	numColorRoles
)

// FontPurpose selects a font from the root window's font table. It is an open
// enumeration: collaborators may register faces under their own purposes.
type FontPurpose string

const (
	FontLabel FontPurpose = "label" // small annotations and captions
	FontText  FontPurpose = "text"  // body text and widget labels
)

// DropPolicy decides what happens to a drag whose Drop event no window
// accepts.
type DropPolicy uint8

const (
	// DropDiscard deletes the follower immediately; the payload is lost.
	DropDiscard DropPolicy = iota
	// DropSnapBack animates the follower back to where the drag started
	// before deleting it.
	DropSnapBack
)
