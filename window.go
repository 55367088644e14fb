package pane

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// dirtyBacklogWarn is the dirty-rect count past which a warning is logged.
// A backlog this deep means layout churn, not corruption.
const dirtyBacklogWarn = 8

// Window is a node in the retained-mode UI tree: a rectangular,
// possibly-rendered, possibly-input-handling region of its parent.
//
// Children are ordered front to back: index 0 is the topmost child and the
// parent's "active" child. A window's rect is expressed in its parent's
// coordinate space; the root's space is the destination surface. The parent
// link is a back-reference only; the child list is the sole ownership edge.
//
// Behavior is attached through the exported callback fields. Each On* handler
// receives the event with Pos already mapped to this window's local space and
// reports whether it handled the event; a nil handler handles nothing. A
// window that accepts an EventMouseDown for a recognized button becomes the
// pointer-capture owner until all buttons are released.
type Window struct {
	Observable

	parent   *Window
	children []*Window

	rect      Rect
	localRect Rect

	visible bool
	enabled bool
	active  bool

	// Modal makes this window swallow events that land in its subtree but
	// that neither it nor any descendant handles, so they never reach
	// siblings or ancestors (focus-trap behavior).
	Modal bool

	// dirtyRects lists regions awaiting repaint, in this window's own
	// coordinate space. Empty after a compositor pass.
	dirtyRects []Rect

	theme *ColorTheme

	// Root-only state. The pointer-capture owner and the deferred event
	// queue are per-tree, held on the root so independent trees (and
	// tests) do not interfere.
	isRoot    bool
	capture   *captureState
	fonts     map[FontPurpose]text.Face
	queue     []*Event
	returning []*dragWindow

	// Image, when set, is blitted centered and clipped as the window's
	// content; otherwise Text is rendered, if any. Either may be left
	// empty: the paint path always has a flat-color fallback.
	Image *ebiten.Image
	Text  string

	// Data is the opaque payload a drag copies from its source and a drop
	// target inspects. The toolkit never interprets it.
	Data map[string]any

	// Painter replaces the default paint routine. It must cover the whole
	// surface it is given and return the regions it changed; returning nil
	// means the entire surface.
	Painter func(*Surface) []Rect

	// OnLayout is invoked after Resize with the previous rect so the
	// window can reposition its children. The toolkit never auto-lays-out.
	OnLayout func(oldRect Rect)

	// OnActivation is invoked when this window becomes (or stops being)
	// the front child of the root.
	OnActivation func(active bool)

	// Per-kind event handlers. Nil means "not handled".
	OnMouseMove func(*Event) bool
	OnMouseDown func(*Event) bool
	OnMouseUp   func(*Event) bool
	OnKeyDown   func(*Event) bool
	OnKeyUp     func(*Event) bool
	OnChange    func(*Event) bool
	OnClick     func(*Event) bool
	OnDrop      func(*Event) bool
}

// NewWindow creates a window with the given rect (in parent coordinates) and
// attaches it to parent at the front of the child list. A nil parent creates
// a detached root-capable window.
func NewWindow(parent *Window, rect Rect) *Window {
	w := &Window{
		visible:   true,
		enabled:   true,
		rect:      rect,
		localRect: rect.Local(),
	}
	if parent != nil {
		parent.AddChild(w)
	}
	return w
}

// --- Tree ---

// Parent returns this window's parent, or nil for a root.
func (w *Window) Parent() *Window {
	return w.parent
}

// Children returns the child list, front (index 0) to back.
// The returned slice MUST NOT be mutated by the caller.
func (w *Window) Children() []*Window {
	return w.children
}

// Root returns the topmost ancestor (the window itself if detached).
func (w *Window) Root() *Window {
	r := w
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// AddChild inserts child at the front of the child list (topmost) and marks
// this window dirty. If child already has a parent it is detached first.
// Panics if child is nil or the insertion would create a cycle.
func (w *Window) AddChild(child *Window) {
	if child == nil {
		panic("pane: cannot add nil child")
	}
	if isAncestor(child, w) {
		panic("pane: adding child would create a cycle")
	}
	if child.parent != nil {
		child.parent.removeChildByPtr(child)
	}
	if w.isRoot && len(w.children) > 0 {
		w.children[0].setActive(false)
	}
	child.parent = w
	w.children = append(w.children, nil)
	copy(w.children[1:], w.children)
	w.children[0] = child
	w.Dirty()
	if w.isRoot {
		child.setActive(true)
	}
}

// RemoveChild detaches child from this window without marking anything dirty;
// see [Window.Delete] for the destroy operation. Panics if child's parent is
// not this window.
func (w *Window) RemoveChild(child *Window) {
	if child.parent != w {
		panic("pane: child's parent is not this window")
	}
	wasFront := len(w.children) > 0 && w.children[0] == child
	if w.isRoot && wasFront {
		child.setActive(false)
	}
	w.removeChildByPtr(child)
	child.parent = nil
	if w.isRoot && wasFront && len(w.children) > 0 {
		w.children[0].setActive(true)
	}
}

// Delete disconnects this window from its parent, marking the vacated region
// of the parent dirty. If this window or any descendant currently owns the
// pointer capture, the capture is force-released so the tree is never left
// captured by a removed window.
func (w *Window) Delete() {
	if cs := w.captureHost(); cs.owner != nil && isAncestor(w, cs.owner) {
		cs.owner = nil
		cs.buttons = 0
	}
	if w.parent != nil {
		w.parent.Dirty(w.rect)
		w.parent.RemoveChild(w)
	}
}

// Raise moves this window to the front of its parent's child list.
func (w *Window) Raise() {
	p := w.parent
	if p == nil {
		return
	}
	if len(p.children) > 0 && p.children[0] == w {
		return
	}
	if p.isRoot {
		p.children[0].setActive(false)
	}
	p.removeChildByPtr(w)
	p.children = append(p.children, nil)
	copy(p.children[1:], p.children)
	p.children[0] = w
	if p.isRoot {
		w.setActive(true)
	}
	w.Dirty()
}

// isAncestor reports whether candidate is node or an ancestor of node.
func isAncestor(candidate, node *Window) bool {
	for p := node; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from w.children without clearing
// child.parent. Uses copy+nil to avoid retaining a dangling pointer in the
// backing array.
func (w *Window) removeChildByPtr(child *Window) {
	for i, c := range w.children {
		if c == child {
			copy(w.children[i:], w.children[i+1:])
			w.children[len(w.children)-1] = nil
			w.children = w.children[:len(w.children)-1]
			return
		}
	}
}

// --- Flags ---

// Visible reports whether this window participates in routing and painting.
func (w *Window) Visible() bool {
	return w.visible
}

// SetVisible shows or hides the window, marking the affected region dirty:
// the window itself when shown, the vacated parent region when hidden.
func (w *Window) SetVisible(visible bool) {
	if visible && !w.visible {
		w.Dirty()
	} else if !visible && w.visible && w.parent != nil {
		w.parent.Dirty(w.rect)
	}
	w.visible = visible
}

// Enabled reports whether the window is enabled. Disabled windows still
// hit-test; enabling is a rendering and widget-behavior concern, not an
// input-routing one.
func (w *Window) Enabled() bool {
	return w.enabled
}

// SetEnabled toggles the enabled flag, marking the window dirty on change.
func (w *Window) SetEnabled(enabled bool) {
	if enabled != w.enabled {
		w.enabled = enabled
		w.Dirty()
	}
}

// Active reports whether this window is the front child of the root.
func (w *Window) Active() bool {
	return w.active
}

func (w *Window) setActive(active bool) {
	w.active = active
	if w.OnActivation != nil {
		w.OnActivation(active)
	}
}

// --- Geometry ---

// Rect returns the window's rect in parent coordinates.
func (w *Window) Rect() Rect {
	return w.rect
}

// LocalRect returns (0, 0, w, h).
func (w *Window) LocalRect() Rect {
	return w.localRect
}

// Resize replaces the window's rect (position and size, in parent
// coordinates), marks it dirty, and invokes OnLayout with the previous rect.
// A window must be resized before it can receive correctly-targeted input.
// Panics on negative dimensions.
func (w *Window) Resize(newRect Rect) {
	if newRect.W < 0 || newRect.H < 0 {
		panic(fmt.Sprintf("pane: resize to degenerate rect %+v", newRect))
	}
	old := w.rect
	w.rect = newRect
	w.localRect = newRect.Local()
	w.Dirty()
	if w.OnLayout != nil {
		w.OnLayout(old)
	}
}

// MapPointFromParent converts a point from parent coordinates to this
// window's local coordinates.
func (w *Window) MapPointFromParent(p Point) Point {
	return p.Sub(w.rect.Min())
}

// MapPointToParent converts a local point to parent coordinates.
func (w *Window) MapPointToParent(p Point) Point {
	return p.Add(w.rect.Min())
}

// MapPointFromGlobal converts a point from the root's coordinate space to
// this window's local coordinates. Cost is O(depth).
func (w *Window) MapPointFromGlobal(p Point) Point {
	if w.parent != nil {
		p = w.parent.MapPointFromGlobal(p)
	}
	return w.MapPointFromParent(p)
}

// MapPointToGlobal converts a local point to the root's coordinate space.
func (w *Window) MapPointToGlobal(p Point) Point {
	p = w.MapPointToParent(p)
	if w.parent != nil {
		p = w.parent.MapPointToGlobal(p)
	}
	return p
}

// MapEventFromGlobal returns a copy of evt with its position (if any)
// converted from global to this window's local coordinates. All other fields
// pass through unchanged.
func (w *Window) MapEventFromGlobal(evt *Event) *Event {
	if !evt.HasPos {
		return evt
	}
	c := evt.clone()
	c.Pos = w.MapPointFromGlobal(evt.Pos)
	return c
}

// --- Dirty bookkeeping ---

// Dirty marks regions of this window (in its own coordinate space) as
// needing repaint. With no arguments the whole window is marked. Marking an
// already-listed rectangle again is a no-op.
func (w *Window) Dirty(rects ...Rect) {
	if len(rects) == 0 {
		rects = []Rect{w.localRect}
	}
next:
	for _, r := range rects {
		for _, have := range w.dirtyRects {
			if have == r {
				continue next
			}
		}
		w.dirtyRects = append(w.dirtyRects, r)
	}
	if len(w.dirtyRects) > dirtyBacklogWarn {
		fmt.Fprintf(os.Stderr, "[pane] warning: %d dirty rects on one window\n", len(w.dirtyRects))
	}
}

// DirtyRects returns the pending dirty regions. Empty after a compositor
// pass. The returned slice MUST NOT be mutated.
func (w *Window) DirtyRects() []Rect {
	return w.dirtyRects
}

// --- Theme and fonts ---

// Theme returns this window's color theme, resolved by walking up the parent
// chain to the nearest window that owns one. Returns nil only on a detached
// tree whose root supplies no theme.
func (w *Window) Theme() *ColorTheme {
	if w.theme != nil {
		return w.theme
	}
	if w.parent == nil {
		return nil
	}
	return w.parent.Theme()
}

// SetTheme gives this window (and, by fallback, its descendants) a theme.
func (w *Window) SetTheme(t *ColorTheme) {
	w.theme = t
}

// Font resolves a face for the given purpose by walking to the root's font
// table. Returns nil when the purpose is unregistered; text rendering then
// degrades to nothing rather than failing.
func (w *Window) Font(purpose FontPurpose) text.Face {
	if w.parent != nil {
		return w.parent.Font(purpose)
	}
	return w.fonts[purpose]
}

// --- Notifications ---

// NotifyEvent delivers a synthetic event of the given kind to this window's
// subscribers, with the sender stamped.
func (w *Window) NotifyEvent(kind EventKind) {
	w.Notify(&Event{Kind: kind, Sender: w})
}

// NotifyChange announces that this window's state changed.
func (w *Window) NotifyChange() {
	w.NotifyEvent(EventChange)
}

// --- Dispatch ---

// dispatchEvent maps the event kind to its handler. Assumes evt.Pos (if any)
// is already in local coordinates. EventChange has a default behavior when no
// handler is set: mark dirty and cascade the notification to this window's
// own subscribers, so a child's change becomes visible to whoever observes
// the owning window.
func (w *Window) dispatchEvent(evt *Event) bool {
	switch evt.Kind {
	case EventMouseMove:
		if w.OnMouseMove != nil {
			return w.OnMouseMove(evt)
		}
	case EventMouseDown:
		if w.OnMouseDown != nil {
			return w.OnMouseDown(evt)
		}
	case EventMouseUp:
		if w.OnMouseUp != nil {
			return w.OnMouseUp(evt)
		}
	case EventKeyDown:
		if w.OnKeyDown != nil {
			return w.OnKeyDown(evt)
		}
	case EventKeyUp:
		if w.OnKeyUp != nil {
			return w.OnKeyUp(evt)
		}
	case EventChange:
		if w.OnChange != nil {
			return w.OnChange(evt)
		}
		w.Dirty()
		w.Notify(evt)
		return true
	case EventClick:
		if w.OnClick != nil {
			return w.OnClick(evt)
		}
	case EventDrop:
		if w.OnDrop != nil {
			return w.OnDrop(evt)
		}
	}
	return false
}

// --- Default painting ---

// paint runs the window's paint routine against the given surface and returns
// the changed regions in surface coordinates.
func (w *Window) paint(surf *Surface) []Rect {
	if w.Painter != nil {
		if rects := w.Painter(surf); rects != nil {
			return rects
		}
		return []Rect{surf.Rect()}
	}
	w.RenderFill(surf)
	w.RenderFrame(surf)
	if w.Image != nil {
		w.RenderImage(surf)
	} else {
		w.RenderText(surf)
	}
	return []Rect{surf.Rect()}
}

// RenderFill floods the surface with the theme background. Custom painters
// may reuse it.
func (w *Window) RenderFill(surf *Surface) {
	surf.Fill(w.Theme().Color(RoleBackground))
}

// RenderFrame outlines the surface with a 2px theme-foreground border.
func (w *Window) RenderFrame(surf *Surface) {
	surf.StrokeRect(surf.Rect(), 2, w.Theme().Color(RoleForeground))
}

// RenderImage blits the window's Image centered and clipped.
func (w *Window) RenderImage(surf *Surface) {
	if w.Image != nil {
		surf.BlitCentered(w.Image)
	}
}

// RenderText renders the window's Text centered in the body-text font. A
// missing face degrades to nothing.
func (w *Window) RenderText(surf *Surface) {
	if w.Text == "" {
		return
	}
	surf.DrawTextCentered(w.Font(FontText), w.Text, w.Theme().Color(RoleForeground))
}
