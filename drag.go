package pane

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// dimOverlay is blended over disabled drag sources.
var dimOverlay = color.NRGBA{R: 127, G: 127, B: 127, A: 127}

const (
	// defaultDragThreshold is the displacement in pixels past which a
	// pressed drag source starts a drag.
	defaultDragThreshold = 2.0
	// snapBackDuration is how long a rejected payload takes to animate home.
	snapBackDuration = 0.25
)

// DragSource is a window containing something that can be dragged to another
// window. A pointer-down arms it; moving past Threshold spawns a follower
// window at the source's global position carrying a copy of the source's
// payload and image, and transfers pointer capture to the follower. Releasing
// the pointer posts a deferred [EventDrop] through the normal routing path;
// whichever window's OnDrop claims it receives the payload.
//
// Policy decides what happens when no window claims the drop: DropDiscard
// (the default) silently loses the payload, DropSnapBack animates the
// follower back to the source before deleting it.
//
// A source that wants to show itself emptied the moment a drag starts can
// hook OnDragStart.
type DragSource struct {
	*Window

	// Threshold is the drag dead zone in pixels. Zero means the default.
	Threshold float64

	// Policy decides the fate of an unclaimed drop.
	Policy DropPolicy

	// OnDragStart, if set, is invoked right after the follower is spawned.
	OnDragStart func()

	origin *Point // pressed position while armed; nil when idle
}

// NewDragSource creates a drag source attached to parent, carrying data as
// its payload.
func NewDragSource(parent *Window, rect Rect, data map[string]any) *DragSource {
	d := &DragSource{
		Window:    NewWindow(parent, rect),
		Threshold: defaultDragThreshold,
	}
	d.Data = data
	d.OnMouseDown = d.mouseDown
	d.OnMouseMove = d.mouseMove
	d.OnMouseUp = d.mouseUp
	d.Painter = d.paint
	return d
}

// mouseDown arms the source without claiming the event, so routing (and
// capture) proceed as if the press were unhandled.
func (d *DragSource) mouseDown(evt *Event) bool {
	if evt.Button == MouseButtonLeft && d.origin == nil {
		p := evt.Pos
		d.origin = &p
	}
	return false
}

func (d *DragSource) mouseMove(evt *Event) bool {
	if d.origin == nil {
		return false
	}
	// A buttonless move means the release happened somewhere this source
	// never saw; the armed press is stale.
	if evt.Buttons == 0 {
		d.origin = nil
		return false
	}
	if Dist(*d.origin, evt.Pos) > d.threshold() {
		d.beginDrag(evt)
	}
	return false
}

func (d *DragSource) mouseUp(*Event) bool {
	d.origin = nil
	return false
}

func (d *DragSource) threshold() float64 {
	if d.Threshold > 0 {
		return d.Threshold
	}
	return defaultDragThreshold
}

// beginDrag spawns the follower at this source's current global position and
// hands it the pointer. Disabled sources refuse to start a drag.
func (d *DragSource) beginDrag(evt *Event) {
	if !d.enabled {
		return
	}
	grab := *d.origin
	d.origin = nil

	gp := d.MapPointToGlobal(Point{})
	f := newDragWindow(d, Rect{gp.X, gp.Y, d.rect.W, d.rect.H}, grab)
	f.CaptureMouse(evt.Buttons)

	if d.OnDragStart != nil {
		d.OnDragStart()
	}
}

// paint renders the source as a raised bevel cell: background, highlight on
// the bottom-right, lowlight on the top-left, then the image or text.
// Disabled sources are dimmed.
func (d *DragSource) paint(surf *Surface) []Rect {
	colors := d.Theme()
	d.RenderFill(surf)
	const thickness = 2
	tl, br := RectInsetFramePolys(surf.Rect(), thickness)
	surf.FillPoly(br, colors.Color(RoleHighlight))
	surf.FillPoly(tl, colors.Color(RoleLowlight))
	if d.Image != nil {
		d.RenderImage(surf)
	} else {
		d.RenderText(surf)
	}
	if !d.enabled {
		surf.FillRect(surf.Rect(), dimOverlay)
	}
	return nil
}

// dragWindow is the transient follower: a top-most root-level window that
// keeps moving itself to remain under the pointer until button-up.
type dragWindow struct {
	*Window

	src  *DragSource
	last Point // pointer position in local coordinates at the grab
	home Point // global position the drag started from (snap-back target)

	returnX *gween.Tween
	returnY *gween.Tween
}

func newDragWindow(src *DragSource, rect Rect, grab Point) *dragWindow {
	f := &dragWindow{
		Window: NewWindow(src.Root(), rect),
		src:    src,
		last:   grab,
		home:   rect.Min(),
	}
	f.Image = src.Image
	f.Data = src.Data
	f.OnMouseMove = f.mouseMove
	f.OnMouseUp = f.mouseUp
	return f
}

// mouseMove translates the follower by the pointer delta. Both the old and
// the new position must repaint, so the parent is dirtied as well.
func (f *dragWindow) mouseMove(evt *Event) bool {
	d := evt.Pos.Sub(f.last)
	f.rect = f.rect.Translate(d)
	f.Dirty()
	if f.parent != nil {
		f.parent.Dirty()
	}
	return true
}

// mouseUp posts the deferred Drop event carrying the payload, the originating
// source, and the release position in global coordinates. The follower stays
// attached until the manager resolves the drop.
func (f *dragWindow) mouseUp(evt *Event) bool {
	if evt.Button != MouseButtonLeft {
		return true
	}
	f.PostEvent(&Event{
		Kind:     EventDrop,
		Pos:      f.MapPointToGlobal(evt.Pos),
		HasPos:   true,
		Sender:   f.src,
		Data:     f.Data,
		follower: f,
	})
	return true
}

// resolveDrop is called by the manager after the Drop event finished routing.
// A claimed drop, or an unclaimed one under DropDiscard, removes the
// follower immediately; DropSnapBack animates it home first.
func (f *dragWindow) resolveDrop(handled bool) {
	if handled || f.src.Policy == DropDiscard {
		f.Delete()
		return
	}
	f.returnX = gween.New(float32(f.rect.X), float32(f.home.X), snapBackDuration, ease.OutQuad)
	f.returnY = gween.New(float32(f.rect.Y), float32(f.home.Y), snapBackDuration, ease.OutQuad)
	root := f.Root()
	root.returning = append(root.returning, f)
}

// stepReturn advances the snap-back animation by dt seconds and reports
// whether it is still running. Completion deletes the follower.
func (f *dragWindow) stepReturn(dt float32) bool {
	x, doneX := f.returnX.Update(dt)
	y, doneY := f.returnY.Update(dt)
	f.rect.X = int(x)
	f.rect.Y = int(y)
	f.Dirty()
	if f.parent != nil {
		f.parent.Dirty()
	}
	if doneX && doneY {
		f.Delete()
		return false
	}
	return true
}
