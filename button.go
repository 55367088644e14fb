package pane

// Button is a push button with a beveled frame. It notifies [EventClick] to
// its subscribers when the primary button is released while still over the
// control. Selected buttons render with the selected background; the bevel
// inverts while depressed.
type Button struct {
	*Window

	depressed bool
	selected  bool
}

// NewButton creates a button attached to parent with the given label.
func NewButton(parent *Window, rect Rect, label string) *Button {
	b := &Button{Window: NewWindow(parent, rect)}
	b.Text = label
	b.OnMouseDown = b.mouseDown
	b.OnMouseMove = b.mouseMove
	b.OnMouseUp = b.mouseUp
	b.Painter = b.paint
	return b
}

// Selected reports whether the button renders in its selected state.
func (b *Button) Selected() bool {
	return b.selected
}

// SetSelected toggles the selected state, marking the button dirty on change.
func (b *Button) SetSelected(selected bool) {
	if selected != b.selected {
		b.selected = selected
		b.Dirty()
	}
}

func (b *Button) setDepressed(depressed bool) {
	if depressed != b.depressed {
		b.depressed = depressed
		b.Dirty()
	}
}

func (b *Button) mouseDown(evt *Event) bool {
	if !b.enabled {
		return false
	}
	if evt.Button == MouseButtonLeft {
		b.setDepressed(true)
		return true
	}
	return false
}

// mouseMove tracks whether the pointer is still over the control while the
// primary button is held (the button receives these through capture).
func (b *Button) mouseMove(evt *Event) bool {
	if evt.Buttons&MouseButtonLeft.Mask() != 0 {
		b.setDepressed(b.localRect.Contains(evt.Pos))
	}
	return false
}

// mouseUp emits the click only for a release that ends an accepted press
// while the pointer is over the control.
func (b *Button) mouseUp(evt *Event) bool {
	wasDepressed := b.depressed
	b.setDepressed(false)
	if wasDepressed && evt.Button == MouseButtonLeft && b.localRect.Contains(evt.Pos) {
		b.NotifyEvent(EventClick)
	}
	return true
}

func (b *Button) paint(surf *Surface) []Rect {
	colors := b.Theme()
	bg := RoleBackground
	if b.selected {
		bg = RoleSelectedBackground
	}
	edge1, edge2 := RoleLowlight, RoleHighlight
	if b.depressed {
		edge1, edge2 = edge2, edge1
	}
	surf.FillRect(surf.Rect(), colors.Color(bg))

	const thickness = 2
	tl, br := RectInsetFramePolys(surf.Rect(), thickness)
	surf.FillPoly(br, colors.Color(edge1))
	surf.FillPoly(tl, colors.Color(edge2))

	if b.Image != nil {
		b.RenderImage(surf)
	} else {
		b.RenderText(surf)
	}
	return nil
}
