package pane

// captureState is the per-tree pointer-capture record, held on the root
// window. Modeling it as root-owned state (rather than a process global)
// keeps independent window trees, and tests, from interfering with each
// other. It holds the current owner and the mask of buttons pressed since
// capture began; capture ends exactly when that mask returns to empty.
type captureState struct {
	owner   *Window
	buttons ButtonMask
}

// captureHost returns the tree's capture state, allocating it on the root on
// first use.
func (w *Window) captureHost() *captureState {
	root := w.Root()
	if root.capture == nil {
		root.capture = &captureState{}
	}
	return root.capture
}

// CaptureMouse makes this window the exclusive recipient of all pointer
// events until every pressed button is released, regardless of pointer
// position. buttons is the mask of buttons currently held. Acquiring capture
// while another window holds it is a programming error and panics.
func (w *Window) CaptureMouse(buttons ButtonMask) {
	cs := w.captureHost()
	if cs.owner != nil {
		panic("pane: mouse already captured")
	}
	if cs.buttons != 0 {
		panic("pane: capture button mask not clear")
	}
	cs.owner = w
	cs.buttons = buttons
}

// ReleaseMouse releases pointer capture. Only the current owner may release;
// anything else is a programming error and panics.
func (w *Window) ReleaseMouse() {
	cs := w.captureHost()
	if cs.owner != w {
		panic("pane: mouse capture released by non-owner")
	}
	cs.owner = nil
	cs.buttons = 0
}

// CaptureOwner returns the window currently holding pointer capture in this
// window's tree, or nil.
func (w *Window) CaptureOwner() *Window {
	return w.captureHost().owner
}

// dispatchCaptured delivers a pointer event directly to the capture owner,
// re-targeted to the owner's local space, and maintains the pressed-button
// mask. Releasing the last button releases capture. Assumes evt is in global
// coordinates.
func (cs *captureState) dispatchCaptured(evt *Event) bool {
	owner := cs.owner
	owner.dispatchEvent(owner.MapEventFromGlobal(evt))
	switch evt.Kind {
	case EventMouseDown:
		cs.buttons |= evt.Button.Mask()
	case EventMouseUp:
		cs.buttons &^= evt.Button.Mask()
		// The handler may have deleted itself and force-released.
		if cs.buttons == 0 && cs.owner == owner {
			owner.ReleaseMouse()
		}
	}
	return true
}

// isPointerKind reports whether the kind participates in pointer capture.
func isPointerKind(kind EventKind) bool {
	return kind == EventMouseMove || kind == EventMouseDown || kind == EventMouseUp
}

// OnEvent routes an event (in global coordinates) to the deepest interested
// window. It is the entry point the host feeds raw input to, normally on
// the root, but any subtree works the same way.
//
// Routing: while capture is active, pointer events bypass the tree search and
// go straight to the capture owner. Otherwise children are offered the event
// front to back, recursively, and the first to handle it wins. Only if no
// child handles it does this window test itself: an event with no position,
// or one whose position falls inside the window, is dispatched to this
// window's own handlers. Accepting a button-down for a recognized button
// acquires pointer capture.
//
// A modal window reports events inside its subtree as handled even when
// nothing handled them, so they never escape to siblings or ancestors.
func (w *Window) OnEvent(evt *Event) bool {
	if cs := w.captureHost(); cs.owner != nil && isPointerKind(evt.Kind) {
		return cs.dispatchCaptured(evt)
	}
	for _, child := range w.children {
		if child.visible && child.OnEvent(evt) {
			return true
		}
	}
	if !evt.HasPos || w.localRect.Contains(w.MapPointFromGlobal(evt.Pos)) {
		if w.dispatchEvent(w.MapEventFromGlobal(evt)) {
			if evt.Kind == EventMouseDown && evt.Button.recognized() && w.captureHost().owner == nil {
				// Acceptance, not mere receipt, starts the capture.
				w.CaptureMouse(evt.Button.Mask())
			}
			return true
		}
	}
	return w.Modal
}

// PostEvent appends an event to the tree's deferred queue, to be routed
// through OnEvent on the next [WindowManager.Update]. This is how the drag
// subsystem delivers Drop events asynchronously.
func (w *Window) PostEvent(evt *Event) {
	root := w.Root()
	root.queue = append(root.queue, evt)
}
