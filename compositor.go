package pane

// RenderDirtyNow repaints every invalidated region of this window and its
// descendants onto surf and returns the rectangles that changed, in surf's
// coordinate space. After it returns, the dirty list of this window and of
// every visited descendant is empty.
//
// Cost is proportional to the changed area, not the tree size: a clean
// subtree with no overlapping repaint is skipped entirely. A root-level
// dirty mark degenerates to a full repaint.
func (w *Window) RenderDirtyNow(surf *Surface) []Rect {
	return w.renderDirty(surf, false)
}

// RenderAllNow force-repaints the whole subtree regardless of dirty state.
// Hosts use it for the first frame, or after the destination was clobbered.
func (w *Window) RenderAllNow(surf *Surface) []Rect {
	return w.renderDirty(surf, true)
}

func (w *Window) renderDirty(surf *Surface, force bool) []Rect {
	var dirty []Rect
	if force || len(w.dirtyRects) > 0 {
		// Paint this window first: children layer on top of it.
		dirty = w.paint(surf)
		if dirty == nil {
			dirty = []Rect{surf.Rect()}
		}
	}
	// Back-to-front so later (frontmost, lower-index) children paint over
	// earlier ones.
	for i := len(w.children) - 1; i >= 0; i-- {
		child := w.children[i]
		if !child.visible {
			continue
		}
		if child.rect.Intersect(surf.Rect()).IsEmpty() {
			continue
		}
		// A repaint at this level may have exposed or obscured the child.
		if overlapsAny(child.rect, dirty) {
			child.Dirty()
		}
		childDirty := child.renderDirty(surf.SubSurface(child.rect), force)
		for _, r := range childDirty {
			dirty = append(dirty, r.Translate(child.rect.Min()))
		}
	}
	w.dirtyRects = w.dirtyRects[:0]
	return dirty
}

// overlapsAny reports whether r intersects any rectangle in rects.
func overlapsAny(r Rect, rects []Rect) bool {
	for _, d := range rects {
		if r.Intersects(d) {
			return true
		}
	}
	return false
}
