// Package pane is a retained-mode windowing toolkit for [Ebitengine].
//
// Pane manages a tree of rectangular [Window] regions, routes pointer and
// keyboard events through that tree with exclusive pointer capture, tracks
// minimal-repaint (dirty rect) invalidation, and implements a drag-and-drop
// protocol between arbitrary windows.
//
// # Quick start
//
// Implement [ebiten.Game] yourself; pump input into the tree, advance the
// manager, and composite only what changed:
//
//	type Game struct {
//		wm   *pane.WindowManager
//		pump pane.Pump
//	}
//
//	func (g *Game) Update() error {
//		g.pump.Update(&g.wm.Window)
//		g.wm.Update(1.0 / float64(ebiten.TPS()))
//		return nil
//	}
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//		g.wm.RenderDirtyNow(pane.NewSurface(screen))
//	}
//
//	func (g *Game) Layout(w, h int) (int, int) { return w, h }
//
// Because the compositor repaints only invalidated regions, the host should
// disable Ebitengine's per-frame screen clear:
//
//	ebiten.SetScreenClearedEveryFrame(false)
//
// # Window tree
//
// Every region is a [Window]. Children are ordered front to back: index 0 is
// the topmost (and "active") child. A window's rectangle is expressed in its
// parent's coordinate space; the root's space is the destination surface.
// Behavior is attached through exported callback fields ([Window.OnMouseDown],
// [Window.OnDrop], [Window.Painter], ...) rather than subclassing:
//
//	wm := pane.NewWindowManager(pane.Rect{W: 640, H: 480})
//	panel := pane.NewWindow(&wm.Window, pane.Rect{X: 20, Y: 20, W: 200, H: 120})
//	panel.OnMouseDown = func(evt *pane.Event) bool {
//		// evt.Pos is in panel-local coordinates here.
//		return true // accepting a button-down also captures the pointer
//	}
//
// State changes call [Window.Dirty]; the next [Window.RenderDirtyNow] pass
// repaints exactly the invalidated regions and reports which destination
// rectangles changed.
//
// Stock widgets ([Button], [ProgressBar], [DragSource]) and runnable demos
// under examples/ show the full contract, including drag-and-drop with a
// configurable snap-back animation (via [gween]).
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package pane
