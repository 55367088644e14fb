package pane

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// Event constructors for feeding OnEvent in global coordinates.

func evDown(x, y int, b MouseButton) *Event {
	return &Event{Kind: EventMouseDown, Pos: Point{x, y}, HasPos: true, Button: b}
}

func evUp(x, y int, b MouseButton) *Event {
	return &Event{Kind: EventMouseUp, Pos: Point{x, y}, HasPos: true, Button: b}
}

func evMove(x, y int, held ButtonMask) *Event {
	return &Event{Kind: EventMouseMove, Pos: Point{x, y}, HasPos: true, Buttons: held}
}

// record is an event log shared by the windows under test.
type record struct {
	entries []string
}

func (r *record) handler(name string, claim bool) func(*Event) bool {
	return func(evt *Event) bool {
		r.entries = append(r.entries, name)
		return claim
	}
}

func TestRoutingHitTest(t *testing.T) {
	root := NewWindow(nil, Rect{0, 0, 200, 200})
	w := NewWindow(root, Rect{50, 50, 40, 40})
	var rec record
	w.OnMouseDown = rec.handler("w", true)

	tests := []struct {
		name    string
		pos     Point
		reaches bool
	}{
		{"inside", Point{60, 60}, true},
		{"top-left corner", Point{50, 50}, true},
		{"bottom-right corner exclusive", Point{90, 90}, false},
		{"outside", Point{10, 10}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec.entries = nil
			root.OnEvent(evDown(tt.pos.X, tt.pos.Y, MouseButtonLeft))
			root.OnEvent(evUp(tt.pos.X, tt.pos.Y, MouseButtonLeft)) // release any capture
			got := len(rec.entries) > 0
			if got != tt.reaches {
				t.Errorf("event at %v reached window: %v, want %v", tt.pos, got, tt.reaches)
			}
		})
	}
}

func TestRoutingLocalCoordinates(t *testing.T) {
	root := NewWindow(nil, Rect{0, 0, 400, 400})
	panel := NewWindow(root, Rect{100, 50, 200, 200})
	inner := NewWindow(panel, Rect{20, 30, 100, 100})

	var got Point
	inner.OnMouseDown = func(evt *Event) bool {
		got = evt.Pos
		return true
	}

	root.OnEvent(evDown(125, 85, MouseButtonLeft))

	if got != (Point{5, 5}) {
		t.Errorf("handler saw pos %v, want {5 5} (window-local)", got)
	}
}

func TestRoutingFrontChildWins(t *testing.T) {
	root := NewWindow(nil, Rect{0, 0, 200, 200})
	var rec record
	back := NewWindow(root, Rect{10, 10, 100, 100})
	back.OnMouseDown = rec.handler("back", true)
	front := NewWindow(root, Rect{10, 10, 100, 100}) // same area, added later so frontmost
	front.OnMouseDown = rec.handler("front", true)

	handled := root.OnEvent(evDown(50, 50, MouseButtonLeft))

	if !handled {
		t.Error("event not reported handled")
	}
	if len(rec.entries) != 1 || rec.entries[0] != "front" {
		t.Errorf("delivery = %v, want [front] only (short-circuit)", rec.entries)
	}
}

func TestRoutingFallsThroughUnclaimed(t *testing.T) {
	root := NewWindow(nil, Rect{0, 0, 200, 200})
	var rec record
	back := NewWindow(root, Rect{10, 10, 100, 100})
	back.OnMouseDown = rec.handler("back", true)
	front := NewWindow(root, Rect{10, 10, 100, 100})
	front.OnMouseDown = rec.handler("front", false) // declines

	root.OnEvent(evDown(50, 50, MouseButtonLeft))

	want := []string{"front", "back"}
	if len(rec.entries) != 2 || rec.entries[0] != want[0] || rec.entries[1] != want[1] {
		t.Errorf("delivery = %v, want %v", rec.entries, want)
	}
}

func TestRoutingSkipsInvisible(t *testing.T) {
	root := NewWindow(nil, Rect{0, 0, 200, 200})
	var rec record
	w := NewWindow(root, Rect{10, 10, 100, 100})
	w.OnMouseDown = rec.handler("w", true)
	w.SetVisible(false)

	handled := root.OnEvent(evDown(50, 50, MouseButtonLeft))

	if handled || len(rec.entries) != 0 {
		t.Errorf("hidden window received an event: handled=%v delivery=%v", handled, rec.entries)
	}
}

func TestRoutingKeyEventsIgnoreGeometry(t *testing.T) {
	root := NewWindow(nil, Rect{0, 0, 200, 200})
	w := NewWindow(root, Rect{500, 500, 10, 10}) // far outside the root
	var gotKey ebiten.Key
	w.OnKeyDown = func(evt *Event) bool {
		gotKey = evt.Key
		return true
	}

	handled := root.OnEvent(&Event{Kind: EventKeyDown, Key: ebiten.KeyEnter})

	if !handled || gotKey != ebiten.KeyEnter {
		t.Errorf("key event not delivered: handled=%v key=%v", handled, gotKey)
	}
}

// --- Pointer capture ---

func TestCaptureOnAcceptedButtonDown(t *testing.T) {
	root := NewWindow(nil, Rect{0, 0, 200, 200})
	w := NewWindow(root, Rect{50, 50, 40, 40})
	var moves []Point
	w.OnMouseDown = func(*Event) bool { return true }
	w.OnMouseMove = func(evt *Event) bool {
		moves = append(moves, evt.Pos)
		return true
	}

	root.OnEvent(evDown(60, 60, MouseButtonLeft))
	if root.CaptureOwner() != w {
		t.Fatal("accepting a button-down did not acquire capture")
	}

	// Moves far outside the window still arrive, in local coordinates.
	root.OnEvent(evMove(5, 5, MouseButtonLeft.Mask()))
	if len(moves) != 1 || moves[0] != (Point{-45, -45}) {
		t.Errorf("captured move = %v, want [{-45 -45}]", moves)
	}

	// Releasing the last button outside the window ends the capture.
	root.OnEvent(evUp(5, 5, MouseButtonLeft))
	if root.CaptureOwner() != nil {
		t.Error("capture not released after button-up")
	}

	// Subsequent moves route normally and miss the window.
	moves = nil
	root.OnEvent(evMove(5, 5, 0))
	if len(moves) != 0 {
		t.Errorf("post-release move still delivered: %v", moves)
	}
}

func TestCaptureDeclinedDownDoesNotCapture(t *testing.T) {
	root := NewWindow(nil, Rect{0, 0, 200, 200})
	w := NewWindow(root, Rect{50, 50, 40, 40})
	w.OnMouseDown = func(*Event) bool { return false }

	root.OnEvent(evDown(60, 60, MouseButtonLeft))

	if root.CaptureOwner() != nil {
		t.Error("declined button-down acquired capture")
	}
}

func TestCaptureAccumulatesButtons(t *testing.T) {
	root := NewWindow(nil, Rect{0, 0, 200, 200})
	w := NewWindow(root, Rect{50, 50, 40, 40})
	w.OnMouseDown = func(*Event) bool { return true }

	root.OnEvent(evDown(60, 60, MouseButtonLeft))
	root.OnEvent(evDown(5, 5, MouseButtonRight)) // pressed while captured, outside the window

	root.OnEvent(evUp(5, 5, MouseButtonLeft))
	if root.CaptureOwner() != w {
		t.Fatal("capture released while the right button was still held")
	}

	root.OnEvent(evUp(5, 5, MouseButtonRight))
	if root.CaptureOwner() != nil {
		t.Error("capture not released after the last button came up")
	}
}

func TestCaptureMousePanics(t *testing.T) {
	t.Run("already captured", func(t *testing.T) {
		root := NewWindow(nil, Rect{0, 0, 100, 100})
		a := NewWindow(root, Rect{0, 0, 10, 10})
		b := NewWindow(root, Rect{0, 0, 10, 10})
		a.CaptureMouse(MouseButtonLeft.Mask())
		defer func() {
			if recover() == nil {
				t.Error("expected panic capturing over an existing owner")
			}
		}()
		b.CaptureMouse(MouseButtonLeft.Mask())
	})

	t.Run("release by non-owner", func(t *testing.T) {
		root := NewWindow(nil, Rect{0, 0, 100, 100})
		a := NewWindow(root, Rect{0, 0, 10, 10})
		b := NewWindow(root, Rect{0, 0, 10, 10})
		a.CaptureMouse(MouseButtonLeft.Mask())
		defer func() {
			if recover() == nil {
				t.Error("expected panic releasing someone else's capture")
			}
		}()
		b.ReleaseMouse()
	})
}

func TestCaptureIsPerTree(t *testing.T) {
	rootA := NewWindow(nil, Rect{0, 0, 100, 100})
	rootB := NewWindow(nil, Rect{0, 0, 100, 100})
	a := NewWindow(rootA, Rect{0, 0, 10, 10})

	a.CaptureMouse(MouseButtonLeft.Mask())

	if rootB.CaptureOwner() != nil {
		t.Error("capture in one tree leaked into another")
	}
	rootB.CaptureMouse(MouseButtonLeft.Mask()) // must not panic
}

func TestCaptureOwnerDeletingItselfOnRelease(t *testing.T) {
	root := NewWindow(nil, Rect{0, 0, 200, 200})
	w := NewWindow(root, Rect{50, 50, 40, 40})
	w.OnMouseDown = func(*Event) bool { return true }
	w.OnMouseUp = func(*Event) bool {
		w.Delete() // force-releases the capture mid-dispatch
		return true
	}

	root.OnEvent(evDown(60, 60, MouseButtonLeft))
	root.OnEvent(evUp(60, 60, MouseButtonLeft)) // must not panic

	if root.CaptureOwner() != nil {
		t.Error("capture survived the owner's self-deletion")
	}
}

// --- Modal ---

func TestModalSwallowsOutsideClicks(t *testing.T) {
	root := NewWindow(nil, Rect{0, 0, 200, 200})
	var rec record
	beneath := NewWindow(root, Rect{0, 0, 200, 200})
	beneath.OnMouseDown = rec.handler("beneath", true)

	dialog := NewWindow(root, Rect{50, 50, 100, 100})
	dialog.Modal = true
	ok := NewWindow(dialog, Rect{10, 10, 40, 20})
	ok.OnMouseDown = rec.handler("ok", true)

	t.Run("outside the dialog", func(t *testing.T) {
		rec.entries = nil
		handled := root.OnEvent(evDown(10, 180, MouseButtonLeft))
		if !handled {
			t.Error("click outside a modal should still report handled")
		}
		if len(rec.entries) != 0 {
			t.Errorf("click leaked past the modal to %v", rec.entries)
		}
	})

	t.Run("inside the dialog body", func(t *testing.T) {
		rec.entries = nil
		handled := root.OnEvent(evDown(140, 140, MouseButtonLeft))
		if !handled {
			t.Error("unhandled click inside a modal should report handled")
		}
		if len(rec.entries) != 0 {
			t.Errorf("click inside the modal body reached %v", rec.entries)
		}
	})

	t.Run("on a dialog control", func(t *testing.T) {
		rec.entries = nil
		root.OnEvent(evDown(65, 65, MouseButtonLeft))
		root.OnEvent(evUp(65, 65, MouseButtonLeft))
		if len(rec.entries) != 1 || rec.entries[0] != "ok" {
			t.Errorf("delivery = %v, want [ok]", rec.entries)
		}
	})

	t.Run("after dismissal", func(t *testing.T) {
		dialog.Delete()
		rec.entries = nil
		root.OnEvent(evDown(10, 180, MouseButtonLeft))
		if len(rec.entries) != 1 || rec.entries[0] != "beneath" {
			t.Errorf("delivery = %v, want [beneath]", rec.entries)
		}
	})
}

// --- Deferred queue ---

func TestPostEventQueuesOnRoot(t *testing.T) {
	root := NewWindow(nil, Rect{0, 0, 100, 100})
	leaf := NewWindow(root, Rect{0, 0, 10, 10})

	leaf.PostEvent(&Event{Kind: EventChange})
	leaf.PostEvent(&Event{Kind: EventClick})

	if len(root.queue) != 2 {
		t.Fatalf("root queue length = %d, want 2", len(root.queue))
	}
	if root.queue[0].Kind != EventChange || root.queue[1].Kind != EventClick {
		t.Error("queue order does not match posting order")
	}
}
