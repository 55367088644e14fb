package pane

import (
	"bytes"
	"testing"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

func TestManagerDefaults(t *testing.T) {
	wm := NewWindowManager(Rect{0, 0, 640, 480})

	if wm.Theme() == nil {
		t.Error("manager has no default theme")
	}
	if wm.Font(FontLabel) == nil || wm.Font(FontText) == nil {
		t.Error("manager has no default faces")
	}
	if !wm.Visible() || !wm.Enabled() {
		t.Error("manager not visible and enabled by default")
	}
	if wm.Rect() != (Rect{0, 0, 640, 480}) {
		t.Errorf("rect = %v, want {0 0 640 480}", wm.Rect())
	}
}

func TestManagerSetFont(t *testing.T) {
	wm := NewWindowManager(Rect{0, 0, 100, 100})
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		t.Fatalf("parsing bundled font: %v", err)
	}
	face := &text.GoTextFace{Source: src, Size: 22}

	wm.SetFont(FontPurpose("title"), face)

	leaf := NewWindow(&wm.Window, Rect{0, 0, 10, 10})
	if got := leaf.Font(FontPurpose("title")); got != face {
		t.Error("registered face not resolvable from a descendant")
	}
}

func TestUpdateDrainsQueueInOrder(t *testing.T) {
	wm := NewWindowManager(Rect{0, 0, 100, 100})
	var got []int
	sink := NewWindow(&wm.Window, Rect{0, 0, 100, 100})
	sink.OnChange = func(evt *Event) bool {
		got = append(got, evt.Data["n"].(int))
		return true
	}

	wm.Post(&Event{Kind: EventChange, Data: map[string]any{"n": 1}})
	wm.Post(&Event{Kind: EventChange, Data: map[string]any{"n": 2}})
	wm.Update(0.016)

	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("delivery order = %v, want [1 2]", got)
	}
}

func TestUpdateDrainsEventsPostedDuringDrain(t *testing.T) {
	wm := NewWindowManager(Rect{0, 0, 100, 100})
	calls := 0
	sink := NewWindow(&wm.Window, Rect{0, 0, 100, 100})
	sink.OnChange = func(*Event) bool {
		calls++
		if calls == 1 {
			wm.Post(&Event{Kind: EventChange})
		}
		return true
	}

	wm.Post(&Event{Kind: EventChange})
	wm.Update(0.016)

	if calls != 2 {
		t.Errorf("handler called %d times, want 2 (chained post drains same frame)", calls)
	}
}

func TestUpdateEmptyQueueIsNoop(t *testing.T) {
	wm := NewWindowManager(Rect{0, 0, 100, 100})
	wm.Update(0.016) // must not panic or block
}
