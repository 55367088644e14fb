package pane

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// pumpButtons maps toolkit buttons to Ebitengine's, indexed by MouseButton.
var pumpButtons = [...]ebiten.MouseButton{
	MouseButtonLeft:   ebiten.MouseButtonLeft,
	MouseButtonRight:  ebiten.MouseButtonRight,
	MouseButtonMiddle: ebiten.MouseButtonMiddle,
}

// Pump converts Ebitengine device state into toolkit events. Call Update once
// per frame from the host's update; it diffs the current mouse and keyboard
// state against the previous frame and feeds the resulting events, in a fixed
// order (move, presses, releases, keys), to root.OnEvent.
//
// The zero value is ready to use.
type Pump struct {
	started bool
	lastX   int
	lastY   int
	held    [len(pumpButtons)]bool
	keyBuf  []ebiten.Key
}

// Update polls the devices and routes any new events through root.
func (p *Pump) Update(root *Window) {
	x, y := ebiten.CursorPosition()
	pos := Point{x, y}

	var cur [len(pumpButtons)]bool
	var mask ButtonMask
	for b := range pumpButtons {
		cur[b] = ebiten.IsMouseButtonPressed(pumpButtons[b])
		if cur[b] {
			mask |= MouseButton(b).Mask()
		}
	}

	if p.started && (x != p.lastX || y != p.lastY) {
		root.OnEvent(&Event{Kind: EventMouseMove, Pos: pos, HasPos: true, Buttons: mask})
	}
	for b := range pumpButtons {
		if cur[b] && !p.held[b] {
			root.OnEvent(&Event{Kind: EventMouseDown, Pos: pos, HasPos: true, Button: MouseButton(b)})
		}
	}
	for b := range pumpButtons {
		if !cur[b] && p.held[b] {
			root.OnEvent(&Event{Kind: EventMouseUp, Pos: pos, HasPos: true, Button: MouseButton(b)})
		}
	}

	p.keyBuf = inpututil.AppendJustPressedKeys(p.keyBuf[:0])
	for _, k := range p.keyBuf {
		root.OnEvent(&Event{Kind: EventKeyDown, Key: k})
	}
	p.keyBuf = inpututil.AppendJustReleasedKeys(p.keyBuf[:0])
	for _, k := range p.keyBuf {
		root.OnEvent(&Event{Kind: EventKeyUp, Key: k})
	}

	p.started = true
	p.lastX = x
	p.lastY = y
	p.held = cur
}
