package pane

import (
	"bytes"
	"log"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	defaultLabelSize = 12
	defaultTextSize  = 14
)

// WindowManager is the special root window that tops a window tree. It always
// carries a color theme and a font table (descendants resolve both by walking
// up to it), owns the tree's deferred event queue, and steps drag snap-back
// animations.
//
// The host drives it once per frame: feed raw input to OnEvent (directly or
// through a [Pump]), call Update to drain deferred events and advance
// animations, then composite with RenderDirtyNow.
type WindowManager struct {
	Window
}

// NewWindowManager creates a root window covering rect (the physical display
// surface) with the default theme and fonts.
func NewWindowManager(rect Rect) *WindowManager {
	m := &WindowManager{}
	m.visible = true
	m.enabled = true
	m.rect = rect
	m.localRect = rect.Local()
	m.isRoot = true
	m.capture = &captureState{}
	m.theme = NewColorTheme()
	m.fonts = defaultFaces()
	return m
}

// defaultFaces builds the stock label and body-text faces from the bundled
// Go Regular font. A parse failure degrades to an empty table (labels simply
// do not render) rather than aborting.
func defaultFaces() map[FontPurpose]text.Face {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Printf("pane: default font unavailable: %v", err)
		return map[FontPurpose]text.Face{}
	}
	return map[FontPurpose]text.Face{
		FontLabel: &text.GoTextFace{Source: src, Size: defaultLabelSize},
		FontText:  &text.GoTextFace{Source: src, Size: defaultTextSize},
	}
}

// SetFont registers (or replaces) the face for a purpose. Purposes are an
// open enumeration; collaborators may add their own.
func (m *WindowManager) SetFont(purpose FontPurpose, face text.Face) {
	m.fonts[purpose] = face
}

// Post queues an event for deferred delivery through the normal routing path
// on the next Update.
func (m *WindowManager) Post(evt *Event) {
	m.PostEvent(evt)
}

// Update drains the deferred event queue in arrival order, resolving any
// completed drags, and advances snap-back animations by dt seconds.
func (m *WindowManager) Update(dt float64) {
	for len(m.queue) > 0 {
		evt := m.queue[0]
		m.queue = m.queue[1:]
		handled := m.OnEvent(evt)
		if evt.follower != nil {
			evt.follower.resolveDrop(handled)
		}
	}
	if len(m.returning) > 0 {
		kept := m.returning[:0]
		for _, d := range m.returning {
			if d.stepReturn(float32(dt)) {
				kept = append(kept, d)
			}
		}
		for i := len(kept); i < len(m.returning); i++ {
			m.returning[i] = nil
		}
		m.returning = kept
	}
}
