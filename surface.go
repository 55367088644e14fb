package pane

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// whitePixel is a 1x1 white image; solid fills are drawn by scaling and
// tinting it.
var whitePixel *ebiten.Image

func init() {
	whitePixel = ebiten.NewImage(1, 1)
	whitePixel.Fill(color.White)
}

// Surface is a paint destination handed to window paint routines. Each window
// paints in its own coordinate space: (0, 0) is the window's top-left corner
// regardless of where the surface sits on the destination image, and drawing
// is clipped to the surface bounds.
type Surface struct {
	img    *ebiten.Image
	origin Point // position of local (0, 0) in img's coordinate space
	w, h   int
}

// NewSurface wraps an Ebitengine image as a paint destination.
func NewSurface(img *ebiten.Image) *Surface {
	b := img.Bounds()
	return &Surface{
		img:    img,
		origin: Point{b.Min.X, b.Min.Y},
		w:      b.Dx(),
		h:      b.Dy(),
	}
}

// Rect returns the surface bounds in local coordinates: (0, 0, w, h).
func (s *Surface) Rect() Rect {
	return Rect{0, 0, s.w, s.h}
}

// Size returns the surface dimensions in pixels.
func (s *Surface) Size() (int, int) {
	return s.w, s.h
}

// Image returns the underlying destination image for direct drawing.
// Note that its coordinate space is the destination's, not the surface's.
func (s *Surface) Image() *ebiten.Image {
	return s.img
}

// SubSurface returns a surface restricted to r (clipped to this surface).
// The sub-surface's local origin is r's top-left corner even when that
// corner lies outside this surface: drawing against the clipped-away band
// lands on the underlying clip region and is discarded, so a window hanging
// past the left or top edge still paints in its own coordinate space.
func (s *Surface) SubSurface(r Rect) *Surface {
	clipped := r.Intersect(s.Rect())
	abs := clipped.Translate(s.origin).Image()
	return &Surface{
		img:    s.img.SubImage(abs).(*ebiten.Image),
		origin: s.origin.Add(r.Min()),
		w:      clipped.X + clipped.W - r.X,
		h:      clipped.Y + clipped.H - r.Y,
	}
}

// Fill floods the whole surface with a color.
func (s *Surface) Fill(c color.Color) {
	s.FillRect(s.Rect(), c)
}

// FillRect fills r (clipped to the surface) with a color.
func (s *Surface) FillRect(r Rect, c color.Color) {
	r = r.Intersect(s.Rect())
	if r.IsEmpty() {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(float64(r.W), float64(r.H))
	op.GeoM.Translate(float64(s.origin.X+r.X), float64(s.origin.Y+r.Y))
	op.ColorScale.ScaleWithColor(c)
	s.img.DrawImage(whitePixel, &op)
}

// StrokeRect outlines r with a border of the given thickness, drawn inside r.
func (s *Surface) StrokeRect(r Rect, thickness int, c color.Color) {
	t := thickness
	s.FillRect(Rect{r.X, r.Y, r.W, t}, c)
	s.FillRect(Rect{r.X, r.Y + r.H - t, r.W, t}, c)
	s.FillRect(Rect{r.X, r.Y + t, t, r.H - 2*t}, c)
	s.FillRect(Rect{r.X + r.W - t, r.Y + t, t, r.H - 2*t}, c)
}

// FillPoly fills a simple polygon given in local coordinates. Non-convex
// outlines (such as the L-shapes from [RectInsetFramePolys]) are supported.
func (s *Surface) FillPoly(pts []Point, c color.Color) {
	if len(pts) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(s.origin.X+pts[0].X), float32(s.origin.Y+pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(s.origin.X+p.X), float32(s.origin.Y+p.Y))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := c.RGBA()
	cr := float32(r) / 0xffff
	cg := float32(g) / 0xffff
	cb := float32(b) / 0xffff
	ca := float32(a) / 0xffff
	for i := range vs {
		vs[i].SrcX = 0
		vs[i].SrcY = 0
		vs[i].ColorR = cr
		vs[i].ColorG = cg
		vs[i].ColorB = cb
		vs[i].ColorA = ca
	}
	op := &ebiten.DrawTrianglesOptions{FillRule: ebiten.FillRuleNonZero}
	s.img.DrawTriangles(vs, is, whitePixel, op)
}

// Blit draws img with its top-left corner at the given local position,
// clipped to the surface.
func (s *Surface) Blit(img *ebiten.Image, at Point) {
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(float64(s.origin.X+at.X), float64(s.origin.Y+at.Y))
	s.img.DrawImage(img, &op)
}

// BlitCentered draws img centered on the surface, clipped to it.
func (s *Surface) BlitCentered(img *ebiten.Image) {
	b := img.Bounds()
	s.Blit(img, Point{(s.w - b.Dx()) / 2, (s.h - b.Dy()) / 2})
}

// DrawTextCentered renders str centered on the surface with the given face
// and color.
func (s *Surface) DrawTextCentered(face text.Face, str string, c color.Color) {
	if face == nil || str == "" {
		return
	}
	tw, th := text.Measure(str, face, face.Metrics().HLineGap+face.Metrics().HAscent+face.Metrics().HDescent)
	op := &text.DrawOptions{}
	op.GeoM.Translate(
		float64(s.origin.X)+(float64(s.w)-tw)/2,
		float64(s.origin.Y)+(float64(s.h)-th)/2,
	)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(s.img, str, face, op)
}
