package pane

// ProgressBar renders a horizontal fill proportional to its progress. It
// recolors the ancestor theme green with the value structure inverted and a
// black background, matching the toolkit's stock look.
type ProgressBar struct {
	*Window

	progress int // 0-100
}

// NewProgressBar creates a progress bar attached to parent. The parent chain
// must already resolve a theme.
func NewProgressBar(parent *Window, rect Rect) *ProgressBar {
	p := &ProgressBar{Window: NewWindow(parent, rect)}
	p.SetTheme(parent.Theme().Colored(120, 1).InvertedValue().WithValue(RoleBackground, 0))
	p.Painter = p.paint
	return p
}

// Progress returns the current progress in percent.
func (p *ProgressBar) Progress() int {
	return p.progress
}

// SetProgress sets the progress in percent, clamped to 0-100, and marks the
// bar dirty.
func (p *ProgressBar) SetProgress(progress int) {
	p.progress = min(max(progress, 0), 100)
	p.Dirty()
}

func (p *ProgressBar) paint(surf *Surface) []Rect {
	p.RenderFill(surf)
	p.RenderFrame(surf)
	const border = 2
	bar := surf.Rect().Inset(border)
	bar.W = bar.W * p.progress / 100
	surf.FillRect(bar, p.Theme().Color(RoleForeground))
	return nil
}
