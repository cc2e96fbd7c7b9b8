package ui

import "fyne.io/fyne/v2"

// flowLayout places children left to right at their minimum size and
// wraps to a new row when the next child would overflow the available
// width, like a paragraph of words.
type flowLayout struct {
	gap float32
	// height of the last arrangement, fed back through MinSize so a
	// surrounding scroll container knows how tall the wrapped rows got
	lastHeight float32
}

func newFlowLayout() *flowLayout {
	return &flowLayout{gap: 4}
}

func (f *flowLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	var x, y, rowHeight float32
	for _, o := range objects {
		if !o.Visible() {
			continue
		}
		min := o.MinSize()
		if x > 0 && x+min.Width > size.Width {
			x = 0
			y += rowHeight + f.gap
			rowHeight = 0
		}
		o.Resize(min)
		o.Move(fyne.NewPos(x, y))
		x += min.Width + f.gap
		if min.Height > rowHeight {
			rowHeight = min.Height
		}
	}
	f.lastHeight = y + rowHeight
}

func (f *flowLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var w, h float32
	for _, o := range objects {
		if !o.Visible() {
			continue
		}
		min := o.MinSize()
		if min.Width > w {
			w = min.Width
		}
		if min.Height > h {
			h = min.Height
		}
	}
	if f.lastHeight > h {
		h = f.lastHeight
	}
	return fyne.NewSize(w, h)
}
