package ui

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"voxrace/internal/transcript"
)

// Panel shows one provider's side of the race: title, transcription
// speed, the transcript as clickable word chips, and the derived
// accuracy. Clicking a word toggles its marked-inaccurate state; marked
// words render with warning importance. All methods must run on the
// fyne event loop.
type Panel struct {
	title    *widget.Label
	speed    *widget.Label
	accuracy *widget.Label
	words    *fyne.Container
	root     fyne.CanvasObject

	ann *transcript.Annotations
}

func NewPanel(title string) *Panel {
	p := &Panel{
		title:    widget.NewLabelWithStyle(title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		speed:    widget.NewLabel("Speed: -"),
		accuracy: widget.NewLabel("Accuracy: -"),
		words:    container.New(newFlowLayout()),
	}
	scroll := container.NewVScroll(p.words)
	p.root = container.NewBorder(
		container.NewVBox(p.title, p.speed),
		p.accuracy,
		nil, nil,
		scroll,
	)
	return p
}

func (p *Panel) Object() fyne.CanvasObject {
	return p.root
}

// SetResult replaces the panel content with a fresh transcript. The word
// annotations are recreated from scratch, so marks from an earlier
// recording never carry over.
func (p *Panel) SetResult(text string, elapsed time.Duration) {
	p.speed.SetText(fmt.Sprintf("Speed: %.2f seconds", elapsed.Seconds()))

	words := transcript.Tokenize(text)
	p.ann = transcript.NewAnnotations(words)
	p.words.Objects = nil
	for i, word := range words {
		p.words.Add(p.newWordChip(i, word))
	}
	p.words.Refresh()
	p.refreshAccuracy()
}

// SetError renders a provider failure inline without touching the
// sibling panel.
func (p *Panel) SetError(err error) {
	p.speed.SetText("Speed: -")
	p.ann = nil
	p.words.Objects = nil
	msg := widget.NewLabel("Error: " + err.Error())
	msg.Wrapping = fyne.TextWrapWord
	p.words.Add(msg)
	p.words.Refresh()
	p.accuracy.SetText("Accuracy: -")
}

// Reset returns the panel to its initial empty look.
func (p *Panel) Reset() {
	p.speed.SetText("Speed: -")
	p.ann = nil
	p.words.Objects = nil
	p.words.Refresh()
	p.accuracy.SetText("Accuracy: -")
}

func (p *Panel) newWordChip(index int, word string) fyne.CanvasObject {
	chip := widget.NewButton(word, nil)
	chip.OnTapped = func() {
		if p.ann == nil {
			return
		}
		if p.ann.Toggle(index) {
			chip.Importance = widget.WarningImportance
		} else {
			chip.Importance = widget.MediumImportance
		}
		chip.Refresh()
		p.refreshAccuracy()
	}
	return chip
}

func (p *Panel) refreshAccuracy() {
	p.accuracy.SetText("Accuracy: " + p.ann.Summary())
}
