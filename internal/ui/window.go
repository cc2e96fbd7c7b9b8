// Package ui builds the voxrace window: two credential fields, a status
// line, and one result panel per provider. Holding SPACE records; the
// release sends the take to every provider at once.
package ui

import (
	"log/slog"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"voxrace/internal/config"
	"voxrace/internal/provider"
	"voxrace/internal/session"
)

// Build assembles the main window and hooks it up to the session
// controller. panelNames must match the Name() of each transcriber the
// controller's factory produces, in display order left to right.
func Build(a fyne.App, cfg config.Config, ctrl *session.Controller, panelNames []string, log *slog.Logger) fyne.Window {
	w := a.NewWindow("voxrace - transcription speed tester")

	groqEntry := widget.NewPasswordEntry()
	groqEntry.SetPlaceHolder("Enter Groq API key")
	if cfg.Groq.APIKey != "" {
		groqEntry.SetText(cfg.Groq.APIKey)
	}
	deepgramEntry := widget.NewPasswordEntry()
	deepgramEntry.SetPlaceHolder("Enter Deepgram API key")
	if cfg.Deepgram.APIKey != "" {
		deepgramEntry.SetText(cfg.Deepgram.APIKey)
	}

	status := widget.NewLabel("Press and hold SPACE to record.")

	panels := make(map[string]*Panel, len(panelNames))
	panelObjects := make([]fyne.CanvasObject, 0, len(panelNames))
	for _, name := range panelNames {
		p := NewPanel(name)
		panels[name] = p
		panelObjects = append(panelObjects, p.Object())
	}

	reset := widget.NewButton("Reset", func() {
		for _, p := range panels {
			p.Reset()
		}
		ctrl.Reset()
	})

	ctrl.OnState = func(_ session.State, text string) {
		fyne.Do(func() {
			status.SetText(text)
		})
	}
	ctrl.OnOutcome = func(o provider.Outcome) {
		fyne.Do(func() {
			p, ok := panels[o.Name]
			if !ok {
				log.Warn("outcome for unknown provider", slog.String("provider", o.Name))
				return
			}
			if o.Err != nil {
				p.SetError(o.Err)
				return
			}
			p.SetResult(o.Result.Text, o.Result.Elapsed)
		})
	}

	if dc, ok := w.Canvas().(desktop.Canvas); ok {
		dc.SetOnKeyDown(func(ev *fyne.KeyEvent) {
			if ev.Name == fyne.KeySpace {
				ctrl.Start()
			}
		})
		dc.SetOnKeyUp(func(ev *fyne.KeyEvent) {
			if ev.Name == fyne.KeySpace {
				ctrl.Stop(session.Credentials{
					GroqKey:     strings.TrimSpace(groqEntry.Text),
					DeepgramKey: strings.TrimSpace(deepgramEntry.Text),
				})
			}
		})
	} else {
		// no desktop driver means no key-up events, so recording can
		// never be triggered; say so instead of silently doing nothing
		log.Warn("desktop key events unavailable, recording disabled")
		status.SetText("Recording requires a desktop environment.")
	}

	keys := container.NewGridWithColumns(2,
		container.NewBorder(nil, nil, widget.NewLabel("Groq API key:"), nil, groqEntry),
		container.NewBorder(nil, nil, widget.NewLabel("Deepgram API key:"), nil, deepgramEntry),
	)

	content := container.NewBorder(
		container.NewVBox(keys, status),
		reset,
		nil, nil,
		container.NewGridWithColumns(len(panelObjects), panelObjects...),
	)
	w.SetContent(content)
	w.Resize(fyne.NewSize(float32(cfg.UI.Width), float32(cfg.UI.Height)))

	return w
}
