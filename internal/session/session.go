// Package session wires one recording cycle together: key press starts
// the recorder, key release stops it, the take goes out to every
// configured transcription backend, and the outcomes flow back to the
// window through callbacks.
package session

import (
	"context"
	"log/slog"
	"os"
	"sync"

	"voxrace/internal/audio"
	"voxrace/internal/provider"
)

type State int

const (
	StateIdle State = iota
	StateRecording
	StateTranscribing
	StateShowing
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRecording:
		return "recording"
	case StateTranscribing:
		return "transcribing"
	case StateShowing:
		return "showing"
	default:
		return "unknown"
	}
}

// Credentials carries the user-entered provider secrets for one cycle.
// They live in process memory only.
type Credentials struct {
	GroqKey     string
	DeepgramKey string
}

// Recorder abstracts the microphone so tests can drive the controller
// without an audio device.
type Recorder interface {
	Start() error
	Stop() (audio.Recording, error)
}

// TranscriberFactory builds the backends for one cycle from the secrets
// the user entered in the window.
type TranscriberFactory func(Credentials) []provider.Transcriber

// Controller runs the idle -> recording -> transcribing -> showing loop.
// Nothing accumulates across cycles; every take gets fresh results and
// fresh annotation state downstream.
type Controller struct {
	rec     Recorder
	factory TranscriberFactory
	log     *slog.Logger
	ctx     context.Context
	cancel  context.CancelFunc

	mu    sync.Mutex
	state State
	wg    sync.WaitGroup

	// OnState and OnOutcome may be called from background goroutines;
	// the window hops back onto the event loop before touching widgets.
	OnState   func(state State, status string)
	OnOutcome func(o provider.Outcome)
}

const idleStatus = "Press and hold SPACE to record."

func NewController(parent context.Context, rec Recorder, factory TranscriberFactory, log *slog.Logger) *Controller {
	ctx, cancel := context.WithCancel(parent)
	return &Controller{
		rec:     rec,
		factory: factory,
		log:     log,
		ctx:     ctx,
		cancel:  cancel,
		state:   StateIdle,
	}
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Start begins a new recording. Repeated key-down events while already
// recording or transcribing are ignored.
func (c *Controller) Start() {
	c.mu.Lock()
	if c.state != StateIdle && c.state != StateShowing {
		c.mu.Unlock()
		return
	}
	c.state = StateRecording
	c.mu.Unlock()

	if err := c.rec.Start(); err != nil {
		c.log.Error("failed to start recording", slog.String("error", err.Error()))
		c.setState(StateIdle, "Recording failed: "+err.Error())
		return
	}
	c.notify(StateRecording, "Recording while SPACE is held down...")
}

// Stop ends the recording and kicks off transcription in the background.
// A stop without a matching start is ignored.
func (c *Controller) Stop(creds Credentials) {
	c.mu.Lock()
	if c.state != StateRecording {
		c.mu.Unlock()
		return
	}
	c.state = StateTranscribing
	c.mu.Unlock()

	rec, err := c.rec.Stop()
	if err != nil {
		c.log.Error("failed to stop recording", slog.String("error", err.Error()))
		c.setState(StateIdle, "Recording failed: "+err.Error())
		return
	}
	c.notify(StateTranscribing, "Processing transcriptions...")

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.transcribe(rec, creds)
	}()
}

// Reset returns the controller to idle so the panels can be cleared. It
// does nothing while a recording or transcription is in flight.
func (c *Controller) Reset() {
	c.mu.Lock()
	if c.state != StateShowing && c.state != StateIdle {
		c.mu.Unlock()
		return
	}
	c.state = StateIdle
	c.mu.Unlock()
	c.notify(StateIdle, idleStatus)
}

// Close waits for any in-flight transcription to finish.
func (c *Controller) Close() {
	c.cancel()
	c.wg.Wait()
}

func (c *Controller) transcribe(rec audio.Recording, creds Credentials) {
	log := c.log.With(slog.String("recording_id", rec.ID.String()))
	log.Info("recording captured",
		slog.Duration("duration", rec.Duration()),
		slog.Int("frames", rec.Frames()))

	path, err := audio.WriteTemp(rec)
	if err != nil {
		log.Error("failed to encode wav", slog.String("error", err.Error()))
		c.setState(StateIdle, "Could not encode recording: "+err.Error())
		return
	}
	defer os.Remove(path)

	wavData, err := os.ReadFile(path)
	if err != nil {
		log.Error("failed to read wav", slog.String("error", err.Error()))
		c.setState(StateIdle, "Could not read recording: "+err.Error())
		return
	}

	outcomes := provider.Dispatch(c.ctx, wavData, c.deliver, c.factory(creds)...)
	for _, o := range outcomes {
		if o.Err != nil {
			log.Warn("transcription failed",
				slog.String("provider", o.Name),
				slog.String("error", o.Err.Error()))
			continue
		}
		log.Info("transcription complete",
			slog.String("provider", o.Name),
			slog.Duration("elapsed", o.Result.Elapsed),
			slog.Int("chars", len(o.Result.Text)))
	}

	c.setState(StateShowing, "All transcriptions complete. Press SPACE to start a new recording.")
}

func (c *Controller) deliver(o provider.Outcome) {
	if c.OnOutcome != nil {
		c.OnOutcome(o)
	}
}

func (c *Controller) setState(state State, status string) {
	c.mu.Lock()
	c.state = state
	c.mu.Unlock()
	c.notify(state, status)
}

func (c *Controller) notify(state State, status string) {
	if c.OnState != nil {
		c.OnState(state, status)
	}
}
