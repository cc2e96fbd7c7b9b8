package audio

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/gordonklaus/portaudio"

	"voxrace/internal/config"
)

var (
	ErrAlreadyRecording = errors.New("a recording is already in progress")
	ErrNotRecording     = errors.New("no recording in progress")
)

// Recorder captures microphone audio through portaudio. One take at a
// time: Start opens a stream on the default input device, Stop closes it
// and returns the buffered samples. The portaudio callback never blocks;
// chunks are handed to a collector goroutine through a buffered channel
// and dropped when the channel is full.
type Recorder struct {
	cfg config.AudioConfig
	log *slog.Logger

	mu        sync.Mutex
	stream    *portaudio.Stream
	chunks    chan []int16
	collected chan struct{}
	take      []int16
	recording bool

	dropped atomic.Int64
}

func NewRecorder(cfg config.AudioConfig, log *slog.Logger) *Recorder {
	return &Recorder{cfg: cfg, log: log}
}

// InputDevices lists the names of all capture-capable devices. Portaudio
// must be initialized before calling it.
func InputDevices() ([]string, error) {
	devices, err := portaudio.Devices()
	if err != nil {
		return nil, fmt.Errorf("list audio devices: %w", err)
	}
	var names []string
	for _, d := range devices {
		if d.MaxInputChannels > 0 {
			names = append(names, d.Name)
		}
	}
	return names, nil
}

func (r *Recorder) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.recording {
		return ErrAlreadyRecording
	}

	device, err := portaudio.DefaultInputDevice()
	if err != nil {
		return fmt.Errorf("no audio input device available: %w", err)
	}
	if device.DefaultSampleRate != float64(r.cfg.SampleRate) {
		r.log.Debug("device sample rate differs from configured rate",
			slog.Float64("device_rate", device.DefaultSampleRate),
			slog.Int("configured_rate", r.cfg.SampleRate))
	}

	chunks := make(chan []int16, r.cfg.BufferChunks)
	params := portaudio.StreamParameters{
		Input: portaudio.StreamDeviceParameters{
			Device:   device,
			Channels: r.cfg.Channels,
			Latency:  device.DefaultLowInputLatency,
		},
		SampleRate:      float64(r.cfg.SampleRate),
		FramesPerBuffer: r.cfg.FramesPerBuffer,
	}

	stream, err := portaudio.OpenStream(params, func(in []int16) {
		if len(in) == 0 {
			return
		}
		buf := make([]int16, len(in))
		copy(buf, in)
		select {
		case chunks <- buf:
		default:
			// buffer full, drop rather than block the real-time callback
			r.dropped.Add(1)
		}
	})
	if err != nil {
		return fmt.Errorf("open audio stream: %w", err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		return fmt.Errorf("start audio stream: %w", err)
	}

	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for chunk := range chunks {
			r.mu.Lock()
			r.take = append(r.take, chunk...)
			r.mu.Unlock()
		}
	}()

	r.stream = stream
	r.chunks = chunks
	r.collected = collected
	r.take = nil
	r.dropped.Store(0)
	r.recording = true
	r.log.Info("recording started", slog.String("device", device.Name))
	return nil
}

// Stop ends the current take and returns it with a fresh recording id.
func (r *Recorder) Stop() (Recording, error) {
	r.mu.Lock()
	if !r.recording {
		r.mu.Unlock()
		return Recording{}, ErrNotRecording
	}
	stream := r.stream
	chunks := r.chunks
	collected := r.collected
	r.stream = nil
	r.chunks = nil
	r.collected = nil
	r.recording = false
	r.mu.Unlock()

	// Stop blocks until the callback has finished, so closing the chunk
	// channel afterwards is safe.
	if err := stream.Stop(); err != nil {
		r.log.Warn("failed to stop audio stream", slog.String("error", err.Error()))
	}
	if err := stream.Close(); err != nil {
		r.log.Warn("failed to close audio stream", slog.String("error", err.Error()))
	}
	close(chunks)
	<-collected

	id, err := uuid.NewV7()
	if err != nil {
		return Recording{}, fmt.Errorf("generate recording id: %w", err)
	}

	r.mu.Lock()
	take := r.take
	r.take = nil
	r.mu.Unlock()

	if dropped := r.dropped.Load(); dropped > 0 {
		r.log.Warn("audio chunks dropped during capture", slog.Int64("dropped", dropped))
	}

	rec := Recording{
		ID:         id,
		PCM:        take,
		SampleRate: r.cfg.SampleRate,
		Channels:   r.cfg.Channels,
	}
	r.log.Info("recording stopped",
		slog.String("recording_id", id.String()),
		slog.Duration("duration", rec.Duration()))
	return rec, nil
}
